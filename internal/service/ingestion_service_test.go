package service

import (
	"context"
	"errors"
	"testing"

	"github.com/legicam/backend/internal/corpus"
	"github.com/legicam/backend/internal/domain/entity"
)

func texteValide() *entity.Texte {
	return &entity.Texte{ID: "t1", Titre: "Loi n° 2024/001", Nature: entity.NatureLoi, Statut: entity.StatutVigueur}
}

func TestIngestScenarios(t *testing.T) {
	ctx := context.Background()

	t.Run("Article sans numéro: lot rejeté avant toute écriture", func(t *testing.T) {
		repo := newMockTexteRepo()
		s := NewIngestionService(repo, nil)

		articles := []entity.Article{{ID: "a1", TexteID: "t1", Numero: ""}}
		err := s.Ingest(ctx, texteValide(), nil, articles)

		var validation *corpus.ValidationError
		if !errors.As(err, &validation) {
			t.Fatalf("erreur %v, attendu *ValidationError", err)
		}
		if repo.replaceCalls != 0 {
			t.Error("écriture effectuée malgré le rejet du lot")
		}
	})

	t.Run("Cycle de parenté: lot rejeté avant toute écriture", func(t *testing.T) {
		repo := newMockTexteRepo()
		s := NewIngestionService(repo, nil)

		a, b := "sa", "sb"
		sections := []entity.Section{
			{ID: a, TexteID: "t1", Titre: "TITRE I", ParentID: &b},
			{ID: b, TexteID: "t1", Titre: "TITRE II", ParentID: &a},
		}
		err := s.Ingest(ctx, texteValide(), sections, nil)

		var structural *corpus.StructuralError
		if !errors.As(err, &structural) {
			t.Fatalf("erreur %v, attendu *StructuralError", err)
		}
		if repo.replaceCalls != 0 {
			t.Error("écriture effectuée malgré le cycle")
		}
	})

	t.Run("Section inconnue référencée par un article", func(t *testing.T) {
		repo := newMockTexteRepo()
		s := NewIngestionService(repo, nil)

		inconnue := "fantome"
		articles := []entity.Article{{ID: "a1", TexteID: "t1", Numero: "1", SectionID: &inconnue}}
		err := s.Ingest(ctx, texteValide(), nil, articles)

		var validation *corpus.ValidationError
		if !errors.As(err, &validation) {
			t.Fatalf("erreur %v, attendu *ValidationError", err)
		}
	})

	t.Run("Nature inconnue refusée", func(t *testing.T) {
		s := NewIngestionService(newMockTexteRepo(), nil)
		texte := texteValide()
		texte.Nature = entity.NatureTexte("EDIT_ROYAL")
		err := s.Ingest(ctx, texte, nil, nil)

		var validation *corpus.ValidationError
		if !errors.As(err, &validation) {
			t.Fatalf("erreur %v, attendu *ValidationError", err)
		}
	})

	t.Run("Lot valide écrit en une passe, doublons tolérés", func(t *testing.T) {
		repo := newMockTexteRepo()
		s := NewIngestionService(repo, nil)

		sec := "s1"
		sections := []entity.Section{{ID: sec, TexteID: "t1", Titre: "TITRE I"}}
		articles := []entity.Article{
			{ID: "a1", TexteID: "t1", Numero: "30", Contenu: "court", Ordre: 0, SectionID: &sec},
			{ID: "a2", TexteID: "t1", Numero: "30", Contenu: "nettement plus long", Ordre: 1, SectionID: &sec},
		}
		if err := s.Ingest(ctx, texteValide(), sections, articles); err != nil {
			t.Fatalf("Ingest: %v", err)
		}
		if repo.replaceCalls != 1 {
			t.Errorf("%d écritures, attendu 1", repo.replaceCalls)
		}
		// Les doublons sont des données : les deux lignes sont persistées
		if len(repo.articles["t1"]) != 2 {
			t.Errorf("%d articles persistés, attendu 2", len(repo.articles["t1"]))
		}
	})

	t.Run("Rejouer la même charge utile est idempotent", func(t *testing.T) {
		repo := newMockTexteRepo()
		s := NewIngestionService(repo, nil)

		sections := []entity.Section{{ID: "s1", TexteID: "t1", Titre: "TITRE I"}}
		articles := []entity.Article{{ID: "a1", TexteID: "t1", Numero: "1", SectionID: ptrStr("s1")}}

		if err := s.Ingest(ctx, texteValide(), sections, articles); err != nil {
			t.Fatalf("première ingestion: %v", err)
		}
		if err := s.Ingest(ctx, texteValide(), sections, articles); err != nil {
			t.Fatalf("seconde ingestion: %v", err)
		}
		if len(repo.articles["t1"]) != 1 || len(repo.sections["t1"]) != 1 {
			t.Errorf("structure dupliquée après rejeu: %d articles, %d sections",
				len(repo.articles["t1"]), len(repo.sections["t1"]))
		}
	})
}

func ptrStr(s string) *string { return &s }
