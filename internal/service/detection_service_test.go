package service

import (
	"context"
	"testing"

	"github.com/legicam/backend/internal/domain/entity"
)

func corpusDetection() (*mockTexteRepo, *mockRelationRepo) {
	repo := newMockTexteRepo()
	repo.textes["nouveau"] = &entity.Texte{ID: "nouveau", Titre: "Loi n° 2024/010 portant réforme", Nature: entity.NatureLoi}
	repo.textes["ancien"] = &entity.Texte{ID: "ancien", Titre: "Loi n° 2010/001 portant régime de l'entreprenant", Nature: entity.NatureLoi}
	repo.textes["autre"] = &entity.Texte{ID: "autre", Titre: "Décret n° 2012/045", Nature: entity.NatureDecret}
	return repo, &mockRelationRepo{}
}

func TestDetectRelationsScenarios(t *testing.T) {
	ctx := context.Background()

	t.Run("Mention avec verbe d'abrogation", func(t *testing.T) {
		repo, relRepo := corpusDetection()
		repo.articles["nouveau"] = []entity.Article{
			{ID: "a1", TexteID: "nouveau", Numero: "1", Ordre: 0,
				Contenu: "La présente loi abroge la Loi n° 2010/001 portant régime de l'entreprenant."},
		}

		s := NewDetectionService(repo, NewRelationService(repo, relRepo))
		if err := s.DetectRelations(ctx, "nouveau"); err != nil {
			t.Fatalf("DetectRelations: %v", err)
		}

		if len(relRepo.rels) != 1 {
			t.Fatalf("%d relations détectées, attendu 1", len(relRepo.rels))
		}
		rel := relRepo.rels[0]
		if rel.Type != entity.RelationAbroge {
			t.Errorf("type %s, attendu ABROGE", rel.Type)
		}
		if rel.SourceID != "nouveau" || rel.CibleID != "ancien" {
			t.Errorf("arête %s -> %s, attendu nouveau -> ancien", rel.SourceID, rel.CibleID)
		}
	})

	t.Run("Mention sans verbe: simple citation", func(t *testing.T) {
		repo, relRepo := corpusDetection()
		repo.articles["nouveau"] = []entity.Article{
			{ID: "a1", TexteID: "nouveau", Numero: "4", Ordre: 0,
				Contenu: "Sous réserve des dispositions de la Loi n° 2010/001 portant régime de l'entreprenant, le présent texte s'applique."},
		}

		s := NewDetectionService(repo, NewRelationService(repo, relRepo))
		if err := s.DetectRelations(ctx, "nouveau"); err != nil {
			t.Fatalf("DetectRelations: %v", err)
		}

		if len(relRepo.rels) != 1 || relRepo.rels[0].Type != entity.RelationCite {
			t.Errorf("relations: %+v, attendu une seule CITE", relRepo.rels)
		}
	})

	t.Run("Rejouer la passe est idempotent", func(t *testing.T) {
		repo, relRepo := corpusDetection()
		repo.articles["nouveau"] = []entity.Article{
			{ID: "a1", TexteID: "nouveau", Numero: "1", Ordre: 0,
				Contenu: "Abroge la Loi n° 2010/001 portant régime de l'entreprenant."},
		}

		s := NewDetectionService(repo, NewRelationService(repo, relRepo))
		if err := s.DetectRelations(ctx, "nouveau"); err != nil {
			t.Fatalf("première passe: %v", err)
		}
		if err := s.DetectRelations(ctx, "nouveau"); err != nil {
			t.Fatalf("seconde passe: %v", err)
		}
		if len(relRepo.rels) != 1 {
			t.Errorf("%d relations après rejeu, attendu 1", len(relRepo.rels))
		}
	})

	t.Run("Aucune mention: aucune arête", func(t *testing.T) {
		repo, relRepo := corpusDetection()
		repo.articles["nouveau"] = []entity.Article{
			{ID: "a1", TexteID: "nouveau", Numero: "1", Ordre: 0, Contenu: "Dispositions sans aucun renvoi."},
		}

		s := NewDetectionService(repo, NewRelationService(repo, relRepo))
		if err := s.DetectRelations(ctx, "nouveau"); err != nil {
			t.Fatalf("DetectRelations: %v", err)
		}
		if len(relRepo.rels) != 0 {
			t.Errorf("relations parasites: %+v", relRepo.rels)
		}
	})
}
