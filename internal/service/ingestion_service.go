package service

import (
	"context"
	"fmt"
	"log"

	"github.com/legicam/backend/internal/corpus"
	"github.com/legicam/backend/internal/domain/entity"
	"github.com/legicam/backend/internal/domain/repository"
	"github.com/legicam/backend/internal/platform/queue"
)

// QueueTextesIngeres est la file des événements d'ingestion consommés par le
// worker de détection de relations
const QueueTextesIngeres = "textes_ingeres"

// TexteIngereEvent est le message publié après chaque ingestion réussie
type TexteIngereEvent struct {
	TexteID string `json:"texte_id"`
}

type IngestionService interface {
	Ingest(ctx context.Context, texte *entity.Texte, sections []entity.Section, articles []entity.Article) error
}

type ingestionService struct {
	texteRepo repository.TexteRepository
	publisher queue.Publisher
}

func NewIngestionService(texteRepo repository.TexteRepository, publisher queue.Publisher) IngestionService {
	return &ingestionService{
		texteRepo: texteRepo,
		publisher: publisher,
	}
}

// Ingest valide puis persiste un texte et sa structure complète. Tout ou
// rien : une erreur structurelle ou de validation rejette le lot entier,
// jamais d'arbre partiel observable. Rejouer la même charge utile est
// idempotent.
func (s *ingestionService) Ingest(ctx context.Context, texte *entity.Texte, sections []entity.Section, articles []entity.Article) error {
	if err := valideLot(texte, sections, articles); err != nil {
		return err
	}

	// Répétition à blanc du pipeline de lecture : dédoublonnage puis
	// construction d'arbre. Un cycle de parenté est détecté ici, avant
	// toute écriture.
	dedup := corpus.Dedupe(articles)
	parSection := map[string][]entity.Article{}
	for _, a := range dedup.Canoniques {
		if a.SectionID != nil {
			parSection[*a.SectionID] = append(parSection[*a.SectionID], a)
		}
	}
	if _, err := corpus.BuildForest(sections, parSection); err != nil {
		return err
	}

	if err := s.texteRepo.ReplaceStructure(ctx, texte, sections, articles); err != nil {
		return fmt.Errorf("échec de l'écriture de la structure: %w", err)
	}

	log.Printf("[INGESTION] Texte %s ingéré (%d sections, %d articles, %d numéros en doublon)",
		texte.ID, len(sections), len(articles), len(dedup.Doublons))

	// Publication asynchrone pour la passe de détection de relations
	if s.publisher != nil {
		texteID := texte.ID
		go func() {
			// Contexte détaché : la publication survit à la requête HTTP
			event := TexteIngereEvent{TexteID: texteID}
			if err := s.publisher.Publish(context.Background(), QueueTextesIngeres, event); err != nil {
				log.Printf("[INGESTION] Échec de publication de l'événement pour %s: %v", texteID, err)
			}
		}()
	}

	return nil
}

func valideLot(texte *entity.Texte, sections []entity.Section, articles []entity.Article) error {
	if texte.Titre == "" {
		return &corpus.ValidationError{Champ: "titre", Reason: "titre du texte manquant"}
	}
	if !texte.Nature.IsValid() {
		return &corpus.ValidationError{Champ: "nature", Reason: fmt.Sprintf("nature inconnue: %q", texte.Nature)}
	}
	if !texte.Statut.IsValid() {
		return &corpus.ValidationError{Champ: "statut", Reason: fmt.Sprintf("statut inconnu: %q", texte.Statut)}
	}

	sectionIDs := make(map[string]bool, len(sections))
	for _, sec := range sections {
		if sec.ID == "" {
			return &corpus.ValidationError{Champ: "sections", Reason: "section sans identifiant"}
		}
		if sectionIDs[sec.ID] {
			return &corpus.ValidationError{Champ: "sections", Reason: fmt.Sprintf("identifiant de section dupliqué: %s", sec.ID)}
		}
		sectionIDs[sec.ID] = true
		if sec.Titre == "" {
			return &corpus.ValidationError{Champ: "sections", Reason: fmt.Sprintf("section %s sans titre", sec.ID)}
		}
	}

	for _, a := range articles {
		if a.Numero == "" {
			return &corpus.ValidationError{Champ: "articles", Reason: fmt.Sprintf("article %s sans numéro déclaré", a.ID)}
		}
		if a.SectionID != nil && !sectionIDs[*a.SectionID] {
			return &corpus.ValidationError{Champ: "articles", Reason: fmt.Sprintf("article %s rattaché à une section inconnue: %s", a.ID, *a.SectionID)}
		}
	}

	return nil
}
