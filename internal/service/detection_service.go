package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/legicam/backend/internal/corpus"
	"github.com/legicam/backend/internal/domain/entity"
	"github.com/legicam/backend/internal/domain/repository"
)

// titreMinDetection : les titres trop courts génèrent trop de faux positifs
const titreMinDetection = 12

// fenetreVerbe : nombre de caractères inspectés avant la mention d'un titre
// pour y chercher le verbe juridique qualifiant la relation
const fenetreVerbe = 120

// verbesDetection, dans l'ordre de priorité ; sans verbe reconnu à proximité,
// la mention vaut simple citation
var verbesDetection = []struct {
	Verbe string
	Type  entity.TypeRelation
}{
	{"abroge", entity.RelationAbroge},
	{"modifie", entity.RelationModifie},
	{"complète", entity.RelationComplete},
	{"complete", entity.RelationComplete},
	{"ratifie", entity.RelationRatifie},
	{"en application", entity.RelationApplique},
}

// DetectionService est la passe automatique d'enrichissement du graphe de
// relations : elle repère dans le corps des articles d'un texte les mentions
// explicites d'autres textes du corpus et enregistre les arêtes typées
// correspondantes. Les arêtes déjà présentes sont ignorées (idempotent).
type DetectionService interface {
	DetectRelations(ctx context.Context, texteID string) error
}

type detectionService struct {
	texteRepo repository.TexteRepository
	relations RelationService
}

func NewDetectionService(texteRepo repository.TexteRepository, relations RelationService) DetectionService {
	return &detectionService{
		texteRepo: texteRepo,
		relations: relations,
	}
}

func (s *detectionService) DetectRelations(ctx context.Context, texteID string) error {
	texte, err := s.texteRepo.GetByID(ctx, texteID)
	if err != nil {
		return fmt.Errorf("échec de la lecture du texte: %w", err)
	}
	if texte == nil {
		return entity.ErrTexteNotFound
	}

	articles, err := s.texteRepo.GetArticles(ctx, texteID)
	if err != nil {
		return fmt.Errorf("échec de la lecture des articles: %w", err)
	}
	// Seuls les exemplaires canoniques participent à la détection
	dedup := corpus.Dedupe(articles)

	tous, err := s.texteRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("échec de la lecture du corpus: %w", err)
	}

	detectees := 0
	for _, autre := range tous {
		if autre.ID == texteID || len(autre.Titre) < titreMinDetection {
			continue
		}
		titreBas := strings.ToLower(autre.Titre)

		for _, a := range dedup.Canoniques {
			corps := strings.ToLower(a.Contenu)
			idx := strings.Index(corps, titreBas)
			if idx < 0 {
				continue
			}

			t := qualifieMention(corps, idx)
			note := fmt.Sprintf("Détection automatique (article %s)", a.Numero)
			_, err := s.relations.AddRelation(ctx, texteID, autre.ID, t, note)
			switch {
			case err == nil:
				detectees++
			case errors.Is(err, entity.ErrDuplicateRelation):
				// Déjà connue, rien à faire
			default:
				log.Printf("[DETECTION] Échec d'enregistrement %s -> %s (%s): %v", texteID, autre.ID, t, err)
			}
			// Une seule arête par paire de textes et par passe
			break
		}
	}

	log.Printf("[DETECTION] Texte %s: %d relation(s) détectée(s)", texteID, detectees)
	return nil
}

// qualifieMention cherche un verbe juridique dans la fenêtre qui précède la
// mention du titre cité
func qualifieMention(corps string, idx int) entity.TypeRelation {
	debut := idx - fenetreVerbe
	if debut < 0 {
		debut = 0
	}
	fenetre := corps[debut:idx]

	for _, v := range verbesDetection {
		if strings.Contains(fenetre, v.Verbe) {
			return v.Type
		}
	}
	return entity.RelationCite
}
