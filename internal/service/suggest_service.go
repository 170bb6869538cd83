package service

import (
	"context"
	"sort"
	"strings"

	"github.com/legicam/backend/internal/domain/entity"
	"github.com/legicam/backend/internal/domain/repository"
)

const extraitMax = 160

type SuggestService interface {
	Suggest(ctx context.Context, q string, limit int) ([]entity.Suggestion, error)
}

type suggestService struct {
	texteRepo repository.TexteRepository
}

func NewSuggestService(texteRepo repository.TexteRepository) SuggestService {
	return &suggestService{texteRepo: texteRepo}
}

// Suggest fusionne les meilleurs articles et les meilleurs titres de textes
// en une seule liste classée : les articles d'abord, puis les documents,
// chaque groupe par score de pertinence décroissant. Égalités départagées
// par titre le plus court puis ordre lexical, pour un classement déterministe.
func (s *suggestService) Suggest(ctx context.Context, q string, limit int) ([]entity.Suggestion, error) {
	q = strings.TrimSpace(q)
	if q == "" || limit <= 0 {
		return []entity.Suggestion{}, nil
	}

	articles, scoresArticles, err := s.texteRepo.SearchArticles(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	textes, scoresTextes, err := s.texteRepo.SearchTextes(ctx, q, limit)
	if err != nil {
		return nil, err
	}

	hitsArticles := make([]entity.Suggestion, 0, len(articles))
	for i, a := range articles {
		hitsArticles = append(hitsArticles, entity.Suggestion{
			Type:    "article",
			ID:      a.ID,
			TexteID: a.TexteID,
			Titre:   a.TexteTitre,
			Extrait: extrait(a.Contenu),
			Score:   scoresArticles[i],
		})
	}
	trieSuggestions(hitsArticles)

	hitsTextes := make([]entity.Suggestion, 0, len(textes))
	for i, t := range textes {
		hitsTextes = append(hitsTextes, entity.Suggestion{
			Type:  "document",
			ID:    t.ID,
			Titre: t.Titre,
			Score: scoresTextes[i],
		})
	}
	trieSuggestions(hitsTextes)

	fusion := append(hitsArticles, hitsTextes...)
	if len(fusion) > limit {
		fusion = fusion[:limit]
	}
	return fusion, nil
}

func trieSuggestions(hits []entity.Suggestion) {
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		if len(hits[i].Titre) != len(hits[j].Titre) {
			return len(hits[i].Titre) < len(hits[j].Titre)
		}
		return hits[i].Titre < hits[j].Titre
	})
}

func extrait(contenu string) string {
	runes := []rune(strings.TrimSpace(contenu))
	if len(runes) <= extraitMax {
		return string(runes)
	}
	return string(runes[:extraitMax]) + "..."
}
