package service

import (
	"context"
	"sort"

	"github.com/legicam/backend/internal/corpus"
	"github.com/legicam/backend/internal/domain/entity"
	"github.com/legicam/backend/internal/domain/repository"
)

// StructureTexte est la vue navigable complète d'un texte : la forêt de
// sections ordonnée, les articles hors section et les doublons en quarantaine.
type StructureTexte struct {
	Texte *entity.Texte         `json:"texte"`
	Arbre []*corpus.SectionNode `json:"arbre"`
	// ArticlesLibres : articles rattachés directement au texte. Pour un
	// document "plat" (aucune section), c'est la liste complète triée
	// numériquement.
	ArticlesLibres []entity.Article `json:"articles_libres"`
	// Doublons mis en quarantaine par le dédoublonnage, indexés par numéro
	// déclaré, exposés pour revue humaine
	Doublons map[string][]entity.Article `json:"doublons"`
}

type StructureService interface {
	GetStructure(ctx context.Context, texteID string) (*StructureTexte, error)
}

type structureService struct {
	texteRepo repository.TexteRepository
}

func NewStructureService(texteRepo repository.TexteRepository) StructureService {
	return &structureService{texteRepo: texteRepo}
}

// GetStructure enchaîne dédoublonnage puis construction d'arbre sur les
// données relues du store. Transformation pure par requête : aucun état
// partagé entre appels.
func (s *structureService) GetStructure(ctx context.Context, texteID string) (*StructureTexte, error) {
	texte, err := s.texteRepo.GetByID(ctx, texteID)
	if err != nil {
		return nil, err
	}
	if texte == nil {
		return nil, entity.ErrTexteNotFound
	}

	sections, err := s.texteRepo.GetSections(ctx, texteID)
	if err != nil {
		return nil, err
	}
	articles, err := s.texteRepo.GetArticles(ctx, texteID)
	if err != nil {
		return nil, err
	}

	dedup := corpus.Dedupe(articles)

	structure := &StructureTexte{
		Texte:          texte,
		Arbre:          []*corpus.SectionNode{},
		ArticlesLibres: []entity.Article{},
		Doublons:       dedup.Doublons,
	}

	// Document plat : aucun indice structurel, tri numérique sur le numéro
	if len(sections) == 0 {
		structure.ArticlesLibres = corpus.TrieArticlesPlat(dedup.Canoniques)
		return structure, nil
	}

	parSection := map[string][]entity.Article{}
	for _, a := range dedup.Canoniques {
		if a.SectionID == nil {
			structure.ArticlesLibres = append(structure.ArticlesLibres, a)
			continue
		}
		parSection[*a.SectionID] = append(parSection[*a.SectionID], a)
	}
	sort.SliceStable(structure.ArticlesLibres, func(i, j int) bool {
		return structure.ArticlesLibres[i].Ordre < structure.ArticlesLibres[j].Ordre
	})

	arbre, err := corpus.BuildForest(sections, parSection)
	if err != nil {
		return nil, err
	}
	structure.Arbre = arbre
	return structure, nil
}
