package corpus

import (
	"sort"

	"github.com/legicam/backend/internal/domain/entity"
)

// SectionNode est un nœud de l'arbre structurel d'un texte : la section, son
// classement, ses articles propres et ses sous-sections ordonnées.
type SectionNode struct {
	Section  entity.Section   `json:"section"`
	Niveau   int              `json:"niveau"`
	Ordinal  int              `json:"-"`
	Articles []entity.Article `json:"articles"`
	Enfants  []*SectionNode   `json:"enfants"`

	position int
}

// BuildForest reconstruit la forêt ordonnée d'un texte à partir des lignes de
// sections à plat et des articles groupés par section. L'extraction amont est
// bruitée : un parent manquant rattache la section à la racine, un cycle de
// parenté est rejeté avec une StructuralError nommant la section fautive.
//
// Tri des sections sœurs, à chaque niveau de l'arbre :
//  1. niveau classé de l'intitulé (LIVRE avant TITRE avant CHAPITRE...)
//  2. ordinal classé (romain ou décimal)
//  3. position d'origine dans le flux d'extraction (tri stable)
//
// Les articles d'un nœud sont triés par leur indice d'ordre explicite.
func BuildForest(sections []entity.Section, articlesParSection map[string][]entity.Article) ([]*SectionNode, error) {
	// Passe 1 : index id -> nœud
	nodes := make(map[string]*SectionNode, len(sections))
	for i, s := range sections {
		h := ClassifyHeading(s.Titre)
		nodes[s.ID] = &SectionNode{
			Section:  s,
			Niveau:   h.Level,
			Ordinal:  h.Ordinal,
			Articles: []entity.Article{},
			Enfants:  []*SectionNode{},
			position: i,
		}
	}

	// Garde anti-cycle : on remonte la chaîne de parenté de chaque section ;
	// revisiter un id déjà vu signifie une boucle dans les données.
	for _, s := range sections {
		vus := map[string]bool{s.ID: true}
		cur := s.ParentID
		for cur != nil {
			parent, ok := nodes[*cur]
			if !ok {
				break
			}
			if vus[parent.Section.ID] {
				return nil, &StructuralError{
					SectionID: s.ID,
					Reason:    "cycle de parenté détecté",
				}
			}
			vus[parent.Section.ID] = true
			cur = parent.Section.ParentID
		}
	}

	// Passe 2 : rattachement des enfants et des articles
	var racines []*SectionNode
	for _, s := range sections {
		n := nodes[s.ID]
		if arts, ok := articlesParSection[s.ID]; ok {
			n.Articles = append(n.Articles, arts...)
			sort.SliceStable(n.Articles, func(i, j int) bool {
				return n.Articles[i].Ordre < n.Articles[j].Ordre
			})
		}
		if s.ParentID != nil {
			if parent, ok := nodes[*s.ParentID]; ok {
				parent.Enfants = append(parent.Enfants, n)
				continue
			}
			// Parent inexistant : données bruitées, on tolère en racine
		}
		racines = append(racines, n)
	}

	trieForet(racines)
	return racines, nil
}

func trieForet(noeuds []*SectionNode) {
	sort.SliceStable(noeuds, func(i, j int) bool {
		if noeuds[i].Niveau != noeuds[j].Niveau {
			return noeuds[i].Niveau < noeuds[j].Niveau
		}
		if noeuds[i].Ordinal != noeuds[j].Ordinal {
			return noeuds[i].Ordinal < noeuds[j].Ordinal
		}
		return noeuds[i].position < noeuds[j].position
	})
	for _, n := range noeuds {
		trieForet(n.Enfants)
	}
}

// TrieArticlesPlat trie les articles d'un document sans sections par la
// valeur numérique de tête de leur numéro déclaré (règle volontairement plus
// lâche que le cas arborescent : pas d'indice de niveau disponible).
func TrieArticlesPlat(articles []entity.Article) []entity.Article {
	tries := make([]entity.Article, len(articles))
	copy(tries, articles)
	sort.SliceStable(tries, func(i, j int) bool {
		return NumericValue(tries[i].Numero) < NumericValue(tries[j].Numero)
	})
	return tries
}
