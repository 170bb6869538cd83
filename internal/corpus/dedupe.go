package corpus

import (
	"github.com/legicam/backend/internal/domain/entity"
)

// DedupeResult sépare les articles canoniques des doublons mis en quarantaine.
// Les doublons restent inspectables (revue humaine) : ils ne sont jamais
// silencieusement perdus.
type DedupeResult struct {
	Canoniques []entity.Article
	// Doublons indexés par numéro déclaré
	Doublons map[string][]entity.Article
}

// Dedupe détecte les articles partageant un même numéro déclaré au sein d'un
// texte et choisit un exemplaire canonique par groupe.
//
// Politique de sélection : le corps le plus long gagne, égalité départagée
// par l'indice d'ordre le plus bas. L'extraction amont capture parfois un
// talon de table des matières (court) à côté du véritable corps d'article
// (long) sous le même numéro ; le texte le plus long est le plus probablement
// authentique. Heuristique assumée, d'où la quarantaine inspectable.
func Dedupe(articles []entity.Article) DedupeResult {
	res := DedupeResult{Doublons: map[string][]entity.Article{}}

	groupes := map[string][]entity.Article{}
	var ordreNumeros []string
	for _, a := range articles {
		if _, vu := groupes[a.Numero]; !vu {
			ordreNumeros = append(ordreNumeros, a.Numero)
		}
		groupes[a.Numero] = append(groupes[a.Numero], a)
	}

	for _, numero := range ordreNumeros {
		groupe := groupes[numero]
		if len(groupe) == 1 {
			res.Canoniques = append(res.Canoniques, groupe[0])
			continue
		}

		canonique := 0
		for i := 1; i < len(groupe); i++ {
			if len(groupe[i].Contenu) > len(groupe[canonique].Contenu) {
				canonique = i
				continue
			}
			if len(groupe[i].Contenu) == len(groupe[canonique].Contenu) &&
				groupe[i].Ordre < groupe[canonique].Ordre {
				canonique = i
			}
		}

		res.Canoniques = append(res.Canoniques, groupe[canonique])
		for i, a := range groupe {
			if i != canonique {
				res.Doublons[numero] = append(res.Doublons[numero], a)
			}
		}
	}

	return res
}
