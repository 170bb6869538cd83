package corpus

import (
	"strings"
)

// NiveauAutres regroupe les intitulés non reconnus ; ils se classent après
// tous les niveaux connus.
const NiveauAutres = 99

// OrdinalInconnu force les intitulés sans numérotation exploitable à se
// classer derrière leurs pairs du même niveau.
const OrdinalInconnu = 1 << 30

// motsCles ordonnés du plus englobant au plus fin ; l'index dans la liste
// est le niveau hiérarchique.
var motsCles = []string{"LIVRE", "TITRE", "CHAPITRE", "SECTION", "PARAGRAPHE", "SOUS-SECTION"}

// Heading est le résultat de la classification d'un intitulé de section
type Heading struct {
	Level      int
	Ordinal    int
	Recognized bool
}

// ClassifyHeading analyse un intitulé brut ("TITRE II - DES OBLIGATIONS") et
// en déduit un niveau hiérarchique et un ordinal comparables. Le mot-clé de
// tête est comparé sans tenir compte de la casse ; le premier jeton numérique
// qui le suit est décodé soit comme chiffre romain, soit comme entier décimal.
func ClassifyHeading(titre string) Heading {
	upper := strings.ToUpper(strings.TrimSpace(titre))

	for niveau, mot := range motsCles {
		if !strings.HasPrefix(upper, mot) {
			continue
		}
		// Coupe au mot entier : "SECTIONS" ou "LIVRET" ne comptent pas
		reste := upper[len(mot):]
		if reste != "" && isLettre(rune(reste[0])) {
			continue
		}
		return Heading{
			Level:      niveau,
			Ordinal:    extraitOrdinal(reste),
			Recognized: true,
		}
	}

	return Heading{Level: NiveauAutres, Ordinal: extraitOrdinal(upper), Recognized: false}
}

func isLettre(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// extraitOrdinal cherche le premier jeton numérique (romain ou décimal) dans
// la suite de l'intitulé.
func extraitOrdinal(s string) int {
	for _, jeton := range strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '-' || r == ':' || r == '.' || r == '–'
	}) {
		if n, ok := parseRomain(jeton); ok {
			return n
		}
		if n, ok := parseDecimal(jeton); ok {
			return n
		}
	}
	return OrdinalInconnu
}

var valeursRomaines = map[byte]int{
	'I': 1, 'V': 5, 'X': 10, 'L': 50, 'C': 100, 'D': 500, 'M': 1000,
}

// parseRomain décode un chiffre romain par addition soustractive : chaque
// symbole est ajouté, sauf s'il précède un symbole de valeur supérieure,
// auquel cas il est soustrait. Les formes non canoniques ("IIII") sont
// acceptées telles quelles.
func parseRomain(jeton string) (int, bool) {
	if jeton == "" {
		return 0, false
	}
	total := 0
	for i := 0; i < len(jeton); i++ {
		v, ok := valeursRomaines[jeton[i]]
		if !ok {
			return 0, false
		}
		if i+1 < len(jeton) {
			if suivant, ok := valeursRomaines[jeton[i+1]]; ok && v < suivant {
				total -= v
				continue
			}
		}
		total += v
	}
	return total, true
}

// parseDecimal lit les chiffres de tête d'un jeton ("1ER" vaut 1)
func parseDecimal(jeton string) (int, bool) {
	n := 0
	trouve := false
	for i := 0; i < len(jeton); i++ {
		c := jeton[i]
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
		trouve = true
	}
	return n, trouve
}

// NumericValue extrait la valeur numérique de tête d'un numéro d'article
// déclaré ("30-1" vaut 30, "L.30" vaut 0). Sert au tri des documents plats,
// qui n'ont aucun indice structurel de section.
func NumericValue(numero string) int {
	n, _ := parseDecimal(strings.TrimSpace(numero))
	return n
}
