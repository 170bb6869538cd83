package corpus

import "testing"

func TestClassifyHeadingNiveaux(t *testing.T) {
	cas := []struct {
		titre  string
		niveau int
	}{
		{"LIVRE I - DISPOSITIONS GÉNÉRALES", 0},
		{"Titre II - Des obligations", 1},
		{"CHAPITRE 3", 2},
		{"Section 1 - Du champ d'application", 3},
		{"PARAGRAPHE 2", 4},
		{"SOUS-SECTION IV", 5},
	}

	for _, c := range cas {
		h := ClassifyHeading(c.titre)
		if !h.Recognized {
			t.Errorf("%q: intitulé non reconnu", c.titre)
		}
		if h.Level != c.niveau {
			t.Errorf("%q: niveau %d, attendu %d", c.titre, h.Level, c.niveau)
		}
	}
}

func TestClassifyHeadingNonReconnu(t *testing.T) {
	for _, titre := range []string{"DISPOSITIONS FINALES", "ANNEXE", "SECTIONS DIVERSES", "LIVRET DE FAMILLE"} {
		h := ClassifyHeading(titre)
		if h.Recognized {
			t.Errorf("%q: aurait dû être non reconnu", titre)
		}
		if h.Level != NiveauAutres {
			t.Errorf("%q: niveau %d, attendu %d", titre, h.Level, NiveauAutres)
		}
	}
}

func TestClassifyHeadingOrdinauxRomains(t *testing.T) {
	cas := []struct {
		titre   string
		ordinal int
	}{
		{"TITRE I", 1},
		{"TITRE II", 2},
		{"TITRE III", 3},
		{"TITRE IV", 4},
		{"TITRE IX", 9},
		{"TITRE X", 10},
		{"TITRE XIV", 14},
		{"TITRE XL", 40},
		{"TITRE MCMXCIV", 1994},
		// Forme non canonique acceptée telle quelle
		{"TITRE IIII", 4},
	}

	for _, c := range cas {
		h := ClassifyHeading(c.titre)
		if h.Ordinal != c.ordinal {
			t.Errorf("%q: ordinal %d, attendu %d", c.titre, h.Ordinal, c.ordinal)
		}
	}
}

func TestClassifyHeadingOrdinauxDecimaux(t *testing.T) {
	if h := ClassifyHeading("CHAPITRE 12 - DES SANCTIONS"); h.Ordinal != 12 {
		t.Errorf("ordinal %d, attendu 12", h.Ordinal)
	}
	if h := ClassifyHeading("CHAPITRE 1er"); h.Ordinal != 1 {
		t.Errorf("ordinal %d, attendu 1", h.Ordinal)
	}
}

func TestClassifyHeadingSansNumerotation(t *testing.T) {
	h := ClassifyHeading("TITRE PRÉLIMINAIRE")
	if h.Level != 1 {
		t.Errorf("niveau %d, attendu 1", h.Level)
	}
	if h.Ordinal != OrdinalInconnu {
		t.Errorf("ordinal %d, attendu la sentinelle %d", h.Ordinal, OrdinalInconnu)
	}
}

func TestNumericValue(t *testing.T) {
	cas := []struct {
		numero string
		valeur int
	}{
		{"30", 30},
		{"30-1", 30},
		{"L.30", 0},
		{"", 0},
		{"  7 ", 7},
	}
	for _, c := range cas {
		if v := NumericValue(c.numero); v != c.valeur {
			t.Errorf("NumericValue(%q) = %d, attendu %d", c.numero, v, c.valeur)
		}
	}
}
