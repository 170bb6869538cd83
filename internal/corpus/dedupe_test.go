package corpus

import (
	"strings"
	"testing"

	"github.com/legicam/backend/internal/domain/entity"
)

func TestDedupeCorpsLePlusLongGagne(t *testing.T) {
	articles := []entity.Article{
		{ID: "stub", Numero: "30", Contenu: strings.Repeat("x", 40), Ordre: 0},
		{ID: "vrai", Numero: "30", Contenu: strings.Repeat("y", 400), Ordre: 1},
	}

	res := Dedupe(articles)

	if len(res.Canoniques) != 1 {
		t.Fatalf("%d canoniques, attendu 1", len(res.Canoniques))
	}
	if res.Canoniques[0].ID != "vrai" {
		t.Errorf("canonique %s, attendu le corps le plus long", res.Canoniques[0].ID)
	}
	if len(res.Doublons["30"]) != 1 || res.Doublons["30"][0].ID != "stub" {
		t.Errorf("le talon court doit rester inspectable en quarantaine: %+v", res.Doublons)
	}
}

func TestDedupeEgaliteParOrdre(t *testing.T) {
	articles := []entity.Article{
		{ID: "tard", Numero: "5", Contenu: "même taille", Ordre: 3},
		{ID: "tot", Numero: "5", Contenu: "même taille", Ordre: 1},
	}

	res := Dedupe(articles)
	if res.Canoniques[0].ID != "tot" {
		t.Errorf("à longueur égale, l'indice d'ordre le plus bas gagne, obtenu %s", res.Canoniques[0].ID)
	}
}

func TestDedupeSansDoublon(t *testing.T) {
	articles := []entity.Article{
		{ID: "a", Numero: "1", Contenu: "un"},
		{ID: "b", Numero: "2", Contenu: "deux"},
	}

	res := Dedupe(articles)
	if len(res.Canoniques) != 2 {
		t.Fatalf("%d canoniques, attendu 2", len(res.Canoniques))
	}
	if len(res.Doublons) != 0 {
		t.Errorf("quarantaine non vide sans doublon: %+v", res.Doublons)
	}
	// L'ordre d'entrée est préservé
	if res.Canoniques[0].ID != "a" || res.Canoniques[1].ID != "b" {
		t.Error("l'ordre d'entrée des articles n'est pas préservé")
	}
}

func TestDedupeDeterministe(t *testing.T) {
	articles := []entity.Article{
		{ID: "a", Numero: "7", Contenu: "court", Ordre: 0},
		{ID: "b", Numero: "7", Contenu: "beaucoup plus long que l'autre", Ordre: 1},
		{ID: "c", Numero: "8", Contenu: "seul", Ordre: 2},
	}

	premier := Dedupe(articles)
	second := Dedupe(articles)

	if len(premier.Canoniques) != len(second.Canoniques) {
		t.Fatal("deux passes sur la même entrée divergent")
	}
	for i := range premier.Canoniques {
		if premier.Canoniques[i].ID != second.Canoniques[i].ID {
			t.Errorf("position %d: %s puis %s", i, premier.Canoniques[i].ID, second.Canoniques[i].ID)
		}
	}
}
