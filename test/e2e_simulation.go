package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
)

const (
	baseURL = "http://localhost:8090/api/v1"
)

// Helper to check errors
func check(err error) {
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func post(path string, payload interface{}) map[string]interface{} {
	body, _ := json.Marshal(payload)
	resp, err := http.Post(baseURL+path, "application/json", bytes.NewReader(body))
	check(err)
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 300 {
		log.Fatalf("POST %s failed: %s - %s", path, resp.Status, string(raw))
	}
	var data map[string]interface{}
	json.Unmarshal(raw, &data)
	return data
}

func get(path string) map[string]interface{} {
	resp, err := http.Get(baseURL + path)
	check(err)
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 300 {
		log.Fatalf("GET %s failed: %s - %s", path, resp.Status, string(raw))
	}
	var data map[string]interface{}
	json.Unmarshal(raw, &data)
	return data
}

func main() {
	log.Println("=== Simulation E2E (extracteur + consommateur du portail) ===")

	// 1. Ingestion d'un code avec structure arborescente et un doublon
	log.Println("1. Ingestion d'un texte structuré...")
	s1, s2 := "sec-livre-1", "sec-titre-1"
	ingestion := map[string]interface{}{
		"id":     "11111111-1111-1111-1111-111111111111",
		"titre":  "Loi n° 2010/001 portant régime de l'entreprenant",
		"nature": "LOI",
		"sections": []map[string]interface{}{
			{"id": s1, "titre": "LIVRE I - DISPOSITIONS GÉNÉRALES"},
			{"id": s2, "titre": "TITRE II - DU STATUT", "parent_id": s1},
		},
		"articles": []map[string]interface{}{
			{"numero": "1", "contenu": "L'entreprenant est...", "ordre": 0, "section_id": s1},
			{"numero": "2", "contenu": "Stub de sommaire", "ordre": 1, "section_id": s2},
			{"numero": "2", "contenu": "Le statut de l'entreprenant se perd dans les conditions prévues par la présente loi.", "ordre": 2, "section_id": s2},
		},
	}
	res := post("/textes", ingestion)
	log.Printf("   -> Ingéré: %v", res["id"])

	// 2. Second texte, plat (articles sans sections)
	log.Println("2. Ingestion d'un texte plat...")
	post("/textes", map[string]interface{}{
		"id":     "22222222-2222-2222-2222-222222222222",
		"titre":  "Décret n° 2012/045 fixant les modalités d'application",
		"nature": "DECRET",
		"articles": []map[string]interface{}{
			{"numero": "3", "contenu": "Troisième", "ordre": 0},
			{"numero": "1", "contenu": "Premier", "ordre": 1},
			{"numero": "2", "contenu": "Deuxième", "ordre": 2},
		},
	})

	// 3. Structure : l'arbre doit porter le doublon en quarantaine
	log.Println("3. Lecture de la structure...")
	structure := get("/textes/11111111-1111-1111-1111-111111111111/structure")
	doublons := structure["doublons"].(map[string]interface{})
	log.Printf("   -> %d numéro(s) en doublon", len(doublons))

	// 4. Relation manuelle + vue inverse
	log.Println("4. Création d'une relation ABROGE...")
	post("/relations", map[string]interface{}{
		"source_id": "22222222-2222-2222-2222-222222222222",
		"cible_id":  "11111111-1111-1111-1111-111111111111",
		"type":      "ABROGE",
	})
	bundle := get("/textes/11111111-1111-1111-1111-111111111111/relations")
	counts := bundle["counts"].(map[string]interface{})
	log.Printf("   -> Compteurs: source=%v cible=%v", counts["as_source"], counts["as_target"])

	// 5. Suggestions
	log.Println("5. Recherche 'entreprenant'...")
	suggest := get("/suggest?q=entreprenant&limit=10")
	results := suggest["results"].([]interface{})
	log.Printf("   -> %d résultat(s)", len(results))
	for _, r := range results {
		hit := r.(map[string]interface{})
		fmt.Printf("      [%s] %v (score %v)\n", hit["type"], hit["titre"], hit["score"])
	}

	log.Println("=== Simulation terminée ===")
}
