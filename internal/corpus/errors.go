package corpus

import "fmt"

// StructuralError signale un parentage de sections corrompu (cycle ou forme
// invalide). C'est toujours un bug d'intégrité des données en amont, jamais
// un cas nominal : l'ingestion concernée doit être rejetée en bloc.
type StructuralError struct {
	SectionID string
	Reason    string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("structure invalide (section %s): %s", e.SectionID, e.Reason)
}

// ValidationError signale une ligne d'entrée malformée (ex: article sans numéro)
type ValidationError struct {
	Champ  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("entrée invalide (%s): %s", e.Champ, e.Reason)
}
