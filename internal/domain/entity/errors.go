package entity

import "errors"

// Erreurs sentinelles du domaine. Les handlers HTTP les traduisent en codes
// de statut stables sans exposer de détails internes.
var (
	ErrTexteNotFound    = errors.New("texte introuvable")
	ErrRelationNotFound = errors.New("relation introuvable")

	// ErrSelfRelation : un texte ne peut pas agir juridiquement sur lui-même
	ErrSelfRelation = errors.New("relation invalide: source et cible identiques")

	// ErrDuplicateRelation : le triplet (source, cible, type) existe déjà
	ErrDuplicateRelation = errors.New("relation déjà enregistrée")

	// ErrInvalidRelationType : type hors de l'énumération ABROGE..RATIFIE
	ErrInvalidRelationType = errors.New("type de relation inconnu")

	// ErrTexteReferenced : suppression refusée car des relations pointent
	// encore vers ce texte (politique par défaut, voir config)
	ErrTexteReferenced = errors.New("texte référencé par des relations existantes")
)
