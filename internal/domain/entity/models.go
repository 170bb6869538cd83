package entity

import (
	"time"
)

// Définition des types ENUM pour garantir la sécurité du typage
type NatureTexte string
type StatutTexte string

const (
	NatureLoi                  NatureTexte = "LOI"
	NatureLoiOrganique         NatureTexte = "LOI_ORGANIQUE"
	NatureLoiConstitutionnelle NatureTexte = "LOI_CONSTITUTIONNELLE"
	NatureDecret               NatureTexte = "DECRET"
	NatureOrdonnance           NatureTexte = "ORDONNANCE"
	NatureArrete               NatureTexte = "ARRETE"
	NatureCirculaire           NatureTexte = "CIRCULAIRE"
	NatureDecision             NatureTexte = "DECISION"
	NatureCode                 NatureTexte = "CODE"
	NatureJurisprudence        NatureTexte = "JURISPRUDENCE"
	NatureConvention           NatureTexte = "CONVENTION"
	NatureTraite               NatureTexte = "TRAITE"
	NatureActeUniformeOHADA    NatureTexte = "ACTE_UNIFORME_OHADA"
	NatureJurisprudenceCCJA    NatureTexte = "JURISPRUDENCE_CCJA"
	NatureTraiteOHADA          NatureTexte = "TRAITE_OHADA"
	NatureReglementOHADA       NatureTexte = "REGLEMENT_OHADA"
	NatureAutre                NatureTexte = "AUTRE"
)

const (
	StatutVigueur     StatutTexte = "VIGUEUR"
	StatutVigueurDiff StatutTexte = "VIGUEUR_DIFF"
	StatutModifie     StatutTexte = "MODIFIE"
	StatutAbroge      StatutTexte = "ABROGE"
	StatutAbrogeDiff  StatutTexte = "ABROGE_DIFF"
	StatutPerime      StatutTexte = "PERIME"
)

var naturesValides = map[NatureTexte]bool{
	NatureLoi: true, NatureLoiOrganique: true, NatureLoiConstitutionnelle: true,
	NatureDecret: true, NatureOrdonnance: true, NatureArrete: true,
	NatureCirculaire: true, NatureDecision: true, NatureCode: true,
	NatureJurisprudence: true, NatureConvention: true, NatureTraite: true,
	NatureActeUniformeOHADA: true, NatureJurisprudenceCCJA: true,
	NatureTraiteOHADA: true, NatureReglementOHADA: true, NatureAutre: true,
}

var statutsValides = map[StatutTexte]bool{
	StatutVigueur: true, StatutVigueurDiff: true, StatutModifie: true,
	StatutAbroge: true, StatutAbrogeDiff: true, StatutPerime: true,
}

func (n NatureTexte) IsValid() bool { return naturesValides[n] }
func (s StatutTexte) IsValid() bool { return statutsValides[s] }

// Texte représente un texte juridique complet (loi, décret, code, acte OHADA...)
type Texte struct {
	ID          string      `json:"id" db:"id"`
	Titre       string      `json:"titre" db:"titre"`
	Nature      NatureTexte `json:"nature" db:"nature"`
	Statut      StatutTexte `json:"statut" db:"statut"`
	Description string      `json:"description,omitempty" db:"description"`
	// SourceObjet est la clé de l'objet MinIO contenant le PDF d'origine
	SourceObjet string    `json:"source_objet,omitempty" db:"source_objet"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

func (Texte) TableName() string {
	return "textes"
}

// Section représente un intitulé structurel (LIVRE, TITRE, CHAPITRE...) au sein d'un texte
type Section struct {
	ID      string `json:"id" db:"id"`
	TexteID string `json:"texte_id" db:"texte_id"`
	// Titre brut tel qu'extrait, ex: "TITRE II - DES OBLIGATIONS"
	Titre    string  `json:"titre" db:"titre"`
	ParentID *string `json:"parent_id" db:"parent_id"`
	// Position d'origine dans le flux d'extraction (clé de tri de secours)
	Position int `json:"position" db:"position"`
}

func (Section) TableName() string {
	return "sections"
}

// Article représente la plus petite disposition juridique adressable
type Article struct {
	ID      string `json:"id" db:"id"`
	TexteID string `json:"texte_id" db:"texte_id"`
	// Numero déclaré en texte libre, ex: "30", "30-1", "L.30"
	Numero    string      `json:"numero" db:"numero"`
	Contenu   string      `json:"contenu" db:"contenu"`
	Ordre     int         `json:"ordre" db:"ordre"`
	Statut    StatutTexte `json:"statut" db:"statut"`
	SectionID *string     `json:"section_id" db:"section_id"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`

	// Champs joints (non persistés)
	TexteTitre string `json:"texte_titre,omitempty" db:"texte_titre"`
}

func (Article) TableName() string {
	return "articles"
}

// TypeRelation définit l'effet juridique d'un texte sur un autre
type TypeRelation string

const (
	RelationAbroge   TypeRelation = "ABROGE"
	RelationModifie  TypeRelation = "MODIFIE"
	RelationComplete TypeRelation = "COMPLETE"
	RelationCite     TypeRelation = "CITE"
	RelationApplique TypeRelation = "APPLIQUE"
	RelationRatifie  TypeRelation = "RATIFIE"
)

// relationCles associe chaque type stocké à sa clé JSON directe et à la clé
// de sa vue inverse. L'arête n'est jamais dupliquée en base : la vue inverse
// est calculée à la lecture via cette table.
var relationCles = map[TypeRelation]struct {
	Directe string
	Inverse string
}{
	RelationAbroge:   {"abroge", "abrogePar"},
	RelationModifie:  {"modifie", "modifiePar"},
	RelationComplete: {"complete", "completePar"},
	RelationCite:     {"cite", "citePar"},
	RelationApplique: {"applique", "appliquePar"},
	RelationRatifie:  {"ratifie", "ratifiePar"},
}

func (t TypeRelation) IsValid() bool {
	_, ok := relationCles[t]
	return ok
}

// ForwardKey retourne la clé JSON de la vue directe ("abroge", "cite", ...)
func (t TypeRelation) ForwardKey() string {
	return relationCles[t].Directe
}

// InverseKey retourne la clé JSON de la vue inverse ("abrogePar", "citePar", ...)
func (t TypeRelation) InverseKey() string {
	return relationCles[t].Inverse
}

// TypesRelation liste les types dans un ordre stable
func TypesRelation() []TypeRelation {
	return []TypeRelation{
		RelationAbroge, RelationModifie, RelationComplete,
		RelationCite, RelationApplique, RelationRatifie,
	}
}

// TexteRelation représente une arête orientée et typée entre deux textes
type TexteRelation struct {
	ID        string       `json:"id" db:"id"`
	SourceID  string       `json:"source_id" db:"source_id"`
	CibleID   string       `json:"cible_id" db:"cible_id"`
	Type      TypeRelation `json:"type" db:"type"`
	Note      string       `json:"note,omitempty" db:"note"`
	CreatedAt time.Time    `json:"created_at" db:"created_at"`

	// Champs joints (non persistés) : titres des deux textes pour éviter
	// un second aller-retour côté consommateur
	SourceTitre string `json:"source_titre,omitempty" db:"source_titre"`
	CibleTitre  string `json:"cible_titre,omitempty" db:"cible_titre"`
}

func (TexteRelation) TableName() string {
	return "texte_relations"
}

// RelationCounts résume le nombre d'arêtes dont un texte est source ou cible
type RelationCounts struct {
	AsSource int `json:"as_source"`
	AsTarget int `json:"as_target"`
	Total    int `json:"total"`
}

// RelationBundle est la vue complète des relations d'un texte : les compteurs
// plus une entrée par clé (6 directes + 6 inverses), toujours présentes même vides
type RelationBundle struct {
	Counts    RelationCounts             `json:"counts"`
	Relations map[string][]TexteRelation `json:"relations"`
}

// NewRelationBundle initialise le bundle avec les 12 clés à vide
func NewRelationBundle() *RelationBundle {
	rels := make(map[string][]TexteRelation, 12)
	for _, t := range TypesRelation() {
		rels[t.ForwardKey()] = []TexteRelation{}
		rels[t.InverseKey()] = []TexteRelation{}
	}
	return &RelationBundle{Relations: rels}
}

// Suggestion est un résultat de recherche unifié (article ou texte)
type Suggestion struct {
	// Type vaut "article" ou "document" pour router la navigation côté client
	Type    string  `json:"type"`
	ID      string  `json:"id"`
	TexteID string  `json:"texte_id,omitempty"`
	Titre   string  `json:"titre"`
	Extrait string  `json:"extrait,omitempty"`
	Score   float64 `json:"score"`
}
