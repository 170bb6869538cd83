package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/legicam/backend/internal/domain/entity"
	"github.com/legicam/backend/internal/service"
)

type TexteHandler struct {
	texteService     service.TexteService
	structureService service.StructureService
	ingestionService service.IngestionService
	storageService   service.StorageService
}

func NewTexteHandler(ts service.TexteService, ss service.StructureService, is service.IngestionService, sts service.StorageService) *TexteHandler {
	return &TexteHandler{
		texteService:     ts,
		structureService: ss,
		ingestionService: is,
		storageService:   sts,
	}
}

// SectionRow est une ligne de section produite par l'extracteur amont
type SectionRow struct {
	ID       string  `json:"id"`
	Titre    string  `json:"titre" binding:"required"`
	ParentID *string `json:"parent_id"`
}

// ArticleRow est une ligne d'article produite par l'extracteur amont
type ArticleRow struct {
	ID        string  `json:"id"`
	Numero    string  `json:"numero"`
	Contenu   string  `json:"contenu"`
	Ordre     int     `json:"ordre"`
	Statut    string  `json:"statut"`
	SectionID *string `json:"section_id"`
}

// IngestTexteRequest est la charge utile d'ingestion complète : le texte
// plus ses lignes de sections et d'articles à plat
type IngestTexteRequest struct {
	ID          string       `json:"id"`
	Titre       string       `json:"titre" binding:"required"`
	Nature      string       `json:"nature" binding:"required"`
	Statut      string       `json:"statut"`
	Description string       `json:"description"`
	SourceObjet string       `json:"source_objet"`
	Sections    []SectionRow `json:"sections"`
	Articles    []ArticleRow `json:"articles"`
}

func (h *TexteHandler) Ingest(c *gin.Context) {
	var req IngestTexteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Mapping DTO -> Entités. Les identifiants absents sont frappés ici ;
	// ceux fournis par l'extracteur sont conservés (ingestion rejouable).
	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	statut := entity.StatutVigueur
	if req.Statut != "" {
		statut = entity.StatutTexte(req.Statut)
	}
	texte := entity.Texte{
		ID:          req.ID,
		Titre:       req.Titre,
		Nature:      entity.NatureTexte(req.Nature),
		Statut:      statut,
		Description: req.Description,
		SourceObjet: req.SourceObjet,
		CreatedAt:   time.Now(),
	}

	sections := make([]entity.Section, 0, len(req.Sections))
	for i, row := range req.Sections {
		if row.ID == "" {
			row.ID = uuid.New().String()
		}
		sections = append(sections, entity.Section{
			ID:       row.ID,
			TexteID:  texte.ID,
			Titre:    row.Titre,
			ParentID: row.ParentID,
			Position: i,
		})
	}

	articles := make([]entity.Article, 0, len(req.Articles))
	for _, row := range req.Articles {
		if row.ID == "" {
			row.ID = uuid.New().String()
		}
		statutArticle := entity.StatutVigueur
		if row.Statut != "" {
			statutArticle = entity.StatutTexte(row.Statut)
		}
		articles = append(articles, entity.Article{
			ID:        row.ID,
			TexteID:   texte.ID,
			Numero:    row.Numero,
			Contenu:   row.Contenu,
			Ordre:     row.Ordre,
			Statut:    statutArticle,
			SectionID: row.SectionID,
		})
	}

	if err := h.ingestionService.Ingest(c.Request.Context(), &texte, sections, articles); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Texte ingéré",
		"id":       texte.ID,
		"sections": len(sections),
		"articles": len(articles),
	})
}

func (h *TexteHandler) List(c *gin.Context) {
	textes, err := h.texteService.GetAllTextes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, textes)
}

func (h *TexteHandler) GetDetails(c *gin.Context) {
	texte, err := h.texteService.GetTexteByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, texte)
}

func (h *TexteHandler) Delete(c *gin.Context) {
	if err := h.texteService.DeleteTexte(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Texte supprimé"})
}

func (h *TexteHandler) GetStructure(c *gin.Context) {
	structure, err := h.structureService.GetStructure(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, structure)
}

func (h *TexteHandler) GetUploadURL(c *gin.Context) {
	fileName := c.Query("file_name")
	if fileName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "le paramètre file_name est requis"})
		return
	}

	url, objectName, err := h.storageService.GenerateUploadURL(c.Request.Context(), fileName)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"upload_url":   url,
		"source_objet": objectName,
	})
}
