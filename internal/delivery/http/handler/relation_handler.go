package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/legicam/backend/internal/domain/entity"
	"github.com/legicam/backend/internal/service"
)

type RelationHandler struct {
	relationService service.RelationService
}

func NewRelationHandler(rs service.RelationService) *RelationHandler {
	return &RelationHandler{relationService: rs}
}

// CreateRelationRequest DTO pour la création d'une arête
type CreateRelationRequest struct {
	SourceID string `json:"source_id" binding:"required"`
	CibleID  string `json:"cible_id" binding:"required"`
	Type     string `json:"type" binding:"required"`
	Note     string `json:"note"`
}

func (h *RelationHandler) Create(c *gin.Context) {
	var req CreateRelationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rel, err := h.relationService.AddRelation(c.Request.Context(), req.SourceID, req.CibleID, entity.TypeRelation(req.Type), req.Note)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rel)
}

func (h *RelationHandler) Delete(c *gin.Context) {
	if err := h.relationService.RemoveRelation(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Relation supprimée"})
}

func (h *RelationHandler) GetForTexte(c *gin.Context) {
	bundle, err := h.relationService.GetRelations(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bundle)
}
