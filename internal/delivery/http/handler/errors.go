package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/legicam/backend/internal/corpus"
	"github.com/legicam/backend/internal/domain/entity"
)

// respondError traduit les erreurs internes en un petit ensemble stable de
// conditions externes (introuvable / entrée invalide / conflit / interne)
// sans jamais exposer de détails du store ou de traces internes.
func respondError(c *gin.Context, err error) {
	var validation *corpus.ValidationError
	var structural *corpus.StructuralError

	switch {
	case errors.Is(err, entity.ErrTexteNotFound),
		errors.Is(err, entity.ErrRelationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, entity.ErrSelfRelation),
		errors.Is(err, entity.ErrInvalidRelationType):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.As(err, &validation), errors.As(err, &structural):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.Is(err, entity.ErrDuplicateRelation),
		errors.Is(err, entity.ErrTexteReferenced):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "erreur interne"})
	}
}
