package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/legicam/backend/internal/service"
)

const suggestLimitDefaut = 10
const suggestLimitMax = 50

type SuggestHandler struct {
	suggestService service.SuggestService
}

func NewSuggestHandler(ss service.SuggestService) *SuggestHandler {
	return &SuggestHandler{suggestService: ss}
}

func (h *SuggestHandler) Suggest(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "le paramètre q est requis"})
		return
	}

	limit := suggestLimitDefaut
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit doit être un entier positif"})
			return
		}
		limit = n
	}
	if limit > suggestLimitMax {
		limit = suggestLimitMax
	}

	hits, err := h.suggestService.Suggest(c.Request.Context(), q, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":   q,
		"results": hits,
	})
}
