package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inquirykit/internal/catalog"
)

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// GetCatalog handles GET /catalog. The question set is fixed, so this is a
// plain dump of the phase structure.
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"phases":         catalog.Phases(),
		"totalQuestions": catalog.TotalQuestionCount(),
	})
}
