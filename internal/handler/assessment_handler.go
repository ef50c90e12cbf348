package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"inquirykit/internal/model"
	"inquirykit/internal/service"
)

type AssessmentHandler struct {
	assessments *service.AssessmentService
}

func NewAssessmentHandler(assessments *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessments: assessments}
}

// List handles GET /assessments
func (h *AssessmentHandler) List(c *gin.Context) {
	userID := c.GetInt("user_id")

	summaries, err := h.assessments.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list assessments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"assessments": summaries})
}

// Save handles POST /assessments
func (h *AssessmentHandler) Save(c *gin.Context) {
	userID := c.GetInt("user_id")

	var a model.Assessment
	if err := c.ShouldBindJSON(&a); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	saved, err := h.assessments.Save(c.Request.Context(), userID, &a)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save assessment"})
		return
	}

	c.JSON(http.StatusOK, saved)
}

// Get handles GET /assessments/:id
func (h *AssessmentHandler) Get(c *gin.Context) {
	userID := c.GetInt("user_id")

	a, err := h.assessments.Load(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrAssessmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "assessment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load assessment"})
		return
	}

	c.JSON(http.StatusOK, a)
}

// GetCurrent handles GET /assessments/current
func (h *AssessmentHandler) GetCurrent(c *gin.Context) {
	userID := c.GetInt("user_id")

	id, err := h.assessments.CurrentID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve current assessment"})
		return
	}
	if id == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "no current assessment"})
		return
	}

	a, err := h.assessments.Load(c.Request.Context(), userID, id)
	if err != nil {
		if errors.Is(err, service.ErrAssessmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no current assessment"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load assessment"})
		return
	}

	c.JSON(http.StatusOK, a)
}

// Delete handles DELETE /assessments/:id
func (h *AssessmentHandler) Delete(c *gin.Context) {
	userID := c.GetInt("user_id")

	if err := h.assessments.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		if errors.Is(err, service.ErrAssessmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "assessment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete assessment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// Export handles GET /assessments/:id/export as a JSON file download.
func (h *AssessmentHandler) Export(c *gin.Context) {
	userID := c.GetInt("user_id")

	a, err := h.assessments.Load(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrAssessmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "assessment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load assessment"})
		return
	}

	data, err := a.ExportJSON()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to serialize assessment"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", a.ExportFilename()))
	c.Data(http.StatusOK, "application/json", data)
}

// Import handles POST /assessments/import. The body is a previously
// exported assessment file; it is saved as a new or updated assessment.
func (h *AssessmentHandler) Import(c *gin.Context) {
	userID := c.GetInt("user_id")

	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read upload"})
		return
	}

	a, err := model.ImportAssessment(data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON file"})
		return
	}

	saved, err := h.assessments.Save(c.Request.Context(), userID, a)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save assessment"})
		return
	}

	c.JSON(http.StatusOK, saved)
}
