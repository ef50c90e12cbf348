package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"inquirykit/internal/model"
	"inquirykit/internal/service"
)

type NarrativeHandler struct {
	assessments *service.AssessmentService
	narratives  *service.NarrativeService
}

func NewNarrativeHandler(assessments *service.AssessmentService, narratives *service.NarrativeService) *NarrativeHandler {
	return &NarrativeHandler{assessments: assessments, narratives: narratives}
}

// GenerateOverall handles POST /assessments/:id/narrative/overall
func (h *NarrativeHandler) GenerateOverall(c *gin.Context) {
	h.generate(c, func(userID int, a *model.Assessment) (string, error) {
		return h.narratives.GenerateOverall(c.Request.Context(), userID, a)
	})
}

// GeneratePhase handles POST /assessments/:id/narrative/phase/:phaseID
func (h *NarrativeHandler) GeneratePhase(c *gin.Context) {
	h.generate(c, func(userID int, a *model.Assessment) (string, error) {
		return h.narratives.GeneratePhase(c.Request.Context(), userID, a, c.Param("phaseID"))
	})
}

// GenerateGapAction handles POST /assessments/:id/narrative/gap/:questionID
func (h *NarrativeHandler) GenerateGapAction(c *gin.Context) {
	h.generate(c, func(userID int, a *model.Assessment) (string, error) {
		return h.narratives.GenerateGapAction(c.Request.Context(), userID, a, c.Param("questionID"))
	})
}

func (h *NarrativeHandler) generate(c *gin.Context, run func(int, *model.Assessment) (string, error)) {
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

	text, err := run(userID, a)
	if err != nil {
		h.writeGenerationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"narrative": text})
}

func (h *NarrativeHandler) writeGenerationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNoAPIKey):
		c.JSON(http.StatusBadRequest, gin.H{"error": "no API key configured for narrative generation"})
	case errors.Is(err, service.ErrGenerationInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": "a generation is already in progress"})
	case errors.Is(err, service.ErrPhaseNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "phase not found"})
	case errors.Is(err, service.ErrQuestionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "gap not found"})
	default:
		var upstream *service.UpstreamError
		if errors.As(err, &upstream) {
			c.JSON(http.StatusBadGateway, gin.H{
				"error":          "narrative generation failed",
				"upstreamStatus": upstream.StatusCode,
				"upstreamError":  upstream.Message,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "narrative generation failed"})
	}
}
