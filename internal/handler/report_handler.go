package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"inquirykit/internal/report"
	"inquirykit/internal/service"
	"inquirykit/pkg/metrics"
)

type ReportHandler struct {
	assessments *service.AssessmentService
}

func NewReportHandler(assessments *service.AssessmentService) *ReportHandler {
	return &ReportHandler{assessments: assessments}
}

// GetReport handles GET /assessments/:id/report?format=text|pdf
func (h *ReportHandler) GetReport(c *gin.Context) {
	userID := c.GetInt("user_id")

	format := c.DefaultQuery("format", "text")
	if format != "text" && format != "pdf" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be text or pdf"})
		return
	}

	a, err := h.assessments.Load(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrAssessmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "assessment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load assessment"})
		return
	}

	rep := report.Assemble(a, time.Now())

	switch format {
	case "pdf":
		data, err := report.RenderPDF(rep)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render report"})
			return
		}
		metrics.IncrementReportRendered("pdf")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", reportFilename(a.InquiryName, "pdf")))
		c.Data(http.StatusOK, "application/pdf", data)
	default:
		metrics.IncrementReportRendered("text")
		c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(report.RenderText(rep)))
	}
}

func reportFilename(inquiryName, ext string) string {
	name := inquiryName
	if name == "" {
		name = "assessment"
	}
	return name + "-report." + ext
}
