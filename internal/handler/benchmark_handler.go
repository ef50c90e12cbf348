package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"inquirykit/internal/benchmark"
)

type BenchmarkHandler struct{}

func NewBenchmarkHandler() *BenchmarkHandler {
	return &BenchmarkHandler{}
}

// GetBenchmarks handles GET /benchmarks?subject=&type=&status=&scale=
func (h *BenchmarkHandler) GetBenchmarks(c *gin.Context) {
	f := benchmark.Filter{
		Subject: c.Query("subject"),
		Type:    c.Query("type"),
		Status:  c.Query("status"),
		Scale:   benchmark.Scale(c.Query("scale")),
	}
	if f.Scale != "" && !benchmark.ValidScale(f.Scale) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid scale"})
		return
	}

	cases := benchmark.FilterCases(benchmark.Cases(time.Now()), f)
	c.JSON(http.StatusOK, gin.H{
		"cases":    cases,
		"count":    len(cases),
		"subjects": benchmark.SubjectAreas,
	})
}

// GetScales handles GET /scales: the tier profiles and cost categories
// that drive the planning module.
func (h *BenchmarkHandler) GetScales(c *gin.Context) {
	profiles := make([]gin.H, 0, len(benchmark.ScaleOrder))
	for _, scale := range benchmark.ScaleOrder {
		p := benchmark.Profiles[scale]
		profiles = append(profiles, gin.H{
			"scale":   scale,
			"profile": p,
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"profiles":   profiles,
		"categories": benchmark.Categories,
	})
}

// GetBreakdown handles GET /scales/:scale/breakdown?budget=
// Without a budget the tier average is used.
func (h *BenchmarkHandler) GetBreakdown(c *gin.Context) {
	scale := benchmark.Scale(c.Param("scale"))
	if !benchmark.ValidScale(scale) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid scale"})
		return
	}

	var override *float64
	if raw := c.Query("budget"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid budget"})
			return
		}
		override = &v
	}

	budget := benchmark.WorkingBudget(scale, override)
	c.JSON(http.StatusOK, gin.H{
		"scale":     scale,
		"budget":    budget,
		"breakdown": benchmark.Breakdown(scale, budget),
	})
}
