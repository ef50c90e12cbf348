package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"inquirykit/internal/handler"
)

type Router struct {
	Engine *gin.Engine
}

func NewRouter(
	authHandler *handler.AuthHandler,
	catalogHandler *handler.CatalogHandler,
	benchmarkHandler *handler.BenchmarkHandler,
	assessmentHandler *handler.AssessmentHandler,
	reportHandler *handler.ReportHandler,
	narrativeHandler *handler.NarrativeHandler,
	jwtSecret string,
	db *pgxpool.Pool,
) *Router {
	r := gin.Default()
	r.Use(MetricsMiddleware())

	// Health endpoints
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.HEAD("/healthz", func(c *gin.Context) {
		c.Status(200)
	})
	r.GET("/readyz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c, 1*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			c.JSON(500, gin.H{"status": "db_not_ready", "error": err.Error()})
			return
		}

		c.JSON(200, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)

	// Protected
	auth := r.Group("/")
	auth.Use(AuthMiddleware(jwtSecret))
	{
		auth.POST("/logout", authHandler.Logout)

		auth.GET("/catalog", catalogHandler.GetCatalog)
		auth.GET("/benchmarks", benchmarkHandler.GetBenchmarks)
		auth.GET("/scales", benchmarkHandler.GetScales)
		auth.GET("/scales/:scale/breakdown", benchmarkHandler.GetBreakdown)

		auth.GET("/assessments", assessmentHandler.List)
		auth.POST("/assessments", assessmentHandler.Save)
		auth.GET("/assessments/current", assessmentHandler.GetCurrent)
		auth.POST("/assessments/import", assessmentHandler.Import)
		auth.GET("/assessments/:id", assessmentHandler.Get)
		auth.DELETE("/assessments/:id", assessmentHandler.Delete)
		auth.GET("/assessments/:id/export", assessmentHandler.Export)
		auth.GET("/assessments/:id/report", reportHandler.GetReport)

		auth.POST("/assessments/:id/narrative/overall", narrativeHandler.GenerateOverall)
		auth.POST("/assessments/:id/narrative/phase/:phaseID", narrativeHandler.GeneratePhase)
		auth.POST("/assessments/:id/narrative/gap/:questionID", narrativeHandler.GenerateGapAction)
	}

	return &Router{Engine: r}
}

func (r *Router) Run(port string) error {
	return r.Engine.Run(port)
}
