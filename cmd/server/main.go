package main

import (
	"flag"
	"time"

	"go.uber.org/zap"

	"inquirykit/internal/handler"
	"inquirykit/internal/httpserver"
	"inquirykit/internal/repository"
	"inquirykit/internal/service"
	"inquirykit/internal/util"
	"inquirykit/pkg/config"
	"inquirykit/pkg/db"
	"inquirykit/pkg/logger"
	"inquirykit/pkg/redis"
)

func main() {
	configPath := flag.String("config", "config/base.yaml", "path to config file")
	flag.Parse()

	// 1. Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}

	log := logger.NewLogger()
	defer log.Sync()

	// 2. Init DB
	dbConn, err := db.NewConnection(cfg.DB, log)
	if err != nil {
		log.Fatal("DB initialization failed", zap.Error(err))
	}
	defer dbConn.Close()

	// 3. Init Redis
	rdb := redis.NewRedisClient(cfg.Redis)
	defer rdb.Close()

	// 4. Init repositories
	userRepo := repository.NewUserRepository(dbConn)
	assessmentRepo := repository.NewAssessmentRepository(dbConn)

	// 5. Init services
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret)
	assessmentService := service.NewAssessmentService(assessmentRepo, rdb, log)

	geminiClient := service.NewGeminiClient(cfg.Gemini)
	guard := util.NewInflightGuard(rdb, 2*time.Minute, log)
	narrativeService := service.NewNarrativeService(geminiClient, guard)

	if !geminiClient.Configured() {
		log.Warn("No Gemini API key configured, narrative generation disabled")
	}

	// 6. Init handlers
	authHandler := handler.NewAuthHandler(authService, assessmentService)
	catalogHandler := handler.NewCatalogHandler()
	benchmarkHandler := handler.NewBenchmarkHandler()
	assessmentHandler := handler.NewAssessmentHandler(assessmentService)
	reportHandler := handler.NewReportHandler(assessmentService)
	narrativeHandler := handler.NewNarrativeHandler(assessmentService, narrativeService)

	// 7. Init router
	router := httpserver.NewRouter(
		authHandler,
		catalogHandler,
		benchmarkHandler,
		assessmentHandler,
		reportHandler,
		narrativeHandler,
		cfg.JWT.Secret,
		dbConn,
	)

	// 8. Run server
	log.Info("Starting server", zap.String("port", cfg.Server.Port))
	if err := router.Run(cfg.Server.Port); err != nil {
		log.Fatal("server start failed", zap.Error(err))
	}
}
