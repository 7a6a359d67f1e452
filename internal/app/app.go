package app

import (
	"context"
	"literacy_edu_backend/internal/config"
	"literacy_edu_backend/internal/controller"
	"literacy_edu_backend/internal/repository"
	"literacy_edu_backend/internal/service"
	"literacy_edu_backend/pkg/logger"
	"literacy_edu_backend/pkg/monitoring"
	"literacy_edu_backend/pkg/security"
	"literacy_edu_backend/pkg/tracing"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
}

type repositories struct {
	passage *repository.PassageRepository
	prompt  *repository.PromptRepository
}

type services struct {
	reading *service.ReadingService
	writing *service.WritingService
}

type controllers struct {
	reading    *controller.ReadingController
	writing    *controller.WritingController
	curriculum *controller.CurriculumController
	health     *controller.HealthController
}

func (a *App) initRepositories() *repositories {
	return &repositories{
		passage: repository.NewPassageRepository(),
		prompt:  repository.NewPromptRepository(),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.reading = service.NewReadingService(repos.passage)

	// The evaluation backend is fixed here, once, from configuration.
	// No credential means heuristic-only mode, which is fully supported.
	var backend service.TextEvaluationBackend
	if cfg.AI.APIKey != "" {
		backend = service.NewRemoteModelBackend(service.NewAIService(cfg.AI))
		logger.Log.Info("writing evaluation backend: remote model", zap.String("model", cfg.AI.Model))
	} else {
		backend = service.NewHeuristicBackend()
		logger.Log.Info("writing evaluation backend: heuristic (no API credential configured)")
	}
	s.writing = service.NewWritingService(repos.prompt, backend)

	return s
}

func (a *App) initControllers(s *services, cfg *config.Config) *controllers {
	return &controllers{
		reading:    controller.NewReadingController(s.reading),
		writing:    controller.NewWritingController(s.writing),
		curriculum: controller.NewCurriculumController(),
		health:     controller.NewHealthController(cfg.AI.APIKey != ""),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.Server.Mode)
	logger.Log.Info("Logger initialized successfully")

	app := &App{Config: cfg}

	repos := app.initRepositories()
	services := app.initServices(repos, cfg)
	controllers := app.initControllers(services, cfg)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("literacy-assessment", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
