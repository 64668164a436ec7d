package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/api/http"
	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/api/http/handlers"
	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/auth"
	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/config"
	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/events"
	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/observability"
	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/persistence"
	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/report"
	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/repository"
	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/service"
	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/undo"
	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, driver, err := persistence.Open(cfg.Database, logger)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()

	bootstrapCtx, bootstrapCancel := context.WithTimeout(ctx, 30*time.Second)
	err = persistence.Bootstrap(bootstrapCtx, db, driver, persistence.BootstrapOptions{
		AdminUsername: cfg.Auth.BootstrapUsername,
		AdminPassword: cfg.Auth.BootstrapPassword,
		AdminFullName: cfg.Auth.BootstrapFullName,
		BcryptCost:    cfg.Auth.BcryptCost,
	}, logger)
	bootstrapCancel()
	if err != nil {
		logger.Fatal("failed to bootstrap schema", zap.Error(err))
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	surveyRepo := repository.NewSurveyRepository(db)
	userRepo := repository.NewUserRepository(db)

	dispatcher := events.NewInMemoryDispatcher(logger)
	statsCache := service.NewStatsCache(redis.Client, time.Duration(cfg.Stats.CacheTTLSeconds)*time.Second, logger)
	worker.StartCacheWorker(statsCache, dispatcher)

	authService := service.NewAuthService(cfg.Auth, userRepo)
	surveyService := service.NewSurveyService(service.SurveyDependencies{
		SurveyRepo: surveyRepo,
		UndoBuffer: undo.New(undo.DefaultCapacity),
		Dispatcher: dispatcher,
	})
	composer := report.NewComposer(report.NewPDFRenderer())
	reportService := service.NewReportService(surveyRepo, composer, statsCache, logger)

	authMiddleware := auth.NewMiddleware(authService.TokenManager())
	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, db, driver, redis, metrics),
		Users:          handlers.NewUsersHandler(authService),
		Surveys:        handlers.NewSurveysHandler(surveyService),
		Reports:        handlers.NewReportsHandler(reportService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
