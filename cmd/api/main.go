package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	_ "eisen_qms/docs"
	"eisen_qms/internal/adapter/http/routes"
	"eisen_qms/internal/config"
	"eisen_qms/internal/infrastructure/database"
	"eisen_qms/internal/jobs"
	"eisen_qms/internal/logger"
	"eisen_qms/internal/usecase"
)

const statusRefreshTimeout = 2 * time.Minute

// @title           Eisen QMS API
// @version         1.0
// @description     Quality tracking and billing for on-site inspection services.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	zapLog, err := logger.NewLogger(&cfg.Logging, &cfg.App)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = zapLog.Sync() }()

	if err := run(cfg, zapLog); err != nil {
		zapLog.Fatal("application stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, zapLog *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := database.NewDocumentStore(ctx, cfg, zapLog)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			zapLog.Warn("failed to close document store", zap.Error(err))
		}
	}()

	services := routes.Wire(store, usecase.SettingsFromConfig(cfg.Billing), zapLog)

	if cfg.Jobs.StatusRefreshEnabled {
		scheduler := jobs.NewScheduler(zapLog)
		if err := jobs.RegisterStatusRefreshJob(scheduler, services.StatusRefresh, zapLog, cfg.Jobs.StatusRefreshCron, statusRefreshTimeout, true); err != nil {
			return err
		}
		scheduler.Start()
		defer func() { <-scheduler.Stop().Done() }()
	}

	zapLog.Info("starting eisen qms",
		zap.Int("port", cfg.App.Port),
		zap.String("store", cfg.Store.Driver),
	)
	return routes.Run(ctx, routes.NewRouter(services.Handlers, zapLog), cfg.App.Port, zapLog)
}
