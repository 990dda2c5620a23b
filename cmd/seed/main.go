// Command seed loads the reference dataset into the configured document store.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"eisen_qms/internal/adapter/http/routes"
	"eisen_qms/internal/config"
	"eisen_qms/internal/domain/rules"
	"eisen_qms/internal/infrastructure/database"
	"eisen_qms/internal/logger"
	"eisen_qms/internal/seed"
)

func main() {
	asOfFlag := flag.String("as-of", "", "date invoices and payments are aged at, YYYY-MM-DD (default today)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	zapLog, err := logger.NewLogger(&cfg.Logging, &cfg.App)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = zapLog.Sync() }()

	if err := run(cfg, *asOfFlag, zapLog); err != nil {
		zapLog.Fatal("seed failed", zap.Error(err))
	}
}

func run(cfg *config.Config, asOfFlag string, zapLog *zap.Logger) error {
	asOf := rules.DateOf(time.Now())
	if asOfFlag != "" {
		parsed, err := rules.ParseDate(asOfFlag)
		if err != nil {
			return err
		}
		asOf = parsed
	}

	ctx := context.Background()
	store, closeStore, err := database.NewDocumentStore(ctx, cfg, zapLog)
	if err != nil {
		return err
	}
	defer func() { _ = closeStore() }()

	_, err = seed.Load(ctx, routes.NewRepositories(store), seed.Reference(), asOf, zapLog)
	return err
}
