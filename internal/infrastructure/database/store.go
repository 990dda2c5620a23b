package database

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"eisen_qms/internal/adapter/persistence/docstore"
	"eisen_qms/internal/config"
	"eisen_qms/internal/usecase/interfaces"
)

// NewDocumentStore builds the document store selected by cfg.Store.Driver.
// The returned close function releases the underlying connection.
func NewDocumentStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (interfaces.IDocumentStore, func() error, error) {
	timeout := cfg.Store.TimeoutDuration()

	switch cfg.Store.Driver {
	case config.DriverDynamoDB:
		ddb, err := ConnectDynamoDB(ctx, cfg.AWS)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create dynamodb client: %w", err)
		}
		log.Info("using dynamodb document store",
			zap.String("region", cfg.AWS.Region),
			zap.String("endpoint", cfg.AWS.Endpoint),
			zap.String("table_prefix", cfg.Store.TablePrefix),
		)
		return docstore.NewDynamoStore(ddb, cfg.Store.TablePrefix, timeout), func() error { return nil }, nil

	case config.DriverSQLite, config.DriverPostgres:
		db, err := OpenGorm(cfg.Store)
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, err
		}
		store := docstore.NewSQLStore(db, timeout)
		if err := store.Migrate(ctx); err != nil {
			_ = sqlDB.Close()
			return nil, nil, fmt.Errorf("failed to migrate documents table: %w", err)
		}
		log.Info("using sql document store", zap.String("driver", cfg.Store.Driver))
		return store, sqlDB.Close, nil
	}
	return nil, nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
}
