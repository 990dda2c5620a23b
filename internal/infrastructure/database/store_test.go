package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"eisen_qms/internal/config"
	"eisen_qms/internal/usecase/interfaces"
)

func TestNewDocumentStore_SQLite(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{Store: config.StoreConfig{Driver: config.DriverSQLite, DSN: ":memory:", Timeout: 5}}

	store, closeFn, err := NewDocumentStore(ctx, cfg, zap.NewNop())
	require.NoError(t, err)
	defer func() { _ = closeFn() }()

	require.NoError(t, store.Put(ctx, "clientes", "CLI-1", interfaces.Document{"nombre": "Eurospec"}))
	doc, err := store.Get(ctx, "clientes", "CLI-1")
	require.NoError(t, err)
	assert.Equal(t, "Eurospec", doc["nombre"])
}

func TestNewDocumentStore_UnknownDriver(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Driver: "mongo"}}

	_, _, err := NewDocumentStore(context.Background(), cfg, zap.NewNop())
	assert.Error(t, err)
}

func TestOpenGorm_RejectsDynamo(t *testing.T) {
	_, err := OpenGorm(config.StoreConfig{Driver: config.DriverDynamoDB})
	assert.Error(t, err)
}

func TestNewDynamoDBConfig_UsesRegion(t *testing.T) {
	awsCfg, err := NewDynamoDBConfig(context.Background(), config.AWSConfig{
		Region:          "us-east-2",
		AccessKeyID:     "local",
		SecretAccessKey: "local",
	})
	require.NoError(t, err)
	assert.Equal(t, "us-east-2", awsCfg.Region)

	creds, err := awsCfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "local", creds.AccessKeyID)
}
