package seed

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"eisen_qms/internal/adapter/http/routes"
	"eisen_qms/internal/config"
	"eisen_qms/internal/domain/entities"
	"eisen_qms/internal/infrastructure/database"
	"eisen_qms/internal/usecase"
)

func newRepos(t *testing.T) usecase.Repositories {
	t.Helper()
	cfg := &config.Config{Store: config.StoreConfig{Driver: config.DriverSQLite, DSN: ":memory:", Timeout: 5}}
	store, closeFn, err := database.NewDocumentStore(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeFn() })
	return routes.NewRepositories(store)
}

func TestLoad_ReferenceDataset(t *testing.T) {
	ctx := context.Background()
	repos := newRepos(t)
	asOf := time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC)

	report, err := Load(ctx, repos, Reference(), asOf, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, Report{Clients: 2, Projects: 1, Tickets: 2, Weeks: 2, Inspections: 2, Invoices: 1, Payments: 1}, report)

	inv, err := repos.Invoices.GetByID(ctx, "FAC-001")
	require.NoError(t, err)
	assert.Equal(t, entities.InvoiceStatusVencida, inv.Status)
	assert.Equal(t, "2026-03-11", inv.DueDate.Format("2006-01-02"))

	pay, err := repos.Payments.GetByID(ctx, "PAG-001")
	require.NoError(t, err)
	assert.Equal(t, entities.PaymentStatusVencido, pay.Status)
}

func TestLoad_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	repos := newRepos(t)
	asOf := time.Date(2026, time.February, 20, 0, 0, 0, 0, time.UTC)

	_, err := Load(ctx, repos, Reference(), asOf, zap.NewNop())
	require.NoError(t, err)
	_, err = Load(ctx, repos, Reference(), asOf, zap.NewNop())
	require.NoError(t, err)

	d, err := usecase.NewDashboardUseCase(repos, usecase.DefaultSettings(), zap.NewNop()).Build(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, d.OpenInvoices+d.PaidInvoices)
	assert.True(t, d.TotalAR.Equal(decimal.NewFromInt(1600)))
	assert.Equal(t, 1, d.ReadyWeeks)
	assert.Equal(t, 1, d.ActiveTickets)
	assert.Equal(t, 1, d.WaitingTickets)
	assert.Equal(t, 3864, d.InspectedPieces)
	assert.Equal(t, 49, d.NOKPieces)
	assert.Equal(t, 0, d.NOKAlerts)
	require.Len(t, d.Projects, 1)
	assert.Equal(t, "EM26-01", d.Projects[0].ProjectID)
}
