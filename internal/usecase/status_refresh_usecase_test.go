package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"eisen_qms/internal/domain/entities"
	mock_interfaces "eisen_qms/internal/usecase/interfaces/mocks"
)

type repoMocks struct {
	clients     *mock_interfaces.MockIClientRepository
	projects    *mock_interfaces.MockIProjectRepository
	tickets     *mock_interfaces.MockITicketRepository
	weeks       *mock_interfaces.MockIWeekRepository
	inspections *mock_interfaces.MockIInspectionRepository
	invoices    *mock_interfaces.MockIInvoiceRepository
	payments    *mock_interfaces.MockIPaymentRepository
}

func newRepoMocks(ctrl *gomock.Controller) (Repositories, repoMocks) {
	m := repoMocks{
		clients:     mock_interfaces.NewMockIClientRepository(ctrl),
		projects:    mock_interfaces.NewMockIProjectRepository(ctrl),
		tickets:     mock_interfaces.NewMockITicketRepository(ctrl),
		weeks:       mock_interfaces.NewMockIWeekRepository(ctrl),
		inspections: mock_interfaces.NewMockIInspectionRepository(ctrl),
		invoices:    mock_interfaces.NewMockIInvoiceRepository(ctrl),
		payments:    mock_interfaces.NewMockIPaymentRepository(ctrl),
	}
	return Repositories{
		Clients:     m.clients,
		Projects:    m.projects,
		Tickets:     m.tickets,
		Weeks:       m.weeks,
		Inspections: m.inspections,
		Invoices:    m.invoices,
		Payments:    m.payments,
	}, m
}

func (m repoMocks) expectSnapshot(projects []entities.Project, weeks []entities.ProjectWeek, invoices []entities.Invoice, payments []entities.Payment) {
	m.projects.EXPECT().List(gomock.Any()).Return(projects, nil)
	m.weeks.EXPECT().List(gomock.Any()).Return(weeks, nil)
	m.invoices.EXPECT().List(gomock.Any()).Return(invoices, nil)
	m.payments.EXPECT().List(gomock.Any()).Return(payments, nil)
	m.tickets.EXPECT().List(gomock.Any()).Return(nil, nil)
	m.inspections.EXPECT().List(gomock.Any()).Return(nil, nil)
}

func storedProject() entities.Project {
	return entities.Project{
		ID:         "EM26-01",
		Name:       "Sorteo housings",
		ClientName: "Eurospec",
		Status:     entities.ProjectStatusActivo,
	}
}

func TestStatusRefreshUseCase_WritesOnlyDrift(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repos, m := newRepoMocks(ctrl)
	uc := NewStatusRefreshUseCase(repos, DefaultSettings(), zap.NewNop())
	uc.now = clock("2026-03-12")

	// stored as Lista with the full score: no drift
	ready := readyWeek()
	ready.ID = "SEM-07-EM"
	ready.Score = 100

	// marked ready but missing its POD
	stale := readyWeek()
	stale.Documents.POD = entities.DocumentSlot{}
	stale.Score = 100

	invoiced := sentInvoice()
	invoiced.WeekID = ""

	// already aged at 03-12
	aged := sentInvoice()
	aged.ID = "FAC-002"
	aged.WeekID = ""
	aged.Status = entities.InvoiceStatusVencida
	aged.DueDate = day("2026-03-11")
	aged.DaysUntilDue = -1

	late := expectedPayment()

	m.expectSnapshot(
		[]entities.Project{storedProject()},
		[]entities.ProjectWeek{ready, stale},
		[]entities.Invoice{invoiced, aged},
		[]entities.Payment{late},
	)
	m.weeks.EXPECT().UpdateCompliance(gomock.Any(), "SEM-06-EM", entities.WeekStatusBloqueada, 75).Return(nil)
	m.invoices.EXPECT().UpdateAging(gomock.Any(), "FAC-001", entities.InvoiceStatusVencida, day("2026-03-11"), -1).Return(nil)
	m.payments.EXPECT().UpdateStatus(gomock.Any(), "PAG-001", entities.PaymentStatusVencido).Return(nil)
	m.projects.EXPECT().UpdateTotals(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p entities.Project) error {
			assert.Equal(t, entities.ProjectStatusBloqueado, p.Status)
			assert.True(t, p.Hours.Equal(dec(80)))
			assert.True(t, p.Invoiced.Equal(dec(3200)))
			assert.True(t, p.Pending.Equal(dec(3200)))
			return nil
		})

	report, err := uc.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, RefreshReport{Weeks: 1, Invoices: 1, Payments: 1, Projects: 1}, report)
}

func TestStatusRefreshUseCase_NothingToDo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repos, m := newRepoMocks(ctrl)
	uc := NewStatusRefreshUseCase(repos, DefaultSettings(), zap.NewNop())
	uc.now = clock("2026-03-12")

	m.expectSnapshot(nil, nil, nil, nil)

	report, err := uc.Refresh(context.Background())
	require.NoError(t, err)
	assert.Zero(t, report)
}

func TestStatusRefreshUseCase_StopsOnWriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repos, m := newRepoMocks(ctrl)
	uc := NewStatusRefreshUseCase(repos, DefaultSettings(), zap.NewNop())
	uc.now = clock("2026-03-12")

	stale := readyWeek()
	stale.Documents.POD = entities.DocumentSlot{}

	m.expectSnapshot(nil, []entities.ProjectWeek{stale}, nil, nil)
	m.weeks.EXPECT().UpdateCompliance(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("throttled"))

	report, err := uc.Refresh(context.Background())
	require.Error(t, err)
	assert.Zero(t, report.Weeks)
}
