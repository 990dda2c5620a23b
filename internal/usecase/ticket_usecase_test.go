package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"eisen_qms/internal/domain"
	"eisen_qms/internal/domain/entities"
	mock_interfaces "eisen_qms/internal/usecase/interfaces/mocks"
)

func newTicketUseCase(ctrl *gomock.Controller, settings Settings) (*TicketUseCase, *mock_interfaces.MockITicketRepository, *mock_interfaces.MockIClientRepository) {
	tickets := mock_interfaces.NewMockITicketRepository(ctrl)
	clients := mock_interfaces.NewMockIClientRepository(ctrl)
	uc := NewTicketUseCase(tickets, clients, settings, zap.NewNop())
	uc.now = clock("2026-02-02")
	return uc, tickets, clients
}

func TestTicketUseCase_Create(t *testing.T) {
	t.Run("waits for po", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, tickets, _ := newTicketUseCase(ctrl, DefaultSettings())

		tickets.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(entities.Ticket{}, nil)
		tickets.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		got, err := uc.Create(context.Background(), entities.Ticket{
			ID: "TK-001", ClientName: "Eurospec", Issue: "Rebaba en housing", RequiresPO: true,
		})
		require.NoError(t, err)
		assert.Equal(t, entities.TicketStatusEnEspera, got.Status)
		assert.Equal(t, day("2026-02-02"), got.OpenedOn)
	})

	t.Run("po on creation starts in progress", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, tickets, _ := newTicketUseCase(ctrl, DefaultSettings())

		tickets.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(entities.Ticket{}, nil)
		tickets.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		got, err := uc.Create(context.Background(), entities.Ticket{
			ClientName: "Eurospec", Issue: "Sorteo", RequiresPO: true, PurchaseOrder: " PO-31764 ",
		})
		require.NoError(t, err)
		assert.Equal(t, entities.TicketStatusEnProceso, got.Status)
		assert.Equal(t, "PO-31764", got.PurchaseOrder)
		assert.NotEmpty(t, got.ID)
	})

	t.Run("signed terms waive the po", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		settings := DefaultSettings()
		settings.TermsWaivePO = true
		uc, tickets, clients := newTicketUseCase(ctrl, settings)

		clients.EXPECT().List(gomock.Any()).Return([]entities.Client{
			{ID: "CLI-001", Name: "Eurospec", TermsSigned: true},
		}, nil)
		tickets.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(entities.Ticket{}, nil)
		tickets.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		got, err := uc.Create(context.Background(), entities.Ticket{
			ID: "TK-002", ClientName: "eurospec", Issue: "Sorteo", RequiresPO: true,
		})
		require.NoError(t, err)
		assert.Equal(t, entities.TicketStatusEnProceso, got.Status)
		assert.False(t, got.RequiresPO)
	})

	t.Run("invalid ticket is not saved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _ := newTicketUseCase(ctrl, DefaultSettings())

		_, err := uc.Create(context.Background(), entities.Ticket{ID: "TK-003", Issue: "x"})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestTicketUseCase_RegisterPO(t *testing.T) {
	waiting := entities.Ticket{ID: "TK-001", Status: entities.TicketStatusEnEspera, RequiresPO: true}

	t.Run("moves waiting ticket to in progress", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, tickets, _ := newTicketUseCase(ctrl, DefaultSettings())

		tickets.EXPECT().GetByID(gomock.Any(), "TK-001").Return(waiting, nil)
		tickets.EXPECT().UpdateStatus(gomock.Any(), "TK-001", entities.TicketStatusEnProceso, "PO-31764").Return(nil)

		got, err := uc.RegisterPO(context.Background(), "TK-001", "PO-31764")
		require.NoError(t, err)
		assert.Equal(t, entities.TicketStatusEnProceso, got.Status)
	})

	t.Run("same po again writes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, tickets, _ := newTicketUseCase(ctrl, DefaultSettings())

		done := waiting
		done.Status = entities.TicketStatusEnProceso
		done.PurchaseOrder = "PO-31764"
		tickets.EXPECT().GetByID(gomock.Any(), "TK-001").Return(done, nil)

		got, err := uc.RegisterPO(context.Background(), "TK-001", "PO-31764")
		require.NoError(t, err)
		assert.Equal(t, done, got)
	})

	t.Run("blank po", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, tickets, _ := newTicketUseCase(ctrl, DefaultSettings())

		tickets.EXPECT().GetByID(gomock.Any(), "TK-001").Return(waiting, nil)

		_, err := uc.RegisterPO(context.Background(), "TK-001", "   ")
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "oc", ve.Field)
	})

	t.Run("missing ticket", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, tickets, _ := newTicketUseCase(ctrl, DefaultSettings())

		tickets.EXPECT().GetByID(gomock.Any(), "TK-404").Return(entities.Ticket{}, nil)

		_, err := uc.RegisterPO(context.Background(), "TK-404", "PO-1")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("repository error is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, tickets, _ := newTicketUseCase(ctrl, DefaultSettings())

		tickets.EXPECT().GetByID(gomock.Any(), "TK-001").Return(waiting, nil)
		tickets.EXPECT().UpdateStatus(gomock.Any(), "TK-001", gomock.Any(), gomock.Any()).Return(errors.New("db"))

		_, err := uc.RegisterPO(context.Background(), "TK-001", "PO-1")
		assert.EqualError(t, err, "db")
	})
}

func TestTicketUseCase_Close(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, tickets, _ := newTicketUseCase(ctrl, DefaultSettings())

	tickets.EXPECT().GetByID(gomock.Any(), "TK-001").
		Return(entities.Ticket{ID: "TK-001", Status: entities.TicketStatusEnEspera}, nil)

	_, err := uc.Close(context.Background(), "TK-001")
	assert.ErrorIs(t, err, domain.ErrState)
}

func TestTicketUseCase_ListFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, tickets, _ := newTicketUseCase(ctrl, DefaultSettings())

	tickets.EXPECT().List(gomock.Any()).Return([]entities.Ticket{
		{ID: "TK-003", Status: entities.TicketStatusEnEspera},
		{ID: "TK-001", Status: entities.TicketStatusEnProceso},
		{ID: "TK-002", Status: entities.TicketStatusEnEspera},
	}, nil)

	got, err := uc.List(context.Background(), entities.TicketStatusEnEspera)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "TK-002", got[0].ID)
	assert.Equal(t, "TK-003", got[1].ID)
}
