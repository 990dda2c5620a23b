package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"eisen_qms/internal/domain"
	"eisen_qms/internal/domain/entities"
	"eisen_qms/internal/domain/rules"
	mock_interfaces "eisen_qms/internal/usecase/interfaces/mocks"
)

type paymentMocks struct {
	payments *mock_interfaces.MockIPaymentRepository
	invoices *mock_interfaces.MockIInvoiceRepository
	weeks    *mock_interfaces.MockIWeekRepository
}

func newPaymentUseCase(ctrl *gomock.Controller, now string) (*PaymentUseCase, paymentMocks) {
	m := paymentMocks{
		payments: mock_interfaces.NewMockIPaymentRepository(ctrl),
		invoices: mock_interfaces.NewMockIInvoiceRepository(ctrl),
		weeks:    mock_interfaces.NewMockIWeekRepository(ctrl),
	}
	uc := NewPaymentUseCase(m.payments, m.invoices, m.weeks, zap.NewNop())
	uc.now = clock(now)
	return uc, m
}

func expectedPayment() entities.Payment {
	return entities.Payment{
		ID:         "PAG-001",
		InvoiceID:  "FAC-001",
		ClientName: "Eurospec",
		Date:       day("2026-03-11"),
		Amount:     dec(1600),
		Method:     entities.PaymentMethodWireTransfer,
		Status:     entities.PaymentStatusPendiente,
	}
}

func TestPaymentUseCase_Confirm_SettlesInvoiceAndWeek(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newPaymentUseCase(ctrl, "2026-03-12")

	invoicedWeek := readyWeek()
	invoicedWeek.Status = entities.WeekStatusFacturada
	invoicedWeek.InvoiceID = "FAC-001"

	m.payments.EXPECT().GetByID(gomock.Any(), "PAG-001").Return(expectedPayment(), nil)
	m.payments.EXPECT().UpdateConfirmation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p entities.Payment) error {
			assert.Equal(t, entities.PaymentStatusConfirmado, p.Status)
			assert.Equal(t, "WT-889", p.Reference)
			return nil
		})
	m.invoices.EXPECT().GetByID(gomock.Any(), "FAC-001").Return(sentInvoice(), nil)
	m.invoices.EXPECT().UpdatePayments(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inv entities.Invoice) error {
			assert.Equal(t, entities.InvoiceStatusPagada, inv.Status)
			require.Len(t, inv.Payments, 1)
			assert.Equal(t, "PAG-001", inv.Payments[0].PaymentID)
			return nil
		})
	m.weeks.EXPECT().GetByID(gomock.Any(), "SEM-06-EM").Return(invoicedWeek, nil)
	m.weeks.EXPECT().UpdateStatus(gomock.Any(), "SEM-06-EM", entities.WeekStatusPagada, "FAC-001").Return(nil)

	got, err := uc.Confirm(context.Background(), "PAG-001", rules.ConfirmInput{Reference: "WT-889", Bank: "BBVA"})
	require.NoError(t, err)
	assert.Equal(t, entities.PaymentStatusConfirmado, got.Status)
	assert.Equal(t, "BBVA", got.Bank)
}

func TestPaymentUseCase_Confirm_PartialLeavesWeekAlone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newPaymentUseCase(ctrl, "2026-03-01")

	half := expectedPayment()
	half.Amount = dec(800)

	m.payments.EXPECT().GetByID(gomock.Any(), "PAG-001").Return(half, nil)
	m.payments.EXPECT().UpdateConfirmation(gomock.Any(), gomock.Any()).Return(nil)
	m.invoices.EXPECT().GetByID(gomock.Any(), "FAC-001").Return(sentInvoice(), nil)
	m.invoices.EXPECT().UpdatePayments(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inv entities.Invoice) error {
			assert.Equal(t, entities.InvoiceStatusEnviada, inv.Status)
			return nil
		})

	_, err := uc.Confirm(context.Background(), "PAG-001", rules.ConfirmInput{Reference: "ACH-1"})
	require.NoError(t, err)
}

func TestPaymentUseCase_Confirm_Rejections(t *testing.T) {
	t.Run("missing reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUseCase(ctrl, "2026-03-01")

		m.payments.EXPECT().GetByID(gomock.Any(), "PAG-001").Return(expectedPayment(), nil)

		_, err := uc.Confirm(context.Background(), "PAG-001", rules.ConfirmInput{})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("already confirmed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUseCase(ctrl, "2026-03-01")

		confirmed := expectedPayment()
		confirmed.Status = entities.PaymentStatusConfirmado
		m.payments.EXPECT().GetByID(gomock.Any(), "PAG-001").Return(confirmed, nil)

		_, err := uc.Confirm(context.Background(), "PAG-001", rules.ConfirmInput{Reference: "X"})
		assert.ErrorIs(t, err, domain.ErrState)
	})
}

func TestPaymentUseCase_Create(t *testing.T) {
	t.Run("past expected date is overdue", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUseCase(ctrl, "2026-03-12")

		p := expectedPayment()
		p.ClientName = ""
		m.invoices.EXPECT().GetByID(gomock.Any(), "FAC-001").Return(sentInvoice(), nil)
		m.payments.EXPECT().GetByID(gomock.Any(), "PAG-001").Return(entities.Payment{}, nil)
		m.payments.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		got, err := uc.Create(context.Background(), p)
		require.NoError(t, err)
		assert.Equal(t, entities.PaymentStatusVencido, got.Status)
		assert.Equal(t, "Eurospec", got.ClientName)
		assert.Equal(t, "EM26-01", got.ProjectID)
	})

	t.Run("unknown invoice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentUseCase(ctrl, "2026-03-01")

		m.invoices.EXPECT().GetByID(gomock.Any(), "FAC-001").Return(entities.Invoice{}, nil)

		_, err := uc.Create(context.Background(), expectedPayment())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("unsupported method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newPaymentUseCase(ctrl, "2026-03-01")

		p := expectedPayment()
		p.Method = "Bitcoin"
		_, err := uc.Create(context.Background(), p)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestPaymentUseCase_ListClassifies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newPaymentUseCase(ctrl, "2026-03-12")

	confirmed := expectedPayment()
	confirmed.ID = "PAG-002"
	confirmed.Status = entities.PaymentStatusConfirmado
	m.payments.EXPECT().List(gomock.Any()).Return([]entities.Payment{confirmed, expectedPayment()}, nil)

	got, err := uc.List(context.Background(), entities.PaymentStatusVencido)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "PAG-001", got[0].ID)
}
