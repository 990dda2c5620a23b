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
	mock_interfaces "eisen_qms/internal/usecase/interfaces/mocks"
)

func newInvoiceUseCase(ctrl *gomock.Controller, now string) (*InvoiceUseCase, paymentMocks) {
	m := paymentMocks{
		payments: mock_interfaces.NewMockIPaymentRepository(ctrl),
		invoices: mock_interfaces.NewMockIInvoiceRepository(ctrl),
		weeks:    mock_interfaces.NewMockIWeekRepository(ctrl),
	}
	uc := NewInvoiceUseCase(m.invoices, m.payments, m.weeks, zap.NewNop())
	uc.now = clock(now)
	return uc, m
}

func TestInvoiceUseCase_GetByID_Aging(t *testing.T) {
	tests := []struct {
		name   string
		now    string
		status entities.InvoiceStatus
		days   int
	}{
		{name: "on due date", now: "2026-03-11", status: entities.InvoiceStatusEnviada, days: 0},
		{name: "day after due date", now: "2026-03-12", status: entities.InvoiceStatusVencida, days: -1},
		{name: "week before", now: "2026-03-04", status: entities.InvoiceStatusEnviada, days: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc, m := newInvoiceUseCase(ctrl, tt.now)

			m.invoices.EXPECT().GetByID(gomock.Any(), "FAC-001").Return(sentInvoice(), nil)

			inv, err := uc.GetByID(context.Background(), "FAC-001")
			require.NoError(t, err)
			assert.Equal(t, tt.status, inv.Status)
			assert.Equal(t, tt.days, inv.DaysUntilDue)
			assert.Equal(t, day("2026-03-11"), inv.DueDate)
		})
	}
}

func TestInvoiceUseCase_GetByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newInvoiceUseCase(ctrl, "2026-03-01")

	m.invoices.EXPECT().GetByID(gomock.Any(), "FAC-404").Return(entities.Invoice{}, nil)

	_, err := uc.GetByID(context.Background(), "FAC-404")
	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "factura", nf.Entity)
}

func TestInvoiceUseCase_RecordPayment_OnOverdueInvoice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newInvoiceUseCase(ctrl, "2026-03-20")

	invoicedWeek := readyWeek()
	invoicedWeek.Status = entities.WeekStatusFacturada
	invoicedWeek.InvoiceID = "FAC-001"

	m.invoices.EXPECT().GetByID(gomock.Any(), "FAC-001").Return(sentInvoice(), nil).Times(2)
	m.payments.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p entities.Payment) error {
			assert.Equal(t, "FAC-001", p.InvoiceID)
			assert.Equal(t, entities.PaymentStatusConfirmado, p.Status)
			assert.Equal(t, day("2026-03-20"), p.Date)
			assert.NotEmpty(t, p.ID)
			return nil
		})
	m.invoices.EXPECT().UpdatePayments(gomock.Any(), gomock.Any()).Return(nil)
	m.weeks.EXPECT().GetByID(gomock.Any(), "SEM-06-EM").Return(invoicedWeek, nil)
	m.weeks.EXPECT().UpdateStatus(gomock.Any(), "SEM-06-EM", entities.WeekStatusPagada, "FAC-001").Return(nil)

	inv, err := uc.RecordPayment(context.Background(), "FAC-001", entities.PaymentRecord{
		Amount: dec(1600),
		Method: entities.PaymentMethodACH,
	})
	require.NoError(t, err)
	assert.Equal(t, entities.InvoiceStatusPagada, inv.Status)
}

func TestInvoiceUseCase_RecordPayment_Rejections(t *testing.T) {
	t.Run("zero amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newInvoiceUseCase(ctrl, "2026-03-01")

		m.invoices.EXPECT().GetByID(gomock.Any(), "FAC-001").Return(sentInvoice(), nil)

		_, err := uc.RecordPayment(context.Background(), "FAC-001", entities.PaymentRecord{Method: entities.PaymentMethodACH})
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "monto", ve.Field)
	})

	t.Run("unknown method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newInvoiceUseCase(ctrl, "2026-03-01")

		m.invoices.EXPECT().GetByID(gomock.Any(), "FAC-001").Return(sentInvoice(), nil)

		_, err := uc.RecordPayment(context.Background(), "FAC-001", entities.PaymentRecord{Amount: dec(10), Method: "Paypal"})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestInvoiceUseCase_ListFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newInvoiceUseCase(ctrl, "2026-03-12")

	later := sentInvoice()
	later.ID = "FAC-002"
	later.IssueDate = day("2026-02-17")
	later.CreditDays = 30

	m.invoices.EXPECT().List(gomock.Any()).Return([]entities.Invoice{later, sentInvoice()}, nil)

	got, err := uc.List(context.Background(), entities.InvoiceStatusVencida)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "FAC-001", got[0].ID)
}
