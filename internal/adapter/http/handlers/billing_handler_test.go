package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"eisen_qms/internal/adapter/http/handlers/mocks"
	"eisen_qms/internal/domain"
	"eisen_qms/internal/domain/entities"
	"eisen_qms/internal/domain/rules"
)

func overdueInvoice() entities.Invoice {
	return entities.Invoice{
		ID:           "FAC-001",
		ProjectID:    "EM26-01",
		WeekID:       "SEM-06-EM",
		ClientName:   "Eurospec",
		IssueDate:    day("2026-02-10"),
		CreditDays:   29,
		DueDate:      day("2026-03-11"),
		DaysUntilDue: -1,
		Total:        decimal.NewFromInt(1600),
		Status:       entities.InvoiceStatusVencida,
		Payments:     []entities.PaymentRecord{},
	}
}

func TestInvoiceHandler_ListInvoices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIInvoiceUseCase(ctrl)
	h := NewInvoiceHandler(uc, zap.NewNop())

	uc.EXPECT().List(gomock.Any(), entities.InvoiceStatusVencida).Return([]entities.Invoice{overdueInvoice()}, nil)

	w := serve(http.MethodGet, "/v1/invoices", "/v1/invoices?estado=Vencida", "", h.ListInvoices)
	expectStatus(t, w, http.StatusOK)
	assert.Contains(t, w.Body.String(), `"fechaVencimiento":"2026-03-11"`)
	assert.Contains(t, w.Body.String(), `"saldo":1600.00`)
}

func TestInvoiceHandler_GetInvoice_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIInvoiceUseCase(ctrl)
	h := NewInvoiceHandler(uc, zap.NewNop())

	uc.EXPECT().GetByID(gomock.Any(), "FAC-404").Return(entities.Invoice{}, domain.NewNotFoundError("factura", "FAC-404"))

	w := serve(http.MethodGet, "/v1/invoices/:id", "/v1/invoices/FAC-404", "", h.GetInvoice)
	expectStatus(t, w, http.StatusNotFound)
	assert.Equal(t, "INVOICE_NOT_FOUND", decodeBody(t, w)["code"])
}

func TestInvoiceHandler_RecordPayment(t *testing.T) {
	t.Run("method required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewInvoiceHandler(mocks.NewMockIInvoiceUseCase(ctrl), zap.NewNop())

		w := serve(http.MethodPost, "/v1/invoices/:id/payments", "/v1/invoices/FAC-001/payments", `{"monto":1600}`, h.RecordPayment)
		expectStatus(t, w, http.StatusBadRequest)
		assert.Equal(t, "metodo", decodeBody(t, w)["field"])
	})

	t.Run("invalid amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewInvoiceHandler(mocks.NewMockIInvoiceUseCase(ctrl), zap.NewNop())

		w := serve(http.MethodPost, "/v1/invoices/:id/payments", "/v1/invoices/FAC-001/payments", `{"monto":"mil","metodo":"Wire Transfer"}`, h.RecordPayment)
		expectStatus(t, w, http.StatusBadRequest)
		assert.Equal(t, "monto", decodeBody(t, w)["field"])
	})

	t.Run("settles the invoice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc, zap.NewNop())

		uc.EXPECT().RecordPayment(gomock.Any(), "FAC-001", gomock.Any()).DoAndReturn(func(_ any, _ string, rec entities.PaymentRecord) (entities.Invoice, error) {
			assert.True(t, rec.Amount.Equal(decimal.NewFromInt(1600)))
			assert.Equal(t, entities.PaymentMethod("Wire Transfer"), rec.Method)
			inv := overdueInvoice()
			rec.Status = entities.PaymentStatusConfirmado
			inv.Payments = append(inv.Payments, rec)
			inv.Status = entities.InvoiceStatusPagada
			return inv, nil
		})

		body := `{"monto":"$1,600.00","metodo":"Wire Transfer","referencia":"TRX-1","fecha":"2026-03-20"}`
		w := serve(http.MethodPost, "/v1/invoices/:id/payments", "/v1/invoices/FAC-001/payments", body, h.RecordPayment)
		expectStatus(t, w, http.StatusOK)
		assert.Equal(t, "Pagada", decodeBody(t, w)["estado"])
		assert.Contains(t, w.Body.String(), `"saldo":0.00`)
	})
}

func TestPaymentHandler_ConfirmPayment(t *testing.T) {
	t.Run("already confirmed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc, zap.NewNop())

		uc.EXPECT().Confirm(gomock.Any(), "PAG-001", rules.ConfirmInput{Reference: "TRX-1"}).
			Return(entities.Payment{}, domain.NewStateError("pago", "Confirmado", "confirm"))

		w := serve(http.MethodPatch, "/v1/payments/:id/confirm", "/v1/payments/PAG-001/confirm", `{"referencia":"TRX-1"}`, h.ConfirmPayment)
		expectStatus(t, w, http.StatusConflict)
	})

	t.Run("reference required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc, zap.NewNop())

		uc.EXPECT().Confirm(gomock.Any(), "PAG-001", gomock.Any()).
			Return(entities.Payment{}, domain.NewValidationError("referencia", "reference required"))

		w := serve(http.MethodPatch, "/v1/payments/:id/confirm", "/v1/payments/PAG-001/confirm", `{}`, h.ConfirmPayment)
		expectStatus(t, w, http.StatusBadRequest)
		assert.Equal(t, "referencia", decodeBody(t, w)["field"])
	})

	t.Run("confirmed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc, zap.NewNop())

		uc.EXPECT().Confirm(gomock.Any(), "PAG-001", gomock.Any()).Return(entities.Payment{
			ID:        "PAG-001",
			InvoiceID: "FAC-001",
			Amount:    decimal.NewFromInt(1600),
			Method:    "Wire Transfer",
			Reference: "TRX-1",
			Status:    entities.PaymentStatusConfirmado,
		}, nil)

		w := serve(http.MethodPatch, "/v1/payments/:id/confirm", "/v1/payments/PAG-001/confirm", `{"referencia":"TRX-1"}`, h.ConfirmPayment)
		expectStatus(t, w, http.StatusOK)
		body := decodeBody(t, w)
		assert.Equal(t, "Confirmado", body["estado"])
		assert.Equal(t, "#059669", body["ec"])
	})
}

func TestPaymentHandler_CreatePayment(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewPaymentHandler(mocks.NewMockIPaymentUseCase(ctrl), zap.NewNop())

		w := serve(http.MethodPost, "/v1/payments", "/v1/payments", `{"factura":"FAC-001","metodo":"Check","estado":"Vencido"}`, h.CreatePayment)
		expectStatus(t, w, http.StatusBadRequest)
		assert.Equal(t, "estado", decodeBody(t, w)["field"])
	})

	t.Run("unknown invoice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc, zap.NewNop())

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Payment{}, domain.NewNotFoundError("factura", "FAC-404"))

		w := serve(http.MethodPost, "/v1/payments", "/v1/payments", `{"factura":"FAC-404","metodo":"Check","monto":10}`, h.CreatePayment)
		expectStatus(t, w, http.StatusNotFound)
		assert.Equal(t, "INVOICE_NOT_FOUND", decodeBody(t, w)["code"])
	})
}

func TestDashboardHandler_GetDashboard(t *testing.T) {
	t.Run("kpis", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc, zap.NewNop())

		d := rules.BuildDashboard(rules.Snapshot{Invoices: []entities.Invoice{overdueInvoice()}}, day("2026-03-12"))
		uc.EXPECT().Build(gomock.Any()).Return(d, nil)

		w := serve(http.MethodGet, "/v1/dashboard", "/v1/dashboard", "", h.GetDashboard)
		expectStatus(t, w, http.StatusOK)
		body := decodeBody(t, w)
		assert.EqualValues(t, 1, body["facturasVencidas"])
		assert.Contains(t, w.Body.String(), `"carteraVencida":1600.00`)
	})

	t.Run("storage failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc, zap.NewNop())

		uc.EXPECT().Build(gomock.Any()).Return(rules.Dashboard{}, domain.NewPersistenceError("scan", "facturas", errors.New("down")))

		w := serve(http.MethodGet, "/v1/dashboard", "/v1/dashboard", "", h.GetDashboard)
		expectStatus(t, w, http.StatusInternalServerError)
	})
}
