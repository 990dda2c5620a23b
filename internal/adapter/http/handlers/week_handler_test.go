package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"eisen_qms/internal/adapter/http/handlers/mocks"
	"eisen_qms/internal/domain"
	"eisen_qms/internal/domain/entities"
	"eisen_qms/internal/domain/rules"
)

func readyWeek() entities.ProjectWeek {
	return entities.ProjectWeek{
		ID:         "SEM-06-EM",
		ProjectID:  "EM26-01",
		ClientName: "Eurospec",
		Label:      "Semana 6",
		Hours:      decimal.NewFromInt(80),
		Rate:       decimal.NewFromInt(40),
		Amount:     decimal.NewFromInt(3200),
		Score:      100,
		Status:     entities.WeekStatusListaParaFacturar,
	}
}

func TestWeekHandler_CreateWeek(t *testing.T) {
	t.Run("days worked out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewWeekHandler(mocks.NewMockIWeekUseCase(ctrl), zap.NewNop())

		body := `{"id":"SEM-06-EM","proyecto":"EM26-01","semana":"Semana 6","diasTrabajados":9}`
		w := serve(http.MethodPost, "/v1/weeks", "/v1/weeks", body, h.CreateWeek)
		expectStatus(t, w, http.StatusBadRequest)
		if got := decodeBody(t, w)["field"]; got != "diasTrabajados" {
			t.Fatalf("expected field diasTrabajados, got %v", got)
		}
	})

	t.Run("flat documents reach the use case", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWeekUseCase(ctrl)
		h := NewWeekHandler(uc, zap.NewNop())

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, wk entities.ProjectWeek) (entities.ProjectWeek, error) {
			if !wk.Documents.POD.Present || wk.Documents.Report.Present || wk.Documents.PurchaseOrder.Number != "PO-1" {
				t.Fatalf("unexpected documents %+v", wk.Documents)
			}
			wk.Status = entities.WeekStatusBloqueada
			return wk, nil
		})

		body := `{"id":"SEM-06-EM","proyecto":"EM26-01","semana":"Semana 6","horasTotal":80,"tarifa":"$40/hr","pod":true,"oc":"PO-1"}`
		w := serve(http.MethodPost, "/v1/weeks", "/v1/weeks", body, h.CreateWeek)
		expectStatus(t, w, http.StatusCreated)
		if got := decodeBody(t, w)["estado"]; got != "Bloqueada" {
			t.Fatalf("expected Bloqueada, got %v", got)
		}
	})
}

func TestWeekHandler_AttachDocument(t *testing.T) {
	t.Run("unknown kind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewWeekHandler(mocks.NewMockIWeekUseCase(ctrl), zap.NewNop())

		w := serve(http.MethodPatch, "/v1/weeks/:id/documents", "/v1/weeks/SEM-06-EM/documents", `{"tipo":"factura"}`, h.AttachDocument)
		expectStatus(t, w, http.StatusBadRequest)
		if got := decodeBody(t, w)["field"]; got != "tipo" {
			t.Fatalf("expected field tipo, got %v", got)
		}
	})

	t.Run("invoiced week", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWeekUseCase(ctrl)
		h := NewWeekHandler(uc, zap.NewNop())

		uc.EXPECT().AttachDocument(gomock.Any(), "SEM-06-EM", entities.DocumentPOD, gomock.Any()).
			Return(entities.ProjectWeek{}, domain.NewStateError("semana", "Facturada", "attach-document"))

		w := serve(http.MethodPatch, "/v1/weeks/:id/documents", "/v1/weeks/SEM-06-EM/documents", `{"tipo":"pod"}`, h.AttachDocument)
		expectStatus(t, w, http.StatusConflict)
		if got := decodeBody(t, w)["code"]; got != "INVALID_STATE" {
			t.Fatalf("expected INVALID_STATE, got %v", got)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWeekUseCase(ctrl)
		h := NewWeekHandler(uc, zap.NewNop())

		uc.EXPECT().AttachDocument(gomock.Any(), "SEM-06-EM", entities.DocumentFirma, entities.DocumentSlot{Present: true}).Return(readyWeek(), nil)

		w := serve(http.MethodPatch, "/v1/weeks/:id/documents", "/v1/weeks/SEM-06-EM/documents", `{"tipo":"firma"}`, h.AttachDocument)
		expectStatus(t, w, http.StatusOK)
	})
}

func TestWeekHandler_CreateInvoice(t *testing.T) {
	t.Run("empty body uses defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWeekUseCase(ctrl)
		h := NewWeekHandler(uc, zap.NewNop())

		uc.EXPECT().CreateInvoice(gomock.Any(), "SEM-06-EM", rules.InvoiceDraft{}).Return(entities.Invoice{
			ID:         "FAC-001",
			WeekID:     "SEM-06-EM",
			IssueDate:  day("2026-02-10"),
			CreditDays: 30,
			DueDate:    day("2026-03-12"),
			Total:      decimal.NewFromInt(3200),
			Status:     entities.InvoiceStatusEnviada,
		}, nil)

		w := serve(http.MethodPost, "/v1/weeks/:id/invoice", "/v1/weeks/SEM-06-EM/invoice", "", h.CreateInvoice)
		expectStatus(t, w, http.StatusCreated)
		if !strings.Contains(w.Body.String(), `"total":3200.00`) {
			t.Fatalf("expected fixed point total, got %s", w.Body.String())
		}
	})

	t.Run("blocked week", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWeekUseCase(ctrl)
		h := NewWeekHandler(uc, zap.NewNop())

		uc.EXPECT().CreateInvoice(gomock.Any(), "SEM-07-EM", gomock.Any()).
			Return(entities.Invoice{}, domain.NewStateError("semana", "Bloqueada", "create-invoice"))

		w := serve(http.MethodPost, "/v1/weeks/:id/invoice", "/v1/weeks/SEM-07-EM/invoice", `{"diasCredito":30}`, h.CreateInvoice)
		expectStatus(t, w, http.StatusConflict)
	})

	t.Run("unknown week", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWeekUseCase(ctrl)
		h := NewWeekHandler(uc, zap.NewNop())

		uc.EXPECT().CreateInvoice(gomock.Any(), "X", gomock.Any()).Return(entities.Invoice{}, domain.NewNotFoundError("semana", "X"))

		w := serve(http.MethodPost, "/v1/weeks/:id/invoice", "/v1/weeks/X/invoice", "", h.CreateInvoice)
		expectStatus(t, w, http.StatusNotFound)
		if got := decodeBody(t, w)["code"]; got != "WEEK_NOT_FOUND" {
			t.Fatalf("expected WEEK_NOT_FOUND, got %v", got)
		}
	})
}

func TestWeekHandler_ListCompliance(t *testing.T) {
	t.Run("bad filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewWeekHandler(mocks.NewMockIWeekUseCase(ctrl), zap.NewNop())

		w := serve(http.MethodGet, "/v1/compliance", "/v1/compliance?estado=Parcial", "", h.ListCompliance)
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("storage failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWeekUseCase(ctrl)
		h := NewWeekHandler(uc, zap.NewNop())

		uc.EXPECT().ListCompliance(gomock.Any(), rules.ComplianceStatus("")).
			Return(nil, domain.NewPersistenceError("scan", "semanas", domain.ErrPersistence))

		w := serve(http.MethodGet, "/v1/compliance", "/v1/compliance", "", h.ListCompliance)
		expectStatus(t, w, http.StatusInternalServerError)
		if got := decodeBody(t, w)["code"]; got != "INTERNAL_ERROR" {
			t.Fatalf("expected INTERNAL_ERROR, got %v", got)
		}
	})
}
