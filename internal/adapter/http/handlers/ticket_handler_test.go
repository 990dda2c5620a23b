package handlers

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"eisen_qms/internal/adapter/http/handlers/mocks"
	"eisen_qms/internal/domain"
	"eisen_qms/internal/domain/entities"
)

func TestTicketHandler_CreateTicket(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewTicketHandler(mocks.NewMockITicketUseCase(ctrl), zap.NewNop())

		w := serve(http.MethodPost, "/v1/tickets", "/v1/tickets", "{", h.CreateTicket)
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("missing client names the field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewTicketHandler(mocks.NewMockITicketUseCase(ctrl), zap.NewNop())

		w := serve(http.MethodPost, "/v1/tickets", "/v1/tickets", `{"issue":"Sorteo"}`, h.CreateTicket)
		expectStatus(t, w, http.StatusBadRequest)
		if got := decodeBody(t, w)["field"]; got != "cliente" {
			t.Fatalf("expected field cliente, got %v", got)
		}
	})

	t.Run("bad rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewTicketHandler(mocks.NewMockITicketUseCase(ctrl), zap.NewNop())

		w := serve(http.MethodPost, "/v1/tickets", "/v1/tickets", `{"cliente":"Eurospec","issue":"Sorteo","tarifa":"forty"}`, h.CreateTicket)
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("success starts waiting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITicketUseCase(ctrl)
		h := NewTicketHandler(uc, zap.NewNop())

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, tk entities.Ticket) (entities.Ticket, error) {
			if !tk.RequiresPO || !tk.Rate.Equal(decimal.NewFromInt(40)) {
				t.Fatalf("unexpected ticket %+v", tk)
			}
			tk.ID = "EM26-01"
			tk.Status = entities.TicketStatusEnEspera
			tk.OpenedOn = day("2026-02-02")
			return tk, nil
		})

		w := serve(http.MethodPost, "/v1/tickets", "/v1/tickets", `{"cliente":"Eurospec","issue":"Sorteo","tarifa":"$40/hr"}`, h.CreateTicket)
		expectStatus(t, w, http.StatusCreated)
		body := decodeBody(t, w)
		if body["estado"] != "En Espera" || body["ec"] != "#EF4444" || body["fecha"] != "2026-02-02" {
			t.Fatalf("unexpected body %v", body)
		}
	})
}

func TestTicketHandler_ListTickets(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewTicketHandler(mocks.NewMockITicketUseCase(ctrl), zap.NewNop())

		w := serve(http.MethodGet, "/v1/tickets", "/v1/tickets?estado=Abierto", "", h.ListTickets)
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("filters by status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITicketUseCase(ctrl)
		h := NewTicketHandler(uc, zap.NewNop())

		uc.EXPECT().List(gomock.Any(), entities.TicketStatusEnEspera).Return([]entities.Ticket{{ID: "EM26-01", Status: entities.TicketStatusEnEspera}}, nil)

		w := serve(http.MethodGet, "/v1/tickets", "/v1/tickets?estado=En+Espera", "", h.ListTickets)
		expectStatus(t, w, http.StatusOK)
	})
}

func TestTicketHandler_RegisterPO(t *testing.T) {
	t.Run("blank po", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITicketUseCase(ctrl)
		h := NewTicketHandler(uc, zap.NewNop())

		uc.EXPECT().RegisterPO(gomock.Any(), "EM26-01", "  ").Return(entities.Ticket{}, domain.NewValidationError("oc", "PO number required"))

		w := serve(http.MethodPatch, "/v1/tickets/:id/po", "/v1/tickets/EM26-01/po", `{"oc":"  "}`, h.RegisterPO)
		expectStatus(t, w, http.StatusBadRequest)
		body := decodeBody(t, w)
		if body["field"] != "oc" || body["message"] != "PO number required" {
			t.Fatalf("unexpected body %v", body)
		}
	})

	t.Run("closed ticket", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITicketUseCase(ctrl)
		h := NewTicketHandler(uc, zap.NewNop())

		uc.EXPECT().RegisterPO(gomock.Any(), "EM26-01", "PO-1").Return(entities.Ticket{}, domain.NewStateError("ticket", "Cerrado", "register-po"))

		w := serve(http.MethodPatch, "/v1/tickets/:id/po", "/v1/tickets/EM26-01/po", `{"oc":"PO-1"}`, h.RegisterPO)
		expectStatus(t, w, http.StatusConflict)
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITicketUseCase(ctrl)
		h := NewTicketHandler(uc, zap.NewNop())

		uc.EXPECT().RegisterPO(gomock.Any(), "EM26-01", "PO-31764").Return(entities.Ticket{ID: "EM26-01", PurchaseOrder: "PO-31764", Status: entities.TicketStatusEnProceso}, nil)

		w := serve(http.MethodPatch, "/v1/tickets/:id/po", "/v1/tickets/EM26-01/po", `{"oc":"PO-31764"}`, h.RegisterPO)
		expectStatus(t, w, http.StatusOK)
		if got := decodeBody(t, w)["estado"]; got != "En Proceso" {
			t.Fatalf("expected En Proceso, got %v", got)
		}
	})
}

func TestTicketHandler_GetTicket_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockITicketUseCase(ctrl)
	h := NewTicketHandler(uc, zap.NewNop())

	uc.EXPECT().GetByID(gomock.Any(), "X").Return(entities.Ticket{}, domain.NewNotFoundError("ticket", "X"))

	w := serve(http.MethodGet, "/v1/tickets/:id", "/v1/tickets/X", "", h.GetTicket)
	expectStatus(t, w, http.StatusNotFound)
	if got := decodeBody(t, w)["code"]; got != "TICKET_NOT_FOUND" {
		t.Fatalf("expected TICKET_NOT_FOUND, got %v", got)
	}
}
