package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"eisen_qms/internal/adapter/http/routes"
	"eisen_qms/internal/config"
	"eisen_qms/internal/infrastructure/database"
	"eisen_qms/internal/usecase"
)

type apiClient struct {
	t      *testing.T
	router *gin.Engine
}

func newAPI(t *testing.T) apiClient {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{Store: config.StoreConfig{Driver: config.DriverSQLite, DSN: ":memory:", Timeout: 5}}
	store, closeFn, err := database.NewDocumentStore(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeFn() })

	services := routes.Wire(store, usecase.DefaultSettings(), zap.NewNop())
	return apiClient{t: t, router: routes.NewRouter(services.Handlers, zap.NewNop())}
}

func (a apiClient) do(method, path, body string, wantStatus int) map[string]any {
	a.t.Helper()
	var reader *bytes.Buffer
	if body == "" {
		reader = &bytes.Buffer{}
	} else {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	require.Equal(a.t, wantStatus, w.Code, "%s %s: %s", method, path, w.Body.String())

	var out map[string]any
	require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// A ticket waits for its PO, the week is blocked until signed, then it is
// invoiced and paid, and the payment settles the week.
func TestFlow_TicketToPaidWeek(t *testing.T) {
	api := newAPI(t)

	api.do(http.MethodPost, "/v1/clients", `{"nombre":"Eurospec Mfg."}`, http.StatusCreated)

	ticket := api.do(http.MethodPost, "/v1/tickets", `{"id":"EM26-01","cliente":"Eurospec Mfg.","issue":"Missing Tabs","tarifa":"$40/hr"}`, http.StatusCreated)
	assert.Equal(t, "En Espera", ticket["estado"])

	ticket = api.do(http.MethodPatch, "/v1/tickets/EM26-01/po", `{"oc":"PO-31764"}`, http.StatusOK)
	assert.Equal(t, "En Proceso", ticket["estado"])

	api.do(http.MethodPost, "/v1/projects", `{"id":"EM26-01","nombre":"Sorteo housings","cliente":"Eurospec Mfg.","tarifa":40}`, http.StatusCreated)

	week := api.do(http.MethodPost, "/v1/weeks",
		`{"id":"SEM-06-EM","proyecto":"EM26-01","cliente":"Eurospec Mfg.","semana":"Sem 06","horasTotal":40,"tarifa":40,"pod":true,"reporte":true,"oc":"PO-31764"}`,
		http.StatusCreated)
	assert.Equal(t, "Bloqueada", week["estado"])

	blocked := api.do(http.MethodPost, "/v1/weeks/SEM-06-EM/invoice", "", http.StatusConflict)
	assert.Equal(t, "INVALID_STATE", blocked["code"])

	week = api.do(http.MethodPatch, "/v1/weeks/SEM-06-EM/documents", `{"tipo":"firma"}`, http.StatusOK)
	assert.Equal(t, "Lista para Facturar", week["estado"])

	invoice := api.do(http.MethodPost, "/v1/weeks/SEM-06-EM/invoice", `{"id":"FAC-001","diasCredito":30}`, http.StatusCreated)
	assert.Equal(t, "Enviada", invoice["estado"])
	assert.EqualValues(t, 1600, invoice["total"])
	assert.EqualValues(t, 30, invoice["diasVencimiento"])

	week = api.do(http.MethodGet, "/v1/weeks/SEM-06-EM", "", http.StatusOK)
	assert.Equal(t, "Facturada", week["estado"])

	api.do(http.MethodPost, "/v1/invoices/FAC-001/payments", `{"monto":0,"metodo":"Wire Transfer"}`, http.StatusBadRequest)

	invoice = api.do(http.MethodPost, "/v1/invoices/FAC-001/payments", `{"monto":1600,"metodo":"Wire Transfer","referencia":"TRX-1"}`, http.StatusOK)
	assert.Equal(t, "Pagada", invoice["estado"])
	assert.EqualValues(t, 0, invoice["saldo"])

	week = api.do(http.MethodGet, "/v1/weeks/SEM-06-EM", "", http.StatusOK)
	assert.Equal(t, "Pagada", week["estado"])

	dashboard := api.do(http.MethodGet, "/v1/dashboard", "", http.StatusOK)
	assert.EqualValues(t, 1, dashboard["facturasPagadas"])
	assert.EqualValues(t, 0, dashboard["facturasAbiertas"])
	assert.EqualValues(t, 1, dashboard["ticketsActivos"])

	missing := api.do(http.MethodGet, "/v1/invoices/FAC-404", "", http.StatusNotFound)
	assert.Equal(t, "INVOICE_NOT_FOUND", missing["code"])
}

// Creating over an existing id is rejected, so recorded states survive and a
// week cannot be billed twice.
func TestFlow_RecreateKeepsRecordedState(t *testing.T) {
	api := newAPI(t)

	api.do(http.MethodPost, "/v1/projects", `{"id":"EM26-01","nombre":"Sorteo housings","cliente":"Eurospec Mfg.","tarifa":40}`, http.StatusCreated)

	weekBody := `{"id":"SEM-06-EM","proyecto":"EM26-01","cliente":"Eurospec Mfg.","semana":"Sem 06","horasTotal":40,"tarifa":40,"pod":true,"reporte":true,"firma":true,"oc":"PO-31764"}`
	week := api.do(http.MethodPost, "/v1/weeks", weekBody, http.StatusCreated)
	assert.Equal(t, "Lista para Facturar", week["estado"])

	api.do(http.MethodPost, "/v1/weeks/SEM-06-EM/invoice", `{"id":"FAC-001","diasCredito":30}`, http.StatusCreated)

	dup := api.do(http.MethodPost, "/v1/weeks", weekBody, http.StatusBadRequest)
	assert.Equal(t, "INVALID_REQUEST", dup["code"])
	assert.Equal(t, "id", dup["field"])

	week = api.do(http.MethodGet, "/v1/weeks/SEM-06-EM", "", http.StatusOK)
	assert.Equal(t, "Facturada", week["estado"])
	assert.Equal(t, "FAC-001", week["facturaId"])

	again := api.do(http.MethodPost, "/v1/weeks/SEM-06-EM/invoice", `{"id":"FAC-002","diasCredito":30}`, http.StatusConflict)
	assert.Equal(t, "INVALID_STATE", again["code"])

	ticketBody := `{"id":"RD26-01","cliente":"Eurospec Mfg.","issue":"Metal Split","oc":"PO-40112"}`
	api.do(http.MethodPost, "/v1/tickets", ticketBody, http.StatusCreated)
	ticket := api.do(http.MethodPatch, "/v1/tickets/RD26-01/close", "", http.StatusOK)
	assert.Equal(t, "Cerrado", ticket["estado"])

	api.do(http.MethodPost, "/v1/tickets", ticketBody, http.StatusBadRequest)
	ticket = api.do(http.MethodGet, "/v1/tickets/RD26-01", "", http.StatusOK)
	assert.Equal(t, "Cerrado", ticket["estado"])
}
