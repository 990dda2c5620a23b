package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	request "eisen_qms/internal/adapter/http/dto/request"
	response "eisen_qms/internal/adapter/http/dto/response"
	"eisen_qms/internal/usecase"
)

// InvoiceHandler serves invoices aged as of today.
type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
	log     *zap.Logger
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase, log *zap.Logger) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc, log: log.Named("invoice-handler")}
}

// ListInvoices godoc
// @Summary      List invoices
// @Tags         invoices
// @Produce      json
// @Param        estado  query     string  false  "Enviada, Vencida or Pagada"
// @Success      200     {array}   response.InvoiceResponse
// @Router       /invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	status, err := request.InvoiceStatusFilter(c.Query("estado"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	invoices, err := h.usecase.List(c.Request.Context(), status)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoices(invoices))
}

func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoice, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

// RecordPayment godoc
// @Summary      Register a payment received against an invoice
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "Invoice id"
// @Param        payment  body      request.PaymentRecordRequest  true  "Payment"
// @Success      200      {object}  response.InvoiceResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /invoices/{id}/payments [post]
func (h *InvoiceHandler) RecordPayment(c *gin.Context) {
	var payload request.PaymentRecordRequest
	if !bindJSON(c, &payload) {
		return
	}
	invoice, err := h.usecase.RecordPayment(c.Request.Context(), c.Param("id"), payload.ToRecord())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}
