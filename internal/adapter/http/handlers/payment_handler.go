package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	request "eisen_qms/internal/adapter/http/dto/request"
	response "eisen_qms/internal/adapter/http/dto/response"
	"eisen_qms/internal/usecase"
)

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
	log     *zap.Logger
}

func NewPaymentHandler(uc usecase.IPaymentUseCase, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{usecase: uc, log: log.Named("payment-handler")}
}

func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var payload request.PaymentCreateRequest
	if !bindJSON(c, &payload) {
		return
	}
	payment, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromPayment(payment))
}

func (h *PaymentHandler) ListPayments(c *gin.Context) {
	status, err := request.PaymentStatusFilter(c.Query("estado"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	payments, err := h.usecase.List(c.Request.Context(), status)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(payments))
}

func (h *PaymentHandler) GetPayment(c *gin.Context) {
	payment, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(payment))
}

// ConfirmPayment godoc
// @Summary      Confirm an expected payment and apply it to its invoice
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id       path      string                         true  "Payment id"
// @Param        payload  body      request.PaymentConfirmRequest  true  "Bank reference"
// @Success      200      {object}  response.PaymentResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /payments/{id}/confirm [patch]
func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	var payload request.PaymentConfirmRequest
	if !bindJSON(c, &payload) {
		return
	}
	payment, err := h.usecase.Confirm(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(payment))
}
