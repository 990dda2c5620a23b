package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	request "eisen_qms/internal/adapter/http/dto/request"
	response "eisen_qms/internal/adapter/http/dto/response"
	"eisen_qms/internal/usecase"
)

// WeekHandler serves the weekly tracker, its document compliance view and
// invoicing of ready weeks.
type WeekHandler struct {
	usecase usecase.IWeekUseCase
	log     *zap.Logger
}

func NewWeekHandler(uc usecase.IWeekUseCase, log *zap.Logger) *WeekHandler {
	return &WeekHandler{usecase: uc, log: log.Named("week-handler")}
}

func (h *WeekHandler) CreateWeek(c *gin.Context) {
	var payload request.WeekCreateRequest
	if !bindJSON(c, &payload) {
		return
	}
	week, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromWeek(week))
}

func (h *WeekHandler) ListWeeks(c *gin.Context) {
	status, err := request.WeekStatusFilter(c.Query("estado"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	weeks, err := h.usecase.List(c.Request.Context(), status)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWeeks(weeks))
}

func (h *WeekHandler) GetWeek(c *gin.Context) {
	week, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWeek(week))
}

// AttachDocument godoc
// @Summary      Record a compliance document on a week
// @Tags         weeks
// @Accept       json
// @Produce      json
// @Param        id        path      string                         true  "Week id"
// @Param        document  body      request.AttachDocumentRequest  true  "Document"
// @Success      200       {object}  response.WeekResponse
// @Failure      409       {object}  pkg.HTTPError
// @Router       /weeks/{id}/documents [patch]
func (h *WeekHandler) AttachDocument(c *gin.Context) {
	var payload request.AttachDocumentRequest
	if !bindJSON(c, &payload) {
		return
	}
	kind, slot := payload.ToSlot()
	week, err := h.usecase.AttachDocument(c.Request.Context(), c.Param("id"), kind, slot)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWeek(week))
}

// CreateInvoice godoc
// @Summary      Invoice a week that is ready to invoice
// @Tags         weeks
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true   "Week id"
// @Param        invoice  body      request.InvoiceCreateRequest  false  "Invoice draft"
// @Success      201      {object}  response.InvoiceResponse
// @Failure      409      {object}  pkg.HTTPError
// @Router       /weeks/{id}/invoice [post]
func (h *WeekHandler) CreateInvoice(c *gin.Context) {
	var payload request.InvoiceCreateRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}
	invoice, err := h.usecase.CreateInvoice(c.Request.Context(), c.Param("id"), payload.ToDraft())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromInvoice(invoice))
}

func (h *WeekHandler) GetCompliance(c *gin.Context) {
	wc, err := h.usecase.Compliance(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCompliance(wc))
}

func (h *WeekHandler) ListCompliance(c *gin.Context) {
	status, err := request.ComplianceStatusFilter(c.Query("estado"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	list, err := h.usecase.ListCompliance(c.Request.Context(), status)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromComplianceList(list))
}
