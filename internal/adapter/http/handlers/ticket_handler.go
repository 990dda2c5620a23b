package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	request "eisen_qms/internal/adapter/http/dto/request"
	response "eisen_qms/internal/adapter/http/dto/response"
	"eisen_qms/internal/usecase"
)

type TicketHandler struct {
	usecase usecase.ITicketUseCase
	log     *zap.Logger
}

func NewTicketHandler(uc usecase.ITicketUseCase, log *zap.Logger) *TicketHandler {
	return &TicketHandler{usecase: uc, log: log.Named("ticket-handler")}
}

// CreateTicket godoc
// @Summary      Open a ticket
// @Description  Tickets that require a PO and arrive without one start En Espera.
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        ticket  body      request.TicketCreateRequest  true  "Ticket"
// @Success      201     {object}  response.TicketResponse
// @Failure      400     {object}  pkg.HTTPError
// @Router       /tickets [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var payload request.TicketCreateRequest
	if !bindJSON(c, &payload) {
		return
	}
	ticket, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromTicket(ticket))
}

// ListTickets godoc
// @Summary      List tickets
// @Tags         tickets
// @Produce      json
// @Param        estado  query     string  false  "En Espera, En Proceso or Cerrado"
// @Success      200     {array}   response.TicketResponse
// @Router       /tickets [get]
func (h *TicketHandler) ListTickets(c *gin.Context) {
	status, err := request.TicketStatusFilter(c.Query("estado"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	tickets, err := h.usecase.List(c.Request.Context(), status)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTickets(tickets))
}

func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticket, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTicket(ticket))
}

// RegisterPO godoc
// @Summary      Register the purchase order of a waiting ticket
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        id       path      string                   true  "Ticket id"
// @Param        payload  body      request.TicketPORequest  true  "PO"
// @Success      200      {object}  response.TicketResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /tickets/{id}/po [patch]
func (h *TicketHandler) RegisterPO(c *gin.Context) {
	var payload request.TicketPORequest
	if !bindJSON(c, &payload) {
		return
	}
	ticket, err := h.usecase.RegisterPO(c.Request.Context(), c.Param("id"), payload.PurchaseOrder)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTicket(ticket))
}

func (h *TicketHandler) CloseTicket(c *gin.Context) {
	ticket, err := h.usecase.Close(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTicket(ticket))
}
