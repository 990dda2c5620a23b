package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	request "eisen_qms/internal/adapter/http/dto/request"
	response "eisen_qms/internal/adapter/http/dto/response"
	"eisen_qms/internal/domain/entities"
	"eisen_qms/internal/usecase"
)

type ClientHandler struct {
	usecase usecase.IClientUseCase
	log     *zap.Logger
}

func NewClientHandler(uc usecase.IClientUseCase, log *zap.Logger) *ClientHandler {
	return &ClientHandler{usecase: uc, log: log.Named("client-handler")}
}

// CreateClient godoc
// @Summary      Register a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        client  body      request.ClientCreateRequest  true  "Client"
// @Success      201     {object}  response.ClientResponse
// @Failure      400     {object}  pkg.HTTPError
// @Router       /clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var payload request.ClientCreateRequest
	if !bindJSON(c, &payload) {
		return
	}
	client, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromClient(client))
}

func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromClients(clients))
}

func (h *ClientHandler) GetClient(c *gin.Context) {
	client, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromClient(client))
}

func (h *ClientHandler) UpdateContact(c *gin.Context) {
	var payload request.ClientContactRequest
	if !bindJSON(c, &payload) {
		return
	}
	client, err := h.usecase.UpdateContact(c.Request.Context(), c.Param("id"), payload.ToUpdate())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromClient(client))
}

func (h *ClientHandler) SetStatus(c *gin.Context) {
	var payload request.ClientStatusRequest
	if !bindJSON(c, &payload) {
		return
	}
	client, err := h.usecase.SetStatus(c.Request.Context(), c.Param("id"), entities.ClientStatus(payload.Status))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromClient(client))
}
