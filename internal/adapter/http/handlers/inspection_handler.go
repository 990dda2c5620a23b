package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	request "eisen_qms/internal/adapter/http/dto/request"
	response "eisen_qms/internal/adapter/http/dto/response"
	"eisen_qms/internal/usecase"
)

type InspectionHandler struct {
	usecase usecase.IInspectionUseCase
	log     *zap.Logger
}

func NewInspectionHandler(uc usecase.IInspectionUseCase, log *zap.Logger) *InspectionHandler {
	return &InspectionHandler{usecase: uc, log: log.Named("inspection-handler")}
}

func (h *InspectionHandler) CreateInspection(c *gin.Context) {
	var payload request.InspectionCreateRequest
	if !bindJSON(c, &payload) {
		return
	}
	view, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromInspection(view))
}

func (h *InspectionHandler) ListInspections(c *gin.Context) {
	views, err := h.usecase.List(c.Request.Context(), strings.TrimSpace(c.Query("proyecto")))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromInspections(views))
}

func (h *InspectionHandler) GetInspection(c *gin.Context) {
	view, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromInspection(view))
}
