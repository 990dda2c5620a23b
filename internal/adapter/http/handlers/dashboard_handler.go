package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	response "eisen_qms/internal/adapter/http/dto/response"
	"eisen_qms/internal/usecase"
)

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
	log     *zap.Logger
}

func NewDashboardHandler(uc usecase.IDashboardUseCase, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{usecase: uc, log: log.Named("dashboard-handler")}
}

// GetDashboard godoc
// @Summary      KPI dashboard as of today
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.DashboardResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	d, err := h.usecase.Build(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDashboard(d))
}
