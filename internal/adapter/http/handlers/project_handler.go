package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	request "eisen_qms/internal/adapter/http/dto/request"
	response "eisen_qms/internal/adapter/http/dto/response"
	"eisen_qms/internal/usecase"
)

// ProjectHandler serves projects with their derived status and running totals.
type ProjectHandler struct {
	usecase usecase.IProjectUseCase
	log     *zap.Logger
}

func NewProjectHandler(uc usecase.IProjectUseCase, log *zap.Logger) *ProjectHandler {
	return &ProjectHandler{usecase: uc, log: log.Named("project-handler")}
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var payload request.ProjectCreateRequest
	if !bindJSON(c, &payload) {
		return
	}
	project, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromProject(project))
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProjects(projects))
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProject(project))
}

func (h *ProjectHandler) CloseProject(c *gin.Context) {
	project, err := h.usecase.Close(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProject(project))
}
