package routes

import (
	"github.com/gin-gonic/gin"

	"eisen_qms/internal/adapter/http/handlers"
)

const (
	PathProjects    = "/projects"
	PathTickets     = "/tickets"
	PathWeeks       = "/weeks"
	PathCompliance  = "/compliance"
	PathInspections = "/inspections"
)

func addQualityRoutes(
	rg *gin.RouterGroup,
	projectHandler *handlers.ProjectHandler,
	ticketHandler *handlers.TicketHandler,
	weekHandler *handlers.WeekHandler,
	inspectionHandler *handlers.InspectionHandler,
) {
	projects := rg.Group(PathProjects)
	{
		projects.POST("", projectHandler.CreateProject)
		projects.GET("", projectHandler.ListProjects)
		projects.GET("/:id", projectHandler.GetProject)
		projects.PATCH("/:id/close", projectHandler.CloseProject)
	}

	tickets := rg.Group(PathTickets)
	{
		tickets.POST("", ticketHandler.CreateTicket)
		tickets.GET("", ticketHandler.ListTickets)
		tickets.GET("/:id", ticketHandler.GetTicket)
		tickets.PATCH("/:id/po", ticketHandler.RegisterPO)
		tickets.PATCH("/:id/close", ticketHandler.CloseTicket)
	}

	weeks := rg.Group(PathWeeks)
	{
		weeks.POST("", weekHandler.CreateWeek)
		weeks.GET("", weekHandler.ListWeeks)
		weeks.GET("/:id", weekHandler.GetWeek)
		weeks.PATCH("/:id/documents", weekHandler.AttachDocument)
		weeks.POST("/:id/invoice", weekHandler.CreateInvoice)
		weeks.GET("/:id/compliance", weekHandler.GetCompliance)
	}
	rg.GET(PathCompliance, weekHandler.ListCompliance)

	inspections := rg.Group(PathInspections)
	{
		inspections.POST("", inspectionHandler.CreateInspection)
		inspections.GET("", inspectionHandler.ListInspections)
		inspections.GET("/:id", inspectionHandler.GetInspection)
	}
}
