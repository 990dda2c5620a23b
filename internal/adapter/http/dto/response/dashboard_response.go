package response

import (
	"encoding/json"

	"eisen_qms/internal/domain/rules"
)

type ProjectSummaryResponse struct {
	ProjectID  string `json:"proyecto"`
	Name       string `json:"nombre"`
	ClientName string `json:"cliente"`
	Status     string `json:"estado"`
	rules.Badge
	Hours     json.Number `json:"horasTotal"`
	Invoiced  json.Number `json:"facturado"`
	Collected json.Number `json:"cobrado"`
	Pending   json.Number `json:"pendiente"`
}

type DashboardResponse struct {
	AsOf string `json:"fecha"`

	TotalAR         json.Number `json:"carteraTotal"`
	TotalARLabel    string      `json:"carteraTotalTexto"`
	TotalOverdue    json.Number `json:"carteraVencida"`
	OpenInvoices    int         `json:"facturasAbiertas"`
	OverdueInvoices int         `json:"facturasVencidas"`
	PaidInvoices    int         `json:"facturasPagadas"`

	ComplianceRate  string      `json:"cumplimiento"`
	ReadyWeeks      int         `json:"semanasListas"`
	BlockedWeeks    int         `json:"semanasBloqueadas"`
	WIPReady        json.Number `json:"wipPorFacturar"`
	BlockedExposure json.Number `json:"montoBloqueado"`

	ActiveTickets  int `json:"ticketsActivos"`
	WaitingTickets int `json:"ticketsEnEspera"`
	ClosedTickets  int `json:"ticketsCerrados"`

	PaymentsByStatus map[string]json.Number `json:"pagosPorEstado"`

	InspectedPieces int    `json:"piezasInspeccionadas"`
	OKPieces        int    `json:"piezasOk"`
	NOKPieces       int    `json:"piezasNok"`
	NOKRate         string `json:"tasaNok"`
	NOKAlerts       int    `json:"alertasNok"`

	Projects []ProjectSummaryResponse `json:"proyectos"`
}

func FromDashboard(d rules.Dashboard) DashboardResponse {
	byStatus := make(map[string]json.Number, len(d.PaymentsByStatus))
	for status, total := range d.PaymentsByStatus {
		byStatus[string(status)] = amount(total)
	}

	projects := make([]ProjectSummaryResponse, 0, len(d.Projects))
	for _, p := range d.Projects {
		projects = append(projects, ProjectSummaryResponse{
			ProjectID:  p.ProjectID,
			Name:       p.Name,
			ClientName: p.ClientName,
			Status:     string(p.Status),
			Badge:      rules.BadgeFor(p.Status),
			Hours:      quantity(p.Hours),
			Invoiced:   amount(p.Invoiced),
			Collected:  amount(p.Collected),
			Pending:    amount(p.Pending),
		})
	}

	return DashboardResponse{
		AsOf:             rules.FormatDate(d.AsOf),
		TotalAR:          amount(d.TotalAR),
		TotalARLabel:     rules.FormatMoney(d.TotalAR),
		TotalOverdue:     amount(d.TotalOverdue),
		OpenInvoices:     d.OpenInvoices,
		OverdueInvoices:  d.OverdueInvoices,
		PaidInvoices:     d.PaidInvoices,
		ComplianceRate:   rules.PercentString(d.ComplianceRate),
		ReadyWeeks:       d.ReadyWeeks,
		BlockedWeeks:     d.BlockedWeeks,
		WIPReady:         amount(d.WIPReady),
		BlockedExposure:  amount(d.BlockedExposure),
		ActiveTickets:    d.ActiveTickets,
		WaitingTickets:   d.WaitingTickets,
		ClosedTickets:    d.ClosedTickets,
		PaymentsByStatus: byStatus,
		InspectedPieces:  d.InspectedPieces,
		OKPieces:         d.OKPieces,
		NOKPieces:        d.NOKPieces,
		NOKRate:          rules.PercentString(d.NOKRate),
		NOKAlerts:        d.NOKAlerts,
		Projects:         projects,
	}
}
