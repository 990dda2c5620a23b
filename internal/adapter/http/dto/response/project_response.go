package response

import (
	"encoding/json"

	"eisen_qms/internal/domain/entities"
	"eisen_qms/internal/domain/rules"
)

type ProjectResponse struct {
	ID         string      `json:"id"`
	Name       string      `json:"nombre"`
	ClientName string      `json:"cliente"`
	Contact    string      `json:"contacto"`
	Plant      string      `json:"planta"`
	City       string      `json:"ciudad"`
	PartNumber string      `json:"parte"`
	LotNumber  string      `json:"lote"`
	Quantity   int         `json:"cantidad"`
	Rate       json.Number `json:"tarifa"`
	RateLabel  string      `json:"tarifaTexto"`
	Supervisor string      `json:"supervisor"`
	StartDate  string      `json:"inicio"`
	Status     string      `json:"estado"`
	rules.Badge
	Hours         json.Number `json:"horasTotal"`
	Invoiced      json.Number `json:"facturado"`
	Collected     json.Number `json:"cobrado"`
	Pending       json.Number `json:"pendiente"`
	PendingLabel  string      `json:"pendienteTexto"`
	PurchaseOrder string      `json:"oc"`
	Notes         string      `json:"notas"`
	Description   string      `json:"descripcion"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ID:            p.ID,
		Name:          p.Name,
		ClientName:    p.ClientName,
		Contact:       p.Contact,
		Plant:         p.Plant,
		City:          p.City,
		PartNumber:    p.PartNumber,
		LotNumber:     p.LotNumber,
		Quantity:      p.Quantity,
		Rate:          amount(p.Rate),
		RateLabel:     rules.FormatRate(p.Rate),
		Supervisor:    p.Supervisor,
		StartDate:     rules.FormatDate(p.StartDate),
		Status:        string(p.Status),
		Badge:         rules.BadgeFor(p.Status),
		Hours:         quantity(p.Hours),
		Invoiced:      amount(p.Invoiced),
		Collected:     amount(p.Collected),
		Pending:       amount(p.Pending),
		PendingLabel:  rules.FormatMoney(p.Pending),
		PurchaseOrder: p.PurchaseOrder,
		Notes:         p.Notes,
		Description:   p.Description,
	}
}

func FromProjects(ps []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProject(p))
	}
	return out
}
