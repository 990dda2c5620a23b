package response

import (
	"encoding/json"
	"time"

	"eisen_qms/internal/domain/entities"
	"eisen_qms/internal/domain/rules"
)

type TicketResponse struct {
	ID            string      `json:"id"`
	ClientName    string      `json:"cliente"`
	Contact       string      `json:"contacto"`
	Plant         string      `json:"planta"`
	City          string      `json:"ciudad"`
	Issue         string      `json:"issue"`
	Description   string      `json:"descripcion"`
	DefectType    string      `json:"defecto"`
	PartNumber    string      `json:"parte"`
	LotNumber     string      `json:"lote"`
	Quantity      int         `json:"qty"`
	PurchaseOrder string      `json:"oc"`
	RequiresPO    bool        `json:"ocRequerida"`
	Supervisor    string      `json:"supervisor"`
	Assignee      string      `json:"asignado"`
	Shift         string      `json:"turno"`
	Rate          json.Number `json:"tarifa"`
	RateLabel     string      `json:"tarifaTexto"`
	Week          string      `json:"semana"`
	Notes         string      `json:"notas"`
	Status        string      `json:"estado"`
	rules.Badge
	OpenedOn  string    `json:"fecha"`
	CreatedAt time.Time `json:"creadoEn"`
}

func FromTicket(t entities.Ticket) TicketResponse {
	return TicketResponse{
		ID:            t.ID,
		ClientName:    t.ClientName,
		Contact:       t.Contact,
		Plant:         t.Plant,
		City:          t.City,
		Issue:         t.Issue,
		Description:   t.Description,
		DefectType:    t.DefectType,
		PartNumber:    t.PartNumber,
		LotNumber:     t.LotNumber,
		Quantity:      t.Quantity,
		PurchaseOrder: t.PurchaseOrder,
		RequiresPO:    t.RequiresPO,
		Supervisor:    t.Supervisor,
		Assignee:      t.Assignee,
		Shift:         t.Shift,
		Rate:          amount(t.Rate),
		RateLabel:     rules.FormatRate(t.Rate),
		Week:          t.Week,
		Notes:         t.Notes,
		Status:        string(t.Status),
		Badge:         rules.BadgeFor(t.Status),
		OpenedOn:      rules.FormatDate(t.OpenedOn),
		CreatedAt:     t.CreatedAt,
	}
}

func FromTickets(ts []entities.Ticket) []TicketResponse {
	out := make([]TicketResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, FromTicket(t))
	}
	return out
}
