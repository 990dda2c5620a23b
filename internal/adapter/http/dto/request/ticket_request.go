package request

import (
	"strings"

	"eisen_qms/internal/domain/entities"
)

type TicketCreateRequest struct {
	ID            string `json:"id"`
	ClientName    string `json:"cliente" binding:"required"`
	Contact       string `json:"contacto"`
	Plant         string `json:"planta"`
	City          string `json:"ciudad"`
	Issue         string `json:"issue" binding:"required"`
	Description   string `json:"descripcion"`
	DefectType    string `json:"defecto"`
	PartNumber    string `json:"parte"`
	LotNumber     string `json:"lote"`
	Quantity      int    `json:"qty" binding:"gte=0"`
	PurchaseOrder string `json:"oc"`
	// RequiresPO defaults to true when omitted.
	RequiresPO *bool  `json:"ocRequerida"`
	Supervisor string `json:"supervisor"`
	Assignee   string `json:"asignado"`
	Shift      string `json:"turno"`
	Rate       Money  `json:"tarifa"`
	Week       string `json:"semana"`
	Notes      string `json:"notas"`
	OpenedOn   Date   `json:"fecha"`
}

func (r TicketCreateRequest) ToEntity() entities.Ticket {
	requiresPO := true
	if r.RequiresPO != nil {
		requiresPO = *r.RequiresPO
	}
	return entities.Ticket{
		ID:            strings.TrimSpace(r.ID),
		ClientName:    strings.TrimSpace(r.ClientName),
		Contact:       r.Contact,
		Plant:         r.Plant,
		City:          r.City,
		Issue:         strings.TrimSpace(r.Issue),
		Description:   r.Description,
		DefectType:    r.DefectType,
		PartNumber:    r.PartNumber,
		LotNumber:     r.LotNumber,
		Quantity:      r.Quantity,
		PurchaseOrder: r.PurchaseOrder,
		RequiresPO:    requiresPO,
		Supervisor:    r.Supervisor,
		Assignee:      r.Assignee,
		Shift:         r.Shift,
		Rate:          r.Rate.Value,
		Week:          r.Week,
		Notes:         r.Notes,
		OpenedOn:      r.OpenedOn.Time,
	}
}

// TicketPORequest carries the PO number. Blank numbers are rejected by the
// ticket rules so the error names the oc field.
type TicketPORequest struct {
	PurchaseOrder string `json:"oc"`
}
