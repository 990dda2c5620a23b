package repository

import (
	"context"

	"eisen_qms/internal/domain/entities"
	"eisen_qms/internal/usecase/interfaces"
)

type ticketDoc struct {
	ID            string    `json:"id"`
	ClientName    string    `json:"cliente"`
	Contact       string    `json:"contacto"`
	Plant         string    `json:"planta"`
	City          string    `json:"ciudad"`
	Issue         string    `json:"issue"`
	Description   string    `json:"descripcion"`
	DefectType    string    `json:"defecto"`
	PartNumber    string    `json:"parte"`
	LotNumber     string    `json:"lote"`
	Quantity      flexInt   `json:"qty"`
	PurchaseOrder string    `json:"oc"`
	RequiresPO    *flexBool `json:"ocRequerida"`
	Supervisor    string    `json:"supervisor"`
	Assignee      string    `json:"asignado"`
	Shift         string    `json:"turno"`
	Rate          flexMoney `json:"tarifa"`
	Week          string    `json:"semana"`
	Notes         string    `json:"notas"`
	Status        string    `json:"estado"`
	OpenedOn      flexDate  `json:"fecha"`
	CreatedAt     flexTime  `json:"creadoEn"`
}

type TicketRepository struct {
	col collection
}

var _ interfaces.ITicketRepository = (*TicketRepository)(nil)

func NewTicketRepository(store interfaces.IDocumentStore) *TicketRepository {
	return &TicketRepository{col: collection{store: store, name: entities.CollectionTickets}}
}

func (r *TicketRepository) Save(ctx context.Context, t entities.Ticket) error {
	return r.col.put(ctx, t.ID, toTicketDoc(t))
}

func (r *TicketRepository) GetByID(ctx context.Context, id string) (entities.Ticket, error) {
	var d ticketDoc
	found, err := r.col.get(ctx, id, &d)
	if err != nil || !found {
		return entities.Ticket{}, err
	}
	if d.ID == "" {
		d.ID = id
	}
	return fromTicketDoc(d), nil
}

func (r *TicketRepository) List(ctx context.Context) ([]entities.Ticket, error) {
	return listDecoded(ctx, r.col, fromTicketDoc)
}

func (r *TicketRepository) UpdateStatus(ctx context.Context, id string, status entities.TicketStatus, po string) error {
	return r.col.update(ctx, id, interfaces.Document{
		"estado": string(status),
		"oc":     po,
	})
}

func toTicketDoc(t entities.Ticket) ticketDoc {
	requires := flexBool(t.RequiresPO)
	return ticketDoc{
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
		Quantity:      flexInt(t.Quantity),
		PurchaseOrder: t.PurchaseOrder,
		RequiresPO:    &requires,
		Supervisor:    t.Supervisor,
		Assignee:      t.Assignee,
		Shift:         t.Shift,
		Rate:          money(t.Rate),
		Week:          t.Week,
		Notes:         t.Notes,
		Status:        string(t.Status),
		OpenedOn:      dateOf(t.OpenedOn),
		CreatedAt:     timeOf(t.CreatedAt),
	}
}

// fromTicketDoc reads a ticket. Documents written before ocRequerida existed
// required a PO exactly when they were stored as waiting.
func fromTicketDoc(d ticketDoc) entities.Ticket {
	status := entities.TicketStatus(d.Status)
	if status == "" {
		status = entities.TicketStatusEnProceso
	}
	requires := status == entities.TicketStatusEnEspera
	if d.RequiresPO != nil {
		requires = bool(*d.RequiresPO)
	}
	return entities.Ticket{
		ID:            d.ID,
		ClientName:    d.ClientName,
		Contact:       d.Contact,
		Plant:         d.Plant,
		City:          d.City,
		Issue:         d.Issue,
		Description:   d.Description,
		DefectType:    d.DefectType,
		PartNumber:    d.PartNumber,
		LotNumber:     d.LotNumber,
		Quantity:      int(d.Quantity),
		PurchaseOrder: d.PurchaseOrder,
		RequiresPO:    requires,
		Supervisor:    d.Supervisor,
		Assignee:      d.Assignee,
		Shift:         d.Shift,
		Rate:          d.Rate.Decimal,
		Week:          d.Week,
		Notes:         d.Notes,
		Status:        status,
		OpenedOn:      d.OpenedOn.Time,
		CreatedAt:     d.CreatedAt.Time,
	}
}
