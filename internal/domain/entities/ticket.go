package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type TicketStatus string

const (
	TicketStatusEnEspera  TicketStatus = "En Espera"
	TicketStatusEnProceso TicketStatus = "En Proceso"
	TicketStatusCerrado   TicketStatus = "Cerrado"
)

// Ticket is a service issue raised at a client plant.
//
// A ticket waits while RequiresPO is set and PurchaseOrder is empty.
// Its ID is usually reused as the project code.
type Ticket struct {
	ID            string          `json:"id"`
	ClientName    string          `json:"cliente"`
	Contact       string          `json:"contacto"`
	Plant         string          `json:"planta"`
	City          string          `json:"ciudad"`
	Issue         string          `json:"issue"`
	Description   string          `json:"descripcion"`
	DefectType    string          `json:"defecto"`
	PartNumber    string          `json:"parte"`
	LotNumber     string          `json:"lote"`
	Quantity      int             `json:"qty"`
	PurchaseOrder string          `json:"oc"`
	RequiresPO    bool            `json:"ocRequerida"`
	Supervisor    string          `json:"supervisor"`
	Assignee      string          `json:"asignado"`
	Shift         string          `json:"turno"`
	Rate          decimal.Decimal `json:"tarifa"`
	Week          string          `json:"semana"`
	Notes         string          `json:"notas"`
	Status        TicketStatus    `json:"estado"`
	OpenedOn      time.Time       `json:"fecha"`
	CreatedAt     time.Time       `json:"creadoEn"`
}
