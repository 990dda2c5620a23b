package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProjectStatus string

const (
	ProjectStatusActivo    ProjectStatus = "Activo"
	ProjectStatusBloqueado ProjectStatus = "Bloqueado"
	ProjectStatusCerrado   ProjectStatus = "Cerrado"
)

// Project is an inspection engagement at one client plant.
//
// ID is the human-readable code shared with the originating ticket (e.g. "EM26-01").
// Hours, Invoiced, Collected and Pending are running totals; Pending is always
// Invoiced minus Collected.
type Project struct {
	ID            string          `json:"id"`
	Name          string          `json:"nombre"`
	ClientName    string          `json:"cliente"`
	Contact       string          `json:"contacto"`
	Plant         string          `json:"planta"`
	City          string          `json:"ciudad"`
	PartNumber    string          `json:"parte"`
	LotNumber     string          `json:"lote"`
	Quantity      int             `json:"cantidad"`
	Rate          decimal.Decimal `json:"tarifa"`
	Supervisor    string          `json:"supervisor"`
	StartDate     time.Time       `json:"inicio"`
	Status        ProjectStatus   `json:"estado"`
	Hours         decimal.Decimal `json:"horasTotal"`
	Invoiced      decimal.Decimal `json:"facturado"`
	Collected     decimal.Decimal `json:"cobrado"`
	Pending       decimal.Decimal `json:"pendiente"`
	PurchaseOrder string          `json:"oc"`
	Notes         string          `json:"notas"`
	Description   string          `json:"descripcion"`
	CreatedAt     time.Time       `json:"creadoEn"`
}
