package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type WeekStatus string

const (
	WeekStatusListaParaFacturar WeekStatus = "Lista para Facturar"
	WeekStatusBloqueada         WeekStatus = "Bloqueada"
	WeekStatusFacturada         WeekStatus = "Facturada"
	WeekStatusPagada            WeekStatus = "Pagada"
)

// DocumentKind names one slot of the weekly compliance document set.
type DocumentKind string

const (
	DocumentPOD     DocumentKind = "pod"
	DocumentReporte DocumentKind = "reporte"
	DocumentFirma   DocumentKind = "firma"
	DocumentOC      DocumentKind = "oc"
)

// DocumentSlot records whether a required document is on file.
type DocumentSlot struct {
	Present bool      `json:"ok"`
	Date    time.Time `json:"fecha"`
	File    string    `json:"archivo"`
	Number  string    `json:"numero"`
}

// DocumentSet holds the four documents a week needs before it can be invoiced.
type DocumentSet struct {
	POD           DocumentSlot `json:"pod"`
	Report        DocumentSlot `json:"reporte"`
	Signature     DocumentSlot `json:"firma"`
	PurchaseOrder DocumentSlot `json:"oc"`
}

// Slot returns the slot for kind; ok is false for unknown kinds.
func (d DocumentSet) Slot(kind DocumentKind) (DocumentSlot, bool) {
	switch kind {
	case DocumentPOD:
		return d.POD, true
	case DocumentReporte:
		return d.Report, true
	case DocumentFirma:
		return d.Signature, true
	case DocumentOC:
		return d.PurchaseOrder, true
	}
	return DocumentSlot{}, false
}

// With returns a copy of d with the slot for kind replaced.
func (d DocumentSet) With(kind DocumentKind, slot DocumentSlot) (DocumentSet, bool) {
	switch kind {
	case DocumentPOD:
		d.POD = slot
	case DocumentReporte:
		d.Report = slot
	case DocumentFirma:
		d.Signature = slot
	case DocumentOC:
		d.PurchaseOrder = slot
	default:
		return d, false
	}
	return d, true
}

// ProjectWeek ("semana") is one Monday–Friday unit of billable work on a project.
//
// Blocked, ReadyToInvoice and Score are derived from Documents on every read.
// Invoiced and Paid are recorded once an invoice or its payment exists.
type ProjectWeek struct {
	ID          string          `json:"id"`
	ProjectID   string          `json:"proyecto"`
	ClientName  string          `json:"cliente"`
	Plant       string          `json:"planta"`
	Label       string          `json:"semana"`
	Range       string          `json:"rango"`
	StartDate   time.Time       `json:"fechaInicio"`
	EndDate     time.Time       `json:"fechaFin"`
	Supervisor  string          `json:"supervisor"`
	DaysWorked  int             `json:"diasTrabajados"`
	Hours       decimal.Decimal `json:"horasTotal"`
	Rate        decimal.Decimal `json:"tarifa"`
	Amount      decimal.Decimal `json:"monto"`
	Inspected   int             `json:"inspeccionadas"`
	OK          int             `json:"ok"`
	NOK         int             `json:"nok"`
	Documents   DocumentSet     `json:"documentos"`
	Score       int             `json:"puntaje"`
	TermsSigned bool            `json:"tycFirmado"`
	InvoiceID   string          `json:"facturaId"`
	Status      WeekStatus      `json:"estado"`
	Notes       string          `json:"notas"`
}
