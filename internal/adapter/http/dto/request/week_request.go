package request

import (
	"strings"

	"eisen_qms/internal/domain/entities"
	"eisen_qms/internal/domain/rules"
)

// WeekCreateRequest takes the document flags in the flat form the weekly
// tracker form sends: pod, reporte and firma as booleans and the PO number in oc.
type WeekCreateRequest struct {
	ID          string `json:"id" binding:"required"`
	ProjectID   string `json:"proyecto" binding:"required"`
	ClientName  string `json:"cliente"`
	Plant       string `json:"planta"`
	Label       string `json:"semana" binding:"required"`
	Range       string `json:"rango"`
	StartDate   Date   `json:"fechaInicio"`
	EndDate     Date   `json:"fechaFin"`
	Supervisor  string `json:"supervisor"`
	DaysWorked  int    `json:"diasTrabajados" binding:"gte=0,lte=7"`
	Hours       Money  `json:"horasTotal"`
	Rate        Money  `json:"tarifa"`
	Inspected   int    `json:"inspeccionadas" binding:"gte=0"`
	OK          int    `json:"ok" binding:"gte=0"`
	NOK         int    `json:"nok" binding:"gte=0"`
	POD         bool   `json:"pod"`
	Report      bool   `json:"reporte"`
	Signature   bool   `json:"firma"`
	PO          string `json:"oc"`
	TermsSigned bool   `json:"tycFirmado"`
	Notes       string `json:"notas"`
}

func (r WeekCreateRequest) ToEntity() entities.ProjectWeek {
	po := strings.TrimSpace(r.PO)
	return entities.ProjectWeek{
		ID:         strings.TrimSpace(r.ID),
		ProjectID:  strings.TrimSpace(r.ProjectID),
		ClientName: r.ClientName,
		Plant:      r.Plant,
		Label:      strings.TrimSpace(r.Label),
		Range:      r.Range,
		StartDate:  r.StartDate.Time,
		EndDate:    r.EndDate.Time,
		Supervisor: r.Supervisor,
		DaysWorked: r.DaysWorked,
		Hours:      r.Hours.Value,
		Rate:       r.Rate.Value,
		Inspected:  r.Inspected,
		OK:         r.OK,
		NOK:        r.NOK,
		Documents: entities.DocumentSet{
			POD:           entities.DocumentSlot{Present: r.POD},
			Report:        entities.DocumentSlot{Present: r.Report},
			Signature:     entities.DocumentSlot{Present: r.Signature},
			PurchaseOrder: entities.DocumentSlot{Present: po != "", Number: po},
		},
		TermsSigned: r.TermsSigned,
		Notes:       r.Notes,
	}
}

type AttachDocumentRequest struct {
	Kind string `json:"tipo" binding:"required,oneof=pod reporte firma oc"`
	// Present defaults to true; send false to withdraw a document.
	Present *bool  `json:"ok"`
	Date    Date   `json:"fecha"`
	File    string `json:"archivo"`
	Number  string `json:"numero"`
}

func (r AttachDocumentRequest) ToSlot() (entities.DocumentKind, entities.DocumentSlot) {
	present := true
	if r.Present != nil {
		present = *r.Present
	}
	return entities.DocumentKind(r.Kind), entities.DocumentSlot{
		Present: present,
		Date:    r.Date.Time,
		File:    strings.TrimSpace(r.File),
		Number:  strings.TrimSpace(r.Number),
	}
}

// InvoiceCreateRequest bills a week. Every field is optional: the number is
// generated, the issue date is today and the credit term is the configured default.
type InvoiceCreateRequest struct {
	ID            string `json:"id"`
	IssueDate     Date   `json:"fechaEmision"`
	CreditDays    int    `json:"diasCredito" binding:"gte=0"`
	PurchaseOrder string `json:"oc"`
	Notes         string `json:"notas"`
}

func (r InvoiceCreateRequest) ToDraft() rules.InvoiceDraft {
	return rules.InvoiceDraft{
		ID:            strings.TrimSpace(r.ID),
		IssueDate:     r.IssueDate.Time,
		CreditDays:    r.CreditDays,
		PurchaseOrder: strings.TrimSpace(r.PurchaseOrder),
		Notes:         r.Notes,
	}
}
