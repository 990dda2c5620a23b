package response

import (
	"encoding/json"

	"eisen_qms/internal/domain/entities"
	"eisen_qms/internal/domain/rules"
	"eisen_qms/internal/usecase"
)

type DocumentResponse struct {
	Present bool   `json:"ok"`
	Date    string `json:"fecha,omitempty"`
	File    string `json:"archivo,omitempty"`
	Number  string `json:"numero,omitempty"`
}

type DocumentsResponse struct {
	POD           DocumentResponse `json:"pod"`
	Report        DocumentResponse `json:"reporte"`
	Signature     DocumentResponse `json:"firma"`
	PurchaseOrder DocumentResponse `json:"oc"`
}

func fromSlot(s entities.DocumentSlot) DocumentResponse {
	return DocumentResponse{Present: s.Present, Date: rules.FormatDate(s.Date), File: s.File, Number: s.Number}
}

func fromDocuments(d entities.DocumentSet) DocumentsResponse {
	return DocumentsResponse{
		POD:           fromSlot(d.POD),
		Report:        fromSlot(d.Report),
		Signature:     fromSlot(d.Signature),
		PurchaseOrder: fromSlot(d.PurchaseOrder),
	}
}

type WeekResponse struct {
	ID          string            `json:"id"`
	ProjectID   string            `json:"proyecto"`
	ClientName  string            `json:"cliente"`
	Plant       string            `json:"planta"`
	Label       string            `json:"semana"`
	Range       string            `json:"rango"`
	StartDate   string            `json:"fechaInicio"`
	EndDate     string            `json:"fechaFin"`
	Supervisor  string            `json:"supervisor"`
	DaysWorked  int               `json:"diasTrabajados"`
	Hours       json.Number       `json:"horasTotal"`
	Rate        json.Number       `json:"tarifa"`
	Amount      json.Number       `json:"monto"`
	AmountLabel string            `json:"montoTexto"`
	Inspected   int               `json:"inspeccionadas"`
	OK          int               `json:"ok"`
	NOK         int               `json:"nok"`
	NOKRate     string            `json:"tasaNok"`
	Documents   DocumentsResponse `json:"documentos"`
	Score       int               `json:"puntaje"`
	TermsSigned bool              `json:"tycFirmado"`
	InvoiceID   string            `json:"facturaId,omitempty"`
	Status      string            `json:"estado"`
	rules.Badge
	Notes string `json:"notas"`
}

func FromWeek(w entities.ProjectWeek) WeekResponse {
	return WeekResponse{
		ID:          w.ID,
		ProjectID:   w.ProjectID,
		ClientName:  w.ClientName,
		Plant:       w.Plant,
		Label:       w.Label,
		Range:       w.Range,
		StartDate:   rules.FormatDate(w.StartDate),
		EndDate:     rules.FormatDate(w.EndDate),
		Supervisor:  w.Supervisor,
		DaysWorked:  w.DaysWorked,
		Hours:       quantity(w.Hours),
		Rate:        amount(w.Rate),
		Amount:      amount(w.Amount),
		AmountLabel: rules.FormatMoney(w.Amount),
		Inspected:   w.Inspected,
		OK:          w.OK,
		NOK:         w.NOK,
		NOKRate:     rules.PercentString(rules.NOKRate(w.NOK, w.Inspected)),
		Documents:   fromDocuments(w.Documents),
		Score:       w.Score,
		TermsSigned: w.TermsSigned,
		InvoiceID:   w.InvoiceID,
		Status:      string(w.Status),
		Badge:       rules.BadgeFor(w.Status),
		Notes:       w.Notes,
	}
}

func FromWeeks(ws []entities.ProjectWeek) []WeekResponse {
	out := make([]WeekResponse, 0, len(ws))
	for _, w := range ws {
		out = append(out, FromWeek(w))
	}
	return out
}

// ComplianceResponse is one row of the document compliance tracker.
type ComplianceResponse struct {
	WeekID      string            `json:"semanaId"`
	ProjectID   string            `json:"proyecto"`
	ClientName  string            `json:"cliente"`
	Plant       string            `json:"planta"`
	Label       string            `json:"semana"`
	Documents   DocumentsResponse `json:"documentos"`
	TermsSigned bool              `json:"tycFirmado"`
	Score       int               `json:"puntaje"`
	Missing     []string          `json:"faltantes"`
	WeekStatus  string            `json:"estadoSemana"`
	Status      string            `json:"estado"`
	rules.Badge
}

func FromCompliance(wc usecase.WeekCompliance) ComplianceResponse {
	missing := make([]string, 0, len(wc.Result.Missing))
	for _, k := range wc.Result.Missing {
		missing = append(missing, string(k))
	}
	status := wc.Result.Status()
	return ComplianceResponse{
		WeekID:      wc.Week.ID,
		ProjectID:   wc.Week.ProjectID,
		ClientName:  wc.Week.ClientName,
		Plant:       wc.Week.Plant,
		Label:       wc.Week.Label,
		Documents:   fromDocuments(wc.Week.Documents),
		TermsSigned: wc.Week.TermsSigned,
		Score:       wc.Result.Score,
		Missing:     missing,
		WeekStatus:  string(wc.Week.Status),
		Status:      string(status),
		Badge:       rules.BadgeFor(status),
	}
}

func FromComplianceList(list []usecase.WeekCompliance) []ComplianceResponse {
	out := make([]ComplianceResponse, 0, len(list))
	for _, wc := range list {
		out = append(out, FromCompliance(wc))
	}
	return out
}
