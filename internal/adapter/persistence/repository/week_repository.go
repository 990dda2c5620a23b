package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"eisen_qms/internal/domain/entities"
	"eisen_qms/internal/domain/rules"
	"eisen_qms/internal/usecase/interfaces"
)

type documentSlotDoc struct {
	OK     flexBool `json:"ok"`
	Date   flexDate `json:"fecha"`
	File   string   `json:"archivo"`
	Number string   `json:"numero"`
}

type documentSetDoc struct {
	POD       documentSlotDoc `json:"pod"`
	Report    documentSlotDoc `json:"reporte"`
	Signature documentSlotDoc `json:"firma"`
	PO        documentSlotDoc `json:"oc"`
}

// weekDoc mirrors a "semanas" document. Documents are kept twice: as flat
// pod/reporte/firma/oc flags read by list views and as the nested documentos
// map read by the compliance view. oc holds either a bool or the PO number.
type weekDoc struct {
	ID          string          `json:"id"`
	ProjectID   string          `json:"proyecto"`
	ClientName  string          `json:"cliente"`
	Plant       string          `json:"planta"`
	Label       string          `json:"semana"`
	Range       string          `json:"rango"`
	StartDate   flexDate        `json:"fechaInicio"`
	EndDate     flexDate        `json:"fechaFin"`
	Supervisor  string          `json:"supervisor"`
	DaysWorked  flexInt         `json:"diasTrabajados"`
	LegacyDays  *flexInt        `json:"dias,omitempty"`
	Hours       flexMoney       `json:"horasTotal"`
	LegacyHours *flexMoney      `json:"horas,omitempty"`
	Rate        flexMoney       `json:"tarifa"`
	Amount      flexMoney       `json:"monto"`
	LegacyTotal *flexMoney      `json:"total,omitempty"`
	Inspected   flexInt         `json:"inspeccionadas"`
	OK          flexInt         `json:"ok"`
	NOK         flexInt         `json:"nok"`
	NOKRate     string          `json:"tasaNok"`
	POD         flexBool        `json:"pod"`
	Report      flexBool        `json:"reporte"`
	Signature   flexBool        `json:"firma"`
	PO          json.RawMessage `json:"oc,omitempty"`
	Documents   *documentSetDoc `json:"documentos,omitempty"`
	TermsSigned flexBool        `json:"tycFirmado"`
	InvoiceID   string          `json:"facturaId"`
	Status      string          `json:"estado"`
	Score       flexInt         `json:"puntaje"`
	Notes       string          `json:"notas"`
}

type WeekRepository struct {
	col collection
}

var _ interfaces.IWeekRepository = (*WeekRepository)(nil)

func NewWeekRepository(store interfaces.IDocumentStore) *WeekRepository {
	return &WeekRepository{col: collection{store: store, name: entities.CollectionSemanas}}
}

func (r *WeekRepository) Save(ctx context.Context, w entities.ProjectWeek) error {
	d, err := toWeekDoc(w)
	if err != nil {
		return err
	}
	return r.col.put(ctx, w.ID, d)
}

func (r *WeekRepository) GetByID(ctx context.Context, id string) (entities.ProjectWeek, error) {
	var d weekDoc
	found, err := r.col.get(ctx, id, &d)
	if err != nil || !found {
		return entities.ProjectWeek{}, err
	}
	if d.ID == "" {
		d.ID = id
	}
	return fromWeekDoc(d), nil
}

func (r *WeekRepository) List(ctx context.Context) ([]entities.ProjectWeek, error) {
	return listDecoded(ctx, r.col, fromWeekDoc)
}

func (r *WeekRepository) UpdateStatus(ctx context.Context, id string, status entities.WeekStatus, invoiceID string) error {
	return r.col.update(ctx, id, interfaces.Document{
		"estado":    string(status),
		"facturaId": invoiceID,
	})
}

func (r *WeekRepository) UpdateCompliance(ctx context.Context, id string, status entities.WeekStatus, score int) error {
	return r.col.update(ctx, id, interfaces.Document{
		"estado":  string(status),
		"puntaje": score,
	})
}

func toSlotDoc(s entities.DocumentSlot) documentSlotDoc {
	return documentSlotDoc{OK: flexBool(s.Present), Date: dateOf(s.Date), File: s.File, Number: s.Number}
}

func fromSlotDoc(d documentSlotDoc) entities.DocumentSlot {
	return entities.DocumentSlot{Present: bool(d.OK), Date: d.Date.Time, File: d.File, Number: d.Number}
}

func toWeekDoc(w entities.ProjectWeek) (weekDoc, error) {
	var po any = w.Documents.PurchaseOrder.Present
	if w.Documents.PurchaseOrder.Present && w.Documents.PurchaseOrder.Number != "" {
		po = w.Documents.PurchaseOrder.Number
	}
	rawPO, err := json.Marshal(po)
	if err != nil {
		return weekDoc{}, err
	}

	return weekDoc{
		ID:          w.ID,
		ProjectID:   w.ProjectID,
		ClientName:  w.ClientName,
		Plant:       w.Plant,
		Label:       w.Label,
		Range:       w.Range,
		StartDate:   dateOf(w.StartDate),
		EndDate:     dateOf(w.EndDate),
		Supervisor:  w.Supervisor,
		DaysWorked:  flexInt(w.DaysWorked),
		Hours:       money(w.Hours),
		Rate:        money(w.Rate),
		Amount:      money(rules.WeekAmount(w)),
		Inspected:   flexInt(w.Inspected),
		OK:          flexInt(w.OK),
		NOK:         flexInt(w.NOK),
		NOKRate:     rules.PercentString(rules.NOKRate(w.NOK, w.Inspected)),
		POD:         flexBool(w.Documents.POD.Present),
		Report:      flexBool(w.Documents.Report.Present),
		Signature:   flexBool(w.Documents.Signature.Present),
		PO:          rawPO,
		Documents: &documentSetDoc{
			POD:       toSlotDoc(w.Documents.POD),
			Report:    toSlotDoc(w.Documents.Report),
			Signature: toSlotDoc(w.Documents.Signature),
			PO:        toSlotDoc(w.Documents.PurchaseOrder),
		},
		TermsSigned: flexBool(w.TermsSigned),
		InvoiceID:   w.InvoiceID,
		Status:      string(w.Status),
		Score:       flexInt(w.Score),
		Notes:       w.Notes,
	}, nil
}

// readPOFlag reads the flat oc field, which is a bool or a PO number.
func readPOFlag(raw json.RawMessage) (present bool, number string) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return false, ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			s = strings.TrimSpace(s)
			return s != "", s
		}
		return false, ""
	}
	var flag flexBool
	_ = json.Unmarshal(raw, &flag)
	return bool(flag), ""
}

func fromWeekDoc(d weekDoc) entities.ProjectWeek {
	w := entities.ProjectWeek{
		ID:          d.ID,
		ProjectID:   d.ProjectID,
		ClientName:  d.ClientName,
		Plant:       d.Plant,
		Label:       d.Label,
		Range:       d.Range,
		StartDate:   d.StartDate.Time,
		EndDate:     d.EndDate.Time,
		Supervisor:  d.Supervisor,
		DaysWorked:  int(d.DaysWorked),
		Hours:       d.Hours.Decimal,
		Rate:        d.Rate.Decimal,
		Amount:      d.Amount.Decimal,
		Inspected:   int(d.Inspected),
		OK:          int(d.OK),
		NOK:         int(d.NOK),
		TermsSigned: bool(d.TermsSigned),
		InvoiceID:   d.InvoiceID,
		Status:      entities.WeekStatus(d.Status),
		Score:       int(d.Score),
		Notes:       d.Notes,
	}
	if w.DaysWorked == 0 && d.LegacyDays != nil {
		w.DaysWorked = int(*d.LegacyDays)
	}
	if w.Hours.IsZero() && d.LegacyHours != nil {
		w.Hours = d.LegacyHours.Decimal
	}
	if w.Amount.IsZero() && d.LegacyTotal != nil {
		w.Amount = d.LegacyTotal.Decimal
	}

	if d.Documents != nil {
		w.Documents = entities.DocumentSet{
			POD:           fromSlotDoc(d.Documents.POD),
			Report:        fromSlotDoc(d.Documents.Report),
			Signature:     fromSlotDoc(d.Documents.Signature),
			PurchaseOrder: fromSlotDoc(d.Documents.PO),
		}
	}
	// flat flags only ever add documents the nested map does not have
	w.Documents.POD.Present = w.Documents.POD.Present || bool(d.POD)
	w.Documents.Report.Present = w.Documents.Report.Present || bool(d.Report)
	w.Documents.Signature.Present = w.Documents.Signature.Present || bool(d.Signature)
	if present, number := readPOFlag(d.PO); present {
		w.Documents.PurchaseOrder.Present = true
		if w.Documents.PurchaseOrder.Number == "" {
			w.Documents.PurchaseOrder.Number = number
		}
	}
	return w
}
