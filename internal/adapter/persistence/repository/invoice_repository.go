package repository

import (
	"context"
	"time"

	"eisen_qms/internal/domain/entities"
	"eisen_qms/internal/domain/rules"
	"eisen_qms/internal/usecase/interfaces"
)

type paymentRecordDoc struct {
	PaymentID string    `json:"pagoId"`
	Date      flexDate  `json:"fecha"`
	Amount    flexMoney `json:"monto"`
	Method    string    `json:"metodo"`
	Reference string    `json:"referencia"`
	Bank      string    `json:"banco"`
	Status    string    `json:"estado"`
}

type invoiceDoc struct {
	ID            string             `json:"id"`
	ProjectID     string             `json:"proyecto"`
	WeekID        string             `json:"semanaId"`
	WeekLabel     string             `json:"semana"`
	ClientName    string             `json:"cliente"`
	Plant         string             `json:"planta"`
	IssueDate     flexDate           `json:"fechaEmision"`
	CreditDays    flexInt            `json:"diasCredito"`
	DueDate       flexDate           `json:"fechaVencimiento"`
	DaysUntilDue  flexInt            `json:"diasVencimiento"`
	Hours         flexMoney          `json:"horas"`
	Rate          flexMoney          `json:"tarifa"`
	Subtotal      flexMoney          `json:"subtotal"`
	Total         flexMoney          `json:"total"`
	PurchaseOrder string             `json:"oc"`
	Status        string             `json:"estado"`
	Payments      []paymentRecordDoc `json:"pagos"`
	Notes         string             `json:"notas"`
}

type InvoiceRepository struct {
	col collection
}

var _ interfaces.IInvoiceRepository = (*InvoiceRepository)(nil)

func NewInvoiceRepository(store interfaces.IDocumentStore) *InvoiceRepository {
	return &InvoiceRepository{col: collection{store: store, name: entities.CollectionFacturas}}
}

func (r *InvoiceRepository) Save(ctx context.Context, inv entities.Invoice) error {
	return r.col.put(ctx, inv.ID, toInvoiceDoc(inv))
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	var d invoiceDoc
	found, err := r.col.get(ctx, id, &d)
	if err != nil || !found {
		return entities.Invoice{}, err
	}
	if d.ID == "" {
		d.ID = id
	}
	return fromInvoiceDoc(d), nil
}

func (r *InvoiceRepository) List(ctx context.Context) ([]entities.Invoice, error) {
	return listDecoded(ctx, r.col, fromInvoiceDoc)
}

func (r *InvoiceRepository) UpdatePayments(ctx context.Context, inv entities.Invoice) error {
	return r.col.update(ctx, inv.ID, struct {
		Status       string             `json:"estado"`
		DaysUntilDue int                `json:"diasVencimiento"`
		Payments     []paymentRecordDoc `json:"pagos"`
	}{
		Status:       string(inv.Status),
		DaysUntilDue: inv.DaysUntilDue,
		Payments:     toPaymentRecordDocs(inv.Payments),
	})
}

func (r *InvoiceRepository) UpdateAging(ctx context.Context, id string, status entities.InvoiceStatus, dueDate time.Time, daysUntilDue int) error {
	return r.col.update(ctx, id, interfaces.Document{
		"estado":           string(status),
		"fechaVencimiento": rules.FormatDate(dueDate),
		"diasVencimiento":  daysUntilDue,
	})
}

func toPaymentRecordDocs(records []entities.PaymentRecord) []paymentRecordDoc {
	out := make([]paymentRecordDoc, 0, len(records))
	for _, p := range records {
		out = append(out, paymentRecordDoc{
			PaymentID: p.PaymentID,
			Date:      dateOf(p.Date),
			Amount:    money(p.Amount),
			Method:    string(p.Method),
			Reference: p.Reference,
			Bank:      p.Bank,
			Status:    string(p.Status),
		})
	}
	return out
}

func toInvoiceDoc(inv entities.Invoice) invoiceDoc {
	due := inv.DueDate
	if due.IsZero() {
		due = rules.AddDays(inv.IssueDate, inv.CreditDays)
	}
	return invoiceDoc{
		ID:            inv.ID,
		ProjectID:     inv.ProjectID,
		WeekID:        inv.WeekID,
		WeekLabel:     inv.WeekLabel,
		ClientName:    inv.ClientName,
		Plant:         inv.Plant,
		IssueDate:     dateOf(inv.IssueDate),
		CreditDays:    flexInt(inv.CreditDays),
		DueDate:       dateOf(due),
		DaysUntilDue:  flexInt(inv.DaysUntilDue),
		Hours:         money(inv.Hours),
		Rate:          money(inv.Rate),
		Subtotal:      money(inv.Subtotal),
		Total:         money(inv.Total),
		PurchaseOrder: inv.PurchaseOrder,
		Status:        string(inv.Status),
		Payments:      toPaymentRecordDocs(inv.Payments),
		Notes:         inv.Notes,
	}
}

// fromInvoiceDoc reads an invoice. Documents stored without diasCredito get the
// term back from their issue and due dates; a missing subtotal or total is
// rebuilt from hours x rate.
func fromInvoiceDoc(d invoiceDoc) entities.Invoice {
	inv := entities.Invoice{
		ID:            d.ID,
		ProjectID:     d.ProjectID,
		WeekID:        d.WeekID,
		WeekLabel:     d.WeekLabel,
		ClientName:    d.ClientName,
		Plant:         d.Plant,
		IssueDate:     d.IssueDate.Time,
		CreditDays:    int(d.CreditDays),
		DueDate:       d.DueDate.Time,
		DaysUntilDue:  int(d.DaysUntilDue),
		Hours:         d.Hours.Decimal,
		Rate:          d.Rate.Decimal,
		Subtotal:      d.Subtotal.Decimal,
		Total:         d.Total.Decimal,
		PurchaseOrder: d.PurchaseOrder,
		Status:        entities.InvoiceStatus(firstNonEmpty(d.Status, string(entities.InvoiceStatusEnviada))),
		Payments:      make([]entities.PaymentRecord, 0, len(d.Payments)),
		Notes:         d.Notes,
	}

	switch {
	case inv.CreditDays == 0 && !inv.IssueDate.IsZero() && !inv.DueDate.IsZero():
		inv.CreditDays = rules.DaysBetween(inv.IssueDate, inv.DueDate)
	case inv.IssueDate.IsZero() && !inv.DueDate.IsZero():
		inv.IssueDate = rules.AddDays(inv.DueDate, -inv.CreditDays)
	}

	if inv.Subtotal.IsZero() {
		inv.Subtotal = inv.Hours.Mul(inv.Rate)
	}
	if inv.Total.IsZero() {
		inv.Total = inv.Subtotal
	}

	for _, p := range d.Payments {
		inv.Payments = append(inv.Payments, entities.PaymentRecord{
			PaymentID: p.PaymentID,
			Date:      p.Date.Time,
			Amount:    p.Amount.Decimal,
			Method:    entities.PaymentMethod(p.Method),
			Reference: p.Reference,
			Bank:      p.Bank,
			Status:    entities.PaymentStatus(firstNonEmpty(p.Status, string(entities.PaymentStatusConfirmado))),
		})
	}
	return inv
}
