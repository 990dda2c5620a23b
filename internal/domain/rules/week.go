package rules

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"eisen_qms/internal/domain"
	"eisen_qms/internal/domain/entities"
)

const entityWeek = "semana"

// WeekAmount is hours x rate, falling back to the stored amount for weeks
// recorded without one of the two.
func WeekAmount(w entities.ProjectWeek) decimal.Decimal {
	if w.Hours.IsPositive() && w.Rate.IsPositive() {
		return w.Hours.Mul(w.Rate)
	}
	return w.Amount
}

// DeriveWeekStatus recomputes Blocked or ReadyToInvoice and the compliance score
// from the document set.
// Invoiced and Paid are recorded and left untouched.
func DeriveWeekStatus(w entities.ProjectWeek, policy CompliancePolicy) entities.ProjectWeek {
	res := Evaluate(w.Documents, w.TermsSigned, policy)
	w.Score = res.Score
	w.Amount = WeekAmount(w)

	switch w.Status {
	case entities.WeekStatusFacturada, entities.WeekStatusPagada:
		return w
	}
	if res.Complete {
		w.Status = entities.WeekStatusListaParaFacturar
	} else {
		w.Status = entities.WeekStatusBloqueada
	}
	return w
}

// AttachDocument records one document on the week and re-derives its status.
// Documents can no longer change once the week is invoiced.
func AttachDocument(w entities.ProjectWeek, kind entities.DocumentKind, slot entities.DocumentSlot, policy CompliancePolicy) (entities.ProjectWeek, error) {
	switch w.Status {
	case entities.WeekStatusFacturada, entities.WeekStatusPagada:
		return w, domain.NewStateError(entityWeek, string(w.Status), "attach-document")
	}
	if kind == entities.DocumentOC && slot.Present && strings.TrimSpace(slot.Number) == "" {
		return w, domain.NewValidationError("oc", "PO number required")
	}

	docs, ok := w.Documents.With(kind, slot)
	if !ok {
		return w, domain.NewValidationError("documento", "unknown document kind "+string(kind))
	}
	w.Documents = docs
	return DeriveWeekStatus(w, policy), nil
}

type InvoiceDraft struct {
	ID            string
	IssueDate     time.Time
	CreditDays    int
	PurchaseOrder string
	Notes         string
}

// CreateInvoice bills a week that is ready to invoice. It returns the week moved
// to Invoiced and the new invoice, aged as of asOf.
func CreateInvoice(w entities.ProjectWeek, draft InvoiceDraft, policy CompliancePolicy, asOf time.Time) (entities.ProjectWeek, entities.Invoice, error) {
	derived := DeriveWeekStatus(w, policy)
	if derived.Status != entities.WeekStatusListaParaFacturar {
		return w, entities.Invoice{}, domain.NewStateError(entityWeek, string(derived.Status), "create-invoice")
	}

	switch {
	case strings.TrimSpace(draft.ID) == "":
		return w, entities.Invoice{}, domain.NewValidationError("id", "invoice number required")
	case draft.IssueDate.IsZero():
		return w, entities.Invoice{}, domain.NewValidationError("fechaEmision", "issue date required")
	case !w.Hours.IsPositive():
		return w, entities.Invoice{}, domain.NewValidationError("horasTotal", "billable hours required")
	case !w.Rate.IsPositive():
		return w, entities.Invoice{}, domain.NewValidationError("tarifa", "hourly rate required")
	}
	if err := ValidateCreditDays(draft.CreditDays); err != nil {
		return w, entities.Invoice{}, err
	}

	po := strings.TrimSpace(draft.PurchaseOrder)
	if po == "" {
		po = w.Documents.PurchaseOrder.Number
	}

	subtotal := w.Hours.Mul(w.Rate)
	inv := entities.Invoice{
		ID:            strings.TrimSpace(draft.ID),
		ProjectID:     w.ProjectID,
		WeekID:        w.ID,
		WeekLabel:     w.Label,
		ClientName:    w.ClientName,
		Plant:         w.Plant,
		IssueDate:     DateOf(draft.IssueDate),
		CreditDays:    draft.CreditDays,
		Hours:         w.Hours,
		Rate:          w.Rate,
		Subtotal:      subtotal,
		Total:         subtotal,
		PurchaseOrder: po,
		Payments:      []entities.PaymentRecord{},
		Notes:         draft.Notes,
	}
	inv = DeriveInvoiceStatus(inv, asOf)

	derived.Status = entities.WeekStatusFacturada
	derived.InvoiceID = inv.ID
	derived.Amount = subtotal
	return derived, inv, nil
}

// MarkWeekPaid records that the week's invoice has been paid. Marking a paid week again is a no-op.
func MarkWeekPaid(w entities.ProjectWeek) (entities.ProjectWeek, error) {
	switch w.Status {
	case entities.WeekStatusPagada:
		return w, nil
	case entities.WeekStatusFacturada:
		w.Status = entities.WeekStatusPagada
		return w, nil
	}
	return w, domain.NewStateError(entityWeek, string(w.Status), "mark-paid")
}

func ValidateWeek(w entities.ProjectWeek) error {
	switch {
	case strings.TrimSpace(w.ID) == "":
		return domain.NewValidationError("id", "week id required")
	case strings.TrimSpace(w.ProjectID) == "":
		return domain.NewValidationError("proyecto", "project required")
	case strings.TrimSpace(w.Label) == "":
		return domain.NewValidationError("semana", "week label required")
	case w.Hours.IsNegative():
		return domain.NewValidationError("horasTotal", "hours cannot be negative")
	case w.Rate.IsNegative():
		return domain.NewValidationError("tarifa", "rate cannot be negative")
	case w.DaysWorked < 0 || w.DaysWorked > 7:
		return domain.NewValidationError("diasTrabajados", "days worked must be between 0 and 7")
	case w.OK < 0 || w.NOK < 0 || w.OK+w.NOK > w.Inspected:
		return domain.NewValidationError("inspeccionadas", "ok and nok must not exceed inspected pieces")
	case !w.StartDate.IsZero() && !w.EndDate.IsZero() && w.EndDate.Before(w.StartDate):
		return domain.NewValidationError("fechaFin", "end date before start date")
	}
	return nil
}
