package rules

import (
	"time"

	"github.com/shopspring/decimal"

	"eisen_qms/internal/domain"
	"eisen_qms/internal/domain/entities"
)

// DeriveInvoiceStatus recomputes due date, days remaining and Sent/Overdue as of asOf.
// A recorded Paid status is kept.
func DeriveInvoiceStatus(inv entities.Invoice, asOf time.Time) entities.Invoice {
	aging := ClassifyInvoice(inv.IssueDate, inv.CreditDays, inv.Total, inv.Payments, asOf)
	inv.DueDate = aging.DueDate
	inv.DaysUntilDue = aging.DaysRemaining
	if inv.Status != entities.InvoiceStatusPagada {
		inv.Status = aging.Status
	}
	return inv
}

// RecordPayment adds rec to the invoice, replacing an earlier record of the same
// payment. It is legal in every state, including Overdue.
func RecordPayment(inv entities.Invoice, rec entities.PaymentRecord, asOf time.Time) (entities.Invoice, error) {
	if !rec.Amount.IsPositive() {
		return inv, domain.NewValidationError("monto", "payment amount must be positive")
	}
	if rec.Status == "" {
		rec.Status = entities.PaymentStatusConfirmado
	}
	rec.Date = DateOf(rec.Date)

	payments := make([]entities.PaymentRecord, 0, len(inv.Payments)+1)
	replaced := false
	for _, p := range inv.Payments {
		if rec.PaymentID != "" && p.PaymentID == rec.PaymentID {
			payments = append(payments, rec)
			replaced = true
			continue
		}
		payments = append(payments, p)
	}
	if !replaced {
		payments = append(payments, rec)
	}
	inv.Payments = payments

	return DeriveInvoiceStatus(inv, asOf), nil
}

// InvoiceBalance is the amount still owed, never below zero.
func InvoiceBalance(inv entities.Invoice) decimal.Decimal {
	balance := inv.Total.Sub(ConfirmedTotal(inv.Payments))
	if balance.IsNegative() {
		return decimal.Zero
	}
	return balance
}
