package rules

import (
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"eisen_qms/internal/domain"
	"eisen_qms/internal/domain/entities"
)

// CreditTerms are the accepted invoice credit terms in days.
var CreditTerms = []int{15, 30, 45, 60, 90}

func ValidateCreditDays(days int) error {
	if !slices.Contains(CreditTerms, days) {
		return domain.NewValidationError("diasCredito", fmt.Sprintf("credit days must be one of %v, got %d", CreditTerms, days))
	}
	return nil
}

type Aging struct {
	DueDate       time.Time
	DaysRemaining int
	Status        entities.InvoiceStatus
}

// ConfirmedTotal sums the confirmed payment records.
func ConfirmedTotal(payments []entities.PaymentRecord) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range payments {
		if p.Status == entities.PaymentStatusConfirmado {
			sum = sum.Add(p.Amount)
		}
	}
	return sum
}

// IsFullyPaid reports whether confirmed payments cover total. An invoice that
// owes nothing is settled.
func IsFullyPaid(total decimal.Decimal, payments []entities.PaymentRecord) bool {
	if !total.IsPositive() {
		return true
	}
	return ConfirmedTotal(payments).GreaterThanOrEqual(total)
}

// ClassifyInvoice ages an invoice as of asOf. Paid overrides aging; otherwise the
// invoice is Overdue only once DaysRemaining is negative, so the due date itself is still Sent.
func ClassifyInvoice(issue time.Time, creditDays int, total decimal.Decimal, payments []entities.PaymentRecord, asOf time.Time) Aging {
	due := AddDays(issue, creditDays)
	a := Aging{
		DueDate:       due,
		DaysRemaining: DaysBetween(asOf, due),
		Status:        entities.InvoiceStatusEnviada,
	}

	switch {
	case IsFullyPaid(total, payments):
		a.Status = entities.InvoiceStatusPagada
	case a.DaysRemaining < 0:
		a.Status = entities.InvoiceStatusVencida
	}
	return a
}

// ClassifyPayment derives the status of a payment as of asOf. A pending payment
// whose expected date has passed is overdue.
func ClassifyPayment(p entities.Payment, asOf time.Time) entities.PaymentStatus {
	if p.Status == entities.PaymentStatusConfirmado {
		return p.Status
	}
	if p.Date.IsZero() {
		if p.Status == "" {
			return entities.PaymentStatusPendiente
		}
		return p.Status
	}
	if DaysBetween(asOf, p.Date) < 0 {
		return entities.PaymentStatusVencido
	}
	return entities.PaymentStatusPendiente
}
