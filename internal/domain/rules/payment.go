package rules

import (
	"strings"
	"time"

	"eisen_qms/internal/domain"
	"eisen_qms/internal/domain/entities"
)

const entityPayment = "pago"

var paymentMethods = map[entities.PaymentMethod]struct{}{
	entities.PaymentMethodWireTransfer: {},
	entities.PaymentMethodACH:          {},
	entities.PaymentMethodCheck:        {},
	entities.PaymentMethodEfectivo:     {},
}

func ValidatePaymentMethod(m entities.PaymentMethod) error {
	if _, ok := paymentMethods[m]; !ok {
		return domain.NewValidationError("metodo", "unsupported payment method "+string(m))
	}
	return nil
}

// ValidatePayment checks a payment before it is first stored.
func ValidatePayment(p entities.Payment) error {
	switch {
	case strings.TrimSpace(p.ID) == "":
		return domain.NewValidationError("id", "payment id required")
	case strings.TrimSpace(p.InvoiceID) == "":
		return domain.NewValidationError("factura", "invoice required")
	case !p.Amount.IsPositive():
		return domain.NewValidationError("monto", "payment amount must be positive")
	case p.Date.IsZero():
		return domain.NewValidationError("fecha", "date required")
	}
	return ValidatePaymentMethod(p.Method)
}

type ConfirmInput struct {
	Reference string
	Bank      string
	Date      time.Time
}

// ConfirmPayment marks a pending or overdue payment as received.
func ConfirmPayment(p entities.Payment, in ConfirmInput) (entities.Payment, error) {
	ref := strings.TrimSpace(in.Reference)
	if ref == "" {
		return p, domain.NewValidationError("referencia", "payment reference required")
	}

	switch p.Status {
	case entities.PaymentStatusPendiente, entities.PaymentStatusVencido:
	default:
		return p, domain.NewStateError(entityPayment, string(p.Status), "confirm")
	}

	p.Reference = ref
	if bank := strings.TrimSpace(in.Bank); bank != "" {
		p.Bank = bank
	}
	if !in.Date.IsZero() {
		p.Date = DateOf(in.Date)
	}
	p.Status = entities.PaymentStatusConfirmado
	return p, nil
}

// PaymentRecordOf is the invoice-side view of p.
func PaymentRecordOf(p entities.Payment) entities.PaymentRecord {
	return entities.PaymentRecord{
		PaymentID: p.ID,
		Date:      p.Date,
		Amount:    p.Amount,
		Method:    p.Method,
		Reference: p.Reference,
		Bank:      p.Bank,
		Status:    p.Status,
	}
}
