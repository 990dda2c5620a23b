package request

import (
	"strings"

	"eisen_qms/internal/domain/entities"
	"eisen_qms/internal/domain/rules"
)

// PaymentCreateRequest records an expected payment, or a received one when
// estado is Confirmado.
type PaymentCreateRequest struct {
	ID        string `json:"id"`
	InvoiceID string `json:"factura" binding:"required"`
	Date      Date   `json:"fecha"`
	Amount    Money  `json:"monto"`
	Method    string `json:"metodo" binding:"required"`
	Bank      string `json:"banco"`
	Reference string `json:"referencia"`
	Status    string `json:"estado" binding:"omitempty,oneof=Pendiente Confirmado"`
	Notes     string `json:"notas"`
}

func (r PaymentCreateRequest) ToEntity() entities.Payment {
	return entities.Payment{
		ID:        strings.TrimSpace(r.ID),
		InvoiceID: strings.TrimSpace(r.InvoiceID),
		Date:      r.Date.Time,
		Amount:    r.Amount.Value,
		Method:    entities.PaymentMethod(strings.TrimSpace(r.Method)),
		Bank:      strings.TrimSpace(r.Bank),
		Reference: strings.TrimSpace(r.Reference),
		Status:    entities.PaymentStatus(r.Status),
		Notes:     r.Notes,
	}
}

type PaymentConfirmRequest struct {
	Reference string `json:"referencia"`
	Bank      string `json:"banco"`
	Date      Date   `json:"fecha"`
}

func (r PaymentConfirmRequest) ToInput() rules.ConfirmInput {
	return rules.ConfirmInput{Reference: r.Reference, Bank: r.Bank, Date: r.Date.Time}
}

// PaymentRecordRequest registers a payment received against an invoice.
type PaymentRecordRequest struct {
	PaymentID string `json:"pagoId"`
	Date      Date   `json:"fecha"`
	Amount    Money  `json:"monto"`
	Method    string `json:"metodo" binding:"required"`
	Reference string `json:"referencia"`
	Bank      string `json:"banco"`
}

func (r PaymentRecordRequest) ToRecord() entities.PaymentRecord {
	return entities.PaymentRecord{
		PaymentID: strings.TrimSpace(r.PaymentID),
		Date:      r.Date.Time,
		Amount:    r.Amount.Value,
		Method:    entities.PaymentMethod(strings.TrimSpace(r.Method)),
		Reference: strings.TrimSpace(r.Reference),
		Bank:      strings.TrimSpace(r.Bank),
	}
}
