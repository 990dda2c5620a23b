package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoiceStatusEnviada InvoiceStatus = "Enviada"
	InvoiceStatusVencida InvoiceStatus = "Vencida"
	InvoiceStatusPagada  InvoiceStatus = "Pagada"
)

// PaymentRecord is a payment as listed on its invoice.
type PaymentRecord struct {
	PaymentID string          `json:"pagoId"`
	Date      time.Time       `json:"fecha"`
	Amount    decimal.Decimal `json:"monto"`
	Method    PaymentMethod   `json:"metodo"`
	Reference string          `json:"referencia"`
	Bank      string          `json:"banco"`
	Status    PaymentStatus   `json:"estado"`
}

// Invoice bills one project week.
//
// Sent and Overdue are derived from DueDate on every read; Paid is recorded once
// confirmed payments cover Total. DaysUntilDue is DueDate minus the as-of date.
type Invoice struct {
	ID            string          `json:"id"`
	ProjectID     string          `json:"proyecto"`
	WeekID        string          `json:"semanaId"`
	WeekLabel     string          `json:"semana"`
	ClientName    string          `json:"cliente"`
	Plant         string          `json:"planta"`
	IssueDate     time.Time       `json:"fechaEmision"`
	CreditDays    int             `json:"diasCredito"`
	DueDate       time.Time       `json:"fechaVencimiento"`
	DaysUntilDue  int             `json:"diasVencimiento"`
	Hours         decimal.Decimal `json:"horas"`
	Rate          decimal.Decimal `json:"tarifa"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Total         decimal.Decimal `json:"total"`
	PurchaseOrder string          `json:"oc"`
	Status        InvoiceStatus   `json:"estado"`
	Payments      []PaymentRecord `json:"pagos"`
	Notes         string          `json:"notas"`
}
