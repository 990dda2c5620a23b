package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPendiente  PaymentStatus = "Pendiente"
	PaymentStatusConfirmado PaymentStatus = "Confirmado"
	PaymentStatusVencido    PaymentStatus = "Vencido"
)

type PaymentMethod string

const (
	PaymentMethodWireTransfer PaymentMethod = "Wire Transfer"
	PaymentMethodACH          PaymentMethod = "ACH"
	PaymentMethodCheck        PaymentMethod = "Check"
	PaymentMethodEfectivo     PaymentMethod = "Efectivo"
)

// Payment is a collection against an invoice.
//
// Date is the expected date while the payment is pending and the received date
// once it is confirmed. Confirming a payment updates the parent invoice.
type Payment struct {
	ID         string          `json:"id"`
	InvoiceID  string          `json:"factura"`
	ClientName string          `json:"cliente"`
	Plant      string          `json:"planta"`
	ProjectID  string          `json:"proyecto"`
	Date       time.Time       `json:"fecha"`
	Amount     decimal.Decimal `json:"monto"`
	Method     PaymentMethod   `json:"metodo"`
	Bank       string          `json:"banco"`
	Reference  string          `json:"referencia"`
	Status     PaymentStatus   `json:"estado"`
	Notes      string          `json:"notas"`
}
