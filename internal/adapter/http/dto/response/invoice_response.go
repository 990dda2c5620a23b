package response

import (
	"encoding/json"

	"eisen_qms/internal/domain/entities"
	"eisen_qms/internal/domain/rules"
)

type PaymentRecordResponse struct {
	PaymentID string      `json:"pagoId"`
	Date      string      `json:"fecha"`
	Amount    json.Number `json:"monto"`
	Method    string      `json:"metodo"`
	Reference string      `json:"referencia"`
	Bank      string      `json:"banco"`
	Status    string      `json:"estado"`
}

type InvoiceResponse struct {
	ID            string      `json:"id"`
	ProjectID     string      `json:"proyecto"`
	WeekID        string      `json:"semanaId"`
	WeekLabel     string      `json:"semana"`
	ClientName    string      `json:"cliente"`
	Plant         string      `json:"planta"`
	IssueDate     string      `json:"fechaEmision"`
	CreditDays    int         `json:"diasCredito"`
	DueDate       string      `json:"fechaVencimiento"`
	DaysUntilDue  int         `json:"diasVencimiento"`
	Hours         json.Number `json:"horas"`
	Rate          json.Number `json:"tarifa"`
	Subtotal      json.Number `json:"subtotal"`
	Total         json.Number `json:"total"`
	TotalLabel    string      `json:"totalTexto"`
	Balance       json.Number `json:"saldo"`
	PurchaseOrder string      `json:"oc"`
	Status        string      `json:"estado"`
	rules.Badge
	Payments []PaymentRecordResponse `json:"pagos"`
	Notes    string                  `json:"notas"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	payments := make([]PaymentRecordResponse, 0, len(inv.Payments))
	for _, p := range inv.Payments {
		payments = append(payments, PaymentRecordResponse{
			PaymentID: p.PaymentID,
			Date:      rules.FormatDate(p.Date),
			Amount:    amount(p.Amount),
			Method:    string(p.Method),
			Reference: p.Reference,
			Bank:      p.Bank,
			Status:    string(p.Status),
		})
	}
	return InvoiceResponse{
		ID:            inv.ID,
		ProjectID:     inv.ProjectID,
		WeekID:        inv.WeekID,
		WeekLabel:     inv.WeekLabel,
		ClientName:    inv.ClientName,
		Plant:         inv.Plant,
		IssueDate:     rules.FormatDate(inv.IssueDate),
		CreditDays:    inv.CreditDays,
		DueDate:       rules.FormatDate(inv.DueDate),
		DaysUntilDue:  inv.DaysUntilDue,
		Hours:         quantity(inv.Hours),
		Rate:          amount(inv.Rate),
		Subtotal:      amount(inv.Subtotal),
		Total:         amount(inv.Total),
		TotalLabel:    rules.FormatMoney(inv.Total),
		Balance:       amount(rules.InvoiceBalance(inv)),
		PurchaseOrder: inv.PurchaseOrder,
		Status:        string(inv.Status),
		Badge:         rules.BadgeFor(inv.Status),
		Payments:      payments,
		Notes:         inv.Notes,
	}
}

func FromInvoices(invs []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invs))
	for _, inv := range invs {
		out = append(out, FromInvoice(inv))
	}
	return out
}
