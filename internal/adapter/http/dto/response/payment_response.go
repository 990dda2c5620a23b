package response

import (
	"encoding/json"

	"eisen_qms/internal/domain/entities"
	"eisen_qms/internal/domain/rules"
)

type PaymentResponse struct {
	ID          string      `json:"id"`
	InvoiceID   string      `json:"factura"`
	ClientName  string      `json:"cliente"`
	Plant       string      `json:"planta"`
	ProjectID   string      `json:"proyecto"`
	Date        string      `json:"fecha"`
	Amount      json.Number `json:"monto"`
	AmountLabel string      `json:"montoTexto"`
	Method      string      `json:"metodo"`
	Bank        string      `json:"banco"`
	Reference   string      `json:"referencia"`
	Status      string      `json:"estado"`
	rules.Badge
	Notes string `json:"notas"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:          p.ID,
		InvoiceID:   p.InvoiceID,
		ClientName:  p.ClientName,
		Plant:       p.Plant,
		ProjectID:   p.ProjectID,
		Date:        rules.FormatDate(p.Date),
		Amount:      amount(p.Amount),
		AmountLabel: rules.FormatMoney(p.Amount),
		Method:      string(p.Method),
		Bank:        p.Bank,
		Reference:   p.Reference,
		Status:      string(p.Status),
		Badge:       rules.BadgeFor(p.Status),
		Notes:       p.Notes,
	}
}

func FromPayments(ps []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPayment(p))
	}
	return out
}
