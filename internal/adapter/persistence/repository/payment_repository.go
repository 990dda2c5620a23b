package repository

import (
	"context"

	"eisen_qms/internal/domain/entities"
	"eisen_qms/internal/domain/rules"
	"eisen_qms/internal/usecase/interfaces"
)

type paymentDoc struct {
	ID           string    `json:"id"`
	InvoiceID    string    `json:"factura"`
	ClientName   string    `json:"cliente"`
	Plant        string    `json:"planta"`
	ProjectID    string    `json:"proyecto"`
	Date         flexDate  `json:"fecha"`
	ExpectedDate *flexDate `json:"fechaEsperada,omitempty"`
	Amount       flexMoney `json:"monto"`
	Method       string    `json:"metodo"`
	Bank         string    `json:"banco"`
	Reference    string    `json:"referencia"`
	Status       string    `json:"estado"`
	Notes        string    `json:"notas"`
}

type PaymentRepository struct {
	col collection
}

var _ interfaces.IPaymentRepository = (*PaymentRepository)(nil)

func NewPaymentRepository(store interfaces.IDocumentStore) *PaymentRepository {
	return &PaymentRepository{col: collection{store: store, name: entities.CollectionPagos}}
}

func (r *PaymentRepository) Save(ctx context.Context, p entities.Payment) error {
	return r.col.put(ctx, p.ID, toPaymentDoc(p))
}

func (r *PaymentRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	var d paymentDoc
	found, err := r.col.get(ctx, id, &d)
	if err != nil || !found {
		return entities.Payment{}, err
	}
	if d.ID == "" {
		d.ID = id
	}
	return fromPaymentDoc(d), nil
}

func (r *PaymentRepository) List(ctx context.Context) ([]entities.Payment, error) {
	return listDecoded(ctx, r.col, fromPaymentDoc)
}

func (r *PaymentRepository) UpdateConfirmation(ctx context.Context, p entities.Payment) error {
	return r.col.update(ctx, p.ID, interfaces.Document{
		"estado":     string(p.Status),
		"referencia": p.Reference,
		"banco":      p.Bank,
		"fecha":      rules.FormatDate(p.Date),
	})
}

func (r *PaymentRepository) UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus) error {
	return r.col.update(ctx, id, interfaces.Document{"estado": string(status)})
}

func toPaymentDoc(p entities.Payment) paymentDoc {
	return paymentDoc{
		ID:         p.ID,
		InvoiceID:  p.InvoiceID,
		ClientName: p.ClientName,
		Plant:      p.Plant,
		ProjectID:  p.ProjectID,
		Date:       dateOf(p.Date),
		Amount:     money(p.Amount),
		Method:     string(p.Method),
		Bank:       p.Bank,
		Reference:  p.Reference,
		Status:     string(p.Status),
		Notes:      p.Notes,
	}
}

func fromPaymentDoc(d paymentDoc) entities.Payment {
	p := entities.Payment{
		ID:         d.ID,
		InvoiceID:  d.InvoiceID,
		ClientName: d.ClientName,
		Plant:      d.Plant,
		ProjectID:  d.ProjectID,
		Date:       d.Date.Time,
		Amount:     d.Amount.Decimal,
		Method:     entities.PaymentMethod(d.Method),
		Bank:       d.Bank,
		Reference:  d.Reference,
		Status:     entities.PaymentStatus(firstNonEmpty(d.Status, string(entities.PaymentStatusPendiente))),
		Notes:      d.Notes,
	}
	if p.Date.IsZero() && d.ExpectedDate != nil {
		p.Date = d.ExpectedDate.Time
	}
	return p
}
