package usecase

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"eisen_qms/internal/domain"
	"eisen_qms/internal/domain/entities"
	"eisen_qms/internal/domain/rules"
	"eisen_qms/internal/usecase/interfaces"
)

type IInvoiceUseCase interface {
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	List(ctx context.Context, status entities.InvoiceStatus) ([]entities.Invoice, error)
	// RecordPayment registers a payment received against the invoice. The
	// payment is stored in pagos as well, so both views agree.
	RecordPayment(ctx context.Context, id string, rec entities.PaymentRecord) (entities.Invoice, error)
}

type InvoiceUseCase struct {
	invoices interfaces.IInvoiceRepository
	payments interfaces.IPaymentRepository
	settle   settlement
	log      *zap.Logger
	now      func() time.Time
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(
	invoices interfaces.IInvoiceRepository,
	payments interfaces.IPaymentRepository,
	weeks interfaces.IWeekRepository,
	log *zap.Logger,
) *InvoiceUseCase {
	log = log.Named("invoices")
	return &InvoiceUseCase{
		invoices: invoices,
		payments: payments,
		settle:   settlement{invoices: invoices, weeks: weeks, log: log},
		log:      log,
		now:      time.Now,
	}
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	inv, err := u.invoices.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, domain.NewNotFoundError("factura", id)
	}
	return rules.DeriveInvoiceStatus(inv, u.now()), nil
}

func (u *InvoiceUseCase) List(ctx context.Context, status entities.InvoiceStatus) ([]entities.Invoice, error) {
	all, err := u.invoices.List(ctx)
	if err != nil {
		return nil, err
	}
	asOf := u.now()
	out := make([]entities.Invoice, 0, len(all))
	for _, inv := range all {
		inv = rules.DeriveInvoiceStatus(inv, asOf)
		if status == "" || inv.Status == status {
			out = append(out, inv)
		}
	}
	return sortByID(out, func(inv entities.Invoice) string { return inv.ID }), nil
}

func (u *InvoiceUseCase) RecordPayment(ctx context.Context, id string, rec entities.PaymentRecord) (entities.Invoice, error) {
	inv, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}

	rec.PaymentID = strings.TrimSpace(rec.PaymentID)
	if rec.PaymentID == "" {
		rec.PaymentID = newID("PAG")
	}
	if rec.Status == "" {
		rec.Status = entities.PaymentStatusConfirmado
	}
	if rec.Date.IsZero() {
		rec.Date = today(u.now)
	}
	if err := rules.ValidatePaymentMethod(rec.Method); err != nil {
		return entities.Invoice{}, err
	}
	if !rec.Amount.IsPositive() {
		return entities.Invoice{}, domain.NewValidationError("monto", "payment amount must be positive")
	}

	p := entities.Payment{
		ID:         rec.PaymentID,
		InvoiceID:  inv.ID,
		ClientName: inv.ClientName,
		Plant:      inv.Plant,
		ProjectID:  inv.ProjectID,
		Date:       rules.DateOf(rec.Date),
		Amount:     rec.Amount,
		Method:     rec.Method,
		Bank:       rec.Bank,
		Reference:  rec.Reference,
		Status:     rec.Status,
	}
	if err := u.payments.Save(ctx, p); err != nil {
		return entities.Invoice{}, err
	}
	return u.settle.apply(ctx, inv.ID, rec, u.now())
}
