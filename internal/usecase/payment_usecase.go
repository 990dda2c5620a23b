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

type IPaymentUseCase interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	List(ctx context.Context, status entities.PaymentStatus) ([]entities.Payment, error)
	// Confirm marks an expected payment as received and applies it to its invoice.
	Confirm(ctx context.Context, id string, in rules.ConfirmInput) (entities.Payment, error)
}

type PaymentUseCase struct {
	payments interfaces.IPaymentRepository
	invoices interfaces.IInvoiceRepository
	settle   settlement
	log      *zap.Logger
	now      func() time.Time
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	payments interfaces.IPaymentRepository,
	invoices interfaces.IInvoiceRepository,
	weeks interfaces.IWeekRepository,
	log *zap.Logger,
) *PaymentUseCase {
	log = log.Named("payments")
	return &PaymentUseCase{
		payments: payments,
		invoices: invoices,
		settle:   settlement{invoices: invoices, weeks: weeks, log: log},
		log:      log,
		now:      time.Now,
	}
}

// Create records an expected payment. A payment created as Confirmado needs a
// reference and is applied to its invoice straight away.
func (u *PaymentUseCase) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	p.ID = strings.TrimSpace(p.ID)
	if p.ID == "" {
		p.ID = newID("PAG")
	}
	if err := rules.ValidatePayment(p); err != nil {
		return entities.Payment{}, err
	}
	p.Date = rules.DateOf(p.Date)

	inv, err := u.invoices.GetByID(ctx, p.InvoiceID)
	if err != nil {
		return entities.Payment{}, err
	}
	if inv.ID == "" {
		return entities.Payment{}, domain.NewNotFoundError("factura", p.InvoiceID)
	}
	if p.ClientName == "" {
		p.ClientName = inv.ClientName
	}
	if p.Plant == "" {
		p.Plant = inv.Plant
	}
	if p.ProjectID == "" {
		p.ProjectID = inv.ProjectID
	}

	confirmed := p.Status == entities.PaymentStatusConfirmado
	if confirmed && strings.TrimSpace(p.Reference) == "" {
		return entities.Payment{}, domain.NewValidationError("referencia", "payment reference required")
	}
	if !confirmed {
		p.Status = entities.PaymentStatusPendiente
		p.Status = rules.ClassifyPayment(p, u.now())
	}

	if err := ensureUnused(ctx, u.payments.GetByID, func(e entities.Payment) string { return e.ID }, p.ID, "payment id"); err != nil {
		return entities.Payment{}, err
	}
	if err := u.payments.Save(ctx, p); err != nil {
		u.log.Error("failed saving payment", zap.String("payment_id", p.ID), zap.Error(err))
		return entities.Payment{}, err
	}
	u.log.Info("payment created", zap.String("payment_id", p.ID), zap.String("estado", string(p.Status)))

	if confirmed {
		if _, err := u.settle.apply(ctx, p.InvoiceID, rules.PaymentRecordOf(p), u.now()); err != nil {
			return entities.Payment{}, err
		}
	}
	return p, nil
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	p, err := u.payments.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, domain.NewNotFoundError("pago", id)
	}
	p.Status = rules.ClassifyPayment(p, u.now())
	return p, nil
}

func (u *PaymentUseCase) List(ctx context.Context, status entities.PaymentStatus) ([]entities.Payment, error) {
	all, err := u.payments.List(ctx)
	if err != nil {
		return nil, err
	}
	asOf := u.now()
	out := make([]entities.Payment, 0, len(all))
	for _, p := range all {
		p.Status = rules.ClassifyPayment(p, asOf)
		if status == "" || p.Status == status {
			out = append(out, p)
		}
	}
	return sortByID(out, func(p entities.Payment) string { return p.ID }), nil
}

func (u *PaymentUseCase) Confirm(ctx context.Context, id string, in rules.ConfirmInput) (entities.Payment, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	p, err = rules.ConfirmPayment(p, in)
	if err != nil {
		return entities.Payment{}, err
	}
	if err := u.payments.UpdateConfirmation(ctx, p); err != nil {
		return entities.Payment{}, err
	}
	u.log.Info("payment confirmed", zap.String("payment_id", p.ID), zap.String("referencia", p.Reference))

	if _, err := u.settle.apply(ctx, p.InvoiceID, rules.PaymentRecordOf(p), u.now()); err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}
