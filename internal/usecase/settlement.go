package usecase

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"eisen_qms/internal/domain"
	"eisen_qms/internal/domain/entities"
	"eisen_qms/internal/domain/rules"
	"eisen_qms/internal/usecase/interfaces"
)

// settlement applies a payment record to its invoice and, once the invoice is
// paid, marks the billed week as paid too.
type settlement struct {
	invoices interfaces.IInvoiceRepository
	weeks    interfaces.IWeekRepository
	log      *zap.Logger
}

func (s settlement) apply(ctx context.Context, invoiceID string, rec entities.PaymentRecord, asOf time.Time) (entities.Invoice, error) {
	inv, err := s.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, domain.NewNotFoundError("factura", invoiceID)
	}

	inv, err = rules.RecordPayment(inv, rec, asOf)
	if err != nil {
		return entities.Invoice{}, err
	}
	if err := s.invoices.UpdatePayments(ctx, inv); err != nil {
		return entities.Invoice{}, err
	}
	s.log.Info("payment applied to invoice",
		zap.String("invoice_id", inv.ID),
		zap.String("payment_id", rec.PaymentID),
		zap.String("estado", string(inv.Status)),
	)

	if inv.Status == entities.InvoiceStatusPagada && inv.WeekID != "" {
		if err := s.markWeekPaid(ctx, inv.WeekID); err != nil {
			return entities.Invoice{}, err
		}
	}
	return inv, nil
}

func (s settlement) markWeekPaid(ctx context.Context, weekID string) error {
	w, err := s.weeks.GetByID(ctx, weekID)
	if err != nil {
		return err
	}
	if w.ID == "" || w.Status == entities.WeekStatusPagada {
		return nil
	}
	paid, err := rules.MarkWeekPaid(w)
	if err != nil {
		// weeks never marked invoiced are left for review
		if errors.Is(err, domain.ErrState) {
			s.log.Warn("paid invoice points at a week that is not invoiced",
				zap.String("week_id", w.ID),
				zap.String("estado", string(w.Status)),
			)
			return nil
		}
		return err
	}
	return s.weeks.UpdateStatus(ctx, paid.ID, paid.Status, paid.InvoiceID)
}
