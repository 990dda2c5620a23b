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

type ITicketUseCase interface {
	Create(ctx context.Context, t entities.Ticket) (entities.Ticket, error)
	GetByID(ctx context.Context, id string) (entities.Ticket, error)
	// List returns every ticket, or only those in status when it is set.
	List(ctx context.Context, status entities.TicketStatus) ([]entities.Ticket, error)
	RegisterPO(ctx context.Context, id, po string) (entities.Ticket, error)
	Close(ctx context.Context, id string) (entities.Ticket, error)
}

type TicketUseCase struct {
	tickets  interfaces.ITicketRepository
	clients  interfaces.IClientRepository
	settings Settings
	log      *zap.Logger
	now      func() time.Time
}

var _ ITicketUseCase = (*TicketUseCase)(nil)

func NewTicketUseCase(tickets interfaces.ITicketRepository, clients interfaces.IClientRepository, settings Settings, log *zap.Logger) *TicketUseCase {
	return &TicketUseCase{
		tickets:  tickets,
		clients:  clients,
		settings: settings,
		log:      log.Named("tickets"),
		now:      time.Now,
	}
}

func (u *TicketUseCase) Create(ctx context.Context, t entities.Ticket) (entities.Ticket, error) {
	t.ID = strings.TrimSpace(t.ID)
	if t.ID == "" {
		t.ID = newID("TK")
	}
	t.PurchaseOrder = strings.TrimSpace(t.PurchaseOrder)
	if err := rules.ValidateTicket(t); err != nil {
		return entities.Ticket{}, err
	}

	if t.RequiresPO && t.PurchaseOrder == "" && u.settings.TermsWaivePO {
		signed, err := u.termsSigned(ctx, t.ClientName)
		if err != nil {
			return entities.Ticket{}, err
		}
		t.RequiresPO = !signed
	}
	t.Status = rules.InitialTicketStatus(t.PurchaseOrder, t.RequiresPO)

	now := u.now()
	if t.OpenedOn.IsZero() {
		t.OpenedOn = rules.DateOf(now)
	}
	t.CreatedAt = now.UTC()

	if err := ensureUnused(ctx, u.tickets.GetByID, func(e entities.Ticket) string { return e.ID }, t.ID, "ticket id"); err != nil {
		return entities.Ticket{}, err
	}
	if err := u.tickets.Save(ctx, t); err != nil {
		u.log.Error("failed saving ticket", zap.String("ticket_id", t.ID), zap.Error(err))
		return entities.Ticket{}, err
	}
	u.log.Info("ticket created",
		zap.String("ticket_id", t.ID),
		zap.String("estado", string(t.Status)),
		zap.Bool("oc_requerida", t.RequiresPO),
	)
	return t, nil
}

// termsSigned reports whether the named client has signed terms and conditions.
func (u *TicketUseCase) termsSigned(ctx context.Context, clientName string) (bool, error) {
	clients, err := u.clients.List(ctx)
	if err != nil {
		return false, err
	}
	for _, c := range clients {
		if strings.EqualFold(strings.TrimSpace(c.Name), strings.TrimSpace(clientName)) {
			return c.TermsSigned, nil
		}
	}
	return false, nil
}

func (u *TicketUseCase) GetByID(ctx context.Context, id string) (entities.Ticket, error) {
	t, err := u.tickets.GetByID(ctx, id)
	if err != nil {
		return entities.Ticket{}, err
	}
	if t.ID == "" {
		return entities.Ticket{}, domain.NewNotFoundError("ticket", id)
	}
	return t, nil
}

func (u *TicketUseCase) List(ctx context.Context, status entities.TicketStatus) ([]entities.Ticket, error) {
	all, err := u.tickets.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Ticket, 0, len(all))
	for _, t := range all {
		if status == "" || t.Status == status {
			out = append(out, t)
		}
	}
	return sortByID(out, func(t entities.Ticket) string { return t.ID }), nil
}

func (u *TicketUseCase) RegisterPO(ctx context.Context, id, po string) (entities.Ticket, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Ticket{}, err
	}
	t, err := rules.RegisterPO(current, po)
	if err != nil {
		return entities.Ticket{}, err
	}
	if t.Status == current.Status && t.PurchaseOrder == current.PurchaseOrder {
		return t, nil
	}
	if err := u.tickets.UpdateStatus(ctx, t.ID, t.Status, t.PurchaseOrder); err != nil {
		return entities.Ticket{}, err
	}
	u.log.Info("ticket po registered", zap.String("ticket_id", t.ID), zap.String("oc", t.PurchaseOrder))
	return t, nil
}

func (u *TicketUseCase) Close(ctx context.Context, id string) (entities.Ticket, error) {
	t, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Ticket{}, err
	}
	t, err = rules.CloseTicket(t)
	if err != nil {
		return entities.Ticket{}, err
	}
	if err := u.tickets.UpdateStatus(ctx, t.ID, t.Status, t.PurchaseOrder); err != nil {
		return entities.Ticket{}, err
	}
	u.log.Info("ticket closed", zap.String("ticket_id", t.ID))
	return t, nil
}
