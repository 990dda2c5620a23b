package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"eisen_qms/internal/domain/rules"
	"eisen_qms/internal/usecase/interfaces"
)

type IDashboardUseCase interface {
	Build(ctx context.Context) (rules.Dashboard, error)
}

// Repositories groups every repository the read-only reports fold over.
type Repositories struct {
	Clients     interfaces.IClientRepository
	Projects    interfaces.IProjectRepository
	Tickets     interfaces.ITicketRepository
	Weeks       interfaces.IWeekRepository
	Inspections interfaces.IInspectionRepository
	Invoices    interfaces.IInvoiceRepository
	Payments    interfaces.IPaymentRepository
}

type DashboardUseCase struct {
	repos    Repositories
	settings Settings
	log      *zap.Logger
	now      func() time.Time
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(repos Repositories, settings Settings, log *zap.Logger) *DashboardUseCase {
	return &DashboardUseCase{repos: repos, settings: settings, log: log.Named("dashboard"), now: time.Now}
}

func (u *DashboardUseCase) Build(ctx context.Context) (rules.Dashboard, error) {
	s, err := loadSnapshot(ctx, u.repos)
	if err != nil {
		u.log.Error("failed loading snapshot", zap.Error(err))
		return rules.Dashboard{}, err
	}
	return rules.BuildDashboard(s, u.now(),
		rules.WithCompliancePolicy(u.settings.Policy),
		rules.WithNOKThreshold(u.settings.NOKThreshold),
	), nil
}

// loadSnapshot reads every collection once.
func loadSnapshot(ctx context.Context, r Repositories) (rules.Snapshot, error) {
	var (
		s   rules.Snapshot
		err error
	)
	if s.Projects, err = r.Projects.List(ctx); err != nil {
		return rules.Snapshot{}, err
	}
	if s.Weeks, err = r.Weeks.List(ctx); err != nil {
		return rules.Snapshot{}, err
	}
	if s.Invoices, err = r.Invoices.List(ctx); err != nil {
		return rules.Snapshot{}, err
	}
	if s.Payments, err = r.Payments.List(ctx); err != nil {
		return rules.Snapshot{}, err
	}
	if s.Tickets, err = r.Tickets.List(ctx); err != nil {
		return rules.Snapshot{}, err
	}
	if s.Inspections, err = r.Inspections.List(ctx); err != nil {
		return rules.Snapshot{}, err
	}
	return s, nil
}
