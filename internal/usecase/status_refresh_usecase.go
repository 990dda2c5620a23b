package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"eisen_qms/internal/domain/entities"
	"eisen_qms/internal/domain/rules"
)

// RefreshReport counts the documents whose stored derived fields were rewritten.
type RefreshReport struct {
	Weeks    int
	Invoices int
	Payments int
	Projects int
}

type IStatusRefreshUseCase interface {
	Refresh(ctx context.Context) (RefreshReport, error)
}

// StatusRefreshUseCase writes the derived statuses back to storage for readers
// that do not run the engine. Only drifted documents are written.
type StatusRefreshUseCase struct {
	repos    Repositories
	settings Settings
	log      *zap.Logger
	now      func() time.Time
}

var _ IStatusRefreshUseCase = (*StatusRefreshUseCase)(nil)

func NewStatusRefreshUseCase(repos Repositories, settings Settings, log *zap.Logger) *StatusRefreshUseCase {
	return &StatusRefreshUseCase{repos: repos, settings: settings, log: log.Named("status-refresh"), now: time.Now}
}

func (u *StatusRefreshUseCase) Refresh(ctx context.Context) (RefreshReport, error) {
	var report RefreshReport
	asOf := u.now()

	s, err := loadSnapshot(ctx, u.repos)
	if err != nil {
		return report, err
	}

	weeks := make([]entities.ProjectWeek, 0, len(s.Weeks))
	for _, stored := range s.Weeks {
		w := rules.DeriveWeekStatus(stored, u.settings.Policy)
		weeks = append(weeks, w)
		if w.Status == stored.Status && w.Score == stored.Score {
			continue
		}
		if err := u.repos.Weeks.UpdateCompliance(ctx, w.ID, w.Status, w.Score); err != nil {
			return report, err
		}
		report.Weeks++
	}

	invoices := make([]entities.Invoice, 0, len(s.Invoices))
	for _, stored := range s.Invoices {
		inv := rules.DeriveInvoiceStatus(stored, asOf)
		invoices = append(invoices, inv)
		if inv.Status == stored.Status && inv.DaysUntilDue == stored.DaysUntilDue && inv.DueDate.Equal(stored.DueDate) {
			continue
		}
		if err := u.repos.Invoices.UpdateAging(ctx, inv.ID, inv.Status, inv.DueDate, inv.DaysUntilDue); err != nil {
			return report, err
		}
		report.Invoices++
	}

	for _, p := range s.Payments {
		status := rules.ClassifyPayment(p, asOf)
		if status == p.Status {
			continue
		}
		if err := u.repos.Payments.UpdateStatus(ctx, p.ID, status); err != nil {
			return report, err
		}
		report.Payments++
	}

	for _, stored := range s.Projects {
		p := derivedProject(stored, weeks, invoices)
		if !projectDrifted(stored, p) {
			continue
		}
		if err := u.repos.Projects.UpdateTotals(ctx, p); err != nil {
			return report, err
		}
		report.Projects++
	}

	u.log.Info("status refresh finished",
		zap.Int("semanas", report.Weeks),
		zap.Int("facturas", report.Invoices),
		zap.Int("pagos", report.Payments),
		zap.Int("proyectos", report.Projects),
	)
	return report, nil
}

func projectDrifted(stored, derived entities.Project) bool {
	return stored.Status != derived.Status ||
		!stored.Hours.Equal(derived.Hours) ||
		!stored.Invoiced.Equal(derived.Invoiced) ||
		!stored.Collected.Equal(derived.Collected) ||
		!stored.Pending.Equal(derived.Pending)
}
