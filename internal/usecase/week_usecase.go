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

// WeekCompliance pairs a week with its evaluated document set.
type WeekCompliance struct {
	Week   entities.ProjectWeek
	Result rules.ComplianceResult
}

type IWeekUseCase interface {
	Create(ctx context.Context, w entities.ProjectWeek) (entities.ProjectWeek, error)
	GetByID(ctx context.Context, id string) (entities.ProjectWeek, error)
	List(ctx context.Context, status entities.WeekStatus) ([]entities.ProjectWeek, error)
	AttachDocument(ctx context.Context, id string, kind entities.DocumentKind, slot entities.DocumentSlot) (entities.ProjectWeek, error)
	CreateInvoice(ctx context.Context, id string, draft rules.InvoiceDraft) (entities.Invoice, error)
	Compliance(ctx context.Context, id string) (WeekCompliance, error)
	// ListCompliance returns every week's compliance, or only the Completo or Incompleto ones.
	ListCompliance(ctx context.Context, status rules.ComplianceStatus) ([]WeekCompliance, error)
}

type WeekUseCase struct {
	weeks    interfaces.IWeekRepository
	invoices interfaces.IInvoiceRepository
	settings Settings
	log      *zap.Logger
	now      func() time.Time
}

var _ IWeekUseCase = (*WeekUseCase)(nil)

func NewWeekUseCase(weeks interfaces.IWeekRepository, invoices interfaces.IInvoiceRepository, settings Settings, log *zap.Logger) *WeekUseCase {
	return &WeekUseCase{
		weeks:    weeks,
		invoices: invoices,
		settings: settings,
		log:      log.Named("weeks"),
		now:      time.Now,
	}
}

// Create records a new week. Its status always starts as derived from its documents.
func (u *WeekUseCase) Create(ctx context.Context, w entities.ProjectWeek) (entities.ProjectWeek, error) {
	w.ID = strings.TrimSpace(w.ID)
	if w.ID == "" {
		w.ID = newID("SEM")
	}
	if err := rules.ValidateWeek(w); err != nil {
		return entities.ProjectWeek{}, err
	}
	w.Status = ""
	w.InvoiceID = ""
	w = rules.DeriveWeekStatus(w, u.settings.Policy)

	if err := ensureUnused(ctx, u.weeks.GetByID, func(e entities.ProjectWeek) string { return e.ID }, w.ID, "week id"); err != nil {
		return entities.ProjectWeek{}, err
	}
	if err := u.weeks.Save(ctx, w); err != nil {
		u.log.Error("failed saving week", zap.String("week_id", w.ID), zap.Error(err))
		return entities.ProjectWeek{}, err
	}
	u.log.Info("week created", zap.String("week_id", w.ID), zap.String("estado", string(w.Status)))
	return w, nil
}

func (u *WeekUseCase) GetByID(ctx context.Context, id string) (entities.ProjectWeek, error) {
	w, err := u.weeks.GetByID(ctx, id)
	if err != nil {
		return entities.ProjectWeek{}, err
	}
	if w.ID == "" {
		return entities.ProjectWeek{}, domain.NewNotFoundError("semana", id)
	}
	return rules.DeriveWeekStatus(w, u.settings.Policy), nil
}

func (u *WeekUseCase) List(ctx context.Context, status entities.WeekStatus) ([]entities.ProjectWeek, error) {
	all, err := u.weeks.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.ProjectWeek, 0, len(all))
	for _, w := range all {
		w = rules.DeriveWeekStatus(w, u.settings.Policy)
		if status == "" || w.Status == status {
			out = append(out, w)
		}
	}
	return sortByID(out, func(w entities.ProjectWeek) string { return w.ID }), nil
}

func (u *WeekUseCase) AttachDocument(ctx context.Context, id string, kind entities.DocumentKind, slot entities.DocumentSlot) (entities.ProjectWeek, error) {
	w, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ProjectWeek{}, err
	}
	if slot.Present && slot.Date.IsZero() {
		slot.Date = today(u.now)
	}
	w, err = rules.AttachDocument(w, kind, slot, u.settings.Policy)
	if err != nil {
		return entities.ProjectWeek{}, err
	}
	if err := u.weeks.Save(ctx, w); err != nil {
		return entities.ProjectWeek{}, err
	}
	u.log.Info("week document attached",
		zap.String("week_id", w.ID),
		zap.String("documento", string(kind)),
		zap.Bool("ok", slot.Present),
		zap.String("estado", string(w.Status)),
	)
	return w, nil
}

// CreateInvoice bills a ready week. Blank draft fields default to a generated
// number, today's date and the configured credit term.
func (u *WeekUseCase) CreateInvoice(ctx context.Context, id string, draft rules.InvoiceDraft) (entities.Invoice, error) {
	w, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}

	draft.ID = strings.TrimSpace(draft.ID)
	if draft.ID == "" {
		draft.ID = newID("FAC")
	}
	if draft.IssueDate.IsZero() {
		draft.IssueDate = today(u.now)
	}
	if draft.CreditDays == 0 {
		draft.CreditDays = u.settings.DefaultCreditDays
	}

	existing, err := u.invoices.GetByID(ctx, draft.ID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if existing.ID != "" {
		return entities.Invoice{}, domain.NewValidationError("id", "invoice number already in use")
	}

	w, inv, err := rules.CreateInvoice(w, draft, u.settings.Policy, u.now())
	if err != nil {
		return entities.Invoice{}, err
	}
	if err := u.invoices.Save(ctx, inv); err != nil {
		u.log.Error("failed saving invoice", zap.String("invoice_id", inv.ID), zap.Error(err))
		return entities.Invoice{}, err
	}
	if err := u.weeks.UpdateStatus(ctx, w.ID, w.Status, w.InvoiceID); err != nil {
		u.log.Error("invoice saved but week not marked invoiced",
			zap.String("invoice_id", inv.ID),
			zap.String("week_id", w.ID),
			zap.Error(err),
		)
		return entities.Invoice{}, err
	}
	u.log.Info("invoice created",
		zap.String("invoice_id", inv.ID),
		zap.String("week_id", w.ID),
		zap.String("total", inv.Total.StringFixed(2)),
	)
	return inv, nil
}

func (u *WeekUseCase) Compliance(ctx context.Context, id string) (WeekCompliance, error) {
	w, err := u.GetByID(ctx, id)
	if err != nil {
		return WeekCompliance{}, err
	}
	return u.compliance(w), nil
}

func (u *WeekUseCase) ListCompliance(ctx context.Context, status rules.ComplianceStatus) ([]WeekCompliance, error) {
	weeks, err := u.List(ctx, "")
	if err != nil {
		return nil, err
	}
	out := make([]WeekCompliance, 0, len(weeks))
	for _, w := range weeks {
		c := u.compliance(w)
		if status == "" || c.Result.Status() == status {
			out = append(out, c)
		}
	}
	return out, nil
}

func (u *WeekUseCase) compliance(w entities.ProjectWeek) WeekCompliance {
	return WeekCompliance{Week: w, Result: rules.Evaluate(w.Documents, w.TermsSigned, u.settings.Policy)}
}
