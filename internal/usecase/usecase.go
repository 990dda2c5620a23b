//go:generate mockgen -destination=../adapter/http/handlers/mocks/usecase_mock.go -package=mocks eisen_qms/internal/usecase IClientUseCase,IProjectUseCase,ITicketUseCase,IWeekUseCase,IInspectionUseCase,IInvoiceUseCase,IPaymentUseCase,IDashboardUseCase,IStatusRefreshUseCase

package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"eisen_qms/internal/config"
	"eisen_qms/internal/domain"
	"eisen_qms/internal/domain/rules"
)

// Settings are the billing rules the use cases apply on top of the engine defaults.
type Settings struct {
	Policy            rules.CompliancePolicy
	DefaultCreditDays int
	NOKThreshold      decimal.Decimal
	// TermsWaivePO opens tickets for clients with signed terms without waiting for a PO.
	TermsWaivePO bool
}

func DefaultSettings() Settings {
	return Settings{
		Policy:            rules.DefaultCompliancePolicy(),
		DefaultCreditDays: 30,
		NOKThreshold:      rules.DefaultNOKThreshold,
	}
}

func SettingsFromConfig(cfg config.BillingConfig) Settings {
	s := DefaultSettings()
	s.Policy.AcceptTermsForPO = cfg.AcceptTermsForPO
	if cfg.DefaultCreditDays > 0 {
		s.DefaultCreditDays = cfg.DefaultCreditDays
	}
	s.NOKThreshold = cfg.NOKThreshold()
	s.TermsWaivePO = cfg.TermsWaivePO
	return s
}

// newID builds a readable code such as "PAG-3F9A1C2E" for records created
// without one.
func newID(prefix string) string {
	short := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return prefix + "-" + short
}

// ensureUnused rejects a create whose id already names a stored record. Saves
// are upserts, so without it a create would overwrite recorded state.
func ensureUnused[T any](ctx context.Context, get func(context.Context, string) (T, error), storedID func(T) string, id, what string) error {
	existing, err := get(ctx, id)
	if err != nil {
		return err
	}
	if storedID(existing) != "" {
		return domain.NewValidationError("id", what+" already in use")
	}
	return nil
}

func today(now func() time.Time) time.Time {
	return rules.DateOf(now())
}

// sortByID orders items by id ascending so list endpoints are stable.
func sortByID[T any](items []T, id func(T) string) []T {
	sort.Slice(items, func(i, j int) bool { return id(items[i]) < id(items[j]) })
	return items
}
