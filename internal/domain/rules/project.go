package rules

import (
	"strings"

	"github.com/shopspring/decimal"

	"eisen_qms/internal/domain"
	"eisen_qms/internal/domain/entities"
)

const entityProject = "proyecto"

type ProjectTotals struct {
	Hours     decimal.Decimal
	Invoiced  decimal.Decimal
	Collected decimal.Decimal
	Pending   decimal.Decimal
}

// ComputeProjectTotals folds the project's weeks and invoices. Collected counts
// confirmed payments only, and Pending is Invoiced minus Collected.
func ComputeProjectTotals(projectID string, weeks []entities.ProjectWeek, invoices []entities.Invoice) ProjectTotals {
	t := ProjectTotals{Hours: decimal.Zero, Invoiced: decimal.Zero, Collected: decimal.Zero}
	for _, w := range weeks {
		if w.ProjectID == projectID {
			t.Hours = t.Hours.Add(w.Hours)
		}
	}
	for _, inv := range invoices {
		if inv.ProjectID != projectID {
			continue
		}
		t.Invoiced = t.Invoiced.Add(inv.Total)
		t.Collected = t.Collected.Add(ConfirmedTotal(inv.Payments))
	}
	t.Pending = t.Invoiced.Sub(t.Collected)
	return t
}

// DeriveProjectStatus blocks a project while any of its weeks is blocked.
// Weeks are expected to carry derived status already. Closed projects stay closed.
func DeriveProjectStatus(p entities.Project, weeks []entities.ProjectWeek) entities.Project {
	if p.Status == entities.ProjectStatusCerrado {
		return p
	}
	p.Status = entities.ProjectStatusActivo
	for _, w := range weeks {
		if w.ProjectID == p.ID && w.Status == entities.WeekStatusBloqueada {
			p.Status = entities.ProjectStatusBloqueado
			break
		}
	}
	return p
}

// ApplyProjectTotals replaces the running totals on p.
func ApplyProjectTotals(p entities.Project, t ProjectTotals) entities.Project {
	p.Hours = t.Hours
	p.Invoiced = t.Invoiced
	p.Collected = t.Collected
	p.Pending = t.Pending
	return p
}

func CloseProject(p entities.Project) (entities.Project, error) {
	switch p.Status {
	case entities.ProjectStatusActivo, entities.ProjectStatusBloqueado:
		p.Status = entities.ProjectStatusCerrado
		return p, nil
	}
	return p, domain.NewStateError(entityProject, string(p.Status), "close")
}

func ValidateProject(p entities.Project) error {
	switch {
	case strings.TrimSpace(p.ID) == "":
		return domain.NewValidationError("id", "project code required")
	case strings.TrimSpace(p.Name) == "":
		return domain.NewValidationError("nombre", "project name required")
	case strings.TrimSpace(p.ClientName) == "":
		return domain.NewValidationError("cliente", "client required")
	case p.Quantity < 0:
		return domain.NewValidationError("cantidad", "quantity cannot be negative")
	case p.Rate.IsNegative():
		return domain.NewValidationError("tarifa", "rate cannot be negative")
	}
	return nil
}
