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

type IProjectUseCase interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	List(ctx context.Context) ([]entities.Project, error)
	Close(ctx context.Context, id string) (entities.Project, error)
}

// ProjectUseCase serves projects with status and totals derived from their
// weeks and invoices.
type ProjectUseCase struct {
	projects interfaces.IProjectRepository
	weeks    interfaces.IWeekRepository
	invoices interfaces.IInvoiceRepository
	settings Settings
	log      *zap.Logger
	now      func() time.Time
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(
	projects interfaces.IProjectRepository,
	weeks interfaces.IWeekRepository,
	invoices interfaces.IInvoiceRepository,
	settings Settings,
	log *zap.Logger,
) *ProjectUseCase {
	return &ProjectUseCase{
		projects: projects,
		weeks:    weeks,
		invoices: invoices,
		settings: settings,
		log:      log.Named("projects"),
		now:      time.Now,
	}
}

func (u *ProjectUseCase) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	p.ID = strings.TrimSpace(p.ID)
	if err := rules.ValidateProject(p); err != nil {
		return entities.Project{}, err
	}
	existing, err := u.projects.GetByID(ctx, p.ID)
	if err != nil {
		return entities.Project{}, err
	}
	if existing.ID != "" {
		return entities.Project{}, domain.NewValidationError("id", "project code already in use")
	}

	p.Status = entities.ProjectStatusActivo
	p = rules.ApplyProjectTotals(p, rules.ProjectTotals{})
	p.CreatedAt = u.now().UTC()
	if err := u.projects.Save(ctx, p); err != nil {
		u.log.Error("failed saving project", zap.String("project_id", p.ID), zap.Error(err))
		return entities.Project{}, err
	}
	u.log.Info("project created", zap.String("project_id", p.ID))
	return p, nil
}

func (u *ProjectUseCase) GetByID(ctx context.Context, id string) (entities.Project, error) {
	p, err := u.projects.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, domain.NewNotFoundError("proyecto", id)
	}
	weeks, invoices, err := u.load(ctx)
	if err != nil {
		return entities.Project{}, err
	}
	return derivedProject(p, weeks, invoices), nil
}

func (u *ProjectUseCase) List(ctx context.Context) ([]entities.Project, error) {
	projects, err := u.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	weeks, invoices, err := u.load(ctx)
	if err != nil {
		return nil, err
	}
	for i, p := range projects {
		projects[i] = derivedProject(p, weeks, invoices)
	}
	return sortByID(projects, func(p entities.Project) string { return p.ID }), nil
}

func (u *ProjectUseCase) Close(ctx context.Context, id string) (entities.Project, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	p, err = rules.CloseProject(p)
	if err != nil {
		return entities.Project{}, err
	}
	if err := u.projects.UpdateStatus(ctx, p.ID, p.Status); err != nil {
		return entities.Project{}, err
	}
	u.log.Info("project closed", zap.String("project_id", p.ID))
	return p, nil
}

// load reads weeks and invoices with their statuses derived as of today.
func (u *ProjectUseCase) load(ctx context.Context) ([]entities.ProjectWeek, []entities.Invoice, error) {
	weeks, err := u.weeks.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	invoices, err := u.invoices.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	asOf := u.now()
	for i, w := range weeks {
		weeks[i] = rules.DeriveWeekStatus(w, u.settings.Policy)
	}
	for i, inv := range invoices {
		invoices[i] = rules.DeriveInvoiceStatus(inv, asOf)
	}
	return weeks, invoices, nil
}

func derivedProject(p entities.Project, weeks []entities.ProjectWeek, invoices []entities.Invoice) entities.Project {
	p = rules.DeriveProjectStatus(p, weeks)
	return rules.ApplyProjectTotals(p, rules.ComputeProjectTotals(p.ID, weeks, invoices))
}
