package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"eisen_qms/internal/domain"
	"eisen_qms/internal/domain/entities"
	"eisen_qms/internal/domain/rules"
	"eisen_qms/internal/usecase/interfaces"
)

// InspectionView is an inspection with its NOK rate and alert flag.
type InspectionView struct {
	Inspection entities.DailyInspection
	NOKRate    decimal.Decimal
	Alert      bool
}

type IInspectionUseCase interface {
	Create(ctx context.Context, i entities.DailyInspection) (InspectionView, error)
	GetByID(ctx context.Context, id string) (InspectionView, error)
	// List returns every inspection, or the ones of projectID when it is set.
	List(ctx context.Context, projectID string) ([]InspectionView, error)
}

type InspectionUseCase struct {
	inspections interfaces.IInspectionRepository
	projects    interfaces.IProjectRepository
	settings    Settings
	log         *zap.Logger
	now         func() time.Time
}

var _ IInspectionUseCase = (*InspectionUseCase)(nil)

func NewInspectionUseCase(
	inspections interfaces.IInspectionRepository,
	projects interfaces.IProjectRepository,
	settings Settings,
	log *zap.Logger,
) *InspectionUseCase {
	return &InspectionUseCase{
		inspections: inspections,
		projects:    projects,
		settings:    settings,
		log:         log.Named("inspections"),
		now:         time.Now,
	}
}

var weekdays = [...]string{"Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado"}

func (u *InspectionUseCase) Create(ctx context.Context, i entities.DailyInspection) (InspectionView, error) {
	i.ID = strings.TrimSpace(i.ID)
	if i.ID == "" {
		i.ID = newID("INS")
	}
	if err := rules.ValidateInspection(i); err != nil {
		return InspectionView{}, err
	}

	p, err := u.projects.GetByID(ctx, i.ProjectID)
	if err != nil {
		return InspectionView{}, err
	}
	if p.ID == "" {
		return InspectionView{}, domain.NewNotFoundError("proyecto", i.ProjectID)
	}
	if i.ClientName == "" {
		i.ClientName = p.ClientName
	}
	if i.Plant == "" {
		i.Plant = p.Plant
	}

	i.Date = rules.DateOf(i.Date)
	if i.Weekday == "" {
		i.Weekday = weekdays[i.Date.Weekday()]
	}
	i.CreatedAt = u.now().UTC()

	if err := ensureUnused(ctx, u.inspections.GetByID, func(e entities.DailyInspection) string { return e.ID }, i.ID, "inspection id"); err != nil {
		return InspectionView{}, err
	}
	if err := u.inspections.Save(ctx, i); err != nil {
		u.log.Error("failed saving inspection", zap.String("inspection_id", i.ID), zap.Error(err))
		return InspectionView{}, err
	}

	v := u.view(i)
	if v.Alert {
		u.log.Warn("nok rate above threshold",
			zap.String("inspection_id", i.ID),
			zap.String("proyecto", i.ProjectID),
			zap.String("tasa_nok", rules.PercentString(v.NOKRate)),
		)
	}
	return v, nil
}

func (u *InspectionUseCase) GetByID(ctx context.Context, id string) (InspectionView, error) {
	i, err := u.inspections.GetByID(ctx, id)
	if err != nil {
		return InspectionView{}, err
	}
	if i.ID == "" {
		return InspectionView{}, domain.NewNotFoundError("inspeccion", id)
	}
	return u.view(i), nil
}

func (u *InspectionUseCase) List(ctx context.Context, projectID string) ([]InspectionView, error) {
	all, err := u.inspections.List(ctx)
	if err != nil {
		return nil, err
	}
	all = sortByID(all, func(i entities.DailyInspection) string { return i.ID })

	out := make([]InspectionView, 0, len(all))
	for _, i := range all {
		if projectID == "" || i.ProjectID == projectID {
			out = append(out, u.view(i))
		}
	}
	return out, nil
}

func (u *InspectionUseCase) view(i entities.DailyInspection) InspectionView {
	rate := rules.NOKRate(i.NOK, i.Total)
	return InspectionView{
		Inspection: i,
		NOKRate:    rate,
		Alert:      rules.NOKAlert(rate, u.settings.NOKThreshold),
	}
}
