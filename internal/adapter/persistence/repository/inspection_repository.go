package repository

import (
	"context"

	"eisen_qms/internal/domain/entities"
	"eisen_qms/internal/domain/rules"
	"eisen_qms/internal/usecase/interfaces"
)

type defectDoc struct {
	Code        string  `json:"codigo"`
	Description string  `json:"descripcion"`
	LegacyType  string  `json:"tipo,omitempty"`
	Quantity    flexInt `json:"cantidad"`
}

type inspectionDoc struct {
	ID           string      `json:"id"`
	ProjectID    string      `json:"proyecto"`
	Week         string      `json:"semana"`
	ClientName   string      `json:"cliente"`
	Plant        string      `json:"planta"`
	Date         flexDate    `json:"fecha"`
	Weekday      string      `json:"diaSemana"`
	Supervisor   string      `json:"supervisor"`
	Shift        string      `json:"turno"`
	Total        flexInt     `json:"total"`
	OK           flexInt     `json:"ok"`
	NOK          flexInt     `json:"nok"`
	NOKRate      string      `json:"tasaNok"`
	Defects      []defectDoc `json:"defectos"`
	Signed       *flexBool   `json:"firmado,omitempty"`
	LegacySigned *flexBool   `json:"firma,omitempty"`
	SignedAt     string      `json:"horaFirma"`
	Notes        string      `json:"notas"`
	CreatedAt    flexTime    `json:"creadoEn"`
}

type InspectionRepository struct {
	col collection
}

var _ interfaces.IInspectionRepository = (*InspectionRepository)(nil)

func NewInspectionRepository(store interfaces.IDocumentStore) *InspectionRepository {
	return &InspectionRepository{col: collection{store: store, name: entities.CollectionInspecciones}}
}

func (r *InspectionRepository) Save(ctx context.Context, i entities.DailyInspection) error {
	return r.col.put(ctx, i.ID, toInspectionDoc(i))
}

func (r *InspectionRepository) GetByID(ctx context.Context, id string) (entities.DailyInspection, error) {
	var d inspectionDoc
	found, err := r.col.get(ctx, id, &d)
	if err != nil || !found {
		return entities.DailyInspection{}, err
	}
	if d.ID == "" {
		d.ID = id
	}
	return fromInspectionDoc(d), nil
}

func (r *InspectionRepository) List(ctx context.Context) ([]entities.DailyInspection, error) {
	return listDecoded(ctx, r.col, fromInspectionDoc)
}

func toInspectionDoc(i entities.DailyInspection) inspectionDoc {
	signed := flexBool(i.Signed)
	d := inspectionDoc{
		ID:         i.ID,
		ProjectID:  i.ProjectID,
		Week:       i.Week,
		ClientName: i.ClientName,
		Plant:      i.Plant,
		Date:       dateOf(i.Date),
		Weekday:    i.Weekday,
		Supervisor: i.Supervisor,
		Shift:      i.Shift,
		Total:      flexInt(i.Total),
		OK:         flexInt(i.OK),
		NOK:        flexInt(i.NOK),
		NOKRate:    rules.PercentString(rules.NOKRate(i.NOK, i.Total)),
		Defects:    make([]defectDoc, 0, len(i.Defects)),
		Signed:     &signed,
		SignedAt:   i.SignedAt,
		Notes:      i.Notes,
		CreatedAt:  timeOf(i.CreatedAt),
	}
	for _, def := range i.Defects {
		d.Defects = append(d.Defects, defectDoc{Code: def.Code, Description: def.Description, Quantity: flexInt(def.Quantity)})
	}
	return d
}

func fromInspectionDoc(d inspectionDoc) entities.DailyInspection {
	i := entities.DailyInspection{
		ID:         d.ID,
		ProjectID:  d.ProjectID,
		Week:       d.Week,
		ClientName: d.ClientName,
		Plant:      d.Plant,
		Date:       d.Date.Time,
		Weekday:    d.Weekday,
		Supervisor: d.Supervisor,
		Shift:      d.Shift,
		Total:      int(d.Total),
		OK:         int(d.OK),
		NOK:        int(d.NOK),
		SignedAt:   d.SignedAt,
		Notes:      d.Notes,
		CreatedAt:  d.CreatedAt.Time,
	}
	switch {
	case d.Signed != nil:
		i.Signed = bool(*d.Signed)
	case d.LegacySigned != nil:
		i.Signed = bool(*d.LegacySigned)
	}
	for _, def := range d.Defects {
		i.Defects = append(i.Defects, entities.DefectRecord{
			Code:        def.Code,
			Description: firstNonEmpty(def.Description, def.LegacyType),
			Quantity:    int(def.Quantity),
		})
	}
	return i
}
