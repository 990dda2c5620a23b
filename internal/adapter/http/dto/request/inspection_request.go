package request

import (
	"strings"

	"eisen_qms/internal/domain/entities"
)

type DefectRequest struct {
	Code        string `json:"codigo"`
	Description string `json:"descripcion" binding:"required"`
	Quantity    int    `json:"cantidad" binding:"gt=0"`
}

type InspectionCreateRequest struct {
	ID         string          `json:"id"`
	ProjectID  string          `json:"proyecto" binding:"required"`
	Week       string          `json:"semana"`
	ClientName string          `json:"cliente"`
	Plant      string          `json:"planta"`
	Date       Date            `json:"fecha"`
	Weekday    string          `json:"diaSemana"`
	Supervisor string          `json:"supervisor"`
	Shift      string          `json:"turno"`
	Total      int             `json:"total" binding:"gt=0"`
	OK         int             `json:"ok" binding:"gte=0"`
	NOK        int             `json:"nok" binding:"gte=0"`
	Defects    []DefectRequest `json:"defectos" binding:"dive"`
	Signed     bool            `json:"firmado"`
	SignedAt   string          `json:"horaFirma"`
	Notes      string          `json:"notas"`
}

func (r InspectionCreateRequest) ToEntity() entities.DailyInspection {
	defects := make([]entities.DefectRecord, 0, len(r.Defects))
	for _, d := range r.Defects {
		defects = append(defects, entities.DefectRecord{
			Code:        strings.TrimSpace(d.Code),
			Description: strings.TrimSpace(d.Description),
			Quantity:    d.Quantity,
		})
	}
	return entities.DailyInspection{
		ID:         strings.TrimSpace(r.ID),
		ProjectID:  strings.TrimSpace(r.ProjectID),
		Week:       r.Week,
		ClientName: r.ClientName,
		Plant:      r.Plant,
		Date:       r.Date.Time,
		Weekday:    r.Weekday,
		Supervisor: r.Supervisor,
		Shift:      r.Shift,
		Total:      r.Total,
		OK:         r.OK,
		NOK:        r.NOK,
		Defects:    defects,
		Signed:     r.Signed,
		SignedAt:   r.SignedAt,
		Notes:      r.Notes,
	}
}
