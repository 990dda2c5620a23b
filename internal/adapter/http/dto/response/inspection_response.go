package response

import (
	"time"

	"eisen_qms/internal/domain/rules"
	"eisen_qms/internal/usecase"
)

type DefectResponse struct {
	Code        string `json:"codigo"`
	Description string `json:"descripcion"`
	Quantity    int    `json:"cantidad"`
}

type InspectionResponse struct {
	ID         string           `json:"id"`
	ProjectID  string           `json:"proyecto"`
	Week       string           `json:"semana"`
	ClientName string           `json:"cliente"`
	Plant      string           `json:"planta"`
	Date       string           `json:"fecha"`
	Weekday    string           `json:"diaSemana"`
	Supervisor string           `json:"supervisor"`
	Shift      string           `json:"turno"`
	Total      int              `json:"total"`
	OK         int              `json:"ok"`
	NOK        int              `json:"nok"`
	NOKRate    string           `json:"tasaNok"`
	Alert      bool             `json:"alerta"`
	Defects    []DefectResponse `json:"defectos"`
	Signed     bool             `json:"firmado"`
	SignedAt   string           `json:"horaFirma"`
	Notes      string           `json:"notas"`
	CreatedAt  time.Time        `json:"creadoEn"`
}

func FromInspection(v usecase.InspectionView) InspectionResponse {
	i := v.Inspection
	defects := make([]DefectResponse, 0, len(i.Defects))
	for _, d := range i.Defects {
		defects = append(defects, DefectResponse{Code: d.Code, Description: d.Description, Quantity: d.Quantity})
	}
	return InspectionResponse{
		ID:         i.ID,
		ProjectID:  i.ProjectID,
		Week:       i.Week,
		ClientName: i.ClientName,
		Plant:      i.Plant,
		Date:       rules.FormatDate(i.Date),
		Weekday:    i.Weekday,
		Supervisor: i.Supervisor,
		Shift:      i.Shift,
		Total:      i.Total,
		OK:         i.OK,
		NOK:        i.NOK,
		NOKRate:    rules.PercentString(v.NOKRate),
		Alert:      v.Alert,
		Defects:    defects,
		Signed:     i.Signed,
		SignedAt:   i.SignedAt,
		Notes:      i.Notes,
		CreatedAt:  i.CreatedAt,
	}
}

func FromInspections(vs []usecase.InspectionView) []InspectionResponse {
	out := make([]InspectionResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromInspection(v))
	}
	return out
}
