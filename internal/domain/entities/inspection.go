package entities

import "time"

type DefectRecord struct {
	Code        string `json:"codigo"`
	Description string `json:"descripcion"`
	Quantity    int    `json:"cantidad"`
}

// DailyInspection is one shift's inspection tally.
// NOK must equal Total-OK and the sum of the defect quantities.
type DailyInspection struct {
	ID         string         `json:"id"`
	ProjectID  string         `json:"proyecto"`
	Week       string         `json:"semana"`
	ClientName string         `json:"cliente"`
	Plant      string         `json:"planta"`
	Date       time.Time      `json:"fecha"`
	Weekday    string         `json:"diaSemana"`
	Supervisor string         `json:"supervisor"`
	Shift      string         `json:"turno"`
	Total      int            `json:"total"`
	OK         int            `json:"ok"`
	NOK        int            `json:"nok"`
	Defects    []DefectRecord `json:"defectos"`
	Signed     bool           `json:"firmado"`
	SignedAt   string         `json:"horaFirma"`
	Notes      string         `json:"notas"`
	CreatedAt  time.Time      `json:"creadoEn"`
}
