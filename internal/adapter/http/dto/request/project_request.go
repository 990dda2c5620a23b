package request

import (
	"strings"

	"eisen_qms/internal/domain/entities"
)

type ProjectCreateRequest struct {
	ID            string `json:"id" binding:"required"`
	Name          string `json:"nombre" binding:"required"`
	ClientName    string `json:"cliente" binding:"required"`
	Contact       string `json:"contacto"`
	Plant         string `json:"planta"`
	City          string `json:"ciudad"`
	PartNumber    string `json:"parte"`
	LotNumber     string `json:"lote"`
	Quantity      int    `json:"cantidad" binding:"gte=0"`
	Rate          Money  `json:"tarifa"`
	Supervisor    string `json:"supervisor"`
	StartDate     Date   `json:"inicio"`
	PurchaseOrder string `json:"oc"`
	Notes         string `json:"notas"`
	Description   string `json:"descripcion"`
}

func (r ProjectCreateRequest) ToEntity() entities.Project {
	return entities.Project{
		ID:            strings.TrimSpace(r.ID),
		Name:          strings.TrimSpace(r.Name),
		ClientName:    strings.TrimSpace(r.ClientName),
		Contact:       r.Contact,
		Plant:         r.Plant,
		City:          r.City,
		PartNumber:    r.PartNumber,
		LotNumber:     r.LotNumber,
		Quantity:      r.Quantity,
		Rate:          r.Rate.Value,
		Supervisor:    r.Supervisor,
		StartDate:     r.StartDate.Time,
		PurchaseOrder: strings.TrimSpace(r.PurchaseOrder),
		Notes:         r.Notes,
		Description:   r.Description,
	}
}
