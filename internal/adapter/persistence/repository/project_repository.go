package repository

import (
	"context"

	"eisen_qms/internal/domain/entities"
	"eisen_qms/internal/usecase/interfaces"
)

type projectDoc struct {
	ID            string    `json:"id"`
	Name          string    `json:"nombre"`
	ClientName    string    `json:"cliente"`
	Contact       string    `json:"contacto"`
	Plant         string    `json:"planta"`
	City          string    `json:"ciudad"`
	PartNumber    string    `json:"parte"`
	LotNumber     string    `json:"lote"`
	Quantity      flexInt   `json:"cantidad"`
	LegacyQty     *flexInt  `json:"qty,omitempty"`
	Rate          flexMoney `json:"tarifa"`
	Supervisor    string    `json:"supervisor"`
	StartDate     flexDate  `json:"inicio"`
	Status        string    `json:"estado"`
	Hours         flexMoney `json:"horasTotal"`
	Invoiced      flexMoney `json:"facturado"`
	Collected     flexMoney `json:"cobrado"`
	Pending       flexMoney `json:"pendiente"`
	PurchaseOrder string    `json:"oc"`
	Notes         string    `json:"notas"`
	Description   string    `json:"descripcion"`
	CreatedAt     flexTime  `json:"creadoEn"`
}

type ProjectRepository struct {
	col collection
}

var _ interfaces.IProjectRepository = (*ProjectRepository)(nil)

func NewProjectRepository(store interfaces.IDocumentStore) *ProjectRepository {
	return &ProjectRepository{col: collection{store: store, name: entities.CollectionProyectos}}
}

func (r *ProjectRepository) Save(ctx context.Context, p entities.Project) error {
	return r.col.put(ctx, p.ID, toProjectDoc(p))
}

func (r *ProjectRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	var d projectDoc
	found, err := r.col.get(ctx, id, &d)
	if err != nil || !found {
		return entities.Project{}, err
	}
	if d.ID == "" {
		d.ID = id
	}
	return fromProjectDoc(d), nil
}

func (r *ProjectRepository) List(ctx context.Context) ([]entities.Project, error) {
	return listDecoded(ctx, r.col, fromProjectDoc)
}

func (r *ProjectRepository) UpdateStatus(ctx context.Context, id string, status entities.ProjectStatus) error {
	return r.col.update(ctx, id, interfaces.Document{"estado": string(status)})
}

func (r *ProjectRepository) UpdateTotals(ctx context.Context, p entities.Project) error {
	return r.col.update(ctx, p.ID, struct {
		Status    string    `json:"estado"`
		Hours     flexMoney `json:"horasTotal"`
		Invoiced  flexMoney `json:"facturado"`
		Collected flexMoney `json:"cobrado"`
		Pending   flexMoney `json:"pendiente"`
	}{
		Status:    string(p.Status),
		Hours:     money(p.Hours),
		Invoiced:  money(p.Invoiced),
		Collected: money(p.Collected),
		Pending:   money(p.Invoiced.Sub(p.Collected)),
	})
}

func toProjectDoc(p entities.Project) projectDoc {
	return projectDoc{
		ID:            p.ID,
		Name:          p.Name,
		ClientName:    p.ClientName,
		Contact:       p.Contact,
		Plant:         p.Plant,
		City:          p.City,
		PartNumber:    p.PartNumber,
		LotNumber:     p.LotNumber,
		Quantity:      flexInt(p.Quantity),
		Rate:          money(p.Rate),
		Supervisor:    p.Supervisor,
		StartDate:     dateOf(p.StartDate),
		Status:        string(p.Status),
		Hours:         money(p.Hours),
		Invoiced:      money(p.Invoiced),
		Collected:     money(p.Collected),
		Pending:       money(p.Invoiced.Sub(p.Collected)),
		PurchaseOrder: p.PurchaseOrder,
		Notes:         p.Notes,
		Description:   p.Description,
		CreatedAt:     timeOf(p.CreatedAt),
	}
}

func fromProjectDoc(d projectDoc) entities.Project {
	qty := int(d.Quantity)
	if qty == 0 && d.LegacyQty != nil {
		qty = int(*d.LegacyQty)
	}
	return entities.Project{
		ID:            d.ID,
		Name:          firstNonEmpty(d.Name, d.ID),
		ClientName:    d.ClientName,
		Contact:       d.Contact,
		Plant:         d.Plant,
		City:          d.City,
		PartNumber:    d.PartNumber,
		LotNumber:     d.LotNumber,
		Quantity:      qty,
		Rate:          d.Rate.Decimal,
		Supervisor:    d.Supervisor,
		StartDate:     d.StartDate.Time,
		Status:        entities.ProjectStatus(firstNonEmpty(d.Status, string(entities.ProjectStatusActivo))),
		Hours:         d.Hours.Decimal,
		Invoiced:      d.Invoiced.Decimal,
		Collected:     d.Collected.Decimal,
		Pending:       d.Invoiced.Sub(d.Collected.Decimal),
		PurchaseOrder: d.PurchaseOrder,
		Notes:         d.Notes,
		Description:   d.Description,
		CreatedAt:     d.CreatedAt.Time,
	}
}
