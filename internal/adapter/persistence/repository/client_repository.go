package repository

import (
	"context"

	"eisen_qms/internal/domain/entities"
	"eisen_qms/internal/usecase/interfaces"
)

type plantDoc struct {
	Name string `json:"nombre"`
	City string `json:"ciudad"`
}

// clientDoc mirrors a "clientes" document. Older documents carry a single
// planta/ciudad pair instead of the plantas list.
type clientDoc struct {
	ID          string     `json:"id"`
	Name        string     `json:"nombre"`
	Contact     string     `json:"contacto"`
	Email       string     `json:"email"`
	Phone       string     `json:"telefono"`
	Country     string     `json:"pais"`
	Address     string     `json:"direccion"`
	Plant       string     `json:"planta"`
	City        string     `json:"ciudad"`
	Plants      []plantDoc `json:"plantas"`
	TermsSigned flexBool   `json:"tycFirmado"`
	Status      string     `json:"estado"`
	CreatedAt   flexTime   `json:"creadoEn"`
}

type ClientRepository struct {
	col collection
}

var _ interfaces.IClientRepository = (*ClientRepository)(nil)

func NewClientRepository(store interfaces.IDocumentStore) *ClientRepository {
	return &ClientRepository{col: collection{store: store, name: entities.CollectionClientes}}
}

func (r *ClientRepository) Save(ctx context.Context, c entities.Client) error {
	return r.col.put(ctx, c.ID, toClientDoc(c))
}

func (r *ClientRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	var d clientDoc
	found, err := r.col.get(ctx, id, &d)
	if err != nil || !found {
		return entities.Client{}, err
	}
	if d.ID == "" {
		d.ID = id
	}
	return fromClientDoc(d), nil
}

func (r *ClientRepository) List(ctx context.Context) ([]entities.Client, error) {
	return listDecoded(ctx, r.col, fromClientDoc)
}

func (r *ClientRepository) UpdateContact(ctx context.Context, c entities.Client) error {
	return r.col.update(ctx, c.ID, interfaces.Document{
		"contacto":  c.Contact,
		"email":     c.Email,
		"telefono":  c.Phone,
		"direccion": c.Address,
	})
}

func (r *ClientRepository) UpdateStatus(ctx context.Context, id string, status entities.ClientStatus) error {
	return r.col.update(ctx, id, interfaces.Document{"estado": string(status)})
}

func toClientDoc(c entities.Client) clientDoc {
	d := clientDoc{
		ID:          c.ID,
		Name:        c.Name,
		Contact:     c.Contact,
		Email:       c.Email,
		Phone:       c.Phone,
		Country:     c.Country,
		Address:     c.Address,
		Plants:      make([]plantDoc, 0, len(c.Plants)),
		TermsSigned: flexBool(c.TermsSigned),
		Status:      string(c.Status),
		CreatedAt:   timeOf(c.CreatedAt),
	}
	for _, p := range c.Plants {
		d.Plants = append(d.Plants, plantDoc(p))
	}
	if len(c.Plants) > 0 {
		d.Plant, d.City = c.Plants[0].Name, c.Plants[0].City
	}
	return d
}

func fromClientDoc(d clientDoc) entities.Client {
	c := entities.Client{
		ID:          d.ID,
		Name:        d.Name,
		Contact:     d.Contact,
		Email:       d.Email,
		Phone:       d.Phone,
		Country:     d.Country,
		Address:     d.Address,
		TermsSigned: bool(d.TermsSigned),
		Status:      entities.ClientStatus(firstNonEmpty(d.Status, string(entities.ClientStatusActivo))),
		CreatedAt:   d.CreatedAt.Time,
	}
	for _, p := range d.Plants {
		c.Plants = append(c.Plants, entities.Plant(p))
	}
	if len(c.Plants) == 0 && d.Plant != "" {
		c.Plants = []entities.Plant{{Name: d.Plant, City: d.City}}
	}
	return c
}
