package response

import (
	"time"

	"eisen_qms/internal/domain/entities"
	"eisen_qms/internal/domain/rules"
)

type PlantResponse struct {
	Name string `json:"nombre"`
	City string `json:"ciudad"`
}

type ClientResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"nombre"`
	Contact     string          `json:"contacto"`
	Email       string          `json:"email"`
	Phone       string          `json:"telefono"`
	Country     string          `json:"pais"`
	Address     string          `json:"direccion"`
	Plants      []PlantResponse `json:"plantas"`
	TermsSigned bool            `json:"tycFirmado"`
	Status      string          `json:"estado"`
	rules.Badge
	CreatedAt time.Time `json:"creadoEn"`
}

func FromClient(c entities.Client) ClientResponse {
	plants := make([]PlantResponse, 0, len(c.Plants))
	for _, p := range c.Plants {
		plants = append(plants, PlantResponse{Name: p.Name, City: p.City})
	}
	return ClientResponse{
		ID:          c.ID,
		Name:        c.Name,
		Contact:     c.Contact,
		Email:       c.Email,
		Phone:       c.Phone,
		Country:     c.Country,
		Address:     c.Address,
		Plants:      plants,
		TermsSigned: c.TermsSigned,
		Status:      string(c.Status),
		Badge:       rules.BadgeFor(c.Status),
		CreatedAt:   c.CreatedAt,
	}
}

func FromClients(cs []entities.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromClient(c))
	}
	return out
}
