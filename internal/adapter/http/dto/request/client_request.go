package request

import (
	"strings"

	"eisen_qms/internal/domain/entities"
	"eisen_qms/internal/domain/rules"
)

type PlantRequest struct {
	Name string `json:"nombre" binding:"required"`
	City string `json:"ciudad"`
}

type ClientCreateRequest struct {
	ID          string         `json:"id"`
	Name        string         `json:"nombre" binding:"required"`
	Contact     string         `json:"contacto"`
	Email       string         `json:"email" binding:"omitempty,email"`
	Phone       string         `json:"telefono"`
	Country     string         `json:"pais"`
	Address     string         `json:"direccion"`
	Plants      []PlantRequest `json:"plantas" binding:"dive"`
	TermsSigned bool           `json:"tycFirmado"`
}

func (r ClientCreateRequest) ToEntity() entities.Client {
	plants := make([]entities.Plant, 0, len(r.Plants))
	for _, p := range r.Plants {
		plants = append(plants, entities.Plant{Name: strings.TrimSpace(p.Name), City: strings.TrimSpace(p.City)})
	}
	return entities.Client{
		ID:          strings.TrimSpace(r.ID),
		Name:        strings.TrimSpace(r.Name),
		Contact:     strings.TrimSpace(r.Contact),
		Email:       strings.TrimSpace(r.Email),
		Phone:       strings.TrimSpace(r.Phone),
		Country:     strings.TrimSpace(r.Country),
		Address:     strings.TrimSpace(r.Address),
		Plants:      plants,
		TermsSigned: r.TermsSigned,
	}
}

// ClientContactRequest edits contact details; omitted fields keep their value.
type ClientContactRequest struct {
	Contact string `json:"contacto"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"telefono"`
	Address string `json:"direccion"`
}

func (r ClientContactRequest) ToUpdate() rules.ContactUpdate {
	return rules.ContactUpdate{Contact: r.Contact, Email: r.Email, Phone: r.Phone, Address: r.Address}
}

type ClientStatusRequest struct {
	Status string `json:"estado" binding:"required,oneof=Activo Inactivo"`
}
