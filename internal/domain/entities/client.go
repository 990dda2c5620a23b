package entities

import "time"

type ClientStatus string

const (
	ClientStatusActivo   ClientStatus = "Activo"
	ClientStatusInactivo ClientStatus = "Inactivo"
)

type Plant struct {
	Name string `json:"nombre"`
	City string `json:"ciudad"`
}

// Client is a company whose plants receive inspection services.
//
// TermsSigned marks a signed terms-and-conditions agreement on file. It is the
// accepted alternate to a purchase order for tickets and weekly compliance.
type Client struct {
	ID          string       `json:"id"`
	Name        string       `json:"nombre"`
	Contact     string       `json:"contacto"`
	Email       string       `json:"email"`
	Phone       string       `json:"telefono"`
	Country     string       `json:"pais"`
	Address     string       `json:"direccion"`
	Plants      []Plant      `json:"plantas"`
	TermsSigned bool         `json:"tycFirmado"`
	Status      ClientStatus `json:"estado"`
	CreatedAt   time.Time    `json:"creadoEn"`
}
