package rules

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"eisen_qms/internal/domain"
	"eisen_qms/internal/domain/entities"
)

var validate = validator.New()

type ContactUpdate struct {
	Contact string
	Email   string
	Phone   string
	Address string
}

func validEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}

func ValidateClient(c entities.Client) error {
	switch {
	case strings.TrimSpace(c.ID) == "":
		return domain.NewValidationError("id", "client id required")
	case strings.TrimSpace(c.Name) == "":
		return domain.NewValidationError("nombre", "legal name required")
	case c.Email != "" && !validEmail(c.Email):
		return domain.NewValidationError("email", "invalid email address")
	}
	for _, p := range c.Plants {
		if strings.TrimSpace(p.Name) == "" {
			return domain.NewValidationError("plantas", "plant name required")
		}
	}
	return nil
}

// UpdateClientContact applies a contact edit. Blank fields in upd keep the current value.
func UpdateClientContact(c entities.Client, upd ContactUpdate) (entities.Client, error) {
	if email := strings.TrimSpace(upd.Email); email != "" {
		if !validEmail(email) {
			return c, domain.NewValidationError("email", "invalid email address")
		}
		c.Email = email
	}
	if v := strings.TrimSpace(upd.Contact); v != "" {
		c.Contact = v
	}
	if v := strings.TrimSpace(upd.Phone); v != "" {
		c.Phone = v
	}
	if v := strings.TrimSpace(upd.Address); v != "" {
		c.Address = v
	}
	return c, nil
}

func SetClientStatus(c entities.Client, status entities.ClientStatus) (entities.Client, error) {
	switch status {
	case entities.ClientStatusActivo, entities.ClientStatusInactivo:
		c.Status = status
		return c, nil
	}
	return c, domain.NewValidationError("estado", "status must be Activo or Inactivo")
}
