package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eisen_qms/internal/domain"
	"eisen_qms/internal/domain/entities"
)

func eurospec() entities.Client {
	return entities.Client{
		ID:      "CLI-001",
		Name:    "Eurospec Mfg.",
		Contact: "John Miller",
		Email:   "jmiller@eurospec.com",
		Plants:  []entities.Plant{{Name: "Ford", City: "Dearborn"}},
		Status:  entities.ClientStatusActivo,
	}
}

func TestValidateClient(t *testing.T) {
	assert.NoError(t, ValidateClient(eurospec()))

	c := eurospec()
	c.Email = "not-an-email"
	assert.ErrorIs(t, ValidateClient(c), domain.ErrValidation)

	c = eurospec()
	c.Plants = append(c.Plants, entities.Plant{City: "Detroit"})
	assert.ErrorIs(t, ValidateClient(c), domain.ErrValidation)
}

func TestUpdateClientContact(t *testing.T) {
	out, err := UpdateClientContact(eurospec(), ContactUpdate{Contact: "Sara Ortiz", Phone: "+1 313 555 0100"})
	require.NoError(t, err)
	assert.Equal(t, "Sara Ortiz", out.Contact)
	assert.Equal(t, "+1 313 555 0100", out.Phone)
	assert.Equal(t, "jmiller@eurospec.com", out.Email)

	_, err = UpdateClientContact(eurospec(), ContactUpdate{Email: "bad@"})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "email", verr.Field)
}

func TestSetClientStatus(t *testing.T) {
	out, err := SetClientStatus(eurospec(), entities.ClientStatusInactivo)
	require.NoError(t, err)
	assert.Equal(t, entities.ClientStatusInactivo, out.Status)

	_, err = SetClientStatus(eurospec(), "Borrado")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
