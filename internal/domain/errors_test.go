package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorTaxonomy_Is(t *testing.T) {
	cause := errors.New("connection reset")

	tests := []struct {
		name   string
		err    error
		target error
	}{
		{name: "validation", err: NewValidationError("oc", "PO number required"), target: ErrValidation},
		{name: "state", err: NewStateError("ticket", "En Proceso", "register-po"), target: ErrState},
		{name: "not found", err: NewNotFoundError("factura", "FAC-001"), target: ErrNotFound},
		{name: "persistence", err: NewPersistenceError("put", "facturas", cause), target: ErrPersistence},
		{name: "wrapped validation", err: fmt.Errorf("register po: %w", NewValidationError("oc", "x")), target: ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.target)
		})
	}
}

func TestPersistenceError_UnwrapsCause(t *testing.T) {
	cause := errors.New("throttled")
	err := NewPersistenceError("get", "tickets", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "get tickets: throttled", err.Error())
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "oc: PO number required", NewValidationError("oc", "PO number required").Error())
	assert.Equal(t, "PO number required", NewValidationError("", "PO number required").Error())
	assert.Equal(t, `ticket: cannot close from state "En Espera"`, NewStateError("ticket", "En Espera", "close").Error())
	assert.Equal(t, `semana "SEM-07-EM" not found`, NewNotFoundError("semana", "SEM-07-EM").Error())
}
