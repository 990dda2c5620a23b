package domain

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is checks across layers.
var (
	ErrValidation  = errors.New("validation failed")
	ErrState       = errors.New("illegal state transition")
	ErrNotFound    = errors.New("not found")
	ErrPersistence = errors.New("persistence failure")
)

// ValidationError reports malformed or missing input to a transition.
// It is safe to surface to the caller for correction.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// StateError reports a transition attempted from an illegal source state.
type StateError struct {
	Entity    string
	Current   string
	Attempted string
}

func NewStateError(entity, current, attempted string) *StateError {
	return &StateError{Entity: entity, Current: current, Attempted: attempted}
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s: cannot %s from state %q", e.Entity, e.Attempted, e.Current)
}

func (e *StateError) Is(target error) bool { return target == ErrState }

// NotFoundError reports a referenced entity or document that does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func NewNotFoundError(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// PersistenceError wraps an opaque failure from the storage collaborator.
// It is never retried by the engine.
type PersistenceError struct {
	Op         string
	Collection string
	Err        error
}

func NewPersistenceError(op, collection string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Collection: collection, Err: err}
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func (e *PersistenceError) Is(target error) bool { return target == ErrPersistence }
