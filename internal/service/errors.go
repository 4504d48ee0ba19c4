package service

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// PlateConflictError reports a duplicate-plate rejection. It carries the
// normalized plate so the form can name the conflicting value inline.
type PlateConflictError struct {
	Plate string
}

func (e *PlateConflictError) Error() string {
	return fmt.Sprintf("plate %q is already registered", e.Plate)
}

func (e *PlateConflictError) Unwrap() error {
	return ErrConflict
}
