// Package repository is the persistence seam between the service layer
// and Postgres. Services depend on the interfaces declared here; the
// GORM implementations map driver errors to the package sentinels so
// callers never see gorm errors.
package repository

import (
	"errors"
)

var (
	// ErrNotFound is returned when a lookup matches no record.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert or update violates a
	// unique constraint.
	ErrDuplicate = errors.New("duplicate record")
)
