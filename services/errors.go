package services

import (
	"errors"
	"fmt"
)

var (
	// ErrSelfReference rejects operations a user aims at themselves.
	ErrSelfReference = errors.New("you cannot send a connection request to yourself")
	// ErrNotFound means the target user or connection does not exist.
	ErrNotFound = errors.New("not found")
	// ErrPermissionDenied means the caller is not the right actor for
	// the operation (wrong user, or not involved at all).
	ErrPermissionDenied = errors.New("you do not have permission to perform this action")
	// ErrForbiddenAction means the caller is involved but the
	// connection's state does not allow the requested transition.
	ErrForbiddenAction = errors.New("you cannot perform this action")
)

// ValidationError marks malformed or unacceptable input, including
// duplicate username/email at registration.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ConflictError is returned when a connection request targets a pair
// that already has a pending or accepted connection. It carries the
// current status so the caller can explain the conflict.
type ConflictError struct {
	Status string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("a connection with this user already exists or is pending (status: %s)", e.Status)
}
