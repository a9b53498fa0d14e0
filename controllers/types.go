package controllers

import (
	"errors"
	"net/http"

	"github.com/mentor-link/api-go/services"
)

type StandardResponse struct {
	Success    bool            `json:"success"`
	Data       interface{}     `json:"data,omitempty"`
	Pagination *PaginationMeta `json:"pagination,omitempty"`
	Message    string          `json:"message,omitempty"`
}

type PaginationMeta struct {
	CurrentPage int   `json:"currentPage"`
	PageSize    int   `json:"pageSize"`
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int   `json:"totalPages"`
}

// serviceErrorStatus maps a service-layer error to its HTTP status.
func serviceErrorStatus(err error) int {
	var validationErr *services.ValidationError
	var conflictErr *services.ConflictError
	switch {
	case errors.As(err, &validationErr),
		errors.As(err, &conflictErr),
		errors.Is(err, services.ErrSelfReference):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrPermissionDenied),
		errors.Is(err, services.ErrForbiddenAction):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
