// Package server provides the HTTP REST API for the jobseeker engine.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/arvind/jobseeker-engine/internal/catalog"
	"github.com/arvind/jobseeker-engine/internal/taxonomy"
	"github.com/google/uuid"
)

// ErrEmailAlreadyExists indicates the email is already registered.
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials.
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrUserNotFound indicates the user was not found.
type ErrUserNotFound struct {
	UserID uuid.UUID
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// ErrPasswordMismatch indicates the current password is incorrect.
type ErrPasswordMismatch struct{}

func (e *ErrPasswordMismatch) Error() string {
	return "current password is incorrect"
}

// ErrAuthUnavailable indicates the server runs without a user store.
type ErrAuthUnavailable struct{}

func (e *ErrAuthUnavailable) Error() string {
	return "authentication is not available: no database configured"
}

// HTTPStatus maps an error to the appropriate HTTP status code. Missing or
// unreadable reference data is a service-unavailable condition, not a server
// bug.
func HTTPStatus(err error) int {
	var taxErr *taxonomy.LoadError
	var catErr *catalog.LoadError
	if errors.As(err, &taxErr) || errors.As(err, &catErr) {
		return http.StatusServiceUnavailable
	}

	switch err.(type) {
	case *ErrEmailAlreadyExists:
		return http.StatusConflict
	case *ErrInvalidCredentials, *ErrPasswordMismatch:
		return http.StatusUnauthorized
	case *ErrUserNotFound:
		return http.StatusNotFound
	case *ErrAuthUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
