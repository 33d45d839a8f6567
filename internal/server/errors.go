// Package server provides the HTTP REST API for the hiring platform.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/hireloop/hireloop/internal/db"
	"github.com/hireloop/hireloop/internal/session"
	"github.com/hireloop/hireloop/internal/types"
)

// ErrEmailAlreadyExists indicates email is already registered
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrNotEligible indicates the eligibility gate denied a candidate.
type ErrNotEligible struct {
	Code   string
	Reason string
	Status types.PlatformStatus
}

func (e *ErrNotEligible) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Reason)
}

// ErrForbidden indicates the actor's role does not permit the operation.
type ErrForbidden struct {
	Message string
}

func (e *ErrForbidden) Error() string {
	return e.Message
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		notFound  *session.ErrNotFound
		terminal  *session.ErrTerminal
		withdrawn *session.ErrWithdrawNotAllowed
	)
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &terminal), errors.As(err, &withdrawn):
		return http.StatusConflict
	case errors.Is(err, db.ErrVersionConflict):
		return http.StatusConflict
	}

	switch err.(type) {
	case *ErrEmailAlreadyExists:
		return http.StatusConflict
	case *ErrInvalidCredentials:
		return http.StatusUnauthorized
	case *ErrNotEligible, *ErrForbidden:
		return http.StatusForbidden
	case *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ErrorCode returns the machine-readable code for an error, or empty string
// when none applies.
func ErrorCode(err error) string {
	var notEligible *ErrNotEligible
	if errors.As(err, &notEligible) {
		return notEligible.Code
	}
	if errors.Is(err, db.ErrVersionConflict) {
		return "CONFLICT"
	}
	var terminal *session.ErrTerminal
	if errors.As(err, &terminal) {
		return "SESSION_CLOSED"
	}
	return ""
}
