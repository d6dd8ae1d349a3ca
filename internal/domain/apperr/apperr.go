// Package apperr defines the error taxonomy shared by usecases and handlers.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	Validation Kind = iota
	Unauthorized
	Forbidden
	NotFound
	Storage
	Persistence
)

// Error carries a client-safe message and optionally the underlying cause.
// The cause is only surfaced to clients outside of production.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Status maps an error kind to its HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case Validation:
		return http.StatusBadRequest
	case Unauthorized:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Client maps any error to a status code and a message safe to return.
// Unrecognized errors collapse to a 500 with a generic message. When dev is
// set, server-side errors keep their underlying detail.
func Client(err error, dev bool) (int, string) {
	var appErr *Error
	if !errors.As(err, &appErr) {
		if dev {
			return http.StatusInternalServerError, err.Error()
		}

		return http.StatusInternalServerError, "Internal server error"
	}

	status := appErr.Status()
	if status == http.StatusInternalServerError && !dev {
		return status, appErr.Message
	}

	if dev && appErr.Err != nil {
		return status, appErr.Error()
	}

	return status, appErr.Message
}
