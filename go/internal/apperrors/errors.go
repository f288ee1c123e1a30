// Package apperrors classifies failures so transports can tell a bad request from a
// missing resource, a lost race, or a permission problem.
package apperrors

import (
	"errors"
	"fmt"

	"connectrpc.com/connect"
	"github.com/rs/zerolog/log"
)

var (
	ErrValidation      = errors.New("validation failed")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrForbidden       = errors.New("forbidden")
	ErrUnauthenticated = errors.New("unauthenticated")
)

// Error carries a user-facing message and the kind it belongs to.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Validation reports malformed input or a business rule violation.
func Validation(format string, args ...any) error {
	return newError(ErrValidation, format, args...)
}

// NotFound reports an unknown reference.
func NotFound(format string, args ...any) error {
	return newError(ErrNotFound, format, args...)
}

// Conflict reports a concurrent write that lost; the caller may re-read and retry.
func Conflict(format string, args ...any) error {
	return newError(ErrConflict, format, args...)
}

// Forbidden reports a resource that exists but the caller may not touch.
func Forbidden(format string, args ...any) error {
	return newError(ErrForbidden, format, args...)
}

// Unauthenticated reports a caller that could not be identified.
func Unauthenticated(format string, args ...any) error {
	return newError(ErrUnauthenticated, format, args...)
}

// Message returns the user-facing reason for err: the innermost *Error message if
// there is one, otherwise err's own text.
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

// Code maps an error to the connect code a client should see.
func Code(err error) connect.Code {
	switch {
	case errors.Is(err, ErrValidation):
		return connect.CodeInvalidArgument
	case errors.Is(err, ErrNotFound):
		return connect.CodeNotFound
	case errors.Is(err, ErrConflict):
		return connect.CodeAborted
	case errors.Is(err, ErrForbidden):
		return connect.CodePermissionDenied
	case errors.Is(err, ErrUnauthenticated):
		return connect.CodeUnauthenticated
	default:
		return connect.CodeInternal
	}
}

// errInternal is all a client learns about an unclassified failure.
var errInternal = errors.New("internal error")

// ToConnect converts err into a *connect.Error. Classified errors keep only their
// user-facing message. Internal errors are logged with their full chain and
// reach the client as a bare "internal error".
func ToConnect(err error) *connect.Error {
	if err == nil {
		return nil
	}
	var ce *connect.Error
	if errors.As(err, &ce) {
		return ce
	}
	code := Code(err)
	if code == connect.CodeInternal {
		log.Error().Err(err).Msg("internal error")
		return connect.NewError(code, errInternal)
	}
	return connect.NewError(code, errors.New(Message(err)))
}
