package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrBadRequest  = errors.New("bad request")
	ErrTooLarge    = errors.New("too large")
	ErrUnavailable = errors.New("unavailable")
	ErrInternal    = errors.New("internal")
)

// ServiceError wraps a sentinel error with a specific code and message for the handler to use.
type ServiceError struct {
	Err     error
	Code    string
	Message string
}

func (e *ServiceError) Error() string { return e.Message }
func (e *ServiceError) Unwrap() error { return e.Err }

// NewError creates a ServiceError wrapping the given sentinel.
func NewError(sentinel error, code, message string) *ServiceError {
	return &ServiceError{Err: sentinel, Code: code, Message: message}
}

// Convenience constructors for common error types.

func NotFound(code, message string) *ServiceError {
	return NewError(ErrNotFound, code, message)
}

func BadRequest(code, message string) *ServiceError {
	return NewError(ErrBadRequest, code, message)
}

func TooLarge(code, message string) *ServiceError {
	return NewError(ErrTooLarge, code, message)
}

func Unavailable(code, message string) *ServiceError {
	return NewError(ErrUnavailable, code, message)
}

func Internal(code, message string) *ServiceError {
	return NewError(ErrInternal, code, message)
}

// storeError classifies a repository failure: connection-level problems
// (pool acquire timeout, network) become STORE_UNAVAILABLE, a statement the
// store rejected becomes STORE_REJECTED, anything else STORE_ERROR.
func storeError(err error) *ServiceError {
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) {
		return Unavailable("STORE_UNAVAILABLE", "store connection unavailable")
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return Internal("STORE_REJECTED", "store rejected statement")
	}
	return Internal("STORE_ERROR", "store operation failed")
}
