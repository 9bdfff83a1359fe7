// Package apperr provides standardized domain error types for the application.
// Client flows return these typed errors and the presentation layer decides
// whether a kind is surfaced as an alert or silently degraded.
package apperr

import (
	"fmt"
	"net/http"
)

// Kind represents the category of error.
type Kind int

const (
	// KindUnknown is the default error kind when none is specified.
	KindUnknown Kind = iota
	// KindValidation indicates invalid form input.
	KindValidation
	// KindUnauthorized indicates a missing, expired, or rejected session token.
	KindUnauthorized
	// KindPermission indicates a device permission (microphone) was denied.
	KindPermission
	// KindPermissionForever indicates a permission denied without the ability to re-ask.
	KindPermissionForever
	// KindBusiness indicates the backend accepted the request but rejected it
	// with success=false and a message meant for the user.
	KindBusiness
	// KindNotFound indicates a remote resource was not found.
	KindNotFound
	// KindUnavailable indicates the remote service answered with a server error.
	KindUnavailable
	// KindTransport indicates the request never completed (timeout, no connectivity).
	KindTransport
	// KindInternal indicates an unexpected local error.
	KindInternal
)

// Error is a domain error with a typed Kind.
type Error struct {
	Kind    Kind
	Message string
	Op      string      // Operation that failed (optional)
	Err     error       // Underlying error (optional)
	Details interface{} // Additional details (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new domain error with the given kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates a new domain error wrapping an existing error.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// WithOp returns the error with the operation set.
func (e *Error) WithOp(op string) *Error {
	e.Op = op
	return e
}

// WithDetails returns the error with additional details.
func (e *Error) WithDetails(details interface{}) *Error {
	e.Details = details
	return e
}

// Convenience constructors for common error types.

// Validation creates a validation error.
func Validation(message string) *Error {
	return New(KindValidation, message)
}

// Unauthorized creates an unauthorized error.
func Unauthorized(message string) *Error {
	return New(KindUnauthorized, message)
}

// Permission creates a permission-denied error.
func Permission(message string) *Error {
	return New(KindPermission, message)
}

// PermissionForever creates a permanently-denied permission error.
func PermissionForever(message string) *Error {
	return New(KindPermissionForever, message)
}

// Business creates a business rejection error carrying the server's message verbatim.
func Business(message string) *Error {
	return New(KindBusiness, message)
}

// Transport creates a transport error.
func Transport(message string) *Error {
	return New(KindTransport, message)
}

// Internal creates an internal error.
func Internal(message string) *Error {
	return New(KindInternal, message)
}

// FromStatus maps an HTTP response status to an error kind.
func FromStatus(status int) Kind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindUnauthorized
	case status == http.StatusNotFound:
		return KindNotFound
	case status >= http.StatusInternalServerError:
		return KindUnavailable
	case status >= http.StatusBadRequest:
		return KindValidation
	default:
		return KindUnknown
	}
}

// GetKind extracts the error kind from an error.
// Returns KindUnknown if the error is not an *Error.
func GetKind(err error) Kind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return KindUnknown
}

// Is checks if err is an *Error with the given kind.
func Is(err error, kind Kind) bool {
	return GetKind(err) == kind
}
