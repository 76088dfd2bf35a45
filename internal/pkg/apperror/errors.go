// Package apperror carries the tagged errors use cases return to the HTTP layer.
package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies an error for the transport boundary
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindAuth
	KindPersistence
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindPersistence:
		return "persistence"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// StatusCode maps a kind to its HTTP status
func (k Kind) StatusCode() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error is a failure with a kind and a user-visible message.
// Err, when set, is the underlying cause.
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

// Details returns the underlying cause message, if any
func (e *Error) Details() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func Auth(message string) *Error {
	return &Error{Kind: KindAuth, Message: message}
}

func Persistence(message string, err error) *Error {
	return &Error{Kind: KindPersistence, Message: message, Err: err}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf reports the kind of err, defaulting to KindInternal for untagged errors
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// Common messages shared between layers
const (
	MsgInvalidOTP          = "Invalid OTP"
	MsgOTPExpired          = "OTP expired"
	MsgMissingFields       = "Missing required fields"
	MsgInvalidCoordinates  = "Invalid location coordinates"
	MsgInvalidTimestamp    = "Invalid timestamp"
	MsgEndpointNotFound    = "Endpoint not found"
	MsgInternalServerError = "Internal server error"
	MsgUnauthorized        = "Unauthorized: invalid or missing token"
)

var (
	ErrInvalidOTP = Auth(MsgInvalidOTP)
	ErrOTPExpired = Auth(MsgOTPExpired)
)
