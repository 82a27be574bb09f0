package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller could not be authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// ErrRefreshTokenExpired indicates that a stored refresh token is past its expiry.
var ErrRefreshTokenExpired = errors.New("refresh token expired")

// ErrRateUnavailable indicates that no exchange rate could be obtained for a
// currency pair from any source, including the built-in fallback table. This
// is never silently defaulted; quoting a wrong rate would corrupt a transfer.
var ErrRateUnavailable = errors.New("exchange rate unavailable")

// ErrRateFetch indicates that the external rate provider call failed. It is
// internal to the pricing layer and recovered via the fallback chain; it must
// not escape past the FX service.
var ErrRateFetch = errors.New("rate fetch failed")

// ErrInvalidStatus indicates an unknown transaction status value, or a
// transition out of a terminal status.
var ErrInvalidStatus = errors.New("invalid transaction status")

// AppError carries an HTTP-ish status code alongside a wrapped sentinel so
// errors.Is keeps working across layers.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a generic AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that satisfies errors.Is(err, ErrNotFound).
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// NewValidationError creates an AppError that satisfies errors.Is(err, ErrValidation).
func NewValidationError(message string) *AppError {
	return &AppError{Code: 400, Message: message, Err: ErrValidation}
}
