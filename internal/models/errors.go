package models

import (
	"errors"
	"fmt"
)

// AppError is the application error taxonomy. Routes translate every
// AppError into the uniform redirect response, but services return
// distinct codes so callers and tests can tell outcomes apart.
type AppError struct {
	Code    string
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

// Predefined error constructors
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    "VALIDATION_ERROR",
		Message: message,
	}
}

// NewAuthRequiredError signals that an operation needs an authenticated
// user and none was resolved.
func NewAuthRequiredError(message string) *AppError {
	return &AppError{
		Code:    "AUTH_REQUIRED",
		Message: message,
	}
}

// NewOwnershipMismatchError signals that the current user is not the
// owner of the targeted resource. It is absorbed into a redirect at the
// HTTP layer, never surfaced to the client.
func NewOwnershipMismatchError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    "OWNERSHIP_MISMATCH",
		Message: fmt.Sprintf("current user does not own %s %v", resource, id),
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: "Internal server error",
		Err:     err,
	}
}

// HasCode reports whether err is an AppError carrying the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// IsNotFound reports whether err is a NOT_FOUND AppError.
func IsNotFound(err error) bool { return HasCode(err, "NOT_FOUND") }

// IsOwnershipMismatch reports whether err is an OWNERSHIP_MISMATCH AppError.
func IsOwnershipMismatch(err error) bool { return HasCode(err, "OWNERSHIP_MISMATCH") }
