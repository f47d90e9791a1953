package response

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes shared across the service and handler layers
const (
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeConflict      = "CONFLICT"
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeMalformedFile = "MALFORMED_FILE"
	ErrCodeUnauthorized  = "UNAUTHORIZED"
	ErrCodeForbidden     = "FORBIDDEN"
	ErrCodeInternal      = "INTERNAL_ERROR"
)

// AppError is the typed error carried from services up to handlers
type AppError struct {
	Code    string
	Message string
	Details string
	cause   error
}

func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// Is lets errors.Is match AppErrors by code
func (e *AppError) Is(target error) bool {
	var appErr *AppError
	if errors.As(target, &appErr) {
		return e.Code == appErr.Code
	}
	return false
}

func NewNotFound(entity string, key any) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found", entity),
		Details: fmt.Sprintf("%v", key),
	}
}

func NewConflict(entity string, cause error) *AppError {
	return &AppError{
		Code:    ErrCodeConflict,
		Message: fmt.Sprintf("%s was modified concurrently", entity),
		cause:   cause,
	}
}

func NewValidation(message string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message}
}

func NewMalformedFile(message string, cause error) *AppError {
	return &AppError{Code: ErrCodeMalformedFile, Message: message, cause: cause}
}

func NewUnauthorized(message string) *AppError {
	return &AppError{Code: ErrCodeUnauthorized, Message: message}
}

func NewInternal(message string, cause error) *AppError {
	return &AppError{Code: ErrCodeInternal, Message: message, cause: cause}
}

// Sentinels for errors.Is checks in services and tests
var (
	ErrNotFound = &AppError{Code: ErrCodeNotFound, Message: "resource not found"}
	ErrConflict = &AppError{Code: ErrCodeConflict, Message: "version conflict"}
)

// HTTPStatus maps an error code to its HTTP status
func HTTPStatus(code string) int {
	switch code {
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeConflict, ErrCodeAlreadyExists:
		return http.StatusConflict
	case ErrCodeValidation, ErrCodeMalformedFile:
		return http.StatusBadRequest
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
