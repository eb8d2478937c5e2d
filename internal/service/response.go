package service

import (
	"errors"

	"agrilink/marketplace-backend/internal/repository"
	"agrilink/marketplace-backend/internal/validation"
)

// ServiceErrorCode is the fixed set of error categories surfaced to callers.
type ServiceErrorCode string

const (
	ErrCodeNotFound          ServiceErrorCode = "NOT_FOUND"
	ErrCodeConflict          ServiceErrorCode = "CONFLICT"
	ErrCodeValidation        ServiceErrorCode = "VALIDATION_ERROR"
	ErrCodeInvalidTransition ServiceErrorCode = "INVALID_TRANSITION"
	ErrCodeInternal          ServiceErrorCode = "INTERNAL_ERROR"
)

// ServiceError is the typed error callers receive. Details carries either the
// raw backend error text or the collected validation errors.
type ServiceError struct {
	Code    ServiceErrorCode `json:"code"`
	Message string           `json:"message"`
	Details interface{}      `json:"details,omitempty"`
}

// ServiceResponse is the uniform envelope every service method returns.
// Exactly one of Data and Error is set.
type ServiceResponse[T any] struct {
	Data  *T            `json:"data"`
	Error *ServiceError `json:"error"`
}

// ListResponse is the envelope for list operations, carrying the total row
// count before pagination.
type ListResponse[T any] struct {
	Data  []T           `json:"data"`
	Count int64         `json:"count"`
	Error *ServiceError `json:"error"`
}

func ok[T any](data *T) ServiceResponse[T] {
	return ServiceResponse[T]{Data: data}
}

func fail[T any](err *ServiceError) ServiceResponse[T] {
	return ServiceResponse[T]{Error: err}
}

// validationError wraps collected validator violations.
func validationError(result validation.Result) *ServiceError {
	return &ServiceError{
		Code:    ErrCodeValidation,
		Message: "validation failed",
		Details: result.Errors,
	}
}

// transitionError wraps violations from the status-transition gate.
func transitionError(result validation.Result) *ServiceError {
	code := ErrCodeValidation
	if result.HasCode(validation.CodeInvalidTransition) || result.HasCode(validation.CodeInvalidStatus) {
		code = ErrCodeInvalidTransition
	}
	return &ServiceError{
		Code:    code,
		Message: "illegal status transition",
		Details: result.Errors,
	}
}

// handleRepositoryError maps a normalized repository error into a
// ServiceError, preserving the raw backend error text for diagnostics.
func handleRepositoryError(err error) *ServiceError {
	var details string
	var re *repository.Error
	if errors.As(err, &re) && re.Err != nil {
		details = re.Err.Error()
	} else if err != nil {
		details = err.Error()
	}

	switch repository.CodeOf(err) {
	case repository.ErrCodeNotFound:
		return &ServiceError{Code: ErrCodeNotFound, Message: "record not found", Details: details}
	case repository.ErrCodeConflict:
		return &ServiceError{Code: ErrCodeConflict, Message: "record conflicts with existing data", Details: details}
	case repository.ErrCodeValidation:
		return &ServiceError{Code: ErrCodeValidation, Message: "storage rejected the payload", Details: details}
	default:
		return &ServiceError{Code: ErrCodeInternal, Message: "storage operation failed", Details: details}
	}
}
