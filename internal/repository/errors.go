package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrorCode classifies a storage failure.
type ErrorCode string

const (
	ErrCodeNotFound   ErrorCode = "NOT_FOUND"
	ErrCodeConflict   ErrorCode = "CONFLICT"
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"
	ErrCodeInternal   ErrorCode = "INTERNAL_ERROR"
)

// Error is a normalized storage error. The raw backend error is kept for
// diagnostics and available through Unwrap.
type Error struct {
	Code ErrorCode
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return string(e.Code) + ": " + e.Err.Error()
	}
	return string(e.Code)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NormalizeError maps a backend error onto the fixed error-code table. A nil
// error passes through.
func NormalizeError(err error) *Error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return &Error{Code: ErrCodeNotFound, Err: err}
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &Error{Code: ErrCodeConflict, Err: err}
	case errors.Is(err, gorm.ErrForeignKeyViolated),
		errors.Is(err, gorm.ErrCheckConstraintViolated),
		errors.Is(err, gorm.ErrInvalidData),
		errors.Is(err, gorm.ErrInvalidValue):
		return &Error{Code: ErrCodeValidation, Err: err}
	default:
		return &Error{Code: ErrCodeInternal, Err: err}
	}
}

// CodeOf extracts the normalized code from an error, defaulting to
// INTERNAL_ERROR for anything unrecognized.
func CodeOf(err error) ErrorCode {
	var re *Error
	if errors.As(err, &re) {
		return re.Code
	}
	return ErrCodeInternal
}
