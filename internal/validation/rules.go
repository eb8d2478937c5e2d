package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Shared rule primitives. Every check is a pure function over the payload
// value; callers collect the returned violations into a Result.

var alphanumericPattern = regexp.MustCompile(`^[A-Za-z0-9-]+$`)

// requireFields reports a REQUIRED violation for every listed field that is
// absent, nil, or an empty string.
func requireFields(payload map[string]interface{}, fields []string) []ValidationError {
	var errs []ValidationError
	for _, field := range fields {
		value, present := payload[field]
		if !present || value == nil {
			errs = append(errs, ValidationError{Field: field, Message: field + " is required", Code: CodeRequired})
			continue
		}
		if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
			errs = append(errs, ValidationError{Field: field, Message: field + " is required", Code: CodeRequired})
		}
	}
	return errs
}

// stringValue extracts a string field. The second return is false when the
// field is absent or nil; the error is non-nil when present with a wrong type.
func stringValue(payload map[string]interface{}, field string) (string, bool, *ValidationError) {
	value, present := payload[field]
	if !present || value == nil {
		return "", false, nil
	}
	s, ok := value.(string)
	if !ok {
		return "", false, &ValidationError{Field: field, Message: field + " must be a string", Code: CodeInvalidType}
	}
	return s, true, nil
}

// numberValue extracts a numeric field, accepting the numeric kinds a JSON
// decode or a Go caller may supply.
func numberValue(payload map[string]interface{}, field string) (float64, bool, *ValidationError) {
	value, present := payload[field]
	if !present || value == nil {
		return 0, false, nil
	}
	switch n := value.(type) {
	case float64:
		return n, true, nil
	case float32:
		return float64(n), true, nil
	case int:
		return float64(n), true, nil
	case int32:
		return float64(n), true, nil
	case int64:
		return float64(n), true, nil
	default:
		return 0, false, &ValidationError{Field: field, Message: field + " must be a number", Code: CodeInvalidType}
	}
}

// checkUUID validates that the value is a well-formed UUID.
func checkUUID(field, value string) *ValidationError {
	if _, err := uuid.Parse(value); err != nil {
		return &ValidationError{Field: field, Message: field + " must be a valid UUID", Code: CodeInvalidUUID}
	}
	return nil
}

// checkLength validates the trimmed length of a string.
func checkLength(field, value string, min, max int) *ValidationError {
	length := len(strings.TrimSpace(value))
	if length < min || length > max {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s must be between %d and %d characters", field, min, max),
			Code:    CodeInvalidLength,
		}
	}
	return nil
}

// checkEnum validates membership in a closed value set.
func checkEnum(field, value string, allowed []string) *ValidationError {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf("%s must be one of [%s]", field, strings.Join(allowed, ", ")),
		Code:    CodeInvalidEnum,
	}
}

// dateValue parses a date field. Accepts time.Time, RFC 3339 strings, and
// plain YYYY-MM-DD strings.
func dateValue(payload map[string]interface{}, field string) (time.Time, bool, *ValidationError) {
	value, present := payload[field]
	if !present || value == nil {
		return time.Time{}, false, nil
	}
	switch d := value.(type) {
	case time.Time:
		return d, true, nil
	case string:
		if t, err := time.Parse(time.RFC3339, d); err == nil {
			return t, true, nil
		}
		if t, err := time.Parse("2006-01-02", d); err == nil {
			return t, true, nil
		}
		return time.Time{}, false, &ValidationError{Field: field, Message: field + " must be a valid date", Code: CodeInvalidDate}
	default:
		return time.Time{}, false, &ValidationError{Field: field, Message: field + " must be a valid date", Code: CodeInvalidDate}
	}
}

// checkFutureDate validates that the date is strictly after now.
func checkFutureDate(field string, value, now time.Time) *ValidationError {
	if !value.After(now) {
		return &ValidationError{Field: field, Message: field + " must be in the future", Code: CodeInvalidDateRange}
	}
	return nil
}

// checkPastDate validates that the date is not after now.
func checkPastDate(field string, value, now time.Time) *ValidationError {
	if value.After(now) {
		return &ValidationError{Field: field, Message: field + " cannot be in the future", Code: CodeInvalidDateRange}
	}
	return nil
}

// checkPositive validates a strictly positive number.
func checkPositive(field string, value float64) *ValidationError {
	if value <= 0 {
		return &ValidationError{Field: field, Message: field + " must be greater than zero", Code: CodeAmountTooLow}
	}
	return nil
}

// checkRange validates an inclusive numeric range.
func checkRange(field string, value, min, max float64) *ValidationError {
	if value < min || value > max {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s must be between %g and %g", field, min, max),
			Code:    CodeOutOfRange,
		}
	}
	return nil
}

// checkURL validates an absolute http(s) URL.
func checkURL(field, value string) *ValidationError {
	parsed, err := url.Parse(value)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return &ValidationError{Field: field, Message: field + " must be a valid URL", Code: CodeInvalidURL}
	}
	return nil
}

// checkArrayLength validates the length bounds of an array field.
func checkArrayLength(field string, value interface{}, min, max int) *ValidationError {
	arr, ok := value.([]interface{})
	if !ok {
		return &ValidationError{Field: field, Message: field + " must be an array", Code: CodeInvalidType}
	}
	if len(arr) < min || len(arr) > max {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s must contain between %d and %d entries", field, min, max),
			Code:    CodeTooManyItems,
		}
	}
	return nil
}

// checkAlphanumeric validates a string of letters, digits and dashes.
func checkAlphanumeric(field, value string) *ValidationError {
	if !alphanumericPattern.MatchString(strings.TrimSpace(value)) {
		return &ValidationError{Field: field, Message: field + " must be alphanumeric", Code: CodeInvalidFormat}
	}
	return nil
}

// Field-level wrappers. Each checks one payload field when present, folds
// violations into the result, and returns the value for cross-field rules.

func checkUUIDField(res *Result, payload map[string]interface{}, field string) (string, bool) {
	s, ok, err := stringValue(payload, field)
	if err != nil {
		res.addError(err)
		return "", false
	}
	if !ok {
		return "", false
	}
	if verr := checkUUID(field, s); verr != nil {
		res.addError(verr)
		return "", false
	}
	return s, true
}

func checkStringField(res *Result, payload map[string]interface{}, field string, min, max int) (string, bool) {
	s, ok, err := stringValue(payload, field)
	if err != nil {
		res.addError(err)
		return "", false
	}
	if !ok {
		return "", false
	}
	if verr := checkLength(field, s, min, max); verr != nil {
		res.addError(verr)
		return s, false
	}
	return s, true
}

func checkEnumField(res *Result, payload map[string]interface{}, field string, allowed []string) (string, bool) {
	s, ok, err := stringValue(payload, field)
	if err != nil {
		res.addError(err)
		return "", false
	}
	if !ok {
		return "", false
	}
	if verr := checkEnum(field, s, allowed); verr != nil {
		res.addError(verr)
		return s, false
	}
	return s, true
}

func checkNumberField(res *Result, payload map[string]interface{}, field string) (float64, bool) {
	n, ok, err := numberValue(payload, field)
	if err != nil {
		res.addError(err)
		return 0, false
	}
	return n, ok
}

func checkDateField(res *Result, payload map[string]interface{}, field string) (time.Time, bool) {
	t, ok, err := dateValue(payload, field)
	if err != nil {
		res.addError(err)
		return time.Time{}, false
	}
	return t, ok
}

func checkURLField(res *Result, payload map[string]interface{}, field string) {
	s, ok, err := stringValue(payload, field)
	if err != nil {
		res.addError(err)
		return
	}
	if ok && s != "" {
		res.addError(checkURL(field, s))
	}
}

// monthsBetween returns whole calendar months from a to b.
func monthsBetween(a, b time.Time) int {
	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if b.Day() < a.Day() {
		months--
	}
	return months
}
