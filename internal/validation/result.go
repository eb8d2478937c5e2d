package validation

// ValidationError describes a single rule violation on one field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Validation error codes. Structural codes first, business-rule codes after.
const (
	CodeRequired              = "REQUIRED"
	CodeInvalidUUID           = "INVALID_UUID"
	CodeInvalidLength         = "INVALID_LENGTH"
	CodeInvalidType           = "INVALID_TYPE"
	CodeInvalidEnum           = "INVALID_ENUM"
	CodeInvalidDate           = "INVALID_DATE"
	CodeInvalidDateRange      = "INVALID_DATE_RANGE"
	CodeInvalidNumber         = "INVALID_NUMBER"
	CodeOutOfRange            = "OUT_OF_RANGE"
	CodeInvalidURL            = "INVALID_URL"
	CodeInvalidFormat         = "INVALID_FORMAT"
	CodeInvalidStatus         = "INVALID_STATUS"
	CodeInvalidTransition     = "INVALID_TRANSITION"
	CodeAmountTooLow          = "AMOUNT_TOO_LOW"
	CodeAmountTooHigh         = "AMOUNT_TOO_HIGH"
	CodeMaxDiscountExceeded   = "MAX_DISCOUNT_EXCEEDED"
	CodeMinPriceDifference    = "MIN_PRICE_DIFFERENCE"
	CodeInconsistentGrade     = "INCONSISTENT_GRADE_SCORE"
	CodeTooManyCounterOffers  = "TOO_MANY_COUNTER_OFFERS"
	CodeTooManyItems          = "TOO_MANY_ITEMS"
	CodeInvalidTrackingNumber = "INVALID_TRACKING_NUMBER"
	CodeSpam                  = "SPAM"
	CodeInappropriate         = "INAPPROPRIATE"
)

// Result collects every violation found in one validation pass. Checks never
// short-circuit; a payload is valid only when the error list is empty.
type Result struct {
	Valid  bool              `json:"is_valid"`
	Errors []ValidationError `json:"errors"`
}

// OK returns a passing result.
func OK() Result {
	return Result{Valid: true, Errors: []ValidationError{}}
}

func (r *Result) add(field, message, code string) {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationError{Field: field, Message: message, Code: code})
}

func (r *Result) addError(err *ValidationError) {
	if err == nil {
		return
	}
	r.Valid = false
	r.Errors = append(r.Errors, *err)
}

func (r *Result) addAll(errs []ValidationError) {
	if len(errs) == 0 {
		return
	}
	r.Valid = false
	r.Errors = append(r.Errors, errs...)
}

// merge folds another result's errors into this one.
func (r *Result) merge(other Result) {
	r.addAll(other.Errors)
}

// HasCode reports whether any collected error carries the given code.
func (r Result) HasCode(code string) bool {
	for _, e := range r.Errors {
		if e.Code == code {
			return true
		}
	}
	return false
}
