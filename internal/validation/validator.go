package validation

import (
	"fmt"
	"strings"

	"agrilink/marketplace-backend/pkg/workflows"
)

// Validator checks one entity type's payloads before any storage call.
// Validation is pure computation: no I/O, no side effects.
type Validator interface {
	// EntityType returns the registry key this validator serves.
	EntityType() string
	// ValidateCreate checks a full create payload, including requiredness.
	ValidateCreate(payload map[string]interface{}) Result
	// ValidateUpdate checks only the fields present in a partial payload.
	ValidateUpdate(payload map[string]interface{}) Result
	// ValidateStatusTransition checks one status hop against the entity's
	// transition graph.
	ValidateStatusTransition(current, next string) Result
}

// Limits carries the business bounds shared across validators. Values are
// overridable from configuration.
type Limits struct {
	MaxDiscountPercent        float64
	MinPriceDifferencePercent float64
	MaxCounterOffers          int
	NegotiationMaxExpiryDays  int
	CertMinValidityMonths     int
	CertMaxValidityYears      int
	ShipmentMaxWeightKg       float64
	MaxDefectPercentage       float64
	MaxOrderAmount            float64
	MaxPaymentAmount          float64
	MaxListingPrice           float64
	MaxListingQuantity        float64
	MessageMaxLength          int
	ReviewCommentMaxLength    int
	MaxListingImages          int
	MaxDisputeEvidence        int
}

// DefaultLimits returns the marketplace's standard bounds.
func DefaultLimits() Limits {
	return Limits{
		MaxDiscountPercent:        50,
		MinPriceDifferencePercent: 1,
		MaxCounterOffers:          5,
		NegotiationMaxExpiryDays:  30,
		CertMinValidityMonths:     6,
		CertMaxValidityYears:      5,
		ShipmentMaxWeightKg:       10000,
		MaxDefectPercentage:       20,
		MaxOrderAmount:            1000000,
		MaxPaymentAmount:          1000000,
		MaxListingPrice:           100000,
		MaxListingQuantity:        100000,
		MessageMaxLength:          2000,
		ReviewCommentMaxLength:    1000,
		MaxListingImages:          10,
		MaxDisputeEvidence:        10,
	}
}

// validateTransition applies the shared transition rules: both statuses must
// belong to the entity's status set, and the hop must exist in the graph.
func validateTransition(sm *workflows.StateMachine, current, next string) Result {
	res := OK()
	if !sm.IsKnown(current) {
		res.add("status", fmt.Sprintf("unknown status %q", current), CodeInvalidStatus)
	}
	if !sm.IsKnown(next) {
		res.add("status", fmt.Sprintf("unknown status %q", next), CodeInvalidStatus)
	}
	if !res.Valid {
		return res
	}
	if !sm.CanTransition(current, next) {
		allowed := sm.AllowedTransitions(current)
		if len(allowed) == 0 {
			res.add("status", fmt.Sprintf("%q is a terminal status", current), CodeInvalidTransition)
		} else {
			res.add("status",
				fmt.Sprintf("cannot transition from %q to %q (allowed: %s)", current, next, strings.Join(allowed, ", ")),
				CodeInvalidTransition)
		}
	}
	return res
}

// genericValidator accepts everything. The registry falls back to it for
// unrecognized entity keys so callers always get a usable validator.
type genericValidator struct{}

func (genericValidator) EntityType() string { return "generic" }

func (genericValidator) ValidateCreate(map[string]interface{}) Result { return OK() }

func (genericValidator) ValidateUpdate(map[string]interface{}) Result { return OK() }

func (genericValidator) ValidateStatusTransition(string, string) Result { return OK() }
