package validation

import (
	"fmt"
	"math"
	"time"

	"agrilink/marketplace-backend/internal/models"
	"agrilink/marketplace-backend/pkg/workflows"
)

var negotiationStatuses = []string{
	string(models.NegotiationStatusPending),
	string(models.NegotiationStatusCounterOffered),
	string(models.NegotiationStatusAccepted),
	string(models.NegotiationStatusRejected),
	string(models.NegotiationStatusExpired),
}

var negotiationRequiredFields = []string{
	"listing_id", "buyer_id", "farmer_id",
	"original_price", "proposed_price", "expires_at",
}

// NegotiationValidator checks Negotiation payloads: price sanity, discount
// ceiling, minimum price movement, counter-offer budget and expiry window.
type NegotiationValidator struct {
	limits  Limits
	machine *workflows.StateMachine
}

func NewNegotiationValidator(limits Limits) *NegotiationValidator {
	return &NegotiationValidator{
		limits: limits,
		machine: workflows.NewStateMachine(map[string][]string{
			string(models.NegotiationStatusPending): {
				string(models.NegotiationStatusAccepted),
				string(models.NegotiationStatusRejected),
				string(models.NegotiationStatusCounterOffered),
				string(models.NegotiationStatusExpired),
			},
			string(models.NegotiationStatusCounterOffered): {
				string(models.NegotiationStatusAccepted),
				string(models.NegotiationStatusRejected),
				string(models.NegotiationStatusCounterOffered),
				string(models.NegotiationStatusExpired),
			},
			string(models.NegotiationStatusAccepted): {},
			string(models.NegotiationStatusRejected): {},
			string(models.NegotiationStatusExpired):  {string(models.NegotiationStatusPending)},
		}),
	}
}

func (v *NegotiationValidator) EntityType() string { return EntityNegotiation }

func (v *NegotiationValidator) ValidateCreate(payload map[string]interface{}) Result {
	res := OK()
	res.addAll(requireFields(payload, negotiationRequiredFields))
	res.merge(v.validateFields(payload))
	return res
}

func (v *NegotiationValidator) ValidateUpdate(payload map[string]interface{}) Result {
	return v.validateFields(payload)
}

func (v *NegotiationValidator) ValidateStatusTransition(current, next string) Result {
	return validateTransition(v.machine, current, next)
}

func (v *NegotiationValidator) validateFields(payload map[string]interface{}) Result {
	res := OK()

	checkUUIDField(&res, payload, "listing_id")
	checkUUIDField(&res, payload, "buyer_id")
	checkUUIDField(&res, payload, "farmer_id")

	original, hasOriginal := checkNumberField(&res, payload, "original_price")
	if hasOriginal {
		res.addError(checkPositive("original_price", original))
	}
	proposed, hasProposed := checkNumberField(&res, payload, "proposed_price")
	if hasProposed {
		res.addError(checkPositive("proposed_price", proposed))
	}

	if hasOriginal && hasProposed && original > 0 && proposed > 0 {
		if proposed < original {
			discount := (original - proposed) / original * 100
			if discount > v.limits.MaxDiscountPercent {
				res.add("proposed_price",
					fmt.Sprintf("discount of %.1f%% exceeds the maximum of %g%%", discount, v.limits.MaxDiscountPercent),
					CodeMaxDiscountExceeded)
			}
		}
		difference := math.Abs(original-proposed) / original * 100
		if difference < v.limits.MinPriceDifferencePercent {
			res.add("proposed_price",
				fmt.Sprintf("proposed_price must differ from original_price by at least %g%%", v.limits.MinPriceDifferencePercent),
				CodeMinPriceDifference)
		}
	}

	if qty, ok := checkNumberField(&res, payload, "quantity"); ok {
		res.addError(checkPositive("quantity", qty))
	}

	if count, ok := checkNumberField(&res, payload, "counter_offer_count"); ok {
		if count < 0 {
			res.add("counter_offer_count", "counter_offer_count cannot be negative", CodeInvalidNumber)
		} else if int(count) > v.limits.MaxCounterOffers {
			res.add("counter_offer_count",
				fmt.Sprintf("negotiation allows at most %d counter-offers", v.limits.MaxCounterOffers),
				CodeTooManyCounterOffers)
		}
	}

	checkEnumField(&res, payload, "status", negotiationStatuses)

	if expires, ok := checkDateField(&res, payload, "expires_at"); ok {
		now := time.Now()
		res.addError(checkFutureDate("expires_at", expires, now))
		maxExpiry := now.AddDate(0, 0, v.limits.NegotiationMaxExpiryDays)
		if expires.After(maxExpiry) {
			res.add("expires_at",
				fmt.Sprintf("expires_at must be within %d days", v.limits.NegotiationMaxExpiryDays),
				CodeInvalidDateRange)
		}
	}

	return res
}
