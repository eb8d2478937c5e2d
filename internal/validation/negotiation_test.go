package validation

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func validNegotiationPayload() map[string]interface{} {
	return map[string]interface{}{
		"listing_id":     uuid.New().String(),
		"buyer_id":       uuid.New().String(),
		"farmer_id":      uuid.New().String(),
		"original_price": 1000.0,
		"proposed_price": 800.0,
		"expires_at":     time.Now().AddDate(0, 0, 7),
	}
}

func TestNegotiationValidateCreate(t *testing.T) {
	v := NewNegotiationValidator(DefaultLimits())

	res := v.ValidateCreate(validNegotiationPayload())

	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)
}

func TestNegotiationDiscountExceedsMaximum(t *testing.T) {
	v := NewNegotiationValidator(DefaultLimits())

	payload := validNegotiationPayload()
	payload["proposed_price"] = 400.0 // 60% off

	res := v.ValidateCreate(payload)

	assert.False(t, res.Valid)
	assert.True(t, res.HasCode(CodeMaxDiscountExceeded))
}

func TestNegotiationDiscountAtBoundary(t *testing.T) {
	v := NewNegotiationValidator(DefaultLimits())

	payload := validNegotiationPayload()
	payload["proposed_price"] = 500.0 // exactly 50% off

	res := v.ValidateCreate(payload)

	assert.True(t, res.Valid)
}

func TestNegotiationPriceDifferenceTooSmall(t *testing.T) {
	v := NewNegotiationValidator(DefaultLimits())

	payload := validNegotiationPayload()
	payload["proposed_price"] = 995.0 // 0.5% movement

	res := v.ValidateCreate(payload)

	assert.False(t, res.Valid)
	assert.True(t, res.HasCode(CodeMinPriceDifference))
}

func TestNegotiationProposedAboveOriginal(t *testing.T) {
	v := NewNegotiationValidator(DefaultLimits())

	// Proposing above the asking price is allowed; the discount ceiling only
	// applies downward.
	payload := validNegotiationPayload()
	payload["proposed_price"] = 1600.0

	res := v.ValidateCreate(payload)

	assert.True(t, res.Valid)
}

func TestNegotiationTooManyCounterOffers(t *testing.T) {
	v := NewNegotiationValidator(DefaultLimits())

	payload := validNegotiationPayload()
	payload["counter_offer_count"] = 6

	res := v.ValidateCreate(payload)

	assert.False(t, res.Valid)
	assert.True(t, res.HasCode(CodeTooManyCounterOffers))
}

func TestNegotiationCounterOfferBudgetBoundary(t *testing.T) {
	v := NewNegotiationValidator(DefaultLimits())

	payload := validNegotiationPayload()
	payload["counter_offer_count"] = 5

	res := v.ValidateCreate(payload)

	assert.True(t, res.Valid)
}

func TestNegotiationExpiryInPast(t *testing.T) {
	v := NewNegotiationValidator(DefaultLimits())

	payload := validNegotiationPayload()
	payload["expires_at"] = time.Now().AddDate(0, 0, -1)

	res := v.ValidateCreate(payload)

	assert.False(t, res.Valid)
	assert.True(t, res.HasCode(CodeInvalidDateRange))
}

func TestNegotiationExpiryTooFarOut(t *testing.T) {
	v := NewNegotiationValidator(DefaultLimits())

	payload := validNegotiationPayload()
	payload["expires_at"] = time.Now().AddDate(0, 0, 45)

	res := v.ValidateCreate(payload)

	assert.False(t, res.Valid)
	assert.True(t, res.HasCode(CodeInvalidDateRange))
}

func TestNegotiationNegativePrices(t *testing.T) {
	v := NewNegotiationValidator(DefaultLimits())

	payload := validNegotiationPayload()
	payload["original_price"] = -100.0
	payload["proposed_price"] = 0.0

	res := v.ValidateCreate(payload)

	assert.False(t, res.Valid)
	assert.True(t, res.HasCode(CodeAmountTooLow))
}

func TestNegotiationTransitions(t *testing.T) {
	v := NewNegotiationValidator(DefaultLimits())

	assert.True(t, v.ValidateStatusTransition("pending", "accepted").Valid)
	assert.True(t, v.ValidateStatusTransition("pending", "counter_offered").Valid)
	assert.True(t, v.ValidateStatusTransition("counter_offered", "counter_offered").Valid)
	assert.True(t, v.ValidateStatusTransition("counter_offered", "rejected").Valid)
	assert.True(t, v.ValidateStatusTransition("expired", "pending").Valid)

	res := v.ValidateStatusTransition("accepted", "pending")
	assert.False(t, res.Valid)
	assert.True(t, res.HasCode(CodeInvalidTransition))
	assert.Contains(t, res.Errors[0].Message, "terminal")

	assert.False(t, v.ValidateStatusTransition("rejected", "counter_offered").Valid)
}
