package validation

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func validShipmentPayload() map[string]interface{} {
	return map[string]interface{}{
		"order_id":        uuid.New().String(),
		"carrier":         "UPS",
		"tracking_number": "1Z999AA10123456784",
		"weight_kg":       120.5,
	}
}

func TestShipmentValidateCreate(t *testing.T) {
	v := NewShipmentValidator(DefaultLimits())

	res := v.ValidateCreate(validShipmentPayload())

	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)
}

func TestShipmentTrackingNumberFormats(t *testing.T) {
	v := NewShipmentValidator(DefaultLimits())

	tests := []struct {
		name     string
		tracking string
		valid    bool
	}{
		{"ups", "1Z999AA10123456784", true},
		{"fedex 12 digits", "123456789012", true},
		{"fedex 15 digits", "123456789012345", true},
		{"generic", "AGRI2026KE001", true},
		{"too short", "ABC123", false},
		{"lowercase", "agri2026ke001xx", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			payload := validShipmentPayload()
			payload["tracking_number"] = tc.tracking

			res := v.ValidateCreate(payload)

			assert.Equal(t, tc.valid, res.Valid)
		})
	}
}

func TestShipmentWeightBounds(t *testing.T) {
	v := NewShipmentValidator(DefaultLimits())

	payload := validShipmentPayload()
	payload["weight_kg"] = 10001.0

	res := v.ValidateCreate(payload)
	assert.False(t, res.Valid)
	assert.True(t, res.HasCode(CodeOutOfRange))

	payload["weight_kg"] = 0.0
	res = v.ValidateCreate(payload)
	assert.False(t, res.Valid)
	assert.True(t, res.HasCode(CodeAmountTooLow))
}

func TestShipmentDeliveredRequiresActualDate(t *testing.T) {
	v := NewShipmentValidator(DefaultLimits())

	payload := validShipmentPayload()
	payload["status"] = "delivered"

	res := v.ValidateCreate(payload)
	assert.False(t, res.Valid)
	assert.True(t, res.HasCode(CodeRequired))

	payload["actual_delivery_date"] = time.Now().Add(-time.Hour)
	assert.True(t, v.ValidateCreate(payload).Valid)
}

func TestShipmentTransitions(t *testing.T) {
	v := NewShipmentValidator(DefaultLimits())

	assert.True(t, v.ValidateStatusTransition("pending", "picked_up").Valid)
	assert.True(t, v.ValidateStatusTransition("picked_up", "in_transit").Valid)
	assert.True(t, v.ValidateStatusTransition("in_transit", "out_for_delivery").Valid)
	assert.True(t, v.ValidateStatusTransition("out_for_delivery", "delivered").Valid)
	assert.True(t, v.ValidateStatusTransition("failed", "returned").Valid)
	assert.True(t, v.ValidateStatusTransition("failed", "pending").Valid)

	// No skipping stages.
	assert.False(t, v.ValidateStatusTransition("pending", "delivered").Valid)
	assert.False(t, v.ValidateStatusTransition("picked_up", "out_for_delivery").Valid)

	// Delivered and returned are final.
	assert.False(t, v.ValidateStatusTransition("delivered", "in_transit").Valid)
	assert.False(t, v.ValidateStatusTransition("returned", "pending").Valid)
}
