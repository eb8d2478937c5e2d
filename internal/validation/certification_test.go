package validation

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func validCertificationPayload() map[string]interface{} {
	issue := time.Now().AddDate(-1, 0, 0)
	return map[string]interface{}{
		"farmer_id":          uuid.New().String(),
		"certifying_body":    "Kenya Organic Agriculture Network",
		"certification_type": "organic",
		"certificate_number": "KOAN-2025-00481",
		"issue_date":         issue,
		"expiry_date":        issue.AddDate(2, 0, 0),
	}
}

func TestCertificationValidateCreate(t *testing.T) {
	v := NewCertificationValidator(DefaultLimits())

	res := v.ValidateCreate(validCertificationPayload())

	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)
}

func TestCertificationMissingRequiredFields(t *testing.T) {
	v := NewCertificationValidator(DefaultLimits())

	res := v.ValidateCreate(map[string]interface{}{})

	assert.False(t, res.Valid)
	assert.Len(t, res.Errors, 6)
	for _, e := range res.Errors {
		assert.Equal(t, CodeRequired, e.Code)
	}
}

func TestCertificationValidityTooShort(t *testing.T) {
	v := NewCertificationValidator(DefaultLimits())

	payload := validCertificationPayload()
	issue := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	payload["issue_date"] = issue
	payload["expiry_date"] = issue.AddDate(0, 0, 14)

	res := v.ValidateCreate(payload)

	assert.False(t, res.Valid)
	assert.True(t, res.HasCode(CodeInvalidDateRange))
}

func TestCertificationValidityTooLong(t *testing.T) {
	v := NewCertificationValidator(DefaultLimits())

	payload := validCertificationPayload()
	issue := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	payload["issue_date"] = issue
	payload["expiry_date"] = issue.AddDate(10, 0, 0)

	res := v.ValidateCreate(payload)

	assert.False(t, res.Valid)
	assert.True(t, res.HasCode(CodeInvalidDateRange))
}

func TestCertificationExpiryBeforeIssue(t *testing.T) {
	v := NewCertificationValidator(DefaultLimits())

	payload := validCertificationPayload()
	payload["issue_date"] = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	payload["expiry_date"] = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	res := v.ValidateCreate(payload)

	assert.False(t, res.Valid)
	assert.True(t, res.HasCode(CodeInvalidDateRange))
}

func TestCertificationIssueDateInFuture(t *testing.T) {
	v := NewCertificationValidator(DefaultLimits())

	payload := validCertificationPayload()
	issue := time.Now().AddDate(0, 1, 0)
	payload["issue_date"] = issue
	payload["expiry_date"] = issue.AddDate(1, 0, 0)

	res := v.ValidateCreate(payload)

	assert.False(t, res.Valid)
	assert.True(t, res.HasCode(CodeInvalidDateRange))
}

func TestCertificationNumberFormat(t *testing.T) {
	v := NewCertificationValidator(DefaultLimits())

	payload := validCertificationPayload()
	payload["certificate_number"] = "not valid!!"

	res := v.ValidateCreate(payload)

	assert.False(t, res.Valid)
	assert.True(t, res.HasCode(CodeInvalidFormat))
}

// A payload that passes create must also pass update unchanged.
func TestCertificationValidCreatePayloadPassesUpdate(t *testing.T) {
	v := NewCertificationValidator(DefaultLimits())
	payload := validCertificationPayload()

	assert.True(t, v.ValidateCreate(payload).Valid)
	assert.True(t, v.ValidateUpdate(payload).Valid)
}

func TestCertificationUpdateSkipsRequiredness(t *testing.T) {
	v := NewCertificationValidator(DefaultLimits())

	res := v.ValidateUpdate(map[string]interface{}{
		"certifying_body": "Soil Association",
	})

	assert.True(t, res.Valid)
}

func TestCertificationTransitions(t *testing.T) {
	v := NewCertificationValidator(DefaultLimits())

	assert.True(t, v.ValidateStatusTransition("pending", "verified").Valid)
	assert.True(t, v.ValidateStatusTransition("verified", "expired").Valid)
	assert.True(t, v.ValidateStatusTransition("verified", "suspended").Valid)
	assert.True(t, v.ValidateStatusTransition("suspended", "verified").Valid)
	assert.True(t, v.ValidateStatusTransition("expired", "pending").Valid)

	res := v.ValidateStatusTransition("pending", "expired")
	assert.False(t, res.Valid)
	assert.True(t, res.HasCode(CodeInvalidTransition))

	res = v.ValidateStatusTransition("verified", "pending")
	assert.False(t, res.Valid)
	assert.True(t, res.HasCode(CodeInvalidTransition))
}

func TestCertificationTransitionUnknownStatus(t *testing.T) {
	v := NewCertificationValidator(DefaultLimits())

	res := v.ValidateStatusTransition("pending", "archived")
	assert.False(t, res.Valid)
	assert.True(t, res.HasCode(CodeInvalidStatus))
}
