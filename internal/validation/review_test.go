package validation

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func validReviewPayload() map[string]interface{} {
	return map[string]interface{}{
		"order_id":    uuid.New().String(),
		"reviewer_id": uuid.New().String(),
		"reviewee_id": uuid.New().String(),
		"rating":      4.0,
	}
}

func TestReviewValidateCreate(t *testing.T) {
	v := NewReviewValidator(DefaultLimits())

	res := v.ValidateCreate(validReviewPayload())

	assert.True(t, res.Valid)
}

func TestReviewRatingMustBeWholeNumber(t *testing.T) {
	v := NewReviewValidator(DefaultLimits())

	payload := validReviewPayload()
	payload["rating"] = 3.5

	res := v.ValidateCreate(payload)

	assert.False(t, res.Valid)
	assert.True(t, res.HasCode(CodeInvalidNumber))
}

func TestReviewRatingRange(t *testing.T) {
	v := NewReviewValidator(DefaultLimits())

	for _, rating := range []float64{1, 2, 3, 4, 5} {
		payload := validReviewPayload()
		payload["rating"] = rating
		assert.True(t, v.ValidateCreate(payload).Valid, "rating %g", rating)
	}

	for _, rating := range []float64{0, 6, -1} {
		payload := validReviewPayload()
		payload["rating"] = rating
		res := v.ValidateCreate(payload)
		assert.False(t, res.Valid, "rating %g", rating)
		assert.True(t, res.HasCode(CodeOutOfRange))
	}
}

func TestReviewSelfReviewRejected(t *testing.T) {
	v := NewReviewValidator(DefaultLimits())

	id := uuid.New().String()
	payload := validReviewPayload()
	payload["reviewer_id"] = id
	payload["reviewee_id"] = id

	res := v.ValidateCreate(payload)

	assert.False(t, res.Valid)
	assert.True(t, res.HasCode(CodeInvalidFormat))
}

func TestReviewCommentContentScreening(t *testing.T) {
	v := NewReviewValidator(DefaultLimits())

	payload := validReviewPayload()
	payload["comment"] = "Great tomatoes, click here to buy now!!"

	res := v.ValidateCreate(payload)

	assert.False(t, res.Valid)
	assert.True(t, res.HasCode(CodeSpam))
}

func TestReviewTransitions(t *testing.T) {
	v := NewReviewValidator(DefaultLimits())

	assert.True(t, v.ValidateStatusTransition("pending", "published").Valid)
	assert.True(t, v.ValidateStatusTransition("published", "flagged").Valid)
	assert.True(t, v.ValidateStatusTransition("flagged", "published").Valid)
	assert.True(t, v.ValidateStatusTransition("flagged", "removed").Valid)

	assert.False(t, v.ValidateStatusTransition("removed", "published").Valid)
	assert.False(t, v.ValidateStatusTransition("pending", "removed").Valid)
}
