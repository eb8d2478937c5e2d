package validation

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func validTaskPayload() map[string]interface{} {
	return map[string]interface{}{
		"farmer_id": uuid.New().String(),
		"title":     "Harvest maize field B",
		"due_date":  time.Now().AddDate(0, 0, 3),
	}
}

func TestTaskValidateCreate(t *testing.T) {
	v := NewTaskValidator(DefaultLimits())

	res := v.ValidateCreate(validTaskPayload())

	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)
}

func TestTaskMissingRequiredFields(t *testing.T) {
	v := NewTaskValidator(DefaultLimits())

	res := v.ValidateCreate(map[string]interface{}{"title": "Weed plot"})

	assert.False(t, res.Valid)
	assert.Len(t, res.Errors, 2)
	assert.True(t, res.HasCode(CodeRequired))
}

func TestTaskTitleTooShort(t *testing.T) {
	v := NewTaskValidator(DefaultLimits())

	payload := validTaskPayload()
	payload["title"] = "ab"

	res := v.ValidateCreate(payload)

	assert.False(t, res.Valid)
	assert.True(t, res.HasCode(CodeInvalidLength))
}

func TestTaskInvalidFarmerID(t *testing.T) {
	v := NewTaskValidator(DefaultLimits())

	payload := validTaskPayload()
	payload["farmer_id"] = "not-a-uuid"

	res := v.ValidateCreate(payload)

	assert.False(t, res.Valid)
	assert.True(t, res.HasCode(CodeInvalidUUID))
}

// Any field rejected on update must also be rejected on create: updates run
// the same field checks minus requiredness.
func TestTaskUpdateIsSubsetOfCreate(t *testing.T) {
	v := NewTaskValidator(DefaultLimits())

	bad := map[string]interface{}{
		"title":  "ab",
		"status": "unknown_status",
	}

	updateRes := v.ValidateUpdate(bad)
	createRes := v.ValidateCreate(bad)

	assert.False(t, updateRes.Valid)
	for _, e := range updateRes.Errors {
		assert.True(t, createRes.HasCode(e.Code))
	}
}

// A payload that passes create must also pass update unchanged.
func TestTaskValidCreatePayloadPassesUpdate(t *testing.T) {
	v := NewTaskValidator(DefaultLimits())
	payload := validTaskPayload()

	assert.True(t, v.ValidateCreate(payload).Valid)
	assert.True(t, v.ValidateUpdate(payload).Valid)
}

func TestTaskUpdatePartialPayload(t *testing.T) {
	v := NewTaskValidator(DefaultLimits())

	res := v.ValidateUpdate(map[string]interface{}{"status": "in_progress"})

	assert.True(t, res.Valid)
}

func TestTaskTransitions(t *testing.T) {
	v := NewTaskValidator(DefaultLimits())

	assert.True(t, v.ValidateStatusTransition("pending", "in_progress").Valid)
	assert.True(t, v.ValidateStatusTransition("pending", "completed").Valid)
	assert.True(t, v.ValidateStatusTransition("in_progress", "pending").Valid)

	res := v.ValidateStatusTransition("completed", "pending")
	assert.False(t, res.Valid)
	assert.True(t, res.HasCode(CodeInvalidTransition))
}

func TestTaskCompletedAtInFuture(t *testing.T) {
	v := NewTaskValidator(DefaultLimits())

	payload := validTaskPayload()
	payload["completed_at"] = time.Now().AddDate(0, 0, 1)

	res := v.ValidateCreate(payload)

	assert.False(t, res.Valid)
	assert.True(t, res.HasCode(CodeInvalidDateRange))
}
