package validation

import (
	"time"

	"agrilink/marketplace-backend/internal/models"
	"agrilink/marketplace-backend/pkg/workflows"
)

var taskStatuses = []string{
	string(models.TaskStatusPending),
	string(models.TaskStatusInProgress),
	string(models.TaskStatusCompleted),
}

var taskRequiredFields = []string{"farmer_id", "title", "due_date"}

// TaskValidator checks FarmTask payloads. Priority is derived from the due
// date, never stored, so no priority field is accepted here.
type TaskValidator struct {
	limits  Limits
	machine *workflows.StateMachine
}

func NewTaskValidator(limits Limits) *TaskValidator {
	return &TaskValidator{
		limits: limits,
		machine: workflows.NewStateMachine(map[string][]string{
			string(models.TaskStatusPending):    {string(models.TaskStatusInProgress), string(models.TaskStatusCompleted)},
			string(models.TaskStatusInProgress): {string(models.TaskStatusCompleted), string(models.TaskStatusPending)},
			string(models.TaskStatusCompleted):  {},
		}),
	}
}

func (v *TaskValidator) EntityType() string { return EntityTask }

func (v *TaskValidator) ValidateCreate(payload map[string]interface{}) Result {
	res := OK()
	res.addAll(requireFields(payload, taskRequiredFields))
	res.merge(v.validateFields(payload))
	return res
}

func (v *TaskValidator) ValidateUpdate(payload map[string]interface{}) Result {
	return v.validateFields(payload)
}

func (v *TaskValidator) ValidateStatusTransition(current, next string) Result {
	return validateTransition(v.machine, current, next)
}

func (v *TaskValidator) validateFields(payload map[string]interface{}) Result {
	res := OK()

	checkUUIDField(&res, payload, "farmer_id")
	checkUUIDField(&res, payload, "listing_id")
	checkStringField(&res, payload, "title", 3, 120)
	checkStringField(&res, payload, "description", 0, 2000)
	checkEnumField(&res, payload, "status", taskStatuses)
	checkDateField(&res, payload, "due_date")

	if completed, ok := checkDateField(&res, payload, "completed_at"); ok {
		res.addError(checkPastDate("completed_at", completed, time.Now()))
	}

	return res
}
