package validation

import (
	"agrilink/marketplace-backend/internal/models"
	"agrilink/marketplace-backend/pkg/workflows"
)

var disputeStatuses = []string{
	string(models.DisputeStatusOpen),
	string(models.DisputeStatusUnderReview),
	string(models.DisputeStatusEscalated),
	string(models.DisputeStatusResolved),
	string(models.DisputeStatusClosed),
}

var disputeRequiredFields = []string{"order_id", "raised_by_id", "reason"}

// DisputeValidator checks Dispute payloads.
type DisputeValidator struct {
	limits  Limits
	machine *workflows.StateMachine
}

func NewDisputeValidator(limits Limits) *DisputeValidator {
	return &DisputeValidator{
		limits: limits,
		machine: workflows.NewStateMachine(map[string][]string{
			string(models.DisputeStatusOpen):        {string(models.DisputeStatusUnderReview), string(models.DisputeStatusClosed)},
			string(models.DisputeStatusUnderReview): {string(models.DisputeStatusResolved), string(models.DisputeStatusEscalated), string(models.DisputeStatusClosed)},
			string(models.DisputeStatusEscalated):   {string(models.DisputeStatusResolved), string(models.DisputeStatusClosed)},
			string(models.DisputeStatusResolved):    {string(models.DisputeStatusClosed)},
			string(models.DisputeStatusClosed):      {},
		}),
	}
}

func (v *DisputeValidator) EntityType() string { return EntityDispute }

func (v *DisputeValidator) ValidateCreate(payload map[string]interface{}) Result {
	res := OK()
	res.addAll(requireFields(payload, disputeRequiredFields))
	res.merge(v.validateFields(payload))
	return res
}

func (v *DisputeValidator) ValidateUpdate(payload map[string]interface{}) Result {
	return v.validateFields(payload)
}

func (v *DisputeValidator) ValidateStatusTransition(current, next string) Result {
	return validateTransition(v.machine, current, next)
}

func (v *DisputeValidator) validateFields(payload map[string]interface{}) Result {
	res := OK()

	checkUUIDField(&res, payload, "order_id")
	checkUUIDField(&res, payload, "raised_by_id")
	checkUUIDField(&res, payload, "resolved_by")
	checkStringField(&res, payload, "reason", 5, 200)

	if desc, ok := checkStringField(&res, payload, "description", 0, 2000); ok {
		res.addAll(checkContent("description", desc))
	}
	checkStringField(&res, payload, "resolution", 0, 2000)

	if evidence, present := payload["evidence"]; present && evidence != nil {
		res.addError(checkArrayLength("evidence", evidence, 0, v.limits.MaxDisputeEvidence))
	}

	checkEnumField(&res, payload, "status", disputeStatuses)

	return res
}
