package validation

import (
	"agrilink/marketplace-backend/internal/models"
	"agrilink/marketplace-backend/pkg/workflows"
)

var messageStatuses = []string{
	string(models.MessageStatusSent),
	string(models.MessageStatusDelivered),
	string(models.MessageStatusRead),
}

var messageRequiredFields = []string{"sender_id", "recipient_id", "content"}

// MessageValidator checks Message payloads, including the spam and
// inappropriate-content heuristics on the body.
type MessageValidator struct {
	limits  Limits
	machine *workflows.StateMachine
}

func NewMessageValidator(limits Limits) *MessageValidator {
	return &MessageValidator{
		limits: limits,
		machine: workflows.NewStateMachine(map[string][]string{
			string(models.MessageStatusSent):      {string(models.MessageStatusDelivered), string(models.MessageStatusRead)},
			string(models.MessageStatusDelivered): {string(models.MessageStatusRead)},
			string(models.MessageStatusRead):      {},
		}),
	}
}

func (v *MessageValidator) EntityType() string { return EntityMessage }

func (v *MessageValidator) ValidateCreate(payload map[string]interface{}) Result {
	res := OK()
	res.addAll(requireFields(payload, messageRequiredFields))
	res.merge(v.validateFields(payload))
	return res
}

func (v *MessageValidator) ValidateUpdate(payload map[string]interface{}) Result {
	return v.validateFields(payload)
}

func (v *MessageValidator) ValidateStatusTransition(current, next string) Result {
	return validateTransition(v.machine, current, next)
}

func (v *MessageValidator) validateFields(payload map[string]interface{}) Result {
	res := OK()

	sender, hasSender := checkUUIDField(&res, payload, "sender_id")
	recipient, hasRecipient := checkUUIDField(&res, payload, "recipient_id")
	if hasSender && hasRecipient && sender == recipient {
		res.add("recipient_id", "sender and recipient cannot be the same profile", CodeInvalidFormat)
	}
	checkUUIDField(&res, payload, "listing_id")
	checkUUIDField(&res, payload, "order_id")

	if content, ok := checkStringField(&res, payload, "content", 1, v.limits.MessageMaxLength); ok {
		res.addAll(checkContent("content", content))
	}

	checkEnumField(&res, payload, "status", messageStatuses)

	return res
}
