package validation

import (
	"time"

	"agrilink/marketplace-backend/internal/models"
	"agrilink/marketplace-backend/pkg/workflows"
)

var paymentStatuses = []string{
	string(models.PaymentStatusPending),
	string(models.PaymentStatusProcessing),
	string(models.PaymentStatusCompleted),
	string(models.PaymentStatusFailed),
	string(models.PaymentStatusRefunded),
}

var paymentMethods = []string{
	string(models.PaymentMethodMobileMoney),
	string(models.PaymentMethodBankTransfer),
	string(models.PaymentMethodCash),
	string(models.PaymentMethodEscrow),
}

var paymentRequiredFields = []string{"order_id", "payer_id", "amount", "method"}

// PaymentValidator checks Payment payloads.
type PaymentValidator struct {
	limits  Limits
	machine *workflows.StateMachine
}

func NewPaymentValidator(limits Limits) *PaymentValidator {
	return &PaymentValidator{
		limits: limits,
		machine: workflows.NewStateMachine(map[string][]string{
			string(models.PaymentStatusPending):    {string(models.PaymentStatusProcessing), string(models.PaymentStatusFailed)},
			string(models.PaymentStatusProcessing): {string(models.PaymentStatusCompleted), string(models.PaymentStatusFailed)},
			string(models.PaymentStatusCompleted):  {string(models.PaymentStatusRefunded)},
			string(models.PaymentStatusFailed):     {string(models.PaymentStatusPending)},
			string(models.PaymentStatusRefunded):   {},
		}),
	}
}

func (v *PaymentValidator) EntityType() string { return EntityPayment }

func (v *PaymentValidator) ValidateCreate(payload map[string]interface{}) Result {
	res := OK()
	res.addAll(requireFields(payload, paymentRequiredFields))
	res.merge(v.validateFields(payload))
	return res
}

func (v *PaymentValidator) ValidateUpdate(payload map[string]interface{}) Result {
	return v.validateFields(payload)
}

func (v *PaymentValidator) ValidateStatusTransition(current, next string) Result {
	return validateTransition(v.machine, current, next)
}

func (v *PaymentValidator) validateFields(payload map[string]interface{}) Result {
	res := OK()

	checkUUIDField(&res, payload, "order_id")
	checkUUIDField(&res, payload, "payer_id")

	if amount, ok := checkNumberField(&res, payload, "amount"); ok {
		res.addError(checkPositive("amount", amount))
		if amount > v.limits.MaxPaymentAmount {
			res.add("amount", "amount exceeds the maximum payment amount", CodeAmountTooHigh)
		}
	}

	checkEnumField(&res, payload, "method", paymentMethods)
	checkEnumField(&res, payload, "status", paymentStatuses)
	checkStringField(&res, payload, "reference", 0, 100)

	if completed, ok := checkDateField(&res, payload, "completed_at"); ok {
		res.addError(checkPastDate("completed_at", completed, time.Now()))
	}

	return res
}
