package validation

import (
	"time"

	"agrilink/marketplace-backend/pkg/workflows"
)

var coldChainRequiredFields = []string{"shipment_id", "device_id", "temperature_celsius", "recorded_at"}

// ColdChainLogValidator checks ColdChainLog payloads. Readings carry no
// status lifecycle; readings outside the sane sensor envelope are rejected
// outright, compliance against the product's transit band is a service
// concern.
type ColdChainLogValidator struct {
	limits  Limits
	machine *workflows.StateMachine
}

func NewColdChainLogValidator(limits Limits) *ColdChainLogValidator {
	return &ColdChainLogValidator{
		limits:  limits,
		machine: workflows.NewStateMachine(map[string][]string{}),
	}
}

func (v *ColdChainLogValidator) EntityType() string { return EntityColdChainLog }

func (v *ColdChainLogValidator) ValidateCreate(payload map[string]interface{}) Result {
	res := OK()
	res.addAll(requireFields(payload, coldChainRequiredFields))
	res.merge(v.validateFields(payload))
	return res
}

func (v *ColdChainLogValidator) ValidateUpdate(payload map[string]interface{}) Result {
	return v.validateFields(payload)
}

func (v *ColdChainLogValidator) ValidateStatusTransition(current, next string) Result {
	return validateTransition(v.machine, current, next)
}

func (v *ColdChainLogValidator) validateFields(payload map[string]interface{}) Result {
	res := OK()

	checkUUIDField(&res, payload, "shipment_id")
	checkStringField(&res, payload, "device_id", 2, 64)

	if temp, ok := checkNumberField(&res, payload, "temperature_celsius"); ok {
		res.addError(checkRange("temperature_celsius", temp, -40, 60))
	}
	if humidity, ok := checkNumberField(&res, payload, "humidity_percent"); ok {
		res.addError(checkRange("humidity_percent", humidity, 0, 100))
	}

	if recorded, ok := checkDateField(&res, payload, "recorded_at"); ok {
		res.addError(checkPastDate("recorded_at", recorded, time.Now()))
	}

	return res
}
