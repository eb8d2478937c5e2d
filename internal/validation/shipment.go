package validation

import (
	"fmt"
	"regexp"
	"time"

	"agrilink/marketplace-backend/internal/models"
	"agrilink/marketplace-backend/pkg/workflows"
)

var shipmentStatuses = []string{
	string(models.ShipmentStatusPending),
	string(models.ShipmentStatusPickedUp),
	string(models.ShipmentStatusInTransit),
	string(models.ShipmentStatusOutForDelivery),
	string(models.ShipmentStatusDelivered),
	string(models.ShipmentStatusFailed),
	string(models.ShipmentStatusReturned),
}

// Known carrier tracking-number formats: UPS, FedEx, and the generic domestic
// format regional carriers use.
var trackingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^1Z[A-Z0-9]{16}$`),
	regexp.MustCompile(`^\d{12}(\d{3})?$`),
	regexp.MustCompile(`^[A-Z0-9]{8,20}$`),
}

var shipmentRequiredFields = []string{"order_id", "carrier", "tracking_number", "weight_kg"}

// ShipmentValidator checks Shipment payloads.
type ShipmentValidator struct {
	limits  Limits
	machine *workflows.StateMachine
}

func NewShipmentValidator(limits Limits) *ShipmentValidator {
	return &ShipmentValidator{
		limits: limits,
		machine: workflows.NewStateMachine(map[string][]string{
			string(models.ShipmentStatusPending):        {string(models.ShipmentStatusPickedUp), string(models.ShipmentStatusFailed)},
			string(models.ShipmentStatusPickedUp):       {string(models.ShipmentStatusInTransit), string(models.ShipmentStatusFailed)},
			string(models.ShipmentStatusInTransit):      {string(models.ShipmentStatusOutForDelivery), string(models.ShipmentStatusFailed)},
			string(models.ShipmentStatusOutForDelivery): {string(models.ShipmentStatusDelivered), string(models.ShipmentStatusFailed)},
			string(models.ShipmentStatusDelivered):      {},
			string(models.ShipmentStatusFailed):         {string(models.ShipmentStatusReturned), string(models.ShipmentStatusPending)},
			string(models.ShipmentStatusReturned):       {},
		}),
	}
}

func (v *ShipmentValidator) EntityType() string { return EntityShipment }

func (v *ShipmentValidator) ValidateCreate(payload map[string]interface{}) Result {
	res := OK()
	res.addAll(requireFields(payload, shipmentRequiredFields))
	res.merge(v.validateFields(payload))
	return res
}

func (v *ShipmentValidator) ValidateUpdate(payload map[string]interface{}) Result {
	return v.validateFields(payload)
}

func (v *ShipmentValidator) ValidateStatusTransition(current, next string) Result {
	return validateTransition(v.machine, current, next)
}

func (v *ShipmentValidator) validateFields(payload map[string]interface{}) Result {
	res := OK()

	checkUUIDField(&res, payload, "order_id")
	checkStringField(&res, payload, "carrier", 2, 50)

	if tracking, ok := checkStringField(&res, payload, "tracking_number", 8, 20); ok {
		matched := false
		for _, p := range trackingPatterns {
			if p.MatchString(tracking) {
				matched = true
				break
			}
		}
		if !matched {
			res.add("tracking_number", "tracking_number does not match any known carrier format", CodeInvalidTrackingNumber)
		}
	}

	if weight, ok := checkNumberField(&res, payload, "weight_kg"); ok {
		res.addError(checkPositive("weight_kg", weight))
		if weight > v.limits.ShipmentMaxWeightKg {
			res.add("weight_kg",
				fmt.Sprintf("weight_kg cannot exceed %g", v.limits.ShipmentMaxWeightKg),
				CodeOutOfRange)
		}
	}

	status, hasStatus := checkEnumField(&res, payload, "status", shipmentStatuses)

	checkDateField(&res, payload, "estimated_delivery_date")

	actual, hasActual := checkDateField(&res, payload, "actual_delivery_date")
	if hasActual {
		res.addError(checkPastDate("actual_delivery_date", actual, time.Now()))
	}
	if hasStatus && status == string(models.ShipmentStatusDelivered) && !hasActual {
		res.add("actual_delivery_date", "actual_delivery_date is required when status is delivered", CodeRequired)
	}

	return res
}
