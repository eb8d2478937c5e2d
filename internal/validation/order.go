package validation

import (
	"math"

	"agrilink/marketplace-backend/internal/models"
	"agrilink/marketplace-backend/pkg/workflows"
)

var orderStatuses = []string{
	string(models.OrderStatusPending),
	string(models.OrderStatusConfirmed),
	string(models.OrderStatusPreparing),
	string(models.OrderStatusShipped),
	string(models.OrderStatusDelivered),
	string(models.OrderStatusCancelled),
}

var orderRequiredFields = []string{"buyer_id", "seller_id", "total_amount"}

// OrderValidator checks Order payloads.
type OrderValidator struct {
	limits  Limits
	machine *workflows.StateMachine
}

func NewOrderValidator(limits Limits) *OrderValidator {
	return &OrderValidator{
		limits: limits,
		machine: workflows.NewStateMachine(map[string][]string{
			string(models.OrderStatusPending):   {string(models.OrderStatusConfirmed), string(models.OrderStatusCancelled)},
			string(models.OrderStatusConfirmed): {string(models.OrderStatusPreparing), string(models.OrderStatusCancelled)},
			string(models.OrderStatusPreparing): {string(models.OrderStatusShipped), string(models.OrderStatusCancelled)},
			string(models.OrderStatusShipped):   {string(models.OrderStatusDelivered)},
			string(models.OrderStatusDelivered): {},
			string(models.OrderStatusCancelled): {},
		}),
	}
}

func (v *OrderValidator) EntityType() string { return EntityOrder }

func (v *OrderValidator) ValidateCreate(payload map[string]interface{}) Result {
	res := OK()
	res.addAll(requireFields(payload, orderRequiredFields))
	res.merge(v.validateFields(payload))
	return res
}

func (v *OrderValidator) ValidateUpdate(payload map[string]interface{}) Result {
	return v.validateFields(payload)
}

func (v *OrderValidator) ValidateStatusTransition(current, next string) Result {
	return validateTransition(v.machine, current, next)
}

func (v *OrderValidator) validateFields(payload map[string]interface{}) Result {
	res := OK()

	buyer, hasBuyer := checkUUIDField(&res, payload, "buyer_id")
	seller, hasSeller := checkUUIDField(&res, payload, "seller_id")
	if hasBuyer && hasSeller && buyer == seller {
		res.add("seller_id", "buyer and seller cannot be the same profile", CodeInvalidFormat)
	}

	if total, ok := checkNumberField(&res, payload, "total_amount"); ok {
		res.addError(checkPositive("total_amount", total))
		if total > v.limits.MaxOrderAmount {
			res.add("total_amount", "total_amount exceeds the maximum order amount", CodeAmountTooHigh)
		}
	}

	checkEnumField(&res, payload, "status", orderStatuses)
	checkStringField(&res, payload, "delivery_note", 0, 500)

	return res
}

var orderItemRequiredFields = []string{"order_id", "listing_id", "quantity", "unit_price"}

// OrderItemValidator checks OrderItem payloads. Items carry no status.
type OrderItemValidator struct {
	limits  Limits
	machine *workflows.StateMachine
}

func NewOrderItemValidator(limits Limits) *OrderItemValidator {
	return &OrderItemValidator{
		limits:  limits,
		machine: workflows.NewStateMachine(map[string][]string{}),
	}
}

func (v *OrderItemValidator) EntityType() string { return EntityOrderItem }

func (v *OrderItemValidator) ValidateCreate(payload map[string]interface{}) Result {
	res := OK()
	res.addAll(requireFields(payload, orderItemRequiredFields))
	res.merge(v.validateFields(payload))
	return res
}

func (v *OrderItemValidator) ValidateUpdate(payload map[string]interface{}) Result {
	return v.validateFields(payload)
}

func (v *OrderItemValidator) ValidateStatusTransition(current, next string) Result {
	return validateTransition(v.machine, current, next)
}

func (v *OrderItemValidator) validateFields(payload map[string]interface{}) Result {
	res := OK()

	checkUUIDField(&res, payload, "order_id")
	checkUUIDField(&res, payload, "listing_id")

	qty, hasQty := checkNumberField(&res, payload, "quantity")
	if hasQty {
		res.addError(checkPositive("quantity", qty))
	}
	price, hasPrice := checkNumberField(&res, payload, "unit_price")
	if hasPrice {
		res.addError(checkPositive("unit_price", price))
	}
	if subtotal, ok := checkNumberField(&res, payload, "subtotal"); ok {
		res.addError(checkPositive("subtotal", subtotal))
		if hasQty && hasPrice && math.Abs(subtotal-qty*price) > 0.01 {
			res.add("subtotal", "subtotal must equal quantity * unit_price", CodeOutOfRange)
		}
	}

	return res
}
