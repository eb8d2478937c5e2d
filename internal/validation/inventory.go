package validation

import (
	"time"

	"agrilink/marketplace-backend/internal/models"
	"agrilink/marketplace-backend/pkg/workflows"
)

var inventoryStatuses = []string{
	string(models.InventoryStatusInStock),
	string(models.InventoryStatusLowStock),
	string(models.InventoryStatusOutOfStock),
}

var inventoryRequiredFields = []string{"retailer_id", "product_id", "quantity", "reorder_level"}

// RetailerInventoryValidator checks RetailerInventory payloads.
type RetailerInventoryValidator struct {
	limits  Limits
	machine *workflows.StateMachine
}

func NewRetailerInventoryValidator(limits Limits) *RetailerInventoryValidator {
	return &RetailerInventoryValidator{
		limits: limits,
		machine: workflows.NewStateMachine(map[string][]string{
			string(models.InventoryStatusInStock):    {string(models.InventoryStatusLowStock), string(models.InventoryStatusOutOfStock)},
			string(models.InventoryStatusLowStock):   {string(models.InventoryStatusInStock), string(models.InventoryStatusOutOfStock)},
			string(models.InventoryStatusOutOfStock): {string(models.InventoryStatusInStock), string(models.InventoryStatusLowStock)},
		}),
	}
}

func (v *RetailerInventoryValidator) EntityType() string { return EntityRetailerInventory }

func (v *RetailerInventoryValidator) ValidateCreate(payload map[string]interface{}) Result {
	res := OK()
	res.addAll(requireFields(payload, inventoryRequiredFields))
	res.merge(v.validateFields(payload))
	return res
}

func (v *RetailerInventoryValidator) ValidateUpdate(payload map[string]interface{}) Result {
	return v.validateFields(payload)
}

func (v *RetailerInventoryValidator) ValidateStatusTransition(current, next string) Result {
	return validateTransition(v.machine, current, next)
}

func (v *RetailerInventoryValidator) validateFields(payload map[string]interface{}) Result {
	res := OK()

	checkUUIDField(&res, payload, "retailer_id")
	checkUUIDField(&res, payload, "product_id")

	qty, hasQty := checkNumberField(&res, payload, "quantity")
	if hasQty && qty < 0 {
		res.add("quantity", "quantity cannot be negative", CodeInvalidNumber)
	}
	if reorder, ok := checkNumberField(&res, payload, "reorder_level"); ok && reorder < 0 {
		res.add("reorder_level", "reorder_level cannot be negative", CodeInvalidNumber)
	}

	status, hasStatus := checkEnumField(&res, payload, "status", inventoryStatuses)
	if hasStatus && hasQty && status == string(models.InventoryStatusOutOfStock) && qty > 0 {
		res.add("status", "out_of_stock requires a zero quantity", CodeOutOfRange)
	}

	if restock, ok := checkDateField(&res, payload, "last_restock"); ok {
		res.addError(checkPastDate("last_restock", restock, time.Now()))
	}

	return res
}
