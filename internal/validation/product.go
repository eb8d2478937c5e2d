package validation

import (
	"agrilink/marketplace-backend/internal/models"
	"agrilink/marketplace-backend/pkg/workflows"
)

var productCategories = []string{
	string(models.CategoryVegetables),
	string(models.CategoryFruits),
	string(models.CategoryGrains),
	string(models.CategoryDairy),
	string(models.CategoryLivestock),
	string(models.CategoryPoultry),
	string(models.CategoryOther),
}

var productRequiredFields = []string{"name", "category", "unit"}

// ProductValidator checks Product payloads. Products have no status
// lifecycle; transition checks always fail with INVALID_STATUS.
type ProductValidator struct {
	limits  Limits
	machine *workflows.StateMachine
}

func NewProductValidator(limits Limits) *ProductValidator {
	return &ProductValidator{
		limits:  limits,
		machine: workflows.NewStateMachine(map[string][]string{}),
	}
}

func (v *ProductValidator) EntityType() string { return EntityProduct }

func (v *ProductValidator) ValidateCreate(payload map[string]interface{}) Result {
	res := OK()
	res.addAll(requireFields(payload, productRequiredFields))
	res.merge(v.validateFields(payload))
	return res
}

func (v *ProductValidator) ValidateUpdate(payload map[string]interface{}) Result {
	return v.validateFields(payload)
}

func (v *ProductValidator) ValidateStatusTransition(current, next string) Result {
	return validateTransition(v.machine, current, next)
}

func (v *ProductValidator) validateFields(payload map[string]interface{}) Result {
	res := OK()

	checkStringField(&res, payload, "name", 2, 100)
	checkEnumField(&res, payload, "category", productCategories)
	checkStringField(&res, payload, "unit", 1, 20)
	checkStringField(&res, payload, "description", 0, 2000)

	minTemp, hasMin := checkNumberField(&res, payload, "min_transit_temp_c")
	maxTemp, hasMax := checkNumberField(&res, payload, "max_transit_temp_c")
	if hasMin {
		res.addError(checkRange("min_transit_temp_c", minTemp, -40, 60))
	}
	if hasMax {
		res.addError(checkRange("max_transit_temp_c", maxTemp, -40, 60))
	}
	if hasMin && hasMax && minTemp >= maxTemp {
		res.add("max_transit_temp_c", "max_transit_temp_c must be greater than min_transit_temp_c", CodeOutOfRange)
	}

	return res
}
