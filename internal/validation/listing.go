package validation

import (
	"agrilink/marketplace-backend/internal/models"
	"agrilink/marketplace-backend/pkg/workflows"
)

var listingStatuses = []string{
	string(models.ListingStatusDraft),
	string(models.ListingStatusActive),
	string(models.ListingStatusSoldOut),
	string(models.ListingStatusSuspended),
	string(models.ListingStatusArchived),
}

var listingRequiredFields = []string{"farmer_id", "product_id", "title", "price_per_unit", "quantity_available"}

// ListingValidator checks ProductListing payloads.
type ListingValidator struct {
	limits  Limits
	machine *workflows.StateMachine
}

func NewListingValidator(limits Limits) *ListingValidator {
	return &ListingValidator{
		limits: limits,
		machine: workflows.NewStateMachine(map[string][]string{
			string(models.ListingStatusDraft):     {string(models.ListingStatusActive), string(models.ListingStatusArchived)},
			string(models.ListingStatusActive):    {string(models.ListingStatusSoldOut), string(models.ListingStatusSuspended), string(models.ListingStatusArchived)},
			string(models.ListingStatusSoldOut):   {string(models.ListingStatusActive), string(models.ListingStatusArchived)},
			string(models.ListingStatusSuspended): {string(models.ListingStatusActive), string(models.ListingStatusArchived)},
			string(models.ListingStatusArchived):  {},
		}),
	}
}

func (v *ListingValidator) EntityType() string { return EntityListing }

func (v *ListingValidator) ValidateCreate(payload map[string]interface{}) Result {
	res := OK()
	res.addAll(requireFields(payload, listingRequiredFields))
	res.merge(v.validateFields(payload))
	return res
}

func (v *ListingValidator) ValidateUpdate(payload map[string]interface{}) Result {
	return v.validateFields(payload)
}

func (v *ListingValidator) ValidateStatusTransition(current, next string) Result {
	return validateTransition(v.machine, current, next)
}

func (v *ListingValidator) validateFields(payload map[string]interface{}) Result {
	res := OK()

	checkUUIDField(&res, payload, "farmer_id")
	checkUUIDField(&res, payload, "product_id")

	if title, ok := checkStringField(&res, payload, "title", 3, 120); ok {
		res.addAll(checkContent("title", title))
	}
	if desc, ok := checkStringField(&res, payload, "description", 0, 2000); ok {
		res.addAll(checkContent("description", desc))
	}

	if price, ok := checkNumberField(&res, payload, "price_per_unit"); ok {
		res.addError(checkPositive("price_per_unit", price))
		if price > v.limits.MaxListingPrice {
			res.add("price_per_unit", "price_per_unit exceeds the maximum listing price", CodeAmountTooHigh)
		}
	}
	if qty, ok := checkNumberField(&res, payload, "quantity_available"); ok {
		res.addError(checkRange("quantity_available", qty, 0, v.limits.MaxListingQuantity))
	}

	checkEnumField(&res, payload, "status", listingStatuses)
	checkDateField(&res, payload, "harvest_date")

	if images, present := payload["images"]; present && images != nil {
		res.addError(checkArrayLength("images", images, 0, v.limits.MaxListingImages))
	}

	return res
}
