package validation

import (
	"regexp"

	"agrilink/marketplace-backend/internal/models"
	"agrilink/marketplace-backend/pkg/workflows"
)

var profileStatuses = []string{
	string(models.ProfileStatusActive),
	string(models.ProfileStatusSuspended),
	string(models.ProfileStatusDeactivated),
}

var profileRoles = []string{
	string(models.RoleFarmer),
	string(models.RoleBuyer),
	string(models.RoleRetailer),
	string(models.RoleInspector),
}

var phonePattern = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

var profileRequiredFields = []string{"full_name", "role"}

// ProfileValidator checks Profile payloads.
type ProfileValidator struct {
	limits  Limits
	machine *workflows.StateMachine
}

func NewProfileValidator(limits Limits) *ProfileValidator {
	return &ProfileValidator{
		limits: limits,
		machine: workflows.NewStateMachine(map[string][]string{
			string(models.ProfileStatusActive):      {string(models.ProfileStatusSuspended), string(models.ProfileStatusDeactivated)},
			string(models.ProfileStatusSuspended):   {string(models.ProfileStatusActive), string(models.ProfileStatusDeactivated)},
			string(models.ProfileStatusDeactivated): {},
		}),
	}
}

func (v *ProfileValidator) EntityType() string { return EntityProfile }

func (v *ProfileValidator) ValidateCreate(payload map[string]interface{}) Result {
	res := OK()
	res.addAll(requireFields(payload, profileRequiredFields))
	res.merge(v.validateFields(payload))
	return res
}

func (v *ProfileValidator) ValidateUpdate(payload map[string]interface{}) Result {
	return v.validateFields(payload)
}

func (v *ProfileValidator) ValidateStatusTransition(current, next string) Result {
	return validateTransition(v.machine, current, next)
}

func (v *ProfileValidator) validateFields(payload map[string]interface{}) Result {
	res := OK()

	if name, ok := checkStringField(&res, payload, "full_name", 2, 100); ok {
		res.addAll(checkContent("full_name", name))
	}

	if phone, ok := checkStringField(&res, payload, "phone", 0, 16); ok && phone != "" {
		if !phonePattern.MatchString(phone) {
			res.add("phone", "phone must be a valid phone number", CodeInvalidFormat)
		}
	}

	checkEnumField(&res, payload, "role", profileRoles)
	checkEnumField(&res, payload, "status", profileStatuses)
	checkStringField(&res, payload, "region", 0, 100)
	checkURLField(&res, payload, "avatar_url")

	return res
}
