package validation

import (
	"fmt"
	"time"

	"agrilink/marketplace-backend/internal/models"
	"agrilink/marketplace-backend/pkg/workflows"
)

var certificationStatuses = []string{
	string(models.CertificationStatusPending),
	string(models.CertificationStatusVerified),
	string(models.CertificationStatusRejected),
	string(models.CertificationStatusExpired),
	string(models.CertificationStatusSuspended),
}

var certificationRequiredFields = []string{
	"farmer_id", "certifying_body", "certification_type",
	"certificate_number", "issue_date", "expiry_date",
}

// CertificationValidator checks Certification payloads. The validity window
// between issue and expiry is bounded below in months and above in years.
type CertificationValidator struct {
	limits  Limits
	machine *workflows.StateMachine
}

func NewCertificationValidator(limits Limits) *CertificationValidator {
	return &CertificationValidator{
		limits: limits,
		machine: workflows.NewStateMachine(map[string][]string{
			string(models.CertificationStatusPending):   {string(models.CertificationStatusVerified), string(models.CertificationStatusRejected)},
			string(models.CertificationStatusVerified):  {string(models.CertificationStatusExpired), string(models.CertificationStatusSuspended)},
			string(models.CertificationStatusRejected):  {string(models.CertificationStatusPending)},
			string(models.CertificationStatusExpired):   {string(models.CertificationStatusPending)},
			string(models.CertificationStatusSuspended): {string(models.CertificationStatusVerified), string(models.CertificationStatusRejected)},
		}),
	}
}

func (v *CertificationValidator) EntityType() string { return EntityCertification }

func (v *CertificationValidator) ValidateCreate(payload map[string]interface{}) Result {
	res := OK()
	res.addAll(requireFields(payload, certificationRequiredFields))
	res.merge(v.validateFields(payload))
	return res
}

func (v *CertificationValidator) ValidateUpdate(payload map[string]interface{}) Result {
	return v.validateFields(payload)
}

func (v *CertificationValidator) ValidateStatusTransition(current, next string) Result {
	return validateTransition(v.machine, current, next)
}

func (v *CertificationValidator) validateFields(payload map[string]interface{}) Result {
	res := OK()

	checkUUIDField(&res, payload, "farmer_id")
	checkUUIDField(&res, payload, "verified_by")
	checkStringField(&res, payload, "certifying_body", 2, 100)
	checkStringField(&res, payload, "certification_type", 2, 50)

	if number, ok := checkStringField(&res, payload, "certificate_number", 5, 50); ok {
		res.addError(checkAlphanumeric("certificate_number", number))
	}

	checkEnumField(&res, payload, "status", certificationStatuses)
	checkURLField(&res, payload, "document_url")

	issue, hasIssue := checkDateField(&res, payload, "issue_date")
	expiry, hasExpiry := checkDateField(&res, payload, "expiry_date")
	if hasIssue {
		res.addError(checkPastDate("issue_date", issue, time.Now()))
	}
	if hasIssue && hasExpiry {
		res.merge(v.validateValidityWindow(issue, expiry))
	}

	return res
}

// validateValidityWindow enforces issue < expiry and the bounded window.
func (v *CertificationValidator) validateValidityWindow(issue, expiry time.Time) Result {
	res := OK()
	if !expiry.After(issue) {
		res.add("expiry_date", "expiry_date must be after issue_date", CodeInvalidDateRange)
		return res
	}
	months := monthsBetween(issue, expiry)
	if months < v.limits.CertMinValidityMonths {
		res.add("expiry_date",
			fmt.Sprintf("certification must be valid for at least %d months", v.limits.CertMinValidityMonths),
			CodeInvalidDateRange)
	}
	if months > v.limits.CertMaxValidityYears*12 {
		res.add("expiry_date",
			fmt.Sprintf("certification cannot be valid for more than %d years", v.limits.CertMaxValidityYears),
			CodeInvalidDateRange)
	}
	return res
}
