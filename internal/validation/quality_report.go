package validation

import (
	"fmt"
	"time"

	"agrilink/marketplace-backend/internal/models"
	"agrilink/marketplace-backend/pkg/workflows"
)

var qualityReportStatuses = []string{
	string(models.QualityReportStatusPending),
	string(models.QualityReportStatusUnderReview),
	string(models.QualityReportStatusApproved),
	string(models.QualityReportStatusRejected),
}

// gradeBands maps each grade to its inclusive score band. A report whose
// score falls outside its asserted grade's band is inconsistent.
var gradeBands = map[string][2]float64{
	string(models.GradeAPlus): {95, 100},
	string(models.GradeA):     {85, 94},
	string(models.GradeBPlus): {75, 84},
	string(models.GradeB):     {65, 74},
	string(models.GradeC):     {50, 64},
	string(models.GradeD):     {0, 49},
}

var qualityGrades = []string{
	string(models.GradeAPlus),
	string(models.GradeA),
	string(models.GradeBPlus),
	string(models.GradeB),
	string(models.GradeC),
	string(models.GradeD),
}

var qualityReportRequiredFields = []string{"listing_id", "inspector_id", "overall_score", "grade"}

// QualityReportValidator checks QualityReport payloads.
type QualityReportValidator struct {
	limits  Limits
	machine *workflows.StateMachine
}

func NewQualityReportValidator(limits Limits) *QualityReportValidator {
	return &QualityReportValidator{
		limits: limits,
		machine: workflows.NewStateMachine(map[string][]string{
			string(models.QualityReportStatusPending):     {string(models.QualityReportStatusUnderReview), string(models.QualityReportStatusRejected)},
			string(models.QualityReportStatusUnderReview): {string(models.QualityReportStatusApproved), string(models.QualityReportStatusRejected), string(models.QualityReportStatusPending)},
			string(models.QualityReportStatusApproved):    {},
			string(models.QualityReportStatusRejected):    {string(models.QualityReportStatusPending)},
		}),
	}
}

func (v *QualityReportValidator) EntityType() string { return EntityQualityReport }

func (v *QualityReportValidator) ValidateCreate(payload map[string]interface{}) Result {
	res := OK()
	res.addAll(requireFields(payload, qualityReportRequiredFields))
	res.merge(v.validateFields(payload))
	return res
}

func (v *QualityReportValidator) ValidateUpdate(payload map[string]interface{}) Result {
	return v.validateFields(payload)
}

func (v *QualityReportValidator) ValidateStatusTransition(current, next string) Result {
	return validateTransition(v.machine, current, next)
}

func (v *QualityReportValidator) validateFields(payload map[string]interface{}) Result {
	res := OK()

	checkUUIDField(&res, payload, "listing_id")
	checkUUIDField(&res, payload, "inspector_id")

	score, hasScore := checkNumberField(&res, payload, "overall_score")
	if hasScore {
		res.addError(checkRange("overall_score", score, 0, 100))
	}

	grade, hasGrade := checkEnumField(&res, payload, "grade", qualityGrades)
	if hasGrade && hasScore {
		if band, ok := gradeBands[grade]; ok && (score < band[0] || score > band[1]) {
			res.add("grade",
				fmt.Sprintf("grade %s requires a score between %g and %g", grade, band[0], band[1]),
				CodeInconsistentGrade)
		}
	}

	if defect, ok := checkNumberField(&res, payload, "defect_percentage"); ok {
		res.addError(checkRange("defect_percentage", defect, 0, 100))
		if defect > v.limits.MaxDefectPercentage {
			res.add("defect_percentage",
				fmt.Sprintf("defect_percentage cannot exceed %g%%", v.limits.MaxDefectPercentage),
				CodeOutOfRange)
		}
	}

	checkStringField(&res, payload, "notes", 0, 2000)
	checkEnumField(&res, payload, "status", qualityReportStatuses)

	if inspected, ok := checkDateField(&res, payload, "inspected_at"); ok {
		res.addError(checkPastDate("inspected_at", inspected, time.Now()))
	}

	return res
}
