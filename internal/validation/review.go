package validation

import (
	"math"

	"agrilink/marketplace-backend/internal/models"
	"agrilink/marketplace-backend/pkg/workflows"
)

var reviewStatuses = []string{
	string(models.ReviewStatusPending),
	string(models.ReviewStatusPublished),
	string(models.ReviewStatusFlagged),
	string(models.ReviewStatusRemoved),
}

var reviewRequiredFields = []string{"order_id", "reviewer_id", "reviewee_id", "rating"}

// ReviewValidator checks Review payloads.
type ReviewValidator struct {
	limits  Limits
	machine *workflows.StateMachine
}

func NewReviewValidator(limits Limits) *ReviewValidator {
	return &ReviewValidator{
		limits: limits,
		machine: workflows.NewStateMachine(map[string][]string{
			string(models.ReviewStatusPending):   {string(models.ReviewStatusPublished), string(models.ReviewStatusFlagged)},
			string(models.ReviewStatusPublished): {string(models.ReviewStatusFlagged), string(models.ReviewStatusRemoved)},
			string(models.ReviewStatusFlagged):   {string(models.ReviewStatusPublished), string(models.ReviewStatusRemoved)},
			string(models.ReviewStatusRemoved):   {},
		}),
	}
}

func (v *ReviewValidator) EntityType() string { return EntityReview }

func (v *ReviewValidator) ValidateCreate(payload map[string]interface{}) Result {
	res := OK()
	res.addAll(requireFields(payload, reviewRequiredFields))
	res.merge(v.validateFields(payload))
	return res
}

func (v *ReviewValidator) ValidateUpdate(payload map[string]interface{}) Result {
	return v.validateFields(payload)
}

func (v *ReviewValidator) ValidateStatusTransition(current, next string) Result {
	return validateTransition(v.machine, current, next)
}

func (v *ReviewValidator) validateFields(payload map[string]interface{}) Result {
	res := OK()

	checkUUIDField(&res, payload, "order_id")
	reviewer, hasReviewer := checkUUIDField(&res, payload, "reviewer_id")
	reviewee, hasReviewee := checkUUIDField(&res, payload, "reviewee_id")
	if hasReviewer && hasReviewee && reviewer == reviewee {
		res.add("reviewee_id", "reviewer cannot review themselves", CodeInvalidFormat)
	}

	if rating, ok := checkNumberField(&res, payload, "rating"); ok {
		if rating != math.Trunc(rating) {
			res.add("rating", "rating must be a whole number", CodeInvalidNumber)
		} else {
			res.addError(checkRange("rating", rating, 1, 5))
		}
	}

	if comment, ok := checkStringField(&res, payload, "comment", 0, v.limits.ReviewCommentMaxLength); ok {
		res.addAll(checkContent("comment", comment))
	}

	checkEnumField(&res, payload, "status", reviewStatuses)

	return res
}
