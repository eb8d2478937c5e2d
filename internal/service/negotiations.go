package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"agrilink/marketplace-backend/internal/models"
	"agrilink/marketplace-backend/internal/repository"
	"agrilink/marketplace-backend/internal/validation"
	"agrilink/marketplace-backend/pkg/query"
)

// NegotiationService adds haggling operations over the generic envelope.
type NegotiationService struct {
	*Service[models.Negotiation]
}

func NewNegotiationService(repo *repository.Repository[models.Negotiation], validator validation.Validator, logger *zap.Logger) *NegotiationService {
	return &NegotiationService{Service: New(validation.EntityNegotiation, repo, validator, logger)}
}

var openNegotiationStatuses = []string{
	string(models.NegotiationStatusPending),
	string(models.NegotiationStatusCounterOffered),
}

// ListOpenForListing lists the negotiations still in play for a listing.
func (s *NegotiationService) ListOpenForListing(ctx context.Context, listingID uuid.UUID) ListResponse[models.Negotiation] {
	return s.List(ctx, query.Options{
		Filters: []query.Filter{
			query.Eq("listing_id", listingID),
			query.In("status", openNegotiationStatuses),
		},
		Sorts: []query.Sort{{Column: "updated_at", Ascending: false}},
	})
}

// CounterOffer replaces the proposed price with a counter, moving the
// negotiation to counter_offered and spending one of its counter-offer
// budget. Both the price rules and the transition gate apply.
func (s *NegotiationService) CounterOffer(ctx context.Context, id uuid.UUID, proposedPrice float64) ServiceResponse[models.Negotiation] {
	current := s.Get(ctx, id)
	if current.Error != nil {
		return current
	}
	neg := current.Data

	payload := map[string]interface{}{
		"original_price":      neg.OriginalPrice,
		"proposed_price":      proposedPrice,
		"counter_offer_count": neg.CounterOfferCount + 1,
	}
	if result := s.validator.ValidateUpdate(payload); !result.Valid {
		return fail[models.Negotiation](validationError(result))
	}
	if result := s.validator.ValidateStatusTransition(string(neg.Status), string(models.NegotiationStatusCounterOffered)); !result.Valid {
		return fail[models.Negotiation](transitionError(result))
	}

	updated, err := s.repo.Update(ctx, id, map[string]interface{}{
		"proposed_price":      proposedPrice,
		"counter_offer_count": neg.CounterOfferCount + 1,
		"status":              string(models.NegotiationStatusCounterOffered),
	})
	if err != nil {
		return fail[models.Negotiation](s.logRepoError("CounterOffer", err))
	}
	return ok(updated)
}

// ExpireOverdue moves every open negotiation whose expiry has passed to
// expired, one validated transition at a time. It returns how many were
// expired and the ids that failed.
func (s *NegotiationService) ExpireOverdue(ctx context.Context, now time.Time) (int, []uuid.UUID) {
	resp := s.List(ctx, query.Options{
		Filters: []query.Filter{
			query.In("status", openNegotiationStatuses),
			{Column: "expires_at", Operator: query.OpLt, Value: now},
		},
	})
	if resp.Error != nil {
		return 0, nil
	}

	expired := 0
	var failed []uuid.UUID
	for _, neg := range resp.Data {
		if r := s.ChangeStatus(ctx, neg.ID, string(models.NegotiationStatusExpired)); r.Error != nil {
			failed = append(failed, neg.ID)
			continue
		}
		expired++
	}
	return expired, failed
}
