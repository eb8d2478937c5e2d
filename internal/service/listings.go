package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"agrilink/marketplace-backend/internal/models"
	"agrilink/marketplace-backend/internal/repository"
	"agrilink/marketplace-backend/internal/validation"
	"agrilink/marketplace-backend/pkg/query"
)

// ListingService adds marketplace browsing helpers over the generic envelope.
type ListingService struct {
	*Service[models.ProductListing]
}

func NewListingService(repo *repository.Repository[models.ProductListing], validator validation.Validator, logger *zap.Logger) *ListingService {
	return &ListingService{Service: New(validation.EntityListing, repo, validator, logger)}
}

// ListActiveByFarmer lists a farmer's live listings.
func (s *ListingService) ListActiveByFarmer(ctx context.Context, farmerID uuid.UUID) ListResponse[models.ProductListing] {
	return s.List(ctx, query.Options{
		Filters: []query.Filter{
			query.Eq("farmer_id", farmerID),
			query.Eq("status", string(models.ListingStatusActive)),
		},
		Sorts: []query.Sort{{Column: "created_at", Ascending: false}},
	})
}

// Search lists active listings whose title matches the term,
// case-insensitively, newest first.
func (s *ListingService) Search(ctx context.Context, term string, page query.Pagination) ListResponse[models.ProductListing] {
	return s.List(ctx, query.Options{
		Filters: []query.Filter{
			query.Eq("status", string(models.ListingStatusActive)),
			{Column: "title", Operator: query.OpILike, Value: "%" + term + "%"},
		},
		Sorts:      []query.Sort{{Column: "created_at", Ascending: false}},
		Pagination: &page,
	})
}
