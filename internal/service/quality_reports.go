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

// QualityReportService adds inspection-report listings over the generic
// envelope.
type QualityReportService struct {
	*Service[models.QualityReport]
}

func NewQualityReportService(repo *repository.Repository[models.QualityReport], validator validation.Validator, logger *zap.Logger) *QualityReportService {
	return &QualityReportService{Service: New(validation.EntityQualityReport, repo, validator, logger)}
}

// ListByListing lists the reports filed against one listing, newest first.
func (s *QualityReportService) ListByListing(ctx context.Context, listingID uuid.UUID) ListResponse[models.QualityReport] {
	return s.List(ctx, query.Options{
		Filters: []query.Filter{query.Eq("listing_id", listingID)},
		Sorts:   []query.Sort{{Column: "created_at", Ascending: false}},
	})
}

// ListByInspector lists an inspector's reports, newest first.
func (s *QualityReportService) ListByInspector(ctx context.Context, inspectorID uuid.UUID) ListResponse[models.QualityReport] {
	return s.List(ctx, query.Options{
		Filters: []query.Filter{query.Eq("inspector_id", inspectorID)},
		Sorts:   []query.Sort{{Column: "created_at", Ascending: false}},
	})
}

// ListApproved lists approved reports for a listing.
func (s *QualityReportService) ListApproved(ctx context.Context, listingID uuid.UUID) ListResponse[models.QualityReport] {
	return s.List(ctx, query.Options{
		Filters: []query.Filter{
			query.Eq("listing_id", listingID),
			query.Eq("status", string(models.QualityReportStatusApproved)),
		},
		Sorts: []query.Sort{{Column: "created_at", Ascending: false}},
	})
}
