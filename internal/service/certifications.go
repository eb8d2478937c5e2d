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

// CertificationService adds certification lifecycle helpers over the generic
// envelope.
type CertificationService struct {
	*Service[models.Certification]
}

func NewCertificationService(repo *repository.Repository[models.Certification], validator validation.Validator, logger *zap.Logger) *CertificationService {
	return &CertificationService{Service: New(validation.EntityCertification, repo, validator, logger)}
}

// ListByFarmer lists a farmer's certifications, soonest expiry first.
func (s *CertificationService) ListByFarmer(ctx context.Context, farmerID uuid.UUID) ListResponse[models.Certification] {
	return s.List(ctx, query.Options{
		Filters: []query.Filter{query.Eq("farmer_id", farmerID)},
		Sorts:   []query.Sort{{Column: "expiry_date", Ascending: true}},
	})
}

// ExpireOverdue moves verified certifications whose expiry date has passed to
// expired, through the transition gate. It returns how many were expired and
// the ids that failed.
func (s *CertificationService) ExpireOverdue(ctx context.Context, now time.Time) (int, []uuid.UUID) {
	resp := s.List(ctx, query.Options{
		Filters: []query.Filter{
			query.Eq("status", string(models.CertificationStatusVerified)),
			{Column: "expiry_date", Operator: query.OpLt, Value: now},
		},
	})
	if resp.Error != nil {
		return 0, nil
	}

	expired := 0
	var failed []uuid.UUID
	for _, cert := range resp.Data {
		if r := s.ChangeStatus(ctx, cert.ID, string(models.CertificationStatusExpired)); r.Error != nil {
			failed = append(failed, cert.ID)
			continue
		}
		expired++
	}
	return expired, failed
}
