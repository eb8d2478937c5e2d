package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"agrilink/marketplace-backend/internal/service"
)

// ExpirySweeper periodically moves overdue negotiations and certifications to
// expired. Every change goes through ChangeStatus so the transition graphs
// still gate the sweep.
type ExpirySweeper struct {
	cron           *cron.Cron
	negotiations   *service.NegotiationService
	certifications *service.CertificationService
	logger         *zap.Logger
	schedule       string
}

// NewExpirySweeper creates a sweeper running on the given cron schedule
// (e.g. "@hourly").
func NewExpirySweeper(
	negotiations *service.NegotiationService,
	certifications *service.CertificationService,
	logger *zap.Logger,
	schedule string,
) *ExpirySweeper {
	if schedule == "" {
		schedule = "@hourly"
	}
	return &ExpirySweeper{
		cron:           cron.New(),
		negotiations:   negotiations,
		certifications: certifications,
		logger:         logger.Named("expiry_sweeper"),
		schedule:       schedule,
	}
}

// Start registers the sweep job and starts the cron loop.
func (s *ExpirySweeper) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, func() {
		s.Sweep(context.Background(), time.Now())
	}); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// Stop halts the cron loop and waits for a running sweep to finish.
func (s *ExpirySweeper) Stop() {
	<-s.cron.Stop().Done()
}

// Sweep runs one expiry pass. Exposed so tests and operators can trigger it
// directly.
func (s *ExpirySweeper) Sweep(ctx context.Context, now time.Time) {
	negExpired, negFailed := s.negotiations.ExpireOverdue(ctx, now)
	certExpired, certFailed := s.certifications.ExpireOverdue(ctx, now)

	s.logger.Info("expiry sweep complete",
		zap.Int("negotiations_expired", negExpired),
		zap.Int("negotiations_failed", len(negFailed)),
		zap.Int("certifications_expired", certExpired),
		zap.Int("certifications_failed", len(certFailed)))
}
