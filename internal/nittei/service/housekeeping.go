package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/nittei/internal/nittei/store"
	"github.com/aussiebroadwan/nittei/pkg/slogx"
)

const DefaultRateLimitRetention = 24 * time.Hour

// HousekeepingService prunes data that only matters for a bounded time.
type HousekeepingService struct {
	Store     store.Store
	Retention time.Duration
	Now       func() time.Time
}

type HousekeepingReport struct {
	RateLimitRecordsDeleted int64
}

// RunOnce performs a single pruning pass.
func (s *HousekeepingService) RunOnce(ctx context.Context) (HousekeepingReport, error) {
	log := slogx.FromContext(ctx)

	retention := s.Retention
	if retention <= 0 {
		retention = DefaultRateLimitRetention
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	cutoff := now().UTC().Add(-retention)

	n, err := s.Store.RateLimits().DeleteBefore(ctx, cutoff)
	if err != nil {
		log.Error("failed to prune rate limit records", slog.Any("error", err))
		return HousekeepingReport{}, err
	}

	log.Info("housekeeping complete",
		slog.Int64("rate_limit_records_deleted", n),
		slog.Time("cutoff", cutoff),
	)
	return HousekeepingReport{RateLimitRecordsDeleted: n}, nil
}
