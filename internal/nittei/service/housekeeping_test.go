package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/nittei/internal/nittei/domain"
	"github.com/aussiebroadwan/nittei/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestHousekeepingRunOnce(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	now := time.Date(2030, 1, 2, 0, 0, 0, 0, time.UTC)

	for _, age := range []time.Duration{48 * time.Hour, 25 * time.Hour, time.Hour} {
		require.NoError(t, st.RateLimits().RecordAttempt(ctx, domain.RateLimitRecord{
			ID:        idx.New().String(),
			Origin:    "198.51.100.1",
			Path:      CreatePath,
			CreatedAt: now.Add(-age),
		}))
	}

	svc := &HousekeepingService{Store: st, Now: func() time.Time { return now }}
	report, err := svc.RunOnce(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, report.RateLimitRecordsDeleted)

	n, err := st.RateLimits().CountRecent(ctx, "198.51.100.1", CreatePath, now.Add(-72*time.Hour))
	require.NoError(t, err)
	require.Equal(t, 1, n)

	report, err = svc.RunOnce(ctx)
	require.NoError(t, err)
	require.Zero(t, report.RateLimitRecordsDeleted)
}
