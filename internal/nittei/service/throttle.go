package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/nittei/internal/nittei/domain"
	"github.com/aussiebroadwan/nittei/internal/nittei/store"
	"github.com/aussiebroadwan/nittei/pkg/idx"
	"github.com/aussiebroadwan/nittei/pkg/slogx"
)

const (
	DefaultCreateLimit  = 5
	DefaultCreateWindow = 60 * time.Minute

	// CreatePath is the endpoint key under which create attempts are counted.
	CreatePath = "/v1/events"
)

type ThrottleOutcome int

const (
	// ThrottleAllowed means the origin is under the limit; the attempt was recorded.
	ThrottleAllowed ThrottleOutcome = iota
	// ThrottleRejected means the origin reached the limit within the window.
	ThrottleRejected
	// ThrottleSkipped means counting failed, so the check was not applied.
	ThrottleSkipped
)

func (o ThrottleOutcome) String() string {
	switch o {
	case ThrottleAllowed:
		return "allowed"
	case ThrottleRejected:
		return "rejected"
	case ThrottleSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// ThrottleResult reports the outcome of one CheckAndRecord call. Cause is set
// only for ThrottleSkipped.
type ThrottleResult struct {
	Outcome ThrottleOutcome
	Count   int
	Cause   error
}

// Err maps the result onto the service error kinds. Only a rejection is an
// error; a skipped check lets creation proceed.
func (r ThrottleResult) Err() error {
	if r.Outcome == ThrottleRejected {
		return ErrRateLimited
	}
	return nil
}

// CreateThrottle limits anonymous event creation per origin address using
// durable rate_limit rows.
type CreateThrottle struct {
	Store  store.Store
	Limit  int           // Defaults to DefaultCreateLimit
	Window time.Duration // Defaults to DefaultCreateWindow
	Now    func() time.Time
}

func (t *CreateThrottle) limit() int {
	if t.Limit <= 0 {
		return DefaultCreateLimit
	}
	return t.Limit
}

func (t *CreateThrottle) window() time.Duration {
	if t.Window <= 0 {
		return DefaultCreateWindow
	}
	return t.Window
}

func (t *CreateThrottle) now() time.Time {
	if t.Now != nil {
		return t.Now()
	}
	return time.Now()
}

// CheckAndRecord counts attempts from origin in the trailing window and, when
// under the limit, records this attempt. A failed count yields
// ThrottleSkipped; a failed record is logged and ignored.
func (t *CreateThrottle) CheckAndRecord(ctx context.Context, origin string) ThrottleResult {
	if origin == "" {
		origin = "unknown"
	}
	log := slogx.FromContext(ctx).With(slog.String("origin", origin))

	now := t.now()

	count, err := t.Store.RateLimits().CountRecent(ctx, origin, CreatePath, now.Add(-t.window()))
	if err != nil {
		log.Warn("create throttle skipped: counting failed", slog.Any("error", err))
		return ThrottleResult{Outcome: ThrottleSkipped, Cause: err}
	}

	if count >= t.limit() {
		log.Warn("create throttle rejected request",
			slog.Int("count", count),
			slog.Int("limit", t.limit()),
		)
		return ThrottleResult{Outcome: ThrottleRejected, Count: count}
	}

	err = t.Store.RateLimits().RecordAttempt(ctx, domain.RateLimitRecord{
		ID:        idx.New().String(),
		Origin:    origin,
		Path:      CreatePath,
		CreatedAt: now,
	})
	if err != nil {
		log.Warn("create throttle failed to record attempt", slog.Any("error", err))
	}

	return ThrottleResult{Outcome: ThrottleAllowed, Count: count + 1}
}
