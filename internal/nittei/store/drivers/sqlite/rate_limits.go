package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/nittei/internal/nittei/domain"
)

type rateLimitsRepo struct {
	db dbtx
}

func (r *rateLimitsRepo) CountRecent(ctx context.Context, origin, path string, since time.Time) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM rate_limits WHERE origin = ? AND path = ? AND created_at >= ?`,
		origin, path, formatTime(since),
	).Scan(&n)
	return n, err
}

func (r *rateLimitsRepo) RecordAttempt(ctx context.Context, rec domain.RateLimitRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO rate_limits (id, origin, path, created_at) VALUES (?, ?, ?, ?)`,
		rec.ID, rec.Origin, rec.Path, formatTime(rec.CreatedAt),
	)
	return err
}

func (r *rateLimitsRepo) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rate_limits WHERE created_at < ?`, formatTime(cutoff))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
