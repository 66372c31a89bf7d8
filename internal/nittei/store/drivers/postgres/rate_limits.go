package postgres

import (
	"context"
	"time"

	"github.com/aussiebroadwan/nittei/internal/nittei/domain"
	"gorm.io/gorm"
)

type rateLimitsRepo struct {
	db *gorm.DB
}

func (r *rateLimitsRepo) CountRecent(ctx context.Context, origin, path string, since time.Time) (int, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&rateLimitModel{}).
		Where("origin = ? AND path = ? AND created_at >= ?", origin, path, since.UTC()).
		Count(&n).
		Error
	return int(n), err
}

func (r *rateLimitsRepo) RecordAttempt(ctx context.Context, rec domain.RateLimitRecord) error {
	row := rateLimitModel{
		ID:        rec.ID,
		Origin:    rec.Origin,
		Path:      rec.Path,
		CreatedAt: rec.CreatedAt.UTC(),
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *rateLimitsRepo) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff.UTC()).
		Delete(&rateLimitModel{})
	return res.RowsAffected, res.Error
}
