package postgres

import (
	"context"
	"time"

	"github.com/aussiebroadwan/nittei/internal/nittei/domain"
	"github.com/aussiebroadwan/nittei/internal/nittei/store"
	"gorm.io/gorm"
)

type eventsRepo struct {
	db *gorm.DB
}

func (r *eventsRepo) CreateEvent(ctx context.Context, e domain.Event) error {
	now := time.Now()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = e.CreatedAt
	}

	row := eventModelFromDomain(e)
	return mapConstraint(r.db.WithContext(ctx).Create(&row).Error)
}

func (r *eventsRepo) GetEventByID(ctx context.Context, id string) (domain.Event, error) {
	var row eventModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return domain.Event{}, mapNotFound(err)
	}
	return row.toDomain(), nil
}

func (r *eventsRepo) RotateOrganizerToken(ctx context.Context, eventID, tokenHash string) error {
	res := r.db.WithContext(ctx).
		Model(&eventModel{}).
		Where("id = ?", eventID).
		Updates(map[string]any{
			"organizer_token_hash": tokenHash,
			"updated_at":           time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *eventsRepo) ReserveSlotIndices(ctx context.Context, eventID string, n int) (int, error) {
	var next []int
	res := r.db.WithContext(ctx).Raw(`
		UPDATE events
		SET next_slot_index = next_slot_index + ?, updated_at = ?
		WHERE id = ?
		RETURNING next_slot_index`,
		n, time.Now().UTC(), eventID,
	).Scan(&next)
	if res.Error != nil {
		return 0, res.Error
	}
	if len(next) == 0 {
		return 0, store.ErrNotFound
	}
	return next[0] - n, nil
}
