package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/nittei/internal/nittei/domain"
	"github.com/aussiebroadwan/nittei/internal/nittei/store"
)

type eventsRepo struct {
	db dbtx
}

const eventColumns = `id, title, description, location, duration_min, timezone, deadline_at,
	organizer_token_hash, next_slot_index, created_at, updated_at`

func (r *eventsRepo) CreateEvent(ctx context.Context, e domain.Event) error {
	now := time.Now()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = e.CreatedAt
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO events (`+eventColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Title, e.Description, e.Location, e.DurationMin, e.Timezone,
		formatOptionalTime(e.DeadlineAt), e.OrganizerTokenHash, e.NextSlotIndex,
		formatTime(e.CreatedAt), formatTime(e.UpdatedAt),
	)
	return mapConstraint(err)
}

func (r *eventsRepo) GetEventByID(ctx context.Context, id string) (domain.Event, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM events WHERE id = ?`, id)

	var (
		e                    domain.Event
		deadline             sql.NullString
		createdAt, updatedAt string
	)
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Location, &e.DurationMin, &e.Timezone, &deadline,
		&e.OrganizerTokenHash, &e.NextSlotIndex, &createdAt, &updatedAt,
	)
	if err != nil {
		return domain.Event{}, mapNotFound(err)
	}

	if e.DeadlineAt, err = parseOptionalTime(deadline); err != nil {
		return domain.Event{}, err
	}
	if e.CreatedAt, err = parseTime(createdAt); err != nil {
		return domain.Event{}, err
	}
	if e.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return domain.Event{}, err
	}
	return e, nil
}

func (r *eventsRepo) RotateOrganizerToken(ctx context.Context, eventID, tokenHash string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE events SET organizer_token_hash = ?, updated_at = ? WHERE id = ?`,
		tokenHash, formatTime(time.Now()), eventID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *eventsRepo) ReserveSlotIndices(ctx context.Context, eventID string, n int) (int, error) {
	var next int
	err := r.db.QueryRowContext(ctx, `
		UPDATE events
		SET next_slot_index = next_slot_index + ?, updated_at = ?
		WHERE id = ?
		RETURNING next_slot_index`,
		n, formatTime(time.Now()), eventID,
	).Scan(&next)
	if err != nil {
		return 0, mapNotFound(err)
	}
	return next - n, nil
}
