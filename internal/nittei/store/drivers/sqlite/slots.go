package sqlite

import (
	"context"

	"github.com/aussiebroadwan/nittei/internal/nittei/domain"
)

type slotsRepo struct {
	db dbtx
}

func (r *slotsRepo) CreateSlots(ctx context.Context, slots []domain.Slot) error {
	for _, s := range slots {
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO event_slots (id, event_id, start_at, end_at, slot_index, created_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			s.ID, s.EventID, formatTime(s.StartAt), formatTime(s.EndAt), s.Index, formatTime(s.CreatedAt),
		)
		if err != nil {
			return mapConstraint(err)
		}
	}
	return nil
}

func (r *slotsRepo) GetSlot(ctx context.Context, eventID, slotID string) (domain.Slot, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, event_id, start_at, end_at, slot_index, created_at
		FROM event_slots
		WHERE id = ? AND event_id = ?`,
		slotID, eventID,
	)

	s, err := scanSlot(row)
	if err != nil {
		return domain.Slot{}, mapNotFound(err)
	}
	return s, nil
}

func (r *slotsRepo) ListSlotsByEvent(ctx context.Context, eventID string) ([]domain.Slot, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, event_id, start_at, end_at, slot_index, created_at
		FROM event_slots
		WHERE event_id = ?
		ORDER BY slot_index ASC`,
		eventID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Slot
	for rows.Next() {
		s, err := scanSlot(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSlot(sc scanner) (domain.Slot, error) {
	var (
		s                         domain.Slot
		startAt, endAt, createdAt string
	)
	if err := sc.Scan(&s.ID, &s.EventID, &startAt, &endAt, &s.Index, &createdAt); err != nil {
		return domain.Slot{}, err
	}

	var err error
	if s.StartAt, err = parseTime(startAt); err != nil {
		return domain.Slot{}, err
	}
	if s.EndAt, err = parseTime(endAt); err != nil {
		return domain.Slot{}, err
	}
	if s.CreatedAt, err = parseTime(createdAt); err != nil {
		return domain.Slot{}, err
	}
	return s, nil
}
