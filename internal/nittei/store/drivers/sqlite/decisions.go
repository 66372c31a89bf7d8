package sqlite

import (
	"context"

	"github.com/aussiebroadwan/nittei/internal/nittei/domain"
)

type decisionsRepo struct {
	db dbtx
}

func (r *decisionsRepo) CreateDecision(ctx context.Context, d domain.Decision) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO decisions (id, event_id, slot_id, decided_by, decided_at, ics_uid)
		VALUES (?, ?, ?, ?, ?, ?)`,
		d.ID, d.EventID, d.SlotID, string(d.DecidedBy), formatTime(d.DecidedAt), d.ICSUID,
	)
	return mapConstraint(err)
}

func (r *decisionsRepo) GetLatestDecision(ctx context.Context, eventID string) (domain.Decision, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, event_id, slot_id, decided_by, decided_at, ics_uid
		FROM decisions
		WHERE event_id = ?
		ORDER BY decided_at DESC, id DESC
		LIMIT 1`,
		eventID,
	)
	d, err := scanDecision(row)
	if err != nil {
		return domain.Decision{}, mapNotFound(err)
	}
	return d, nil
}

func (r *decisionsRepo) ListDecisionsByEvent(ctx context.Context, eventID string) ([]domain.Decision, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, event_id, slot_id, decided_by, decided_at, ics_uid
		FROM decisions
		WHERE event_id = ?
		ORDER BY decided_at ASC, id ASC`,
		eventID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Decision
	for rows.Next() {
		d, err := scanDecision(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func scanDecision(sc scanner) (domain.Decision, error) {
	var (
		d                    domain.Decision
		decidedBy, decidedAt string
	)
	if err := sc.Scan(&d.ID, &d.EventID, &d.SlotID, &decidedBy, &decidedAt, &d.ICSUID); err != nil {
		return domain.Decision{}, err
	}
	d.DecidedBy = domain.Actor(decidedBy)

	var err error
	if d.DecidedAt, err = parseTime(decidedAt); err != nil {
		return domain.Decision{}, err
	}
	return d, nil
}
