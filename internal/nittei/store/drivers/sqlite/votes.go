package sqlite

import (
	"context"

	"github.com/aussiebroadwan/nittei/internal/nittei/domain"
)

type votesRepo struct {
	db dbtx
}

func (r *votesRepo) UpsertVote(ctx context.Context, v domain.Vote) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO votes (event_id, participant_id, slot_id, choice, comment, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (participant_id, slot_id) DO UPDATE SET
			choice = excluded.choice,
			comment = excluded.comment,
			updated_at = excluded.updated_at`,
		v.EventID, v.ParticipantID, v.SlotID, string(v.Choice), v.Comment, formatTime(v.UpdatedAt),
	)
	return err
}

func (r *votesRepo) ListVotesByEvent(ctx context.Context, eventID string) ([]domain.Vote, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT event_id, participant_id, slot_id, choice, comment, updated_at
		FROM votes
		WHERE event_id = ?
		ORDER BY updated_at ASC, participant_id ASC, slot_id ASC`,
		eventID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Vote
	for rows.Next() {
		var (
			v         domain.Vote
			choice    string
			updatedAt string
		)
		if err := rows.Scan(&v.EventID, &v.ParticipantID, &v.SlotID, &choice, &v.Comment, &updatedAt); err != nil {
			return nil, err
		}
		v.Choice = domain.Choice(choice)
		if v.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
