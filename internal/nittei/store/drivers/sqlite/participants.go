package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/nittei/internal/nittei/domain"
	"github.com/aussiebroadwan/nittei/internal/nittei/store"
)

type participantsRepo struct {
	db dbtx
}

const participantColumns = `id, event_id, name, email, role, invite_token, invited_at, last_active_at`

func (r *participantsRepo) CreateParticipants(ctx context.Context, ps []domain.Participant) error {
	for _, p := range ps {
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO participants (`+participantColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, p.EventID, p.Name, p.Email, string(p.Role), p.InviteToken,
			formatTime(p.InvitedAt), formatOptionalTime(p.LastActiveAt),
		)
		if err != nil {
			return mapConstraint(err)
		}
	}
	return nil
}

func (r *participantsRepo) GetParticipantByInviteToken(
	ctx context.Context,
	eventID, token string,
) (domain.Participant, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+participantColumns+` FROM participants WHERE event_id = ? AND invite_token = ?`,
		eventID, token,
	)
	p, err := scanParticipant(row)
	if err != nil {
		return domain.Participant{}, mapNotFound(err)
	}
	return p, nil
}

func (r *participantsRepo) ListParticipantsByEvent(ctx context.Context, eventID string) ([]domain.Participant, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+participantColumns+` FROM participants WHERE event_id = ? ORDER BY invited_at ASC, id ASC`,
		eventID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Participant
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *participantsRepo) TouchParticipant(ctx context.Context, participantID string, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE participants SET last_active_at = ? WHERE id = ?`,
		formatTime(at), participantID,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func scanParticipant(sc scanner) (domain.Participant, error) {
	var (
		p          domain.Participant
		role       string
		invitedAt  string
		lastActive sql.NullString
	)
	err := sc.Scan(&p.ID, &p.EventID, &p.Name, &p.Email, &role, &p.InviteToken, &invitedAt, &lastActive)
	if err != nil {
		return domain.Participant{}, err
	}

	p.Role = domain.Role(role)
	if p.InvitedAt, err = parseTime(invitedAt); err != nil {
		return domain.Participant{}, err
	}
	if p.LastActiveAt, err = parseOptionalTime(lastActive); err != nil {
		return domain.Participant{}, err
	}
	return p, nil
}
