package postgres

import (
	"context"
	"time"

	"github.com/aussiebroadwan/nittei/internal/nittei/domain"
	"github.com/aussiebroadwan/nittei/internal/nittei/store"
	"gorm.io/gorm"
)

type participantsRepo struct {
	db *gorm.DB
}

func (r *participantsRepo) CreateParticipants(ctx context.Context, ps []domain.Participant) error {
	if len(ps) == 0 {
		return nil
	}

	rows := make([]participantModel, 0, len(ps))
	for _, p := range ps {
		rows = append(rows, participantModelFromDomain(p))
	}
	return mapConstraint(r.db.WithContext(ctx).Create(&rows).Error)
}

func (r *participantsRepo) GetParticipantByInviteToken(
	ctx context.Context,
	eventID, token string,
) (domain.Participant, error) {
	var row participantModel
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND invite_token = ?", eventID, token).
		First(&row).
		Error
	if err != nil {
		return domain.Participant{}, mapNotFound(err)
	}
	return row.toDomain(), nil
}

func (r *participantsRepo) ListParticipantsByEvent(ctx context.Context, eventID string) ([]domain.Participant, error) {
	var rows []participantModel
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("invited_at ASC").
		Order("id ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}

	var out []domain.Participant
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *participantsRepo) TouchParticipant(ctx context.Context, participantID string, at time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&participantModel{}).
		Where("id = ?", participantID).
		Update("last_active_at", at.UTC())
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
