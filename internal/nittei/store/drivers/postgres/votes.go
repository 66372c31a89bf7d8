package postgres

import (
	"context"

	"github.com/aussiebroadwan/nittei/internal/nittei/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type votesRepo struct {
	db *gorm.DB
}

func (r *votesRepo) UpsertVote(ctx context.Context, v domain.Vote) error {
	row := voteModel{
		EventID:       v.EventID,
		ParticipantID: v.ParticipantID,
		SlotID:        v.SlotID,
		Choice:        string(v.Choice),
		Comment:       v.Comment,
		UpdatedAt:     v.UpdatedAt.UTC(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "participant_id"}, {Name: "slot_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"choice", "comment", "updated_at"}),
	}).Create(&row).Error
}

func (r *votesRepo) ListVotesByEvent(ctx context.Context, eventID string) ([]domain.Vote, error) {
	var rows []voteModel
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("updated_at ASC").
		Order("participant_id ASC").
		Order("slot_id ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}

	var out []domain.Vote
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
