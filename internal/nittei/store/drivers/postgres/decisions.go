package postgres

import (
	"context"

	"github.com/aussiebroadwan/nittei/internal/nittei/domain"
	"gorm.io/gorm"
)

type decisionsRepo struct {
	db *gorm.DB
}

func (r *decisionsRepo) CreateDecision(ctx context.Context, d domain.Decision) error {
	row := decisionModel{
		ID:        d.ID,
		EventID:   d.EventID,
		SlotID:    d.SlotID,
		DecidedBy: string(d.DecidedBy),
		DecidedAt: d.DecidedAt.UTC(),
		ICSUID:    d.ICSUID,
	}
	return mapConstraint(r.db.WithContext(ctx).Create(&row).Error)
}

func (r *decisionsRepo) GetLatestDecision(ctx context.Context, eventID string) (domain.Decision, error) {
	var row decisionModel
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("decided_at DESC").
		Order("id DESC").
		Take(&row).
		Error
	if err != nil {
		return domain.Decision{}, mapNotFound(err)
	}
	return row.toDomain(), nil
}

func (r *decisionsRepo) ListDecisionsByEvent(ctx context.Context, eventID string) ([]domain.Decision, error) {
	var rows []decisionModel
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("decided_at ASC").
		Order("id ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}

	var out []domain.Decision
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
