package postgres

import (
	"context"

	"github.com/aussiebroadwan/nittei/internal/nittei/domain"
	"gorm.io/gorm"
)

type slotsRepo struct {
	db *gorm.DB
}

func (r *slotsRepo) CreateSlots(ctx context.Context, slots []domain.Slot) error {
	if len(slots) == 0 {
		return nil
	}

	rows := make([]slotModel, 0, len(slots))
	for _, s := range slots {
		rows = append(rows, slotModelFromDomain(s))
	}
	return mapConstraint(r.db.WithContext(ctx).Create(&rows).Error)
}

func (r *slotsRepo) GetSlot(ctx context.Context, eventID, slotID string) (domain.Slot, error) {
	var row slotModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND event_id = ?", slotID, eventID).
		First(&row).
		Error
	if err != nil {
		return domain.Slot{}, mapNotFound(err)
	}
	return row.toDomain(), nil
}

func (r *slotsRepo) ListSlotsByEvent(ctx context.Context, eventID string) ([]domain.Slot, error) {
	var rows []slotModel
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("slot_index ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}

	var out []domain.Slot
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
