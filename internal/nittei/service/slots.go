package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/nittei/internal/nittei/domain"
	"github.com/aussiebroadwan/nittei/internal/nittei/store"
	"github.com/aussiebroadwan/nittei/pkg/idx"
	"github.com/aussiebroadwan/nittei/pkg/slogx"
)

// SlotInput is a candidate range as submitted: RFC 3339 instants with an
// explicit zone.
type SlotInput struct {
	StartAt string
	EndAt   string
}

// SlotRange is a validated candidate range in UTC.
type SlotRange struct {
	StartAt time.Time
	EndAt   time.Time
}

type SlotService struct {
	Store store.Store
}

// ParseSlotRanges validates inputs. The list must be non-empty, every bound
// must carry a zone and every start must precede its end.
func ParseSlotRanges(inputs []SlotInput) ([]SlotRange, error) {
	if len(inputs) == 0 {
		return nil, invalidf("slots: at least one slot is required")
	}

	out := make([]SlotRange, 0, len(inputs))
	for i, in := range inputs {
		start, err := parseInstant(in.StartAt)
		if err != nil {
			return nil, invalidf("slots[%d].start_at: must be an RFC 3339 timestamp with zone", i)
		}
		end, err := parseInstant(in.EndAt)
		if err != nil {
			return nil, invalidf("slots[%d].end_at: must be an RFC 3339 timestamp with zone", i)
		}
		if !start.Before(end) {
			return nil, invalidf("slots[%d]: start_at must be before end_at", i)
		}
		out = append(out, SlotRange{StartAt: start, EndAt: end})
	}
	return out, nil
}

// parseInstant accepts RFC 3339 with Z or a numeric offset and returns UTC.
func parseInstant(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// AddSlots appends ranges to an event, continuing its index sequence.
func (s *SlotService) AddSlots(ctx context.Context, eventID string, inputs []SlotInput) ([]domain.Slot, error) {
	log := slogx.FromContext(ctx).With(slog.String("event_id", eventID))

	ranges, err := ParseSlotRanges(inputs)
	if err != nil {
		return nil, err
	}

	var slots []domain.Slot
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		slots, err = allocateSlots(ctx, tx, eventID, ranges, time.Now())
		return err
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Error("failed to add slots", slog.Any("error", err))
		return nil, err
	}

	log.Info("slots added",
		slog.Int("count", len(slots)),
		slog.Int("first_index", slots[0].Index),
	)
	return slots, nil
}

// allocateSlots reserves len(ranges) indices on the event counter and inserts
// the slots. It must run inside a transaction so a failed insert releases
// the reservation.
func allocateSlots(
	ctx context.Context,
	tx store.Tx,
	eventID string,
	ranges []SlotRange,
	now time.Time,
) ([]domain.Slot, error) {
	first, err := tx.Events().ReserveSlotIndices(ctx, eventID, len(ranges))
	if err != nil {
		return nil, err
	}

	slots := make([]domain.Slot, len(ranges))
	for i, r := range ranges {
		slots[i] = domain.Slot{
			ID:        idx.New().String(),
			EventID:   eventID,
			StartAt:   r.StartAt,
			EndAt:     r.EndAt,
			Index:     first + i,
			CreatedAt: now,
		}
	}

	if err := tx.Slots().CreateSlots(ctx, slots); err != nil {
		return nil, err
	}
	return slots, nil
}
