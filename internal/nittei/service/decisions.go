package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aussiebroadwan/nittei/internal/nittei/domain"
	"github.com/aussiebroadwan/nittei/internal/nittei/store"
	"github.com/aussiebroadwan/nittei/pkg/idx"
	"github.com/aussiebroadwan/nittei/pkg/slogx"
)

type DecisionService struct {
	Store store.Store
}

// Decide appends a decision finalizing slotID for the event. Earlier
// decisions are kept; the latest one is current.
func (s *DecisionService) Decide(ctx context.Context, eventID, slotID string, actor domain.Actor) (domain.Decision, error) {
	log := slogx.FromContext(ctx).With(
		slog.String("event_id", eventID),
		slog.String("actor", string(actor)),
	)

	if strings.TrimSpace(slotID) == "" {
		return domain.Decision{}, invalidf("slot_id: required")
	}

	// An unknown event has no slots, so it lands here too.
	if _, err := s.Store.Slots().GetSlot(ctx, eventID, slotID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Decision{}, invalidf("slot_id: not a slot of this event")
		}
		log.Error("failed to load slot", slog.Any("error", err))
		return domain.Decision{}, err
	}

	now := time.Now().UTC()
	d := domain.Decision{
		ID:        idx.NewAt(now).String(),
		EventID:   eventID,
		SlotID:    slotID,
		DecidedBy: actor,
		DecidedAt: now,
		ICSUID:    uuid.NewString(),
	}
	if err := s.Store.Decisions().CreateDecision(ctx, d); err != nil {
		log.Error("failed to record decision", slog.Any("error", err))
		return domain.Decision{}, err
	}

	log.Info("decision recorded",
		slog.String("decision_id", d.ID),
		slog.String("slot_id", slotID),
	)
	return d, nil
}
