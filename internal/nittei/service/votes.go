package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/aussiebroadwan/nittei/internal/nittei/domain"
	"github.com/aussiebroadwan/nittei/internal/nittei/store"
	"github.com/aussiebroadwan/nittei/pkg/slogx"
)

const MaxCommentLen = 500

type VoteService struct {
	Store  store.Store
	Access *AccessService
}

type CastVoteInput struct {
	Token   string // Participant invite token, possibly with surrounding text
	SlotID  string
	Choice  string
	Comment string
}

// CastVote records the participant's current choice for one slot. A repeat
// vote on the same slot overwrites the previous one.
func (s *VoteService) CastVote(ctx context.Context, eventID string, in CastVoteInput) (domain.Vote, error) {
	log := slogx.FromContext(ctx).With(slog.String("event_id", eventID))

	p, err := s.Access.AuthenticateParticipant(ctx, in.Token, eventID)
	if err != nil {
		return domain.Vote{}, err
	}

	if strings.TrimSpace(in.SlotID) == "" {
		return domain.Vote{}, invalidf("slot_id: required")
	}
	if _, err := s.Store.Slots().GetSlot(ctx, eventID, in.SlotID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Vote{}, invalidf("slot_id: not a slot of this event")
		}
		log.Error("failed to load slot", slog.Any("error", err))
		return domain.Vote{}, err
	}

	choice, ok := domain.ParseChoice(in.Choice)
	if !ok {
		return domain.Vote{}, invalidf("choice: must be one of yes, maybe, no")
	}

	comment := strings.TrimSpace(in.Comment)
	if utf8.RuneCountInString(comment) > MaxCommentLen {
		return domain.Vote{}, invalidf("comment: at most %d characters", MaxCommentLen)
	}

	now := time.Now().UTC()
	vote := domain.Vote{
		EventID:       eventID,
		ParticipantID: p.ID,
		SlotID:        in.SlotID,
		Choice:        choice,
		Comment:       comment,
		UpdatedAt:     now,
	}
	if err := s.Store.Votes().UpsertVote(ctx, vote); err != nil {
		log.Error("failed to upsert vote", slog.Any("error", err))
		return domain.Vote{}, err
	}

	// The vote is already stored; a stale activity stamp is acceptable.
	if err := s.Store.Participants().TouchParticipant(ctx, p.ID, now); err != nil {
		log.Warn("failed to refresh participant activity",
			slog.String("participant_id", p.ID),
			slog.Any("error", err),
		)
	}

	log.Debug("vote recorded",
		slog.String("participant_id", p.ID),
		slog.String("slot_id", in.SlotID),
		slog.String("choice", string(choice)),
	)
	return vote, nil
}
