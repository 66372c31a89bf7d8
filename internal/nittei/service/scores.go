package service

import (
	"cmp"
	"context"
	"errors"
	"log/slog"
	"slices"
	"time"

	"github.com/aussiebroadwan/nittei/internal/nittei/domain"
	"github.com/aussiebroadwan/nittei/internal/nittei/store"
	"github.com/aussiebroadwan/nittei/pkg/slogx"
)

// ScoreMode selects how votes are weighted into a slot score.
type ScoreMode int

const (
	// ModeUnweighted scores each vote by its choice weight alone.
	ModeUnweighted ScoreMode = iota
	// ModeRoleWeighted multiplies the choice weight by the voter's role weight.
	ModeRoleWeighted
)

func (m ScoreMode) String() string {
	switch m {
	case ModeRoleWeighted:
		return "role_weighted"
	default:
		return "unweighted"
	}
}

type SlotTally struct {
	Slot  domain.Slot
	Yes   int
	Maybe int
	No    int
	Score float64
}

// Tally aggregates votes per slot, returned in slot order. Votes for slots
// not in slots are ignored; voters missing from participants count as
// members.
func Tally(mode ScoreMode, slots []domain.Slot, participants []domain.Participant, votes []domain.Vote) []SlotTally {
	roles := make(map[string]domain.Role, len(participants))
	for _, p := range participants {
		roles[p.ID] = p.Role
	}

	out := make([]SlotTally, len(slots))
	pos := make(map[string]int, len(slots))
	for i, sl := range slots {
		out[i] = SlotTally{Slot: sl}
		pos[sl.ID] = i
	}

	for _, v := range votes {
		i, ok := pos[v.SlotID]
		if !ok {
			continue
		}
		t := &out[i]

		switch v.Choice {
		case domain.ChoiceYes:
			t.Yes++
		case domain.ChoiceMaybe:
			t.Maybe++
		case domain.ChoiceNo:
			t.No++
		}

		w := float64(v.Choice.Weight())
		if mode == ModeRoleWeighted {
			w *= roles[v.ParticipantID].Weight()
		}
		t.Score += w
	}

	return out
}

// Rank orders tallies best first: score, then yes count, then earliest
// start, then slot index.
func Rank(tallies []SlotTally) []SlotTally {
	out := slices.Clone(tallies)
	slices.SortStableFunc(out, func(a, b SlotTally) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Yes, a.Yes); c != 0 {
			return c
		}
		if c := a.Slot.StartAt.Compare(b.Slot.StartAt); c != 0 {
			return c
		}
		return cmp.Compare(a.Slot.Index, b.Slot.Index)
	})
	return out
}

type ScoreService struct {
	Store store.Store
}

// OrganizerView is everything an organizer sees about the responses.
type OrganizerView struct {
	Event        domain.Event
	Slots        []domain.Slot
	Participants []domain.Participant
	Votes        []domain.Vote
	Tallies      []SlotTally
}

type RankedView struct {
	Event  domain.Event
	Ranked []SlotTally
}

// PublicView carries anonymous counts only.
type PublicView struct {
	Event   domain.Event
	Tallies []SlotTally
}

type eventSnapshot struct {
	event        domain.Event
	slots        []domain.Slot
	participants []domain.Participant
	votes        []domain.Vote
}

func (s *ScoreService) load(ctx context.Context, eventID string) (eventSnapshot, error) {
	log := slogx.FromContext(ctx).With(slog.String("event_id", eventID))

	ev, err := s.Store.Events().GetEventByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return eventSnapshot{}, ErrNotFound
		}
		log.Error("failed to load event", slog.Any("error", err))
		return eventSnapshot{}, err
	}

	slots, err := s.Store.Slots().ListSlotsByEvent(ctx, eventID)
	if err != nil {
		log.Error("failed to list slots", slog.Any("error", err))
		return eventSnapshot{}, err
	}

	participants, err := s.Store.Participants().ListParticipantsByEvent(ctx, eventID)
	if err != nil {
		log.Error("failed to list participants", slog.Any("error", err))
		return eventSnapshot{}, err
	}

	votes, err := s.Store.Votes().ListVotesByEvent(ctx, eventID)
	if err != nil {
		log.Error("failed to list votes", slog.Any("error", err))
		return eventSnapshot{}, err
	}

	return eventSnapshot{event: ev, slots: slots, participants: participants, votes: votes}, nil
}

// OrganizerSummary returns the full response matrix with unweighted counts.
// Invite tokens are cleared from the returned participants.
func (s *ScoreService) OrganizerSummary(ctx context.Context, eventID string) (OrganizerView, error) {
	snap, err := s.load(ctx, eventID)
	if err != nil {
		return OrganizerView{}, err
	}

	for i := range snap.participants {
		snap.participants[i].InviteToken = ""
	}

	return OrganizerView{
		Event:        snap.event,
		Slots:        snap.slots,
		Participants: snap.participants,
		Votes:        snap.votes,
		Tallies:      Tally(ModeUnweighted, snap.slots, snap.participants, snap.votes),
	}, nil
}

// RankedSummary returns slots ordered by role-weighted score.
func (s *ScoreService) RankedSummary(ctx context.Context, eventID string) (RankedView, error) {
	snap, err := s.load(ctx, eventID)
	if err != nil {
		return RankedView{}, err
	}

	return RankedView{
		Event:  snap.event,
		Ranked: Rank(Tally(ModeRoleWeighted, snap.slots, snap.participants, snap.votes)),
	}, nil
}

// PublicSummary returns anonymous unweighted counts once the event's
// deadline has passed. Before the deadline it returns ErrForbidden.
func (s *ScoreService) PublicSummary(ctx context.Context, eventID string, now time.Time) (PublicView, error) {
	snap, err := s.load(ctx, eventID)
	if err != nil {
		return PublicView{}, err
	}

	if !snap.event.ResultsVisible(now) {
		slogx.FromContext(ctx).Debug("public summary requested before deadline",
			slog.String("event_id", eventID),
		)
		return PublicView{}, ErrForbidden
	}

	return PublicView{
		Event:   snap.event,
		Tallies: Tally(ModeUnweighted, snap.slots, snap.participants, snap.votes),
	}, nil
}
