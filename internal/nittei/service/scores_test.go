package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/nittei/internal/nittei/domain"
	"github.com/stretchr/testify/require"
)

func TestTally(t *testing.T) {
	t.Parallel()

	start := time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC)
	slots := []domain.Slot{
		{ID: "s0", Index: 0, StartAt: start},
		{ID: "s1", Index: 1, StartAt: start.Add(time.Hour)},
	}
	participants := []domain.Participant{
		{ID: "must", Role: domain.RoleMust},
		{ID: "member", Role: domain.RoleMember},
		{ID: "optional", Role: domain.RoleOptional},
	}
	votes := []domain.Vote{
		{ParticipantID: "must", SlotID: "s0", Choice: domain.ChoiceYes},
		{ParticipantID: "member", SlotID: "s0", Choice: domain.ChoiceMaybe},
		{ParticipantID: "optional", SlotID: "s0", Choice: domain.ChoiceNo},
		{ParticipantID: "optional", SlotID: "s1", Choice: domain.ChoiceYes},
		{ParticipantID: "member", SlotID: "gone", Choice: domain.ChoiceYes},
	}

	unweighted := Tally(ModeUnweighted, slots, participants, votes)
	require.Len(t, unweighted, 2)
	require.Equal(t, 1, unweighted[0].Yes)
	require.Equal(t, 1, unweighted[0].Maybe)
	require.Equal(t, 1, unweighted[0].No)
	require.InDelta(t, 3.0, unweighted[0].Score, 1e-9)
	require.InDelta(t, 2.0, unweighted[1].Score, 1e-9)

	weighted := Tally(ModeRoleWeighted, slots, participants, votes)
	require.InDelta(t, 2*2.0+1*1.0, weighted[0].Score, 1e-9)
	require.InDelta(t, 2*0.5, weighted[1].Score, 1e-9)

	t.Run("unknown voter counts as member", func(t *testing.T) {
		out := Tally(ModeRoleWeighted, slots, nil, votes[:1])
		require.InDelta(t, 2.0, out[0].Score, 1e-9)
	})
}

func TestRank(t *testing.T) {
	t.Parallel()

	start := time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC)
	tallies := []SlotTally{
		{Slot: domain.Slot{ID: "a", Index: 0, StartAt: start.Add(2 * time.Hour)}, Score: 4, Yes: 1},
		{Slot: domain.Slot{ID: "b", Index: 1, StartAt: start.Add(time.Hour)}, Score: 4, Yes: 2},
		{Slot: domain.Slot{ID: "c", Index: 2, StartAt: start}, Score: 4, Yes: 1},
		{Slot: domain.Slot{ID: "d", Index: 3, StartAt: start}, Score: 4, Yes: 1},
		{Slot: domain.Slot{ID: "e", Index: 4, StartAt: start}, Score: 6},
	}

	ranked := Rank(tallies)
	ids := make([]string, len(ranked))
	for i, r := range ranked {
		ids[i] = r.Slot.ID
	}
	require.Equal(t, []string{"e", "b", "c", "d", "a"}, ids)

	// Input order is untouched.
	require.Equal(t, "a", tallies[0].Slot.ID)
}

func TestScoreServiceViews(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created := f.createEvent(t, baseInput())
	id := created.Event.ID
	must, member, optional := created.Participants[0], created.Participants[1], created.Participants[2]
	s0, s1 := created.Slots[0], created.Slots[1]

	// Slot 1 wins on raw counts, slot 0 wins once roles are weighted.
	f.vote(t, id, must, s0.ID, domain.ChoiceYes)
	f.vote(t, id, member, s1.ID, domain.ChoiceYes)
	f.vote(t, id, optional, s1.ID, domain.ChoiceYes)

	t.Run("organizer summary", func(t *testing.T) {
		view, err := f.scores.OrganizerSummary(ctx, id)
		require.NoError(t, err)
		require.Len(t, view.Slots, 2)
		require.Len(t, view.Votes, 3)
		require.Len(t, view.Participants, 3)
		for _, p := range view.Participants {
			require.Empty(t, p.InviteToken)
		}
		require.InDelta(t, 2.0, view.Tallies[0].Score, 1e-9)
		require.InDelta(t, 4.0, view.Tallies[1].Score, 1e-9)
	})

	t.Run("ranked summary", func(t *testing.T) {
		view, err := f.scores.RankedSummary(ctx, id)
		require.NoError(t, err)
		require.Equal(t, s0.ID, view.Ranked[0].Slot.ID)
		require.InDelta(t, 4.0, view.Ranked[0].Score, 1e-9)
		require.InDelta(t, 3.0, view.Ranked[1].Score, 1e-9)
	})

	t.Run("public summary without deadline", func(t *testing.T) {
		view, err := f.scores.PublicSummary(ctx, id, time.Now())
		require.NoError(t, err)
		require.Equal(t, 2, view.Tallies[1].Yes)
	})

	t.Run("unknown event", func(t *testing.T) {
		_, err := f.scores.RankedSummary(ctx, "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV")
		require.ErrorIs(t, err, ErrNotFound)
		_, err = f.scores.OrganizerSummary(ctx, "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV")
		require.ErrorIs(t, err, ErrNotFound)
		_, err = f.scores.PublicSummary(ctx, "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV", time.Now())
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPublicSummaryDeadlineGate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	in := baseInput()
	in.DeadlineAt = "2030-04-30T12:00:00Z"
	created := f.createEvent(t, in)
	deadline := mustTime(t, "2030-04-30T12:00:00Z")

	_, err := f.scores.PublicSummary(ctx, created.Event.ID, deadline.Add(-time.Second))
	require.ErrorIs(t, err, ErrForbidden)

	_, err = f.scores.PublicSummary(ctx, created.Event.ID, deadline)
	require.NoError(t, err)
}
