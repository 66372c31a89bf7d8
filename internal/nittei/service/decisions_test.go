package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/aussiebroadwan/nittei/internal/nittei/domain"
	"github.com/stretchr/testify/require"
)

func TestDecide(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created := f.createEvent(t, baseInput())
	id := created.Event.ID

	first, err := f.decisions.Decide(ctx, id, created.Slots[0].ID, domain.ActorOrganizer)
	require.NoError(t, err)
	require.Equal(t, domain.ActorOrganizer, first.DecidedBy)
	_, err = uuid.Parse(first.ICSUID)
	require.NoError(t, err)

	second, err := f.decisions.Decide(ctx, id, created.Slots[1].ID, domain.ActorAdmin)
	require.NoError(t, err)
	require.NotEqual(t, first.ICSUID, second.ICSUID)

	latest, err := f.store.Decisions().GetLatestDecision(ctx, id)
	require.NoError(t, err)
	require.Equal(t, second.ID, latest.ID)

	all, err := f.store.Decisions().ListDecisionsByEvent(ctx, id)
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestDecideRejectsForeignSlot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created := f.createEvent(t, baseInput())
	other := f.createEvent(t, baseInput())

	_, err := f.decisions.Decide(ctx, created.Event.ID, other.Slots[0].ID, domain.ActorAdmin)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.decisions.Decide(ctx, created.Event.ID, "", domain.ActorAdmin)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.decisions.Decide(ctx, "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV", created.Slots[0].ID, domain.ActorAdmin)
	require.ErrorIs(t, err, ErrInvalidInput)

	all, err := f.store.Decisions().ListDecisionsByEvent(ctx, created.Event.ID)
	require.NoError(t, err)
	require.Empty(t, all)
}
