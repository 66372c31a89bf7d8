package service

import (
	"context"
	"strings"
	"testing"

	"github.com/aussiebroadwan/nittei/internal/nittei/domain"
	"github.com/aussiebroadwan/nittei/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestCreateEvent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	in := baseInput()
	in.DeadlineAt = "2030-04-30T23:59:00+09:00"
	created := f.createEvent(t, in)

	ev := created.Event
	require.NotEmpty(t, ev.ID)
	require.Equal(t, "Quarterly planning", ev.Title)
	require.Equal(t, DefaultTimezone, ev.Timezone)
	require.NotNil(t, ev.DeadlineAt)
	require.Equal(t, mustTime(t, "2030-04-30T14:59:00Z"), *ev.DeadlineAt)
	require.Equal(t, cryptox.FingerprintToken(created.OrganizerKey), ev.OrganizerTokenHash)

	require.Len(t, created.Slots, 2)
	for i, sl := range created.Slots {
		require.Equal(t, i, sl.Index)
		require.Equal(t, ev.ID, sl.EventID)
	}
	require.Equal(t, mustTime(t, "2030-05-01T01:00:00Z"), created.Slots[0].StartAt)

	require.Len(t, created.Participants, 3)
	require.Equal(t, domain.RoleMust, created.Participants[0].Role)
	require.Len(t, created.Invites, 3)
	for i, inv := range created.Invites {
		p := created.Participants[i]
		require.Equal(t, "https://nittei.example/event/"+ev.ID+"?t="+p.InviteToken, inv.URL)
		require.Equal(t, SanitizeToken(p.InviteToken), p.InviteToken)
	}

	stored, err := f.store.Events().GetEventByID(ctx, ev.ID)
	require.NoError(t, err)
	require.Equal(t, 2, stored.NextSlotIndex)
}

func TestCreateEventValidation(t *testing.T) {
	f := newFixture(t)

	cases := map[string]func(in *CreateEventInput){
		"empty title":      func(in *CreateEventInput) { in.Title = "   " },
		"long title":       func(in *CreateEventInput) { in.Title = strings.Repeat("x", 201) },
		"zero duration":    func(in *CreateEventInput) { in.DurationMin = 0 },
		"bad timezone":     func(in *CreateEventInput) { in.Timezone = "Mars/Olympus" },
		"bad deadline":     func(in *CreateEventInput) { in.DeadlineAt = "tomorrow" },
		"no slots":         func(in *CreateEventInput) { in.Slots = nil },
		"zoneless slot":    func(in *CreateEventInput) { in.Slots[0].StartAt = "2030-05-01T10:00:00" },
		"inverted slot":    func(in *CreateEventInput) { in.Slots[1].EndAt = in.Slots[1].StartAt },
		"no participants":  func(in *CreateEventInput) { in.Participants = nil },
		"unknown role":     func(in *CreateEventInput) { in.Participants[1].Role = "boss" },
		"malformed email":  func(in *CreateEventInput) { in.Participants[0].Email = "not-an-email" },
		"display name too": func(in *CreateEventInput) { in.Participants[0].Email = "Aki <aki@example.com>" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := baseInput()
			mutate(&in)
			_, err := f.events.CreateEvent(context.Background(), in, testAdminSecret, "")
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	t.Run("max title length accepted", func(t *testing.T) {
		in := baseInput()
		in.Title = strings.Repeat("予", 200)
		_, err := f.events.CreateEvent(context.Background(), in, testAdminSecret, "")
		require.NoError(t, err)
	})

	t.Run("explicit timezone kept", func(t *testing.T) {
		in := baseInput()
		in.Timezone = "Europe/Berlin"
		created := f.createEvent(t, in)
		require.Equal(t, "Europe/Berlin", created.Event.Timezone)
	})

	t.Run("empty role defaults to member", func(t *testing.T) {
		in := baseInput()
		in.Participants[0].Role = ""
		created := f.createEvent(t, in)
		require.Equal(t, domain.RoleMember, created.Participants[0].Role)
	})
}

func TestCreateEventPermission(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.events.CreateEvent(ctx, baseInput(), "", "203.0.113.9")
	require.ErrorIs(t, err, ErrUnauthorized)

	// Permission is checked before validation.
	_, err = f.events.CreateEvent(ctx, CreateEventInput{}, "", "203.0.113.9")
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestCreateEventPublicThrottle(t *testing.T) {
	f := newFixture(t)
	f.events.PublicCreate = true
	ctx := context.Background()

	for range DefaultCreateLimit {
		_, err := f.events.CreateEvent(ctx, baseInput(), "", "198.51.100.7")
		require.NoError(t, err)
	}

	_, err := f.events.CreateEvent(ctx, baseInput(), "", "198.51.100.7")
	require.ErrorIs(t, err, ErrRateLimited)

	// Other origins are unaffected.
	_, err = f.events.CreateEvent(ctx, baseInput(), "", "198.51.100.8")
	require.NoError(t, err)

	t.Run("invalid input is not counted", func(t *testing.T) {
		in := baseInput()
		in.Title = ""
		for range DefaultCreateLimit + 1 {
			_, err := f.events.CreateEvent(ctx, in, "", "198.51.100.9")
			require.ErrorIs(t, err, ErrInvalidInput)
		}
		_, err := f.events.CreateEvent(ctx, baseInput(), "", "198.51.100.9")
		require.NoError(t, err)
	})
}

func TestRotateOrganizerKey(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created := f.createEvent(t, baseInput())
	id := created.Event.ID

	key, err := f.events.RotateOrganizerKey(ctx, id)
	require.NoError(t, err)
	require.NotEqual(t, created.OrganizerKey, key)

	_, err = f.access.RequireOrganizerOrAdmin(ctx, "", created.OrganizerKey, id)
	require.ErrorIs(t, err, ErrUnauthorized)

	actor, err := f.access.RequireOrganizerOrAdmin(ctx, "", key, id)
	require.NoError(t, err)
	require.Equal(t, domain.ActorOrganizer, actor)

	_, err = f.events.RotateOrganizerKey(ctx, "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListInvites(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	in := baseInput()
	in.Participants = []ParticipantInput{
		{Name: "opt", Role: "optional"},
		{Name: "mem1", Role: "member"},
		{Name: "must", Role: "must"},
		{Name: "mem2"},
	}
	created := f.createEvent(t, in)

	ev, invites, err := f.events.ListInvites(ctx, created.Event.ID)
	require.NoError(t, err)
	require.Equal(t, created.Event.ID, ev.ID)

	names := make([]string, len(invites))
	for i, inv := range invites {
		names[i] = inv.Name
		require.Contains(t, inv.URL, "?t=")
	}
	require.Equal(t, []string{"must", "mem1", "mem2", "opt"}, names)

	_, _, err = f.events.ListInvites(ctx, "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestInviteURL(t *testing.T) {
	t.Parallel()

	require.Equal(t, "https://a.example/event/E1?t=abc", InviteURL("https://a.example/", "E1", "abc"))
	require.Equal(t, DefaultSiteURL+"/event/E1", EventURL("", "E1"))
}
