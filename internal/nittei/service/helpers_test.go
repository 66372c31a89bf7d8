package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/nittei/internal/nittei/domain"
	"github.com/aussiebroadwan/nittei/internal/nittei/store"
	"github.com/aussiebroadwan/nittei/internal/nittei/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

const testAdminSecret = "admin-secret"

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(sqlite.MemoryDSN())
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

type fixture struct {
	store     store.Store
	access    *AccessService
	events    *EventService
	slots     *SlotService
	votes     *VoteService
	scores    *ScoreService
	decisions *DecisionService
	calendar  *CalendarService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	st := newTestStore(t)
	access := &AccessService{Store: st, AdminSecret: testAdminSecret}
	return &fixture{
		store:  st,
		access: access,
		events: &EventService{
			Store:           st,
			Access:          access,
			Throttle:        &CreateThrottle{Store: st},
			SiteURL:         "https://nittei.example",
			DefaultTimezone: DefaultTimezone,
		},
		slots:     &SlotService{Store: st},
		votes:     &VoteService{Store: st, Access: access},
		scores:    &ScoreService{Store: st},
		decisions: &DecisionService{Store: st},
		calendar:  &CalendarService{Store: st, SiteURL: "https://nittei.example"},
	}
}

func baseInput() CreateEventInput {
	return CreateEventInput{
		Title:       "Quarterly planning",
		Description: "Bring numbers",
		DurationMin: 60,
		Slots: []SlotInput{
			{StartAt: "2030-05-01T10:00:00+09:00", EndAt: "2030-05-01T11:00:00+09:00"},
			{StartAt: "2030-05-02T10:00:00+09:00", EndAt: "2030-05-02T11:00:00+09:00"},
		},
		Participants: []ParticipantInput{
			{Name: "Aki", Email: "aki@example.com", Role: "must"},
			{Name: "Ben", Role: "member"},
			{Name: "Cho", Role: "optional"},
		},
	}
}

// createEvent creates an event through the admin path and returns the result.
func (f *fixture) createEvent(t *testing.T, in CreateEventInput) CreatedEvent {
	t.Helper()

	created, err := f.events.CreateEvent(context.Background(), in, testAdminSecret, "203.0.113.1")
	require.NoError(t, err)
	return created
}

func (f *fixture) vote(t *testing.T, eventID string, p domain.Participant, slotID string, choice domain.Choice) {
	t.Helper()

	_, err := f.votes.CastVote(context.Background(), eventID, CastVoteInput{
		Token:  p.InviteToken,
		SlotID: slotID,
		Choice: string(choice),
	})
	require.NoError(t, err)
}

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()

	v, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return v.UTC()
}
