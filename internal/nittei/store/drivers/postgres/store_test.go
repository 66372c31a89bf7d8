package postgres

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/nittei/internal/nittei/domain"
	"github.com/aussiebroadwan/nittei/internal/nittei/store"
	"github.com/aussiebroadwan/nittei/pkg/idx"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * The postgres driver tests share one container for the whole package.
 * Rows are keyed by fresh ULIDs so tests do not interfere with each other.
 */

const (
	postgresImage    = "postgres:16-alpine"
	postgresUser     = "nittei"
	postgresPassword = "nittei"
	postgresDB       = "nittei"
)

var (
	pgOnce      sync.Once
	pgContainer testcontainers.Container
	pgDSN       string
	pgErr       error
)

func TestMain(m *testing.M) {
	code := m.Run()

	if pgContainer != nil {
		_ = pgContainer.Terminate(context.Background())
	}
	os.Exit(code)
}

func startPostgres() {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        postgresImage,
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     postgresUser,
			"POSTGRES_PASSWORD": postgresPassword,
			"POSTGRES_DB":       postgresDB,
		},
		// The entrypoint restarts the server once after init.
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	pgContainer, pgErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if pgErr != nil {
		return
	}

	host, err := pgContainer.Host(ctx)
	if err != nil {
		pgErr = err
		return
	}
	port, err := pgContainer.MappedPort(ctx, "5432")
	if err != nil {
		pgErr = err
		return
	}

	pgDSN = fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		postgresUser, postgresPassword, host, port.Port(), postgresDB,
	)
}

func newTestStore(t *testing.T) *Store {
	t.Helper()

	if testing.Short() {
		t.Skip("postgres driver tests need docker")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	pgOnce.Do(startPostgres)
	require.NoError(t, pgErr)

	s, err := NewStore(pgDSN)
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func seedEvent(t *testing.T, s *Store) domain.Event {
	t.Helper()

	ev := domain.Event{
		ID:                 idx.New().String(),
		Title:              "Team offsite",
		DurationMin:        60,
		Timezone:           "Asia/Tokyo",
		OrganizerTokenHash: "hash-1",
	}
	require.NoError(t, s.Events().CreateEvent(context.Background(), ev))
	return ev
}

func seedSlot(t *testing.T, s *Store, eventID string, index int, start time.Time) domain.Slot {
	t.Helper()

	slot := domain.Slot{
		ID:        idx.New().String(),
		EventID:   eventID,
		StartAt:   start,
		EndAt:     start.Add(time.Hour),
		Index:     index,
		CreatedAt: time.Now(),
	}
	require.NoError(t, s.Slots().CreateSlots(context.Background(), []domain.Slot{slot}))
	return slot
}

func seedParticipant(t *testing.T, s *Store, eventID, token string, role domain.Role) domain.Participant {
	t.Helper()

	p := domain.Participant{
		ID:          idx.New().String(),
		EventID:     eventID,
		Role:        role,
		InviteToken: token,
		InvitedAt:   time.Now(),
	}
	require.NoError(t, s.Participants().CreateParticipants(context.Background(), []domain.Participant{p}))
	return p
}

func TestEventRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	deadline := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
	ev := domain.Event{
		ID:                 idx.New().String(),
		Title:              "Launch",
		Description:        "Line one\nLine two",
		Location:           "Room 4",
		DurationMin:        30,
		Timezone:           "Europe/Berlin",
		DeadlineAt:         &deadline,
		OrganizerTokenHash: "abc",
	}
	require.NoError(t, s.Events().CreateEvent(ctx, ev))

	got, err := s.Events().GetEventByID(ctx, ev.ID)
	require.NoError(t, err)
	require.Equal(t, ev.Title, got.Title)
	require.Equal(t, ev.Description, got.Description)
	require.NotNil(t, got.DeadlineAt)
	require.True(t, deadline.Equal(*got.DeadlineAt))
	require.Equal(t, time.UTC, got.DeadlineAt.Location())

	_, err = s.Events().GetEventByID(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.ErrorIs(t, s.Events().CreateEvent(ctx, ev), store.ErrAlreadyExists)
}

func TestRotateOrganizerToken(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	ev := seedEvent(t, s)

	require.NoError(t, s.Events().RotateOrganizerToken(ctx, ev.ID, "hash-2"))

	got, err := s.Events().GetEventByID(ctx, ev.ID)
	require.NoError(t, err)
	require.Equal(t, "hash-2", got.OrganizerTokenHash)

	require.ErrorIs(t, s.Events().RotateOrganizerToken(ctx, "missing", "x"), store.ErrNotFound)
}

func TestReserveSlotIndicesConcurrently(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	ev := seedEvent(t, s)

	const workers = 8
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		starts []int
	)
	for range workers {
		wg.Go(func() {
			first, err := s.Events().ReserveSlotIndices(ctx, ev.ID, 2)
			if err != nil {
				t.Errorf("reserve: %v", err)
				return
			}
			mu.Lock()
			starts = append(starts, first)
			mu.Unlock()
		})
	}
	wg.Wait()

	sort.Ints(starts)
	for i, first := range starts {
		require.Equal(t, i*2, first)
	}

	_, err := s.Events().ReserveSlotIndices(ctx, "missing", 1)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestSlotIndexIsUniquePerEvent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	ev := seedEvent(t, s)
	start := time.Date(2030, 5, 1, 9, 0, 0, 0, time.UTC)

	seedSlot(t, s, ev.ID, 1, start.Add(24*time.Hour))
	seedSlot(t, s, ev.ID, 0, start)

	dup := domain.Slot{
		ID:      idx.New().String(),
		EventID: ev.ID,
		StartAt: start.Add(48 * time.Hour),
		EndAt:   start.Add(49 * time.Hour),
		Index:   0,
	}
	require.ErrorIs(t, s.Slots().CreateSlots(ctx, []domain.Slot{dup}), store.ErrAlreadyExists)

	slots, err := s.Slots().ListSlotsByEvent(ctx, ev.ID)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	require.Equal(t, 0, slots[0].Index)
	require.True(t, start.Equal(slots[0].StartAt))

	other := seedEvent(t, s)
	_, err = s.Slots().GetSlot(ctx, other.ID, slots[0].ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpsertVoteOverwrites(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	ev := seedEvent(t, s)
	slot := seedSlot(t, s, ev.ID, 0, time.Date(2030, 5, 1, 9, 0, 0, 0, time.UTC))
	p := seedParticipant(t, s, ev.ID, "tok1", domain.RoleMember)

	vote := domain.Vote{EventID: ev.ID, ParticipantID: p.ID, SlotID: slot.ID, Choice: domain.ChoiceYes, UpdatedAt: time.Now()}
	require.NoError(t, s.Votes().UpsertVote(ctx, vote))

	vote.Choice = domain.ChoiceMaybe
	vote.Comment = "if the train is on time"
	require.NoError(t, s.Votes().UpsertVote(ctx, vote))

	votes, err := s.Votes().ListVotesByEvent(ctx, ev.ID)
	require.NoError(t, err)
	require.Len(t, votes, 1)
	require.Equal(t, domain.ChoiceMaybe, votes[0].Choice)
	require.Equal(t, "if the train is on time", votes[0].Comment)
}

func TestParticipantLookupAndTouch(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	a := seedEvent(t, s)
	b := seedEvent(t, s)
	p := seedParticipant(t, s, a.ID, "abc123", domain.RoleMust)

	got, err := s.Participants().GetParticipantByInviteToken(ctx, a.ID, "abc123")
	require.NoError(t, err)
	require.Equal(t, p.ID, got.ID)
	require.Equal(t, domain.RoleMust, got.Role)
	require.Nil(t, got.LastActiveAt)

	_, err = s.Participants().GetParticipantByInviteToken(ctx, b.ID, "abc123")
	require.ErrorIs(t, err, store.ErrNotFound)

	at := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.Participants().TouchParticipant(ctx, p.ID, at))
	require.ErrorIs(t, s.Participants().TouchParticipant(ctx, "missing", at), store.ErrNotFound)

	list, err := s.Participants().ListParticipantsByEvent(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].LastActiveAt)
	require.True(t, at.Equal(*list[0].LastActiveAt))

	dup := domain.Participant{ID: idx.New().String(), EventID: a.ID, Role: domain.RoleMember, InviteToken: "abc123", InvitedAt: time.Now()}
	require.ErrorIs(t, s.Participants().CreateParticipants(ctx, []domain.Participant{dup}), store.ErrAlreadyExists)
}

func TestLatestDecision(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	ev := seedEvent(t, s)
	first := seedSlot(t, s, ev.ID, 0, time.Date(2030, 5, 1, 9, 0, 0, 0, time.UTC))
	second := seedSlot(t, s, ev.ID, 1, time.Date(2030, 5, 2, 9, 0, 0, 0, time.UTC))

	_, err := s.Decisions().GetLatestDecision(ctx, ev.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	at := time.Date(2030, 4, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, s.Decisions().CreateDecision(ctx, domain.Decision{
		ID: idx.New().String(), EventID: ev.ID, SlotID: first.ID,
		DecidedBy: domain.ActorOrganizer, DecidedAt: at, ICSUID: idx.New().String(),
	}))
	require.NoError(t, s.Decisions().CreateDecision(ctx, domain.Decision{
		ID: idx.New().String(), EventID: ev.ID, SlotID: second.ID,
		DecidedBy: domain.ActorAdmin, DecidedAt: at.Add(time.Second), ICSUID: idx.New().String(),
	}))

	latest, err := s.Decisions().GetLatestDecision(ctx, ev.ID)
	require.NoError(t, err)
	require.Equal(t, second.ID, latest.SlotID)
	require.Equal(t, domain.ActorAdmin, latest.DecidedBy)

	all, err := s.Decisions().ListDecisionsByEvent(ctx, ev.ID)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, first.ID, all[0].SlotID)
}

func TestRateLimits(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	origin := "203.0.113." + idx.New().String()

	for _, ago := range []time.Duration{90 * time.Minute, 30 * time.Minute, time.Minute} {
		require.NoError(t, s.RateLimits().RecordAttempt(ctx, domain.RateLimitRecord{
			ID: idx.New().String(), Origin: origin, Path: "/v1/events", CreatedAt: now.Add(-ago),
		}))
	}

	n, err := s.RateLimits().CountRecent(ctx, origin, "/v1/events", now.Add(-time.Hour))
	require.NoError(t, err)
	require.Equal(t, 2, n)

	deleted, err := s.RateLimits().DeleteBefore(ctx, now.Add(-time.Hour))
	require.NoError(t, err)
	require.GreaterOrEqual(t, deleted, int64(1))

	n, err = s.RateLimits().CountRecent(ctx, origin, "/v1/events", now.Add(-2*time.Hour))
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestWithTxRollsBack(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	boom := errors.New("boom")

	id := idx.New().String()
	err := s.WithTx(ctx, func(tx store.Tx) error {
		require.NoError(t, tx.Events().CreateEvent(ctx, domain.Event{
			ID: id, Title: "t", DurationMin: 1, Timezone: "UTC", OrganizerTokenHash: "h",
		}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = s.Events().GetEventByID(ctx, id)
	require.ErrorIs(t, err, store.ErrNotFound)

	err = s.WithTx(ctx, func(tx store.Tx) error {
		return tx.WithTx(ctx, func(store.Tx) error { return nil })
	})
	require.Error(t, err)
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.ApplyMigrations())
}
