package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/nittei/internal/nittei/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface implemented by the sqlite and
// postgres drivers. Sub-repositories hang off it so a Tx can expose the same
// surface without allowing nested transactions.
type Store interface {
	Events() Events
	Slots() Slots
	Participants() Participants
	Votes() Votes
	Decisions() Decisions
	RateLimits() RateLimits

	ApplyMigrations() error

	// Tx starts a read/write transaction. The caller MUST Commit or Rollback.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise. Inside fn use the tx argument, never the outer
	// store.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error
	Ping(ctx context.Context) error
}

// Tx is a transaction-scoped Store.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Events interface {
	// CreateEvent inserts an event. NextSlotIndex is written as given.
	CreateEvent(ctx context.Context, e domain.Event) error

	GetEventByID(ctx context.Context, id string) (domain.Event, error)

	// RotateOrganizerToken replaces the organizer fingerprint in a single
	// UPDATE. Returns ErrNotFound when the event does not exist.
	RotateOrganizerToken(ctx context.Context, eventID, tokenHash string) error

	// ReserveSlotIndices atomically advances the event's slot counter by n and
	// returns the first reserved index. Returns ErrNotFound for unknown events.
	ReserveSlotIndices(ctx context.Context, eventID string, n int) (int, error)
}

type Slots interface {
	// CreateSlots inserts slots. A duplicate (event, index) is ErrAlreadyExists.
	CreateSlots(ctx context.Context, slots []domain.Slot) error

	// GetSlot returns the slot only if it belongs to eventID.
	GetSlot(ctx context.Context, eventID, slotID string) (domain.Slot, error)

	// ListSlotsByEvent returns slots ordered by index.
	ListSlotsByEvent(ctx context.Context, eventID string) ([]domain.Slot, error)
}

type Participants interface {
	CreateParticipants(ctx context.Context, ps []domain.Participant) error

	// GetParticipantByInviteToken matches token exactly within eventID.
	GetParticipantByInviteToken(ctx context.Context, eventID, token string) (domain.Participant, error)

	// ListParticipantsByEvent returns participants ordered by invitation time.
	ListParticipantsByEvent(ctx context.Context, eventID string) ([]domain.Participant, error)

	// TouchParticipant sets last_active_at.
	TouchParticipant(ctx context.Context, participantID string, at time.Time) error
}

type Votes interface {
	// UpsertVote inserts or overwrites the vote keyed by (participant, slot).
	UpsertVote(ctx context.Context, v domain.Vote) error

	ListVotesByEvent(ctx context.Context, eventID string) ([]domain.Vote, error)
}

type Decisions interface {
	CreateDecision(ctx context.Context, d domain.Decision) error

	// GetLatestDecision returns the decision with the latest decided_at, ties
	// going to the greater id. ErrNotFound when none exists.
	GetLatestDecision(ctx context.Context, eventID string) (domain.Decision, error)

	// ListDecisionsByEvent returns decisions oldest first.
	ListDecisionsByEvent(ctx context.Context, eventID string) ([]domain.Decision, error)
}

type RateLimits interface {
	// CountRecent counts attempts from origin on path at or after since.
	CountRecent(ctx context.Context, origin, path string, since time.Time) (int, error)

	RecordAttempt(ctx context.Context, r domain.RateLimitRecord) error

	// DeleteBefore removes records created before cutoff and reports how many.
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
