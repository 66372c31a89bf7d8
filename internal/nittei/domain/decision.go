package domain

import "time"

type Actor string

const (
	ActorAdmin     Actor = "admin"
	ActorOrganizer Actor = "organizer"
)

// Decision is an append-only record. The current decision for an event is
// the one with the latest DecidedAt.
type Decision struct {
	ID        string
	EventID   string
	SlotID    string
	DecidedBy Actor
	DecidedAt time.Time
	ICSUID    string // Stable calendar UID, reused on every export
}
