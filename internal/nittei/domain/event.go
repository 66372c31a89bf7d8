package domain

import "time"

type Event struct {
	ID                 string
	Title              string
	Description        string
	Location           string
	DurationMin        int
	Timezone           string     // IANA name, e.g. Asia/Tokyo
	DeadlineAt         *time.Time // Votes close for public summaries at this instant (nullable)
	OrganizerTokenHash string     // SHA-256 fingerprint of the current organizer key
	NextSlotIndex      int        // Next free slot ordinal; advanced atomically
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ResultsVisible reports whether anonymous results may be shown at now.
// Events without a deadline are always visible.
func (e Event) ResultsVisible(now time.Time) bool {
	return e.DeadlineAt == nil || !now.Before(*e.DeadlineAt)
}
