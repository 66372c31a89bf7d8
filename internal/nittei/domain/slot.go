package domain

import "time"

// Slot is a candidate time range. Slots are append-only.
type Slot struct {
	ID        string
	EventID   string
	StartAt   time.Time // UTC
	EndAt     time.Time // UTC
	Index     int       // 0..N-1, gap-free per event
	CreatedAt time.Time
}
