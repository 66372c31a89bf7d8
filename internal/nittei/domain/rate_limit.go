package domain

import "time"

type RateLimitRecord struct {
	ID        string
	Origin    string
	Path      string
	CreatedAt time.Time
}
