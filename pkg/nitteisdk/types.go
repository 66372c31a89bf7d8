package nitteisdk

import "time"

// ============================================================================
// Credentials
// ============================================================================

const (
	// AdminKeyHeader carries the global admin secret.
	AdminKeyHeader = "X-Admin-Key"

	// OrganizerKeyHeader carries the per-event organizer key.
	OrganizerKeyHeader = "X-Organizer-Key"
)

// Credentials are sent as headers on organizer and admin requests. Either
// field may be empty.
type Credentials struct {
	AdminKey     string
	OrganizerKey string
}

func (c Credentials) headers() map[string]string {
	h := map[string]string{}
	if c.AdminKey != "" {
		h[AdminKeyHeader] = c.AdminKey
	}
	if c.OrganizerKey != "" {
		h[OrganizerKeyHeader] = c.OrganizerKey
	}
	return h
}

// ============================================================================
// Error Types
// ============================================================================

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	// Error is the machine readable code (e.g., "invalid_request")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// ============================================================================
// Event Types
// ============================================================================

// SlotRange is a candidate time range as RFC 3339 instants with zone.
type SlotRange struct {
	StartAt string `json:"start_at" example:"2030-05-01T10:00:00+09:00"`
	EndAt   string `json:"end_at" example:"2030-05-01T11:00:00+09:00"`
}

type ParticipantRequest struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`

	// Role is one of must, member, optional. Empty means member.
	Role string `json:"role,omitempty" enums:"must,member,optional"`
}

// CreateEventRequest is the body of POST /v1/events.
type CreateEventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	DurationMin int    `json:"duration_min"`

	// Timezone is an IANA zone name; empty selects the server default.
	Timezone string `json:"timezone,omitempty" example:"Asia/Tokyo"`

	// DeadlineAt gates the public summary until this instant.
	DeadlineAt string `json:"deadline_at,omitempty"`

	Slots        []SlotRange          `json:"slots"`
	Participants []ParticipantRequest `json:"participants"`
}

type Event struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Location    string     `json:"location,omitempty"`
	DurationMin int        `json:"duration_min"`
	Timezone    string     `json:"timezone"`
	DeadlineAt  *time.Time `json:"deadline_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type Slot struct {
	ID      string    `json:"id"`
	Index   int       `json:"index"`
	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`
}

type Participant struct {
	ID           string     `json:"id"`
	Name         string     `json:"name,omitempty"`
	Email        string     `json:"email,omitempty"`
	Role         string     `json:"role"`
	InvitedAt    time.Time  `json:"invited_at"`
	LastActiveAt *time.Time `json:"last_active_at,omitempty"`
}

// Invite is a participant's personal voting link. The token is embedded in
// URL as the t query parameter.
type Invite struct {
	ParticipantID string `json:"participant_id"`
	Name          string `json:"name,omitempty"`
	Email         string `json:"email,omitempty"`
	Role          string `json:"role"`
	URL           string `json:"url"`
}

// CreateEventResponse is returned once; OrganizerKey cannot be retrieved
// again, only rotated.
type CreateEventResponse struct {
	Event        Event         `json:"event"`
	Slots        []Slot        `json:"slots"`
	Participants []Participant `json:"participants"`
	Invites      []Invite      `json:"invites"`
	OrganizerKey string        `json:"organizer_key"`
}

type AddSlotsRequest struct {
	Slots []SlotRange `json:"slots"`
}

type AddSlotsResponse struct {
	Slots []Slot `json:"slots"`
}

type InvitesResponse struct {
	EventID string   `json:"event_id"`
	Title   string   `json:"title"`
	Invites []Invite `json:"invites"`
}

type OrganizerKeyResponse struct {
	OrganizerKey string `json:"organizer_key"`
}

// ============================================================================
// Vote Types
// ============================================================================

// CastVoteRequest is the body of POST /v1/events/{id}/votes.
type CastVoteRequest struct {
	// Token is the participant's invite token. Surrounding text is tolerated.
	Token   string `json:"token"`
	SlotID  string `json:"slot_id"`
	Choice  string `json:"choice" enums:"yes,maybe,no"`
	Comment string `json:"comment,omitempty"`
}

type Vote struct {
	ParticipantID string    `json:"participant_id"`
	SlotID        string    `json:"slot_id"`
	Choice        string    `json:"choice"`
	Comment       string    `json:"comment,omitempty"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type OKResponse struct {
	OK bool `json:"ok"`
}

// ============================================================================
// Summary Types
// ============================================================================

// SlotCounts is one slot's aggregated votes.
type SlotCounts struct {
	SlotID  string    `json:"slot_id"`
	Index   int       `json:"index"`
	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`
	Yes     int       `json:"yes"`
	Maybe   int       `json:"maybe"`
	No      int       `json:"no"`
	Score   float64   `json:"score"`
}

// AnswersResponse is the organizer's full view of responses.
type AnswersResponse struct {
	Event        Event         `json:"event"`
	Slots        []Slot        `json:"slots"`
	Participants []Participant `json:"participants"`
	Votes        []Vote        `json:"votes"`
	Counts       []SlotCounts  `json:"counts"`
}

// SummaryResponse lists slots best first by role-weighted score.
type SummaryResponse struct {
	Event  Event        `json:"event"`
	Ranked []SlotCounts `json:"ranked"`
}

type PublicSummaryResponse struct {
	Event  Event        `json:"event"`
	Counts []SlotCounts `json:"counts"`
}

// ============================================================================
// Decision Types
// ============================================================================

type DecideRequest struct {
	SlotID string `json:"slot_id"`
}

type Decision struct {
	ID        string    `json:"id"`
	SlotID    string    `json:"slot_id"`
	DecidedBy string    `json:"decided_by"`
	DecidedAt time.Time `json:"decided_at"`
	ICSUID    string    `json:"ics_uid"`
}

type DecideResponse struct {
	OK       bool     `json:"ok"`
	Decision Decision `json:"decision"`
}

// ============================================================================
// Health Types
// ============================================================================

type HealthChecks struct {
	Database string `json:"database"`
}

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
