package domain

import "time"

type Role string

const (
	RoleMust     Role = "must"
	RoleMember   Role = "member"
	RoleOptional Role = "optional"
)

// ParseRole maps an empty string to RoleMember and rejects unknown roles.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case "":
		return RoleMember, true
	case RoleMust, RoleMember, RoleOptional:
		return Role(s), true
	default:
		return "", false
	}
}

// Weight is the role multiplier used by role-weighted scoring.
func (r Role) Weight() float64 {
	switch r {
	case RoleMust:
		return 2.0
	case RoleOptional:
		return 0.5
	default:
		return 1.0
	}
}

type Participant struct {
	ID           string
	EventID      string
	Name         string
	Email        string
	Role         Role
	InviteToken  string // Unique within the event, never changes
	InvitedAt    time.Time
	LastActiveAt *time.Time // Refreshed on every vote (nullable)
}
