package postgres

import (
	"time"

	"github.com/aussiebroadwan/nittei/internal/nittei/domain"
)

type eventModel struct {
	ID                 string     `gorm:"column:id;primaryKey"`
	Title              string     `gorm:"column:title"`
	Description        string     `gorm:"column:description"`
	Location           string     `gorm:"column:location"`
	DurationMin        int        `gorm:"column:duration_min"`
	Timezone           string     `gorm:"column:timezone"`
	DeadlineAt         *time.Time `gorm:"column:deadline_at"`
	OrganizerTokenHash string     `gorm:"column:organizer_token_hash"`
	NextSlotIndex      int        `gorm:"column:next_slot_index"`
	CreatedAt          time.Time  `gorm:"column:created_at"`
	UpdatedAt          time.Time  `gorm:"column:updated_at"`
}

func (eventModel) TableName() string {
	return "events"
}

func eventModelFromDomain(e domain.Event) eventModel {
	return eventModel{
		ID:                 e.ID,
		Title:              e.Title,
		Description:        e.Description,
		Location:           e.Location,
		DurationMin:        e.DurationMin,
		Timezone:           e.Timezone,
		DeadlineAt:         optionalUTC(e.DeadlineAt),
		OrganizerTokenHash: e.OrganizerTokenHash,
		NextSlotIndex:      e.NextSlotIndex,
		CreatedAt:          e.CreatedAt.UTC(),
		UpdatedAt:          e.UpdatedAt.UTC(),
	}
}

func (m eventModel) toDomain() domain.Event {
	return domain.Event{
		ID:                 m.ID,
		Title:              m.Title,
		Description:        m.Description,
		Location:           m.Location,
		DurationMin:        m.DurationMin,
		Timezone:           m.Timezone,
		DeadlineAt:         optionalUTC(m.DeadlineAt),
		OrganizerTokenHash: m.OrganizerTokenHash,
		NextSlotIndex:      m.NextSlotIndex,
		CreatedAt:          m.CreatedAt.UTC(),
		UpdatedAt:          m.UpdatedAt.UTC(),
	}
}

type slotModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	EventID   string    `gorm:"column:event_id"`
	StartAt   time.Time `gorm:"column:start_at"`
	EndAt     time.Time `gorm:"column:end_at"`
	SlotIndex int       `gorm:"column:slot_index"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (slotModel) TableName() string {
	return "event_slots"
}

func slotModelFromDomain(s domain.Slot) slotModel {
	return slotModel{
		ID:        s.ID,
		EventID:   s.EventID,
		StartAt:   s.StartAt.UTC(),
		EndAt:     s.EndAt.UTC(),
		SlotIndex: s.Index,
		CreatedAt: s.CreatedAt.UTC(),
	}
}

func (m slotModel) toDomain() domain.Slot {
	return domain.Slot{
		ID:        m.ID,
		EventID:   m.EventID,
		StartAt:   m.StartAt.UTC(),
		EndAt:     m.EndAt.UTC(),
		Index:     m.SlotIndex,
		CreatedAt: m.CreatedAt.UTC(),
	}
}

type participantModel struct {
	ID           string     `gorm:"column:id;primaryKey"`
	EventID      string     `gorm:"column:event_id"`
	Name         string     `gorm:"column:name"`
	Email        string     `gorm:"column:email"`
	Role         string     `gorm:"column:role"`
	InviteToken  string     `gorm:"column:invite_token"`
	InvitedAt    time.Time  `gorm:"column:invited_at"`
	LastActiveAt *time.Time `gorm:"column:last_active_at"`
}

func (participantModel) TableName() string {
	return "participants"
}

func participantModelFromDomain(p domain.Participant) participantModel {
	return participantModel{
		ID:           p.ID,
		EventID:      p.EventID,
		Name:         p.Name,
		Email:        p.Email,
		Role:         string(p.Role),
		InviteToken:  p.InviteToken,
		InvitedAt:    p.InvitedAt.UTC(),
		LastActiveAt: optionalUTC(p.LastActiveAt),
	}
}

func (m participantModel) toDomain() domain.Participant {
	return domain.Participant{
		ID:           m.ID,
		EventID:      m.EventID,
		Name:         m.Name,
		Email:        m.Email,
		Role:         domain.Role(m.Role),
		InviteToken:  m.InviteToken,
		InvitedAt:    m.InvitedAt.UTC(),
		LastActiveAt: optionalUTC(m.LastActiveAt),
	}
}

type voteModel struct {
	EventID       string    `gorm:"column:event_id"`
	ParticipantID string    `gorm:"column:participant_id;primaryKey"`
	SlotID        string    `gorm:"column:slot_id;primaryKey"`
	Choice        string    `gorm:"column:choice"`
	Comment       string    `gorm:"column:comment"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (voteModel) TableName() string {
	return "votes"
}

func (m voteModel) toDomain() domain.Vote {
	return domain.Vote{
		EventID:       m.EventID,
		ParticipantID: m.ParticipantID,
		SlotID:        m.SlotID,
		Choice:        domain.Choice(m.Choice),
		Comment:       m.Comment,
		UpdatedAt:     m.UpdatedAt.UTC(),
	}
}

type decisionModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	EventID   string    `gorm:"column:event_id"`
	SlotID    string    `gorm:"column:slot_id"`
	DecidedBy string    `gorm:"column:decided_by"`
	DecidedAt time.Time `gorm:"column:decided_at"`
	ICSUID    string    `gorm:"column:ics_uid"`
}

func (decisionModel) TableName() string {
	return "decisions"
}

func (m decisionModel) toDomain() domain.Decision {
	return domain.Decision{
		ID:        m.ID,
		EventID:   m.EventID,
		SlotID:    m.SlotID,
		DecidedBy: domain.Actor(m.DecidedBy),
		DecidedAt: m.DecidedAt.UTC(),
		ICSUID:    m.ICSUID,
	}
}

type rateLimitModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Origin    string    `gorm:"column:origin"`
	Path      string    `gorm:"column:path"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (rateLimitModel) TableName() string {
	return "rate_limits"
}
