package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"net/url"
	"slices"
	"strings"
	"time"
	_ "time/tzdata" // Zone names must resolve on hosts without zoneinfo
	"unicode/utf8"

	"github.com/aussiebroadwan/nittei/internal/nittei/domain"
	"github.com/aussiebroadwan/nittei/internal/nittei/store"
	"github.com/aussiebroadwan/nittei/pkg/cryptox"
	"github.com/aussiebroadwan/nittei/pkg/idx"
	"github.com/aussiebroadwan/nittei/pkg/slogx"
)

const (
	DefaultTimezone = "Asia/Tokyo"
	DefaultSiteURL  = "http://localhost:3000"

	maxTitleLen       = 200
	maxDescriptionLen = 5000
)

type ParticipantInput struct {
	Name  string
	Email string
	Role  string // must, member, optional; empty means member
}

type CreateEventInput struct {
	Title        string
	Description  string
	Location     string
	DurationMin  int
	Timezone     string // Empty means the configured default
	DeadlineAt   string // Optional RFC 3339 instant
	Slots        []SlotInput
	Participants []ParticipantInput
}

// Invite is a participant's personal voting link.
type Invite struct {
	ParticipantID string
	Name          string
	Email         string
	Role          domain.Role
	URL           string
}

type CreatedEvent struct {
	Event        domain.Event
	Slots        []domain.Slot
	Participants []domain.Participant
	Invites      []Invite
	OrganizerKey string // Returned once; only its fingerprint is stored
}

type EventService struct {
	Store           store.Store
	Access          *AccessService
	Throttle        *CreateThrottle
	PublicCreate    bool
	SiteURL         string
	DefaultTimezone string
}

// CreateEvent checks create permission, validates in, applies the public
// create throttle and inserts the event with its slots and participants in
// one transaction.
func (s *EventService) CreateEvent(
	ctx context.Context,
	in CreateEventInput,
	adminCredential string,
	origin string,
) (CreatedEvent, error) {
	log := slogx.FromContext(ctx)

	// 1. Permission
	if err := s.Access.RequireCreatePermission(ctx, adminCredential, s.PublicCreate); err != nil {
		return CreatedEvent{}, err
	}

	// 2. Validation
	draft, err := s.validateCreate(in)
	if err != nil {
		return CreatedEvent{}, err
	}

	// 3. Throttle, only for anonymous creation
	if s.PublicCreate && s.Throttle != nil {
		if err := s.Throttle.CheckAndRecord(ctx, origin).Err(); err != nil {
			return CreatedEvent{}, err
		}
	}

	// 4. Insert everything atomically
	organizerKey, err := cryptox.GenerateToken(cryptox.OrganizerTokenSize)
	if err != nil {
		log.Error("failed to generate organizer key", slog.Any("error", err))
		return CreatedEvent{}, err
	}

	now := time.Now().UTC()
	ev := draft.event
	ev.ID = idx.New().String()
	ev.OrganizerTokenHash = cryptox.FingerprintToken(organizerKey)
	ev.CreatedAt = now
	ev.UpdatedAt = now

	participants := make([]domain.Participant, len(draft.participants))
	for i, p := range draft.participants {
		token, err := cryptox.GenerateToken(cryptox.InviteTokenSize)
		if err != nil {
			log.Error("failed to generate invite token", slog.Any("error", err))
			return CreatedEvent{}, err
		}
		p.ID = idx.New().String()
		p.EventID = ev.ID
		p.InviteToken = token
		p.InvitedAt = now
		participants[i] = p
	}

	var slots []domain.Slot
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Events().CreateEvent(ctx, ev); err != nil {
			return fmt.Errorf("insert event: %w", err)
		}
		var err error
		if slots, err = allocateSlots(ctx, tx, ev.ID, draft.slots, now); err != nil {
			return fmt.Errorf("insert slots: %w", err)
		}
		if err := tx.Participants().CreateParticipants(ctx, participants); err != nil {
			return fmt.Errorf("insert participants: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Error("failed to create event", slog.Any("error", err))
		return CreatedEvent{}, err
	}
	ev.NextSlotIndex = len(slots)

	log.Info("event created",
		slog.String("event_id", ev.ID),
		slog.Int("slots", len(slots)),
		slog.Int("participants", len(participants)),
		slog.Bool("public", s.PublicCreate),
	)

	return CreatedEvent{
		Event:        ev,
		Slots:        slots,
		Participants: participants,
		Invites:      s.invites(ev.ID, participants),
		OrganizerKey: organizerKey,
	}, nil
}

type eventDraft struct {
	event        domain.Event
	slots        []SlotRange
	participants []domain.Participant
}

func (s *EventService) validateCreate(in CreateEventInput) (eventDraft, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return eventDraft{}, invalidf("title: required")
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return eventDraft{}, invalidf("title: at most %d characters", maxTitleLen)
	}
	if utf8.RuneCountInString(in.Description) > maxDescriptionLen {
		return eventDraft{}, invalidf("description: at most %d characters", maxDescriptionLen)
	}
	if in.DurationMin <= 0 {
		return eventDraft{}, invalidf("duration_min: must be a positive number of minutes")
	}

	tz := strings.TrimSpace(in.Timezone)
	if tz == "" {
		tz = cmp.Or(s.DefaultTimezone, DefaultTimezone)
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return eventDraft{}, invalidf("timezone: unknown IANA zone %q", tz)
	}

	var deadline *time.Time
	if strings.TrimSpace(in.DeadlineAt) != "" {
		t, err := parseInstant(in.DeadlineAt)
		if err != nil {
			return eventDraft{}, invalidf("deadline_at: must be an RFC 3339 timestamp with zone")
		}
		deadline = &t
	}

	ranges, err := ParseSlotRanges(in.Slots)
	if err != nil {
		return eventDraft{}, err
	}

	if len(in.Participants) == 0 {
		return eventDraft{}, invalidf("participants: at least one participant is required")
	}
	participants := make([]domain.Participant, 0, len(in.Participants))
	for i, p := range in.Participants {
		role, ok := domain.ParseRole(strings.TrimSpace(p.Role))
		if !ok {
			return eventDraft{}, invalidf("participants[%d].role: must be one of must, member, optional", i)
		}
		email := strings.TrimSpace(p.Email)
		if email != "" {
			addr, err := mail.ParseAddress(email)
			if err != nil || addr.Address != email {
				return eventDraft{}, invalidf("participants[%d].email: not a valid address", i)
			}
		}
		participants = append(participants, domain.Participant{
			Name:  strings.TrimSpace(p.Name),
			Email: email,
			Role:  role,
		})
	}

	return eventDraft{
		event: domain.Event{
			Title:       title,
			Description: in.Description,
			Location:    strings.TrimSpace(in.Location),
			DurationMin: in.DurationMin,
			Timezone:    tz,
			DeadlineAt:  deadline,
		},
		slots:        ranges,
		participants: participants,
	}, nil
}

// RotateOrganizerKey issues a new organizer key for the event, invalidating
// the previous one. Callers must already hold organizer-or-admin access.
func (s *EventService) RotateOrganizerKey(ctx context.Context, eventID string) (string, error) {
	log := slogx.FromContext(ctx).With(slog.String("event_id", eventID))

	key, err := cryptox.GenerateToken(cryptox.OrganizerTokenSize)
	if err != nil {
		log.Error("failed to generate organizer key", slog.Any("error", err))
		return "", err
	}

	if err := s.Store.Events().RotateOrganizerToken(ctx, eventID, cryptox.FingerprintToken(key)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrNotFound
		}
		log.Error("failed to rotate organizer key", slog.Any("error", err))
		return "", err
	}

	log.Info("organizer key rotated")
	return key, nil
}

// ListInvites returns the event and every participant's invite link, most
// important roles first.
func (s *EventService) ListInvites(ctx context.Context, eventID string) (domain.Event, []Invite, error) {
	log := slogx.FromContext(ctx).With(slog.String("event_id", eventID))

	ev, err := s.Store.Events().GetEventByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Event{}, nil, ErrNotFound
		}
		log.Error("failed to load event", slog.Any("error", err))
		return domain.Event{}, nil, err
	}

	participants, err := s.Store.Participants().ListParticipantsByEvent(ctx, eventID)
	if err != nil {
		log.Error("failed to list participants", slog.Any("error", err))
		return domain.Event{}, nil, err
	}

	// Stable sort keeps invitation order within a role.
	slices.SortStableFunc(participants, func(a, b domain.Participant) int {
		return cmp.Compare(b.Role.Weight(), a.Role.Weight())
	})

	return ev, s.invites(ev.ID, participants), nil
}

func (s *EventService) invites(eventID string, participants []domain.Participant) []Invite {
	out := make([]Invite, len(participants))
	for i, p := range participants {
		out[i] = Invite{
			ParticipantID: p.ID,
			Name:          p.Name,
			Email:         p.Email,
			Role:          p.Role,
			URL:           InviteURL(s.SiteURL, eventID, p.InviteToken),
		}
	}
	return out
}

// EventURL is the canonical public link for an event.
func EventURL(siteURL, eventID string) string {
	base := strings.TrimSuffix(cmp.Or(siteURL, DefaultSiteURL), "/")
	return base + "/event/" + url.PathEscape(eventID)
}

// InviteURL is the personal voting link for one participant.
func InviteURL(siteURL, eventID, token string) string {
	return EventURL(siteURL, eventID) + "?t=" + url.QueryEscape(token)
}
