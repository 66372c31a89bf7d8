package service

import (
	"context"
	"errors"
	"log/slog"
	"regexp"

	"github.com/aussiebroadwan/nittei/internal/nittei/domain"
	"github.com/aussiebroadwan/nittei/internal/nittei/store"
	"github.com/aussiebroadwan/nittei/pkg/cryptox"
	"github.com/aussiebroadwan/nittei/pkg/slogx"
)

// AccessService evaluates credentials against the capability levels
// Public < Participant < EventOrganizer < GlobalAdmin. Every failure is
// reported as ErrUnauthorized; the reason is only logged.
type AccessService struct {
	Store       store.Store
	AdminSecret string // Empty disables admin access entirely
}

var tokenRun = regexp.MustCompile(`[A-Za-z0-9]+`)

// SanitizeToken returns the first alphanumeric run of raw, so a token pasted
// with surrounding text ("abc123 Alice: https://...") still matches.
func SanitizeToken(raw string) string {
	return tokenRun.FindString(raw)
}

// RequireAdmin succeeds only when credential equals the admin secret.
func (s *AccessService) RequireAdmin(ctx context.Context, credential string) error {
	if !cryptox.Equal(credential, s.AdminSecret) {
		slogx.FromContext(ctx).Warn("admin credential rejected",
			slog.Bool("credential_present", credential != ""),
		)
		return ErrUnauthorized
	}
	return nil
}

// RequireCreatePermission allows anyone when public creation is enabled and
// otherwise requires the admin secret.
func (s *AccessService) RequireCreatePermission(ctx context.Context, credential string, publicCreate bool) error {
	if publicCreate {
		return nil
	}
	return s.RequireAdmin(ctx, credential)
}

// RequireOrganizerOrAdmin accepts the admin secret, or an organizer key that
// matches the event's current key. It reports which role was accepted.
func (s *AccessService) RequireOrganizerOrAdmin(
	ctx context.Context,
	adminCredential string,
	organizerCredential string,
	eventID string,
) (domain.Actor, error) {
	log := slogx.FromContext(ctx).With(slog.String("event_id", eventID))

	if cryptox.Equal(adminCredential, s.AdminSecret) {
		return domain.ActorAdmin, nil
	}

	if organizerCredential == "" {
		log.Warn("organizer credential missing")
		return "", ErrUnauthorized
	}

	ev, err := s.Store.Events().GetEventByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("organizer credential presented for unknown event")
			return "", ErrUnauthorized
		}
		log.Error("failed to load event for organizer check", slog.Any("error", err))
		return "", err
	}

	if !cryptox.Equal(cryptox.FingerprintToken(organizerCredential), ev.OrganizerTokenHash) {
		log.Warn("organizer credential mismatch")
		return "", ErrUnauthorized
	}

	return domain.ActorOrganizer, nil
}

// AuthenticateParticipant resolves an invite token to its participant within
// eventID.
func (s *AccessService) AuthenticateParticipant(
	ctx context.Context,
	rawToken string,
	eventID string,
) (domain.Participant, error) {
	log := slogx.FromContext(ctx).With(slog.String("event_id", eventID))

	token := SanitizeToken(rawToken)
	if token == "" {
		log.Warn("participant token missing or not alphanumeric")
		return domain.Participant{}, ErrUnauthorized
	}

	p, err := s.Store.Participants().GetParticipantByInviteToken(ctx, eventID, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("participant token not recognised")
			return domain.Participant{}, ErrUnauthorized
		}
		log.Error("failed to look up participant", slog.Any("error", err))
		return domain.Participant{}, err
	}

	return p, nil
}
