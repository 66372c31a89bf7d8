package http

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/nittei/internal/nittei/service"
	"github.com/aussiebroadwan/nittei/pkg/httpx"
	"github.com/aussiebroadwan/nittei/pkg/nitteisdk"
)

type EventsHandler struct {
	EventService *service.EventService
	SlotService  *service.SlotService
}

// HandleCreate godoc
//
//	@Summary		Create Event
//	@Description	Create an event with its candidate slots and invited participants in one step.
//	@Description	Requires the admin key unless public creation is enabled, in which case creation is throttled per client address.
//	@Description	The organizer key in the response is shown only once.
//	@Tags			Events
//	@Accept			json
//	@Produce		json
//	@Param			request	body		nitteisdk.CreateEventRequest	true	"Event definition"
//	@Success		201		{object}	nitteisdk.CreateEventResponse	"event, slots, participants, invites, organizer_key"
//	@Failure		400		{object}	nitteisdk.ErrorResponse			"error, error_description"
//	@Failure		401		{object}	nitteisdk.ErrorResponse			"error, error_description"
//	@Failure		429		{object}	nitteisdk.ErrorResponse			"error, error_description"
//	@Failure		500		{object}	nitteisdk.ErrorResponse			"error, error_description"
//	@Security		AdminKey
//	@Router			/v1/events [post].
func (h *EventsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req nitteisdk.CreateEventRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		// Credentials still come first, so an anonymous caller learns nothing.
		if !h.EventService.PublicCreate {
			if authErr := h.EventService.Access.RequireAdmin(ctx, adminKey(r)); authErr != nil {
				writeUnauthorized(w)
				return
			}
		}
		writeInvalidJSON(w)
		return
	}

	participants := make([]service.ParticipantInput, len(req.Participants))
	for i, p := range req.Participants {
		participants[i] = service.ParticipantInput{Name: p.Name, Email: p.Email, Role: p.Role}
	}

	created, err := h.EventService.CreateEvent(ctx, service.CreateEventInput{
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		DurationMin:  req.DurationMin,
		Timezone:     req.Timezone,
		DeadlineAt:   req.DeadlineAt,
		Slots:        toSlotInputs(req.Slots),
		Participants: participants,
	}, adminKey(r), httpx.IPKeyExtractor(r))
	if err != nil {
		writeServiceError(w, r, err, "create event", "Event not found")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, nitteisdk.CreateEventResponse{
		Event:        toEvent(created.Event),
		Slots:        toSlots(created.Slots),
		Participants: toParticipants(created.Participants),
		Invites:      toInvites(created.Invites),
		OrganizerKey: created.OrganizerKey,
	})
}

// HandleAddSlots godoc
//
//	@Summary		Add Slots
//	@Description	Append candidate slots to an event. Indices continue the event's sequence without gaps.
//	@Tags			Events
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Event ID"
//	@Param			request	body		nitteisdk.AddSlotsRequest	true	"Slots to append"
//	@Success		200		{object}	nitteisdk.AddSlotsResponse	"slots"
//	@Failure		400		{object}	nitteisdk.ErrorResponse		"error, error_description"
//	@Failure		401		{object}	nitteisdk.ErrorResponse		"error, error_description"
//	@Failure		404		{object}	nitteisdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	nitteisdk.ErrorResponse		"error, error_description"
//	@Security		AdminKey
//	@Security		OrganizerKey
//	@Router			/v1/events/{id}/slots [post].
func (h *EventsHandler) HandleAddSlots(w http.ResponseWriter, r *http.Request) {
	var req nitteisdk.AddSlotsRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeInvalidJSON(w)
		return
	}

	slots, err := h.SlotService.AddSlots(r.Context(), r.PathValue("id"), toSlotInputs(req.Slots))
	if err != nil {
		writeServiceError(w, r, err, "add slots", "Event not found")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, nitteisdk.AddSlotsResponse{Slots: toSlots(slots)})
}

// HandleListInvites godoc
//
//	@Summary		List Invites
//	@Description	List every participant's personal voting link, most important roles first.
//	@Tags			Events
//	@Produce		json
//	@Param			id	path		string						true	"Event ID"
//	@Success		200	{object}	nitteisdk.InvitesResponse	"event_id, title, invites"
//	@Failure		401	{object}	nitteisdk.ErrorResponse		"error, error_description"
//	@Failure		404	{object}	nitteisdk.ErrorResponse		"error, error_description"
//	@Failure		500	{object}	nitteisdk.ErrorResponse		"error, error_description"
//	@Security		AdminKey
//	@Security		OrganizerKey
//	@Router			/v1/events/{id}/invites [get].
func (h *EventsHandler) HandleListInvites(w http.ResponseWriter, r *http.Request) {
	ev, invites, err := h.EventService.ListInvites(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "list invites", "Event not found")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, nitteisdk.InvitesResponse{
		EventID: ev.ID,
		Title:   ev.Title,
		Invites: toInvites(invites),
	})
}

// HandleRotateOrganizerKey godoc
//
//	@Summary		Rotate Organizer Key
//	@Description	Issue a new organizer key for the event. The previous key stops working immediately.
//	@Tags			Events
//	@Produce		json
//	@Param			id	path		string							true	"Event ID"
//	@Success		200	{object}	nitteisdk.OrganizerKeyResponse	"organizer_key"
//	@Failure		401	{object}	nitteisdk.ErrorResponse			"error, error_description"
//	@Failure		500	{object}	nitteisdk.ErrorResponse			"error, error_description"
//	@Security		AdminKey
//	@Security		OrganizerKey
//	@Router			/v1/events/{id}/organizer-key [post].
func (h *EventsHandler) HandleRotateOrganizerKey(w http.ResponseWriter, r *http.Request) {
	key, err := h.EventService.RotateOrganizerKey(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "rotate organizer key", "Event not found")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, nitteisdk.OrganizerKeyResponse{OrganizerKey: key})
}

func adminKey(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(nitteisdk.AdminKeyHeader))
}
