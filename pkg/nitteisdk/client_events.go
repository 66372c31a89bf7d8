package nitteisdk

import (
	"context"
	"net/http"
)

// CreateEvent creates an event with its slots and participants. Admin
// credentials are required unless the server allows public creation.
func (c *SDKClient) CreateEvent(
	ctx context.Context,
	creds Credentials,
	req CreateEventRequest,
) (*CreateEventResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/events", req, creds.headers())
	if err != nil {
		return nil, err
	}

	var out CreateEventResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddSlots appends candidate slots to an event.
func (c *SDKClient) AddSlots(
	ctx context.Context,
	creds Credentials,
	eventID string,
	slots []SlotRange,
) (*AddSlotsResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, eventPath(eventID, "/slots"), AddSlotsRequest{Slots: slots}, creds.headers())
	if err != nil {
		return nil, err
	}

	var out AddSlotsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListInvites returns every participant's invite link.
func (c *SDKClient) ListInvites(ctx context.Context, creds Credentials, eventID string) (*InvitesResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, eventPath(eventID, "/invites"), nil, creds.headers())
	if err != nil {
		return nil, err
	}

	var out InvitesResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// RotateOrganizerKey replaces the event's organizer key. The previous key
// stops working immediately.
func (c *SDKClient) RotateOrganizerKey(ctx context.Context, creds Credentials, eventID string) (string, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, eventPath(eventID, "/organizer-key"), nil, creds.headers())
	if err != nil {
		return "", err
	}

	var out OrganizerKeyResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return "", err
	}
	return out.OrganizerKey, nil
}

// Decide finalizes slotID for the event.
func (c *SDKClient) Decide(ctx context.Context, creds Credentials, eventID, slotID string) (*DecideResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, eventPath(eventID, "/decision"), DecideRequest{SlotID: slotID}, creds.headers())
	if err != nil {
		return nil, err
	}

	var out DecideResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
