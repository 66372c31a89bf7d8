/*
Package nitteisdk provides a client SDK for the nittei group scheduling service.

# Overview

An organizer creates an event with candidate slots and invited participants.
Each participant receives a personal link carrying an invite token and votes
yes, maybe or no per slot. The organizer then finalizes one slot and shares
the resulting calendar entry.

	client := nitteisdk.NewSDKClient("https://nittei.example.com")

	created, err := client.CreateEvent(ctx, nitteisdk.Credentials{AdminKey: secret}, nitteisdk.CreateEventRequest{
		Title:       "Planning",
		DurationMin: 60,
		Slots:       []nitteisdk.SlotRange{{StartAt: "2030-05-01T10:00:00+09:00", EndAt: "2030-05-01T11:00:00+09:00"}},
		Participants: []nitteisdk.ParticipantRequest{{Name: "Aki", Role: "must"}},
	})

# Credentials

Three credentials exist, from weakest to strongest:

  - Invite token: identifies one participant of one event. Sent as the token
    field of CastVoteRequest.
  - Organizer key: returned once by CreateEvent, sent as X-Organizer-Key.
    Grants organizer access to that event only and can be rotated.
  - Admin key: the server's global secret, sent as X-Admin-Key. Grants
    organizer access to every event and permits creation when public
    creation is disabled.

Organizer operations accept either of the last two:

	creds := nitteisdk.Credentials{OrganizerKey: created.OrganizerKey}
	answers, err := client.GetAnswers(ctx, creds, created.Event.ID)

# Errors

Non-success responses are returned as *APIError. Use IsCode to branch on the
error code:

	if nitteisdk.IsCode(err, nitteisdk.ErrorCodeForbidden) {
		// public results are hidden until the deadline
	}
*/
package nitteisdk
