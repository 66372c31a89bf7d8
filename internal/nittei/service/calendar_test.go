package service

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/emersion/go-ical"

	"github.com/aussiebroadwan/nittei/internal/nittei/domain"
	"github.com/stretchr/testify/require"
)

func decodeSingleEvent(t *testing.T, body []byte) *ical.Component {
	t.Helper()

	dec := ical.NewDecoder(bytes.NewReader(body))
	cal, err := dec.Decode()
	require.NoError(t, err)

	_, err = dec.Decode()
	require.ErrorIs(t, err, io.EOF)

	var events []*ical.Component
	for _, comp := range cal.Children {
		if comp.Name == ical.CompEvent {
			events = append(events, comp)
		}
	}
	require.Len(t, events, 1)
	return events[0]
}

func TestExportCurrentDecision(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	in := baseInput()
	in.Title = "Kickoff, round; two"
	in.Description = "Agenda:\nintro\\outro"
	created := f.createEvent(t, in)
	id := created.Event.ID

	_, err := f.calendar.ExportCurrentDecision(ctx, id)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = f.decisions.Decide(ctx, id, created.Slots[0].ID, domain.ActorAdmin)
	require.NoError(t, err)
	d, err := f.decisions.Decide(ctx, id, created.Slots[1].ID, domain.ActorOrganizer)
	require.NoError(t, err)

	export, err := f.calendar.ExportCurrentDecision(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "event-"+id+".ics", export.Filename)

	body := string(export.Body)
	require.True(t, strings.HasPrefix(body, "BEGIN:VCALENDAR\r\n"))
	require.Contains(t, body, "PRODID:-//nittei//JP\r\n")
	require.Contains(t, body, "METHOD:PUBLISH\r\n")
	require.Contains(t, body, "CALSCALE:GREGORIAN\r\n")
	require.Contains(t, body, "DTSTART:20300502T010000Z\r\n")
	require.Contains(t, body, "DTEND:20300502T020000Z\r\n")
	require.Contains(t, body, "SUMMARY:Kickoff round two\r\n")

	ev := decodeSingleEvent(t, export.Body)
	require.Equal(t, d.ICSUID, ev.Props.Get(ical.PropUID).Value)

	start, err := ev.Props.Get(ical.PropDateTimeStart).DateTime(time.UTC)
	require.NoError(t, err)
	require.True(t, created.Slots[1].StartAt.Equal(start))

	desc, err := ev.Props.Text(ical.PropDescription)
	require.NoError(t, err)
	link := "https://nittei.example/event/" + id
	require.Equal(t, "Agenda:\nintro\\outro\n"+link, desc)
	require.Equal(t, link, ev.Props.Get(ical.PropURL).Value)
	require.Nil(t, ev.Props.Get(ical.PropLocation))
}

func TestRenderCalendarOptionalFields(t *testing.T) {
	t.Parallel()

	start := time.Date(2030, 3, 4, 5, 6, 7, 0, time.UTC)
	ev := domain.Event{ID: "E1", Title: "Sync", Location: "Room 4; east"}
	slot := domain.Slot{StartAt: start, EndAt: start.Add(30 * time.Minute)}
	d := domain.Decision{ICSUID: "uid-1", DecidedAt: start}

	body := RenderCalendar(ev, slot, d, "https://x.example/event/E1")
	require.Contains(t, body, "DESCRIPTION:https://x.example/event/E1\r\n")
	require.Contains(t, body, "LOCATION:Room 4 east\r\n")
	require.Contains(t, body, "DTSTAMP:20300304T050607Z\r\n")
	require.NotContains(t, body, "\r\r")
	require.True(t, strings.HasSuffix(body, "END:VCALENDAR\r\n"))
}
