package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	ics "github.com/arran4/golang-ical"

	"github.com/aussiebroadwan/nittei/internal/nittei/domain"
	"github.com/aussiebroadwan/nittei/internal/nittei/store"
	"github.com/aussiebroadwan/nittei/pkg/slogx"
)

const (
	CalendarContentType = "text/calendar; charset=utf-8"
	calendarProductID   = "-//nittei//JP"
)

type CalendarService struct {
	Store   store.Store
	SiteURL string
}

// CalendarExport is a rendered iCalendar document for the current decision.
type CalendarExport struct {
	Filename string
	Body     []byte
}

// ExportCurrentDecision renders the event's latest decision as a single
// VEVENT calendar. Without a decision it returns ErrNotFound.
func (s *CalendarService) ExportCurrentDecision(ctx context.Context, eventID string) (CalendarExport, error) {
	log := slogx.FromContext(ctx).With(slog.String("event_id", eventID))

	d, err := s.Store.Decisions().GetLatestDecision(ctx, eventID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return CalendarExport{}, ErrNotFound
		}
		log.Error("failed to load decision", slog.Any("error", err))
		return CalendarExport{}, err
	}

	ev, err := s.Store.Events().GetEventByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return CalendarExport{}, ErrNotFound
		}
		log.Error("failed to load event", slog.Any("error", err))
		return CalendarExport{}, err
	}

	slot, err := s.Store.Slots().GetSlot(ctx, eventID, d.SlotID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return CalendarExport{}, ErrNotFound
		}
		log.Error("failed to load decided slot", slog.Any("error", err))
		return CalendarExport{}, err
	}

	return CalendarExport{
		Filename: "event-" + ev.ID + ".ics",
		Body:     []byte(RenderCalendar(ev, slot, d, EventURL(s.SiteURL, ev.ID))),
	}, nil
}

// RenderCalendar builds the VCALENDAR document with CRLF line endings.
func RenderCalendar(ev domain.Event, slot domain.Slot, d domain.Decision, link string) string {
	cal := ics.NewCalendar()
	cal.SetProductId(calendarProductID)
	cal.SetVersion("2.0")
	cal.SetCalscale("GREGORIAN")
	cal.SetMethod(ics.MethodPublish)

	vev := cal.AddEvent(d.ICSUID)
	vev.SetDtStampTime(d.DecidedAt)
	vev.SetStartAt(slot.StartAt)
	vev.SetEndAt(slot.EndAt)
	vev.SetSummary(stripText(ev.Title))

	description := link
	if ev.Description != "" {
		description = ev.Description + "\n" + link
	}
	vev.SetDescription(stripText(description))
	vev.SetURL(link)
	if ev.Location != "" {
		vev.SetLocation(stripText(ev.Location))
	}

	return cal.Serialize(ics.WithNewLineWindows)
}

// textStripper drops the characters the calendar text policy removes
// outright. Backslash and newline escaping happens during serialization.
var textStripper = strings.NewReplacer(",", "", ";", "", "\r", "")

func stripText(s string) string {
	return textStripper.Replace(s)
}
