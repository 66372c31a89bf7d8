package http

import (
	"mime"
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/nittei/internal/nittei/service"
	"github.com/aussiebroadwan/nittei/pkg/httpx"
)

type CalendarHandler struct {
	CalendarService *service.CalendarService
}

// ServeHTTP godoc
//
//	@Summary		Export Calendar
//	@Description	Download the current decision as an iCalendar (RFC 5545) document with a single VEVENT.
//	@Tags			Decisions
//	@Produce		text/calendar
//	@Param			id	path		string					true	"Event ID"
//	@Success		200	{string}	string					"VCALENDAR document"
//	@Failure		404	{object}	nitteisdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	nitteisdk.ErrorResponse	"error, error_description"
//	@Router			/v1/events/{id}/calendar.ics [get].
func (h *CalendarHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	export, err := h.CalendarService.ExportCurrentDecision(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "export calendar", "No decision has been made for this event")
		return
	}

	httpx.NoCache(w)
	w.Header().Set("Content-Type", service.CalendarContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": export.Filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(export.Body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(export.Body)
}
