package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/nittei/internal/nittei/service"
	"github.com/aussiebroadwan/nittei/pkg/httpx"
	"github.com/aussiebroadwan/nittei/pkg/nitteisdk"
)

type SummaryHandler struct {
	ScoreService *service.ScoreService
	Now          func() time.Time
}

// HandleAnswers godoc
//
//	@Summary		Organizer Answers
//	@Description	Full response matrix for the organizer: slots, participants, every vote with comments, and unweighted counts per slot.
//	@Tags			Summaries
//	@Produce		json
//	@Param			id	path		string						true	"Event ID"
//	@Success		200	{object}	nitteisdk.AnswersResponse	"event, slots, participants, votes, counts"
//	@Failure		401	{object}	nitteisdk.ErrorResponse		"error, error_description"
//	@Failure		404	{object}	nitteisdk.ErrorResponse		"error, error_description"
//	@Failure		500	{object}	nitteisdk.ErrorResponse		"error, error_description"
//	@Security		AdminKey
//	@Security		OrganizerKey
//	@Router			/v1/events/{id}/answers [get].
func (h *SummaryHandler) HandleAnswers(w http.ResponseWriter, r *http.Request) {
	view, err := h.ScoreService.OrganizerSummary(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "organizer summary", "Event not found")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, nitteisdk.AnswersResponse{
		Event:        toEvent(view.Event),
		Slots:        toSlots(view.Slots),
		Participants: toParticipants(view.Participants),
		Votes:        toVotes(view.Votes),
		Counts:       toCounts(view.Tallies),
	})
}

// HandleSummary godoc
//
//	@Summary		Ranked Summary
//	@Description	Slots ordered best first. Votes are weighted by choice (yes 2, maybe 1, no 0) times role (must 2, member 1, optional 0.5).
//	@Description	Ties break on yes count, then earliest start.
//	@Tags			Summaries
//	@Produce		json
//	@Param			id	path		string						true	"Event ID"
//	@Success		200	{object}	nitteisdk.SummaryResponse	"event, ranked"
//	@Failure		404	{object}	nitteisdk.ErrorResponse		"error, error_description"
//	@Failure		500	{object}	nitteisdk.ErrorResponse		"error, error_description"
//	@Router			/v1/events/{id}/summary [get].
func (h *SummaryHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	view, err := h.ScoreService.RankedSummary(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "ranked summary", "Event not found")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, nitteisdk.SummaryResponse{
		Event:  toEvent(view.Event),
		Ranked: toCounts(view.Ranked),
	})
}

// HandlePublicSummary godoc
//
//	@Summary		Public Summary
//	@Description	Anonymous per-slot counts. Hidden until the event's response deadline has passed; events without a deadline are always visible.
//	@Tags			Summaries
//	@Produce		json
//	@Param			id	path		string							true	"Event ID"
//	@Success		200	{object}	nitteisdk.PublicSummaryResponse	"event, counts"
//	@Failure		403	{object}	nitteisdk.ErrorResponse			"error, error_description"
//	@Failure		404	{object}	nitteisdk.ErrorResponse			"error, error_description"
//	@Failure		500	{object}	nitteisdk.ErrorResponse			"error, error_description"
//	@Router			/v1/events/{id}/public-summary [get].
func (h *SummaryHandler) HandlePublicSummary(w http.ResponseWriter, r *http.Request) {
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}

	view, err := h.ScoreService.PublicSummary(r.Context(), r.PathValue("id"), now())
	if err != nil {
		writeServiceError(w, r, err, "public summary", "Event not found")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, nitteisdk.PublicSummaryResponse{
		Event:  toEvent(view.Event),
		Counts: toCounts(view.Tallies),
	})
}
