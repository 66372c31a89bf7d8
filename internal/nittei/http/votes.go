package http

import (
	"net/http"

	"github.com/aussiebroadwan/nittei/internal/nittei/service"
	"github.com/aussiebroadwan/nittei/pkg/httpx"
	"github.com/aussiebroadwan/nittei/pkg/nitteisdk"
)

type VotesHandler struct {
	VoteService *service.VoteService
}

// ServeHTTP godoc
//
//	@Summary		Cast Vote
//	@Description	Record a participant's yes/maybe/no for one slot, replacing any earlier choice for that slot.
//	@Description	The participant authenticates with the invite token from their link.
//	@Tags			Votes
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Event ID"
//	@Param			request	body		nitteisdk.CastVoteRequest	true	"Vote"
//	@Success		200		{object}	nitteisdk.OKResponse		"ok"
//	@Failure		400		{object}	nitteisdk.ErrorResponse		"error, error_description"
//	@Failure		401		{object}	nitteisdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	nitteisdk.ErrorResponse		"error, error_description"
//	@Router			/v1/events/{id}/votes [post].
func (h *VotesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req nitteisdk.CastVoteRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeInvalidJSON(w)
		return
	}

	_, err := h.VoteService.CastVote(r.Context(), r.PathValue("id"), service.CastVoteInput{
		Token:   req.Token,
		SlotID:  req.SlotID,
		Choice:  req.Choice,
		Comment: req.Comment,
	})
	if err != nil {
		writeServiceError(w, r, err, "cast vote", "Event not found")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, nitteisdk.OKResponse{OK: true})
}
