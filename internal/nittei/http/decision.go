package http

import (
	"net/http"

	"github.com/aussiebroadwan/nittei/internal/nittei/service"
	"github.com/aussiebroadwan/nittei/pkg/httpx"
	"github.com/aussiebroadwan/nittei/pkg/nitteisdk"
)

type DecisionHandler struct {
	DecisionService *service.DecisionService
}

// ServeHTTP godoc
//
//	@Summary		Decide Slot
//	@Description	Finalize a slot. Decisions are append-only; the latest one is exported by the calendar endpoint.
//	@Tags			Decisions
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Event ID"
//	@Param			request	body		nitteisdk.DecideRequest	true	"Chosen slot"
//	@Success		200		{object}	nitteisdk.DecideResponse	"ok, decision"
//	@Failure		400		{object}	nitteisdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	nitteisdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	nitteisdk.ErrorResponse	"error, error_description"
//	@Security		AdminKey
//	@Security		OrganizerKey
//	@Router			/v1/events/{id}/decision [post].
func (h *DecisionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req nitteisdk.DecideRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeInvalidJSON(w)
		return
	}

	d, err := h.DecisionService.Decide(r.Context(), r.PathValue("id"), req.SlotID, actorFromRequest(r))
	if err != nil {
		writeServiceError(w, r, err, "decide", "Event not found")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, nitteisdk.DecideResponse{OK: true, Decision: toDecision(d)})
}
