package nitteisdk

import (
	"context"
	"net/http"
)

// CastVote records a participant's choice for one slot, replacing any
// earlier choice for the same slot.
func (c *SDKClient) CastVote(ctx context.Context, eventID string, req CastVoteRequest) error {
	resp, err := c.doJSON(ctx, http.MethodPost, eventPath(eventID, "/votes"), req, nil)
	if err != nil {
		return err
	}

	var out OKResponse
	return decodeJSON(resp, &out, http.StatusOK)
}
