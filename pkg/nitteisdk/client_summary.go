package nitteisdk

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// GetAnswers returns the organizer view of all responses.
func (c *SDKClient) GetAnswers(ctx context.Context, creds Credentials, eventID string) (*AnswersResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, eventPath(eventID, "/answers"), nil, creds.headers())
	if err != nil {
		return nil, err
	}

	var out AnswersResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetSummary returns the slots ranked by role-weighted score.
func (c *SDKClient) GetSummary(ctx context.Context, eventID string) (*SummaryResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, eventPath(eventID, "/summary"), nil, nil)
	if err != nil {
		return nil, err
	}

	var out SummaryResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetPublicSummary returns anonymous counts. Before the event deadline the
// server answers with a forbidden error.
func (c *SDKClient) GetPublicSummary(ctx context.Context, eventID string) (*PublicSummaryResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, eventPath(eventID, "/public-summary"), nil, nil)
	if err != nil {
		return nil, err
	}

	var out PublicSummaryResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExportCalendar downloads the iCalendar document for the current decision.
func (c *SDKClient) ExportCalendar(ctx context.Context, eventID string) ([]byte, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, eventPath(eventID, "/calendar.ics"), nil, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, parseErrorResponse(resp, body)
	}
	return body, nil
}
