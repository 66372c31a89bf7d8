package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/nittei/internal/nittei/service"
	"github.com/aussiebroadwan/nittei/pkg/httpx"
	"github.com/aussiebroadwan/nittei/pkg/nitteisdk"
	"github.com/aussiebroadwan/nittei/pkg/slogx"
)

// unauthorizedResponse is identical for every failed credential check.
var unauthorizedResponse = nitteisdk.ErrorResponse{
	Error:            nitteisdk.ErrorCodeUnauthorized,
	ErrorDescription: "Missing or invalid credentials",
}

func writeUnauthorized(w http.ResponseWriter) {
	httpx.WriteJSON(w, http.StatusUnauthorized, unauthorizedResponse)
}

func writeInvalidJSON(w http.ResponseWriter) {
	httpx.WriteJSON(w, http.StatusBadRequest, nitteisdk.ErrorResponse{
		Error:            nitteisdk.ErrorCodeInvalidRequest,
		ErrorDescription: "Invalid JSON body",
	})
}

// writeServiceError maps a service error onto a response. notFound
// describes the missing resource; op names the failed operation in logs.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, op, notFound string) {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		writeUnauthorized(w)
	case errors.Is(err, service.ErrInvalidInput):
		httpx.WriteJSON(w, http.StatusBadRequest, nitteisdk.ErrorResponse{
			Error:            nitteisdk.ErrorCodeInvalidRequest,
			ErrorDescription: validationMessage(err),
		})
	case errors.Is(err, service.ErrNotFound):
		httpx.WriteJSON(w, http.StatusNotFound, nitteisdk.ErrorResponse{
			Error:            nitteisdk.ErrorCodeNotFound,
			ErrorDescription: notFound,
		})
	case errors.Is(err, service.ErrRateLimited):
		httpx.WriteJSON(w, http.StatusTooManyRequests, nitteisdk.ErrorResponse{
			Error:            nitteisdk.ErrorCodeRateLimitExceeded,
			ErrorDescription: "Too many events created from this address. Please try again later.",
		})
	case errors.Is(err, service.ErrForbidden):
		httpx.WriteJSON(w, http.StatusForbidden, nitteisdk.ErrorResponse{
			Error:            nitteisdk.ErrorCodeForbidden,
			ErrorDescription: "Results are hidden until the response deadline",
		})
	default:
		slogx.FromContext(r.Context()).Error("request failed",
			slog.String("op", op),
			slog.Any("error", err),
		)
		httpx.WriteJSON(w, http.StatusInternalServerError, nitteisdk.ErrorResponse{
			Error:            nitteisdk.ErrorCodeServerError,
			ErrorDescription: "Internal server error",
		})
	}
}

// validationMessage strips the sentinel prefix so only the violated
// constraint is reported.
func validationMessage(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, service.ErrInvalidInput.Error()+": "); i >= 0 {
		return msg[i+len(service.ErrInvalidInput.Error())+2:]
	}
	return msg
}
