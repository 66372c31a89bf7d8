package http

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/nittei/internal/nittei/domain"
	"github.com/aussiebroadwan/nittei/internal/nittei/service"
	"github.com/aussiebroadwan/nittei/pkg/httpx"
	"github.com/aussiebroadwan/nittei/pkg/nitteisdk"
)

// RequireOrganizerOrAdmin admits requests carrying the admin key or the
// organizer key of the {id} event, and records the accepted role in the
// request context.
func RequireOrganizerOrAdmin(access *service.AccessService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, err := access.RequireOrganizerOrAdmin(
				r.Context(),
				strings.TrimSpace(r.Header.Get(nitteisdk.AdminKeyHeader)),
				strings.TrimSpace(r.Header.Get(nitteisdk.OrganizerKeyHeader)),
				r.PathValue("id"),
			)
			if err != nil {
				writeServiceError(w, r, err, "authorize organizer", "Event not found")
				return
			}

			ctx := httpx.ContextWithActor(r.Context(), string(actor))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// actorFromRequest returns the role admitted by RequireOrganizerOrAdmin.
func actorFromRequest(r *http.Request) domain.Actor {
	return domain.Actor(httpx.ActorFromContext(r.Context()))
}
