package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/nittei/internal/nittei/service"
	"github.com/aussiebroadwan/nittei/internal/nittei/store"
	"github.com/aussiebroadwan/nittei/pkg/httpx"
	"github.com/aussiebroadwan/nittei/pkg/slogx"

	_ "github.com/aussiebroadwan/nittei/api/nittei" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store           store.Store
	AccessService   *service.AccessService
	EventService    *service.EventService
	SlotService     *service.SlotService
	VoteService     *service.VoteService
	ScoreService    *service.ScoreService
	DecisionService *service.DecisionService
	CalendarService *service.CalendarService

	// Now is the clock for deadline checks. Defaults to time.Now.
	Now func() time.Time
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
		Now:          time.Now,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerEvents()
	r.registerVotes()
	r.registerSummaries()
	r.registerDecisions()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			nittei Scheduling Service API
//	@version		0.1.0
//	@description	Group scheduling: organizers propose candidate slots, invited participants vote yes/maybe/no
//	@description	without an account, and the organizer finalizes one slot and exports it as an iCalendar entry.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/nittei
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
//
//	@securityDefinitions.apikey	AdminKey
//	@in							header
//	@name						X-Admin-Key
//	@description				Global admin secret.
//
//	@securityDefinitions.apikey	OrganizerKey
//	@in							header
//	@name						X-Organizer-Key
//	@description				Per-event organizer key returned when the event is created.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerEvents() {
	h := &EventsHandler{
		EventService: r.EventService,
		SlotService:  r.SlotService,
	}
	organizer := RequireOrganizerOrAdmin(r.AccessService)

	// POST /v1/events - write limit by IP; the durable create throttle sits behind it
	r.Mux.Handle("POST /v1/events",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.RateLimitByIP(httpx.WriteLimit),
		),
	)

	r.Mux.Handle("POST /v1/events/{id}/slots",
		httpx.Chain(http.HandlerFunc(h.HandleAddSlots),
			httpx.RateLimitByIPAndPathValue(httpx.WriteLimit, "id"),
			organizer,
		),
	)

	r.Mux.Handle("GET /v1/events/{id}/invites",
		httpx.Chain(http.HandlerFunc(h.HandleListInvites),
			httpx.RateLimitByIPAndPathValue(httpx.ReadLimit, "id"),
			organizer,
		),
	)

	r.Mux.Handle("POST /v1/events/{id}/organizer-key",
		httpx.Chain(http.HandlerFunc(h.HandleRotateOrganizerKey),
			httpx.RateLimitByIPAndPathValue(httpx.WriteLimit, "id"),
			organizer,
		),
	)
}

func (r *Router) registerVotes() {
	h := &VotesHandler{VoteService: r.VoteService}

	// Participants authenticate with the body token, so the handler does it.
	r.Mux.Handle("POST /v1/events/{id}/votes",
		httpx.Chain(h,
			httpx.RateLimitByIPAndPathValue(httpx.WriteLimit, "id"),
		),
	)
}

func (r *Router) registerSummaries() {
	h := &SummaryHandler{ScoreService: r.ScoreService, Now: r.Now}

	r.Mux.Handle("GET /v1/events/{id}/answers",
		httpx.Chain(http.HandlerFunc(h.HandleAnswers),
			httpx.RateLimitByIPAndPathValue(httpx.ReadLimit, "id"),
			RequireOrganizerOrAdmin(r.AccessService),
		),
	)
	r.Mux.Handle("GET /v1/events/{id}/summary",
		httpx.Chain(http.HandlerFunc(h.HandleSummary),
			httpx.RateLimitByIPAndPathValue(httpx.ReadLimit, "id"),
		),
	)
	r.Mux.Handle("GET /v1/events/{id}/public-summary",
		httpx.Chain(http.HandlerFunc(h.HandlePublicSummary),
			httpx.RateLimitByIPAndPathValue(httpx.ReadLimit, "id"),
		),
	)
}

func (r *Router) registerDecisions() {
	decide := &DecisionHandler{DecisionService: r.DecisionService}
	cal := &CalendarHandler{CalendarService: r.CalendarService}

	r.Mux.Handle("POST /v1/events/{id}/decision",
		httpx.Chain(decide,
			httpx.RateLimitByIPAndPathValue(httpx.WriteLimit, "id"),
			RequireOrganizerOrAdmin(r.AccessService),
		),
	)
	r.Mux.Handle("GET /v1/events/{id}/calendar.ics",
		httpx.Chain(cal,
			httpx.RateLimitByIPAndPathValue(httpx.ReadLimit, "id"),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - probe limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.ProbeLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.ProbeLimit),
		),
	)
}
