package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/nittei/internal/nittei/http"
	"github.com/aussiebroadwan/nittei/internal/nittei/service"
	"github.com/aussiebroadwan/nittei/internal/nittei/store"
	"github.com/aussiebroadwan/nittei/internal/nittei/store/drivers/postgres"
	"github.com/aussiebroadwan/nittei/internal/nittei/store/drivers/sqlite"
	"github.com/aussiebroadwan/nittei/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application wires the scheduling service together.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db store.Store

	accessService   *service.AccessService
	eventService    *service.EventService
	slotService     *service.SlotService
	voteService     *service.VoteService
	scoreService    *service.ScoreService
	decisionService *service.DecisionService
	calendarService *service.CalendarService

	server *http.Server
	router *httpapi.Router
}

// NewLogger builds the process logger for the given service name.
func NewLogger(cfg Config, name string) *slog.Logger {
	return slogx.New(slogx.Config{
		Service: name,
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})
}

// New creates an Application with its store opened and migrated.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg:    cfg,
		logger: NewLogger(cfg, "nittei"),
	}

	db, err := OpenStore(cfg, app.logger)
	if err != nil {
		return nil, err
	}
	app.db = db

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler exposes the routed handler, mainly for tests.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("nittei starting",
		slog.Int("port", app.cfg.Port),
		slog.String("version", BuildVersion),
		slog.String("database_driver", app.cfg.DatabaseDriver),
		slog.Bool("public_create", app.cfg.PublicCreate),
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down nittei...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", slog.Any("error", err))
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", slog.Any("error", err))
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", slog.Any("error", err))
		return err
	}

	app.logger.Info("nittei stopped")
	return nil
}

// OpenStore opens the configured driver and applies migrations.
func OpenStore(cfg Config, logger *slog.Logger) (store.Store, error) {
	var (
		db  store.Store
		err error
	)
	switch cfg.DatabaseDriver {
	case DriverPostgres:
		db, err = postgres.NewStore(cfg.DatabaseURL)
	case DriverSQLite, "":
		db, err = sqlite.NewStore(sqlite.DSN(cfg.DatabaseFile))
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.DatabaseDriver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply database migrations: %w", err)
	}

	logger.Info("database migrations applied successfully",
		slog.String("driver", cfg.DatabaseDriver),
	)
	return db, nil
}

func (app *Application) initServices() {
	app.accessService = &service.AccessService{
		Store:       app.db,
		AdminSecret: app.cfg.AdminSecret,
	}
	app.eventService = &service.EventService{
		Store:  app.db,
		Access: app.accessService,
		Throttle: &service.CreateThrottle{
			Store:  app.db,
			Limit:  app.cfg.CreateLimit,
			Window: app.cfg.CreateWindow,
		},
		PublicCreate:    app.cfg.PublicCreate,
		SiteURL:         app.cfg.SiteURL,
		DefaultTimezone: app.cfg.DefaultTimezone,
	}
	app.slotService = &service.SlotService{Store: app.db}
	app.voteService = &service.VoteService{
		Store:  app.db,
		Access: app.accessService,
	}
	app.scoreService = &service.ScoreService{Store: app.db}
	app.decisionService = &service.DecisionService{Store: app.db}
	app.calendarService = &service.CalendarService{
		Store:   app.db,
		SiteURL: app.cfg.SiteURL,
	}

	if app.cfg.AdminSecret == "" {
		app.logger.Warn("NITTEI_ADMIN_SECRET is not set; admin access is disabled")
	}
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.logger)

	router.AccessService = app.accessService
	router.EventService = app.eventService
	router.SlotService = app.slotService
	router.VoteService = app.voteService
	router.ScoreService = app.scoreService
	router.DecisionService = app.decisionService
	router.CalendarService = app.calendarService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
