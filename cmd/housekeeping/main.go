// Command housekeeping prunes expired rate limit records once and exits.
// Schedule it externally, for example from cron.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aussiebroadwan/nittei/internal/nittei/app"
	"github.com/aussiebroadwan/nittei/internal/nittei/service"
	"github.com/aussiebroadwan/nittei/pkg/slogx"
)

func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	if err := run(cfg); err != nil {
		log.Fatalf("housekeeping failed: %v", err)
	}
}

func run(cfg app.Config) error {
	logger := app.NewLogger(cfg, "nittei-housekeeping")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = slogx.WithContext(ctx, logger)

	db, err := app.OpenStore(cfg, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	hk := &service.HousekeepingService{
		Store:     db,
		Retention: cfg.RateLimitRetention,
	}
	report, err := hk.RunOnce(ctx)
	if err != nil {
		return err
	}

	logger.Info("housekeeping finished",
		slog.Int64("rate_limit_records_deleted", report.RateLimitRecordsDeleted),
	)
	return nil
}
