// Command sweeper clears expired seat holds.  By default it runs one sweep
// and exits, which suits cron; -every keeps it running on an interval.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/fx"

	"github.com/iliyamo/seat-inventory/cmd/bootstrap"
	"github.com/iliyamo/seat-inventory/internal/errs"
	"github.com/iliyamo/seat-inventory/internal/service"
)

func main() {
	every := flag.Duration("every", 0, "repeat the sweep at this interval instead of running once")
	flag.Parse()

	var (
		svc    *service.InventoryService
		logger *slog.Logger
	)
	app := fx.New(
		bootstrap.WorkerModule,
		fx.Populate(&svc, &logger),
		fx.NopLogger,
	)

	startCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	err := app.Start(startCtx)
	cancel()
	if err != nil {
		slog.Error("failed to start", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, svc, *every, logger)
	stop()

	stopCtx, cancelStop := context.WithTimeout(context.Background(), 10*time.Second)
	if err := app.Stop(stopCtx); err != nil {
		logger.Warn("failed to stop cleanly", "error", err)
	}
	cancelStop()
	os.Exit(code)
}

func run(ctx context.Context, svc *service.InventoryService, every time.Duration, logger *slog.Logger) int {
	if every > 0 {
		if err := svc.RunSweeper(ctx, every); err != nil && !errs.Is(err, context.Canceled) {
			logger.Error("sweeper stopped", "error", err)
			return 1
		}
		return 0
	}
	res, err := svc.ReclaimExpiredHolds(ctx)
	if err != nil {
		logger.Error("sweep failed", "error", err)
		return 1
	}
	logger.Info("sweep finished", "reclaimed", res.Reclaimed)
	return 0
}
