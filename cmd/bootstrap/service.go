package bootstrap

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/iliyamo/seat-inventory/internal/clock"
	"github.com/iliyamo/seat-inventory/internal/config"
	"github.com/iliyamo/seat-inventory/internal/errs"
	"github.com/iliyamo/seat-inventory/internal/repository"
	"github.com/iliyamo/seat-inventory/internal/service"
)

var ServiceModule = fx.Module("service",
	fx.Provide(
		repository.NewSeatRepo,
		repository.NewVenueRepo,
		clock.NewRealClock,
		NewInventoryService,
	),
)

func NewInventoryService(
	seats *repository.SeatRepo,
	venues *repository.VenueRepo,
	publisher service.Publisher,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) *service.InventoryService {
	return service.NewInventoryService(seats, venues, publisher, clk, cfg.Inventory, logger)
}

// SweeperModule runs the hold sweep inside the server every SWEEP_INTERVAL.
// A zero interval leaves reclamation to cmd/sweeper.
var SweeperModule = fx.Module("sweeper",
	fx.Invoke(registerSweeper),
)

func registerSweeper(lc fx.Lifecycle, svc *service.InventoryService, cfg config.Config, logger *slog.Logger) {
	every := cfg.Inventory.SweepInterval
	if every <= 0 {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				if err := svc.RunSweeper(ctx, every); err != nil && !errs.Is(err, context.Canceled) {
					logger.Error("sweeper stopped", "error", err)
				}
			}()
			logger.Info("sweeper started", "every", every)
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}
