package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/iliyamo/seat-inventory/internal/clock"
	"github.com/iliyamo/seat-inventory/internal/config"
	"github.com/iliyamo/seat-inventory/internal/handler"
	"github.com/iliyamo/seat-inventory/internal/middleware"
	"github.com/iliyamo/seat-inventory/internal/router"
	"github.com/iliyamo/seat-inventory/internal/service"
)

var HTTPModule = fx.Module("http",
	fx.Provide(
		NewEcho,
		NewSeatMapCache,
		NewInventoryHandler,
	),
	fx.Invoke(
		registerRoutes,
		startServer,
	),
)

func NewEcho(logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger(logger))
	return e
}

func NewSeatMapCache(cfg config.Config, rdb *redis.Client, logger *slog.Logger) *middleware.SeatMapCache {
	return middleware.NewSeatMapCache(cfg.Cache, rdb, logger)
}

func NewInventoryHandler(svc *service.InventoryService, cache *middleware.SeatMapCache, logger *slog.Logger) *handler.InventoryHandler {
	return handler.NewInventoryHandler(svc, cache, logger)
}

func registerRoutes(
	e *echo.Echo,
	db *sql.DB,
	h *handler.InventoryHandler,
	cache *middleware.SeatMapCache,
	rdb *redis.Client,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) {
	limiter := middleware.NewTokenBucket(cfg.RateLimit, rdb, clk, logger)
	router.RegisterRoutes(e, db)
	router.RegisterInventory(e, h, cache, limiter, cfg.JWT.Secret)
	router.RegisterHolds(e, h, limiter, cfg.JWT.Secret)
}

func startServer(lc fx.Lifecycle, e *echo.Echo, cfg config.Config, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			addr := ":" + cfg.App.Port
			logger.Info("listening", "address", addr, "env", cfg.App.Env)
			go func() {
				if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("shutting down")
			return e.Shutdown(ctx)
		},
	})
}
