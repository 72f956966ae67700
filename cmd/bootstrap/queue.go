package bootstrap

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/iliyamo/seat-inventory/internal/config"
	"github.com/iliyamo/seat-inventory/internal/errs"
	"github.com/iliyamo/seat-inventory/internal/queue"
	"github.com/iliyamo/seat-inventory/internal/service"
)

var QueueModule = fx.Module("queue",
	fx.Provide(
		NewPublisher,
	),
	fx.Invoke(registerAuditConsumer),
)

// NewPublisher returns the RabbitMQ publisher, or a no-op one when
// AMQP_ENABLED is off.
func NewPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) service.Publisher {
	if !cfg.AMQP.Enabled {
		return queue.NopPublisher{}
	}
	p := queue.NewPublisher(cfg.AMQP, logger)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return p.Close()
		},
	})
	return p
}

// registerAuditConsumer runs the audit-log consumer for the lifetime of the
// app when INVENTORY_AUDIT_CONSUMER is on.
func registerAuditConsumer(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) {
	if !cfg.AMQP.Enabled || !cfg.AMQP.ConsumeAudit {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				err := queue.StartAuditConsumer(ctx, cfg.AMQP, logger)
				if err != nil && !errs.Is(err, context.Canceled) {
					logger.Error("audit consumer stopped", "error", err)
				}
			}()
			logger.Info("audit consumer started", "queue", cfg.AMQP.Queue, "path", cfg.AMQP.AuditLogPath)
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
