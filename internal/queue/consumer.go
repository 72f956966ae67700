package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/iliyamo/seat-inventory/internal/config"
	"github.com/iliyamo/seat-inventory/internal/errs"
)

// StartAuditConsumer connects to RabbitMQ, declares the inventory queue
// (durable) and appends every event to the audit log file in a single-line,
// human-friendly format.  It reconnects with exponential backoff and only
// returns once ctx is cancelled.
func StartAuditConsumer(ctx context.Context, cfg config.AMQPConfig, logger *slog.Logger) error {
	backoff := time.Second
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		conn, err := amqp.Dial(cfg.URL)
		if err != nil {
			logger.Warn("audit-consumer: failed to dial broker", "error", err, "retry_in", backoff)
			if !sleep(ctx, backoff) {
				return ctx.Err()
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second // reset after successful connect

		err = consumeLoop(ctx, conn, cfg, logger)
		_ = conn.Close()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		logger.Warn("audit-consumer: consume loop ended; reconnecting", "error", err)
		if !sleep(ctx, 2*time.Second) {
			return ctx.Err()
		}
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func consumeLoop(ctx context.Context, conn *amqp.Connection, cfg config.AMQPConfig, logger *slog.Logger) error {
	ch, err := conn.Channel()
	if err != nil {
		return errs.Wrap(err, "channel open")
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		logger.Warn("audit-consumer: set QoS failed", "error", err)
	}
	if _, err := ch.QueueDeclare(cfg.Queue, true, false, false, false, nil); err != nil {
		return errs.Wrap(err, "queue declare")
	}
	msgs, err := ch.Consume(cfg.Queue, "", false, false, false, false, nil)
	if err != nil {
		return errs.Wrap(err, "queue consume")
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return errs.New("deliveries channel closed")
			}
			if err := handleMessage(d.Body, cfg.AuditLogPath); err != nil {
				logger.Error("audit-consumer: handle message failed", "error", err, "message_id", d.MessageId)
				_ = d.Nack(false, false) // reject, do not requeue to avoid tight loops
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func handleMessage(body []byte, path string) error {
	var ev InventoryEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir logs: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(formatLine(ev)); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}

func formatLine(ev InventoryEvent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s | id=%s | actor=%q | count=%d",
		ev.OccurredAt.UTC().Format(time.RFC3339), ev.Kind, ev.ID, ev.ActorID, ev.Count)
	if ev.VenueID != 0 {
		fmt.Fprintf(&b, " | venue_id=%d", ev.VenueID)
	}
	if len(ev.Locations) > 0 {
		fmt.Fprintf(&b, " | seats=[%s]", strings.Join(ev.Locations, ","))
	} else if len(ev.SeatIDs) > 0 {
		ids := make([]string, len(ev.SeatIDs))
		for i, id := range ev.SeatIDs {
			ids[i] = fmt.Sprint(id)
		}
		fmt.Fprintf(&b, " | seat_ids=[%s]", strings.Join(ids, ","))
	}
	if ev.HeldUntil != nil {
		fmt.Fprintf(&b, " | held_until=%s", ev.HeldUntil.UTC().Format(time.RFC3339))
	}
	b.WriteByte('\n')
	return b.String()
}
