package queue

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/iliyamo/seat-inventory/internal/config"
	"github.com/iliyamo/seat-inventory/internal/errs"
)

// ErrBrokerBackoff is returned while the publisher waits out the redial
// backoff after a failed connection attempt.
var ErrBrokerBackoff = errs.New("rabbitmq: broker unavailable, redial deferred")

// Publisher sends inventory events to a durable RabbitMQ queue.  The
// connection is opened lazily and re-opened after the broker drops it.  A
// connection attempt is bounded by the dial timeout and, when it fails, no
// new attempt is made for the redial backoff, so a dead broker costs a write
// at most one short wait.  Errors are logged and returned so callers can
// ignore them without interrupting the main request flow.
type Publisher struct {
	url         string
	queue       string
	dialTimeout time.Duration
	backoff     time.Duration
	logger      *slog.Logger

	dial func(url string, cfg amqp.Config) (*amqp.Connection, error)
	now  func() time.Time

	mu       sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	nextDial time.Time
}

func NewPublisher(cfg config.AMQPConfig, logger *slog.Logger) *Publisher {
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = 2 * time.Second
	}
	if cfg.RedialBackoff <= 0 {
		cfg.RedialBackoff = 5 * time.Second
	}
	return &Publisher{
		url:         cfg.URL,
		queue:       cfg.Queue,
		dialTimeout: cfg.DialTimeout,
		backoff:     cfg.RedialBackoff,
		logger:      logger,
		dial:        amqp.DialConfig,
		now:         time.Now,
	}
}

// Publish marshals ev and publishes it as a persistent message.  A missing
// ID is filled with a fresh UUID and used as the AMQP message id.
func (p *Publisher) Publish(ctx context.Context, ev InventoryEvent) error {
	msg, err := encode(ev)
	if err != nil {
		p.logger.Error("rabbitmq: marshal event failed", "kind", ev.Kind, "error", err)
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channel(ctx)
	if err != nil {
		if !errs.Is(err, ErrBrokerBackoff) {
			p.logger.Error("rabbitmq: channel unavailable", "error", err)
		}
		return err
	}
	if err := ch.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		msg,
	); err != nil {
		p.logger.Error("rabbitmq: publish failed", "kind", ev.Kind, "error", err)
		p.reset()
		return errs.Wrap(err, "publish inventory event")
	}
	return nil
}

// channel returns an open channel, dialing and declaring the queue when
// needed.  Callers hold p.mu.
func (p *Publisher) channel(ctx context.Context) (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}
	p.reset()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if now := p.now(); now.Before(p.nextDial) {
		return nil, errs.Wrapf(ErrBrokerBackoff, "next attempt in %s", p.nextDial.Sub(now).Round(time.Millisecond))
	}

	conn, err := p.dial(p.url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial:      amqp.DefaultDial(p.dialTimeout),
	})
	if err != nil {
		p.nextDial = p.now().Add(p.backoff)
		return nil, errs.Wrap(err, "dial broker")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "open channel")
	}
	// Durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrap(err, "declare queue")
	}
	p.conn, p.ch = conn, ch
	return ch, nil
}

func (p *Publisher) reset() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

// Close releases the broker connection.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reset()
	return nil
}

func encode(ev InventoryEvent) (amqp.Publishing, error) {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	body, err := json.Marshal(ev)
	if err != nil {
		return amqp.Publishing{}, err
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent, // store on disk
		MessageId:    ev.ID,
		Type:         ev.Kind,
		Timestamp:    ev.OccurredAt,
		Body:         body,
	}, nil
}

// NopPublisher discards events.  It is used when AMQP is disabled.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, InventoryEvent) error { return nil }
