package changefeed

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/nats-io/nats.go"

	"github.com/rocketscienceinc/counter-backend/internal/metrics"
)

// NatsConnect - dials the NATS server, authenticating with token when one is configured.
func NatsConnect(url, token string) (*nats.Conn, error) {
	opts := []nats.Option{
		nats.Name("counter-backend"),
	}

	if token != "" {
		opts = append(opts, nats.Token(token))
	}

	conn, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return conn, nil
}

// NatsBroker publishes events on NATS subjects named after the topic.
type NatsBroker struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
	conn    *nats.Conn
}

func NewNatsBroker(logger *slog.Logger, m *metrics.Metrics, conn *nats.Conn) *NatsBroker {
	return &NatsBroker{
		logger:  logger.With("component", "nats-broker"),
		metrics: m,
		conn:    conn,
	}
}

func (that *NatsBroker) Publish(ctx context.Context, event Event) error {
	data, err := encode(event)
	if err != nil {
		return err
	}

	if err = that.conn.Publish(Topic(event.Record.ID), data); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	that.metrics.FeedEvents.WithLabelValues(sourceOf(ctx)).Inc()

	return nil
}

func (that *NatsBroker) Subscribe(ctx context.Context, gameID string) (Subscription, error) {
	messages := make(chan *nats.Msg, subscriptionBuffer)

	natsSub, err := that.conn.ChanSubscribe(Topic(gameID), messages)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe: %w", err)
	}

	// make sure the server registered interest before returning
	if err = that.conn.FlushWithContext(ctx); err != nil {
		_ = natsSub.Unsubscribe()
		return nil, fmt.Errorf("failed to flush subscription: %w", err)
	}

	sub := &natsSubscription{
		sub:    natsSub,
		events: make(chan Event, subscriptionBuffer),
		done:   make(chan struct{}),
	}

	go sub.run(ctx, messages, that.logger.With("game_id", gameID), that.metrics)

	return sub, nil
}

func (that *NatsBroker) Close() error {
	if err := that.conn.Drain(); err != nil {
		return fmt.Errorf("failed to drain NATS connection: %w", err)
	}
	return nil
}

type natsSubscription struct {
	sub    *nats.Subscription
	events chan Event
	done   chan struct{}
	once   sync.Once
}

func (that *natsSubscription) run(ctx context.Context, messages <-chan *nats.Msg, logger *slog.Logger, m *metrics.Metrics) {
	defer close(that.events)

	for {
		select {
		case <-ctx.Done():
			_ = that.Close()
			return
		case <-that.done:
			return
		case msg := <-messages:
			event, err := decode(msg.Data)
			if err != nil {
				logger.Warn("skipping malformed event", "error", err)
				continue
			}

			deliver(logger, m, that.events, event)
		}
	}
}

func (that *natsSubscription) Events() <-chan Event {
	return that.events
}

func (that *natsSubscription) Close() error {
	var err error
	that.once.Do(func() {
		err = that.sub.Unsubscribe()
		close(that.done)
	})
	return err
}
