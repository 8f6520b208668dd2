package changefeed

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/counter-backend/internal/metrics"
)

// RedisBroker publishes events on Redis pub/sub channels named after the topic.
type RedisBroker struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
	client  *redis.Client
}

func NewRedisBroker(logger *slog.Logger, m *metrics.Metrics, client *redis.Client) *RedisBroker {
	return &RedisBroker{
		logger:  logger.With("component", "redis-broker"),
		metrics: m,
		client:  client,
	}
}

func (that *RedisBroker) Publish(ctx context.Context, event Event) error {
	data, err := encode(event)
	if err != nil {
		return err
	}

	if err = that.client.Publish(ctx, Topic(event.Record.ID), data).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	that.metrics.FeedEvents.WithLabelValues(sourceOf(ctx)).Inc()

	return nil
}

func (that *RedisBroker) Subscribe(ctx context.Context, gameID string) (Subscription, error) {
	pubsub := that.client.Subscribe(ctx, Topic(gameID))

	// wait for the subscribe confirmation so no event published after return is missed
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe: %w", err)
	}

	sub := &redisSubscription{
		pubsub: pubsub,
		events: make(chan Event, subscriptionBuffer),
	}

	go sub.run(ctx, that.logger.With("game_id", gameID), that.metrics)

	return sub, nil
}

// Close - the client is owned by the caller.
func (that *RedisBroker) Close() error {
	return nil
}

type redisSubscription struct {
	pubsub *redis.PubSub
	events chan Event
	once   sync.Once
}

func (that *redisSubscription) run(ctx context.Context, logger *slog.Logger, m *metrics.Metrics) {
	defer close(that.events)

	messages := that.pubsub.Channel()

	for {
		select {
		case <-ctx.Done():
			_ = that.Close()
			return
		case msg, ok := <-messages:
			if !ok {
				return
			}

			event, err := decode([]byte(msg.Payload))
			if err != nil {
				logger.Warn("skipping malformed event", "error", err)
				continue
			}

			deliver(logger, m, that.events, event)
		}
	}
}

func (that *redisSubscription) Events() <-chan Event {
	return that.events
}

func (that *redisSubscription) Close() error {
	var err error
	that.once.Do(func() {
		err = that.pubsub.Close()
	})
	return err
}
