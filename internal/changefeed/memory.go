package changefeed

import (
	"context"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/counter-backend/internal/metrics"
)

// MemoryBroker fans events out inside one process.
type MemoryBroker struct {
	logger  *slog.Logger
	metrics *metrics.Metrics

	mu     sync.RWMutex
	topics map[string]map[*memorySubscription]struct{}
	closed bool
}

func NewMemoryBroker(logger *slog.Logger, m *metrics.Metrics) *MemoryBroker {
	return &MemoryBroker{
		logger:  logger.With("component", "memory-broker"),
		metrics: m,
		topics:  make(map[string]map[*memorySubscription]struct{}),
	}
}

func (that *MemoryBroker) Publish(ctx context.Context, event Event) error {
	if _, err := encode(event); err != nil {
		return err
	}

	that.mu.RLock()
	defer that.mu.RUnlock()

	for sub := range that.topics[Topic(event.Record.ID)] {
		deliver(that.logger, that.metrics, sub.events, event)
	}

	that.metrics.FeedEvents.WithLabelValues(sourceOf(ctx)).Inc()

	return nil
}

func (that *MemoryBroker) Subscribe(ctx context.Context, gameID string) (Subscription, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return nil, ErrBrokerClosed
	}

	topic := Topic(gameID)
	sub := &memorySubscription{
		broker: that,
		topic:  topic,
		events: make(chan Event, subscriptionBuffer),
		done:   make(chan struct{}),
	}

	if that.topics[topic] == nil {
		that.topics[topic] = make(map[*memorySubscription]struct{})
	}
	that.topics[topic][sub] = struct{}{}

	go func() {
		select {
		case <-ctx.Done():
			_ = sub.Close()
		case <-sub.done:
		}
	}()

	return sub, nil
}

func (that *MemoryBroker) Close() error {
	that.mu.Lock()
	defer that.mu.Unlock()

	for _, subs := range that.topics {
		for sub := range subs {
			sub.once.Do(sub.finish)
		}
	}

	that.topics = make(map[string]map[*memorySubscription]struct{})
	that.closed = true

	return nil
}

func (that *MemoryBroker) remove(sub *memorySubscription) {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.topics[sub.topic], sub)
	if len(that.topics[sub.topic]) == 0 {
		delete(that.topics, sub.topic)
	}

	sub.once.Do(sub.finish)
}

type memorySubscription struct {
	broker *MemoryBroker
	topic  string
	events chan Event
	done   chan struct{}
	once   sync.Once
}

func (that *memorySubscription) finish() {
	close(that.events)
	close(that.done)
}

func (that *memorySubscription) Events() <-chan Event {
	return that.events
}

func (that *memorySubscription) Close() error {
	that.broker.remove(that)
	return nil
}

// deliver - hands event to a subscriber without blocking the publisher.
func deliver(logger *slog.Logger, m *metrics.Metrics, events chan<- Event, event Event) {
	select {
	case events <- event:
	default:
		m.FeedEvents.WithLabelValues(metrics.SourceDropped).Inc()
		logger.Warn("subscriber is lagging, event dropped", "game_id", event.Record.ID)
	}
}
