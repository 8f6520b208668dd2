// Package changefeed carries full-row game events from the store to subscribers.
package changefeed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/counter-backend/internal/entity"
	"github.com/rocketscienceinc/counter-backend/internal/metrics"
)

type EventType string

const (
	EventInsert EventType = "INSERT"
	EventUpdate EventType = "UPDATE"
)

var ErrBrokerClosed = errors.New("broker is closed")

// subscriber channels are buffered; a subscriber that falls this far behind loses events
const subscriptionBuffer = 32

type Event struct {
	Type   EventType    `json:"type"`
	Record *entity.Game `json:"record"`
}

func Topic(gameID string) string {
	return "games." + gameID
}

type Subscription interface {
	Events() <-chan Event
	Close() error
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

type Broker interface {
	Publisher
	Subscribe(ctx context.Context, gameID string) (Subscription, error)
	Close() error
}

type sourceKey struct{}

// WithSource - the feed_events_total source label for events published under ctx.
func WithSource(ctx context.Context, source string) context.Context {
	return context.WithValue(ctx, sourceKey{}, source)
}

func sourceOf(ctx context.Context) string {
	if source, ok := ctx.Value(sourceKey{}).(string); ok {
		return source
	}

	return metrics.SourcePublished
}

func encode(event Event) ([]byte, error) {
	if event.Record == nil || event.Record.ID == "" {
		return nil, errors.New("event without record")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}

	return data, nil
}

func decode(data []byte) (Event, error) {
	var event Event
	if err := json.Unmarshal(data, &event); err != nil {
		return Event{}, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	if event.Record == nil {
		return Event{}, errors.New("event without record")
	}

	return event, nil
}
