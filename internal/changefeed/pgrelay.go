package changefeed

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rocketscienceinc/counter-backend/internal/metrics"
)

// NotifyChannel is the channel the games trigger notifies on.
const NotifyChannel = "game_changes"

// PostgresRelay forwards trigger notifications from PostgreSQL to a broker.
type PostgresRelay struct {
	logger         *slog.Logger
	pool           *pgxpool.Pool
	publisher      Publisher
	reconnectDelay time.Duration

	ready     chan struct{}
	readyOnce sync.Once
}

func NewPostgresRelay(logger *slog.Logger, pool *pgxpool.Pool, publisher Publisher, reconnectDelay time.Duration) *PostgresRelay {
	return &PostgresRelay{
		logger:         logger.With("component", "pg-relay"),
		pool:           pool,
		publisher:      publisher,
		reconnectDelay: reconnectDelay,
		ready:          make(chan struct{}),
	}
}

// Ready - closed once the first LISTEN succeeded.
func (that *PostgresRelay) Ready() <-chan struct{} {
	return that.ready
}

// Run - listens until ctx ends, reconnecting after reconnectDelay whenever the connection drops.
func (that *PostgresRelay) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	for {
		err := that.listen(ctx)
		if ctx.Err() != nil {
			return nil
		}

		log.Error("relay connection lost, reconnecting", "error", err, "delay", that.reconnectDelay)

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(that.reconnectDelay):
		}
	}
}

func (that *PostgresRelay) listen(ctx context.Context) error {
	log := that.logger.With("method", "listen")

	pooled, err := that.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}

	// a listening connection never goes back to the pool
	conn := pooled.Hijack()
	defer conn.Close(context.Background())

	if _, err = conn.Exec(ctx, "LISTEN "+pgx.Identifier{NotifyChannel}.Sanitize()); err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	log.Info("listening for game changes", "channel", NotifyChannel)
	that.readyOnce.Do(func() { close(that.ready) })

	// the broker counts each relayed event once, under the relayed source
	relayed := WithSource(ctx, metrics.SourceRelayed)

	for {
		notification, err := conn.WaitForNotification(ctx)
		if err != nil {
			return fmt.Errorf("failed to wait for notification: %w", err)
		}

		event, err := decode([]byte(notification.Payload))
		if err != nil {
			log.Warn("skipping malformed notification", "error", err)
			continue
		}

		if err = that.publisher.Publish(relayed, event); err != nil {
			log.Error("failed to relay event", "error", err, "game_id", event.Record.ID)
		}
	}
}
