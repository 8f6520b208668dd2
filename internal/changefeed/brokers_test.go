package changefeed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/counter-backend/internal/entity"
	"github.com/rocketscienceinc/counter-backend/testing/suite"
)

func TestRedisBroker(t *testing.T) {
	ctx, st := suite.New(t)

	broker := NewRedisBroker(st.Logger, st.Metrics, st.Storage)

	// Given: a subscriber on a game
	sub, err := broker.Subscribe(ctx, "ABC234")
	require.NoError(t, err)
	defer sub.Close()

	// When: an update is published
	game := entity.NewGame("ABC234", "alice")
	game.CurrentNumber = 3
	require.NoError(t, broker.Publish(ctx, Event{Type: EventUpdate, Record: game}))

	// Then: the subscriber receives the full record
	event := receive(t, sub)
	assert.Equal(t, EventUpdate, event.Type)
	assert.Equal(t, 3, event.Record.CurrentNumber)
	assert.Equal(t, []string{"alice"}, event.Record.Players)

	// When: the subscription is closed
	require.NoError(t, sub.Close())

	// Then: the stream ends
	for range sub.Events() {
	}
}

func TestNatsBroker(t *testing.T) {
	ctx, st := suite.New(t)

	broker := NewNatsBroker(st.Logger, st.Metrics, st.Nats())

	// Given: a subscriber on a game
	sub, err := broker.Subscribe(ctx, "ABC234")
	require.NoError(t, err)

	// When: an insert is published
	require.NoError(t, broker.Publish(ctx, Event{Type: EventInsert, Record: entity.NewGame("ABC234", "bob")}))

	// Then: the subscriber receives it
	event := receive(t, sub)
	assert.Equal(t, EventInsert, event.Type)
	assert.Equal(t, "bob", event.Record.CurrentPlayer)

	require.NoError(t, sub.Close())
	for range sub.Events() {
	}
}

func TestPostgresRelay(t *testing.T) {
	ctx, st := suite.New(t)
	pool := st.Postgres(ctx)

	broker := NewMemoryBroker(st.Logger, st.Metrics)
	relay := NewPostgresRelay(st.Logger, pool, broker, 100*time.Millisecond)

	// Given: a subscriber and a running relay
	sub, err := broker.Subscribe(ctx, "ABC234")
	require.NoError(t, err)

	relayCtx, stop := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() { done <- relay.Run(relayCtx) }()

	select {
	case <-relay.Ready():
	case <-time.After(10 * time.Second):
		t.Fatal("relay never started listening")
	}

	// When: a game row is inserted and then updated
	_, err = pool.Exec(ctx, `INSERT INTO games (id, current_player, players) VALUES ('ABC234', 'alice', ARRAY['alice'])`)
	require.NoError(t, err)

	_, err = pool.Exec(ctx, `UPDATE games SET current_number = 1 WHERE id = 'ABC234'`)
	require.NoError(t, err)

	// Then: both changes arrive in order as full rows
	inserted := receive(t, sub)
	assert.Equal(t, EventInsert, inserted.Type)
	assert.Equal(t, 0, inserted.Record.CurrentNumber)
	assert.Equal(t, []string{"alice"}, inserted.Record.Players)
	assert.False(t, inserted.Record.CreatedAt.IsZero())

	updated := receive(t, sub)
	assert.Equal(t, EventUpdate, updated.Type)
	assert.Equal(t, 1, updated.Record.CurrentNumber)

	// When: the context ends
	stop()

	// Then: the relay returns cleanly
	select {
	case err = <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("relay did not stop")
	}
}
