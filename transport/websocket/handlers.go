package websocket

import (
	"context"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/counter-backend/internal/apperror"
	"github.com/rocketscienceinc/counter-backend/internal/changefeed"
	"github.com/rocketscienceinc/counter-backend/internal/pkg"
	"github.com/rocketscienceinc/counter-backend/internal/policy"
)

func (that *Server) handleSubscribe(ctx context.Context, conn *connection, message *Message) error {
	log := that.logger.With("method", "handleSubscribe", "user_id", conn.identity.UserID)

	payload, err := message.Decode()
	if err != nil {
		return fmt.Errorf("failed to decode payload: %w", apperror.ErrInvalidInput)
	}

	gameID := strings.ToUpper(strings.TrimSpace(payload.GameID))
	if gameID == "" {
		return fmt.Errorf("game_id is required: %w", apperror.ErrInvalidInput)
	}

	if !pkg.IsGameID(gameID) {
		return fmt.Errorf("malformed game code %q: %w", gameID, apperror.ErrGameNotFound)
	}

	// read access is decided by the store, not by the socket
	game, err := that.games.Get(ctx, conn.identity.UserID, gameID)
	if err != nil {
		return fmt.Errorf("failed to read game %s: %w", gameID, err)
	}

	sub, err := that.feed.Subscribe(ctx, game.ID)
	if err != nil {
		return fmt.Errorf("failed to subscribe to game %s: %w", game.ID, err)
	}

	conn.replace(game.ID, sub)
	go that.forward(conn, game.ID, sub)

	conn.enqueue(ActionSubscribed, Payload{GameID: game.ID, Game: game})

	log.Info("subscribed", "game_id", game.ID)

	return nil
}

func (that *Server) handleUnsubscribe(_ context.Context, conn *connection, _ *Message) error {
	gameID, sub := conn.current()
	if sub == nil {
		return nil
	}

	conn.replace("", nil)
	conn.enqueue(ActionUnsubscribed, Payload{GameID: gameID})

	that.logger.Info("unsubscribed", "user_id", conn.identity.UserID, "game_id", gameID)

	return nil
}

// forward - relays feed events to the socket until the subscription closes.
func (that *Server) forward(conn *connection, gameID string, sub changefeed.Subscription) {
	for event := range sub.Events() {
		// a game that filled up after subscribing is no longer visible to outsiders
		if !policy.Default.CanSelect(conn.identity.UserID, event.Record) {
			continue
		}

		if current, _ := conn.current(); current != gameID {
			return
		}

		conn.enqueue(ActionUpdate, Payload{GameID: gameID, Type: event.Type, Game: event.Record})
	}
}
