// Package client is the player-side controller: a single-owner store fed by the
// REST API and the game change feed.
package client

import (
	"context"

	"github.com/rocketscienceinc/counter-backend/internal/counter"
	"github.com/rocketscienceinc/counter-backend/internal/entity"
)

// FeedEvent is one message from the live game subscription.
type FeedEvent struct {
	Action string
	Game   *entity.Game
	Err    error
}

type Feed interface {
	Events() <-chan FeedEvent
	Close() error
}

type Backend interface {
	SignUp(ctx context.Context, email, password string) (*entity.Session, error)
	SignIn(ctx context.Context, email, password string) (*entity.Session, error)
	SignOut(ctx context.Context, token string) error

	// Lobby returns the game in progress, or the games open to the player when there is none.
	Lobby(ctx context.Context, token string, limit int) (*entity.Lobby, error)
	CreateGame(ctx context.Context, token string) (*entity.Game, error)
	GetGame(ctx context.Context, token, id string) (*entity.Game, error)
	JoinGame(ctx context.Context, token, id string) (*entity.Game, error)
	Move(ctx context.Context, token, id string, move counter.Move) (*entity.Game, error)

	Subscribe(ctx context.Context, token, gameID string) (Feed, error)
}
