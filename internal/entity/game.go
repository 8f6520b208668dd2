package entity

import (
	"fmt"
	"slices"
	"time"

	"github.com/rocketscienceinc/counter-backend/internal/apperror"
)

const (
	MaxPlayers = 4
	MinPlayers = 1
)

type Game struct {
	ID            string    `json:"id"`
	CurrentNumber int       `json:"current_number"`
	CurrentPlayer string    `json:"current_player"`
	Players       []string  `json:"players"`
	GameOver      bool      `json:"game_over"`
	Winner        *string   `json:"winner"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Lobby is what a player sees after signing in: the game in progress, or the games open to them.
type Lobby struct {
	Active   *Game   `json:"active,omitempty"`
	Joinable []*Game `json:"joinable"`
}

// NewGame - returns the initial record for a game opened by creator.
func NewGame(id, creator string) *Game {
	return &Game{
		ID:            id,
		CurrentNumber: 0,
		CurrentPlayer: creator,
		Players:       []string{creator},
	}
}

func (that *Game) HasPlayer(playerID string) bool {
	return slices.Contains(that.Players, playerID)
}

func (that *Game) IsFull() bool {
	return len(that.Players) >= MaxPlayers
}

// IsJoinable - reports whether a new player could still be appended.
func (that *Game) IsJoinable() bool {
	return !that.GameOver && !that.IsFull()
}

// IsJoinableBy - reports whether playerID would see this game in the lobby.
func (that *Game) IsJoinableBy(playerID string) bool {
	return that.IsJoinable() && !that.HasPlayer(playerID)
}

func (that *Game) IsTurnOf(playerID string) bool {
	return that.CurrentPlayer == playerID
}

// Clone - deep copy, so rule functions never alias the caller's slices.
func (that *Game) Clone() *Game {
	if that == nil {
		return nil
	}

	clone := *that
	clone.Players = slices.Clone(that.Players)

	if that.Winner != nil {
		winner := *that.Winner
		clone.Winner = &winner
	}

	return &clone
}

// Validate - checks the record invariants.
func (that *Game) Validate() error {
	if that.ID == "" {
		return fmt.Errorf("%w: empty game id", apperror.ErrInvalidInput)
	}

	if len(that.Players) < MinPlayers || len(that.Players) > MaxPlayers {
		return fmt.Errorf("%w: game %s has %d players", apperror.ErrInvalidInput, that.ID, len(that.Players))
	}

	seen := make(map[string]struct{}, len(that.Players))
	for _, player := range that.Players {
		if _, ok := seen[player]; ok {
			return fmt.Errorf("%w: duplicate player %s", apperror.ErrInvalidInput, player)
		}
		seen[player] = struct{}{}
	}

	if !that.HasPlayer(that.CurrentPlayer) {
		return fmt.Errorf("%w: current player %s", apperror.ErrPlayerNotInGame, that.CurrentPlayer)
	}

	if that.Winner != nil && !that.GameOver {
		return fmt.Errorf("%w: winner set on a running game", apperror.ErrInvalidInput)
	}

	return nil
}
