package counter

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rocketscienceinc/counter-backend/internal/apperror"
	"github.com/rocketscienceinc/counter-backend/internal/entity"
)

// Move is the signed step a player applies to the shared number.
type Move int

const (
	Increment Move = 1
	Decrement Move = -1
)

func (that Move) String() string {
	switch that {
	case Increment:
		return "increment"
	case Decrement:
		return "decrement"
	default:
		return fmt.Sprintf("move(%d)", int(that))
	}
}

func (that Move) Valid() bool {
	return that == Increment || that == Decrement
}

// ParseMove - accepts the wire names and their short forms.
func ParseMove(raw string) (Move, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "increment", "inc", "+", "+1":
		return Increment, nil
	case "decrement", "dec", "-", "-1":
		return Decrement, nil
	default:
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidMove, raw)
	}
}

// NextPlayer - returns the player seated after current, wrapping to the first seat.
func NextPlayer(players []string, current string) (string, error) {
	index := slices.Index(players, current)
	if index < 0 {
		return "", fmt.Errorf("%w: %s", apperror.ErrPlayerNotInGame, current)
	}

	return players[(index+1)%len(players)], nil
}

// ApplyMove - validates the move and returns the next record. The input is never modified.
func ApplyMove(game *entity.Game, actor string, move Move) (*entity.Game, error) {
	if game.GameOver {
		return nil, apperror.ErrGameOver
	}

	if !move.Valid() {
		return nil, fmt.Errorf("%w: %s", apperror.ErrInvalidMove, move)
	}

	if !game.IsTurnOf(actor) {
		return nil, apperror.ErrNotYourTurn
	}

	next, err := NextPlayer(game.Players, game.CurrentPlayer)
	if err != nil {
		return nil, fmt.Errorf("invalid game %s: %w", game.ID, err)
	}

	updated := game.Clone()
	updated.CurrentNumber += int(move)
	updated.CurrentPlayer = next

	return updated, nil
}

// Join - validates that actor may take a seat and returns the next record.
func Join(game *entity.Game, actor string) (*entity.Game, error) {
	if game.HasPlayer(actor) {
		return nil, apperror.ErrAlreadyJoined
	}

	if game.GameOver {
		return nil, apperror.ErrGameOver
	}

	if game.IsFull() {
		return nil, apperror.ErrGameFull
	}

	updated := game.Clone()
	updated.Players = append(updated.Players, actor)

	return updated, nil
}
