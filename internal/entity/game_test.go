package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/counter-backend/internal/apperror"
)

func TestNewGame(t *testing.T) {
	// When: a player opens a new game
	game := NewGame("ABC234", "alice")

	// Then: the creator is the only player and holds the turn
	expected := &Game{
		ID:            "ABC234",
		CurrentNumber: 0,
		CurrentPlayer: "alice",
		Players:       []string{"alice"},
	}

	require.Equal(t, expected, game)
	require.NoError(t, game.Validate())
}

func TestGame_IsJoinable(t *testing.T) {
	t.Run("Open game with free seats is joinable", func(t *testing.T) {
		// Given: a game with two players
		game := &Game{ID: "G1", Players: []string{"a", "b"}, CurrentPlayer: "a"}

		// Then: it is joinable by a stranger but not by a member
		assert.True(t, game.IsJoinable())
		assert.True(t, game.IsJoinableBy("c"))
		assert.False(t, game.IsJoinableBy("a"))
	})

	t.Run("Full game is not joinable", func(t *testing.T) {
		// Given: a game with four players
		game := &Game{ID: "G1", Players: []string{"a", "b", "c", "d"}, CurrentPlayer: "a"}

		// Then: nobody can join
		assert.True(t, game.IsFull())
		assert.False(t, game.IsJoinableBy("e"))
	})

	t.Run("Finished game is not joinable", func(t *testing.T) {
		// Given: a finished game with a free seat
		game := &Game{ID: "G1", Players: []string{"a"}, CurrentPlayer: "a", GameOver: true}

		// Then: nobody can join
		assert.False(t, game.IsJoinable())
	})
}

func TestGame_Clone(t *testing.T) {
	// Given: a game with a winner
	winner := "a"
	game := &Game{ID: "G1", Players: []string{"a", "b"}, CurrentPlayer: "a", GameOver: true, Winner: &winner}

	// When: the clone is modified
	clone := game.Clone()
	clone.Players[0] = "z"
	*clone.Winner = "z"

	// Then: the original is untouched
	assert.Equal(t, []string{"a", "b"}, game.Players)
	assert.Equal(t, "a", *game.Winner)
}

func TestGame_Validate(t *testing.T) {
	tests := []struct {
		name    string
		game    *Game
		wantErr error
	}{
		{
			name:    "empty id",
			game:    &Game{Players: []string{"a"}, CurrentPlayer: "a"},
			wantErr: apperror.ErrInvalidInput,
		},
		{
			name:    "no players",
			game:    &Game{ID: "G1"},
			wantErr: apperror.ErrInvalidInput,
		},
		{
			name:    "five players",
			game:    &Game{ID: "G1", Players: []string{"a", "b", "c", "d", "e"}, CurrentPlayer: "a"},
			wantErr: apperror.ErrInvalidInput,
		},
		{
			name:    "duplicate player",
			game:    &Game{ID: "G1", Players: []string{"a", "a"}, CurrentPlayer: "a"},
			wantErr: apperror.ErrInvalidInput,
		},
		{
			name:    "current player outside the list",
			game:    &Game{ID: "G1", Players: []string{"a", "b"}, CurrentPlayer: "c"},
			wantErr: apperror.ErrPlayerNotInGame,
		},
		{
			name: "valid",
			game: &Game{ID: "G1", Players: []string{"a", "b"}, CurrentPlayer: "b", CurrentNumber: -3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.game.Validate()

			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
