package counter

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/counter-backend/internal/apperror"
	"github.com/rocketscienceinc/counter-backend/internal/entity"
)

func TestNextPlayer(t *testing.T) {
	t.Run("Every seat hands the turn to the following seat", func(t *testing.T) {
		for size := 1; size <= entity.MaxPlayers; size++ {
			players := make([]string, size)
			for i := range players {
				players[i] = fmt.Sprintf("p%d", i)
			}

			for i, current := range players {
				// When: rotating from seat i
				next, err := NextPlayer(players, current)

				// Then: the next seat is i+1 modulo the table size
				require.NoError(t, err)
				assert.Equal(t, players[(i+1)%size], next, "size %d seat %d", size, i)
			}
		}
	})

	t.Run("Last seat wraps to the first", func(t *testing.T) {
		next, err := NextPlayer([]string{"a", "b", "c"}, "c")

		require.NoError(t, err)
		assert.Equal(t, "a", next)
	})

	t.Run("Unknown current player is an error", func(t *testing.T) {
		_, err := NextPlayer([]string{"a", "b"}, "z")

		require.ErrorIs(t, err, apperror.ErrPlayerNotInGame)
	})
}

func TestApplyMove(t *testing.T) {
	t.Run("Increment by the current player", func(t *testing.T) {
		// Given: a two player game where it is A's turn
		game := &entity.Game{ID: "G1", Players: []string{"A", "B"}, CurrentPlayer: "A"}

		// When: A increments
		updated, err := ApplyMove(game, "A", Increment)

		// Then: the number goes up and B holds the turn
		require.NoError(t, err)
		assert.Equal(t, 1, updated.CurrentNumber)
		assert.Equal(t, "B", updated.CurrentPlayer)

		// And: the input record is untouched
		assert.Equal(t, 0, game.CurrentNumber)
		assert.Equal(t, "A", game.CurrentPlayer)
	})

	t.Run("Move out of turn changes nothing", func(t *testing.T) {
		// Given: a game where it is A's turn
		game := &entity.Game{ID: "G1", Players: []string{"A", "B"}, CurrentPlayer: "A", CurrentNumber: 7}

		for _, actor := range []string{"B", "C"} {
			// When: someone else tries to move
			updated, err := ApplyMove(game, actor, Decrement)

			// Then: the move is rejected and the game is unchanged
			require.ErrorIs(t, err, apperror.ErrNotYourTurn)
			assert.Nil(t, updated)
			assert.Equal(t, 7, game.CurrentNumber)
			assert.Equal(t, "A", game.CurrentPlayer)
		}
	})

	t.Run("Invalid step is rejected", func(t *testing.T) {
		game := &entity.Game{ID: "G1", Players: []string{"A"}, CurrentPlayer: "A"}

		_, err := ApplyMove(game, "A", Move(5))

		require.ErrorIs(t, err, apperror.ErrInvalidMove)
	})

	t.Run("Finished game rejects moves", func(t *testing.T) {
		game := &entity.Game{ID: "G1", Players: []string{"A"}, CurrentPlayer: "A", GameOver: true}

		_, err := ApplyMove(game, "A", Increment)

		require.ErrorIs(t, err, apperror.ErrGameOver)
	})

	t.Run("Solo player keeps the turn", func(t *testing.T) {
		game := &entity.Game{ID: "G1", Players: []string{"A"}, CurrentPlayer: "A"}

		updated, err := ApplyMove(game, "A", Decrement)

		require.NoError(t, err)
		assert.Equal(t, -1, updated.CurrentNumber)
		assert.Equal(t, "A", updated.CurrentPlayer)
	})
}

func TestJoin(t *testing.T) {
	t.Run("Appends the joiner in join order", func(t *testing.T) {
		game := &entity.Game{ID: "G1", Players: []string{"A", "B"}, CurrentPlayer: "B"}

		updated, err := Join(game, "C")

		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "C"}, updated.Players)
		assert.Equal(t, "B", updated.CurrentPlayer)
		assert.Equal(t, []string{"A", "B"}, game.Players)
	})

	t.Run("Already joined is rejected without duplicating", func(t *testing.T) {
		game := &entity.Game{ID: "G1", Players: []string{"A", "B"}, CurrentPlayer: "A"}

		updated, err := Join(game, "B")

		require.ErrorIs(t, err, apperror.ErrAlreadyJoined)
		assert.Nil(t, updated)
		assert.Equal(t, []string{"A", "B"}, game.Players)
	})

	t.Run("Full game is rejected", func(t *testing.T) {
		game := &entity.Game{ID: "G1", Players: []string{"A", "B", "C", "D"}, CurrentPlayer: "A"}

		_, err := Join(game, "E")

		require.ErrorIs(t, err, apperror.ErrGameFull)
	})

	t.Run("Finished game is rejected", func(t *testing.T) {
		game := &entity.Game{ID: "G1", Players: []string{"A"}, CurrentPlayer: "A", GameOver: true}

		_, err := Join(game, "B")

		require.ErrorIs(t, err, apperror.ErrGameOver)
	})
}

func TestScenario_JoinThenAlternate(t *testing.T) {
	// Given: A's fresh game
	game := entity.NewGame("G1", "A")

	// When: B joins
	game, err := Join(game, "B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, game.Players)

	// When: A increments
	game, err = ApplyMove(game, "A", Increment)
	require.NoError(t, err)
	assert.Equal(t, 1, game.CurrentNumber)
	assert.Equal(t, "B", game.CurrentPlayer)

	// When: C tries to move while it is B's turn
	_, err = ApplyMove(game, "C", Increment)
	require.ErrorIs(t, err, apperror.ErrNotYourTurn)

	// When: B decrements
	game, err = ApplyMove(game, "B", Decrement)
	require.NoError(t, err)
	assert.Equal(t, 0, game.CurrentNumber)
	assert.Equal(t, "A", game.CurrentPlayer)
}

func TestParseMove(t *testing.T) {
	for raw, want := range map[string]Move{
		"increment": Increment,
		"INC":       Increment,
		"+":         Increment,
		"decrement": Decrement,
		" dec ":     Decrement,
		"-1":        Decrement,
	} {
		got, err := ParseMove(raw)

		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := ParseMove("double")
	require.ErrorIs(t, err, apperror.ErrInvalidMove)
}
