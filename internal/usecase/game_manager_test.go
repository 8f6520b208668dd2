package usecase

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/counter-backend/internal/apperror"
	"github.com/rocketscienceinc/counter-backend/internal/counter"
	"github.com/rocketscienceinc/counter-backend/internal/entity"
	"github.com/rocketscienceinc/counter-backend/internal/metrics"
	mockedUseCase "github.com/rocketscienceinc/counter-backend/mocks/usecase"
)

var errRedisDown = errors.New("redis down")

func newTestManager(t *testing.T) (*GameManager, *mockedUseCase.MockgameRepo) {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	repo := mockedUseCase.NewMockgameRepo(t)

	return NewGameManager(logger, metrics.NewNop(), repo, 20), repo
}

func TestGameManager_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Opens a game seeded with the creator", func(t *testing.T) {
		// Given: a repository that accepts the insert
		manager, repo := newTestManager(t)
		manager.newGameID = func() string { return "ABC234" }

		repo.EXPECT().
			Create(mock.Anything, "alice", entity.NewGame("ABC234", "alice")).
			RunAndReturn(func(_ context.Context, _ string, game *entity.Game) (*entity.Game, error) {
				return game, nil
			}).
			Once()

		// When: alice creates a game
		game, err := manager.Create(ctx, "alice")

		// Then: she is the only player and holds the turn at zero
		require.NoError(t, err)
		assert.Equal(t, "ABC234", game.ID)
		assert.Equal(t, []string{"alice"}, game.Players)
		assert.Equal(t, "alice", game.CurrentPlayer)
		assert.Equal(t, 0, game.CurrentNumber)
	})

	t.Run("Retries on a code collision", func(t *testing.T) {
		// Given: the first code is taken
		manager, repo := newTestManager(t)
		codes := []string{"TAKEN2", "FRESH2"}
		manager.newGameID = func() string {
			code := codes[0]
			codes = codes[1:]
			return code
		}

		repo.EXPECT().
			Create(mock.Anything, "alice", mock.MatchedBy(func(game *entity.Game) bool { return game.ID == "TAKEN2" })).
			Return(nil, apperror.ErrGameExists).
			Once()
		repo.EXPECT().
			Create(mock.Anything, "alice", mock.MatchedBy(func(game *entity.Game) bool { return game.ID == "FRESH2" })).
			Return(entity.NewGame("FRESH2", "alice"), nil).
			Once()

		// When: alice creates a game
		game, err := manager.Create(ctx, "alice")

		// Then: the second code is used
		require.NoError(t, err)
		assert.Equal(t, "FRESH2", game.ID)
	})

	t.Run("Gives up after five collisions", func(t *testing.T) {
		manager, repo := newTestManager(t)

		repo.EXPECT().
			Create(mock.Anything, "alice", mock.AnythingOfType("*entity.Game")).
			Return(nil, apperror.ErrGameExists).
			Times(maxCreateAttempts)

		_, err := manager.Create(ctx, "alice")

		require.ErrorIs(t, err, apperror.ErrGameExists)
	})

	t.Run("Storage failure is returned", func(t *testing.T) {
		manager, repo := newTestManager(t)

		repo.EXPECT().
			Create(mock.Anything, "alice", mock.AnythingOfType("*entity.Game")).
			Return(nil, errRedisDown).
			Once()

		_, err := manager.Create(ctx, "alice")

		require.ErrorIs(t, err, errRedisDown)
	})
}

func TestGameManager_Discover(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the active game when there is one", func(t *testing.T) {
		// Given: alice is in a running game
		manager, repo := newTestManager(t)
		active := &entity.Game{ID: "ABC234", Players: []string{"alice"}, CurrentPlayer: "alice"}

		repo.EXPECT().FindActive(mock.Anything, "alice").Return(active, nil).Once()

		// When: discovering
		lobby, err := manager.Discover(ctx, "alice", 0)

		// Then: the lobby points at the game and no list is fetched
		require.NoError(t, err)
		assert.Equal(t, active, lobby.Active)
		assert.Empty(t, lobby.Joinable)
	})

	t.Run("Falls back to joinable games with the default limit", func(t *testing.T) {
		// Given: bob has no running game
		manager, repo := newTestManager(t)
		open := []*entity.Game{{ID: "ABC234", Players: []string{"alice"}, CurrentPlayer: "alice"}}

		repo.EXPECT().FindActive(mock.Anything, "bob").Return(nil, apperror.ErrGameNotFound).Once()
		repo.EXPECT().ListJoinable(mock.Anything, "bob", 20).Return(open, nil).Once()

		// When: discovering
		lobby, err := manager.Discover(ctx, "bob", 0)

		// Then: the open games are listed
		require.NoError(t, err)
		assert.Nil(t, lobby.Active)
		assert.Equal(t, open, lobby.Joinable)
	})

	t.Run("Caps the requested limit", func(t *testing.T) {
		manager, repo := newTestManager(t)

		repo.EXPECT().ListJoinable(mock.Anything, "bob", maxJoinableLimit).Return(nil, nil).Once()

		games, err := manager.JoinableGames(ctx, "bob", 5000)

		require.NoError(t, err)
		assert.NotNil(t, games)
		assert.Empty(t, games)
	})

	t.Run("Storage failure is not mistaken for an empty lobby", func(t *testing.T) {
		manager, repo := newTestManager(t)

		repo.EXPECT().FindActive(mock.Anything, "bob").Return(nil, errRedisDown).Once()

		_, err := manager.Discover(ctx, "bob", 0)

		require.ErrorIs(t, err, errRedisDown)
	})
}

func TestGameManager_Join(t *testing.T) {
	ctx := context.Background()

	t.Run("Appends the joiner", func(t *testing.T) {
		// Given: alice's open game
		manager, repo := newTestManager(t)
		current := entity.NewGame("ABC234", "alice")
		joined := &entity.Game{ID: "ABC234", Players: []string{"alice", "bob"}, CurrentPlayer: "alice"}

		repo.EXPECT().GetByID(mock.Anything, "bob", "ABC234").Return(current, nil).Once()
		repo.EXPECT().AppendPlayer(mock.Anything, "bob", "ABC234").Return(joined, nil).Once()

		// When: bob joins with a lower-case code
		game, err := manager.Join(ctx, "bob", " abc234 ")

		// Then: the stored row is returned
		require.NoError(t, err)
		assert.Equal(t, joined, game)
	})

	t.Run("Already joined is rejected without a write", func(t *testing.T) {
		manager, repo := newTestManager(t)
		current := &entity.Game{ID: "ABC234", Players: []string{"alice", "bob"}, CurrentPlayer: "alice"}

		repo.EXPECT().GetByID(mock.Anything, "bob", "ABC234").Return(current, nil).Once()

		_, err := manager.Join(ctx, "bob", "ABC234")

		require.ErrorIs(t, err, apperror.ErrAlreadyJoined)
	})

	t.Run("Full game is rejected without a write", func(t *testing.T) {
		manager, repo := newTestManager(t)
		current := &entity.Game{ID: "ABC234", Players: []string{"a", "b", "c", "d"}, CurrentPlayer: "a"}

		repo.EXPECT().GetByID(mock.Anything, "e", "ABC234").Return(current, nil).Once()

		_, err := manager.Join(ctx, "e", "ABC234")

		require.ErrorIs(t, err, apperror.ErrGameFull)
	})

	t.Run("Unknown game is not found", func(t *testing.T) {
		manager, repo := newTestManager(t)

		repo.EXPECT().GetByID(mock.Anything, "bob", "ZZZZZZ").Return(nil, apperror.ErrGameNotFound).Once()

		_, err := manager.Join(ctx, "bob", "ZZZZZZ")

		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})

	t.Run("Lost race for the last seat surfaces the policy rejection", func(t *testing.T) {
		// Given: the game looked open when read
		manager, repo := newTestManager(t)
		current := &entity.Game{ID: "ABC234", Players: []string{"a", "b", "c"}, CurrentPlayer: "a"}

		repo.EXPECT().GetByID(mock.Anything, "x", "ABC234").Return(current, nil).Once()
		repo.EXPECT().AppendPlayer(mock.Anything, "x", "ABC234").Return(nil, apperror.ErrForbidden).Once()

		// When: the store refuses the append
		_, err := manager.Join(ctx, "x", "ABC234")

		// Then: the caller learns it was refused
		require.ErrorIs(t, err, apperror.ErrForbidden)
	})
}

func TestGameManager_Move(t *testing.T) {
	ctx := context.Background()

	t.Run("Current player moves and the stored row is returned", func(t *testing.T) {
		// Given: A's turn in a two player game
		manager, repo := newTestManager(t)
		current := &entity.Game{ID: "ABC234", Players: []string{"A", "B"}, CurrentPlayer: "A"}
		stored := &entity.Game{ID: "ABC234", Players: []string{"A", "B"}, CurrentPlayer: "B", CurrentNumber: 1}

		repo.EXPECT().GetByID(mock.Anything, "A", "ABC234").Return(current, nil).Once()
		repo.EXPECT().
			SaveMove(mock.Anything, "A", current, mock.MatchedBy(func(next *entity.Game) bool {
				return next.CurrentNumber == 1 && next.CurrentPlayer == "B"
			})).
			Return(stored, nil).
			Once()

		// When: A increments
		game, err := manager.Move(ctx, "A", "ABC234", counter.Increment)

		// Then: the authoritative row is returned
		require.NoError(t, err)
		assert.Same(t, stored, game)
	})

	t.Run("Out of turn move never reaches the store", func(t *testing.T) {
		manager, repo := newTestManager(t)
		current := &entity.Game{ID: "ABC234", Players: []string{"A", "B"}, CurrentPlayer: "A"}

		repo.EXPECT().GetByID(mock.Anything, "C", "ABC234").Return(current, nil).Once()

		_, err := manager.Move(ctx, "C", "ABC234", counter.Increment)

		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
	})

	t.Run("Concurrent write is a conflict", func(t *testing.T) {
		manager, repo := newTestManager(t)
		current := &entity.Game{ID: "ABC234", Players: []string{"A"}, CurrentPlayer: "A"}

		repo.EXPECT().GetByID(mock.Anything, "A", "ABC234").Return(current, nil).Once()
		repo.EXPECT().
			SaveMove(mock.Anything, "A", current, mock.AnythingOfType("*entity.Game")).
			Return(nil, apperror.ErrConflict).
			Once()

		_, err := manager.Move(ctx, "A", "ABC234", counter.Decrement)

		require.ErrorIs(t, err, apperror.ErrConflict)
	})
}

func TestGameManager_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Code is normalized before the lookup", func(t *testing.T) {
		manager, repo := newTestManager(t)
		stored := &entity.Game{ID: "ABC234", Players: []string{"alice"}}

		repo.EXPECT().GetByID(mock.Anything, "alice", "ABC234").Return(stored, nil).Once()

		game, err := manager.Get(ctx, "alice", "  abc234 ")

		require.NoError(t, err)
		assert.Equal(t, stored, game)
	})

	t.Run("Malformed code never reaches the store", func(t *testing.T) {
		// Given: a repo with no expectations, so any call fails the test
		manager, _ := newTestManager(t)

		for _, id := range []string{"", "bad!", "ABC23", "ABC2345", "ABC10O"} {
			// When: the code cannot have been generated
			_, err := manager.Get(ctx, "alice", id)

			// Then
			require.ErrorIs(t, err, apperror.ErrGameNotFound, id)
		}
	})
}
