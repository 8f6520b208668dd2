package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/counter-backend/internal/apperror"
	"github.com/rocketscienceinc/counter-backend/internal/counter"
	"github.com/rocketscienceinc/counter-backend/internal/entity"
	"github.com/rocketscienceinc/counter-backend/internal/metrics"
	"github.com/rocketscienceinc/counter-backend/internal/pkg"
)

const (
	maxCreateAttempts = 5
	maxJoinableLimit  = 100
)

type gameRepo interface {
	Create(ctx context.Context, actor string, game *entity.Game) (*entity.Game, error)
	GetByID(ctx context.Context, actor, id string) (*entity.Game, error)
	FindActive(ctx context.Context, actor string) (*entity.Game, error)
	ListJoinable(ctx context.Context, actor string, limit int) ([]*entity.Game, error)
	AppendPlayer(ctx context.Context, actor, id string) (*entity.Game, error)
	SaveMove(ctx context.Context, actor string, before, after *entity.Game) (*entity.Game, error)
}

type GameManager struct {
	logger   *slog.Logger
	metrics  *metrics.Metrics
	gameRepo gameRepo

	joinableLimit int
	newGameID     func() string
}

func NewGameManager(logger *slog.Logger, m *metrics.Metrics, gameRepo gameRepo, joinableLimit int) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game-manager"),
		metrics:  m,
		gameRepo: gameRepo,

		joinableLimit: joinableLimit,
		newGameID:     pkg.GenerateGameID,
	}
}

// Discover - the caller's newest running game, or else the games they could join.
func (that *GameManager) Discover(ctx context.Context, actor string, limit int) (*entity.Lobby, error) {
	active, err := that.ActiveGame(ctx, actor)
	if err == nil {
		return &entity.Lobby{Active: active, Joinable: []*entity.Game{}}, nil
	}

	if !errors.Is(err, apperror.ErrGameNotFound) {
		return nil, err
	}

	joinable, err := that.JoinableGames(ctx, actor, limit)
	if err != nil {
		return nil, err
	}

	return &entity.Lobby{Joinable: joinable}, nil
}

func (that *GameManager) ActiveGame(ctx context.Context, actor string) (*entity.Game, error) {
	game, err := that.gameRepo.FindActive(ctx, actor)
	if err != nil {
		return nil, fmt.Errorf("failed to find active game: %w", err)
	}

	return game, nil
}

func (that *GameManager) JoinableGames(ctx context.Context, actor string, limit int) ([]*entity.Game, error) {
	if limit <= 0 {
		limit = that.joinableLimit
	}
	limit = min(limit, maxJoinableLimit)

	games, err := that.gameRepo.ListJoinable(ctx, actor, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list joinable games: %w", err)
	}

	if games == nil {
		games = []*entity.Game{}
	}

	return games, nil
}

// Create - opens a game with actor as the only player, retrying on code collisions.
func (that *GameManager) Create(ctx context.Context, actor string) (*entity.Game, error) {
	log := that.logger.With("method", "Create")

	for attempt := 1; attempt <= maxCreateAttempts; attempt++ {
		game, err := that.gameRepo.Create(ctx, actor, entity.NewGame(that.newGameID(), actor))
		if errors.Is(err, apperror.ErrGameExists) {
			log.Debug("game code collision", "attempt", attempt)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create game: %w", err)
		}

		that.metrics.GamesCreated.Inc()
		log.Info("game created", "game_id", game.ID, "player", actor)

		return game, nil
	}

	return nil, fmt.Errorf("failed to create game: %w", apperror.ErrGameExists)
}

func (that *GameManager) Get(ctx context.Context, actor, id string) (*entity.Game, error) {
	id = normalizeGameID(id)
	if !pkg.IsGameID(id) {
		return nil, fmt.Errorf("malformed game code %q: %w", id, apperror.ErrGameNotFound)
	}

	game, err := that.gameRepo.GetByID(ctx, actor, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// Join - re-reads the game, validates the seat and appends actor.
func (that *GameManager) Join(ctx context.Context, actor, id string) (game *entity.Game, err error) {
	defer func() {
		that.metrics.Joins.WithLabelValues(metrics.Result(err)).Inc()
	}()

	current, err := that.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if _, err = counter.Join(current, actor); err != nil {
		return nil, fmt.Errorf("failed to join game %s: %w", current.ID, err)
	}

	game, err = that.gameRepo.AppendPlayer(ctx, actor, current.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to join game %s: %w", current.ID, err)
	}

	that.logger.Info("player joined", "game_id", game.ID, "player", actor, "players", len(game.Players))

	return game, nil
}

// Move - applies move for actor. The stored row, not the local computation, is returned.
func (that *GameManager) Move(ctx context.Context, actor, id string, move counter.Move) (game *entity.Game, err error) {
	defer func() {
		that.metrics.Moves.WithLabelValues(metrics.Result(err)).Inc()
	}()

	current, err := that.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	next, err := counter.ApplyMove(current, actor, move)
	if err != nil {
		return nil, fmt.Errorf("failed to move in game %s: %w", current.ID, err)
	}

	game, err = that.gameRepo.SaveMove(ctx, actor, current, next)
	if err != nil {
		return nil, fmt.Errorf("failed to move in game %s: %w", current.ID, err)
	}

	return game, nil
}

func normalizeGameID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}
