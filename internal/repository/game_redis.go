package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/counter-backend/internal/apperror"
	"github.com/rocketscienceinc/counter-backend/internal/changefeed"
	"github.com/rocketscienceinc/counter-backend/internal/entity"
	"github.com/rocketscienceinc/counter-backend/internal/policy"
)

const (
	openGamesKey = "games:open"

	// a join that loses a WATCH race is re-evaluated against the newer row
	maxJoinAttempts = 3
)

// dbGame keeps each game as a JSON document and checks the access policies
// inside the WATCH/MULTI transaction that writes it.
type dbGame struct {
	logger    *slog.Logger
	client    *redis.Client
	publisher changefeed.Publisher
	rules     policy.Set
}

func NewRedisGameRepository(logger *slog.Logger, client *redis.Client, publisher changefeed.Publisher) GameRepository {
	return &dbGame{
		logger:    logger.With("component", "redis-game-repository"),
		client:    client,
		publisher: publisher,
		rules:     policy.Default,
	}
}

func (that *dbGame) Create(ctx context.Context, actor string, game *entity.Game) (*entity.Game, error) {
	record := game.Clone()
	now := time.Now().UTC()
	record.CreatedAt = now
	record.UpdatedAt = now

	if err := record.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	if !that.rules.CanInsert(actor, record) {
		return nil, fmt.Errorf("%w: insert %s", apperror.ErrForbidden, record.ID)
	}

	gameJSON, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("could not marshal game: %w", err)
	}

	key := gameKey(record.ID)

	err = that.client.Watch(ctx, func(tx *redis.Tx) error {
		exists, err := tx.Exists(ctx, key).Result()
		if err != nil {
			return err
		}

		if exists > 0 {
			return apperror.ErrGameExists
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, gameJSON, 0)
			pipe.ZAdd(ctx, openGamesKey, redis.Z{Score: createdScore(record), Member: record.ID})
			pipe.SAdd(ctx, playerGamesKey(actor), record.ID)
			return nil
		})
		return err
	}, key)
	if errors.Is(err, redis.TxFailedErr) {
		return nil, fmt.Errorf("failed to create game: %w", apperror.ErrConflict)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.publish(ctx, changefeed.EventInsert, record)

	return record, nil
}

func (that *dbGame) GetByID(ctx context.Context, actor, id string) (*entity.Game, error) {
	game, err := that.load(ctx, that.client, id)
	if err != nil {
		return nil, err
	}

	if !that.rules.CanSelect(actor, game) {
		return nil, apperror.ErrGameNotFound
	}

	return game, nil
}

func (that *dbGame) FindActive(ctx context.Context, actor string) (*entity.Game, error) {
	ids, err := that.client.SMembers(ctx, playerGamesKey(actor)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list player games: %w", err)
	}

	games, err := that.loadMany(ctx, ids)
	if err != nil {
		return nil, err
	}

	var active *entity.Game
	for _, game := range games {
		if game.GameOver || !game.HasPlayer(actor) {
			continue
		}

		if active == nil || game.CreatedAt.After(active.CreatedAt) {
			active = game
		}
	}

	if active == nil {
		return nil, apperror.ErrGameNotFound
	}

	return active, nil
}

func (that *dbGame) ListJoinable(ctx context.Context, actor string, limit int) ([]*entity.Game, error) {
	ids, err := that.client.ZRevRange(ctx, openGamesKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list open games: %w", err)
	}

	games, err := that.loadMany(ctx, ids)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(games, func(i, j int) bool {
		return games[i].CreatedAt.After(games[j].CreatedAt)
	})

	joinable := make([]*entity.Game, 0, limit)
	for _, game := range games {
		if len(joinable) == limit {
			break
		}

		if game.IsJoinableBy(actor) && that.rules.CanSelect(actor, game) {
			joinable = append(joinable, game)
		}
	}

	return joinable, nil
}

func (that *dbGame) AppendPlayer(ctx context.Context, actor, id string) (*entity.Game, error) {
	var (
		updated *entity.Game
		err     error
	)

	for range maxJoinAttempts {
		updated, err = that.update(ctx, actor, id, func(current *entity.Game) (*entity.Game, error) {
			next := current.Clone()
			next.Players = append(next.Players, actor)

			if !that.rules.CanUpdate(actor, current, next) {
				return nil, fmt.Errorf("%w: join %s", apperror.ErrForbidden, id)
			}

			return next, nil
		})
		if !errors.Is(err, apperror.ErrConflict) {
			break
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to join game: %w", err)
	}

	return updated, nil
}

func (that *dbGame) SaveMove(ctx context.Context, actor string, before, after *entity.Game) (*entity.Game, error) {
	updated, err := that.update(ctx, actor, before.ID, func(current *entity.Game) (*entity.Game, error) {
		if !that.rules.CanSelect(actor, current) {
			return nil, apperror.ErrGameNotFound
		}

		if current.CurrentNumber != before.CurrentNumber || current.CurrentPlayer != before.CurrentPlayer {
			return nil, fmt.Errorf("%w: game %s moved on", apperror.ErrConflict, before.ID)
		}

		next := current.Clone()
		next.CurrentNumber = after.CurrentNumber
		next.CurrentPlayer = after.CurrentPlayer

		if !that.rules.CanUpdate(actor, current, next) {
			return nil, fmt.Errorf("%w: move on %s", apperror.ErrForbidden, before.ID)
		}

		return next, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save move: %w", err)
	}

	return updated, nil
}

// update - read-modify-write of one game under WATCH. mutate sees the current
// row and returns the row to store, or an error to abort without writing.
func (that *dbGame) update(
	ctx context.Context,
	actor, id string,
	mutate func(current *entity.Game) (*entity.Game, error),
) (*entity.Game, error) {
	key := gameKey(id)

	var next *entity.Game

	err := that.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := that.load(ctx, tx, id)
		if err != nil {
			return err
		}

		next, err = mutate(current)
		if err != nil {
			return err
		}

		next.UpdatedAt = time.Now().UTC()

		if err = next.Validate(); err != nil {
			return err
		}

		gameJSON, err := json.Marshal(next)
		if err != nil {
			return fmt.Errorf("could not marshal game: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, gameJSON, 0)
			for _, player := range next.Players {
				pipe.SAdd(ctx, playerGamesKey(player), id)
			}
			if !next.IsJoinable() {
				pipe.ZRem(ctx, openGamesKey, id)
			}
			return nil
		})
		return err
	}, key)
	if errors.Is(err, redis.TxFailedErr) {
		return nil, apperror.ErrConflict
	}
	if err != nil {
		return nil, err
	}

	that.publish(ctx, changefeed.EventUpdate, next)

	return next, nil
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func (that *dbGame) load(ctx context.Context, client getter, id string) (*entity.Game, error) {
	response, err := client.Get(ctx, gameKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrGameNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	var game entity.Game
	if err = json.Unmarshal([]byte(response), &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &game, nil
}

func (that *dbGame) loadMany(ctx context.Context, ids []string) ([]*entity.Game, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = gameKey(id)
	}

	values, err := that.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get games: %w", err)
	}

	games := make([]*entity.Game, 0, len(values))
	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}

		var game entity.Game
		if err = json.Unmarshal([]byte(raw), &game); err != nil {
			return nil, fmt.Errorf("failed to unmarshal game: %w", err)
		}
		games = append(games, &game)
	}

	return games, nil
}

// publish - the row is committed already, a feed failure only costs live updates.
func (that *dbGame) publish(ctx context.Context, eventType changefeed.EventType, game *entity.Game) {
	log := that.logger.With("method", "publish")

	if err := that.publisher.Publish(ctx, changefeed.Event{Type: eventType, Record: game}); err != nil {
		log.Error("failed to publish game change", "error", err, "game_id", game.ID)
	}
}

func gameKey(id string) string {
	return "game:" + id
}

func playerGamesKey(playerID string) string {
	return "player:" + playerID + ":games"
}

func createdScore(game *entity.Game) float64 {
	return float64(game.CreatedAt.UnixMicro())
}
