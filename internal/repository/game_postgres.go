package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rocketscienceinc/counter-backend/internal/apperror"
	"github.com/rocketscienceinc/counter-backend/internal/entity"
)

const gameColumns = `id, current_number, current_player, players, game_over, winner, created_at, updated_at`

// pgGame runs every statement as the row-security role with app.user_id set
// to the actor, so the policies in the migrations decide what is visible.
type pgGame struct {
	pool *pgxpool.Pool
	role string
}

func NewPostgresGameRepository(pool *pgxpool.Pool, role string) GameRepository {
	return &pgGame{
		pool: pool,
		role: role,
	}
}

func (that *pgGame) Create(ctx context.Context, actor string, game *entity.Game) (*entity.Game, error) {
	var created *entity.Game

	err := that.asPlayer(ctx, actor, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `
			INSERT INTO games (id, current_number, current_player, players, game_over)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING `+gameColumns,
			game.ID, game.CurrentNumber, game.CurrentPlayer, game.Players, game.GameOver)

		var err error
		created, err = scanGame(row)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", mapPgError(err, apperror.ErrGameExists))
	}

	return created, nil
}

func (that *pgGame) GetByID(ctx context.Context, actor, id string) (*entity.Game, error) {
	var game *entity.Game

	err := that.asPlayer(ctx, actor, func(tx pgx.Tx) error {
		var err error
		game, err = scanGame(tx.QueryRow(ctx, `SELECT `+gameColumns+` FROM games WHERE id = $1`, id))
		return err
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperror.ErrGameNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (that *pgGame) FindActive(ctx context.Context, actor string) (*entity.Game, error) {
	var game *entity.Game

	err := that.asPlayer(ctx, actor, func(tx pgx.Tx) error {
		var err error
		game, err = scanGame(tx.QueryRow(ctx, `
			SELECT `+gameColumns+`
			FROM games
			WHERE $1 = ANY (players) AND NOT game_over
			ORDER BY created_at DESC
			LIMIT 1`, actor))
		return err
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperror.ErrGameNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find active game: %w", err)
	}

	return game, nil
}

func (that *pgGame) ListJoinable(ctx context.Context, actor string, limit int) ([]*entity.Game, error) {
	games := make([]*entity.Game, 0, limit)

	err := that.asPlayer(ctx, actor, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `
			SELECT `+gameColumns+`
			FROM games
			WHERE NOT game_over AND cardinality(players) < $2 AND NOT ($1 = ANY (players))
			ORDER BY created_at DESC
			LIMIT $3`, actor, entity.MaxPlayers, limit)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			game, err := scanGame(rows)
			if err != nil {
				return err
			}
			games = append(games, game)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list joinable games: %w", err)
	}

	return games, nil
}

// AppendPlayer - appends actor in one statement. The joiner policy is checked
// against the locked row, so a join racing past the last seat updates nothing.
func (that *pgGame) AppendPlayer(ctx context.Context, actor, id string) (*entity.Game, error) {
	var game *entity.Game

	err := that.asPlayer(ctx, actor, func(tx pgx.Tx) error {
		var err error
		game, err = scanGame(tx.QueryRow(ctx, `
			UPDATE games SET players = array_append(players, $2)
			WHERE id = $1
			RETURNING `+gameColumns, id, actor))
		return err
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: join %s", apperror.ErrForbidden, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to join game: %w", mapPgError(err, apperror.ErrConflict))
	}

	return game, nil
}

// SaveMove - writes after only if the row still holds before's number and turn.
func (that *pgGame) SaveMove(ctx context.Context, actor string, before, after *entity.Game) (*entity.Game, error) {
	var game *entity.Game

	err := that.asPlayer(ctx, actor, func(tx pgx.Tx) error {
		var err error
		game, err = scanGame(tx.QueryRow(ctx, `
			UPDATE games SET current_number = $2, current_player = $3
			WHERE id = $1 AND current_number = $4 AND current_player = $5
			RETURNING `+gameColumns,
			before.ID, after.CurrentNumber, after.CurrentPlayer, before.CurrentNumber, before.CurrentPlayer))
		if !errors.Is(err, pgx.ErrNoRows) {
			return err
		}

		current, err := scanGame(tx.QueryRow(ctx, `SELECT `+gameColumns+` FROM games WHERE id = $1`, before.ID))
		if errors.Is(err, pgx.ErrNoRows) {
			return apperror.ErrGameNotFound
		}
		if err != nil {
			return err
		}

		if current.CurrentNumber == before.CurrentNumber && current.CurrentPlayer == before.CurrentPlayer {
			return fmt.Errorf("%w: move on %s", apperror.ErrForbidden, before.ID)
		}

		return fmt.Errorf("%w: game %s moved on", apperror.ErrConflict, before.ID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save move: %w", mapPgError(err, apperror.ErrConflict))
	}

	return game, nil
}

func (that *pgGame) asPlayer(ctx context.Context, actor string, fn func(tx pgx.Tx) error) error {
	return pgx.BeginFunc(ctx, that.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, "SET LOCAL ROLE "+pgx.Identifier{that.role}.Sanitize()); err != nil {
			return fmt.Errorf("failed to assume role: %w", err)
		}

		if _, err := tx.Exec(ctx, "SELECT set_config('app.user_id', $1, true)", actor); err != nil {
			return fmt.Errorf("failed to set identity: %w", err)
		}

		return fn(tx)
	})
}

func scanGame(row pgx.Row) (*entity.Game, error) {
	var game entity.Game

	err := row.Scan(
		&game.ID,
		&game.CurrentNumber,
		&game.CurrentPlayer,
		&game.Players,
		&game.GameOver,
		&game.Winner,
		&game.CreatedAt,
		&game.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &game, nil
}
