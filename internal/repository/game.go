package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/rocketscienceinc/counter-backend/internal/apperror"
	"github.com/rocketscienceinc/counter-backend/internal/entity"
)

// GameRepository stores game rows. Every call runs on behalf of actor and
// only sees or writes the rows the access policies allow for that identity.
type GameRepository interface {
	Create(ctx context.Context, actor string, game *entity.Game) (*entity.Game, error)
	GetByID(ctx context.Context, actor, id string) (*entity.Game, error)
	FindActive(ctx context.Context, actor string) (*entity.Game, error)
	ListJoinable(ctx context.Context, actor string, limit int) ([]*entity.Game, error)
	AppendPlayer(ctx context.Context, actor, id string) (*entity.Game, error)
	SaveMove(ctx context.Context, actor string, before, after *entity.Game) (*entity.Game, error)
}

const (
	pgUniqueViolation       = "23505"
	pgCheckViolation        = "23514"
	pgInsufficientPrivilege = "42501"
)

// mapPgError - translates constraint and policy violations into application errors.
func mapPgError(err error, uniqueErr error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgUniqueViolation:
		return fmt.Errorf("%w: %s", uniqueErr, pgErr.ConstraintName)
	case pgCheckViolation:
		return fmt.Errorf("%w: %s", apperror.ErrInvalidInput, pgErr.ConstraintName)
	case pgInsufficientPrivilege:
		return fmt.Errorf("%w: %s", apperror.ErrForbidden, pgErr.Message)
	default:
		return err
	}
}
