package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/counter-backend/internal/apperror"
	"github.com/rocketscienceinc/counter-backend/internal/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
}

type pgUser struct {
	pool *pgxpool.Pool
}

func NewPostgresUserRepository(pool *pgxpool.Pool) UserRepository {
	return &pgUser{
		pool: pool,
	}
}

func (that *pgUser) Create(ctx context.Context, user *entity.User) error {
	err := that.pool.QueryRow(ctx, `
		INSERT INTO users (id, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING created_at`,
		user.ID, user.Email, user.PasswordHash).Scan(&user.CreatedAt)
	if err != nil {
		return fmt.Errorf("can't save user: %w", mapPgError(err, apperror.ErrEmailTaken))
	}

	return nil
}

func (that *pgUser) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return that.find(ctx, `WHERE email = $1`, email)
}

func (that *pgUser) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return that.find(ctx, `WHERE id = $1`, id)
}

func (that *pgUser) find(ctx context.Context, where string, arg string) (*entity.User, error) {
	var user entity.User

	err := that.pool.QueryRow(ctx, `SELECT id::text, email, password_hash, created_at FROM users `+where, arg).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperror.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't find user: %w", err)
	}

	return &user, nil
}

type dbUser struct {
	client *redis.Client
}

func NewRedisUserRepository(client *redis.Client) UserRepository {
	return &dbUser{
		client: client,
	}
}

func (that *dbUser) Create(ctx context.Context, user *entity.User) error {
	userJSON, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("could not marshal user: %w", err)
	}

	// the email index doubles as the uniqueness guard
	claimed, err := that.client.SetNX(ctx, userEmailKey(user.Email), user.ID, 0).Result()
	if err != nil {
		return fmt.Errorf("can't save user: %w", err)
	}

	if !claimed {
		return fmt.Errorf("can't save user: %w", apperror.ErrEmailTaken)
	}

	if err = that.client.Set(ctx, userKey(user.ID), userJSON, 0).Err(); err != nil {
		that.client.Del(ctx, userEmailKey(user.Email))
		return fmt.Errorf("can't save user: %w", err)
	}

	return nil
}

func (that *dbUser) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	id, err := that.client.Get(ctx, userEmailKey(email)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't find user: %w", err)
	}

	return that.GetByID(ctx, id)
}

func (that *dbUser) GetByID(ctx context.Context, id string) (*entity.User, error) {
	response, err := that.client.Get(ctx, userKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't find user: %w", err)
	}

	var user entity.User
	if err = json.Unmarshal([]byte(response), &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return &user, nil
}

func userKey(id string) string {
	return "user:" + id
}

func userEmailKey(email string) string {
	return "user:email:" + email
}
