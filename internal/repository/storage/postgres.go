package storage

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const connectTimeout = 5 * time.Second

// serializes concurrent start-ups running migrations against the same database
const migrationLockID = 727274

//go:embed migrations/*.sql
var migrations embed.FS

type PostgresStorage struct {
	Pool *pgxpool.Pool
}

func NewPostgresStorage(ctx context.Context, dsn string, maxConns int32) (*PostgresStorage, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid postgres dsn: %w", err)
	}

	if maxConns > 0 {
		poolConfig.MaxConns = maxConns
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}

	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
	}

	return &PostgresStorage{Pool: pool}, nil
}

func (that *PostgresStorage) Close() {
	that.Pool.Close()
}

// Migrate - applies every embedded migration not yet recorded in schema_migrations,
// each in its own transaction, in lexical file order.
func (that *PostgresStorage) Migrate(ctx context.Context, logger *slog.Logger) error {
	log := logger.With("method", "Migrate")

	_, err := that.Pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version    text PRIMARY KEY,
		applied_at timestamptz NOT NULL DEFAULT now()
	)`)
	if err != nil {
		return fmt.Errorf("failed to create schema_migrations: %w", err)
	}

	files, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("failed to list migrations: %w", err)
	}
	sort.Strings(files)

	for _, file := range files {
		version := strings.TrimSuffix(path.Base(file), ".sql")

		body, err := migrations.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", version, err)
		}

		applied, err := that.applyMigration(ctx, version, string(body))
		if err != nil {
			return fmt.Errorf("migration %s: %w", version, err)
		}

		if applied {
			log.Info("migration applied", "version", version)
		}
	}

	return nil
}

func (that *PostgresStorage) applyMigration(ctx context.Context, version, body string) (bool, error) {
	applied := false

	err := pgx.BeginFunc(ctx, that.Pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", migrationLockID); err != nil {
			return fmt.Errorf("failed to take migration lock: %w", err)
		}

		var exists bool
		err := tx.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE version = $1)", version).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check version: %w", err)
		}

		if exists {
			return nil
		}

		if _, err = tx.Exec(ctx, body); err != nil {
			return fmt.Errorf("failed to execute: %w", err)
		}

		if _, err = tx.Exec(ctx, "INSERT INTO schema_migrations (version) VALUES ($1)", version); err != nil {
			return fmt.Errorf("failed to record version: %w", err)
		}

		applied = true

		return nil
	})

	return applied, err
}
