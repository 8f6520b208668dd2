package suite

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nats-io/nats.go"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/counter-backend/internal/metrics"
	"github.com/rocketscienceinc/counter-backend/internal/repository/storage"
)

const (
	expireDuration  = 120
	maxWaitDuration = 120 * time.Second
)

const (
	redisPort  = "6379/tcp"
	redisImage = "redis"
	redisTag   = "alpine"

	postgresPort     = "5432/tcp"
	postgresImage    = "postgres"
	postgresTag      = "16-alpine"
	postgresUser     = "counter"
	postgresPassword = "secret"
	postgresDB       = "counter"

	natsPort  = "4222/tcp"
	natsImage = "nats"
	natsTag   = "2-alpine"
)

type Suite struct {
	*testing.T
	Logger  *slog.Logger
	Metrics *metrics.Metrics

	Storage *redis.Client

	pool *dockertest.Pool
}

// New - starts a Redis container. Postgres and NATS are started on demand.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("could not connect to docker: %v", err)
	}

	// exponential backoff-retry, because the application in the container might not be ready to accept connections yet
	pool.MaxWait = maxWaitDuration

	st := &Suite{
		T:       t,
		Logger:  logger,
		Metrics: metrics.NewNop(),
		pool:    pool,
	}

	resource := st.run(&dockertest.RunOptions{
		Repository: redisImage,
		Tag:        redisTag,
		Env:        []string{},
	})

	redisHost := resource.GetHostPort(redisPort)

	var redisClient *redis.Client
	if err = pool.Retry(func() error {
		redisClient = redis.NewClient(&redis.Options{
			Addr: redisHost,
		})
		return redisClient.Ping(ctx).Err()
	}); err != nil {
		t.Fatalf("could not connect to redis: %v", err)
	}

	if err = redisClient.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("could not flush database: %v", err)
	}

	st.Storage = redisClient

	return ctx, st
}

// Postgres - starts a PostgreSQL container and applies the migrations.
func (that *Suite) Postgres(ctx context.Context) *pgxpool.Pool {
	that.Helper()

	resource := that.run(&dockertest.RunOptions{
		Repository: postgresImage,
		Tag:        postgresTag,
		Env: []string{
			"POSTGRES_USER=" + postgresUser,
			"POSTGRES_PASSWORD=" + postgresPassword,
			"POSTGRES_DB=" + postgresDB,
		},
	})

	dsn := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable",
		postgresUser, postgresPassword, resource.GetHostPort(postgresPort), postgresDB)

	var pgStorage *storage.PostgresStorage
	if err := that.pool.Retry(func() error {
		var err error
		pgStorage, err = storage.NewPostgresStorage(ctx, dsn, 8)
		return err
	}); err != nil {
		that.Fatalf("could not connect to postgres: %v", err)
	}

	that.Cleanup(pgStorage.Close)

	if err := pgStorage.Migrate(ctx, that.Logger); err != nil {
		that.Fatalf("could not migrate postgres: %v", err)
	}

	return pgStorage.Pool
}

// Nats - starts a NATS container.
func (that *Suite) Nats() *nats.Conn {
	that.Helper()

	resource := that.run(&dockertest.RunOptions{
		Repository: natsImage,
		Tag:        natsTag,
	})

	url := "nats://" + resource.GetHostPort(natsPort)

	var conn *nats.Conn
	if err := that.pool.Retry(func() error {
		var err error
		conn, err = nats.Connect(url)
		return err
	}); err != nil {
		that.Fatalf("could not connect to nats: %v", err)
	}

	that.Cleanup(conn.Close)

	return conn
}

// run - pulls an image, creates a container based on it and runs it.
func (that *Suite) run(options *dockertest.RunOptions) *dockertest.Resource {
	that.Helper()

	resource, err := that.pool.RunWithOptions(options, func(config *docker.HostConfig) {
		// set AutoRemove to true so that stopped container goes away by itself
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		that.Fatalf("could not start resource: %v", err)
	}

	// never returns error
	_ = resource.Expire(expireDuration) // Tell docker to hard kill the container in 120 seconds

	that.Cleanup(func() {
		if err = that.pool.Purge(resource); err != nil {
			that.Errorf("could not purge resource: %v", err)
		}
	})

	return resource
}
