package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/rocketscienceinc/counter-backend/internal/changefeed"
	"github.com/rocketscienceinc/counter-backend/internal/config"
	"github.com/rocketscienceinc/counter-backend/internal/metrics"
	"github.com/rocketscienceinc/counter-backend/internal/repository"
	"github.com/rocketscienceinc/counter-backend/internal/repository/storage"
	"github.com/rocketscienceinc/counter-backend/internal/service"
	"github.com/rocketscienceinc/counter-backend/internal/usecase"
	"github.com/rocketscienceinc/counter-backend/transport/rest"
	"github.com/rocketscienceinc/counter-backend/transport/websocket"
)

const shutdownTimeout = 10 * time.Second

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application until SIGINT/SIGTERM or a server failure.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(registry)

	// redis always holds revoked sessions, and optionally games and the feed
	if conf.Redis.Host == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr(), conf.Redis.Password, conf.Redis.DB)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	broker, err := newBroker(logger, conf, appMetrics, redisStorage)
	if err != nil {
		return err
	}

	defer func() {
		if err := broker.Close(); err != nil {
			log.Error("could not close feed broker", "error", err)
		}
	}()

	var (
		gameRepo repository.GameRepository
		userRepo repository.UserRepository
		workers  sync.WaitGroup
	)

	switch conf.Storage.Driver {
	case config.StoragePostgres:
		pgStorage, err := storage.NewPostgresStorage(ctx, conf.Postgres.DSN, conf.Postgres.MaxConns)
		if err != nil {
			return fmt.Errorf("could not connect to postgres storage: %w", err)
		}

		defer pgStorage.Close()

		if err = pgStorage.Migrate(ctx, logger); err != nil {
			return fmt.Errorf("could not migrate postgres storage: %w", err)
		}

		gameRepo = repository.NewPostgresGameRepository(pgStorage.Pool, conf.Postgres.RLSRole)
		userRepo = repository.NewPostgresUserRepository(pgStorage.Pool)

		relay := changefeed.NewPostgresRelay(logger, pgStorage.Pool, broker, conf.Feed.RelayReconnectDelay)

		// the relay must stop before the pool it listens on is closed
		workers.Add(1)
		defer workers.Wait()

		go func() {
			defer workers.Done()

			if err := relay.Run(ctx); err != nil {
				log.Error("change feed relay stopped", "error", err)
			}
		}()
	case config.StorageRedis:
		gameRepo = repository.NewRedisGameRepository(logger, redisStorage.Connection, broker)
		userRepo = repository.NewRedisUserRepository(redisStorage.Connection)
	}

	sessionRepo := repository.NewSessionRepository(redisStorage.Connection)

	authService := service.NewAuthService(logger, userRepo, sessionRepo, service.AuthOptions{
		SecretKey:  conf.Auth.JWTSecretKey,
		TokenTTL:   conf.Auth.TokenTTL,
		BcryptCost: conf.Auth.BcryptCost,
	})
	gameManager := usecase.NewGameManager(logger, appMetrics, gameRepo, conf.Lobby.JoinableLimit)

	restServer := rest.New(logger, rest.Options{
		Port:           conf.HTTPPort,
		RateLimit:      conf.HTTP.RateLimit,
		AllowedOrigins: conf.HTTP.AllowedOrigins,
		JoinableLimit:  conf.Lobby.JoinableLimit,
	}, authService, gameManager, appMetrics)

	wsServer := websocket.New(logger, websocket.Options{
		Port:           conf.SocketPort,
		AllowedOrigins: conf.HTTP.AllowedOrigins,
	}, authService, gameManager, broker, appMetrics)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		if httpErr := restServer.Start(); httpErr != nil {
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		if wsErr := wsServer.Start(); wsErr != nil {
			wsErrCh <- wsErr
		}
	}()

	var runErr error

	select {
	case err = <-httpErrCh:
		runErr = fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		runErr = fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Received signal, shutting down")
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err = restServer.Shutdown(shutdownCtx); err != nil {
		log.Error("could not shutdown HTTP server", "error", err)
	}

	if err = wsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("could not shutdown WebSocket server", "error", err)
	}

	return runErr
}

func newBroker(logger *slog.Logger, conf *config.Config, m *metrics.Metrics, redisStorage *storage.RedisStorage) (changefeed.Broker, error) {
	switch conf.Feed.Driver {
	case config.FeedNats:
		conn, err := changefeed.NatsConnect(conf.Nats.URL, conf.Nats.Token)
		if err != nil {
			return nil, fmt.Errorf("could not connect to nats: %w", err)
		}

		return changefeed.NewNatsBroker(logger, m, conn), nil
	case config.FeedMemory:
		return changefeed.NewMemoryBroker(logger, m), nil
	default:
		return changefeed.NewRedisBroker(logger, m, redisStorage.Connection), nil
	}
}
