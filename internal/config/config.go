package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	StoragePostgres = "postgres"
	StorageRedis    = "redis"

	FeedRedis  = "redis"
	FeedNats   = "nats"
	FeedMemory = "memory"
)

type Config struct {
	LogLevel   string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string   `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string   `yaml:"socket-port" env:"SOCKET_PORT" env-default:"9091"`
	Storage    Storage  `yaml:"storage"`
	Postgres   Postgres `yaml:"postgres"`
	Redis      Redis    `yaml:"redis"`
	Feed       Feed     `yaml:"feed"`
	Nats       Nats     `yaml:"nats"`
	Auth       Auth     `yaml:"auth"`
	HTTP       HTTP     `yaml:"http"`
	Lobby      Lobby    `yaml:"lobby"`
}

type Storage struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"postgres"`
}

type Postgres struct {
	DSN      string `yaml:"dsn" env:"POSTGRES_URL"`
	MaxConns int32  `yaml:"max-conns" env:"POSTGRES_MAX_CONNS" env-default:"10"`
	// must match the role created by the migrations
	RLSRole string `yaml:"rls-role" env:"POSTGRES_RLS_ROLE" env-default:"counter_player"`
}

type Redis struct {
	Host     string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

type Feed struct {
	Driver              string        `yaml:"driver" env:"FEED_DRIVER" env-default:"redis"`
	RelayReconnectDelay time.Duration `yaml:"relay-reconnect-delay" env:"FEED_RELAY_RECONNECT_DELAY" env-default:"2s"`
}

type Nats struct {
	URL   string `yaml:"url" env:"NATS_URL" env-default:"nats://localhost:4222"`
	Token string `yaml:"token" env:"NATS_TOKEN"`
}

type Auth struct {
	JWTSecretKey string        `yaml:"jwt-secret-key" env:"JWT_SECRET_KEY"`
	TokenTTL     time.Duration `yaml:"token-ttl" env:"TOKEN_TTL" env-default:"24h"`
	BcryptCost   int           `yaml:"bcrypt-cost" env:"BCRYPT_COST" env-default:"10"`
}

type HTTP struct {
	RateLimit      int      `yaml:"rate-limit" env:"HTTP_RATE_LIMIT" env-default:"120"`
	AllowedOrigins []string `yaml:"allowed-origins" env:"HTTP_ALLOWED_ORIGINS" env-default:"http://localhost:5173"`
}

type Lobby struct {
	JoinableLimit int `yaml:"joinable-limit" env:"LOBBY_JOINABLE_LIMIT" env-default:"20"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads an optional .env next to the process, then path, then the environment.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("unable to load .env file: %w", err)
	}

	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.Storage.Driver {
	case StoragePostgres:
		if that.Postgres.DSN == "" {
			return errors.New("postgres.dsn is required for the postgres storage driver")
		}
	case StorageRedis:
	default:
		return fmt.Errorf("unknown storage driver %q", that.Storage.Driver)
	}

	// sessions live in redis whatever the storage driver
	if that.Redis.Host == "" {
		return errors.New("redis.host is required")
	}

	switch that.Feed.Driver {
	case FeedRedis, FeedNats, FeedMemory:
	default:
		return fmt.Errorf("unknown feed driver %q", that.Feed.Driver)
	}

	if that.Auth.JWTSecretKey == "" {
		return errors.New("auth.jwt-secret-key is required")
	}

	if that.Lobby.JoinableLimit <= 0 {
		return errors.New("lobby.joinable-limit must be positive")
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
