package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Storage backend selectors.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// App holds runtime configuration for the service.
type App struct {
	Name                    string        `env:"APP_NAME" envDefault:"trivia-backend"`
	Env                     string        `env:"APP_ENV" envDefault:"development"`
	HTTPAddr                string        `env:"HTTP_ADDR" envDefault:"0.0.0.0:8765"`
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" envDefault:"20s"`
	Storage                 string        `env:"STORAGE_BACKEND" envDefault:"postgres"`

	Postgres Postgres
	Redis    Redis
	Game     Game
}

// Postgres captures connection info for the corpus database. Only required
// when STORAGE_BACKEND=postgres.
type Postgres struct {
	Host     string `env:"PG_HOST" envDefault:"localhost"`
	Port     int    `env:"PG_PORT" envDefault:"5432"`
	User     string `env:"PG_USER"`
	Password string `env:"PG_PASSWORD"`
	Database string `env:"PG_DATABASE"`
	SSLMode  string `env:"PG_SSL_MODE" envDefault:"disable"`
}

// Redis holds session store configuration. An empty Addr selects the
// in-process session store.
type Redis struct {
	Addr     string `env:"REDIS_ADDR"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	PoolSize int    `env:"REDIS_POOL_SIZE" envDefault:"20"`
}

// Game groups gameplay defaults.
type Game struct {
	QuestionsPerGame int           `env:"QUESTIONS_PER_GAME" envDefault:"10"`
	SessionTTL       time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	CorpusTimeout    time.Duration `env:"CORPUS_TIMEOUT" envDefault:"4s"`
}

// Load parses environment variables into App config.
func Load() (*App, error) {
	cfg := &App{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Storage != StoragePostgres && cfg.Storage != StorageMemory {
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q", cfg.Storage)
	}
	if cfg.Storage == StoragePostgres {
		if cfg.Postgres.User == "" || cfg.Postgres.Database == "" {
			return nil, fmt.Errorf("PG_USER and PG_DATABASE are required with the postgres backend")
		}
	}
	return cfg, nil
}

// ConnString renders the pgx connection string.
func (p Postgres) ConnString() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s pool_max_conns=10",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode)
}
