package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"trivia-backend/internal/config"
	"trivia-backend/internal/corpus"
	"trivia-backend/internal/game"
	"trivia-backend/internal/logging"
	"trivia-backend/internal/server"
	"trivia-backend/internal/session"
)

// Application aggregates shared infrastructure (corpus, session store, HTTP).
type Application struct {
	cfg    *config.App
	logger zerolog.Logger

	pool  *pgxpool.Pool
	redis *redis.Client
	http  *http.Server
}

// New bootstraps config, logger, corpus, session store and the HTTP server.
func New(ctx context.Context, cfg *config.App) (*Application, error) {
	logger := logging.New(cfg.Name, cfg.Env)
	logger.Info().Str("storage", cfg.Storage).Msg("starting application bootstrap")

	var (
		store corpus.Store
		pool  *pgxpool.Pool
	)
	switch cfg.Storage {
	case config.StoragePostgres:
		p, err := pgxpool.New(ctx, cfg.Postgres.ConnString())
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := p.Ping(ctx); err != nil {
			p.Close()
			return nil, fmt.Errorf("ping postgres: %w", err)
		}
		pool = p
		store = corpus.NewPostgres(p)
	case config.StorageMemory:
		logger.Warn().Msg("memory corpus selected; records do not survive restarts")
		store = corpus.NewMemory()
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage)
	}

	var (
		sessions    game.SessionStore
		redisClient *redis.Client
	)
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("ping redis: %w", err)
		}
		sessions = session.NewRedisStore(redisClient, cfg.Game.SessionTTL, logger)
	} else {
		logger.Warn().Msg("REDIS_ADDR unset; sessions held in process memory")
		sessions = session.NewMemoryStore()
	}

	gameSvc := game.NewService(store, sessions, game.ServiceOptions{
		QuestionsPerGame: cfg.Game.QuestionsPerGame,
		CorpusTimeout:    cfg.Game.CorpusTimeout,
	}, logger)

	handlers := server.NewHandlers(gameSvc, cfg.Game.SessionTTL, cfg.Env == "production", logger)
	httpServer := server.NewHTTPServer(cfg, handlers)

	return &Application{
		cfg:    cfg,
		logger: logger,
		pool:   pool,
		redis:  redisClient,
		http:   httpServer,
	}, nil
}

// Run starts the HTTP server and waits for termination signals.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info().Str("addr", a.cfg.HTTPAddr).Msg("http server listening")
		if err := a.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		a.logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
		a.logger.Warn().Msg("context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
	defer cancel()

	if err := a.http.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("http shutdown error")
	}
	if a.pool != nil {
		a.pool.Close()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Error().Err(err).Msg("redis shutdown error")
		}
	}

	a.logger.Info().Msg("shutdown complete")
	return nil
}
