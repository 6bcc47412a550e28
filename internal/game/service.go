package game

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"

	"trivia-backend/internal/category"
	"trivia-backend/internal/corpus"
)

// SessionStore persists sessions between requests, keyed by session id.
// Get returns (nil, nil) when no session exists for the id.
type SessionStore interface {
	Get(ctx context.Context, id string) (*Session, error)
	Put(ctx context.Context, id string, s *Session) error
	Delete(ctx context.Context, id string) error
}

// ServiceOptions tune gameplay defaults.
type ServiceOptions struct {
	// QuestionsPerGame is the fixed pool size per play-through.
	QuestionsPerGame int
	// CorpusTimeout bounds the draw against the corpus; a stuck store
	// surfaces as a retryable failure instead of a hung request.
	CorpusTimeout time.Duration
}

// Service drives the game: it turns a category selection into a stored
// session and verifies guesses against it.
type Service struct {
	sampler  *Sampler
	sessions SessionStore
	perGame  int
	timeout  time.Duration
	logger   zerolog.Logger
}

func NewService(store corpus.Store, sessions SessionStore, opts ServiceOptions, logger zerolog.Logger) *Service {
	perGame := opts.QuestionsPerGame
	if perGame <= 0 {
		perGame = 10
	}
	timeout := opts.CorpusTimeout
	if timeout <= 0 {
		timeout = 4 * time.Second
	}
	return &Service{
		sampler:  NewSampler(store),
		sessions: sessions,
		perGame:  perGame,
		timeout:  timeout,
		logger:   logger.With().Str("component", "game").Logger(),
	}
}

// StartGame validates the category selection, draws a fresh pool, stores a
// new session under sessionID and returns the first question. On any failure
// the stored session is left untouched.
func (s *Service) StartGame(ctx context.Context, sessionID string, categories []string) (*NextQuestion, error) {
	if !category.ValidKeys(categories) {
		return nil, ErrInvalidCategories
	}

	keys := truncateKeys(categories, s.perGame)
	plan := PlanQuota(keys, s.perGame)

	drawCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	answers, err := s.sampler.Draw(drawCtx, plan)
	if err != nil {
		return nil, fmt.Errorf("draw pool: %w", err)
	}
	if len(answers) == 0 {
		return nil, fmt.Errorf("draw pool: %w", corpus.ErrUnavailable)
	}
	if len(answers) < s.perGame {
		shortDraws.Inc()
		s.logger.Debug().Int("got", len(answers)).Int("want", s.perGame).Msg("short draw")
	}

	questions := make([]Question, len(answers))
	for i, rec := range answers {
		questions[i] = Obfuscate(rec)
	}

	sess := NewSession(answers, questions)
	if err := s.sessions.Put(ctx, sessionID, sess); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	gamesStarted.Inc()
	first := sess.First()
	return &first, nil
}

// SubmitGuess loads the caller's session, applies one state transition and
// persists the result. The transition is atomic with respect to failure: if
// the updated session cannot be stored, the old state stands and the error
// surfaces as retryable.
func (s *Service) SubmitGuess(ctx context.Context, sessionID string, guess string) (GuessResult, *NextQuestion, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return GuessResult{}, nil, fmt.Errorf("load session: %w", err)
	}
	if sess == nil {
		return GuessResult{}, nil, ErrSessionInvalid
	}

	result, next, err := sess.SubmitGuess(guess)
	if err != nil {
		return GuessResult{}, nil, err
	}

	if err := s.sessions.Put(ctx, sessionID, sess); err != nil {
		return GuessResult{}, nil, fmt.Errorf("store session: %w", err)
	}

	if result.IsCorrectGuess {
		guessesTotal.WithLabelValues("correct").Inc()
	} else {
		guessesTotal.WithLabelValues("incorrect").Inc()
	}
	return result, next, nil
}

// truncateKeys enforces the boundary policy for oversized selections:
// shuffle a copy, keep the first max keys.
func truncateKeys(keys []string, max int) []string {
	out := make([]string, len(keys))
	copy(out, keys)
	if len(out) <= max {
		return out
	}
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out[:max]
}
