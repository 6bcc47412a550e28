package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trivia-backend/internal/corpus"
)

// stubSessions is an in-memory SessionStore with a switchable write failure.
type stubSessions struct {
	mu       sync.Mutex
	sessions map[string]*Session
	putErr   error
}

func newStubSessions() *stubSessions {
	return &stubSessions{sessions: map[string]*Session{}}
}

func (s *stubSessions) Get(ctx context.Context, id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}
	clone := *sess
	return &clone, nil
}

func (s *stubSessions) Put(ctx context.Context, id string, sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.putErr != nil {
		return s.putErr
	}
	clone := *sess
	s.sessions[id] = &clone
	return nil
}

func (s *stubSessions) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func newTestService(store corpus.Store, sessions SessionStore) *Service {
	return NewService(store, sessions, ServiceOptions{QuestionsPerGame: 10}, zerolog.New(io.Discard))
}

func TestStartGameReturnsFirstQuestion(t *testing.T) {
	store := &stubCorpus{records: map[string][]corpus.Record{"9": stubRecords("9", 20)}}
	sessions := newStubSessions()
	svc := newTestService(store, sessions)

	first, err := svc.StartGame(context.Background(), "sid", []string{"9"})
	require.NoError(t, err)
	assert.Equal(t, 0, first.Number)
	assert.NotEmpty(t, first.Question.PossibleAnswers)

	sess, err := sessions.Get(context.Background(), "sid")
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Len(t, sess.Answers, 10)
	assert.Len(t, sess.Questions, 10)
	assert.Equal(t, 0, sess.CurrentIndex)
	assert.Equal(t, 0, sess.Score)
	assert.False(t, sess.GameOver)
}

func TestStartGameRejectsBadCategories(t *testing.T) {
	store := &stubCorpus{records: map[string][]corpus.Record{"9": stubRecords("9", 20)}}
	sessions := newStubSessions()
	svc := newTestService(store, sessions)

	for _, keys := range [][]string{nil, {}, {"8"}, {"33"}, {"9", "bogus"}} {
		_, err := svc.StartGame(context.Background(), "sid", keys)
		assert.ErrorIs(t, err, ErrInvalidCategories, "keys=%v", keys)
	}

	sess, err := sessions.Get(context.Background(), "sid")
	require.NoError(t, err)
	assert.Nil(t, sess, "no session created on validation failure")
}

func TestStartGameTruncatesOversizedSelection(t *testing.T) {
	records := map[string][]corpus.Record{}
	var keys []string
	for i := 9; i <= 25; i++ {
		key := fmt.Sprint(i)
		records[key] = stubRecords(key, 5)
		keys = append(keys, key)
	}
	store := &stubCorpus{records: records}
	svc := newTestService(store, newStubSessions())

	_, err := svc.StartGame(context.Background(), "sid", keys)
	require.NoError(t, err)
	assert.Len(t, store.calls, 10, "17 requested keys truncated to 10 draws")
}

func TestStartGameOverwritesPreviousSession(t *testing.T) {
	store := &stubCorpus{records: map[string][]corpus.Record{"9": stubRecords("9", 20)}}
	sessions := newStubSessions()
	svc := newTestService(store, sessions)

	_, err := svc.StartGame(context.Background(), "sid", []string{"9"})
	require.NoError(t, err)
	_, _, err = svc.SubmitGuess(context.Background(), "sid", "0")
	require.NoError(t, err)

	_, err = svc.StartGame(context.Background(), "sid", []string{"9"})
	require.NoError(t, err)

	sess, err := sessions.Get(context.Background(), "sid")
	require.NoError(t, err)
	assert.Equal(t, 0, sess.CurrentIndex, "restart resets progress")
	assert.Equal(t, 0, sess.Score)
}

func TestSubmitGuessWithoutSession(t *testing.T) {
	svc := newTestService(&stubCorpus{}, newStubSessions())

	_, _, err := svc.SubmitGuess(context.Background(), "ghost", "1")
	assert.ErrorIs(t, err, ErrSessionInvalid)
}

func TestSubmitGuessPersistsTransition(t *testing.T) {
	store := &stubCorpus{records: map[string][]corpus.Record{"9": stubRecords("9", 20)}}
	sessions := newStubSessions()
	svc := newTestService(store, sessions)

	_, err := svc.StartGame(context.Background(), "sid", []string{"9"})
	require.NoError(t, err)

	before, _ := sessions.Get(context.Background(), "sid")
	guess := fmt.Sprint(before.Answers[0].CorrectIndex)

	result, next, err := svc.SubmitGuess(context.Background(), "sid", guess)
	require.NoError(t, err)
	assert.True(t, result.IsCorrectGuess)
	assert.Equal(t, 1, result.Score)
	require.NotNil(t, next)
	assert.Equal(t, 1, next.Number)

	after, _ := sessions.Get(context.Background(), "sid")
	assert.Equal(t, 1, after.CurrentIndex)
	assert.Equal(t, 1, after.Score)
}

func TestSubmitGuessStoreFailureLeavesStateIntact(t *testing.T) {
	store := &stubCorpus{records: map[string][]corpus.Record{"9": stubRecords("9", 20)}}
	sessions := newStubSessions()
	svc := newTestService(store, sessions)

	_, err := svc.StartGame(context.Background(), "sid", []string{"9"})
	require.NoError(t, err)

	sessions.putErr = errors.New("redis down")
	_, _, err = svc.SubmitGuess(context.Background(), "sid", "0")
	require.Error(t, err)

	sessions.putErr = nil
	sess, err := sessions.Get(context.Background(), "sid")
	require.NoError(t, err)
	assert.Equal(t, 0, sess.CurrentIndex, "failed transition must not apply")
	assert.Equal(t, 0, sess.Score)
}

func TestSubmitGuessInvalidShapeLeavesStateIntact(t *testing.T) {
	store := &stubCorpus{records: map[string][]corpus.Record{"9": stubRecords("9", 20)}}
	sessions := newStubSessions()
	svc := newTestService(store, sessions)

	_, err := svc.StartGame(context.Background(), "sid", []string{"9"})
	require.NoError(t, err)

	_, _, err = svc.SubmitGuess(context.Background(), "sid", "5")
	assert.ErrorIs(t, err, ErrInvalidGuess)

	sess, _ := sessions.Get(context.Background(), "sid")
	assert.Equal(t, 0, sess.CurrentIndex)
}

func TestGamePlaysToCompletionThroughService(t *testing.T) {
	store := &stubCorpus{records: map[string][]corpus.Record{"9": stubRecords("9", 20)}}
	sessions := newStubSessions()
	svc := newTestService(store, sessions)

	_, err := svc.StartGame(context.Background(), "sid", []string{"9"})
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		result, next, err := svc.SubmitGuess(context.Background(), "sid", "0")
		require.NoError(t, err, "question %d", i)
		if i < 9 {
			require.NotNil(t, next)
			assert.False(t, result.GameOver)
		} else {
			assert.Nil(t, next)
			assert.True(t, result.GameOver)
		}
	}

	_, _, err = svc.SubmitGuess(context.Background(), "sid", "0")
	assert.ErrorIs(t, err, ErrSessionInvalid, "completed session accepts no more guesses")
}
