package game

import (
	"strconv"
	"strings"

	"trivia-backend/internal/corpus"
)

// guessCeiling caps the accepted guess value: four choices, indexes 0..3.
const guessCeiling = 3

// Session is one player's play-through. Answers is the ground truth, index
// aligned with the client-safe Questions. CurrentIndex only moves forward and
// once GameOver is set no further guesses are accepted. The caller owns
// serialization: no two guesses for the same session may run concurrently.
type Session struct {
	Answers      []corpus.Record `json:"answers"`
	Questions    []Question      `json:"questions"`
	CurrentIndex int             `json:"currentIndex"`
	Score        int             `json:"score"`
	GameOver     bool            `json:"gameOver"`
}

// NextQuestion is the questionData payload: a question and its position.
type NextQuestion struct {
	Number   int      `json:"number"`
	Question Question `json:"question"`
}

// GuessResult reports the outcome of one consumed guess.
type GuessResult struct {
	Score          int  `json:"score"`
	IsCorrectGuess bool `json:"isCorrectGuess"`
	GameOver       bool `json:"gameOver,omitempty"`
}

// NewSession starts a game over the given pool. The answer records and their
// derived questions must be index-aligned.
func NewSession(answers []corpus.Record, questions []Question) *Session {
	return &Session{Answers: answers, Questions: questions}
}

// First returns the opening question of a fresh session.
func (s *Session) First() NextQuestion {
	return NextQuestion{Number: 0, Question: s.Questions[0]}
}

// Live reports whether the session can accept a guess: it has questions and
// answers, the pointer is inside the pool, and the game is not over.
func (s *Session) Live() bool {
	return s != nil &&
		len(s.Answers) > 0 &&
		len(s.Answers) == len(s.Questions) &&
		s.CurrentIndex >= 0 &&
		s.CurrentIndex < len(s.Questions) &&
		!s.GameOver
}

// SubmitGuess consumes exactly one guess against the current question. An
// unparseable or out-of-range guess fails with ErrInvalidGuess and leaves the
// session untouched; a guess against a dead session fails with
// ErrSessionInvalid. Otherwise the pointer advances whether or not the guess
// was right, and the game ends once the pointer walks past the last question.
func (s *Session) SubmitGuess(guess string) (GuessResult, *NextQuestion, error) {
	idx, err := parseGuess(guess)
	if err != nil {
		return GuessResult{}, nil, err
	}
	if !s.Live() {
		return GuessResult{}, nil, ErrSessionInvalid
	}

	correct := idx == s.Answers[s.CurrentIndex].CorrectIndex
	if correct {
		s.Score++
	}
	s.CurrentIndex++

	result := GuessResult{Score: s.Score, IsCorrectGuess: correct}
	if s.CurrentIndex > len(s.Questions)-1 {
		s.GameOver = true
		result.GameOver = true
		return result, nil, nil
	}
	next := &NextQuestion{Number: s.CurrentIndex, Question: s.Questions[s.CurrentIndex]}
	return result, next, nil
}

func parseGuess(guess string) (int, error) {
	trimmed := strings.TrimSpace(guess)
	if trimmed == "" {
		return 0, ErrInvalidGuess
	}
	idx, err := strconv.Atoi(trimmed)
	if err != nil || idx < 0 || idx > guessCeiling {
		return 0, ErrInvalidGuess
	}
	return idx, nil
}
