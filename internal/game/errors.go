package game

import (
	"errors"

	"trivia-backend/internal/corpus"
)

var (
	// ErrInvalidCategories means the requested category list is malformed or
	// holds an unresolvable key.
	ErrInvalidCategories = errors.New("invalid-categories")
	// ErrInvalidGuess means the guess did not parse to an integer in [0,3].
	ErrInvalidGuess = errors.New("invalid-index")
	// ErrSessionInvalid means there is no usable session for the caller:
	// missing, empty, or already completed.
	ErrSessionInvalid = errors.New("no-session")
)

// Reason maps a domain error to the machine-readable reason string the
// boundary puts on the wire.
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrInvalidCategories):
		return "invalid-categories"
	case errors.Is(err, corpus.ErrInvalidCategory):
		return "invalid-category"
	case errors.Is(err, ErrInvalidGuess):
		return "invalid-index"
	case errors.Is(err, ErrSessionInvalid):
		return "no-session"
	case errors.Is(err, corpus.ErrNotFound):
		return "notfound"
	case errors.Is(err, corpus.ErrUnavailable):
		return "corpus-unavailable"
	default:
		return "internal"
	}
}
