// Package corpus is the durable store of trivia question/answer records.
// Records are content-addressed: the ID is a fingerprint of the question
// text, so inserting the same question twice is a no-op rather than an error.
package corpus

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
)

// Question type constants.
const (
	TypeMultiple = "multiple"
	TypeBoolean  = "boolean"
)

// Difficulty constants.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

var (
	// ErrInvalidCategory means a sample was requested for an unknown category key.
	ErrInvalidCategory = errors.New("invalid-category")
	// ErrNotFound means a removal targeted an ID the store does not hold.
	ErrNotFound = errors.New("not-found")
	// ErrUnavailable wraps storage I/O failures; callers may retry.
	ErrUnavailable = errors.New("corpus unavailable")
)

// Record is one stored trivia fact. Field names match the wire/storage
// format. CorrectIndex is assigned fresh per draw by the sampler and is never
// meaningful across games; it rides along in session state only.
type Record struct {
	ID               string   `json:"_id"`
	Category         string   `json:"category"`
	Type             string   `json:"type"`
	Difficulty       string   `json:"difficulty"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
	CorrectIndex     int      `json:"correctIndex,omitempty"`
}

// Query is the only filter shape the store accepts. Category is the external
// name stored on records; empty matches everything. Keeping the filter typed
// makes unknown-category the one query-shaped failure mode.
type Query struct {
	Category string
}

// Store is the corpus contract. Sample resolves categoryKey through the
// category table and returns at most count records; when the store holds
// fewer matches than requested it returns what it has, never an error.
// Concurrent Sample calls are independent; Insert/Remove are serializable
// with respect to each other and never block reads.
type Store interface {
	Sample(ctx context.Context, categoryKey string, count int) ([]Record, error)
	Insert(ctx context.Context, rec Record) (Record, error)
	Remove(ctx context.Context, id string) (int64, error)
	Count(ctx context.Context, q Query) (int64, error)
}

// Fingerprint derives a record ID from question text. Two records with the
// same question are the same record.
func Fingerprint(question string) string {
	sum := md5.Sum([]byte(question))
	return hex.EncodeToString(sum[:])
}
