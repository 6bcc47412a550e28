package game

import "trivia-backend/internal/corpus"

// Question is the client-safe view of a record: all answer choices in one
// list, nothing that reveals which is correct.
type Question struct {
	ID              string   `json:"_id"`
	Category        string   `json:"category"`
	Type            string   `json:"type"`
	Difficulty      string   `json:"difficulty"`
	Question        string   `json:"question"`
	PossibleAnswers []string `json:"possible_answers"`
}

// Obfuscate builds the client view of rec, splicing the correct answer into
// the incorrect ones at the record's hidden slot. rec is not mutated; the
// original, with its answer key, stays in the session for verification.
func Obfuscate(rec corpus.Record) Question {
	possible := make([]string, 0, len(rec.IncorrectAnswers)+1)
	possible = append(possible, rec.IncorrectAnswers[:rec.CorrectIndex]...)
	possible = append(possible, rec.CorrectAnswer)
	possible = append(possible, rec.IncorrectAnswers[rec.CorrectIndex:]...)

	return Question{
		ID:              rec.ID,
		Category:        rec.Category,
		Type:            rec.Type,
		Difficulty:      rec.Difficulty,
		Question:        rec.Question,
		PossibleAnswers: possible,
	}
}
