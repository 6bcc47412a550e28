package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trivia-backend/internal/corpus"
)

func TestObfuscateSplicesCorrectAnswer(t *testing.T) {
	for idx := 0; idx <= 3; idx++ {
		rec := corpus.Record{
			ID:               "abc",
			Category:         "General Knowledge",
			Type:             corpus.TypeMultiple,
			Difficulty:       corpus.DifficultyMedium,
			Question:         "Which one?",
			CorrectAnswer:    "right",
			IncorrectAnswers: []string{"w1", "w2", "w3"},
			CorrectIndex:     idx,
		}

		q := Obfuscate(rec)
		require.Len(t, q.PossibleAnswers, 4, "idx=%d", idx)
		assert.Equal(t, "right", q.PossibleAnswers[idx], "idx=%d", idx)

		wrong := append([]string{}, q.PossibleAnswers[:idx]...)
		wrong = append(wrong, q.PossibleAnswers[idx+1:]...)
		assert.Equal(t, rec.IncorrectAnswers, wrong, "idx=%d relative order of wrong answers", idx)
	}
}

func TestObfuscateBooleanRecord(t *testing.T) {
	rec := corpus.Record{
		Type:             corpus.TypeBoolean,
		Question:         "Is water wet?",
		CorrectAnswer:    "True",
		IncorrectAnswers: []string{"False"},
		CorrectIndex:     1,
	}
	q := Obfuscate(rec)
	assert.Equal(t, []string{"False", "True"}, q.PossibleAnswers)
}

func TestObfuscateDoesNotMutateInput(t *testing.T) {
	rec := corpus.Record{
		CorrectAnswer:    "right",
		IncorrectAnswers: []string{"w1", "w2", "w3"},
		CorrectIndex:     2,
	}
	_ = Obfuscate(rec)
	assert.Equal(t, []string{"w1", "w2", "w3"}, rec.IncorrectAnswers)
	assert.Equal(t, "right", rec.CorrectAnswer)
	assert.Equal(t, 2, rec.CorrectIndex)
}

func TestObfuscateLeaksNoAnswerFields(t *testing.T) {
	rec := corpus.Record{
		ID:               "abc",
		Question:         "Which one?",
		CorrectAnswer:    "right",
		IncorrectAnswers: []string{"w1", "w2", "w3"},
		CorrectIndex:     1,
	}

	data, err := json.Marshal(Obfuscate(rec))
	require.NoError(t, err)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(data, &wire))
	assert.NotContains(t, wire, "correct_answer")
	assert.NotContains(t, wire, "incorrect_answers")
	assert.NotContains(t, wire, "correctIndex")
	assert.Contains(t, wire, "possible_answers")
}
