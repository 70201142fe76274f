package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuestions(words ...string) []Question {
	out := make([]Question, 0, len(words))
	for _, w := range words {
		out = append(out, Question{
			Definition:    "definition of " + w,
			CorrectAnswer: w,
			Options:       []string{w, "x", "y", "z"},
		})
	}
	return out
}

func TestStudySession_Answer(t *testing.T) {
	t.Run("correct answer scores once", func(t *testing.T) {
		s := NewStudySession("id", newQuestions("a", "b"))

		correct, err := s.Answer("a")
		require.NoError(t, err)
		assert.True(t, correct)
		assert.Equal(t, 1, s.Score())

		correct, err = s.Answer("a")
		assert.ErrorIs(t, err, ErrAlreadyAnswered)
		assert.True(t, correct)
		assert.Equal(t, 1, s.Score())

		selected, ok := s.Selected()
		assert.True(t, ok)
		assert.Equal(t, "a", selected)
	})

	t.Run("wrong answer keeps the score", func(t *testing.T) {
		s := NewStudySession("id", newQuestions("a"))

		correct, err := s.Answer("x")
		require.NoError(t, err)
		assert.False(t, correct)
		assert.Equal(t, 0, s.Score())

		// a later correct pick does not count
		_, err = s.Answer("a")
		assert.ErrorIs(t, err, ErrAlreadyAnswered)
		assert.Equal(t, 0, s.Score())
	})

	t.Run("answer by option index", func(t *testing.T) {
		s := NewStudySession("id", newQuestions("a"))

		_, err := s.AnswerOption(4)
		assert.ErrorIs(t, err, ErrInvalidOption)
		_, err = s.AnswerOption(-1)
		assert.ErrorIs(t, err, ErrInvalidOption)

		correct, err := s.AnswerOption(0)
		require.NoError(t, err)
		assert.True(t, correct)
	})
}

func TestStudySession_Advance(t *testing.T) {
	s := NewStudySession("id", newQuestions("a", "b", "c"))

	_, ok := s.Selected()
	assert.False(t, ok)

	_, err := s.Answer("a")
	require.NoError(t, err)

	assert.True(t, s.Advance())
	assert.Equal(t, 1, s.Index())
	_, ok = s.Selected()
	assert.False(t, ok, "selection is cleared")

	// skipping an unanswered question is allowed
	assert.True(t, s.Advance())
	assert.True(t, s.IsLast())

	_, err = s.Answer("c")
	require.NoError(t, err)

	assert.False(t, s.Advance())
	assert.True(t, s.Complete())
	assert.Equal(t, 2, s.Score())
	assert.InDelta(t, 2.0/3.0, s.Result(), 1e-9)

	_, ok = s.Current()
	assert.False(t, ok)
	_, err = s.Answer("a")
	assert.ErrorIs(t, err, ErrSessionComplete)
	assert.False(t, s.Advance())
}

func TestStudySession_Empty(t *testing.T) {
	s := NewStudySession("id", nil)

	_, ok := s.Current()
	assert.False(t, ok)
	_, ok = s.Selected()
	assert.False(t, ok)
	assert.Zero(t, s.Result())
}
