package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func twoQuestionSet() []SessionQuestion {
	return []SessionQuestion{
		{QuestionID: "q1", CorrectOptionID: "q1-a"},
		{QuestionID: "q2", CorrectOptionID: "q2-c"},
	}
}

func TestSessionBatchMode(t *testing.T) {
	t.Run("overwrites earlier choice", func(t *testing.T) {
		s := NewSession(ModeBatch, twoQuestionSet())

		s.Select("q1", "q1-b")
		s.Select("q1", "q1-a")
		s.Select("q2", "q2-c")

		assert.True(t, s.IsComplete())
		assert.Equal(t, 2, s.CorrectCount())
	})

	t.Run("incomplete until every question answered", func(t *testing.T) {
		s := NewSession(ModeBatch, twoQuestionSet())

		s.Select("q1", "q1-a")

		assert.False(t, s.IsComplete())
		assert.Equal(t, 1, s.Answered())
	})

	t.Run("unknown question IDs are ignored", func(t *testing.T) {
		s := NewSession(ModeBatch, twoQuestionSet())

		s.Select("ghost", "ghost-a")

		assert.Equal(t, 0, s.Answered())
		assert.False(t, s.IsComplete())
	})
}

func TestSessionImmediateMode(t *testing.T) {
	t.Run("first choice is final", func(t *testing.T) {
		s := NewSession(ModeImmediate, twoQuestionSet())

		s.Select("q1", "q1-b")
		s.Select("q1", "q1-a")

		assert.False(t, s.IsCorrect("q1"))
		assert.Equal(t, 0, s.CorrectCount())
	})

	t.Run("correct first choice counts", func(t *testing.T) {
		s := NewSession(ModeImmediate, twoQuestionSet())

		s.Select("q1", "q1-a")

		assert.True(t, s.IsCorrect("q1"))
		assert.Equal(t, 1, s.CorrectCount())
	})
}

func TestSessionIsCorrect(t *testing.T) {
	s := NewSession(ModeBatch, twoQuestionSet())

	assert.False(t, s.IsCorrect("q1"), "unanswered question is not correct")
	assert.False(t, s.IsCorrect("ghost"), "unknown question is not correct")

	s.Select("q2", "q2-c")
	assert.True(t, s.IsCorrect("q2"))
}

func TestSessionEmptyLesson(t *testing.T) {
	s := NewSession(ModeBatch, nil)

	assert.Equal(t, 0, s.TotalQuestions())
	assert.True(t, s.IsComplete(), "zero questions means nothing left to answer")
	assert.Equal(t, 0, s.CorrectCount())
}
