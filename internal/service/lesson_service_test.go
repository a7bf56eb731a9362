package service

import (
	"testing"

	"studyquest_backend/internal/model"
	"studyquest_backend/internal/repository"
	"studyquest_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newLessonService(db *gorm.DB) *LessonService {
	return NewLessonService(repository.NewLessonRepository(db), newProgressService(db))
}

func TestGetLessonContent(t *testing.T) {
	db := newTestDB(t)
	svc := newLessonService(db)

	subject := createSubject(t, db, "SCI", 11)
	lesson := createLesson(t, db, subject.ID, 1, 10)
	qID, optionIDs := addQuestion(t, db, lesson.ID, 3, 0)

	content, err := svc.GetLessonContent(lesson.ID)
	require.NoError(t, err)

	assert.Equal(t, lesson.ID, content.Lesson.ID)
	assert.True(t, content.HasQuestions)
	require.Len(t, content.Questions, 1)
	assert.Equal(t, qID, content.Questions[0].ID)
	assert.Len(t, content.Questions[0].Options, len(optionIDs))
}

func TestGetLessonContentNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newLessonService(db)

	_, err := svc.GetLessonContent("missing")
	assert.ErrorIs(t, err, util.ErrLessonNotFound)
}

func TestGetLessonContentWithoutQuestions(t *testing.T) {
	db := newTestDB(t)
	svc := newLessonService(db)

	subject := createSubject(t, db, "SCI", 11)
	lesson := createLesson(t, db, subject.ID, 1, 10)

	content, err := svc.GetLessonContent(lesson.ID)
	require.NoError(t, err)
	assert.False(t, content.HasQuestions)
	assert.Empty(t, content.Questions)
}

func TestCheckAnswer(t *testing.T) {
	db := newTestDB(t)
	svc := newLessonService(db)

	subject := createSubject(t, db, "SCI", 11)
	lesson := createLesson(t, db, subject.ID, 1, 10)
	qID, optionIDs := addQuestion(t, db, lesson.ID, 3, 1)

	t.Run("correct choice", func(t *testing.T) {
		check, err := svc.CheckAnswer(lesson.ID, qID, optionIDs[1])
		require.NoError(t, err)
		assert.True(t, check.Correct)
		assert.Equal(t, optionIDs[1], check.CorrectOptionID)
	})

	t.Run("wrong choice still reveals the answer", func(t *testing.T) {
		check, err := svc.CheckAnswer(lesson.ID, qID, optionIDs[0])
		require.NoError(t, err)
		assert.False(t, check.Correct)
		assert.Equal(t, optionIDs[1], check.CorrectOptionID)
	})

	t.Run("unknown question", func(t *testing.T) {
		_, err := svc.CheckAnswer(lesson.ID, "missing", optionIDs[0])
		assert.ErrorIs(t, err, util.ErrQuestionNotFound)
	})

	t.Run("writes nothing", func(t *testing.T) {
		var count int64
		require.NoError(t, db.Model(&model.StudentProgress{}).Count(&count).Error)
		assert.Equal(t, int64(0), count)
	})
}

func TestSubmitLesson(t *testing.T) {
	db := newTestDB(t)
	svc := newLessonService(db)

	subject := createSubject(t, db, "SCI", 11)
	lesson := createLesson(t, db, subject.ID, 1, 10)
	next := createLesson(t, db, subject.ID, 2, 10)
	q1, q1opts := addQuestion(t, db, lesson.ID, 3, 0)
	q2, q2opts := addQuestion(t, db, lesson.ID, 3, 2)
	student := createStudent(t, db, "ana@example.com")

	result, err := svc.SubmitLesson(student.ID, lesson.ID, []AnswerSubmission{
		{QuestionID: q1, OptionID: q1opts[0]},
		{QuestionID: q2, OptionID: q2opts[0]},
	})
	require.NoError(t, err)

	assert.Equal(t, 50, result.ScorePercent)
	assert.Equal(t, 1, result.CorrectCount)
	assert.Equal(t, 2, result.TotalQuestions)
	assert.Equal(t, 5, result.XpAwarded)
	assert.Equal(t, 50, result.BestScore)
	assert.Equal(t, next.ID, result.UnlockedLesson)
}

func TestSubmitLessonIncomplete(t *testing.T) {
	db := newTestDB(t)
	svc := newLessonService(db)

	subject := createSubject(t, db, "SCI", 11)
	lesson := createLesson(t, db, subject.ID, 1, 10)
	q1, q1opts := addQuestion(t, db, lesson.ID, 3, 0)
	addQuestion(t, db, lesson.ID, 3, 0)
	student := createStudent(t, db, "ben@example.com")

	_, err := svc.SubmitLesson(student.ID, lesson.ID, []AnswerSubmission{
		{QuestionID: q1, OptionID: q1opts[0]},
	})
	assert.ErrorIs(t, err, util.ErrSessionIncomplete)

	// nothing is written on a rejected submission
	var count int64
	require.NoError(t, db.Model(&model.StudentProgress{}).Where("student_id = ?", student.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestSubmitLessonIgnoresUnknownQuestions(t *testing.T) {
	db := newTestDB(t)
	svc := newLessonService(db)

	subject := createSubject(t, db, "SCI", 11)
	lesson := createLesson(t, db, subject.ID, 1, 10)
	q1, q1opts := addQuestion(t, db, lesson.ID, 3, 0)
	student := createStudent(t, db, "cal@example.com")

	result, err := svc.SubmitLesson(student.ID, lesson.ID, []AnswerSubmission{
		{QuestionID: q1, OptionID: q1opts[0]},
		{QuestionID: "ghost", OptionID: "ghost-option"},
	})
	require.NoError(t, err)
	assert.Equal(t, 100, result.ScorePercent)
}

func TestSubmitLessonWithoutQuestions(t *testing.T) {
	db := newTestDB(t)
	svc := newLessonService(db)

	subject := createSubject(t, db, "SCI", 11)
	lesson := createLesson(t, db, subject.ID, 1, 10)
	student := createStudent(t, db, "dee@example.com")

	_, err := svc.SubmitLesson(student.ID, lesson.ID, nil)
	assert.ErrorIs(t, err, util.ErrNoQuestions)
}

func TestSubmitLessonRequiresStudent(t *testing.T) {
	db := newTestDB(t)
	svc := newLessonService(db)

	_, err := svc.SubmitLesson("", "any", nil)
	assert.ErrorIs(t, err, util.ErrUnauthenticated)
}

func TestSubmitLessonQuestionIntegrity(t *testing.T) {
	db := newTestDB(t)
	svc := newLessonService(db)
	student := createStudent(t, db, "eva@example.com")

	t.Run("two correct options", func(t *testing.T) {
		subject := createSubject(t, db, "SCI", 11)
		lesson := createLesson(t, db, subject.ID, 1, 10)
		qID, optionIDs := addQuestion(t, db, lesson.ID, 2, 0)
		require.NoError(t, db.Model(&model.Option{}).Where("id = ?", optionIDs[1]).Update("is_correct", true).Error)

		_, err := svc.SubmitLesson(student.ID, lesson.ID, []AnswerSubmission{
			{QuestionID: qID, OptionID: optionIDs[0]},
		})
		assert.ErrorIs(t, err, util.ErrQuestionIntegrity)
	})

	t.Run("no correct option", func(t *testing.T) {
		subject := createSubject(t, db, "MAT", 11)
		lesson := createLesson(t, db, subject.ID, 1, 10)
		qID, optionIDs := addQuestion(t, db, lesson.ID, 2, -1)

		_, err := svc.SubmitLesson(student.ID, lesson.ID, []AnswerSubmission{
			{QuestionID: qID, OptionID: optionIDs[0]},
		})
		assert.ErrorIs(t, err, util.ErrQuestionIntegrity)
	})
}

func TestSubmitLessonResubmitKeepsBest(t *testing.T) {
	db := newTestDB(t)
	svc := newLessonService(db)

	subject := createSubject(t, db, "SCI", 11)
	lesson := createLesson(t, db, subject.ID, 1, 10)
	qID, optionIDs := addQuestion(t, db, lesson.ID, 2, 0)
	student := createStudent(t, db, "fin@example.com")

	first, err := svc.SubmitLesson(student.ID, lesson.ID, []AnswerSubmission{
		{QuestionID: qID, OptionID: optionIDs[0]},
	})
	require.NoError(t, err)
	assert.Equal(t, 100, first.BestScore)

	second, err := svc.SubmitLesson(student.ID, lesson.ID, []AnswerSubmission{
		{QuestionID: qID, OptionID: optionIDs[1]},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, second.ScorePercent)
	assert.Equal(t, 100, second.BestScore)
}
