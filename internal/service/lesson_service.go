package service

import (
	"errors"

	"studyquest_backend/internal/model"
	"studyquest_backend/internal/repository"
	"studyquest_backend/internal/scoring"
	"studyquest_backend/internal/util"

	"gorm.io/gorm"
)

type LessonService struct {
	LessonRepo *repository.LessonRepository
	Progress   *ProgressService
}

func NewLessonService(lessonRepo *repository.LessonRepository, progress *ProgressService) *LessonService {
	return &LessonService{LessonRepo: lessonRepo, Progress: progress}
}

// OptionView is an option as presented to a learner: the correctness flag
// never leaves the server through the content payload.
type OptionView struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type QuestionContent struct {
	ID          string       `json:"id"`
	Prompt      string       `json:"prompt"`
	Explanation string       `json:"explanation,omitempty"`
	Options     []OptionView `json:"options"`
}

// LessonContent is the full payload for playing one lesson. HasQuestions
// distinguishes the valid "no content" state from a missing lesson.
type LessonContent struct {
	Lesson       *model.Lesson     `json:"lesson"`
	Questions    []QuestionContent `json:"questions"`
	HasQuestions bool              `json:"hasQuestions"`
}

// GetLessonContent loads a lesson with its questions and options.
// Returns util.ErrLessonNotFound when the lesson does not exist; a lesson
// with zero questions is returned with HasQuestions=false, not an error.
func (s *LessonService) GetLessonContent(lessonID string) (*LessonContent, error) {
	lesson, questions, optionsByQuestion, err := s.loadLesson(lessonID)
	if err != nil {
		return nil, err
	}

	content := &LessonContent{
		Lesson:       lesson,
		Questions:    make([]QuestionContent, 0, len(questions)),
		HasQuestions: len(questions) > 0,
	}
	for _, q := range questions {
		qc := QuestionContent{
			ID:          q.ID,
			Prompt:      q.Prompt,
			Explanation: q.Explanation,
		}
		for _, o := range optionsByQuestion[q.ID] {
			qc.Options = append(qc.Options, OptionView{ID: o.ID, Label: o.Label})
		}
		content.Questions = append(content.Questions, qc)
	}
	return content, nil
}

type AnswerCheck struct {
	QuestionID      string `json:"questionId"`
	Correct         bool   `json:"correct"`
	CorrectOptionID string `json:"correctOptionId"`
	Explanation     string `json:"explanation,omitempty"`
}

// CheckAnswer grades a single choice for the immediate-feedback
// interaction. It is read-only: rewards are only written on submission.
func (s *LessonService) CheckAnswer(lessonID, questionID, optionID string) (*AnswerCheck, error) {
	_, questions, optionsByQuestion, err := s.loadLesson(lessonID)
	if err != nil {
		return nil, err
	}

	var question *model.Question
	for i := range questions {
		if questions[i].ID == questionID {
			question = &questions[i]
			break
		}
	}
	if question == nil {
		return nil, util.ErrQuestionNotFound
	}

	correctID, err := correctOptionID(optionsByQuestion[questionID])
	if err != nil {
		return nil, err
	}

	return &AnswerCheck{
		QuestionID:      questionID,
		Correct:         optionID == correctID,
		CorrectOptionID: correctID,
		Explanation:     question.Explanation,
	}, nil
}

type AnswerSubmission struct {
	QuestionID string `json:"questionId" binding:"required"`
	OptionID   string `json:"optionId" binding:"required"`
}

type SubmissionResult struct {
	ScorePercent   int    `json:"scorePercent"`
	CorrectCount   int    `json:"correctCount"`
	TotalQuestions int    `json:"totalQuestions"`
	XpAwarded      int    `json:"xpAwarded"`
	BestScore      int    `json:"bestScore"`
	UnlockedLesson string `json:"unlockedLessonId,omitempty"`
}

// SubmitLesson grades a complete batch of answers and hands the outcome
// to the reward engine. Every question must carry an answer.
func (s *LessonService) SubmitLesson(studentID, lessonID string, answers []AnswerSubmission) (*SubmissionResult, error) {
	if studentID == "" {
		return nil, util.ErrUnauthenticated
	}

	lesson, questions, optionsByQuestion, err := s.loadLesson(lessonID)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, util.ErrNoQuestions
	}

	sessionQuestions := make([]scoring.SessionQuestion, 0, len(questions))
	for _, q := range questions {
		correctID, err := correctOptionID(optionsByQuestion[q.ID])
		if err != nil {
			return nil, err
		}
		sessionQuestions = append(sessionQuestions, scoring.SessionQuestion{
			QuestionID:      q.ID,
			CorrectOptionID: correctID,
		})
	}

	session := scoring.NewSession(scoring.ModeBatch, sessionQuestions)
	for _, a := range answers {
		session.Select(a.QuestionID, a.OptionID)
	}
	if !session.IsComplete() {
		return nil, util.ErrSessionIncomplete
	}

	percent := scoring.ScorePercent(session.CorrectCount(), session.TotalQuestions())
	outcome, err := s.Progress.CompleteLesson(studentID, lesson, percent)
	if err != nil {
		return nil, err
	}

	return &SubmissionResult{
		ScorePercent:   percent,
		CorrectCount:   session.CorrectCount(),
		TotalQuestions: session.TotalQuestions(),
		XpAwarded:      outcome.XpAwarded,
		BestScore:      outcome.BestScore,
		UnlockedLesson: outcome.UnlockedLessonID,
	}, nil
}

func (s *LessonService) loadLesson(lessonID string) (*model.Lesson, []model.Question, map[string][]model.Option, error) {
	lesson, err := s.LessonRepo.FindByID(lessonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil, util.ErrLessonNotFound
		}
		return nil, nil, nil, err
	}

	questions, err := s.LessonRepo.ListQuestions(lessonID)
	if err != nil {
		return nil, nil, nil, err
	}

	ids := make([]string, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}
	options, err := s.LessonRepo.ListOptions(ids)
	if err != nil {
		return nil, nil, nil, err
	}

	optionsByQuestion := make(map[string][]model.Option, len(questions))
	for _, o := range options {
		optionsByQuestion[o.QuestionID] = append(optionsByQuestion[o.QuestionID], o)
	}
	return lesson, questions, optionsByQuestion, nil
}

// correctOptionID enforces the one-correct-option invariant at load time
// instead of silently picking the first flagged option.
func correctOptionID(options []model.Option) (string, error) {
	id := ""
	for _, o := range options {
		if !o.IsCorrect {
			continue
		}
		if id != "" {
			return "", util.ErrQuestionIntegrity
		}
		id = o.ID
	}
	if id == "" {
		return "", util.ErrQuestionIntegrity
	}
	return id, nil
}
