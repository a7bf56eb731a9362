package scoring

// SessionMode selects how choices are recorded during a lesson attempt.
type SessionMode string

const (
	// ModeImmediate gives feedback after each question; the first choice
	// recorded for a question is final.
	ModeImmediate SessionMode = "immediate"
	// ModeBatch collects all choices and grades on submit; re-selecting a
	// question before submit overwrites the earlier choice.
	ModeBatch SessionMode = "batch"
)

// SessionQuestion is the graded view of one question: its ID and the ID of
// its single correct option.
type SessionQuestion struct {
	QuestionID      string
	CorrectOptionID string
}

// Session holds one learner's in-progress choices for one lesson. It is
// purely in-memory and never touches the store.
type Session struct {
	mode      SessionMode
	questions []SessionQuestion
	correct   map[string]string // questionID -> correct optionID
	choices   map[string]string // questionID -> chosen optionID
}

func NewSession(mode SessionMode, questions []SessionQuestion) *Session {
	correct := make(map[string]string, len(questions))
	for _, q := range questions {
		correct[q.QuestionID] = q.CorrectOptionID
	}
	return &Session{
		mode:      mode,
		questions: questions,
		correct:   correct,
		choices:   make(map[string]string, len(questions)),
	}
}

// Select records the learner's choice for a question. Unknown question IDs
// are ignored. In immediate mode a second selection for an already-answered
// question is a no-op; in batch mode it overwrites.
func (s *Session) Select(questionID, optionID string) {
	if _, ok := s.correct[questionID]; !ok {
		return
	}
	if s.mode == ModeImmediate {
		if _, answered := s.choices[questionID]; answered {
			return
		}
	}
	s.choices[questionID] = optionID
}

// Answered returns how many questions have a recorded choice.
func (s *Session) Answered() int {
	return len(s.choices)
}

// IsComplete reports whether every question has a recorded choice.
func (s *Session) IsComplete() bool {
	return len(s.choices) == len(s.questions)
}

// CorrectCount counts questions whose recorded choice matches the correct
// option. Unanswered questions contribute zero.
func (s *Session) CorrectCount() int {
	n := 0
	for qid, chosen := range s.choices {
		if chosen == s.correct[qid] {
			n++
		}
	}
	return n
}

// TotalQuestions returns the number of questions in the lesson.
func (s *Session) TotalQuestions() int {
	return len(s.questions)
}

// IsCorrect reports whether the recorded choice for a question is the
// correct option. False when the question is unanswered or unknown.
func (s *Session) IsCorrect(questionID string) bool {
	chosen, ok := s.choices[questionID]
	return ok && chosen == s.correct[questionID]
}
