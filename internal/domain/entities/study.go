package entities

import "errors"

var (
	ErrAlreadyAnswered = errors.New("question already answered")
	ErrSessionComplete = errors.New("study session is complete")
	ErrInvalidOption   = errors.New("invalid option index")
)

// StudySession tracks progress through a shuffled list of quiz questions.
// It lives only in memory and is discarded when the user leaves study mode.
type StudySession struct {
	ID        string     // presentation-only id used to detect stale buttons
	questions []Question // session-shuffled questions
	answered  []bool     // whether each question has been answered
	current   int        // index of the current question
	selected  string     // answer selected for the current question
	score     int        // number of correct answers so far
	complete  bool       // set after advancing past the last question
}

// NewStudySession creates a session over the given questions.
func NewStudySession(id string, questions []Question) *StudySession {
	return &StudySession{
		ID:        id,
		questions: questions,
		answered:  make([]bool, len(questions)),
	}
}

// Current returns the question being asked. It returns false once the session is complete.
func (s *StudySession) Current() (Question, bool) {
	if s.complete || s.current >= len(s.questions) {
		return Question{}, false
	}
	return s.questions[s.current], true
}

// Index returns the zero-based index of the current question.
func (s *StudySession) Index() int { return s.current }

// Total returns the number of questions in the session.
func (s *StudySession) Total() int { return len(s.questions) }

// Score returns the number of correctly answered questions.
func (s *StudySession) Score() int { return s.score }

// Complete reports whether the session has been finished.
func (s *StudySession) Complete() bool { return s.complete }

// IsLast reports whether the current question is the last one.
func (s *StudySession) IsLast() bool { return s.current == len(s.questions)-1 }

// Selected returns the answer picked for the current question, if any.
func (s *StudySession) Selected() (string, bool) {
	if _, ok := s.Current(); !ok || !s.answered[s.current] {
		return "", false
	}
	return s.selected, true
}

// Answer records the selected answer for the current question and reports
// whether it was correct. Each question is scored at most once: a repeated
// call returns ErrAlreadyAnswered and leaves the score untouched.
func (s *StudySession) Answer(selected string) (bool, error) {
	q, ok := s.Current()
	if !ok {
		return false, ErrSessionComplete
	}
	if s.answered[s.current] {
		return s.selected == q.CorrectAnswer, ErrAlreadyAnswered
	}

	s.answered[s.current] = true
	s.selected = selected

	correct := q.IsCorrect(selected)
	if correct {
		s.score++
	}

	return correct, nil
}

// AnswerOption answers the current question with the option at index i.
func (s *StudySession) AnswerOption(i int) (bool, error) {
	q, ok := s.Current()
	if !ok {
		return false, ErrSessionComplete
	}
	if i < 0 || i >= len(q.Options) {
		return false, ErrInvalidOption
	}
	return s.Answer(q.Options[i])
}

// Advance moves to the next question and clears the selection. On the last
// question it completes the session instead and returns false.
func (s *StudySession) Advance() bool {
	if s.complete {
		return false
	}
	if s.current < len(s.questions)-1 {
		s.current++
		s.selected = ""
		return true
	}

	s.complete = true
	s.selected = ""
	return false
}

// Result returns the share of correctly answered questions.
func (s *StudySession) Result() float64 {
	if len(s.questions) == 0 {
		return 0
	}
	return float64(s.score) / float64(len(s.questions))
}
