package service

import (
	"errors"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/aliskhannn/lexicon-bot/internal/domain/entities"
)

const (
	// MinQuizWords is the smallest collection a quiz can be built from:
	// one correct answer plus three distractors.
	MinQuizWords    = 4
	distractorCount = MinQuizWords - 1
)

var ErrInsufficientWords = errors.New("not enough words to study")

// QuizService builds multiple choice study sessions from the collection.
type QuizService struct {
	sampler *Sampler
}

// NewQuizService creates a new QuizService.
func NewQuizService(sampler *Sampler) *QuizService {
	return &QuizService{sampler: sampler}
}

// GenerateQuiz creates one question per entry: the entry's definition with
// its word and three other words as options. Both the options of each
// question and the order of questions are shuffled. Collections with fewer
// than MinQuizWords entries produce ErrInsufficientWords and no session.
func (s *QuizService) GenerateQuiz(collection []entities.Entry) (*entities.StudySession, error) {
	if len(collection) < MinQuizWords {
		return nil, ErrInsufficientWords
	}

	// Duplicate words would otherwise show up twice among the options.
	pool := lo.UniqBy(collection, func(e entities.Entry) string {
		return e.Key()
	})

	questions := make([]entities.Question, 0, len(collection))
	for _, e := range collection {
		q, ok := s.buildQuestion(e, pool)
		if !ok {
			continue
		}
		questions = append(questions, q)
	}

	if len(questions) == 0 {
		return nil, ErrInsufficientWords
	}

	return entities.NewStudySession(uuid.NewString(), s.sampler.ShuffleQuestions(questions)), nil
}

func (s *QuizService) buildQuestion(target entities.Entry, pool []entities.Entry) (entities.Question, bool) {
	distractors := s.sampler.PickDistractors(pool, target, distractorCount)
	if len(distractors) < distractorCount {
		return entities.Question{}, false
	}

	options := make([]string, 0, 1+len(distractors))
	options = append(options, target.Word)
	for _, d := range distractors {
		options = append(options, d.Word)
	}

	return entities.Question{
		Definition:    target.Definition,
		CorrectAnswer: target.Word,
		Options:       s.sampler.ShuffleStrings(options),
	}, true
}
