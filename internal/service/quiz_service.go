package service

import (
	"context"
	"math/rand/v2"

	"github.com/quizzly/trivia-backend/internal/model"
)

// QuizService picks quiz questions. It keeps no state between calls; the
// client accumulates the previously-asked ids across turns.
type QuizService struct {
	questions QuestionStore
	intn      func(n int) int
}

// NewQuizService creates a new QuizService.
func NewQuizService(questions QuestionStore) *QuizService {
	return &QuizService{
		questions: questions,
		intn:      rand.IntN,
	}
}

// NextQuestion returns one question from the category chosen uniformly at
// random among those not in previousIDs. A nil question with a nil error
// means the category is exhausted — the quiz is complete.
func (s *QuizService) NextQuestion(ctx context.Context, categoryID int, previousIDs []int) (*model.Question, error) {
	eligible, err := s.questions.ListEligible(ctx, categoryID, previousIDs)
	if err != nil {
		return nil, err
	}
	if len(eligible) == 0 {
		return nil, nil
	}
	picked := eligible[s.intn(len(eligible))]
	return &picked, nil
}
