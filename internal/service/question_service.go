package service

import (
	"context"

	"github.com/quizzly/trivia-backend/internal/model"
)

// QuestionService handles question business logic.
type QuestionService struct {
	questions QuestionStore
}

// NewQuestionService creates a new QuestionService.
func NewQuestionService(questions QuestionStore) *QuestionService {
	return &QuestionService{questions: questions}
}

// List retrieves all questions.
func (s *QuestionService) List(ctx context.Context) ([]model.Question, error) {
	return s.questions.List(ctx)
}

// Search retrieves questions whose text contains the term, case-insensitively.
func (s *QuestionService) Search(ctx context.Context, term string) ([]model.Question, error) {
	return s.questions.Search(ctx, term)
}

// ListByCategory retrieves all questions in a category.
func (s *QuestionService) ListByCategory(ctx context.Context, categoryID int) ([]model.Question, error) {
	return s.questions.ListByCategory(ctx, categoryID)
}

// Create inserts a question and fills in its store-assigned id.
func (s *QuestionService) Create(ctx context.Context, q *model.Question) error {
	return s.questions.Create(ctx, q)
}

// Delete removes a question by id and returns the deleted record.
// Returns repository.ErrNotFound if no question has that id.
func (s *QuestionService) Delete(ctx context.Context, id int) (*model.Question, error) {
	return s.questions.Delete(ctx, id)
}
