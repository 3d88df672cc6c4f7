package service

import (
	"context"

	"github.com/quizzly/trivia-backend/internal/model"
)

// QuestionStore is the data-access contract the question services require.
// Implemented by repository.QuestionRepository; tests use in-memory fakes.
type QuestionStore interface {
	List(ctx context.Context) ([]model.Question, error)
	Search(ctx context.Context, term string) ([]model.Question, error)
	ListByCategory(ctx context.Context, categoryID int) ([]model.Question, error)
	ListEligible(ctx context.Context, categoryID int, excludeIDs []int) ([]model.Question, error)
	Create(ctx context.Context, q *model.Question) error
	Delete(ctx context.Context, id int) (*model.Question, error)
}

// CategoryStore is the data-access contract for categories.
type CategoryStore interface {
	List(ctx context.Context) ([]model.Category, error)
	GetByID(ctx context.Context, id int) (*model.Category, error)
}
