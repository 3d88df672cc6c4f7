package service

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/rs/zerolog"

	"github.com/quizzly/trivia-backend/internal/model"
	"github.com/quizzly/trivia-backend/internal/repository"
)

type memCategoryStore struct {
	categories []model.Category
}

func (m *memCategoryStore) List(ctx context.Context) ([]model.Category, error) {
	return slices.Clone(m.categories), nil
}

func (m *memCategoryStore) GetByID(ctx context.Context, id int) (*model.Category, error) {
	for _, cat := range m.categories {
		if cat.ID == id {
			return &cat, nil
		}
	}
	return nil, repository.ErrNotFound
}

func TestCategoryServiceListWithoutCache(t *testing.T) {
	store := &memCategoryStore{categories: []model.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
	}}
	svc := NewCategoryService(store, nil, 0, zerolog.Nop())

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(got) != 2 || got[0].Type != "Science" {
		t.Errorf("List() = %v, want the stored categories", got)
	}
}

func TestCategoryServiceGetByIDNotFound(t *testing.T) {
	svc := NewCategoryService(&memCategoryStore{}, nil, 0, zerolog.Nop())

	_, err := svc.GetByID(context.Background(), 42)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("GetByID() error = %v, want ErrNotFound", err)
	}
}
