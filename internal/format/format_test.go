package format

import (
	"reflect"
	"testing"

	"github.com/quizzly/trivia-backend/internal/model"
)

func TestCategories(t *testing.T) {
	tests := []struct {
		name  string
		input []model.Category
		want  map[int]string
	}{
		{
			name: "one entry per distinct id",
			input: []model.Category{
				{ID: 1, Type: "Science"},
				{ID: 2, Type: "Art"},
				{ID: 3, Type: "Geography"},
			},
			want: map[int]string{1: "Science", 2: "Art", 3: "Geography"},
		},
		{
			name:  "empty input yields empty map",
			input: []model.Category{},
			want:  map[int]string{},
		},
		{
			name: "duplicate id keeps the last entry",
			input: []model.Category{
				{ID: 1, Type: "Science"},
				{ID: 1, Type: "History"},
			},
			want: map[int]string{1: "History"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Categories(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Categories() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQuestionsNilBecomesEmpty(t *testing.T) {
	got := Questions(nil)
	if got == nil || len(got) != 0 {
		t.Errorf("Questions(nil) = %v, want empty slice", got)
	}
}

func TestQuestionsPassthrough(t *testing.T) {
	in := []model.Question{{ID: 7, Question: "Q", Answer: "A", Category: 2, Difficulty: 3}}
	got := Questions(in)
	if !reflect.DeepEqual(got, in) {
		t.Errorf("Questions() = %v, want %v", got, in)
	}
}
