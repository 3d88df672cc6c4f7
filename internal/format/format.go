// Package format shapes stored records into the API's output forms.
// All functions are pure.
package format

import "github.com/quizzly/trivia-backend/internal/model"

// Categories indexes a category list into the API's id → type mapping.
// Ids are assumed unique; on a duplicate the last entry wins.
func Categories(categories []model.Category) map[int]string {
	out := make(map[int]string, len(categories))
	for _, cat := range categories {
		out[cat.ID] = cat.Type
	}
	return out
}

// Questions normalizes a question list for output. A nil slice becomes an
// empty one so the JSON field renders as [] rather than null.
func Questions(questions []model.Question) []model.Question {
	if questions == nil {
		return []model.Question{}
	}
	return questions
}
