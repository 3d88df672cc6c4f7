package model

// Category is a topical grouping for questions (e.g. "Science").
// Categories are read-only through the API; they are managed by seed data.
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}
