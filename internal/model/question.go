package model

// Question represents a single trivia question.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// CreateQuestionRequest is the payload for creating a question.
type CreateQuestionRequest struct {
	Question   string `json:"question" binding:"required,min=1,max=2000"`
	Answer     string `json:"answer" binding:"required,min=1,max=2000"`
	Category   int    `json:"category" binding:"required,gt=0"`
	Difficulty int    `json:"difficulty" binding:"required,gte=1,lte=5"`
}

// SearchRequest is the payload for searching questions by text.
type SearchRequest struct {
	SearchTerm string `json:"searchTerm" binding:"required,min=1"`
}
