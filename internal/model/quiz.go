package model

// QuizCategory identifies the category a quiz round is played in.
type QuizCategory struct {
	ID   int    `json:"id" binding:"required,gt=0"`
	Type string `json:"type" binding:"required,min=1"`
}

// QuizRequest is the payload for fetching the next quiz question.
//
// PreviousQuestions carries the ids the client has already been served.
// An empty array is a valid first turn; a missing or null field is not
// (the `required` rule rejects a nil slice but accepts a decoded `[]`).
type QuizRequest struct {
	PreviousQuestions []int         `json:"previous_questions" binding:"required"`
	QuizCategory      *QuizCategory `json:"quiz_category" binding:"required"`
}
