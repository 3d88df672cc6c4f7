package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/quizzly/trivia-backend/internal/model"
	"github.com/quizzly/trivia-backend/internal/response"
	"github.com/quizzly/trivia-backend/internal/service"
	"github.com/quizzly/trivia-backend/internal/validator"
)

// QuizHandler handles quiz play endpoints.
type QuizHandler struct {
	quizService *service.QuizService
	log         zerolog.Logger
}

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler(quizService *service.QuizService, log zerolog.Logger) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
		log:         log.With().Str("component", "quiz_handler").Logger(),
	}
}

// NextQuestion godoc
// POST /api/quizzes
// Returns a random question from the requested category that is not in
// previous_questions, or null when the category is exhausted.
func (h *QuizHandler) NextQuestion(c *gin.Context) {
	var req model.QuizRequest
	if fields := validator.Bind(c, &req); fields != nil {
		h.log.Debug().Fields(map[string]interface{}{"fields": fields}).Msg("Rejected quiz payload")
		response.Fail(c, response.ErrBadRequest)
		return
	}

	question, err := h.quizService.NextQuestion(c.Request.Context(), req.QuizCategory.ID, req.PreviousQuestions)
	if err != nil {
		response.Fail(c, response.ErrInternal)
		return
	}

	// question stays nil when the quiz is complete; the JSON field
	// renders as null, which the client treats as "no more questions".
	response.OK(c, gin.H{
		"question": question,
	})
}
