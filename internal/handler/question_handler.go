package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/quizzly/trivia-backend/internal/format"
	"github.com/quizzly/trivia-backend/internal/model"
	"github.com/quizzly/trivia-backend/internal/pagination"
	"github.com/quizzly/trivia-backend/internal/repository"
	"github.com/quizzly/trivia-backend/internal/response"
	"github.com/quizzly/trivia-backend/internal/service"
	"github.com/quizzly/trivia-backend/internal/validator"
)

// QuestionHandler handles question listing, search, creation and deletion.
type QuestionHandler struct {
	questionService *service.QuestionService
	categoryService *service.CategoryService
	pageSize        int
	log             zerolog.Logger
}

// NewQuestionHandler creates a new QuestionHandler.
func NewQuestionHandler(questionService *service.QuestionService, categoryService *service.CategoryService, pageSize int, log zerolog.Logger) *QuestionHandler {
	if pageSize < 1 {
		pageSize = pagination.DefaultPageSize
	}
	return &QuestionHandler{
		questionService: questionService,
		categoryService: categoryService,
		pageSize:        pageSize,
		log:             log.With().Str("component", "question_handler").Logger(),
	}
}

// ListQuestions godoc
// GET /api/questions?page=N
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	ctx := c.Request.Context()

	questions, err := h.questionService.List(ctx)
	if err != nil {
		response.Fail(c, response.ErrInternal)
		return
	}

	categories, err := h.categoryService.List(ctx)
	if err != nil {
		response.Fail(c, response.ErrInternal)
		return
	}

	page := pagination.PageFromQuery(c)
	paged := pagination.Page(format.Questions(questions), page, h.pageSize)

	response.OK(c, gin.H{
		"questions":        paged,
		"total_questions":  len(questions),
		"categories":       format.Categories(categories),
		"current_category": nil,
	})
}

// CreateQuestion godoc
// POST /api/questions
// 400 if the payload is missing or has invalid fields.
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req model.CreateQuestionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		h.log.Debug().Fields(map[string]interface{}{"fields": fields}).Msg("Rejected question payload")
		response.Fail(c, response.ErrBadRequest)
		return
	}

	question := &model.Question{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category,
		Difficulty: req.Difficulty,
	}

	if err := h.questionService.Create(c.Request.Context(), question); err != nil {
		response.Fail(c, response.ErrInternal)
		return
	}

	response.OK(c, gin.H{
		"new_question": question,
	})
}

// DeleteQuestion godoc
// DELETE /api/questions/:id
// 404 if no question has the given id; echoes the deleted record on success.
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, response.ErrBadRequest)
		return
	}

	deleted, err := h.questionService.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, response.ErrNotFound)
			return
		}
		response.Fail(c, response.ErrInternal)
		return
	}

	response.OK(c, gin.H{
		"deleted_question": deleted,
	})
}

// SearchQuestions godoc
// POST /api/search
// Case-insensitive substring match of searchTerm against question text.
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req model.SearchRequest
	if fields := validator.Bind(c, &req); fields != nil {
		h.log.Debug().Fields(map[string]interface{}{"fields": fields}).Msg("Rejected search payload")
		response.Fail(c, response.ErrBadRequest)
		return
	}

	questions, err := h.questionService.Search(c.Request.Context(), req.SearchTerm)
	if err != nil {
		response.Fail(c, response.ErrInternal)
		return
	}

	page := pagination.PageFromQuery(c)
	paged := pagination.Page(format.Questions(questions), page, h.pageSize)

	response.OK(c, gin.H{
		"questions":        paged,
		"total_questions":  len(questions),
		"current_category": nil,
	})
}
