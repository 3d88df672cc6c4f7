package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/quizzly/trivia-backend/internal/format"
	"github.com/quizzly/trivia-backend/internal/pagination"
	"github.com/quizzly/trivia-backend/internal/repository"
	"github.com/quizzly/trivia-backend/internal/response"
	"github.com/quizzly/trivia-backend/internal/service"
)

// CategoryHandler handles category endpoints.
type CategoryHandler struct {
	categoryService *service.CategoryService
	questionService *service.QuestionService
	pageSize        int
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService *service.CategoryService, questionService *service.QuestionService, pageSize int) *CategoryHandler {
	if pageSize < 1 {
		pageSize = pagination.DefaultPageSize
	}
	return &CategoryHandler{
		categoryService: categoryService,
		questionService: questionService,
		pageSize:        pageSize,
	}
}

// ListCategories godoc
// GET /api/categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, response.ErrInternal)
		return
	}

	response.OK(c, gin.H{
		"categories": format.Categories(categories),
	})
}

// ListQuestionsByCategory godoc
// GET /api/categories/:id/questions?page=N
// 404 if the category does not exist.
func (h *CategoryHandler) ListQuestionsByCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, response.ErrBadRequest)
		return
	}

	ctx := c.Request.Context()

	category, err := h.categoryService.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, response.ErrNotFound)
			return
		}
		response.Fail(c, response.ErrInternal)
		return
	}

	questions, err := h.questionService.ListByCategory(ctx, category.ID)
	if err != nil {
		response.Fail(c, response.ErrInternal)
		return
	}

	page := pagination.PageFromQuery(c)
	paged := pagination.Page(format.Questions(questions), page, h.pageSize)

	response.OK(c, gin.H{
		"questions":        paged,
		"total_questions":  len(questions),
		"current_category": category,
	})
}
