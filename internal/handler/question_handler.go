package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/trivia-api/internal/handler/dto"
	apperrors "github.com/yourusername/trivia-api/internal/pkg/errors"
	"github.com/yourusername/trivia-api/internal/pkg/pagination"
	"github.com/yourusername/trivia-api/internal/service"
)

// QuestionHandler обрабатывает запросы, связанные с вопросами
type QuestionHandler struct {
	questionService *service.QuestionService
	categoryService *service.CategoryService
}

// NewQuestionHandler создает новый обработчик вопросов
func NewQuestionHandler(questionService *service.QuestionService, categoryService *service.CategoryService) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		categoryService: categoryService,
	}
}

// CreateQuestionRequest представляет запрос на создание вопроса.
// Числовые поля принимаются и строкой ("3"); нечисловое значение даёт 422.
type CreateQuestionRequest struct {
	Question   string           `json:"question" binding:"required"`
	Answer     string           `json:"answer" binding:"required"`
	Category   *dto.FlexibleInt `json:"category" binding:"required,min=1,max=2147483647"`
	Difficulty *dto.FlexibleInt `json:"difficulty" binding:"required,min=1,max=5"`
}

// SearchQuestionsRequest представляет запрос на поиск вопросов
type SearchQuestionsRequest struct {
	SearchTerm *string `json:"search_term"`
}

// ListQuestions возвращает страницу всех вопросов вместе со списком категорий
// GET /questions?page=N
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	page := pagination.ParseNumber(c.Query("page"))

	result, err := h.questionService.ListQuestions(c.Request.Context(), page)
	if err != nil {
		respondError(c, err)
		return
	}

	categories, err := h.categoryService.CategoryTypes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	links := result.Page.BuildLinks("/questions", result.Total)
	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"questions":        dto.NewListQuestionResponse(result.Questions),
		"total_questions":  result.Total,
		"next_url":         links.Next,
		"prev_url":         links.Prev,
		"categories":       categories,
		"current_category": "all",
	})
}

// CreateQuestion создает вопрос
// POST /questions
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	question, err := h.questionService.CreateQuestion(c.Request.Context(), service.CreateQuestionInput{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   uint(*req.Category),
		Difficulty: int(*req.Difficulty),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"question": dto.NewQuestionResponse(question),
		"message":  "Question successfully created.",
	})
}

// DeleteQuestion удаляет вопрос
// DELETE /questions/:id
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID := c.MustGet("questionID").(uint)

	if err := h.questionService.DeleteQuestion(c.Request.Context(), questionID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"deleted": questionID,
		"message": "Question successfully deleted.",
	})
}

// SearchQuestions ищет вопросы по подстроке без учёта регистра
// POST /questions/search?page=N
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req SearchQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if req.SearchTerm == nil {
		respondError(c, fmt.Errorf("%w: search_term is required", apperrors.ErrBadRequest))
		return
	}

	page := pagination.ParseNumber(c.Query("page"))
	result, err := h.questionService.SearchQuestions(c.Request.Context(), *req.SearchTerm, page)
	if err != nil {
		respondError(c, err)
		return
	}

	links := result.Page.BuildLinks("/questions/search", result.Total)
	c.JSON(http.StatusOK, gin.H{
		"success":              true,
		"questions":            dto.NewListQuestionResponse(result.Questions),
		"total_search_results": result.Total,
		"next_url":             links.Next,
		"prev_url":             links.Prev,
	})
}

// ListQuestionsByCategory возвращает страницу вопросов категории.
// Для несуществующей категории - пустой список и current_category: null.
// GET /categories/:id/questions?page=N
func (h *QuestionHandler) ListQuestionsByCategory(c *gin.Context) {
	categoryID := c.MustGet("categoryID").(uint)
	page := pagination.ParseNumber(c.Query("page"))

	result, err := h.questionService.ListByCategory(c.Request.Context(), categoryID, page)
	if err != nil {
		respondError(c, err)
		return
	}

	var currentCategory *string
	category, err := h.categoryService.GetCategory(c.Request.Context(), categoryID)
	switch {
	case err == nil:
		currentCategory = &category.Type
	case !isNotFound(err):
		respondError(c, err)
		return
	}

	links := result.Page.BuildLinks(fmt.Sprintf("/categories/%d/questions", categoryID), result.Total)
	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"questions":        dto.NewListQuestionResponse(result.Questions),
		"total_questions":  result.Total,
		"current_category": currentCategory,
		"next_url":         links.Next,
		"prev_url":         links.Prev,
	})
}
