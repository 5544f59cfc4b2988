package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/trivia-api/internal/domain/entity"
	"github.com/yourusername/trivia-api/internal/handler/dto"
	apperrors "github.com/yourusername/trivia-api/internal/pkg/errors"
	"github.com/yourusername/trivia-api/internal/service"
)

// QuizHandler обрабатывает запросы режима игры
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler создает новый обработчик викторины
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// NextQuestionRequest представляет запрос следующего вопроса.
// Category отсутствует или 0 - любая категория.
type NextQuestionRequest struct {
	Category          *dto.FlexibleInt `json:"category"`
	PreviousQuestions []uint           `json:"previous_questions"`
}

// NextQuestion возвращает случайный вопрос, которого нет в previous_questions.
// Когда вопросы закончились, question = null.
// POST /quiz
func (h *QuizHandler) NextQuestion(c *gin.Context) {
	var req NextQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	var categoryID *uint
	if req.Category != nil {
		if *req.Category < 0 || *req.Category > entity.MaxID {
			respondError(c, fmt.Errorf("%w: category must be between 0 and %d", apperrors.ErrValidation, entity.MaxID))
			return
		}
		id := uint(*req.Category)
		categoryID = &id
	}
	for _, id := range req.PreviousQuestions {
		if id > entity.MaxID {
			respondError(c, fmt.Errorf("%w: previous question id %d is out of range", apperrors.ErrValidation, id))
			return
		}
	}

	question, err := h.quizService.NextQuestion(c.Request.Context(), categoryID, req.PreviousQuestions)
	if err != nil {
		respondError(c, err)
		return
	}

	var response *dto.QuestionResponse
	if question != nil {
		response = dto.NewQuestionResponse(question)
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"question": response,
	})
}
