package dto

import (
	"github.com/yourusername/trivia-api/internal/domain/entity"
)

// QuestionResponse представляет вопрос в формате для ответа клиенту.
// Category - числовой ID категории, CategoryType - её название.
type QuestionResponse struct {
	ID           uint   `json:"id"`
	Question     string `json:"question"`
	Answer       string `json:"answer"`
	Category     uint   `json:"category"`
	Difficulty   int    `json:"difficulty"`
	CategoryType string `json:"category_type"`
}

// NewQuestionResponse создает DTO для вопроса
func NewQuestionResponse(q *entity.QuestionWithCategory) *QuestionResponse {
	return &QuestionResponse{
		ID:           q.ID,
		Question:     q.Question.Question,
		Answer:       q.Answer,
		Category:     q.Category,
		Difficulty:   q.Difficulty,
		CategoryType: q.CategoryType,
	}
}

// NewListQuestionResponse создает слайс DTO; пустой вход даёт [], а не null
func NewListQuestionResponse(rows []entity.QuestionWithCategory) []QuestionResponse {
	response := make([]QuestionResponse, 0, len(rows))
	for i := range rows {
		response = append(response, *NewQuestionResponse(&rows[i]))
	}
	return response
}
