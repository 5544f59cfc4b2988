package service

import (
	"context"
	"fmt"

	"github.com/yourusername/trivia-api/internal/domain/entity"
	"github.com/yourusername/trivia-api/internal/domain/repository"
	"github.com/yourusername/trivia-api/internal/pkg/pagination"
)

// QuestionPage - результат постраничной выборки вопросов
type QuestionPage struct {
	Questions []entity.QuestionWithCategory
	Total     int64
	Page      pagination.Page
}

// CreateQuestionInput - данные для создания вопроса
type CreateQuestionInput struct {
	Question   string
	Answer     string
	Category   uint
	Difficulty int
}

// QuestionService предоставляет методы для работы с вопросами
type QuestionService struct {
	questionRepo repository.QuestionRepository
	pageSize     int
}

// NewQuestionService создает новый сервис вопросов.
// pageSize берётся из конфигурации; значение < 1 заменяется на pagination.DefaultPageSize.
func NewQuestionService(questionRepo repository.QuestionRepository, pageSize int) *QuestionService {
	if pageSize < 1 {
		pageSize = pagination.DefaultPageSize
	}
	return &QuestionService{
		questionRepo: questionRepo,
		pageSize:     pageSize,
	}
}

// PageSize возвращает используемый размер страницы
func (s *QuestionService) PageSize() int {
	return s.pageSize
}

// ListQuestions возвращает страницу всех вопросов
func (s *QuestionService) ListQuestions(ctx context.Context, page int) (*QuestionPage, error) {
	return s.findPage(ctx, repository.QuestionFilter{}, page)
}

// SearchQuestions возвращает страницу вопросов, содержащих term (без учёта регистра).
// Пустой term совпадает со всеми вопросами.
func (s *QuestionService) SearchQuestions(ctx context.Context, term string, page int) (*QuestionPage, error) {
	return s.findPage(ctx, repository.QuestionFilter{Search: &term}, page)
}

// ListByCategory возвращает страницу вопросов категории.
// Несуществующая категория даёт пустой результат, а не ошибку.
func (s *QuestionService) ListByCategory(ctx context.Context, categoryID uint, page int) (*QuestionPage, error) {
	return s.findPage(ctx, repository.QuestionFilter{CategoryID: &categoryID}, page)
}

// CreateQuestion создает вопрос и возвращает его вместе с названием категории
func (s *QuestionService) CreateQuestion(ctx context.Context, input CreateQuestionInput) (*entity.QuestionWithCategory, error) {
	question := &entity.Question{
		Question:   input.Question,
		Answer:     input.Answer,
		Category:   input.Category,
		Difficulty: input.Difficulty,
	}

	if err := s.questionRepo.Create(ctx, question); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	created, err := s.questionRepo.GetByID(ctx, question.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load created question #%d: %w", question.ID, err)
	}
	return created, nil
}

// DeleteQuestion удаляет вопрос по ID
func (s *QuestionService) DeleteQuestion(ctx context.Context, id uint) error {
	return s.questionRepo.DeleteByID(ctx, id)
}

// ExportQuestions возвращает все вопросы для выгрузки в файл
func (s *QuestionService) ExportQuestions(ctx context.Context) ([]entity.QuestionWithCategory, error) {
	return s.questionRepo.ListAll(ctx, repository.QuestionFilter{})
}

func (s *QuestionService) findPage(ctx context.Context, filter repository.QuestionFilter, number int) (*QuestionPage, error) {
	page := pagination.New(number, s.pageSize)

	questions, total, err := s.questionRepo.FindPage(ctx, filter, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch questions page %d: %w", page.Number, err)
	}

	return &QuestionPage{
		Questions: questions,
		Total:     total,
		Page:      page,
	}, nil
}
