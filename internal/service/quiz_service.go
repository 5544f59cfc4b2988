package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/yourusername/trivia-api/internal/domain/entity"
	"github.com/yourusername/trivia-api/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-api/internal/pkg/errors"
)

// QuizService выбирает следующий вопрос для режима игры
type QuizService struct {
	questionRepo repository.QuestionRepository
	pick         func(n int) int // случайный индекс в [0, n)
}

// NewQuizService создает новый сервис викторины
func NewQuizService(questionRepo repository.QuestionRepository) *QuizService {
	return &QuizService{
		questionRepo: questionRepo,
		pick:         rand.Intn,
	}
}

// NextQuestion равновероятно выбирает вопрос категории categoryID (nil или 0 - любая категория),
// ID которого нет в previousIDs. Если вопросов не осталось, возвращает nil без ошибки.
func (s *QuizService) NextQuestion(ctx context.Context, categoryID *uint, previousIDs []uint) (*entity.QuestionWithCategory, error) {
	if categoryID != nil && *categoryID == 0 {
		categoryID = nil
	}

	candidates, err := s.questionRepo.ListQuizCandidateIDs(ctx, categoryID, previousIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list quiz candidates: %w", err)
	}
	// Вопрос мог быть удалён между выборкой кандидатов и загрузкой: пробуем следующий
	for len(candidates) > 0 {
		i := s.pick(len(candidates))
		question, err := s.questionRepo.GetByID(ctx, candidates[i])
		if errors.Is(err, apperrors.ErrNotFound) {
			candidates = append(candidates[:i], candidates[i+1:]...)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load quiz question #%d: %w", candidates[i], err)
		}
		return question, nil
	}
	return nil, nil
}
