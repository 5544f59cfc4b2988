package repository

import (
	"context"

	"github.com/yourusername/trivia-api/internal/domain/entity"
)

// QuestionFilter определяет фильтры выборки вопросов.
// Если оба поля nil - выбираются все вопросы.
type QuestionFilter struct {
	CategoryID *uint   // Только вопросы указанной категории
	Search     *string // Подстрока в тексте вопроса (без учёта регистра)
}

// QuestionRepository определяет методы для работы с вопросами
type QuestionRepository interface {
	// Create сохраняет вопрос в одной транзакции; ID присваивает БД.
	// Несуществующая категория -> apperrors.ErrValidation.
	Create(ctx context.Context, question *entity.Question) error
	// DeleteByID удаляет вопрос; если его нет -> apperrors.ErrNotFound.
	DeleteByID(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*entity.QuestionWithCategory, error)

	// FindPage возвращает страницу вопросов (JOIN с categories, сортировка по id)
	// и общее количество совпадающих записей.
	FindPage(ctx context.Context, filter QuestionFilter, limit, offset int) ([]entity.QuestionWithCategory, int64, error)
	// ListAll возвращает все совпадающие вопросы без пагинации (для экспорта)
	ListAll(ctx context.Context, filter QuestionFilter) ([]entity.QuestionWithCategory, error)

	// ListQuizCandidateIDs возвращает ID вопросов, доступных для следующего хода викторины
	ListQuizCandidateIDs(ctx context.Context, categoryID *uint, excludeIDs []uint) ([]uint, error)
}
