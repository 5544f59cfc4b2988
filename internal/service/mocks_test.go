package service

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/yourusername/trivia-api/internal/domain/entity"
	"github.com/yourusername/trivia-api/internal/domain/repository"
)

// ============================================================================
// Моки репозиториев (testify/mock)
// ============================================================================

// MockQuestionRepository реализует repository.QuestionRepository
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) Create(ctx context.Context, question *entity.Question) error {
	args := m.Called(ctx, question)
	return args.Error(0)
}

func (m *MockQuestionRepository) DeleteByID(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockQuestionRepository) GetByID(ctx context.Context, id uint) (*entity.QuestionWithCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.QuestionWithCategory), args.Error(1)
}

func (m *MockQuestionRepository) FindPage(ctx context.Context, filter repository.QuestionFilter, limit, offset int) ([]entity.QuestionWithCategory, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]entity.QuestionWithCategory), args.Get(1).(int64), args.Error(2)
}

func (m *MockQuestionRepository) ListAll(ctx context.Context, filter repository.QuestionFilter) ([]entity.QuestionWithCategory, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.QuestionWithCategory), args.Error(1)
}

func (m *MockQuestionRepository) ListQuizCandidateIDs(ctx context.Context, categoryID *uint, excludeIDs []uint) ([]uint, error) {
	args := m.Called(ctx, categoryID, excludeIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

// MockCategoryRepository реализует repository.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]entity.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id uint) (*entity.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

func uintPtr(v uint) *uint { return &v }

func questionRow(id, category uint, text, categoryType string) entity.QuestionWithCategory {
	return entity.QuestionWithCategory{
		Question: entity.Question{
			ID:         id,
			Question:   text,
			Answer:     "answer",
			Category:   category,
			Difficulty: 1,
		},
		CategoryType: categoryType,
	}
}
