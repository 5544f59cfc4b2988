package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yourusername/trivia-api/internal/domain/entity"
	"github.com/yourusername/trivia-api/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-api/internal/pkg/errors"
)

// questionColumns - колонки JOIN-выборки: числовой ID категории сохраняется рядом с её названием
const questionColumns = "questions.id, questions.question, questions.answer, questions.category, questions.difficulty, categories.type AS category_type"

// likeEscaper экранирует спецсимволы LIKE, чтобы поисковая строка сравнивалась буквально
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// Create создает новый вопрос. Проверка категории и вставка идут в одной транзакции.
func (r *QuestionRepo) Create(ctx context.Context, question *entity.Question) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entity.Category{}).Where("id = ?", question.Category).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("%w: category %d does not exist", apperrors.ErrValidation, question.Category)
		}

		if err := tx.Create(question).Error; err != nil {
			// Категорию могли удалить между проверкой и вставкой
			if isForeignKeyViolation(err) {
				return fmt.Errorf("%w: category %d does not exist", apperrors.ErrValidation, question.Category)
			}
			return err
		}
		return nil
	})
}

// DeleteByID удаляет вопрос. Строка блокируется (FOR UPDATE) до удаления.
func (r *QuestionRepo) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var question entity.Question
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&question, id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("question #%d: %w", id, apperrors.ErrNotFound)
			}
			return err
		}
		return tx.Delete(&question).Error
	})
}

// GetByID возвращает вопрос вместе с названием категории
func (r *QuestionRepo) GetByID(ctx context.Context, id uint) (*entity.QuestionWithCategory, error) {
	var row entity.QuestionWithCategory
	err := r.joined(ctx).
		Select(questionColumns).
		Where("questions.id = ?", id).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("question #%d: %w", id, apperrors.ErrNotFound)
		}
		return nil, err
	}
	return &row, nil
}

// FindPage возвращает страницу вопросов и total count
func (r *QuestionRepo) FindPage(ctx context.Context, filter repository.QuestionFilter, limit, offset int) ([]entity.QuestionWithCategory, int64, error) {
	var total int64
	if err := applyQuestionFilter(r.joined(ctx), filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	rows := make([]entity.QuestionWithCategory, 0, limit)
	// Страница за пределами total не запрашивается: пустой результат без лишнего запроса
	if int64(offset) >= total {
		return rows, total, nil
	}

	err := applyQuestionFilter(r.joined(ctx), filter).
		Select(questionColumns).
		Order("questions.id ASC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

// ListAll возвращает все совпадающие вопросы, отсортированные по id
func (r *QuestionRepo) ListAll(ctx context.Context, filter repository.QuestionFilter) ([]entity.QuestionWithCategory, error) {
	var rows []entity.QuestionWithCategory
	err := applyQuestionFilter(r.joined(ctx), filter).
		Select(questionColumns).
		Order("questions.id ASC").
		Find(&rows).Error
	return rows, err
}

// ListQuizCandidateIDs возвращает ID вопросов категории (или всех), кроме excludeIDs
func (r *QuestionRepo) ListQuizCandidateIDs(ctx context.Context, categoryID *uint, excludeIDs []uint) ([]uint, error) {
	var ids []uint

	query := r.db.WithContext(ctx).Model(&entity.Question{})
	if categoryID != nil {
		query = query.Where("category = ?", *categoryID)
	}
	// Исключаем вопросы, уже показанные игроку
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}

	err := query.Order("id").Pluck("id", &ids).Error
	return ids, err
}

// joined строит базовый запрос questions JOIN categories
func (r *QuestionRepo) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("questions").
		Joins("JOIN categories ON categories.id = questions.category")
}

func applyQuestionFilter(query *gorm.DB, filter repository.QuestionFilter) *gorm.DB {
	if filter.CategoryID != nil {
		query = query.Where("questions.category = ?", *filter.CategoryID)
	}
	if filter.Search != nil {
		query = query.Where("questions.question ILIKE ?", "%"+likeEscaper.Replace(*filter.Search)+"%")
	}
	return query
}
