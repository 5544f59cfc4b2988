package handler

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/yourusername/trivia-api/internal/domain/entity"
	"github.com/yourusername/trivia-api/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-api/internal/pkg/errors"
)

// fakeStore - хранилище в памяти, реализующее оба репозитория.
// Поведение повторяет postgres-репозитории: JOIN с категорией, порядок по id.
type fakeStore struct {
	mu         sync.Mutex
	categories []entity.Category
	questions  []entity.Question
	nextID     uint
	failWith   error
}

var (
	_ repository.QuestionRepository = (*fakeQuestionRepo)(nil)
	_ repository.CategoryRepository = (*fakeCategoryRepo)(nil)
)

func newFakeStore(categories []entity.Category, questions []entity.Question) *fakeStore {
	s := &fakeStore{
		categories: slices.Clone(categories),
		questions:  slices.Clone(questions),
		nextID:     1,
	}
	for _, q := range questions {
		if q.ID >= s.nextID {
			s.nextID = q.ID + 1
		}
	}
	return s
}

func (s *fakeStore) withCategory(q entity.Question) (entity.QuestionWithCategory, bool) {
	for _, c := range s.categories {
		if c.ID == q.Category {
			return entity.QuestionWithCategory{Question: q, CategoryType: c.Type}, true
		}
	}
	return entity.QuestionWithCategory{}, false
}

func (s *fakeStore) filtered(filter repository.QuestionFilter) []entity.QuestionWithCategory {
	sorted := slices.Clone(s.questions)
	slices.SortFunc(sorted, func(a, b entity.Question) int { return int(a.ID) - int(b.ID) })

	rows := []entity.QuestionWithCategory{}
	for _, q := range sorted {
		if filter.CategoryID != nil && q.Category != *filter.CategoryID {
			continue
		}
		if filter.Search != nil && !matchesSearch(q, *filter.Search) {
			continue
		}
		// INNER JOIN отбрасывает вопросы без категории
		if row, ok := s.withCategory(q); ok {
			rows = append(rows, row)
		}
	}
	return rows
}

// matchesSearch повторяет ILIKE '%term%' для ASCII-текста тестовых данных
func matchesSearch(q entity.Question, term string) bool {
	return strings.Contains(strings.ToLower(q.Question), strings.ToLower(term))
}

type fakeQuestionRepo struct{ s *fakeStore }

func (r *fakeQuestionRepo) Create(_ context.Context, q *entity.Question) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return r.s.failWith
	}
	if !slices.ContainsFunc(r.s.categories, func(c entity.Category) bool { return c.ID == q.Category }) {
		return fmt.Errorf("%w: category %d does not exist", apperrors.ErrValidation, q.Category)
	}
	q.ID = r.s.nextID
	r.s.nextID++
	r.s.questions = append(r.s.questions, *q)
	return nil
}

func (r *fakeQuestionRepo) DeleteByID(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return r.s.failWith
	}
	i := slices.IndexFunc(r.s.questions, func(q entity.Question) bool { return q.ID == id })
	if i < 0 {
		return fmt.Errorf("question #%d: %w", id, apperrors.ErrNotFound)
	}
	r.s.questions = slices.Delete(r.s.questions, i, i+1)
	return nil
}

func (r *fakeQuestionRepo) GetByID(_ context.Context, id uint) (*entity.QuestionWithCategory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, q := range r.s.questions {
		if q.ID == id {
			if row, ok := r.s.withCategory(q); ok {
				return &row, nil
			}
		}
	}
	return nil, fmt.Errorf("question #%d: %w", id, apperrors.ErrNotFound)
}

func (r *fakeQuestionRepo) FindPage(_ context.Context, filter repository.QuestionFilter, limit, offset int) ([]entity.QuestionWithCategory, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return nil, 0, r.s.failWith
	}
	rows := r.s.filtered(filter)
	total := int64(len(rows))
	if offset >= len(rows) {
		return []entity.QuestionWithCategory{}, total, nil
	}
	end := min(offset+limit, len(rows))
	return rows[offset:end], total, nil
}

func (r *fakeQuestionRepo) ListAll(_ context.Context, filter repository.QuestionFilter) ([]entity.QuestionWithCategory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	return r.s.filtered(filter), nil
}

func (r *fakeQuestionRepo) ListQuizCandidateIDs(_ context.Context, categoryID *uint, excludeIDs []uint) ([]uint, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	ids := []uint{}
	for _, q := range r.s.questions {
		if categoryID != nil && q.Category != *categoryID {
			continue
		}
		if slices.Contains(excludeIDs, q.ID) {
			continue
		}
		ids = append(ids, q.ID)
	}
	slices.Sort(ids)
	return ids, nil
}

type fakeCategoryRepo struct{ s *fakeStore }

func (r *fakeCategoryRepo) List(_ context.Context) ([]entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	return slices.Clone(r.s.categories), nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id uint) (*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.categories {
		if c.ID == id {
			found := c
			return &found, nil
		}
	}
	return nil, fmt.Errorf("category #%d: %w", id, apperrors.ErrNotFound)
}

// fakePinger имитирует *sql.DB для /health
type fakePinger struct{ err error }

func (p fakePinger) PingContext(context.Context) error { return p.err }

var errDBDown = errors.New("connection refused")
