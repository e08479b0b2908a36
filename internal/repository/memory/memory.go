// Package memory provides in-process implementations of the domain
// repositories. They back STORAGE_DRIVER=memory and the service tests.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/Nazehs/trivia-app/internal/domain"
)

// CategoryRepository implements domain.CategoryRepository over a fixed list
type CategoryRepository struct {
	mu         sync.RWMutex
	categories []domain.Category
}

// NewCategoryRepository creates a repository holding the given category
// labels, assigning ids 1..n in order
func NewCategoryRepository(types ...string) *CategoryRepository {
	categories := make([]domain.Category, 0, len(types))
	for i, t := range types {
		categories = append(categories, domain.Category{ID: i + 1, Type: t})
	}
	return &CategoryRepository{categories: categories}
}

// List retrieves all categories ordered by id
func (r *CategoryRepository) List(_ context.Context) ([]domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.categories), nil
}

// First retrieves the category with the lowest id
func (r *CategoryRepository) First(_ context.Context) (*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.categories) == 0 {
		return nil, domain.ErrCategoryNotFound
	}
	category := r.categories[0]
	return &category, nil
}

// GetByID retrieves a category by its ID
func (r *CategoryRepository) GetByID(_ context.Context, id int) (*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, category := range r.categories {
		if category.ID == id {
			return &category, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

// QuestionRepository implements domain.QuestionRepository with an
// auto-incrementing id sequence
type QuestionRepository struct {
	mu        sync.RWMutex
	questions []domain.Question // ordered by id ascending
	nextID    int
}

// NewQuestionRepository creates an empty question repository
func NewQuestionRepository() *QuestionRepository {
	return &QuestionRepository{nextID: 1}
}

// List retrieves all questions matching the filter
func (r *QuestionRepository) List(_ context.Context, filter domain.QuestionFilter) ([]domain.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	questions := []domain.Question{}
	for _, q := range r.questions {
		if filter.Matches(q) {
			questions = append(questions, q)
		}
	}
	if filter.Order == domain.OrderIDDesc {
		slices.Reverse(questions)
	}
	return questions, nil
}

// GetByID retrieves a question by its ID
func (r *QuestionRepository) GetByID(_ context.Context, id int) (*domain.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index(id)
	if !ok {
		return nil, domain.ErrQuestionNotFound
	}
	question := r.questions[i]
	return &question, nil
}

// Create stores a question and assigns the next id
func (r *QuestionRepository) Create(_ context.Context, question *domain.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	question.ID = r.nextID
	r.nextID++
	r.questions = append(r.questions, *question)
	return nil
}

// Delete deletes a question
func (r *QuestionRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index(id)
	if !ok {
		return domain.ErrQuestionNotFound
	}
	r.questions = slices.Delete(r.questions, i, i+1)
	return nil
}

func (r *QuestionRepository) index(id int) (int, bool) {
	return slices.BinarySearchFunc(r.questions, id, func(q domain.Question, id int) int {
		return q.ID - id
	})
}
