package domain

import (
	"context"
	"errors"
)

// Common errors
var (
	ErrQuestionNotFound = errors.New("question not found")
)

// Question represents a trivia question
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"` // Raw category id, not checked against categories
	Difficulty int    `json:"difficulty"`
}

// SortOrder is the id ordering applied to a question listing
type SortOrder int

const (
	OrderIDAsc SortOrder = iota
	OrderIDDesc
)

// QuestionFilter narrows a question listing. Zero value lists everything by id ascending.
type QuestionFilter struct {
	CategoryID *int    // Only questions in this category
	SearchTerm *string // Case-insensitive substring of the question text
	ExcludeIDs []int   // Question ids to leave out
	Order      SortOrder
}

// Matches reports whether q passes every condition of the filter
func (f QuestionFilter) Matches(q Question) bool {
	if f.CategoryID != nil && q.Category != *f.CategoryID {
		return false
	}
	if f.SearchTerm != nil && !ContainsFold(q.Question, *f.SearchTerm) {
		return false
	}
	for _, id := range f.ExcludeIDs {
		if q.ID == id {
			return false
		}
	}
	return true
}

// QuestionRepository defines the interface for question-related operations
type QuestionRepository interface {
	// List retrieves all questions matching the filter
	List(ctx context.Context, filter QuestionFilter) ([]Question, error)

	// GetByID retrieves a question by its ID
	GetByID(ctx context.Context, id int) (*Question, error)

	// Create inserts a question and sets its assigned ID
	Create(ctx context.Context, question *Question) error

	// Delete deletes a question
	Delete(ctx context.Context, id int) error
}
