package domain

import (
	"context"
	"errors"
)

// Common errors
var (
	ErrCategoryNotFound = errors.New("category not found")
)

// Category represents a labeled grouping of questions
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// CategoryRepository defines the interface for category-related operations.
// Categories are read-only through the API; they are seeded out of band.
type CategoryRepository interface {
	// List retrieves all categories ordered by id ascending
	List(ctx context.Context) ([]Category, error)

	// First retrieves the category with the lowest id
	First(ctx context.Context) (*Category, error)

	// GetByID retrieves a category by its ID
	GetByID(ctx context.Context, id int) (*Category, error)
}

// DefaultCategories is the seed set written by schema bootstrap and the memory store
var DefaultCategories = []string{
	"Science",
	"Art",
	"Geography",
	"History",
	"Entertainment",
	"Sports",
}
