package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Nazehs/trivia-app/internal/domain"
	"github.com/Nazehs/trivia-app/internal/service"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	trivia *service.TriviaService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(trivia *service.TriviaService) *CategoryHandler {
	return &CategoryHandler{trivia: trivia}
}

// Register registers the category routes
func (h *CategoryHandler) Register(e *echo.Echo) {
	g := e.Group("/categories")
	g.GET("", h.ListCategories)
	g.GET("/:id/questions", h.QuestionsByCategory)
}

// CategoriesResponse is the body of GET /categories
type CategoriesResponse struct {
	Success    bool              `json:"success"`
	Categories []domain.Category `json:"categories"`
}

// CategoryQuestionsResponse is the body of GET /categories/:id/questions
type CategoryQuestionsResponse struct {
	Success         bool              `json:"success"`
	Questions       []domain.Question `json:"questions"`
	CurrentCategory domain.Category   `json:"current_category"`
	TotalQuestions  int               `json:"total_questions"`
}

// ListCategories returns a page of categories
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.trivia.ListCategories(c.Request().Context(), page(c))
	if err != nil {
		return serverError(err)
	}

	return c.JSON(http.StatusOK, CategoriesResponse{
		Success:    true,
		Categories: categories,
	})
}

// QuestionsByCategory returns a page of the questions in a category
func (h *CategoryHandler) QuestionsByCategory(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	result, err := h.trivia.QuestionsByCategory(c.Request().Context(), id, page(c))
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return echo.NewHTTPError(http.StatusNotFound).SetInternal(err)
		}
		return serverError(err)
	}

	return c.JSON(http.StatusOK, CategoryQuestionsResponse{
		Success:         true,
		Questions:       result.Questions,
		CurrentCategory: result.Category,
		TotalQuestions:  result.Total,
	})
}
