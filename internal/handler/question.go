package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Nazehs/trivia-app/internal/domain"
	"github.com/Nazehs/trivia-app/internal/service"
)

// QuestionHandler handles question-related HTTP requests
type QuestionHandler struct {
	trivia *service.TriviaService
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(trivia *service.TriviaService) *QuestionHandler {
	return &QuestionHandler{trivia: trivia}
}

// Register registers the question routes
func (h *QuestionHandler) Register(e *echo.Echo) {
	g := e.Group("/questions")
	g.GET("", h.ListQuestions)
	g.POST("", h.CreateQuestion)
	g.POST("/search", h.SearchQuestions)
	g.DELETE("/:id", h.DeleteQuestion)
}

// CreateQuestionRequest represents the request to create a new question
type CreateQuestionRequest struct {
	Question   *string  `json:"question" validate:"required"`
	Answer     *string  `json:"answer" validate:"required"`
	Category   *jsonInt `json:"category" validate:"required"`
	Difficulty *jsonInt `json:"difficulty" validate:"required"`
}

// SearchQuestionsRequest represents a question search
type SearchQuestionsRequest struct {
	SearchTerm *string `json:"searchTerm" validate:"required"`
}

// QuestionListResponse is the body of GET /questions
type QuestionListResponse struct {
	Questions       []domain.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	Categories      []domain.Category `json:"categories"`
	CurrentCategory domain.Category   `json:"current_category"`
}

// DeleteQuestionResponse is the body of DELETE /questions/:id
type DeleteQuestionResponse struct {
	Success        bool              `json:"success"`
	Deleted        int               `json:"deleted"`
	Questions      []domain.Question `json:"questions"`
	TotalQuestions int               `json:"total_questions"`
}

// CreateQuestionResponse is the body of POST /questions
type CreateQuestionResponse struct {
	Success        bool              `json:"success"`
	Created        int               `json:"created"`
	Questions      []domain.Question `json:"questions"`
	TotalQuestions int               `json:"total_questions"`
}

// SearchQuestionsResponse is the body of POST /questions/search
type SearchQuestionsResponse struct {
	Success        bool              `json:"success"`
	Questions      []domain.Question `json:"questions"`
	TotalQuestions int               `json:"total_questions"`
}

// ListQuestions returns a page of all questions, newest first
func (h *QuestionHandler) ListQuestions(c echo.Context) error {
	listing, err := h.trivia.ListQuestions(c.Request().Context(), page(c))
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return echo.NewHTTPError(http.StatusNotFound).SetInternal(err)
		}
		return serverError(err)
	}

	return c.JSON(http.StatusOK, QuestionListResponse{
		Questions:       listing.Questions,
		TotalQuestions:  listing.Total,
		Categories:      listing.Categories,
		CurrentCategory: listing.CurrentCategory,
	})
}

// DeleteQuestion removes a question
func (h *QuestionHandler) DeleteQuestion(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	remaining, err := h.trivia.DeleteQuestion(c.Request().Context(), id, page(c))
	if err != nil {
		if errors.Is(err, domain.ErrQuestionNotFound) {
			return echo.NewHTTPError(http.StatusNotFound).SetInternal(err)
		}
		return serverError(err)
	}

	return c.JSON(http.StatusOK, DeleteQuestionResponse{
		Success:        true,
		Deleted:        id,
		Questions:      remaining.Questions,
		TotalQuestions: remaining.Total,
	})
}

// CreateQuestion stores a new question
func (h *QuestionHandler) CreateQuestion(c echo.Context) error {
	var req CreateQuestionRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	created, questions, err := h.trivia.CreateQuestion(c.Request().Context(), service.NewQuestion{
		Question:   *req.Question,
		Answer:     *req.Answer,
		Category:   int(*req.Category),
		Difficulty: int(*req.Difficulty),
	}, page(c))
	if err != nil {
		return serverError(err)
	}

	return c.JSON(http.StatusOK, CreateQuestionResponse{
		Success:        true,
		Created:        created.ID,
		Questions:      questions.Questions,
		TotalQuestions: questions.Total,
	})
}

// SearchQuestions finds questions whose text contains the search term
func (h *QuestionHandler) SearchQuestions(c echo.Context) error {
	var req SearchQuestionsRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	found, err := h.trivia.SearchQuestions(c.Request().Context(), *req.SearchTerm, page(c))
	if err != nil {
		return serverError(err)
	}

	return c.JSON(http.StatusOK, SearchQuestionsResponse{
		Success:        true,
		Questions:      found.Questions,
		TotalQuestions: found.Total,
	})
}
