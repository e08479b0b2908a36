package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Nazehs/trivia-app/internal/domain"
	"github.com/Nazehs/trivia-app/internal/service"
)

// QuizHandler serves quiz questions
type QuizHandler struct {
	trivia *service.TriviaService
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(trivia *service.TriviaService) *QuizHandler {
	return &QuizHandler{trivia: trivia}
}

// Register registers the quiz routes
func (h *QuizHandler) Register(e *echo.Echo) {
	e.POST("/quizzes", h.NextQuestion)
}

// QuizCategory identifies the category being played
type QuizCategory struct {
	ID   *jsonInt `json:"id" validate:"required"`
	Type string   `json:"type"`
}

// QuizRequest represents a request for the next quiz question
type QuizRequest struct {
	QuizCategory      *QuizCategory `json:"quiz_category" validate:"required"`
	PreviousQuestions []int         `json:"previous_questions" validate:"required"`
}

// QuizResponse is the body of POST /quizzes. Question is null once the
// category has no unasked questions left.
type QuizResponse struct {
	Success  bool             `json:"success"`
	Question *domain.Question `json:"question"`
}

// NextQuestion returns a question from the category not asked before
func (h *QuizHandler) NextQuestion(c echo.Context) error {
	var req QuizRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	question, err := h.trivia.NextQuizQuestion(c.Request().Context(), int(*req.QuizCategory.ID), req.PreviousQuestions, page(c))
	if err != nil {
		return serverError(err)
	}

	return c.JSON(http.StatusOK, QuizResponse{
		Success:  true,
		Question: question,
	})
}
