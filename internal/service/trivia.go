package service

import (
	"context"
	"log/slog"
	"math/rand"

	"github.com/Nazehs/trivia-app/internal/domain"
	"github.com/Nazehs/trivia-app/internal/events"
	"github.com/Nazehs/trivia-app/internal/pagination"
)

// QuizStrategy selects the next quiz question among the eligible ones
type QuizStrategy int

const (
	// QuizFirst returns the first eligible question on the requested page
	QuizFirst QuizStrategy = iota
	// QuizRandom draws uniformly from all eligible questions
	QuizRandom
)

// QuestionPage is one page of a question listing plus the pre-pagination count
type QuestionPage struct {
	Questions []domain.Question
	Total     int
}

// QuestionListing is the full question listing with category context
type QuestionListing struct {
	QuestionPage
	Categories      []domain.Category
	CurrentCategory domain.Category
}

// CategoryQuestions is a page of the questions in one category
type CategoryQuestions struct {
	QuestionPage
	Category domain.Category
}

// NewQuestion holds the fields of a question to create
type NewQuestion struct {
	Question   string
	Answer     string
	Category   int
	Difficulty int
}

// TriviaService implements the question bank operations
type TriviaService struct {
	categories domain.CategoryRepository
	questions  domain.QuestionRepository
	publisher  events.Publisher
	strategy   QuizStrategy
	log        *slog.Logger
}

// Option configures a TriviaService
type Option func(*TriviaService)

// WithPublisher sets where question change events are published
func WithPublisher(p events.Publisher) Option {
	return func(s *TriviaService) {
		s.publisher = p
	}
}

// WithQuizStrategy sets how the quiz picks its next question
func WithQuizStrategy(strategy QuizStrategy) Option {
	return func(s *TriviaService) {
		s.strategy = strategy
	}
}

// NewTriviaService creates a new trivia service
func NewTriviaService(categories domain.CategoryRepository, questions domain.QuestionRepository, log *slog.Logger, opts ...Option) *TriviaService {
	s := &TriviaService{
		categories: categories,
		questions:  questions,
		publisher:  events.Discard,
		strategy:   QuizFirst,
		log:        log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListCategories returns one page of categories
func (s *TriviaService) ListCategories(ctx context.Context, page int) ([]domain.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	return pagination.Page(categories, page), nil
}

// ListQuestions returns one page of all questions, newest first, with every
// category and the lowest-id category as the current one
func (s *TriviaService) ListQuestions(ctx context.Context, page int) (*QuestionListing, error) {
	current, err := s.categories.First(ctx)
	if err != nil {
		return nil, err
	}

	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}

	questions, err := s.newestFirst(ctx, page)
	if err != nil {
		return nil, err
	}

	return &QuestionListing{
		QuestionPage:    *questions,
		Categories:      categories,
		CurrentCategory: *current,
	}, nil
}

// DeleteQuestion removes a question and returns a page of what remains
func (s *TriviaService) DeleteQuestion(ctx context.Context, id, page int) (*QuestionPage, error) {
	if _, err := s.questions.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if err := s.questions.Delete(ctx, id); err != nil {
		return nil, err
	}
	s.log.InfoContext(ctx, "question deleted", slog.Int("question_id", id))
	s.publish(ctx, events.QuestionDeleted, map[string]int{"id": id})

	return s.newestFirst(ctx, page)
}

// CreateQuestion stores a new question and returns it with a page of all questions
func (s *TriviaService) CreateQuestion(ctx context.Context, input NewQuestion, page int) (*domain.Question, *QuestionPage, error) {
	question := &domain.Question{
		Question:   input.Question,
		Answer:     input.Answer,
		Category:   input.Category,
		Difficulty: input.Difficulty,
	}
	if err := s.questions.Create(ctx, question); err != nil {
		return nil, nil, err
	}
	s.log.InfoContext(ctx, "question created",
		slog.Int("question_id", question.ID),
		slog.Int("category", question.Category),
	)
	s.publish(ctx, events.QuestionCreated, question)

	questions, err := s.newestFirst(ctx, page)
	if err != nil {
		return nil, nil, err
	}
	return question, questions, nil
}

// SearchQuestions returns one page of the questions whose text contains term, ignoring case
func (s *TriviaService) SearchQuestions(ctx context.Context, term string, page int) (*QuestionPage, error) {
	questions, err := s.questions.List(ctx, domain.QuestionFilter{SearchTerm: &term})
	if err != nil {
		return nil, err
	}
	return newPage(questions, page), nil
}

// QuestionsByCategory returns one page of the questions in a category
func (s *TriviaService) QuestionsByCategory(ctx context.Context, categoryID, page int) (*CategoryQuestions, error) {
	category, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	questions, err := s.questions.List(ctx, domain.QuestionFilter{CategoryID: &categoryID})
	if err != nil {
		return nil, err
	}

	return &CategoryQuestions{
		QuestionPage: *newPage(questions, page),
		Category:     *category,
	}, nil
}

// NextQuizQuestion picks a question from the category that is not in
// previous. It returns nil when the category is exhausted.
func (s *TriviaService) NextQuizQuestion(ctx context.Context, categoryID int, previous []int, page int) (*domain.Question, error) {
	candidates, err := s.questions.List(ctx, domain.QuestionFilter{
		CategoryID: &categoryID,
		ExcludeIDs: previous,
	})
	if err != nil {
		return nil, err
	}

	if s.strategy == QuizRandom {
		if len(candidates) == 0 {
			return nil, nil
		}
		return &candidates[rand.Intn(len(candidates))], nil
	}

	current := pagination.Page(candidates, page)
	if len(current) == 0 {
		return nil, nil
	}
	return &current[0], nil
}

func (s *TriviaService) newestFirst(ctx context.Context, page int) (*QuestionPage, error) {
	questions, err := s.questions.List(ctx, domain.QuestionFilter{Order: domain.OrderIDDesc})
	if err != nil {
		return nil, err
	}
	return newPage(questions, page), nil
}

// publish notifies subscribers; failures are logged and never fail the caller
func (s *TriviaService) publish(ctx context.Context, eventType string, payload any) {
	event, err := events.New(eventType, payload)
	if err == nil {
		err = s.publisher.Publish(ctx, event)
	}
	if err != nil {
		s.log.WarnContext(ctx, "failed to publish question event",
			slog.String("type", eventType),
			slog.String("error", err.Error()),
		)
	}
}

func newPage(questions []domain.Question, page int) *QuestionPage {
	return &QuestionPage{
		Questions: pagination.Page(questions, page),
		Total:     len(questions),
	}
}
