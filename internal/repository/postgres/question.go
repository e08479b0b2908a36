package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/Nazehs/trivia-app/internal/domain"
)

// QuestionRepository implements the domain.QuestionRepository interface
type QuestionRepository struct {
	db DB
}

// NewQuestionRepository creates a new question repository
func NewQuestionRepository(db DB) *QuestionRepository {
	return &QuestionRepository{
		db: db,
	}
}

// List retrieves all questions matching the filter
func (r *QuestionRepository) List(ctx context.Context, filter domain.QuestionFilter) ([]domain.Question, error) {
	if filter.CategoryID != nil && !fitsInt4(*filter.CategoryID) {
		return []domain.Question{}, nil
	}

	query, args := buildListQuery(filter)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	defer rows.Close()

	questions := []domain.Question{}
	for rows.Next() {
		var question domain.Question
		if err := rows.Scan(
			&question.ID,
			&question.Question,
			&question.Answer,
			&question.Category,
			&question.Difficulty,
		); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, question)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating questions: %w", err)
	}

	return questions, nil
}

// GetByID retrieves a question by its ID
func (r *QuestionRepository) GetByID(ctx context.Context, id int) (*domain.Question, error) {
	if !fitsInt4(id) {
		return nil, domain.ErrQuestionNotFound
	}

	var question domain.Question
	err := r.db.QueryRow(ctx, `
		SELECT id, question, answer, category, difficulty
		FROM questions
		WHERE id = $1
	`, id).Scan(
		&question.ID,
		&question.Question,
		&question.Answer,
		&question.Category,
		&question.Difficulty,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}
	return &question, nil
}

// Create creates a new question
func (r *QuestionRepository) Create(ctx context.Context, question *domain.Question) error {
	query := `
		INSERT INTO questions (question, answer, category, difficulty)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		question.Question,
		question.Answer,
		question.Category,
		question.Difficulty,
	).Scan(&question.ID)
	if err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}
	return nil
}

// Delete deletes a question
func (r *QuestionRepository) Delete(ctx context.Context, id int) error {
	if !fitsInt4(id) {
		return domain.ErrQuestionNotFound
	}

	query := `DELETE FROM questions WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrQuestionNotFound
	}
	return nil
}

// buildListQuery renders the filter as a SELECT with positional arguments
func buildListQuery(filter domain.QuestionFilter) (string, []any) {
	var (
		conditions []string
		args       []any
	)

	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.SearchTerm != nil {
		args = append(args, likePattern(*filter.SearchTerm))
		conditions = append(conditions, fmt.Sprintf("question ILIKE $%d", len(args)))
	}
	// Out of range ids cannot match a stored question
	excluded := make([]int, 0, len(filter.ExcludeIDs))
	for _, id := range filter.ExcludeIDs {
		if fitsInt4(id) {
			excluded = append(excluded, id)
		}
	}
	if len(excluded) > 0 {
		args = append(args, excluded)
		conditions = append(conditions, fmt.Sprintf("id <> ALL($%d)", len(args)))
	}

	var b strings.Builder
	b.WriteString("SELECT id, question, answer, category, difficulty FROM questions")
	if len(conditions) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(conditions, " AND "))
	}
	if filter.Order == domain.OrderIDDesc {
		b.WriteString(" ORDER BY id DESC")
	} else {
		b.WriteString(" ORDER BY id ASC")
	}

	return b.String(), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern wraps term for a substring ILIKE match with wildcards escaped
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
