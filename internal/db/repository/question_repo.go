package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Reomar/trivia-api/internal/trivia"
)

// querier is the subset of pgxpool.Pool the repositories need.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// QuestionRepository is the pgx-backed question store. All filtering is
// compiled to parameterized SQL; user input never lands in the query text.
type QuestionRepository struct {
	db querier
}

var _ trivia.QuestionStore = (*QuestionRepository)(nil)

func NewQuestionRepository(db querier) *QuestionRepository {
	return &QuestionRepository{db: db}
}

const questionColumns = "id, question, answer, difficulty, category_id"

// List returns every question matching the filter, ordered by id ascending so
// page boundaries are deterministic.
func (r *QuestionRepository) List(ctx context.Context, f trivia.Filter) ([]trivia.Question, error) {
	where, args := filterConditions(f)
	query := "SELECT " + questionColumns + " FROM questions" + where + " ORDER BY id ASC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	var questions []trivia.Question
	for rows.Next() {
		var q trivia.Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.Difficulty, &q.Category); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}
	return questions, nil
}

// Insert persists a new question and returns it with the store-assigned id.
func (r *QuestionRepository) Insert(ctx context.Context, in trivia.CreateQuestionInput) (trivia.Question, error) {
	row := r.db.QueryRow(ctx,
		"INSERT INTO questions (question, answer, difficulty, category_id) VALUES ($1, $2, $3, $4) RETURNING "+questionColumns,
		in.Question, in.Answer, in.Difficulty, in.Category,
	)
	var q trivia.Question
	if err := row.Scan(&q.ID, &q.Question, &q.Answer, &q.Difficulty, &q.Category); err != nil {
		return trivia.Question{}, fmt.Errorf("insert question: %w", err)
	}
	return q, nil
}

// Delete removes a question by id, reporting trivia.ErrNotFound when no row
// was deleted.
func (r *QuestionRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM questions WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete question: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return trivia.ErrNotFound
	}
	return nil
}

// filterConditions compiles a trivia.Filter into a WHERE clause with
// positional arguments. An empty filter yields an empty clause.
func filterConditions(f trivia.Filter) (string, []any) {
	var (
		conds []string
		args  []any
	)

	if f.CategoryID != trivia.AllCategories {
		args = append(args, f.CategoryID)
		conds = append(conds, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, f.Search)
		conds = append(conds, fmt.Sprintf("question ILIKE '%%' || $%d || '%%'", len(args)))
	}
	if len(f.ExcludeIDs) > 0 {
		args = append(args, f.ExcludeIDs)
		conds = append(conds, fmt.Sprintf("NOT (id = ANY($%d))", len(args)))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
