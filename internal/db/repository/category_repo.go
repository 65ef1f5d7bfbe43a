package repository

import (
	"context"
	"fmt"

	"github.com/Reomar/trivia-api/internal/trivia"
)

// CategoryRepository is the pgx-backed category store. Categories have no
// write path here; they are seeded by migration.
type CategoryRepository struct {
	db querier
}

var _ trivia.CategoryStore = (*CategoryRepository)(nil)

func NewCategoryRepository(db querier) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// ListAll returns every category ordered by id.
func (r *CategoryRepository) ListAll(ctx context.Context) ([]trivia.Category, error) {
	rows, err := r.db.Query(ctx, "SELECT id, type FROM categories ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var categories []trivia.Category
	for rows.Next() {
		var c trivia.Category
		if err := rows.Scan(&c.ID, &c.Type); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return categories, nil
}

// Exists reports whether a category id is known. Used to enforce referential
// integrity at question insert time.
func (r *CategoryRepository) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1)", id).Scan(&exists); err != nil {
		return false, fmt.Errorf("check category: %w", err)
	}
	return exists, nil
}
