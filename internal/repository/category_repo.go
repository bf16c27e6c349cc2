package repository

import (
	"context"

	"github.com/article-mirror-api/internal/database"
	"github.com/article-mirror-api/internal/models"
)

// categoryRepo is the concrete implementation of CategoryRepository
type categoryRepo struct {
	db *database.DB
}

// NewCategoryRepo creates a new category repository
func NewCategoryRepo(db *database.DB) CategoryRepository {
	return &categoryRepo{db: db}
}

// GetOrCreate returns the category with the given name, creating it if
// absent. The upsert resolves the lookup and insert in one statement,
// so concurrent callers racing on the same name always converge on a
// single row.
func (r *categoryRepo) GetOrCreate(ctx context.Context, name string) (*models.Category, error) {
	query := `
		INSERT INTO categories (name)
		VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, name
	`

	var category models.Category
	if err := r.db.QueryRowContext(ctx, query, name).Scan(&category.ID, &category.Name); err != nil {
		return nil, err
	}

	return &category, nil
}

// Count returns the total number of categories
func (r *categoryRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM categories").Scan(&count)
	return count, err
}
