package repository

import (
	"context"

	"github.com/article-mirror-api/internal/database"
	"github.com/article-mirror-api/internal/models"
)

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db *database.DB
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{db: db}
}

// Create inserts a new comment. Timestamps are assigned by the database
// so created/updated never go backwards.
func (r *commentRepo) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (article_id, name, email, body, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created, updated
	`
	return r.db.QueryRowContext(ctx, query,
		comment.ArticleID, comment.Name, comment.Email, comment.Body, comment.Active,
	).Scan(&comment.ID, &comment.Created, &comment.Updated)
}

// ListActiveByArticle retrieves the active comments of an article,
// oldest first
func (r *commentRepo) ListActiveByArticle(ctx context.Context, articleID int64) ([]*models.Comment, error) {
	query := `
		SELECT id, article_id, name, email, body, active, created, updated
		FROM comments
		WHERE article_id = $1 AND active = TRUE
		ORDER BY created ASC
	`
	rows, err := r.db.QueryContext(ctx, query, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		var comment models.Comment
		err := rows.Scan(
			&comment.ID, &comment.ArticleID, &comment.Name, &comment.Email,
			&comment.Body, &comment.Active, &comment.Created, &comment.Updated,
		)
		if err != nil {
			return nil, err
		}
		comments = append(comments, &comment)
	}

	return comments, rows.Err()
}

// Count returns the total number of comments
func (r *commentRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM comments").Scan(&count)
	return count, err
}
