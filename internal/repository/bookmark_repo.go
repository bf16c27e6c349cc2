package repository

import (
	"context"
	"database/sql"

	"github.com/article-mirror-api/internal/database"
	"github.com/article-mirror-api/internal/models"
)

// bookmarkRepo is the concrete implementation of BookmarkRepository
type bookmarkRepo struct {
	db *database.DB
}

// NewBookmarkRepo creates a new bookmark repository
func NewBookmarkRepo(db *database.DB) BookmarkRepository {
	return &bookmarkRepo{db: db}
}

// Create inserts a bookmark unless the (user, article) pair already has
// one. ON CONFLICT DO NOTHING keeps the check and the insert in a
// single atomic statement; the returned bool reports whether a row was
// actually created.
func (r *bookmarkRepo) Create(ctx context.Context, bookmark *models.Bookmark) (bool, error) {
	query := `
		INSERT INTO bookmarks (user_id, article_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, article_id) DO NOTHING
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, bookmark.UserID, bookmark.ArticleID).
		Scan(&bookmark.ID, &bookmark.CreatedAt)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ListByUser retrieves the bookmarks of one user with the bookmarked
// article attached, newest first
func (r *bookmarkRepo) ListByUser(ctx context.Context, userID string) ([]*models.Bookmark, error) {
	query := `
		SELECT b.id, b.user_id, b.article_id, b.created_at,
			a.id, a.external_id, a.title, a.content, a.slug, a.excerpt,
			a.author, a.status, a.link, a.image_url, a.published_at
		FROM bookmarks b
		JOIN articles a ON a.id = b.article_id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookmarks []*models.Bookmark
	for rows.Next() {
		var bookmark models.Bookmark
		var article models.Article
		err := rows.Scan(
			&bookmark.ID, &bookmark.UserID, &bookmark.ArticleID, &bookmark.CreatedAt,
			&article.ID, &article.ExternalID, &article.Title, &article.Content,
			&article.Slug, &article.Excerpt, &article.Author, &article.Status,
			&article.Link, &article.ImageURL, &article.PublishedAt,
		)
		if err != nil {
			return nil, err
		}
		bookmark.Article = &article
		bookmarks = append(bookmarks, &bookmark)
	}

	return bookmarks, rows.Err()
}

// Delete removes a bookmark owned by the given user. Scoping the delete
// by user_id means another user's bookmark is indistinguishable from a
// missing one.
func (r *bookmarkRepo) Delete(ctx context.Context, id int64, userID string) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM bookmarks WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Count returns the total number of bookmarks
func (r *bookmarkRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM bookmarks").Scan(&count)
	return count, err
}
