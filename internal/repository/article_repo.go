package repository

import (
	"context"
	"database/sql"

	"github.com/article-mirror-api/internal/database"
	"github.com/article-mirror-api/internal/models"
	"github.com/lib/pq"
)

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

const articleColumns = `id, external_id, title, content, slug, excerpt, author, status, link, image_url, published_at`

// Create inserts a new article and its category associations in one
// transaction. The unique constraint on external_id makes concurrent
// inserts of the same upstream post fail rather than duplicate.
func (r *articleRepo) Create(ctx context.Context, article *models.Article, categoryIDs []int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO articles (external_id, title, content, slug, excerpt, author, status, link, image_url, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	err = tx.QueryRowContext(ctx, query,
		article.ExternalID, article.Title, article.Content, article.Slug,
		article.Excerpt, article.Author, article.Status, article.Link,
		article.ImageURL, article.PublishedAt,
	).Scan(&article.ID)
	if err != nil {
		return err
	}

	for _, categoryID := range categoryIDs {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO article_categories (article_id, category_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, article.ID, categoryID)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetByExternalID retrieves an article by its upstream id, with categories
func (r *articleRepo) GetByExternalID(ctx context.Context, externalID int64) (*models.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE external_id = $1`

	var article models.Article
	err := r.db.QueryRowContext(ctx, query, externalID).Scan(
		&article.ID, &article.ExternalID, &article.Title, &article.Content,
		&article.Slug, &article.Excerpt, &article.Author, &article.Status,
		&article.Link, &article.ImageURL, &article.PublishedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := r.attachCategories(ctx, []*models.Article{&article}); err != nil {
		return nil, err
	}

	return &article, nil
}

// ExistsByExternalID checks if an article with the given upstream id exists
func (r *articleRepo) ExistsByExternalID(ctx context.Context, externalID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM articles WHERE external_id = $1)", externalID).Scan(&exists)
	return exists, err
}

// List retrieves all articles, newest first
func (r *articleRepo) List(ctx context.Context) ([]*models.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles ORDER BY published_at DESC`
	return r.queryArticles(ctx, query)
}

// Search matches the query case-insensitively against title, content
// and category name
func (r *articleRepo) Search(ctx context.Context, search string) ([]*models.Article, error) {
	query := `
		SELECT DISTINCT a.id, a.external_id, a.title, a.content, a.slug, a.excerpt,
			a.author, a.status, a.link, a.image_url, a.published_at
		FROM articles a
		LEFT JOIN article_categories ac ON ac.article_id = a.id
		LEFT JOIN categories c ON c.id = ac.category_id
		WHERE a.title ILIKE '%' || $1 || '%'
			OR a.content ILIKE '%' || $1 || '%'
			OR c.name ILIKE '%' || $1 || '%'
		ORDER BY a.published_at DESC
	`
	return r.queryArticles(ctx, query, search)
}

// Count returns the total number of articles
func (r *articleRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM articles").Scan(&count)
	return count, err
}

func (r *articleRepo) queryArticles(ctx context.Context, query string, args ...interface{}) ([]*models.Article, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*models.Article
	for rows.Next() {
		var article models.Article
		err := rows.Scan(
			&article.ID, &article.ExternalID, &article.Title, &article.Content,
			&article.Slug, &article.Excerpt, &article.Author, &article.Status,
			&article.Link, &article.ImageURL, &article.PublishedAt,
		)
		if err != nil {
			return nil, err
		}
		articles = append(articles, &article)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachCategories(ctx, articles); err != nil {
		return nil, err
	}

	return articles, nil
}

// attachCategories loads category associations for a batch of articles
// with a single query
func (r *articleRepo) attachCategories(ctx context.Context, articles []*models.Article) error {
	if len(articles) == 0 {
		return nil
	}

	byID := make(map[int64]*models.Article, len(articles))
	ids := make([]int64, 0, len(articles))
	for _, a := range articles {
		a.Categories = []models.Category{}
		byID[a.ID] = a
		ids = append(ids, a.ID)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT ac.article_id, c.id, c.name
		FROM article_categories ac
		JOIN categories c ON c.id = ac.category_id
		WHERE ac.article_id = ANY($1)
	`, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var articleID int64
		var category models.Category
		if err := rows.Scan(&articleID, &category.ID, &category.Name); err != nil {
			return err
		}
		if article, ok := byID[articleID]; ok {
			article.Categories = append(article.Categories, category)
		}
	}

	return rows.Err()
}
