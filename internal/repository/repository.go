package repository

import (
	"context"

	"github.com/article-mirror-api/internal/database"
	"github.com/article-mirror-api/internal/models"
)

// ArticleRepository defines the interface for article data operations.
// Lookups are keyed by the upstream external id; a nil result with a
// nil error means no such article.
type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article, categoryIDs []int64) error
	GetByExternalID(ctx context.Context, externalID int64) (*models.Article, error)
	ExistsByExternalID(ctx context.Context, externalID int64) (bool, error)
	List(ctx context.Context) ([]*models.Article, error)
	Search(ctx context.Context, query string) ([]*models.Article, error)
	Count(ctx context.Context) (int, error)
}

// CategoryRepository defines the interface for category data operations
type CategoryRepository interface {
	GetOrCreate(ctx context.Context, name string) (*models.Category, error)
	Count(ctx context.Context) (int, error)
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	ListActiveByArticle(ctx context.Context, articleID int64) ([]*models.Comment, error)
	Count(ctx context.Context) (int, error)
}

// BookmarkRepository defines the interface for bookmark data operations.
// Create reports whether a new row was inserted; false means the
// (user, article) pair was already bookmarked.
type BookmarkRepository interface {
	Create(ctx context.Context, bookmark *models.Bookmark) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Bookmark, error)
	Delete(ctx context.Context, id int64, userID string) (bool, error)
	Count(ctx context.Context) (int, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Article  ArticleRepository
	Category CategoryRepository
	Comment  CommentRepository
	Bookmark BookmarkRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Article:  NewArticleRepo(db),
		Category: NewCategoryRepo(db),
		Comment:  NewCommentRepo(db),
		Bookmark: NewBookmarkRepo(db),
	}
}
