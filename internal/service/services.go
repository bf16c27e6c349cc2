package service

import (
	"context"

	"github.com/article-mirror-api/internal/config"
	"github.com/article-mirror-api/internal/models"
	"github.com/article-mirror-api/internal/repository"
	"github.com/rs/zerolog"
)

// ArticleService defines the interface for article queries
type ArticleService interface {
	GetByExternalID(ctx context.Context, externalID int64) (*models.Article, error)
	List(ctx context.Context, search string) ([]*models.Article, error)
}

// CommentService defines the interface for comment operations
type CommentService interface {
	ListForArticle(ctx context.Context, externalID int64) ([]*models.Comment, error)
	Create(ctx context.Context, externalID int64, input *models.CommentInput) (*models.Comment, error)
}

// BookmarkService defines the interface for bookmark operations
type BookmarkService interface {
	Create(ctx context.Context, userID string, input *models.BookmarkInput) (*models.Bookmark, error)
	List(ctx context.Context, userID string) ([]*models.Bookmark, error)
	Delete(ctx context.Context, userID string, id int64) error
}

// SyncService defines the interface for the upstream ingestion pipeline.
// Sync is trigger-agnostic; the scheduler is just one caller.
type SyncService interface {
	Sync(ctx context.Context) (*SyncResult, error)
	StartScheduler() error
	StopScheduler()
}

// StatsService reports row counts per resource
type StatsService interface {
	Counts(ctx context.Context) (map[string]int, error)
}

// Services holds all service interfaces
type Services struct {
	Article  ArticleService
	Comment  CommentService
	Bookmark BookmarkService
	Sync     SyncService
	Stats    StatsService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, client UpstreamClient, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Article:  newArticleService(repos, log),
		Comment:  newCommentService(repos, log),
		Bookmark: newBookmarkService(repos, log),
		Sync:     newSyncService(repos, client, &cfg.Sync, log),
		Stats:    newStatsService(repos, log),
	}
}
