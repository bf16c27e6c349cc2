package mocks

import (
	"context"

	"github.com/article-mirror-api/internal/models"
	"github.com/article-mirror-api/internal/service"
)

// MockArticleService is a mock implementation of ArticleService
type MockArticleService struct {
	GetFunc  func(ctx context.Context, externalID int64) (*models.Article, error)
	ListFunc func(ctx context.Context, search string) ([]*models.Article, error)
}

// Verify interface compliance
var _ service.ArticleService = (*MockArticleService)(nil)

func (m *MockArticleService) GetByExternalID(ctx context.Context, externalID int64) (*models.Article, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, externalID)
	}
	return nil, service.ErrNotFound
}

func (m *MockArticleService) List(ctx context.Context, search string) ([]*models.Article, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, search)
	}
	return []*models.Article{}, nil
}

// MockCommentService is a mock implementation of CommentService
type MockCommentService struct {
	ListFunc   func(ctx context.Context, externalID int64) ([]*models.Comment, error)
	CreateFunc func(ctx context.Context, externalID int64, input *models.CommentInput) (*models.Comment, error)
}

// Verify interface compliance
var _ service.CommentService = (*MockCommentService)(nil)

func (m *MockCommentService) ListForArticle(ctx context.Context, externalID int64) ([]*models.Comment, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, externalID)
	}
	return []*models.Comment{}, nil
}

func (m *MockCommentService) Create(ctx context.Context, externalID int64, input *models.CommentInput) (*models.Comment, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, externalID, input)
	}
	return nil, service.ErrNotFound
}

// MockBookmarkService is a mock implementation of BookmarkService
type MockBookmarkService struct {
	CreateFunc func(ctx context.Context, userID string, input *models.BookmarkInput) (*models.Bookmark, error)
	ListFunc   func(ctx context.Context, userID string) ([]*models.Bookmark, error)
	DeleteFunc func(ctx context.Context, userID string, id int64) error
}

// Verify interface compliance
var _ service.BookmarkService = (*MockBookmarkService)(nil)

func (m *MockBookmarkService) Create(ctx context.Context, userID string, input *models.BookmarkInput) (*models.Bookmark, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, userID, input)
	}
	return nil, service.ErrNotFound
}

func (m *MockBookmarkService) List(ctx context.Context, userID string) ([]*models.Bookmark, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID)
	}
	return []*models.Bookmark{}, nil
}

func (m *MockBookmarkService) Delete(ctx context.Context, userID string, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, id)
	}
	return service.ErrNotFound
}

// MockSyncService is a mock implementation of SyncService
type MockSyncService struct {
	SyncFunc  func(ctx context.Context) (*service.SyncResult, error)
	SyncCalls int
	Started   bool
}

// Verify interface compliance
var _ service.SyncService = (*MockSyncService)(nil)

func (m *MockSyncService) Sync(ctx context.Context) (*service.SyncResult, error) {
	m.SyncCalls++
	if m.SyncFunc != nil {
		return m.SyncFunc(ctx)
	}
	return &service.SyncResult{}, nil
}

func (m *MockSyncService) StartScheduler() error {
	m.Started = true
	return nil
}

func (m *MockSyncService) StopScheduler() {
	m.Started = false
}

// MockStatsService is a mock implementation of StatsService
type MockStatsService struct {
	CountsMap map[string]int
}

// Verify interface compliance
var _ service.StatsService = (*MockStatsService)(nil)

func (m *MockStatsService) Counts(ctx context.Context) (map[string]int, error) {
	if m.CountsMap != nil {
		return m.CountsMap, nil
	}
	return map[string]int{}, nil
}
