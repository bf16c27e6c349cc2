package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/article-mirror-api/internal/config"
	"github.com/article-mirror-api/internal/mocks"
	"github.com/article-mirror-api/internal/models"
	"github.com/article-mirror-api/internal/service"
	"github.com/rs/zerolog"
)

func setupBookmarkTest() (*service.Services, *mocks.MockArticleRepository, *mocks.MockBookmarkRepository) {
	articleRepo := mocks.NewMockArticleRepository()
	bookmarkRepo := mocks.NewMockBookmarkRepository()
	repos := mocks.NewRepositories(articleRepo, mocks.NewMockCategoryRepository(), mocks.NewMockCommentRepository(), bookmarkRepo)

	cfg := &config.Config{Sync: config.SyncConfig{Interval: time.Minute}}
	services := service.NewServices(repos, &mocks.MockUpstreamClient{}, cfg, zerolog.Nop())

	return services, articleRepo, bookmarkRepo
}

func TestBookmarkCreate(t *testing.T) {
	services, articleRepo, _ := setupBookmarkTest()
	seedArticle(t, articleRepo, 42)

	bookmark, err := services.Bookmark.Create(context.Background(), "user-a", &models.BookmarkInput{ArticleID: 42})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if bookmark.Article == nil || bookmark.Article.ExternalID != 42 {
		t.Error("Bookmark should carry the bookmarked article")
	}
}

func TestBookmarkCreateDuplicateIsConflict(t *testing.T) {
	services, articleRepo, bookmarkRepo := setupBookmarkTest()
	seedArticle(t, articleRepo, 42)

	if _, err := services.Bookmark.Create(context.Background(), "user-a", &models.BookmarkInput{ArticleID: 42}); err != nil {
		t.Fatalf("First create failed: %v", err)
	}

	_, err := services.Bookmark.Create(context.Background(), "user-a", &models.BookmarkInput{ArticleID: 42})
	if !errors.Is(err, service.ErrAlreadyExists) {
		t.Errorf("Expected ErrAlreadyExists, got %v", err)
	}

	count, _ := bookmarkRepo.Count(context.Background())
	if count != 1 {
		t.Errorf("Expected exactly 1 bookmark row, got %d", count)
	}
}

func TestBookmarkCreateUnknownArticle(t *testing.T) {
	services, _, _ := setupBookmarkTest()

	_, err := services.Bookmark.Create(context.Background(), "user-a", &models.BookmarkInput{ArticleID: 999})
	if !errors.Is(err, service.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestBookmarkCreateValidation(t *testing.T) {
	services, _, _ := setupBookmarkTest()

	_, err := services.Bookmark.Create(context.Background(), "user-a", &models.BookmarkInput{ArticleID: 0})

	var validationErr *service.ValidationFailedError
	if !errors.As(err, &validationErr) {
		t.Fatalf("Expected ValidationFailedError, got %v", err)
	}
}

func TestBookmarkListScopedToUser(t *testing.T) {
	services, articleRepo, _ := setupBookmarkTest()
	seedArticle(t, articleRepo, 1)
	seedArticle(t, articleRepo, 2)

	services.Bookmark.Create(context.Background(), "user-a", &models.BookmarkInput{ArticleID: 1})
	services.Bookmark.Create(context.Background(), "user-b", &models.BookmarkInput{ArticleID: 1})
	services.Bookmark.Create(context.Background(), "user-b", &models.BookmarkInput{ArticleID: 2})

	bookmarksA, err := services.Bookmark.List(context.Background(), "user-a")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(bookmarksA) != 1 {
		t.Errorf("Expected 1 bookmark for user-a, got %d", len(bookmarksA))
	}

	bookmarksB, _ := services.Bookmark.List(context.Background(), "user-b")
	if len(bookmarksB) != 2 {
		t.Errorf("Expected 2 bookmarks for user-b, got %d", len(bookmarksB))
	}
}

func TestBookmarkDeleteOwnership(t *testing.T) {
	services, articleRepo, bookmarkRepo := setupBookmarkTest()
	seedArticle(t, articleRepo, 42)

	bookmark, err := services.Bookmark.Create(context.Background(), "user-b", &models.BookmarkInput{ArticleID: 42})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// user-a deleting user-b's bookmark reports not found, row untouched
	if err := services.Bookmark.Delete(context.Background(), "user-a", bookmark.ID); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	count, _ := bookmarkRepo.Count(context.Background())
	if count != 1 {
		t.Errorf("Expected bookmark row untouched, got count %d", count)
	}

	// The owner can delete it
	if err := services.Bookmark.Delete(context.Background(), "user-b", bookmark.ID); err != nil {
		t.Errorf("Owner delete failed: %v", err)
	}
	count, _ = bookmarkRepo.Count(context.Background())
	if count != 0 {
		t.Errorf("Expected bookmark deleted, got count %d", count)
	}
}

func TestBookmarkDeleteNonexistent(t *testing.T) {
	services, _, _ := setupBookmarkTest()

	if err := services.Bookmark.Delete(context.Background(), "user-a", 12345); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}
