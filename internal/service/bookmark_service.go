package service

import (
	"context"

	"github.com/article-mirror-api/internal/models"
	"github.com/article-mirror-api/internal/repository"
	"github.com/article-mirror-api/internal/validation"
	"github.com/rs/zerolog"
)

// bookmarkService is the concrete implementation of BookmarkService
type bookmarkService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// newBookmarkService creates a new BookmarkService
func newBookmarkService(repos *repository.Repositories, log zerolog.Logger) *bookmarkService {
	return &bookmarkService{
		repos: repos,
		log:   log.With().Str("service", "bookmark").Logger(),
	}
}

// Create bookmarks an article, identified by its upstream id, for the
// given user. Bookmarking an already-bookmarked article returns
// ErrAlreadyExists and leaves the existing row untouched.
func (s *bookmarkService) Create(ctx context.Context, userID string, input *models.BookmarkInput) (*models.Bookmark, error) {
	if fieldErrors := validation.ValidateBookmark(input); len(fieldErrors) > 0 {
		return nil, &ValidationFailedError{Errors: fieldErrors}
	}

	article, err := s.repos.Article.GetByExternalID(ctx, input.ArticleID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrNotFound
	}

	bookmark := &models.Bookmark{
		UserID:    userID,
		ArticleID: article.ID,
	}

	created, err := s.repos.Bookmark.Create(ctx, bookmark)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, ErrAlreadyExists
	}

	bookmark.Article = article

	s.log.Info().
		Int64("bookmark_id", bookmark.ID).
		Int64("external_id", input.ArticleID).
		Msg("Bookmark created")

	return bookmark, nil
}

// List returns the bookmarks of the requesting user only
func (s *bookmarkService) List(ctx context.Context, userID string) ([]*models.Bookmark, error) {
	bookmarks, err := s.repos.Bookmark.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if bookmarks == nil {
		bookmarks = []*models.Bookmark{}
	}
	return bookmarks, nil
}

// Delete removes one of the user's own bookmarks. A bookmark that does
// not exist or belongs to someone else is reported as not found either
// way, so existence never leaks across users.
func (s *bookmarkService) Delete(ctx context.Context, userID string, id int64) error {
	deleted, err := s.repos.Bookmark.Delete(ctx, id, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}

	s.log.Info().Int64("bookmark_id", id).Msg("Bookmark deleted")
	return nil
}
