package service

import (
	"context"
	"strings"

	"github.com/article-mirror-api/internal/models"
	"github.com/article-mirror-api/internal/repository"
	"github.com/article-mirror-api/internal/validation"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
)

// commentService is the concrete implementation of CommentService
type commentService struct {
	repos     *repository.Repositories
	sanitizer *bluemonday.Policy
	log       zerolog.Logger
}

// newCommentService creates a new CommentService
func newCommentService(repos *repository.Repositories, log zerolog.Logger) *commentService {
	return &commentService{
		repos: repos,
		// Comments are user-generated content; strip all markup before
		// storage. Upstream article HTML is never sanitized.
		sanitizer: bluemonday.StrictPolicy(),
		log:       log.With().Str("service", "comment").Logger(),
	}
}

// ListForArticle returns the active comments of an article identified
// by its upstream id, oldest first
func (s *commentService) ListForArticle(ctx context.Context, externalID int64) ([]*models.Comment, error) {
	article, err := s.repos.Article.GetByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrNotFound
	}

	comments, err := s.repos.Comment.ListActiveByArticle(ctx, article.ID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []*models.Comment{}
	}
	return comments, nil
}

// Create validates and stores a new comment under an article. New
// comments are active and immediately visible; moderation happens
// elsewhere.
func (s *commentService) Create(ctx context.Context, externalID int64, input *models.CommentInput) (*models.Comment, error) {
	if fieldErrors := validation.ValidateComment(input); len(fieldErrors) > 0 {
		return nil, &ValidationFailedError{Errors: fieldErrors}
	}

	article, err := s.repos.Article.GetByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrNotFound
	}

	comment := &models.Comment{
		ArticleID: article.ID,
		Name:      s.sanitizer.Sanitize(strings.TrimSpace(input.Name)),
		Email:     strings.TrimSpace(input.Email),
		Body:      s.sanitizer.Sanitize(strings.TrimSpace(input.Body)),
		Active:    true,
	}

	if err := s.repos.Comment.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.log.Info().
		Int64("comment_id", comment.ID).
		Int64("external_id", externalID).
		Msg("Comment created")

	return comment, nil
}
