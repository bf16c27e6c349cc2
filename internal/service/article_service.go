package service

import (
	"context"
	"strings"

	"github.com/article-mirror-api/internal/models"
	"github.com/article-mirror-api/internal/repository"
	"github.com/rs/zerolog"
)

// articleService is the concrete implementation of ArticleService
type articleService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// newArticleService creates a new ArticleService
func newArticleService(repos *repository.Repositories, log zerolog.Logger) *articleService {
	return &articleService{
		repos: repos,
		log:   log.With().Str("service", "article").Logger(),
	}
}

// GetByExternalID retrieves one article by its upstream id
func (s *articleService) GetByExternalID(ctx context.Context, externalID int64) (*models.Article, error) {
	article, err := s.repos.Article.GetByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrNotFound
	}
	return article, nil
}

// List returns all articles, or the matching ones when search is
// non-empty. Matching is a case-insensitive substring check over title,
// content and category name.
func (s *articleService) List(ctx context.Context, search string) ([]*models.Article, error) {
	search = strings.TrimSpace(search)
	if search == "" {
		return s.repos.Article.List(ctx)
	}
	return s.repos.Article.Search(ctx, search)
}
