package service

import (
	"context"

	"github.com/article-mirror-api/internal/repository"
	"github.com/rs/zerolog"
)

// statsService is the concrete implementation of StatsService
type statsService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// newStatsService creates a new StatsService
func newStatsService(repos *repository.Repositories, log zerolog.Logger) *statsService {
	return &statsService{
		repos: repos,
		log:   log.With().Str("service", "stats").Logger(),
	}
}

// Counts returns the row count per resource
func (s *statsService) Counts(ctx context.Context) (map[string]int, error) {
	articles, err := s.repos.Article.Count(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.repos.Category.Count(ctx)
	if err != nil {
		return nil, err
	}
	comments, err := s.repos.Comment.Count(ctx)
	if err != nil {
		return nil, err
	}
	bookmarks, err := s.repos.Bookmark.Count(ctx)
	if err != nil {
		return nil, err
	}

	return map[string]int{
		"articles":   articles,
		"categories": categories,
		"comments":   comments,
		"bookmarks":  bookmarks,
	}, nil
}
