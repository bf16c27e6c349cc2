package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/article-mirror-api/internal/config"
	"github.com/article-mirror-api/internal/repository"
	"github.com/article-mirror-api/internal/wordpress"
	"github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// uniqueViolation is the PostgreSQL error code for unique constraint
// violations.
const uniqueViolation = "23505"

// SyncResult summarizes one ingestion run.
type SyncResult struct {
	Fetched int `json:"fetched"`
	Created int `json:"created"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

// UpstreamClient is the slice of the WordPress client the pipeline needs.
type UpstreamClient interface {
	FetchPosts(ctx context.Context) ([]wordpress.Post, error)
	FetchMedia(ctx context.Context, href string) (*wordpress.Media, error)
	FetchTerms(ctx context.Context, href string) ([]wordpress.Term, error)
}

// syncService is the concrete implementation of SyncService
type syncService struct {
	repos  *repository.Repositories
	client UpstreamClient
	cfg    *config.SyncConfig
	log    zerolog.Logger

	// runLock keeps at most one sync in flight; overlapping scheduler
	// ticks and manual triggers are rejected rather than queued.
	runLock sync.Mutex

	cron *cron.Cron
}

// newSyncService creates a new SyncService
func newSyncService(repos *repository.Repositories, client UpstreamClient, cfg *config.SyncConfig, log zerolog.Logger) *syncService {
	return &syncService{
		repos:  repos,
		client: client,
		cfg:    cfg,
		log:    log.With().Str("service", "sync").Logger(),
	}
}

// Sync fetches the upstream posts listing and persists every post not
// yet mirrored. A list fetch failure aborts the run; per-item failures
// are logged and do not block the rest of the batch. Re-running against
// the same payload creates nothing new.
func (s *syncService) Sync(ctx context.Context) (*SyncResult, error) {
	if !s.runLock.TryLock() {
		return nil, ErrSyncInProgress
	}
	defer s.runLock.Unlock()

	startTime := time.Now()

	posts, err := s.client.FetchPosts(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("Upstream list fetch failed, aborting run")
		return nil, err
	}

	result := &SyncResult{Fetched: len(posts)}

	for i := range posts {
		post := &posts[i]

		exists, err := s.repos.Article.ExistsByExternalID(ctx, post.ID)
		if err != nil {
			result.Failed++
			s.log.Error().Err(err).Int64("external_id", post.ID).Msg("Dedup check failed")
			continue
		}
		if exists {
			result.Skipped++
			continue
		}

		article, err := NormalizeArticle(post)
		if err != nil {
			result.Failed++
			s.log.Error().Err(err).Int64("external_id", post.ID).Msg("Skipping malformed post")
			continue
		}

		// Enrichment failures degrade the optional fields but the
		// article is still ingested.
		article.ImageURL = s.resolveFeaturedMedia(ctx, post)
		categoryIDs := s.resolveCategories(ctx, post)

		if err := s.repos.Article.Create(ctx, article, categoryIDs); err != nil {
			if isUniqueViolation(err) {
				// A concurrent run got there first.
				result.Skipped++
				continue
			}
			result.Failed++
			s.log.Error().Err(err).Int64("external_id", post.ID).Msg("Failed to persist article")
			continue
		}

		result.Created++
	}

	s.log.Info().
		Int("fetched", result.Fetched).
		Int("created", result.Created).
		Int("skipped", result.Skipped).
		Int("failed", result.Failed).
		Dur("duration", time.Since(startTime)).
		Msg("Sync completed")

	return result, nil
}

// resolveFeaturedMedia fetches the first featured-media link of a post
// and extracts its source URL. Any failure yields an empty string.
func (s *syncService) resolveFeaturedMedia(ctx context.Context, post *wordpress.Post) string {
	link, found := lo.Find(post.Links.FeaturedMedia, func(l wordpress.Link) bool {
		return l.Href != ""
	})
	if !found {
		return ""
	}

	media, err := s.client.FetchMedia(ctx, link.Href)
	if err != nil {
		s.log.Warn().Err(err).Int64("external_id", post.ID).Msg("Featured media fetch failed")
		return ""
	}

	return media.SourceURL
}

// resolveCategories fetches the first wp:term link with the category
// taxonomy and upserts a Category per returned term. Failures yield an
// empty set rather than aborting the item.
func (s *syncService) resolveCategories(ctx context.Context, post *wordpress.Post) []int64 {
	link, found := lo.Find(post.Links.Terms, func(l wordpress.Link) bool {
		return l.Taxonomy == "category" && l.Href != ""
	})
	if !found {
		return nil
	}

	terms, err := s.client.FetchTerms(ctx, link.Href)
	if err != nil {
		s.log.Warn().Err(err).Int64("external_id", post.ID).Msg("Category terms fetch failed")
		return nil
	}

	names := lo.Uniq(lo.FilterMap(terms, func(t wordpress.Term, _ int) (string, bool) {
		return t.Slug, t.Slug != ""
	}))

	var categoryIDs []int64
	for _, name := range names {
		category, err := s.repos.Category.GetOrCreate(ctx, name)
		if err != nil {
			s.log.Warn().Err(err).Str("category", name).Msg("Category upsert failed")
			continue
		}
		categoryIDs = append(categoryIDs, category.ID)
	}

	return categoryIDs
}

// StartScheduler begins invoking Sync at the configured interval.
// Nothing runs at startup; the first run happens one interval in.
func (s *syncService) StartScheduler() error {
	if s.cron != nil {
		return nil
	}

	s.cron = cron.New()
	_, err := s.cron.AddFunc(fmt.Sprintf("@every %s", s.cfg.Interval), func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Interval)
		defer cancel()

		if _, err := s.Sync(ctx); err != nil && !errors.Is(err, ErrSyncInProgress) {
			s.log.Error().Err(err).Msg("Scheduled sync failed")
		}
	})
	if err != nil {
		s.cron = nil
		return err
	}

	s.cron.Start()
	s.log.Info().Dur("interval", s.cfg.Interval).Msg("Sync scheduler started")
	return nil
}

// StopScheduler stops the scheduler and waits for an in-flight run to
// finish.
func (s *syncService) StopScheduler() {
	if s.cron == nil {
		return
	}

	<-s.cron.Stop().Done()
	s.cron = nil
	s.log.Info().Msg("Sync scheduler stopped")
}

// isUniqueViolation reports whether err is a PostgreSQL unique
// constraint violation.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation
}
