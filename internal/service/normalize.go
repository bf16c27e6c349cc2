package service

import (
	"fmt"
	"time"

	"github.com/article-mirror-api/internal/models"
	"github.com/article-mirror-api/internal/wordpress"
)

// upstreamTimeLayout is the naive timestamp format of the WordPress
// date_gmt field.
const upstreamTimeLayout = "2006-01-02T15:04:05"

// NormalizeArticle converts one upstream post record into an Article
// ready to persist. Missing status, excerpt and author become empty
// strings. A malformed date_gmt is a hard failure for this one item.
func NormalizeArticle(post *wordpress.Post) (*models.Article, error) {
	publishedAt, err := parsePublishedAt(post.DateGMT)
	if err != nil {
		return nil, fmt.Errorf("post %d: %w", post.ID, err)
	}

	return &models.Article{
		ExternalID:  post.ID,
		Title:       post.Title.Rendered,
		Content:     post.Content.Rendered,
		Slug:        post.Slug,
		Excerpt:     post.Excerpt.Rendered,
		Author:      post.Author.String(),
		Status:      post.Status,
		Link:        post.Link,
		PublishedAt: publishedAt,
	}, nil
}

// parsePublishedAt parses date_gmt as a naive timestamp and attaches
// UTC. This labels the value rather than converting it, matching the
// upstream contract where date_gmt is already expressed in GMT.
func parsePublishedAt(dateGMT string) (time.Time, error) {
	t, err := time.ParseInLocation(upstreamTimeLayout, dateGMT, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date_gmt %q: %w", dateGMT, err)
	}
	return t, nil
}
