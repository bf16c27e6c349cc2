package benchmark

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/article-mirror-api/internal/mocks"
	"github.com/article-mirror-api/internal/models"
	"github.com/article-mirror-api/internal/service"
	"github.com/article-mirror-api/internal/validation"
	"github.com/article-mirror-api/internal/wordpress"
)

// BenchmarkNormalizeArticle benchmarks normalization of an upstream post
func BenchmarkNormalizeArticle(b *testing.B) {
	post := &wordpress.Post{
		ID:      1234,
		Slug:    "quarterly-report",
		Link:    "https://example.com/quarterly-report",
		Status:  "publish",
		DateGMT: "2026-03-15T09:30:00",
		Title:   wordpress.Rendered{Rendered: "Quarterly report"},
		Content: wordpress.Rendered{Rendered: "<p>Numbers going up across the board this quarter.</p>"},
		Excerpt: wordpress.Rendered{Rendered: "<p>Numbers going up.</p>"},
		Author:  json.Number("7"),
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := service.NormalizeArticle(post); err != nil {
			b.Fatalf("NormalizeArticle failed: %v", err)
		}
	}
}

// BenchmarkSearch benchmarks search over 1000 stored articles
func BenchmarkSearch(b *testing.B) {
	mockArticleRepo := mocks.NewMockArticleRepository()
	for i := 0; i < 1000; i++ {
		mockArticleRepo.Create(context.Background(), &models.Article{
			ExternalID:  int64(i + 1),
			Title:       fmt.Sprintf("Article %d", i),
			Content:     fmt.Sprintf("Body text for article number %d with some filler words", i),
			Slug:        fmt.Sprintf("article-%d", i),
			Status:      "publish",
			PublishedAt: time.Now().Add(-time.Duration(i) * time.Minute),
			Categories:  []models.Category{{ID: int64(i%10 + 1), Name: fmt.Sprintf("category-%d", i%10)}},
		}, []int64{int64(i%10 + 1)})
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		results, err := mockArticleRepo.Search(context.Background(), "category-3")
		if err != nil {
			b.Fatalf("Search failed: %v", err)
		}
		if len(results) == 0 {
			b.Fatal("Search returned no results")
		}
	}

	b.ReportMetric(float64(1000*b.N)/b.Elapsed().Seconds(), "rows/sec")
}

// BenchmarkValidateComment benchmarks comment input validation
func BenchmarkValidateComment(b *testing.B) {
	input := &models.CommentInput{
		Name:  "Reader",
		Email: "reader@example.com",
		Body:  "Good piece, the figures in the third paragraph were new to me.",
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if errs := validation.ValidateComment(input); len(errs) != 0 {
			b.Fatalf("Unexpected validation errors: %v", errs)
		}
	}
}
