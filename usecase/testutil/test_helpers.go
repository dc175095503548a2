package testutil

import (
	"context"
	"errors"
	"time"

	"reader/domain"
)

// Common test data generators
func CreateMockArticles() []domain.Article {
	published := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	earlier := published.Add(-2 * time.Hour)
	return []domain.Article{
		{
			ID:          "https://test.com/article1",
			Source:      &domain.ArticleSource{ID: "test-wire", Name: "Test Wire"},
			Title:       "Test Article 1",
			URL:         "https://test.com/article1",
			PublishedAt: &published,
		},
		{
			ID:          "https://test.com/article2",
			Source:      &domain.ArticleSource{Name: "Test Wire"},
			Title:       "Test Article 2",
			URL:         "https://test.com/article2",
			PublishedAt: &earlier,
			Bookmarked:  true,
		},
	}
}

func CreateSingleMockArticle() domain.Article {
	published := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	return domain.Article{
		ID:          "https://test.com/single-article",
		Source:      &domain.ArticleSource{Name: "Test Wire"},
		Title:       "Single Test Article",
		URL:         "https://test.com/single-article",
		PublishedAt: &published,
	}
}

// Common error instances
var (
	ErrMockStore   = errors.New("mock store error")
	ErrMockNetwork = errors.New("mock network error")
)

// Context utilities
func CreateCancelledContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}
