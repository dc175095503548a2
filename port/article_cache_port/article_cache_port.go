package article_cache_port

import (
	"context"

	"reader/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=article_cache_port.go -destination=../../mocks/mock_article_cache_port.go -package=mocks

// ArticleCachePort is the offline-first article repository: the only
// component allowed to write bookmark flags into storage.
type ArticleCachePort interface {
	// FetchArticles fetches the remote feed for a region, merges it into the
	// durable store preserving bookmark flags, and returns the full cached
	// set ordered newest first. A remote failure leaves storage untouched.
	FetchArticles(ctx context.Context, region string) ([]domain.Article, error)

	// FetchCachedArticles returns the cached set without any network call.
	FetchCachedArticles(ctx context.Context) ([]domain.Article, error)

	// AddBookmark sets the bookmark flag for the article, creating the
	// record first if it is not yet cached. Idempotent.
	AddBookmark(ctx context.Context, article domain.Article) error

	// RemoveBookmark clears the bookmark flag for the identity. Idempotent;
	// the record itself is kept.
	RemoveBookmark(ctx context.Context, id string) error

	// FetchBookmarks returns all bookmarked articles, ordered newest first.
	FetchBookmarks(ctx context.Context) ([]domain.Article, error)

	// IsBookmarked reports the stored flag for the identity. Storage errors
	// are treated as "not bookmarked" rather than propagated.
	IsBookmarked(ctx context.Context, id string) bool
}
