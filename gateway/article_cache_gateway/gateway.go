// Package article_cache_gateway implements the offline-first article
// repository: it reconciles the remote feed with durable storage and owns
// every bookmark flag write.
package article_cache_gateway

import (
	"context"

	"reader/domain"
	"reader/driver/models"
	"reader/driver/reader_db"
	"reader/port/news_source_port"
	"reader/utils/errors"
	"reader/utils/logger"
	"reader/utils/metrics"
)

// articleStore is the durable store contract the gateway consumes. Satisfied
// by reader_db.ReaderDBRepository; declared here so tests can substitute it.
type articleStore interface {
	UpsertArticles(ctx context.Context, records []models.ArticleRecord) error
	FetchAllArticles(ctx context.Context) ([]models.ArticleRecord, error)
	FetchArticleByID(ctx context.Context, id string) (*models.ArticleRecord, error)
	SetBookmark(ctx context.Context, id string, bookmarked bool) error
	InsertBookmarked(ctx context.Context, record models.ArticleRecord) error
	FetchBookmarkedArticles(ctx context.Context) ([]models.ArticleRecord, error)
	IsBookmarked(ctx context.Context, id string) (bool, error)
}

type ArticleCacheGateway struct {
	newsSource news_source_port.NewsSourcePort
	store      articleStore
	metrics    *metrics.Metrics
}

func NewArticleCacheGateway(newsSource news_source_port.NewsSourcePort, store *reader_db.ReaderDBRepository, m *metrics.Metrics) *ArticleCacheGateway {
	return &ArticleCacheGateway{
		newsSource: newsSource,
		store:      store,
		metrics:    m,
	}
}

// FetchArticles fetches the remote feed, merges the batch into storage, and
// returns the full cached set newest first. If the remote call fails, storage
// is untouched. The merge is an upsert reconciliation: existing records keep
// their bookmark flag and records absent from the batch are not evicted.
func (g *ArticleCacheGateway) FetchArticles(ctx context.Context, region string) ([]domain.Article, error) {
	fresh, err := g.newsSource.Fetch(ctx, region)
	if err != nil {
		g.metrics.RemoteFetches.WithLabelValues("failure").Inc()
		return nil, err
	}
	g.metrics.RemoteFetches.WithLabelValues("success").Inc()

	records := make([]models.ArticleRecord, 0, len(fresh))
	for _, article := range fresh {
		records = append(records, models.FromDomain(article))
	}

	if err := g.store.UpsertArticles(ctx, records); err != nil {
		return nil, errors.StoreError("failed to merge fetched articles", err, map[string]interface{}{
			"region":     region,
			"batch_size": len(records),
		})
	}
	g.metrics.MergeBatches.Inc()
	g.metrics.ArticlesUpserted.Add(float64(len(records)))

	return g.FetchCachedArticles(ctx)
}

// FetchCachedArticles reads the durable store only; no network call.
func (g *ArticleCacheGateway) FetchCachedArticles(ctx context.Context) ([]domain.Article, error) {
	records, err := g.store.FetchAllArticles(ctx)
	if err != nil {
		return nil, errors.StoreError("failed to read cached articles", err, nil)
	}
	return recordsToDomain(records), nil
}

// AddBookmark sets the bookmark flag, creating the record first when the
// article is not yet cached.
func (g *ArticleCacheGateway) AddBookmark(ctx context.Context, article domain.Article) error {
	_, err := g.store.FetchArticleByID(ctx, article.ID)
	switch {
	case err == nil:
		err = g.store.SetBookmark(ctx, article.ID, true)
	case errors.IsArticleNotFound(err):
		err = g.store.InsertBookmarked(ctx, models.FromDomain(article))
	default:
		return errors.StoreError("failed to look up article for bookmark", err, map[string]interface{}{
			"article_id": article.ID,
		})
	}
	if err != nil {
		return errors.StoreError("failed to add bookmark", err, map[string]interface{}{
			"article_id": article.ID,
		})
	}

	g.metrics.BookmarkToggles.WithLabelValues("add").Inc()
	return nil
}

// RemoveBookmark clears the flag. The record is kept; clearing an unknown
// identity is a no-op.
func (g *ArticleCacheGateway) RemoveBookmark(ctx context.Context, id string) error {
	if err := g.store.SetBookmark(ctx, id, false); err != nil {
		return errors.StoreError("failed to remove bookmark", err, map[string]interface{}{
			"article_id": id,
		})
	}

	g.metrics.BookmarkToggles.WithLabelValues("remove").Inc()
	return nil
}

// FetchBookmarks returns all bookmarked articles, newest first.
func (g *ArticleCacheGateway) FetchBookmarks(ctx context.Context) ([]domain.Article, error) {
	records, err := g.store.FetchBookmarkedArticles(ctx)
	if err != nil {
		return nil, errors.StoreError("failed to read bookmarks", err, nil)
	}
	return recordsToDomain(records), nil
}

// IsBookmarked treats a storage error as "not bookmarked": the caller is
// about to toggle and a wrong false only risks re-adding a bookmark, while a
// propagated error would make every toggle unsafe to attempt.
func (g *ArticleCacheGateway) IsBookmarked(ctx context.Context, id string) bool {
	bookmarked, err := g.store.IsBookmarked(ctx, id)
	if err != nil {
		logger.SafeWarnContext(ctx, "Bookmark lookup failed, treating as not bookmarked", "error", err, "article_id", id)
		return false
	}
	return bookmarked
}

func recordsToDomain(records []models.ArticleRecord) []domain.Article {
	articles := make([]domain.Article, 0, len(records))
	for _, record := range records {
		articles = append(articles, record.ToDomain())
	}
	return articles
}
