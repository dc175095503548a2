package reader_db

import (
	"context"
	"errors"

	"reader/driver/models"
	"reader/utils/logger"
)

// Cached articles are always served newest first. Articles without a
// published timestamp sort last; the id tiebreak keeps the order stable.
const fetchAllArticlesQuery = `
	SELECT id, source_id, source_name, title, url, image_url, published_at, bookmarked
	FROM articles
	ORDER BY published_at DESC NULLS LAST, id ASC
`

// FetchAllArticles returns the full cached article set, newest first.
func (r *ReaderDBRepository) FetchAllArticles(ctx context.Context) ([]models.ArticleRecord, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	rows, err := r.pool.Query(ctx, fetchAllArticlesQuery)
	if err != nil {
		logger.SafeErrorContext(ctx, "Error fetching cached articles", "error", err)
		return nil, err
	}
	defer rows.Close()

	return scanArticleRecords(rows)
}
