package reader_db

import (
	"context"
	"errors"

	"reader/driver/models"
	"reader/utils/logger"
)

// upsertArticleQuery reconciles one fetched article with its stored record.
// The conflict clause deliberately leaves the bookmarked column alone: the
// flag in storage is the single source of truth for bookmark state and a
// refresh must never overwrite it.
const upsertArticleQuery = `
	INSERT INTO articles (id, source_id, source_name, title, url, image_url, published_at, bookmarked)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (id) DO UPDATE SET
		source_id = EXCLUDED.source_id,
		source_name = EXCLUDED.source_name,
		title = EXCLUDED.title,
		url = EXCLUDED.url,
		image_url = EXCLUDED.image_url,
		published_at = EXCLUDED.published_at,
		updated_at = now()
`

// UpsertArticles merges a fetched batch into storage as a single transaction.
// Existing records keep their bookmark flag; new records are inserted with
// the flag the incoming article carries (false for remote data). Records
// absent from the batch are left untouched. An empty batch performs no write.
func (r *ReaderDBRepository) UpsertArticles(ctx context.Context, records []models.ArticleRecord) (err error) {
	if r == nil || r.pool == nil {
		return errors.New("database connection not available")
	}

	if len(records) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		logger.SafeErrorContext(ctx, "Error starting transaction", "error", err)
		return err
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && rbErr.Error() != "tx is closed" {
				logger.SafeWarnContext(ctx, "Error rolling back transaction", "error", rbErr)
			}
		}
	}()

	for _, record := range records {
		if _, err = tx.Exec(ctx, upsertArticleQuery,
			record.ID,
			record.SourceID,
			record.SourceName,
			record.Title,
			record.URL,
			record.ImageURL,
			record.PublishedAt,
			record.Bookmarked,
		); err != nil {
			logger.SafeErrorContext(ctx, "Error upserting article", "error", err, "article_id", record.ID)
			return err
		}
	}

	if err = tx.Commit(ctx); err != nil {
		logger.SafeErrorContext(ctx, "Error committing transaction", "error", err)
		return err
	}

	return nil
}
