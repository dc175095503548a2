package reader_db

import (
	"context"
	"errors"
	"time"

	"reader/driver/models"
	apperrors "reader/utils/errors"
	"reader/utils/logger"

	"github.com/jackc/pgx/v5"
)

const fetchArticleByIDQuery = `
	SELECT id, source_id, source_name, title, url, image_url, published_at, bookmarked
	FROM articles
	WHERE id = $1
	LIMIT 1
`

// FetchArticleByID returns the stored record for the given identity, or
// ErrArticleNotFound when no record exists.
func (r *ReaderDBRepository) FetchArticleByID(ctx context.Context, id string) (*models.ArticleRecord, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	var record models.ArticleRecord
	var publishedAt *time.Time
	err := r.pool.QueryRow(ctx, fetchArticleByIDQuery, id).Scan(
		&record.ID,
		&record.SourceID,
		&record.SourceName,
		&record.Title,
		&record.URL,
		&record.ImageURL,
		&publishedAt,
		&record.Bookmarked,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrArticleNotFound
		}
		logger.SafeErrorContext(ctx, "Error fetching article by id", "error", err, "article_id", id)
		return nil, err
	}
	record.PublishedAt = publishedAt

	return &record, nil
}

func scanArticleRecords(rows pgx.Rows) ([]models.ArticleRecord, error) {
	records := make([]models.ArticleRecord, 0)
	for rows.Next() {
		var record models.ArticleRecord
		var publishedAt *time.Time
		if err := rows.Scan(
			&record.ID,
			&record.SourceID,
			&record.SourceName,
			&record.Title,
			&record.URL,
			&record.ImageURL,
			&publishedAt,
			&record.Bookmarked,
		); err != nil {
			return nil, err
		}
		record.PublishedAt = publishedAt
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
