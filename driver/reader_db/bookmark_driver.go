package reader_db

import (
	"context"
	"errors"

	"reader/driver/models"
	"reader/utils/logger"

	"github.com/jackc/pgx/v5"
)

const setBookmarkQuery = `
	UPDATE articles SET bookmarked = $2, updated_at = now() WHERE id = $1
`

// insertBookmarkedQuery force-upserts a record with the flag set. Used only
// when bookmarking an article that is not yet cached; an existing record just
// has its flag raised.
const insertBookmarkedQuery = `
	INSERT INTO articles (id, source_id, source_name, title, url, image_url, published_at, bookmarked)
	VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)
	ON CONFLICT (id) DO UPDATE SET bookmarked = TRUE, updated_at = now()
`

const fetchBookmarkedQuery = `
	SELECT id, source_id, source_name, title, url, image_url, published_at, bookmarked
	FROM articles
	WHERE bookmarked = TRUE
	ORDER BY published_at DESC NULLS LAST, id ASC
`

const isBookmarkedQuery = `
	SELECT bookmarked FROM articles WHERE id = $1 LIMIT 1
`

// SetBookmark sets or clears the bookmark flag for the given identity.
// Idempotent; updating a missing record is a no-op.
func (r *ReaderDBRepository) SetBookmark(ctx context.Context, id string, bookmarked bool) error {
	if r == nil || r.pool == nil {
		return errors.New("database connection not available")
	}

	if _, err := r.pool.Exec(ctx, setBookmarkQuery, id, bookmarked); err != nil {
		logger.SafeErrorContext(ctx, "Error setting bookmark flag", "error", err, "article_id", id, "bookmarked", bookmarked)
		return err
	}

	return nil
}

// InsertBookmarked creates the record with the bookmark flag set, raising the
// flag on an existing record instead of duplicating it.
func (r *ReaderDBRepository) InsertBookmarked(ctx context.Context, record models.ArticleRecord) error {
	if r == nil || r.pool == nil {
		return errors.New("database connection not available")
	}

	if _, err := r.pool.Exec(ctx, insertBookmarkedQuery,
		record.ID,
		record.SourceID,
		record.SourceName,
		record.Title,
		record.URL,
		record.ImageURL,
		record.PublishedAt,
	); err != nil {
		logger.SafeErrorContext(ctx, "Error inserting bookmarked article", "error", err, "article_id", record.ID)
		return err
	}

	return nil
}

// FetchBookmarkedArticles returns every record with the flag set, newest first.
func (r *ReaderDBRepository) FetchBookmarkedArticles(ctx context.Context) ([]models.ArticleRecord, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	rows, err := r.pool.Query(ctx, fetchBookmarkedQuery)
	if err != nil {
		logger.SafeErrorContext(ctx, "Error fetching bookmarked articles", "error", err)
		return nil, err
	}
	defer rows.Close()

	return scanArticleRecords(rows)
}

// IsBookmarked reports the stored flag for the given identity. An unknown id
// is simply not bookmarked; storage errors are returned to the caller, which
// owns the lenient-read policy.
func (r *ReaderDBRepository) IsBookmarked(ctx context.Context, id string) (bool, error) {
	if r == nil || r.pool == nil {
		return false, errors.New("database connection not available")
	}

	var bookmarked bool
	err := r.pool.QueryRow(ctx, isBookmarkedQuery, id).Scan(&bookmarked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	return bookmarked, nil
}
