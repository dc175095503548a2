package reader_db

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"reader/driver/models"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
)

func TestUpsertArticleQuery_NeverTouchesBookmarkFlag(t *testing.T) {
	// The conflict clause is what makes concurrent refresh/toggle races safe:
	// a refresh may only rewrite the non-bookmark columns.
	_, updateClause, found := strings.Cut(upsertArticleQuery, "DO UPDATE SET")
	require.True(t, found, "upsert must use ON CONFLICT DO UPDATE")
	require.NotContains(t, updateClause, "bookmarked")
	for _, column := range []string{"source_id", "source_name", "title", "url", "image_url", "published_at"} {
		require.Contains(t, updateClause, column)
	}
}

func TestReaderDBRepository_UpsertArticles(t *testing.T) {
	published := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)

	records := []models.ArticleRecord{
		{
			ID:          "https://example.com/a",
			SourceID:    "example",
			SourceName:  "Example News",
			Title:       "First",
			URL:         "https://example.com/a",
			ImageURL:    "https://example.com/a.jpg",
			PublishedAt: &published,
		},
		{
			ID:    "https://example.com/b",
			Title: "Second",
			URL:   "https://example.com/b",
		},
	}

	t.Run("commits the whole batch in one transaction", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewReaderDBRepositoryWithPool(mock)

		mock.ExpectBegin()
		for _, record := range records {
			mock.ExpectExec("INSERT INTO articles").
				WithArgs(record.ID, record.SourceID, record.SourceName, record.Title,
					record.URL, record.ImageURL, record.PublishedAt, record.Bookmarked).
				WillReturnResult(pgxmock.NewResult("INSERT", 1))
		}
		mock.ExpectCommit()

		require.NoError(t, repo.UpsertArticles(context.Background(), records))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty batch performs no write", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewReaderDBRepositoryWithPool(mock)

		require.NoError(t, repo.UpsertArticles(context.Background(), nil))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when a record fails", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewReaderDBRepositoryWithPool(mock)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO articles").
			WithArgs(records[0].ID, records[0].SourceID, records[0].SourceName, records[0].Title,
				records[0].URL, records[0].ImageURL, records[0].PublishedAt, records[0].Bookmarked).
			WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		require.Error(t, repo.UpsertArticles(context.Background(), records))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nil pool", func(t *testing.T) {
		var repo *ReaderDBRepository
		require.Error(t, repo.UpsertArticles(context.Background(), records))
	})
}
