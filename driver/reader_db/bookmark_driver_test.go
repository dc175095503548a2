package reader_db

import (
	"context"
	"errors"
	"testing"
	"time"

	"reader/driver/models"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
)

func TestReaderDBRepository_SetBookmark(t *testing.T) {
	tests := []struct {
		name       string
		bookmarked bool
	}{
		{name: "set flag", bookmarked: true},
		{name: "clear flag", bookmarked: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			repo := NewReaderDBRepositoryWithPool(mock)

			mock.ExpectExec("UPDATE articles SET bookmarked =").
				WithArgs("https://example.com/a", tt.bookmarked).
				WillReturnResult(pgxmock.NewResult("UPDATE", 1))

			require.NoError(t, repo.SetBookmark(context.Background(), "https://example.com/a", tt.bookmarked))
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}

	t.Run("clearing a missing record is a no-op", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewReaderDBRepositoryWithPool(mock)

		mock.ExpectExec("UPDATE articles SET bookmarked =").
			WithArgs("unknown", false).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		require.NoError(t, repo.SetBookmark(context.Background(), "unknown", false))
	})
}

func TestReaderDBRepository_InsertBookmarked(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewReaderDBRepositoryWithPool(mock)

	published := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)
	record := models.ArticleRecord{
		ID:          "https://example.com/a",
		SourceID:    "example",
		SourceName:  "Example News",
		Title:       "Title",
		URL:         "https://example.com/a",
		PublishedAt: &published,
	}

	mock.ExpectExec("INSERT INTO articles.*ON CONFLICT \\(id\\) DO UPDATE SET bookmarked = TRUE").
		WithArgs(record.ID, record.SourceID, record.SourceName, record.Title,
			record.URL, record.ImageURL, record.PublishedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.InsertBookmarked(context.Background(), record))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReaderDBRepository_FetchBookmarkedArticles(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewReaderDBRepositoryWithPool(mock)

	published := time.Date(2025, 9, 16, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT.*FROM articles.*WHERE bookmarked = TRUE.*ORDER BY published_at DESC NULLS LAST").
		WillReturnRows(pgxmock.NewRows(articleColumns()).
			AddRow("https://example.com/a", "src", "Source", "Saved", "https://example.com/a", "", &published, true))

	records, err := repo.FetchBookmarkedArticles(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.True(t, records[0].Bookmarked)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReaderDBRepository_IsBookmarked(t *testing.T) {
	t.Run("flag set", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewReaderDBRepositoryWithPool(mock)

		mock.ExpectQuery("SELECT bookmarked FROM articles WHERE id =").
			WithArgs("https://example.com/a").
			WillReturnRows(pgxmock.NewRows([]string{"bookmarked"}).AddRow(true))

		bookmarked, err := repo.IsBookmarked(context.Background(), "https://example.com/a")
		require.NoError(t, err)
		require.True(t, bookmarked)
	})

	t.Run("unknown id is not bookmarked", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewReaderDBRepositoryWithPool(mock)

		mock.ExpectQuery("SELECT bookmarked FROM articles WHERE id =").
			WithArgs("unknown").
			WillReturnRows(pgxmock.NewRows([]string{"bookmarked"}))

		bookmarked, err := repo.IsBookmarked(context.Background(), "unknown")
		require.NoError(t, err)
		require.False(t, bookmarked)
	})

	t.Run("storage error reaches the caller", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewReaderDBRepositoryWithPool(mock)

		mock.ExpectQuery("SELECT bookmarked FROM articles WHERE id =").
			WithArgs("https://example.com/a").
			WillReturnError(errors.New("connection reset"))

		_, err = repo.IsBookmarked(context.Background(), "https://example.com/a")
		require.Error(t, err)
	})
}
