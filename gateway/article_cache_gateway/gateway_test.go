package article_cache_gateway

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"reader/domain"
	"reader/driver/models"
	"reader/utils/errors"
	"reader/utils/metrics"
)

type fakeNewsSource struct {
	articles []domain.Article
	err      error
	calls    int
}

func (f *fakeNewsSource) Fetch(ctx context.Context, region string) ([]domain.Article, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.articles, nil
}

type fakeStore struct {
	upserted       [][]models.ArticleRecord
	upsertErr      error
	all            []models.ArticleRecord
	allErr         error
	byID           map[string]*models.ArticleRecord
	byIDErr        error
	setBookmarks   []string
	setBookmarkErr error
	inserted       []models.ArticleRecord
	insertErr      error
	bookmarked     []models.ArticleRecord
	bookmarkedErr  error
	isBookmarked   bool
	isBookmarkErr  error
}

func (f *fakeStore) UpsertArticles(ctx context.Context, records []models.ArticleRecord) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserted = append(f.upserted, records)
	return nil
}

func (f *fakeStore) FetchAllArticles(ctx context.Context) ([]models.ArticleRecord, error) {
	return f.all, f.allErr
}

func (f *fakeStore) FetchArticleByID(ctx context.Context, id string) (*models.ArticleRecord, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	record, ok := f.byID[id]
	if !ok {
		return nil, errors.ErrArticleNotFound
	}
	return record, nil
}

func (f *fakeStore) SetBookmark(ctx context.Context, id string, bookmarked bool) error {
	if f.setBookmarkErr != nil {
		return f.setBookmarkErr
	}
	f.setBookmarks = append(f.setBookmarks, id)
	return nil
}

func (f *fakeStore) InsertBookmarked(ctx context.Context, record models.ArticleRecord) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, record)
	return nil
}

func (f *fakeStore) FetchBookmarkedArticles(ctx context.Context) ([]models.ArticleRecord, error) {
	return f.bookmarked, f.bookmarkedErr
}

func (f *fakeStore) IsBookmarked(ctx context.Context, id string) (bool, error) {
	return f.isBookmarked, f.isBookmarkErr
}

func newTestGateway(source *fakeNewsSource, store *fakeStore) *ArticleCacheGateway {
	return &ArticleCacheGateway{
		newsSource: source,
		store:      store,
		metrics:    metrics.NewNop(),
	}
}

func testArticle(id string) domain.Article {
	published := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	return domain.Article{
		ID:          id,
		Source:      &domain.ArticleSource{Name: "Example Wire"},
		Title:       "Title " + id,
		URL:         id,
		PublishedAt: &published,
	}
}

func TestFetchArticles_MergesBatchAndReturnsCachedSet(t *testing.T) {
	fresh := []domain.Article{testArticle("https://example.com/a"), testArticle("https://example.com/b")}
	cached := []models.ArticleRecord{
		models.FromDomain(testArticle("https://example.com/a")),
		models.FromDomain(testArticle("https://example.com/old")),
	}
	cached[1].Bookmarked = true

	source := &fakeNewsSource{articles: fresh}
	store := &fakeStore{all: cached}
	gateway := newTestGateway(source, store)

	got, err := gateway.FetchArticles(context.Background(), "us")

	require.NoError(t, err)
	require.Len(t, store.upserted, 1)
	require.Len(t, store.upserted[0], 2)
	require.Len(t, got, 2)
	require.True(t, got[1].Bookmarked, "articles absent from the batch keep their bookmark flag")
}

func TestFetchArticles_RemoteFailureLeavesStoreUntouched(t *testing.T) {
	source := &fakeNewsSource{err: errors.NetworkError("connection refused", nil, nil)}
	store := &fakeStore{}
	gateway := newTestGateway(source, store)

	_, err := gateway.FetchArticles(context.Background(), "us")

	require.Error(t, err)
	require.True(t, errors.IsNetworkError(err))
	require.Empty(t, store.upserted)
}

func TestFetchArticles_UpsertFailureSurfacesAsStoreError(t *testing.T) {
	source := &fakeNewsSource{articles: []domain.Article{testArticle("https://example.com/a")}}
	store := &fakeStore{upsertErr: errors.ErrStoreUnavailable}
	gateway := newTestGateway(source, store)

	_, err := gateway.FetchArticles(context.Background(), "us")

	require.Error(t, err)
	require.True(t, errors.IsStoreError(err))
}

func TestFetchCachedArticles_ReturnsStoreContentsWithoutNetwork(t *testing.T) {
	source := &fakeNewsSource{}
	store := &fakeStore{all: []models.ArticleRecord{models.FromDomain(testArticle("https://example.com/a"))}}
	gateway := newTestGateway(source, store)

	got, err := gateway.FetchCachedArticles(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Zero(t, source.calls)
}

func TestAddBookmark_SetsFlagOnCachedArticle(t *testing.T) {
	article := testArticle("https://example.com/a")
	record := models.FromDomain(article)
	store := &fakeStore{byID: map[string]*models.ArticleRecord{article.ID: &record}}
	gateway := newTestGateway(&fakeNewsSource{}, store)

	err := gateway.AddBookmark(context.Background(), article)

	require.NoError(t, err)
	require.Equal(t, []string{article.ID}, store.setBookmarks)
	require.Empty(t, store.inserted)
}

func TestAddBookmark_InsertsWhenArticleNotCached(t *testing.T) {
	article := testArticle("https://example.com/new")
	store := &fakeStore{byID: map[string]*models.ArticleRecord{}}
	gateway := newTestGateway(&fakeNewsSource{}, store)

	err := gateway.AddBookmark(context.Background(), article)

	require.NoError(t, err)
	require.Empty(t, store.setBookmarks)
	require.Len(t, store.inserted, 1)
	require.Equal(t, article.ID, store.inserted[0].ID)
}

func TestAddBookmark_LookupFailureIsStoreError(t *testing.T) {
	store := &fakeStore{byIDErr: errors.ErrStoreUnavailable}
	gateway := newTestGateway(&fakeNewsSource{}, store)

	err := gateway.AddBookmark(context.Background(), testArticle("https://example.com/a"))

	require.Error(t, err)
	require.True(t, errors.IsStoreError(err))
}

func TestRemoveBookmark_ClearsFlag(t *testing.T) {
	store := &fakeStore{}
	gateway := newTestGateway(&fakeNewsSource{}, store)

	err := gateway.RemoveBookmark(context.Background(), "https://example.com/a")

	require.NoError(t, err)
	require.Equal(t, []string{"https://example.com/a"}, store.setBookmarks)
}

func TestFetchBookmarks_ReturnsOnlyBookmarkedArticles(t *testing.T) {
	record := models.FromDomain(testArticle("https://example.com/a"))
	record.Bookmarked = true
	store := &fakeStore{bookmarked: []models.ArticleRecord{record}}
	gateway := newTestGateway(&fakeNewsSource{}, store)

	got, err := gateway.FetchBookmarks(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	require.True(t, got[0].Bookmarked)
}

func TestIsBookmarked_ErrorReadsAsFalse(t *testing.T) {
	store := &fakeStore{isBookmarked: true, isBookmarkErr: errors.ErrStoreUnavailable}
	gateway := newTestGateway(&fakeNewsSource{}, store)

	require.False(t, gateway.IsBookmarked(context.Background(), "https://example.com/a"))
}

func TestIsBookmarked_ReportsStoredFlag(t *testing.T) {
	store := &fakeStore{isBookmarked: true}
	gateway := newTestGateway(&fakeNewsSource{}, store)

	require.True(t, gateway.IsBookmarked(context.Background(), "https://example.com/a"))
}
