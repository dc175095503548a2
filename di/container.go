package di

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"

	"reader/config"
	"reader/driver/event_bus"
	"reader/driver/news_api"
	"reader/driver/reader_db"
	"reader/driver/rss_source"
	"reader/gateway/article_cache_gateway"
	"reader/port/event_bus_port"
	"reader/port/news_source_port"
	"reader/usecase/fetch_articles_usecase"
	"reader/usecase/fetch_bookmarks_usecase"
	"reader/usecase/toggle_bookmark_usecase"
	"reader/utils/httpclient"
	"reader/utils/metrics"
)

type ApplicationComponents struct {
	FetchArticlesUsecase  *fetch_articles_usecase.FetchArticlesUsecase
	FetchBookmarksUsecase *fetch_bookmarks_usecase.FetchBookmarksUsecase
	ToggleBookmarkUsecase *toggle_bookmark_usecase.ToggleBookmarkUsecase
	ReaderDBRepository    *reader_db.ReaderDBRepository
	EventBus              event_bus_port.EventBusPort
	Metrics               *metrics.Metrics
	MetricsRegistry       *prometheus.Registry
}

func NewApplicationComponents(pool *pgxpool.Pool, cfg *config.Config) *ApplicationComponents {
	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	httpClient := httpclient.New(httpclient.Options{
		ClientTimeout:       cfg.HTTP.ClientTimeout,
		DialTimeout:         cfg.HTTP.DialTimeout,
		TLSHandshakeTimeout: cfg.HTTP.TLSHandshakeTimeout,
		IdleConnTimeout:     cfg.HTTP.IdleConnTimeout,
	})

	var newsSource news_source_port.NewsSourcePort
	if cfg.NewsSource.Mode == "rss" {
		newsSource = rss_source.NewClient(httpClient, cfg.RSS)
	} else {
		newsSource = news_api.NewClient(httpClient, cfg.NewsSource)
	}

	readerDBRepository := reader_db.NewReaderDBRepository(pool)
	articleCacheGateway := article_cache_gateway.NewArticleCacheGateway(newsSource, readerDBRepository, m)

	bus := event_bus.NewInMemoryBus()

	fetchArticlesUsecase := fetch_articles_usecase.NewFetchArticlesUsecase(articleCacheGateway)
	fetchBookmarksUsecase := fetch_bookmarks_usecase.NewFetchBookmarksUsecase(articleCacheGateway)
	toggleBookmarkUsecase := toggle_bookmark_usecase.NewToggleBookmarkUsecase(articleCacheGateway, bus, m)

	return &ApplicationComponents{
		FetchArticlesUsecase:  fetchArticlesUsecase,
		FetchBookmarksUsecase: fetchBookmarksUsecase,
		ToggleBookmarkUsecase: toggleBookmarkUsecase,
		ReaderDBRepository:    readerDBRepository,
		EventBus:              bus,
		Metrics:               m,
		MetricsRegistry:       registry,
	}
}
