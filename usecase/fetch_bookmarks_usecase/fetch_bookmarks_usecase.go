package fetch_bookmarks_usecase

import (
	"context"

	"reader/domain"
	"reader/port/article_cache_port"
)

type FetchBookmarksUsecase struct {
	cache article_cache_port.ArticleCachePort
}

func NewFetchBookmarksUsecase(cache article_cache_port.ArticleCachePort) *FetchBookmarksUsecase {
	return &FetchBookmarksUsecase{cache: cache}
}

func (u *FetchBookmarksUsecase) Execute(ctx context.Context) ([]domain.Article, error) {
	return u.cache.FetchBookmarks(ctx)
}
