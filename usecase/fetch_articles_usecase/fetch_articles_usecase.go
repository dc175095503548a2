package fetch_articles_usecase

import (
	"context"
	"strings"

	"reader/domain"
	"reader/port/article_cache_port"
	"reader/utils/errors"
)

// FetchArticlesUsecase loads articles for the feed screen. ExecuteCached
// serves whatever the store holds; Execute refreshes from the remote feed
// first and then serves the merged set.
type FetchArticlesUsecase struct {
	cache article_cache_port.ArticleCachePort
}

func NewFetchArticlesUsecase(cache article_cache_port.ArticleCachePort) *FetchArticlesUsecase {
	return &FetchArticlesUsecase{cache: cache}
}

func (u *FetchArticlesUsecase) Execute(ctx context.Context, region string) ([]domain.Article, error) {
	if strings.TrimSpace(region) == "" {
		return nil, errors.InvalidRequestError("region cannot be empty", errors.ErrInvalidInput, nil)
	}
	return u.cache.FetchArticles(ctx, region)
}

func (u *FetchArticlesUsecase) ExecuteCached(ctx context.Context) ([]domain.Article, error) {
	return u.cache.FetchCachedArticles(ctx)
}
