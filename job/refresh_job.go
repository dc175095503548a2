// Package job hosts the background refresh loop that keeps the article cache
// warm without a client asking for it.
package job

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"reader/config"
	"reader/usecase/fetch_articles_usecase"
	"reader/utils/errors"
	"reader/utils/logger"
)

// regionFetchConcurrency caps the parallel remote fetches per refresh cycle.
const regionFetchConcurrency = 3

// ArticleRefreshJobRunner refreshes the cache for every configured region on
// a fixed interval, starting with an immediate run. Each cycle gets its own
// timeout; a failed region does not abort the others.
func ArticleRefreshJobRunner(ctx context.Context, usecase *fetch_articles_usecase.FetchArticlesUsecase, cfg config.JobsConfig) {
	interval := cfg.RefreshInterval
	if interval <= 0 {
		interval = 30 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.SafeInfoContext(ctx, "Starting initial article refresh", "regions", cfg.RefreshRegions)
	refreshAllRegions(ctx, usecase, cfg)

	for {
		select {
		case <-ctx.Done():
			logger.SafeInfoContext(ctx, "Stopping article refresh job")
			return
		case <-ticker.C:
			logger.SafeInfoContext(ctx, "Starting scheduled article refresh", "regions", cfg.RefreshRegions)
			refreshAllRegions(ctx, usecase, cfg)
		}
	}
}

func refreshAllRegions(ctx context.Context, usecase *fetch_articles_usecase.FetchArticlesUsecase, cfg config.JobsConfig) {
	runCtx, cancel := context.WithTimeout(ctx, cfg.RefreshTimeout)
	defer cancel()

	g, gctx := errgroup.WithContext(runCtx)
	g.SetLimit(regionFetchConcurrency)

	for _, region := range cfg.RefreshRegionList() {
		region := region
		g.Go(func() error {
			articles, err := usecase.Execute(gctx, region)
			if err != nil {
				logger.SafeErrorContext(gctx, "Article refresh failed",
					"region", region, "error", err, "retryable", errors.IsRetryableError(err))
				// keep the other regions running
				return nil
			}
			logger.SafeInfoContext(gctx, "Article refresh completed", "region", region, "articles", len(articles))
			return nil
		})
	}

	_ = g.Wait()
}
