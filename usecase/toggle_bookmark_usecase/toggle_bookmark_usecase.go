package toggle_bookmark_usecase

import (
	"context"
	"strings"

	"reader/domain"
	"reader/port/article_cache_port"
	"reader/port/event_bus_port"
	"reader/utils/errors"
	"reader/utils/metrics"
)

// ToggleBookmarkUsecase flips an article's bookmark flag. The current flag is
// read first, so toggling converges on last writer wins when two toggles
// race. A bookmarks-changed event is published only after the write lands;
// failed toggles stay silent.
type ToggleBookmarkUsecase struct {
	cache   article_cache_port.ArticleCachePort
	bus     event_bus_port.EventBusPort
	metrics *metrics.Metrics
}

func NewToggleBookmarkUsecase(cache article_cache_port.ArticleCachePort, bus event_bus_port.EventBusPort, m *metrics.Metrics) *ToggleBookmarkUsecase {
	return &ToggleBookmarkUsecase{cache: cache, bus: bus, metrics: m}
}

// Execute returns the flag's new value.
func (u *ToggleBookmarkUsecase) Execute(ctx context.Context, article domain.Article) (bool, error) {
	if strings.TrimSpace(article.ID) == "" {
		return false, errors.InvalidRequestError("article id cannot be empty", errors.ErrInvalidInput, nil)
	}

	var err error
	bookmarked := u.cache.IsBookmarked(ctx, article.ID)
	if bookmarked {
		err = u.cache.RemoveBookmark(ctx, article.ID)
	} else {
		err = u.cache.AddBookmark(ctx, article)
	}
	if err != nil {
		return bookmarked, err
	}

	u.bus.Publish(domain.EventBookmarksChanged)
	u.metrics.BusPublishes.Inc()
	return !bookmarked, nil
}
