// Package coordinator hosts the presentation-facing state machines. Each
// coordinator confines its article list to a single run loop goroutine;
// public methods enqueue commands and results reach the consumer through
// callbacks invoked from that loop, so callers never need their own locking.
package coordinator

import (
	"context"
	"sync"

	"reader/domain"
	"reader/port/event_bus_port"
	"reader/usecase/fetch_articles_usecase"
	"reader/usecase/fetch_bookmarks_usecase"
	"reader/usecase/toggle_bookmark_usecase"
	"reader/utils/logger"
)

// FeedCallbacks receive feed state changes. All callbacks run on the
// coordinator's run loop; nil callbacks are skipped.
type FeedCallbacks struct {
	OnLoadingStateChange func(loading bool)
	OnArticlesUpdated    func(articles []domain.Article)
	OnError              func(err error)
}

// FeedCoordinator drives the main article list: cache-then-network loading,
// in-memory search, bookmark toggling, and bookmark flag refresh when another
// component changes bookmarks.
type FeedCoordinator struct {
	articles  *fetch_articles_usecase.FetchArticlesUsecase
	bookmarks *fetch_bookmarks_usecase.FetchBookmarksUsecase
	toggle    *toggle_bookmark_usecase.ToggleBookmarkUsecase
	bus       event_bus_port.EventBusPort
	callbacks FeedCallbacks

	commands chan func(ctx context.Context)
	done     chan struct{}
	closing  sync.Once
	wg       sync.WaitGroup
	sub      event_bus_port.SubscriptionID

	// run loop confined state
	current []domain.Article
	query   string
}

func NewFeedCoordinator(
	articles *fetch_articles_usecase.FetchArticlesUsecase,
	bookmarks *fetch_bookmarks_usecase.FetchBookmarksUsecase,
	toggle *toggle_bookmark_usecase.ToggleBookmarkUsecase,
	bus event_bus_port.EventBusPort,
	callbacks FeedCallbacks,
) *FeedCoordinator {
	return &FeedCoordinator{
		articles:  articles,
		bookmarks: bookmarks,
		toggle:    toggle,
		bus:       bus,
		callbacks: callbacks,
		commands:  make(chan func(ctx context.Context), 16),
		done:      make(chan struct{}),
	}
}

// Start launches the run loop and subscribes to bookmark change events. The
// coordinator stops when ctx is cancelled or Close is called.
func (c *FeedCoordinator) Start(ctx context.Context) {
	c.sub = c.bus.Subscribe(domain.EventBookmarksChanged, func() {
		c.enqueue(c.refreshBookmarkFlags)
	})

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.run(ctx)
	}()
}

// Close stops the run loop and waits for in-flight work to drain.
func (c *FeedCoordinator) Close() {
	c.closing.Do(func() {
		c.bus.Unsubscribe(c.sub)
		close(c.done)
	})
	c.wg.Wait()
}

// Load serves the cached article set immediately, then refreshes from the
// remote feed. Any active search is cleared so the emitted sets are the full
// lists. A remote failure is reported through OnError while the cached set
// stays on screen; loading always ends in the not-loading state.
func (c *FeedCoordinator) Load(region string) {
	c.enqueue(func(ctx context.Context) {
		c.setLoading(true)
		defer c.setLoading(false)
		c.query = ""

		cached, err := c.articles.ExecuteCached(ctx)
		if err != nil {
			logger.SafeWarnContext(ctx, "Cached article read failed, falling through to remote", "error", err)
		} else if len(cached) > 0 {
			c.current = cached
			c.emitArticles()
		}

		merged, err := c.articles.Execute(ctx, region)
		if err != nil {
			c.emitError(err)
			return
		}
		c.current = merged
		c.emitArticles()
	})
}

// Refresh re-fetches from the remote feed without replaying the cache. Like
// Load it clears any active search.
func (c *FeedCoordinator) Refresh(region string) {
	c.enqueue(func(ctx context.Context) {
		c.setLoading(true)
		defer c.setLoading(false)
		c.query = ""

		merged, err := c.articles.Execute(ctx, region)
		if err != nil {
			c.emitError(err)
			return
		}
		c.current = merged
		c.emitArticles()
	})
}

// Search narrows the emitted list to articles matching query. A blank query
// restores the full list. No storage or network access is involved.
func (c *FeedCoordinator) Search(query string) {
	c.enqueue(func(ctx context.Context) {
		c.query = query
		c.emitArticles()
	})
}

// ToggleBookmark flips the article's bookmark flag on a detached goroutine so
// a slow store write never blocks the feed. The updated list arrives through
// the bookmark change event; only failures are reported directly.
func (c *FeedCoordinator) ToggleBookmark(article domain.Article) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		if _, err := c.toggle.Execute(context.Background(), article); err != nil {
			c.enqueue(func(ctx context.Context) {
				c.emitError(err)
			})
		}
	}()
}

func (c *FeedCoordinator) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-c.done:
			return
		case cmd := <-c.commands:
			cmd(ctx)
		}
	}
}

func (c *FeedCoordinator) enqueue(cmd func(ctx context.Context)) {
	select {
	case c.commands <- cmd:
	case <-c.done:
	}
}

// refreshBookmarkFlags re-reads the bookmark set and reapplies it to the
// current list. Failures are swallowed; the flags refresh again on the next
// load or bookmark event.
func (c *FeedCoordinator) refreshBookmarkFlags(ctx context.Context) {
	bookmarked, err := c.bookmarks.Execute(ctx)
	if err != nil {
		logger.SafeWarnContext(ctx, "Bookmark flag refresh failed", "error", err)
		return
	}
	c.current = domain.ApplyBookmarkFlags(c.current, domain.BookmarkedIDSet(bookmarked))
	c.emitArticles()
}

func (c *FeedCoordinator) setLoading(loading bool) {
	if c.callbacks.OnLoadingStateChange != nil {
		c.callbacks.OnLoadingStateChange(loading)
	}
}

func (c *FeedCoordinator) emitArticles() {
	if c.callbacks.OnArticlesUpdated != nil {
		c.callbacks.OnArticlesUpdated(domain.FilterArticles(c.current, c.query))
	}
}

func (c *FeedCoordinator) emitError(err error) {
	if c.callbacks.OnError != nil {
		c.callbacks.OnError(err)
	}
}
