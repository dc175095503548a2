package coordinator

import (
	"context"
	"sync"

	"reader/domain"
	"reader/port/event_bus_port"
	"reader/usecase/fetch_bookmarks_usecase"
	"reader/usecase/toggle_bookmark_usecase"
)

// BookmarkCallbacks receive bookmark list changes. All callbacks run on the
// coordinator's run loop; nil callbacks are skipped.
type BookmarkCallbacks struct {
	OnBookmarksUpdated func(articles []domain.Article)
	OnError            func(err error)
}

// BookmarkCoordinator drives the saved-articles list. The list reloads
// wholesale whenever a bookmark change event fires, including changes this
// coordinator made itself.
type BookmarkCoordinator struct {
	bookmarks *fetch_bookmarks_usecase.FetchBookmarksUsecase
	toggle    *toggle_bookmark_usecase.ToggleBookmarkUsecase
	bus       event_bus_port.EventBusPort
	callbacks BookmarkCallbacks

	commands chan func(ctx context.Context)
	done     chan struct{}
	closing  sync.Once
	wg       sync.WaitGroup
	sub      event_bus_port.SubscriptionID
}

func NewBookmarkCoordinator(
	bookmarks *fetch_bookmarks_usecase.FetchBookmarksUsecase,
	toggle *toggle_bookmark_usecase.ToggleBookmarkUsecase,
	bus event_bus_port.EventBusPort,
	callbacks BookmarkCallbacks,
) *BookmarkCoordinator {
	return &BookmarkCoordinator{
		bookmarks: bookmarks,
		toggle:    toggle,
		bus:       bus,
		callbacks: callbacks,
		commands:  make(chan func(ctx context.Context), 16),
		done:      make(chan struct{}),
	}
}

func (c *BookmarkCoordinator) Start(ctx context.Context) {
	c.sub = c.bus.Subscribe(domain.EventBookmarksChanged, func() {
		c.enqueue(c.reload)
	})

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.run(ctx)
	}()
}

func (c *BookmarkCoordinator) Close() {
	c.closing.Do(func() {
		c.bus.Unsubscribe(c.sub)
		close(c.done)
	})
	c.wg.Wait()
}

// Load fetches the bookmarked set from storage.
func (c *BookmarkCoordinator) Load() {
	c.enqueue(c.reload)
}

// ToggleBookmark flips the flag on an article. For a saved article this
// clears it; the shrunk list arrives through the bookmark change event the
// toggle triggers.
func (c *BookmarkCoordinator) ToggleBookmark(article domain.Article) {
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

func (c *BookmarkCoordinator) run(ctx context.Context) {
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

func (c *BookmarkCoordinator) enqueue(cmd func(ctx context.Context)) {
	select {
	case c.commands <- cmd:
	case <-c.done:
	}
}

func (c *BookmarkCoordinator) reload(ctx context.Context) {
	bookmarked, err := c.bookmarks.Execute(ctx)
	if err != nil {
		c.emitError(err)
		return
	}
	if c.callbacks.OnBookmarksUpdated != nil {
		c.callbacks.OnBookmarksUpdated(bookmarked)
	}
}

func (c *BookmarkCoordinator) emitError(err error) {
	if c.callbacks.OnError != nil {
		c.callbacks.OnError(err)
	}
}
