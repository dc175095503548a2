package rest

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"reader/config"
	"reader/di"
	"reader/domain"
	"reader/utils/logger"
)

func registerSSERoutes(v1 *echo.Group, container *di.ApplicationComponents, cfg *config.Config) {
	v1.GET("/sse/bookmarks", handleSSEBookmarks(container, cfg))
}

// handleSSEBookmarks streams the bookmarked set to the client: once on
// connect, again whenever a bookmark changes, and on a periodic refresh tick.
func handleSSEBookmarks(container *di.ApplicationComponents, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set("Content-Type", "text/event-stream")
		c.Response().Header().Set("Cache-Control", "no-cache")
		c.Response().Header().Set("Connection", "keep-alive")
		c.Response().Header().Set("Access-Control-Allow-Origin", "*")
		c.Response().Header().Set("Access-Control-Allow-Headers", "Cache-Control")

		c.Response().WriteHeader(http.StatusOK)

		w := c.Response().Writer
		flusher, canFlush := w.(http.Flusher)
		if !canFlush {
			logger.SafeError("Response writer doesn't support flushing")
			return c.String(http.StatusInternalServerError, "Streaming not supported")
		}

		// Bus handlers must never block, so changes collapse into a
		// single pending signal.
		changed := make(chan struct{}, 1)
		sub := container.EventBus.Subscribe(domain.EventBookmarksChanged, func() {
			select {
			case changed <- struct{}{}:
			default:
			}
		})
		defer container.EventBus.Unsubscribe(sub)

		sendBookmarks := func() error {
			articles, err := container.FetchBookmarksUsecase.Execute(c.Request().Context())
			if err != nil {
				logger.SafeError("Error fetching bookmarks for SSE", "error", err)
				return nil
			}

			jsonData, err := json.Marshal(toArticleListResponse(articles))
			if err != nil {
				logger.SafeError("Error marshaling bookmarks", "error", err)
				return nil
			}

			if _, err := c.Response().Write([]byte("data: " + string(jsonData) + "\n\n")); err != nil {
				return err
			}
			flusher.Flush()
			return nil
		}

		if err := sendBookmarks(); err != nil {
			return nil
		}

		ticker := time.NewTicker(cfg.Server.SSEInterval)
		defer ticker.Stop()

		heartbeatTicker := time.NewTicker(10 * time.Second)
		defer heartbeatTicker.Stop()

		ctx := c.Request().Context()
		for {
			select {
			case <-ctx.Done():
				return nil

			case <-heartbeatTicker.C:
				if _, err := c.Response().Write([]byte(": heartbeat\n\n")); err != nil {
					logger.SafeInfo("Client disconnected during heartbeat", "error", err)
					return nil
				}
				flusher.Flush()

			case <-changed:
				if err := sendBookmarks(); err != nil {
					logger.SafeInfo("Client disconnected", "error", err)
					return nil
				}

			case <-ticker.C:
				if err := sendBookmarks(); err != nil {
					logger.SafeInfo("Client disconnected", "error", err)
					return nil
				}
			}
		}
	}
}
