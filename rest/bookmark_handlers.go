package rest

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"reader/di"
)

func registerBookmarkRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	v1.GET("/bookmarks", handleFetchBookmarks(container))
	v1.POST("/bookmarks/toggle", handleToggleBookmark(container))
}

func handleFetchBookmarks(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		articles, err := container.FetchBookmarksUsecase.Execute(c.Request().Context())
		if err != nil {
			return handleError(c, err, "fetch_bookmarks")
		}
		return c.JSON(http.StatusOK, toArticleListResponse(articles))
	}
}

// handleToggleBookmark flips the flag on the posted article and returns the
// new value. Subscribers on the bookmark event stream hear about the change.
func handleToggleBookmark(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var payload ArticlePayload
		if err := c.Bind(&payload); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}

		article := payloadToDomain(payload)
		if strings.TrimSpace(article.ID) == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "article id or url is required"})
		}

		bookmarked, err := container.ToggleBookmarkUsecase.Execute(c.Request().Context(), article)
		if err != nil {
			return handleError(c, err, "toggle_bookmark")
		}

		return c.JSON(http.StatusOK, ToggleBookmarkResponse{
			ID:         article.ID,
			Bookmarked: bookmarked,
		})
	}
}
