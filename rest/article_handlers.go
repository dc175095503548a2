package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"reader/config"
	"reader/di"
	"reader/domain"
	"reader/utils/logger"
)

func registerArticleRoutes(v1 *echo.Group, container *di.ApplicationComponents, cfg *config.Config) {
	v1.GET("/articles", handleCachedArticles(container))
	v1.GET("/articles/fetch", handleFetchArticles(container, cfg))
	v1.GET("/articles/search", handleSearchArticles(container))
}

// handleCachedArticles serves the durable store without touching the network.
func handleCachedArticles(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		articles, err := container.FetchArticlesUsecase.ExecuteCached(c.Request().Context())
		if err != nil {
			return handleError(c, err, "cached_articles")
		}
		return c.JSON(http.StatusOK, toArticleListResponse(articles))
	}
}

// handleFetchArticles refreshes from the remote feed and serves the merged
// set. A failed remote fetch surfaces as an error; the cached set stays
// available on /articles.
func handleFetchArticles(container *di.ApplicationComponents, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		region := c.QueryParam("region")
		if region == "" {
			region = cfg.NewsSource.DefaultRegion
		}

		articles, err := container.FetchArticlesUsecase.Execute(c.Request().Context(), region)
		if err != nil {
			return handleError(c, err, "fetch_articles")
		}
		return c.JSON(http.StatusOK, toArticleListResponse(articles))
	}
}

func handleSearchArticles(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		query := c.QueryParam("q")
		if query == "" {
			logger.SafeWarn("Search query must not be empty")
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Search query must not be empty"})
		}

		articles, err := container.FetchArticlesUsecase.ExecuteCached(c.Request().Context())
		if err != nil {
			return handleError(c, err, "search_articles")
		}
		return c.JSON(http.StatusOK, toArticleListResponse(domain.FilterArticles(articles, query)))
	}
}
