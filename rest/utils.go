package rest

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"reader/domain"
	"reader/utils/errors"
	"reader/utils/logger"
)

// handleError converts errors into HTTP responses. AppError carries its own
// status mapping; anything else is a generic 500 with no internal detail.
func handleError(c echo.Context, err error, operation string) error {
	ctx := c.Request().Context()

	if appErr, ok := err.(*errors.AppError); ok {
		errors.LogError(logger.Logger, appErr, operation)
		return c.JSON(appErr.HTTPStatusCode(), appErr.ToHTTPResponse())
	}

	logger.SafeErrorContext(ctx, "Unhandled error", "operation", operation, "error", err)
	return c.JSON(http.StatusInternalServerError, errors.HTTPErrorResponse{
		Error:   "error",
		Code:    string(errors.ErrCodeUnknown),
		Message: "internal server error",
	})
}

func toArticleResponse(a domain.Article) ArticleResponse {
	resp := ArticleResponse{
		ID:         a.ID,
		Title:      a.Title,
		URL:        a.URL,
		ImageURL:   a.ImageURL,
		Bookmarked: a.Bookmarked,
	}
	if a.Source != nil {
		resp.Source = &SourcePayload{ID: a.Source.ID, Name: a.Source.Name}
	}
	if a.PublishedAt != nil {
		resp.PublishedAt = a.PublishedAt.Format(time.RFC3339)
	}
	return resp
}

func toArticleListResponse(articles []domain.Article) ArticleListResponse {
	out := make([]ArticleResponse, 0, len(articles))
	for _, a := range articles {
		out = append(out, toArticleResponse(a))
	}
	return ArticleListResponse{Articles: out, Count: len(out)}
}

func payloadToDomain(p ArticlePayload) domain.Article {
	article := domain.Article{
		ID:         p.ID,
		Title:      p.Title,
		URL:        p.URL,
		ImageURL:   p.ImageURL,
		Bookmarked: p.Bookmarked,
	}
	if p.Source != nil {
		article.Source = &domain.ArticleSource{ID: p.Source.ID, Name: p.Source.Name}
	}
	if p.PublishedAt != "" {
		if ts, err := time.Parse(time.RFC3339, p.PublishedAt); err == nil {
			article.PublishedAt = &ts
		}
	}
	if article.ID == "" && article.URL != "" {
		article.ID = domain.DeriveArticleID(article.URL)
	}
	return article
}
