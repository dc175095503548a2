// Package rss_source adapts RSS/Atom feeds to the remote article source
// contract, as an alternative to the JSON news API.
package rss_source

import (
	"context"
	"net/http"

	"reader/config"
	"reader/domain"
	"reader/utils/errors"
	"reader/utils/logger"

	"github.com/mmcdole/gofeed"
)

// Client resolves a region code to a configured feed URL and parses the feed
// into the raw article shape. Bookmark state never appears in feed data.
type Client struct {
	httpClient *http.Client
	feedURLs   map[string]string
}

func NewClient(httpClient *http.Client, cfg config.RSSConfig) *Client {
	return &Client{
		httpClient: httpClient,
		feedURLs:   cfg.FeedURLs(),
	}
}

// Fetch parses the feed configured for the region and returns its items as
// articles.
func (c *Client) Fetch(ctx context.Context, region string) ([]domain.Article, error) {
	feedURL, ok := c.feedURLs[region]
	if !ok {
		return nil, errors.InvalidRequestError("no feed configured for region", nil, map[string]interface{}{
			"region": region,
		})
	}

	parser := gofeed.NewParser()
	parser.Client = c.httpClient

	feed, err := parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		logger.SafeErrorContext(ctx, "Error parsing feed", "error", err, "url", feedURL)
		return nil, errors.NetworkError("failed to fetch feed", err, map[string]interface{}{
			"region": region,
			"url":    feedURL,
		})
	}

	source := &domain.ArticleSource{ID: region, Name: feed.Title}

	articles := make([]domain.Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		article := domain.Article{
			Title:  item.Title,
			URL:    item.Link,
			Source: source,
		}
		if item.Image != nil {
			article.ImageURL = item.Image.URL
		}
		if item.PublishedParsed != nil {
			published := *item.PublishedParsed
			article.PublishedAt = &published
		}
		article.ID = domain.DeriveArticleID(item.Link)
		articles = append(articles, article)
	}

	logger.SafeInfoContext(ctx, "Fetched articles from RSS feed", "region", region, "count", len(articles))

	return articles, nil
}
