// Package news_api fetches the remote article feed for a region from a
// NewsAPI-style JSON endpoint.
package news_api

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"reader/config"
	"reader/domain"
	"reader/utils/errors"
	"reader/utils/logger"
)

// Client calls the remote article feed. It holds no local state and knows
// nothing about bookmarks.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(httpClient *http.Client, cfg config.NewsSourceConfig) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
	}
}

// Fetch returns the raw article batch for the given region code. The request
// deadline is the HTTP client timeout; no retries.
func (c *Client) Fetch(ctx context.Context, region string) ([]domain.Article, error) {
	if c.apiKey == "" {
		return nil, errors.ConfigurationError("news API key is not configured", map[string]interface{}{
			"env": "NEWS_API_KEY",
		})
	}

	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, errors.InvalidRequestError("invalid news API base URL", err, map[string]interface{}{
			"base_url": c.baseURL,
		})
	}
	query := endpoint.Query()
	query.Set("country", region)
	query.Set("apiKey", c.apiKey)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.InvalidRequestError("failed to build news API request", err, map[string]interface{}{
			"region": region,
		})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.SafeErrorContext(ctx, "News API request failed", "error", err, "region", region)
		return nil, errors.NetworkError("news API request failed", err, map[string]interface{}{
			"region": region,
		})
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.SafeErrorContext(ctx, "News API returned error status", "status", resp.StatusCode, "region", region)
		return nil, errors.HTTPError("news API returned error status", resp.StatusCode, map[string]interface{}{
			"region": region,
		})
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NetworkError("failed to read news API response", err, map[string]interface{}{
			"region": region,
		})
	}

	if len(body) == 0 {
		return nil, errors.EmptyResponseError("news API returned an empty body", map[string]interface{}{
			"region": region,
		})
	}

	articles, err := DecodeArticlesResponse(body)
	if err != nil {
		return nil, err
	}

	logger.SafeInfoContext(ctx, "Fetched articles from news API", "region", region, "count", len(articles))

	return articles, nil
}
