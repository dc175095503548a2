package news_api

import (
	"encoding/json"
	"time"

	"reader/domain"
	"reader/utils/errors"
)

// articlesEnvelope is the remote response shape. Individual articles are kept
// raw so one malformed record field cannot fail the whole batch.
type articlesEnvelope struct {
	Status       string            `json:"status"`
	TotalResults int               `json:"totalResults"`
	Articles     []json.RawMessage `json:"articles"`
}

// DecodeArticlesResponse decodes the remote feed body. The envelope itself
// must parse; each article is then decoded field by field, where a missing or
// malformed field yields that field's zero value rather than failing the
// record.
func DecodeArticlesResponse(body []byte) ([]domain.Article, error) {
	var envelope articlesEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, errors.DecodingError("news API response does not match expected shape", err, nil)
	}

	articles := make([]domain.Article, 0, len(envelope.Articles))
	for _, raw := range envelope.Articles {
		articles = append(articles, decodeArticle(raw))
	}

	return articles, nil
}

// decodeArticle tolerantly decodes one raw article record.
//
// Identity derivation: the canonical URL when present, otherwise a freshly
// generated token. A URL-less article therefore gets a different identity on
// every decode and is never merged with its earlier copies; this mirrors the
// upstream contract and is deliberate, not a dedup bug to fix here.
func decodeArticle(raw json.RawMessage) domain.Article {
	var article domain.Article

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		article.ID = domain.DeriveArticleID("")
		return article
	}

	var title string
	if err := json.Unmarshal(fields["title"], &title); err == nil {
		article.Title = title
	}

	var articleURL string
	if err := json.Unmarshal(fields["url"], &articleURL); err == nil {
		article.URL = articleURL
	}

	var imageURL string
	if err := json.Unmarshal(fields["urlToImage"], &imageURL); err == nil {
		article.ImageURL = imageURL
	}

	var publishedAt string
	if err := json.Unmarshal(fields["publishedAt"], &publishedAt); err == nil {
		if ts, err := time.Parse(time.RFC3339, publishedAt); err == nil {
			article.PublishedAt = &ts
		}
	}

	var source struct {
		ID   *string `json:"id"`
		Name *string `json:"name"`
	}
	if err := json.Unmarshal(fields["source"], &source); err == nil && (source.ID != nil || source.Name != nil) {
		article.Source = &domain.ArticleSource{}
		if source.ID != nil {
			article.Source.ID = *source.ID
		}
		if source.Name != nil {
			article.Source.Name = *source.Name
		}
	}

	article.ID = domain.DeriveArticleID(article.URL)

	return article
}
