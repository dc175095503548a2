package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ArticleSource identifies the publisher of an article. Both fields are
// optional in the remote representation.
type ArticleSource struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// Article represents a news article held in the local cache.
//
// ID is the canonical URL when the remote record carries one, otherwise a
// freshly generated token assigned at decode time. Bookmarked is purely local
// state and is never sourced from the remote feed.
type Article struct {
	ID          string         `json:"id"`
	Source      *ArticleSource `json:"source,omitempty"`
	Title       string         `json:"title,omitempty"`
	URL         string         `json:"url,omitempty"`
	ImageURL    string         `json:"image_url,omitempty"`
	PublishedAt *time.Time     `json:"published_at,omitempty"`
	Bookmarked  bool           `json:"bookmarked"`
}

// Equal compares two articles over all fields including the bookmark flag.
// Two otherwise-identical articles with different flags are distinct values,
// which is what change detection relies on.
func (a Article) Equal(b Article) bool {
	if a.ID != b.ID || a.Title != b.Title || a.URL != b.URL || a.ImageURL != b.ImageURL || a.Bookmarked != b.Bookmarked {
		return false
	}
	if (a.Source == nil) != (b.Source == nil) {
		return false
	}
	if a.Source != nil && *a.Source != *b.Source {
		return false
	}
	if (a.PublishedAt == nil) != (b.PublishedAt == nil) {
		return false
	}
	if a.PublishedAt != nil && !a.PublishedAt.Equal(*b.PublishedAt) {
		return false
	}
	return true
}

// DeriveArticleID derives storage identity from the canonical URL, falling
// back to a freshly generated token when the URL is absent. The fallback is
// regenerated on every decode, so URL-less articles are never deduplicated
// across fetches.
func DeriveArticleID(url string) string {
	if url != "" {
		return url
	}
	return uuid.NewString()
}

// MatchesQuery reports whether the article title contains the query,
// case-insensitively. An empty query matches everything.
func (a Article) MatchesQuery(query string) bool {
	q := strings.TrimSpace(query)
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(a.Title), strings.ToLower(q))
}

// FilterArticles returns the articles whose titles match the query. A blank
// query returns the input slice unchanged, preserving order.
func FilterArticles(articles []Article, query string) []Article {
	if strings.TrimSpace(query) == "" {
		return articles
	}
	filtered := make([]Article, 0, len(articles))
	for _, a := range articles {
		if a.MatchesQuery(query) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// ApplyBookmarkFlags returns a copy of articles with Bookmarked set from the
// given id set. Only the flag column changes; every other field is carried
// through untouched.
func ApplyBookmarkFlags(articles []Article, bookmarkedIDs map[string]bool) []Article {
	updated := make([]Article, len(articles))
	for i, a := range articles {
		a.Bookmarked = bookmarkedIDs[a.ID]
		updated[i] = a
	}
	return updated
}

// BookmarkedIDSet collects the ids of the given articles into a set.
func BookmarkedIDSet(articles []Article) map[string]bool {
	ids := make(map[string]bool, len(articles))
	for _, a := range articles {
		ids[a.ID] = true
	}
	return ids
}
