package models

import (
	"time"

	"reader/domain"
)

// ArticleRecord is the durable representation of an article: the domain shape
// flattened, with the bookmark flag as a first-class persisted column.
// The id column is the storage identity; at most one record per id.
type ArticleRecord struct {
	ID          string     `db:"id"`
	SourceID    string     `db:"source_id"`
	SourceName  string     `db:"source_name"`
	Title       string     `db:"title"`
	URL         string     `db:"url"`
	ImageURL    string     `db:"image_url"`
	PublishedAt *time.Time `db:"published_at"`
	Bookmarked  bool       `db:"bookmarked"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

// FromDomain flattens a domain article into its stored form.
func FromDomain(a domain.Article) ArticleRecord {
	record := ArticleRecord{
		ID:          a.ID,
		Title:       a.Title,
		URL:         a.URL,
		ImageURL:    a.ImageURL,
		PublishedAt: a.PublishedAt,
		Bookmarked:  a.Bookmarked,
	}
	if a.Source != nil {
		record.SourceID = a.Source.ID
		record.SourceName = a.Source.Name
	}
	return record
}

// ToDomain reassembles the domain article from its stored form.
func (r ArticleRecord) ToDomain() domain.Article {
	article := domain.Article{
		ID:          r.ID,
		Title:       r.Title,
		URL:         r.URL,
		ImageURL:    r.ImageURL,
		PublishedAt: r.PublishedAt,
		Bookmarked:  r.Bookmarked,
	}
	if r.SourceID != "" || r.SourceName != "" {
		article.Source = &domain.ArticleSource{ID: r.SourceID, Name: r.SourceName}
	}
	return article
}
