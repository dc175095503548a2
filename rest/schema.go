package rest

// ArticlePayload mirrors the wire shape of an article in toggle requests.
type ArticlePayload struct {
	ID          string         `json:"id"`
	Source      *SourcePayload `json:"source,omitempty"`
	Title       string         `json:"title"`
	URL         string         `json:"url"`
	ImageURL    string         `json:"urlToImage,omitempty"`
	PublishedAt string         `json:"publishedAt,omitempty"`
	Bookmarked  bool           `json:"isBookmarked"`
}

type SourcePayload struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

type ToggleBookmarkResponse struct {
	ID         string `json:"id"`
	Bookmarked bool   `json:"isBookmarked"`
}

type ArticleListResponse struct {
	Articles []ArticleResponse `json:"articles"`
	Count    int               `json:"count"`
}

type ArticleResponse struct {
	ID          string         `json:"id"`
	Source      *SourcePayload `json:"source,omitempty"`
	Title       string         `json:"title"`
	URL         string         `json:"url"`
	ImageURL    string         `json:"urlToImage,omitempty"`
	PublishedAt string         `json:"publishedAt,omitempty"`
	Bookmarked  bool           `json:"isBookmarked"`
}
