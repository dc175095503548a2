package news_source_port

import (
	"context"

	"reader/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=news_source_port.go -destination=../../mocks/mock_news_source_port.go -package=mocks

// NewsSourcePort is the remote article feed: given a region code it returns
// the raw article batch or fails with a network, HTTP, or decoding error.
// It has no knowledge of local bookmark state.
type NewsSourcePort interface {
	Fetch(ctx context.Context, region string) ([]domain.Article, error)
}
