// Package metrics exposes prometheus counters for the article cache engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the counters tracked by the reader backend. Construct one per
// process and register it with a prometheus registry; the /metrics route
// serves the registry.
type Metrics struct {
	RemoteFetches    *prometheus.CounterVec
	MergeBatches     prometheus.Counter
	ArticlesUpserted prometheus.Counter
	BookmarkToggles  *prometheus.CounterVec
	BusPublishes     prometheus.Counter
}

// New creates the metric set and registers it with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RemoteFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "reader_remote_fetches_total",
			Help: "Remote article feed fetches, labeled by outcome.",
		}, []string{"outcome"}),
		MergeBatches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "reader_merge_batches_total",
			Help: "Article batches merged into the durable store.",
		}),
		ArticlesUpserted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "reader_articles_upserted_total",
			Help: "Article records written by merge batches.",
		}),
		BookmarkToggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "reader_bookmark_toggles_total",
			Help: "Bookmark add/remove operations, labeled by direction.",
		}, []string{"direction"}),
		BusPublishes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "reader_bus_publishes_total",
			Help: "Events published on the in-process notification bus.",
		}),
	}

	reg.MustRegister(
		m.RemoteFetches,
		m.MergeBatches,
		m.ArticlesUpserted,
		m.BookmarkToggles,
		m.BusPublishes,
	)

	return m
}

// NewNop creates an unregistered metric set for tests.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}
