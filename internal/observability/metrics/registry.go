// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Business metrics track the publishing model's operations
var (
	// AuthorsTotal tracks the number of authors in the registry
	AuthorsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "authors_total",
			Help: "Total number of authors in the registry",
		},
	)

	// MagazinesTotal tracks the number of magazines in the registry
	MagazinesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "magazines_total",
			Help: "Total number of magazines in the registry",
		},
	)

	// ArticlesPublishedTotal counts articles published per magazine
	ArticlesPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "articles_published_total",
			Help: "Total number of articles published",
		},
		[]string{"magazine"},
	)

	// ValidationFailuresTotal counts rejected constructions by field
	ValidationFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "validation_failures_total",
			Help: "Total number of entity validation failures",
		},
		[]string{"field"},
	)

	// PublishDuration measures the time taken to publish an article
	PublishDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "publish_duration_seconds",
			Help:    "Time taken to publish an article",
			Buckets: prometheus.ExponentialBuckets(0.000001, 4, 10),
		},
	)
)
