// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes all application metrics including:
//   - Registry gauges (authors, magazines)
//   - Publishing counters and durations
//   - Validation failure counters
//
// All metrics are automatically registered with the Prometheus default
// registry; an embedding program decides how to expose them.
//
// Example usage:
//
//	import "masthead/internal/observability/metrics"
//
//	func publish(magazine string) {
//	    start := time.Now()
//	    // ... publish the article ...
//	    metrics.RecordArticlePublished(magazine, time.Since(start))
//	}
package metrics
