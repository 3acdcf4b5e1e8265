// Package observability provides observability infrastructure for the
// publishing model: structured logging, Prometheus metrics, and
// OpenTelemetry tracing.
//
// Subpackages:
//   - logging: Structured logging utilities with slog
//   - metrics: Prometheus metrics registry and recorders
//   - tracing: OpenTelemetry tracer for span creation
//
// Example usage:
//
//	import (
//	    "masthead/internal/observability/logging"
//	    "masthead/internal/observability/metrics"
//	)
//
//	func main() {
//	    logger := logging.NewLogger()
//	    logger.Info("registry opened")
//
//	    metrics.RecordArticlePublished("Tech Weekly", time.Millisecond)
//	}
package observability
