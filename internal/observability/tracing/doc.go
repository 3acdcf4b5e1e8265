// Package tracing provides OpenTelemetry tracing integration.
//
// The package exposes a single named tracer. No exporter is installed here:
// spans are no-ops until an embedding program configures an SDK trace
// provider, which keeps the library free of wiring decisions.
//
// Example usage:
//
//	import "masthead/internal/observability/tracing"
//
//	func publish(ctx context.Context) {
//	    ctx, span := tracing.GetTracer().Start(ctx, "publishing.PublishArticle")
//	    defer span.End()
//	    // ... publish ...
//	}
package tracing
