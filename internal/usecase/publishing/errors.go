// Package publishing provides use cases over a publishing registry.
// It implements business logic for creating authors and magazines,
// publishing articles, and answering derived queries, with logging,
// metrics, and tracing around the domain operations.
package publishing

import "errors"

// Sentinel errors for publishing use case operations.
var (
	// ErrAuthorNotFound indicates that the requested author was not found.
	// This error is returned when an operation names an author ID that was
	// never issued by the service's registry.
	ErrAuthorNotFound = errors.New("author not found")

	// ErrMagazineNotFound indicates that the requested magazine was not found.
	ErrMagazineNotFound = errors.New("magazine not found")

	// ErrNoPublications indicates that a registry-wide query has no answer
	// because no article has been published yet.
	ErrNoPublications = errors.New("no articles published")
)
