package metrics

import "time"

// RecordArticlePublished records a successfully published article and the
// time the operation took.
func RecordArticlePublished(magazine string, duration time.Duration) {
	ArticlesPublishedTotal.WithLabelValues(magazine).Inc()
	PublishDuration.Observe(duration.Seconds())
}

// RecordValidationFailure records a rejected construction or mutation.
// The field names the attribute that failed validation; unknown failures
// are recorded under "unknown".
func RecordValidationFailure(field string) {
	if field == "" {
		field = "unknown"
	}
	ValidationFailuresTotal.WithLabelValues(field).Inc()
}

// UpdateAuthorsTotal updates the author count gauge.
// The gauge reflects the registry state after each create operation.
func UpdateAuthorsTotal(count int) {
	AuthorsTotal.Set(float64(count))
}

// UpdateMagazinesTotal updates the magazine count gauge.
func UpdateMagazinesTotal(count int) {
	MagazinesTotal.Set(float64(count))
}
