// Package stats provides a unified interface for collecting metrics.
package stats

// Metric names used throughout the library.
const (
	// Generator metrics.
	MetricGenerates       = "replay_generates_total"
	MetricParseFailures   = "replay_parse_failures_total"
	MetricMovesResolved   = "replay_moves_resolved_total"
	MetricMovesUnresolved = "replay_moves_unresolved_total"
	MetricPliesPerGame    = "replay_plies_per_game"

	// Cache metrics.
	MetricCacheHits   = "replay_cache_hits_total"
	MetricCacheMisses = "replay_cache_misses_total"
	MetricCacheSize   = "replay_cache_size"
)

// Counters lists every counter metric the library emits.
func Counters() []string {
	return []string{
		MetricGenerates,
		MetricParseFailures,
		MetricMovesResolved,
		MetricMovesUnresolved,
		MetricCacheHits,
		MetricCacheMisses,
	}
}

// Gauges lists every gauge metric the library emits.
func Gauges() []string {
	return []string{MetricCacheSize}
}

// Histograms lists every histogram metric the library emits.
func Histograms() []string {
	return []string{MetricPliesPerGame}
}

// Collector defines the interface for collecting metrics.
type Collector interface {
	// IncCounter increments a counter metric by delta.
	IncCounter(name string, delta int64)

	// SetGauge sets a gauge metric to value.
	SetGauge(name string, value int64)

	// ObserveHistogram records a value in a histogram metric.
	ObserveHistogram(name string, value float64)
}
