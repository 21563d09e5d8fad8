// Package prometheus provides a Prometheus-backed stats collector.
package prometheus

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/discochess/replay/internal/stats"
)

// help texts for the registered metrics, keyed by metric name.
var help = map[string]string{
	stats.MetricGenerates:       "Replays generated, including cache hits.",
	stats.MetricParseFailures:   "Game records rejected as malformed.",
	stats.MetricMovesResolved:   "Move tokens resolved to a concrete move.",
	stats.MetricMovesUnresolved: "Move tokens that matched no legal move.",
	stats.MetricCacheHits:       "Replay cache hits.",
	stats.MetricCacheMisses:     "Replay cache misses.",
	stats.MetricCacheSize:       "Replays currently held in the cache.",
	stats.MetricPliesPerGame:    "Plies per generated replay.",
}

// Collector implements stats.Collector using Prometheus metrics. The full
// metric set is registered at construction; observations against names
// outside the set are dropped.
type Collector struct {
	counters   map[string]prometheus.Counter
	gauges     map[string]prometheus.Gauge
	histograms map[string]prometheus.Histogram
}

// Compile-time check that Collector implements stats.Collector.
var _ stats.Collector = (*Collector)(nil)

// New creates a collector with every library metric registered on
// registry. If registry is nil, prometheus.DefaultRegisterer is used.
// Registration conflicts, such as creating two collectors on the same
// registry, surface as errors.
func New(registry prometheus.Registerer) (*Collector, error) {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	c := &Collector{
		counters:   make(map[string]prometheus.Counter),
		gauges:     make(map[string]prometheus.Gauge),
		histograms: make(map[string]prometheus.Histogram),
	}

	for _, name := range stats.Counters() {
		counter := prometheus.NewCounter(prometheus.CounterOpts{Name: name, Help: help[name]})
		if err := registry.Register(counter); err != nil {
			return nil, fmt.Errorf("registering %s: %w", name, err)
		}
		c.counters[name] = counter
	}

	for _, name := range stats.Gauges() {
		gauge := prometheus.NewGauge(prometheus.GaugeOpts{Name: name, Help: help[name]})
		if err := registry.Register(gauge); err != nil {
			return nil, fmt.Errorf("registering %s: %w", name, err)
		}
		c.gauges[name] = gauge
	}

	for _, name := range stats.Histograms() {
		histogram := prometheus.NewHistogram(prometheus.HistogramOpts{
			Name: name,
			Help: help[name],
			// Games run from a handful of plies into the hundreds.
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		})
		if err := registry.Register(histogram); err != nil {
			return nil, fmt.Errorf("registering %s: %w", name, err)
		}
		c.histograms[name] = histogram
	}

	return c, nil
}

// IncCounter increments a registered counter metric.
func (c *Collector) IncCounter(name string, delta int64) {
	if counter, ok := c.counters[name]; ok {
		counter.Add(float64(delta))
	}
}

// SetGauge sets a registered gauge metric.
func (c *Collector) SetGauge(name string, value int64) {
	if gauge, ok := c.gauges[name]; ok {
		gauge.Set(float64(value))
	}
}

// ObserveHistogram records a value in a registered histogram metric.
func (c *Collector) ObserveHistogram(name string, value float64) {
	if histogram, ok := c.histograms[name]; ok {
		histogram.Observe(value)
	}
}
