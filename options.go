package replay

import (
	"go.uber.org/zap"

	"github.com/discochess/replay/internal/stats"
)

// Option configures a Generator.
type Option interface {
	apply(*options)
}

// options holds the generator configuration.
type options struct {
	stats     stats.Collector
	logger    *zap.Logger
	cacheSize int
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		stats:  stats.NewNoop(),
		logger: zap.NewNop(),
	}
}

// optionFunc wraps a function to implement Option.
type optionFunc func(*options)

// Compile-time check that optionFunc implements Option.
var _ Option = optionFunc(nil)

func (f optionFunc) apply(o *options) { f(o) }

// WithStats sets the stats collector.
// If not set, a no-op collector is used.
func WithStats(c stats.Collector) Option {
	return optionFunc(func(o *options) {
		o.stats = c
	})
}

// WithLogger sets the logger.
// If not set, a no-op logger is used.
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(o *options) {
		o.logger = l
	})
}

// WithCacheSize enables an LRU cache of generated replays, keyed by the
// full record string. Zero, the default, disables caching.
func WithCacheSize(n int) Option {
	return optionFunc(func(o *options) {
		o.cacheSize = n
	})
}
