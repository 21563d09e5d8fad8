// Package replayfx provides an fx module wiring up a replay Generator.
// Requires a *zap.Logger to be provided.
package replayfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/discochess/replay"
	"github.com/discochess/replay/internal/stats"
	"github.com/discochess/replay/internal/stats/logger"
)

// DefaultCacheSize is the replay cache size the module configures.
const DefaultCacheSize = 128

// Module provides a *replay.Generator with logger-backed stats.
var Module = fx.Module("replay",
	fx.Provide(
		newStatsCollector,
		newGenerator,
	),
)

func newStatsCollector(log *zap.Logger) stats.Collector {
	return logger.New(log.Named("replay.stats"))
}

// Params holds dependencies for creating the generator.
type Params struct {
	fx.In

	Logger    *zap.Logger
	Collector stats.Collector
}

// Result holds the provided generator.
type Result struct {
	fx.Out

	Generator *replay.Generator
}

func newGenerator(p Params) (Result, error) {
	gen, err := replay.New(
		replay.WithLogger(p.Logger.Named("replay")),
		replay.WithStats(p.Collector),
		replay.WithCacheSize(DefaultCacheSize),
	)
	if err != nil {
		return Result{}, err
	}

	return Result{Generator: gen}, nil
}
