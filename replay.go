// Package replay turns textual chess game records into ordered board
// positions ready for playback.
//
// A record is a FEN-like string: a board section, the active color,
// castling rights and an en-passant square, optionally followed by move
// counters and an algebraic move list. Both the standard and the French
// piece alphabets are accepted, in the board section and in move tokens.
//
// Example usage:
//
//	gen, err := replay.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	rep, err := gen.Generate("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 1. e4 e5 2. Nf3")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, frame := range rep.Frames {
//	    fmt.Printf("%3d %-8s %s\n", frame.Ply, frame.Token, frame.Position)
//	}
package replay

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/discochess/replay/game"
	"github.com/discochess/replay/internal/stats"
)

// Generator derives playback frames from game records.
// A Generator is safe for concurrent use by multiple goroutines.
type Generator struct {
	stats  stats.Collector
	logger *zap.Logger
	cache  *lru.Cache[string, *Replay]
}

// New creates a new Generator with the given options.
// If no options are provided, sensible defaults are used.
func New(opts ...Option) (*Generator, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt.apply(&cfg)
	}

	g := &Generator{
		stats:  cfg.stats,
		logger: cfg.logger,
	}

	if cfg.cacheSize > 0 {
		cache, err := lru.New[string, *Replay](cfg.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("creating cache: %w", err)
		}
		g.cache = cache
	}

	g.logger.Debug("generator initialized", zap.Int("cacheSize", cfg.cacheSize))

	return g, nil
}

// Generate parses record and derives the full frame sequence.
//
// A structurally broken record, a malformed board or a bad header, is
// returned as an error. A move token that cannot be resolved is not: its
// frame repeats the prior position with a nil Move, and its index appears
// in Failed. Replays are immutable, so when caching is enabled repeated
// calls with the same record share one value.
func (g *Generator) Generate(record string) (*Replay, error) {
	g.stats.IncCounter(stats.MetricGenerates, 1)

	if g.cache != nil {
		if rep, ok := g.cache.Get(record); ok {
			g.stats.IncCounter(stats.MetricCacheHits, 1)
			return rep, nil
		}
		g.stats.IncCounter(stats.MetricCacheMisses, 1)
	}

	rec, err := game.ParseRecord(record)
	if err != nil {
		g.stats.IncCounter(stats.MetricParseFailures, 1)
		return nil, fmt.Errorf("parsing record: %w", err)
	}

	rep := g.sequence(rec)

	if g.cache != nil {
		g.cache.Add(record, rep)
		g.stats.SetGauge(stats.MetricCacheSize, int64(g.cache.Len()))
	}

	return rep, nil
}

// sequence folds the record's move list into frames.
func (g *Generator) sequence(rec *game.GameRecord) *Replay {
	positions, details, failed := game.Sequence(rec.Position, rec.Moves, rec.ActiveColor)

	frames := make([]Frame, len(positions))
	di, fi := 0, 0
	for i := range positions {
		frames[i] = Frame{
			Ply:      i + 1,
			Token:    rec.Moves[i],
			Position: positions[i],
		}
		if fi < len(failed) && failed[fi] == i {
			fi++
			continue
		}
		d := details[di]
		frames[i].Move = &d
		di++
	}

	g.stats.IncCounter(stats.MetricMovesResolved, int64(len(details)))
	g.stats.IncCounter(stats.MetricMovesUnresolved, int64(len(failed)))
	g.stats.ObserveHistogram(stats.MetricPliesPerGame, float64(len(frames)))

	if len(failed) > 0 {
		g.logger.Debug("moves left unresolved", zap.Ints("indices", failed))
	}

	return &Replay{Record: rec, Frames: frames}
}
