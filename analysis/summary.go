package analysis

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary describes a collection of game metrics.
type Summary struct {
	Games int

	MeanPlies   float64
	StdDevPlies float64
	MedianPlies float64
	P90Plies    float64

	CapturesPerGame float64
	CastlingRate    float64 // share of games where either side castled
	UnresolvedRate  float64 // share of plies that failed to resolve
}

// Summarize computes summary statistics over the given metrics.
func Summarize(metrics []GameMetrics) Summary {
	if len(metrics) == 0 {
		return Summary{}
	}

	plies := make([]float64, len(metrics))
	var captures, unresolved, totalPlies float64
	var castled int
	for i, m := range metrics {
		plies[i] = float64(m.Plies)
		totalPlies += float64(m.Plies)
		captures += float64(m.Captures)
		unresolved += float64(m.Unresolved)
		if m.WhiteCastled || m.BlackCastled {
			castled++
		}
	}
	sort.Float64s(plies)

	n := float64(len(metrics))
	s := Summary{
		Games:           len(metrics),
		MeanPlies:       stat.Mean(plies, nil),
		MedianPlies:     stat.Quantile(0.5, stat.Empirical, plies, nil),
		P90Plies:        stat.Quantile(0.9, stat.Empirical, plies, nil),
		CapturesPerGame: captures / n,
		CastlingRate:    float64(castled) / n,
	}
	if len(metrics) > 1 {
		s.StdDevPlies = stat.StdDev(plies, nil)
	}
	if totalPlies > 0 {
		s.UnresolvedRate = unresolved / totalPlies
	}
	return s
}
