package analysis

import (
	"math"
	"testing"

	"github.com/discochess/replay"
)

const startHeader = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func generate(t *testing.T, record string) *replay.Replay {
	t.Helper()
	gen, err := replay.New()
	if err != nil {
		t.Fatalf("replay.New() error = %v", err)
	}
	rep, err := gen.Generate(record)
	if err != nil {
		t.Fatalf("Generate(%q) error = %v", record, err)
	}
	return rep
}

func TestMeasure(t *testing.T) {
	tests := []struct {
		name  string
		moves string
		want  GameMetrics
	}{
		{
			name:  "scholars mate",
			moves: "1. e4 e5 2. Qh5 Nc6 3. Bc4 Nf6 4. Qxf7",
			want:  GameMetrics{ID: "g", Plies: 7, Captures: 1},
		},
		{
			name:  "castling both sides",
			moves: "1. Nf3 Nf6 2. g3 g6 3. Bg2 Bg7 4. O-O O-O",
			want:  GameMetrics{ID: "g", Plies: 8, WhiteCastled: true, BlackCastled: true},
		},
		{
			name:  "unresolved token counted",
			moves: "1. e4 Qh4 2. d4",
			want:  GameMetrics{ID: "g", Plies: 3, Unresolved: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep := generate(t, startHeader+" "+tt.moves)
			got := Measure("g", rep)
			if got != tt.want {
				t.Errorf("Measure() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	metrics := []GameMetrics{
		{Plies: 10, Captures: 2, WhiteCastled: true},
		{Plies: 20, Captures: 4},
		{Plies: 30, Captures: 0, Unresolved: 3},
		{Plies: 40, Captures: 6, BlackCastled: true},
	}

	s := Summarize(metrics)
	if s.Games != 4 {
		t.Errorf("Games = %d, want 4", s.Games)
	}
	if s.MeanPlies != 25 {
		t.Errorf("MeanPlies = %v, want 25", s.MeanPlies)
	}
	if s.CapturesPerGame != 3 {
		t.Errorf("CapturesPerGame = %v, want 3", s.CapturesPerGame)
	}
	if s.CastlingRate != 0.5 {
		t.Errorf("CastlingRate = %v, want 0.5", s.CastlingRate)
	}
	if want := 3.0 / 100.0; math.Abs(s.UnresolvedRate-want) > 1e-12 {
		t.Errorf("UnresolvedRate = %v, want %v", s.UnresolvedRate, want)
	}
	if s.StdDevPlies == 0 {
		t.Error("StdDevPlies = 0, want > 0")
	}
	if s.P90Plies < s.MedianPlies {
		t.Errorf("P90Plies = %v below median %v", s.P90Plies, s.MedianPlies)
	}
}

func TestSummarize_Empty(t *testing.T) {
	if s := Summarize(nil); s != (Summary{}) {
		t.Errorf("Summarize(nil) = %+v, want zero value", s)
	}
}
