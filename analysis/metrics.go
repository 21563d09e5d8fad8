// Package analysis derives per-game metrics from generated replays and
// summarizes them across a collection.
package analysis

import (
	"github.com/discochess/replay"
	"github.com/discochess/replay/game"
)

// GameMetrics are the measured facts about one replay. The parquet tags
// define the export schema.
type GameMetrics struct {
	ID           string `parquet:"name=id, type=BYTE_ARRAY, convertedtype=UTF8"`
	Plies        int32  `parquet:"name=plies, type=INT32"`
	Captures     int32  `parquet:"name=captures, type=INT32"`
	Unresolved   int32  `parquet:"name=unresolved, type=INT32"`
	WhiteCastled bool   `parquet:"name=white_castled, type=BOOLEAN"`
	BlackCastled bool   `parquet:"name=black_castled, type=BOOLEAN"`
}

// Measure derives metrics from one replay. A capture is a resolved move
// whose target square was occupied in the position before the ply;
// castling shows up as a move carrying a secondary rook relocation.
func Measure(id string, rep *replay.Replay) GameMetrics {
	m := GameMetrics{
		ID:    id,
		Plies: int32(len(rep.Frames)),
	}

	prior := rep.Record.Position
	for _, frame := range rep.Frames {
		if frame.Move == nil {
			m.Unresolved++
			prior = frame.Position
			continue
		}
		if prior.PieceAt(frame.Move.To) != game.NoPiece {
			m.Captures++
		}
		if frame.Move.Secondary != nil {
			if frame.Move.Piece.Color() == game.White {
				m.WhiteCastled = true
			} else {
				m.BlackCastled = true
			}
		}
		prior = frame.Position
	}

	return m
}
