package replay

import "github.com/discochess/replay/game"

// Replay is the generated playback sequence for one game record.
// Replays are immutable once returned.
type Replay struct {
	// Record is the parsed source record.
	Record *game.GameRecord

	// Frames holds one frame per ply of the record's move list.
	Frames []Frame
}

// Frame is the board state after one ply.
type Frame struct {
	// Ply is the 1-based half-move number.
	Ply int

	// Token is the raw move token the frame corresponds to.
	Token string

	// Position is the board after the ply. When the token did not
	// resolve it repeats the previous frame's position.
	Position game.Position

	// Move describes the resolved move, with the rook's relocation as
	// Secondary for castling. It is nil when the token did not resolve.
	Move *game.MoveDetail
}

// Failed returns the indices into Record.Moves whose tokens did not
// resolve. The result is nil when every move resolved.
func (r *Replay) Failed() []int {
	var failed []int
	for i := range r.Frames {
		if r.Frames[i].Move == nil {
			failed = append(failed, i)
		}
	}
	return failed
}

// FinalPosition returns the board after the last ply, or the record's
// starting position when the move list is empty.
func (r *Replay) FinalPosition() game.Position {
	if len(r.Frames) == 0 {
		return r.Record.Position
	}
	return r.Frames[len(r.Frames)-1].Position
}
