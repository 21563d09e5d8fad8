// Package game models chess positions and resolves algebraic move text
// against them.
//
// The rules implemented here are deliberately simplified for playback
// rather than adjudication: there is no check or checkmate detection, no
// en-passant capture, no promotion handling, and castling is applied
// without verifying that the king or rook is in place. Resolution only
// needs enough legality to pick the one piece a move token refers to.
package game

import "errors"

// Sentinel errors for well-defined failure conditions.
var (
	// ErrMalformedBoard indicates a board section that does not decode
	// to 8 ranks of 8 files.
	ErrMalformedBoard = errors.New("game: malformed board")

	// ErrMalformedRecord indicates a record missing one of the four
	// mandatory header fields or naming an invalid active color.
	ErrMalformedRecord = errors.New("game: malformed record")

	// ErrUnresolvedMove indicates a move token that matches no piece
	// able to make the move.
	ErrUnresolvedMove = errors.New("game: unresolved move")
)
