package game

// Move relocates a single piece from one square to another. Any piece on
// the destination square is captured implicitly when the move applies.
type Move struct {
	From  Square
	To    Square
	Piece Piece
}

// MoveDetail is a fully resolved move token. Secondary is non-nil only
// for castling, where it carries the rook's relocation alongside the
// king's move.
type MoveDetail struct {
	Move
	Secondary *Move
}
