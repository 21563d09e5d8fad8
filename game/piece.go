package game

// Color identifies a side.
type Color int8

// The two sides.
const (
	White Color = iota
	Black
)

// Other returns the opposing color.
func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

// String returns the record-header form of the color, "w" or "b".
func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// PieceType identifies a piece's role, independent of color.
type PieceType int8

// Piece roles.
const (
	NoPieceType PieceType = iota
	King
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

// Piece is one of the twelve colored chess pieces. The zero value NoPiece
// marks an empty square.
type Piece int8

// The twelve pieces.
const (
	NoPiece Piece = iota
	WhiteKing
	WhiteQueen
	WhiteRook
	WhiteBishop
	WhiteKnight
	WhitePawn
	BlackKing
	BlackQueen
	BlackRook
	BlackBishop
	BlackKnight
	BlackPawn
)

// pieceLetters maps each piece to its standard letter, uppercase for white.
var pieceLetters = [13]byte{'-', 'K', 'Q', 'R', 'B', 'N', 'P', 'k', 'q', 'r', 'b', 'n', 'p'}

// pieceFromLetter maps standard piece letters to pieces, NoPiece elsewhere.
var pieceFromLetter = func() [128]Piece {
	var t [128]Piece
	t['K'], t['Q'], t['R'], t['B'], t['N'], t['P'] = WhiteKing, WhiteQueen, WhiteRook, WhiteBishop, WhiteKnight, WhitePawn
	t['k'], t['q'], t['r'], t['b'], t['n'], t['p'] = BlackKing, BlackQueen, BlackRook, BlackBishop, BlackKnight, BlackPawn
	return t
}()

// PieceOf returns the piece of the given color and type.
func PieceOf(c Color, t PieceType) Piece {
	if t == NoPieceType {
		return NoPiece
	}
	if c == Black {
		return Piece(int8(t) + 6)
	}
	return Piece(t)
}

// PieceFromLetter returns the piece written as a standard-alphabet letter,
// or NoPiece when the byte names no piece.
func PieceFromLetter(c byte) Piece {
	if c > 127 {
		return NoPiece
	}
	return pieceFromLetter[c]
}

// Color returns the piece's color. The result is meaningless for NoPiece.
func (p Piece) Color() Color {
	if p >= BlackKing {
		return Black
	}
	return White
}

// Type returns the piece's role, NoPieceType for NoPiece.
func (p Piece) Type() PieceType {
	switch {
	case p == NoPiece:
		return NoPieceType
	case p >= BlackKing:
		return PieceType(p - 6)
	}
	return PieceType(p)
}

// Letter returns the piece's standard one-letter form, '-' for NoPiece.
func (p Piece) Letter() byte {
	if p < NoPiece || p > BlackPawn {
		return '-'
	}
	return pieceLetters[p]
}

// String returns the piece's standard letter as a string.
func (p Piece) String() string {
	return string(p.Letter())
}
