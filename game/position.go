package game

import (
	"slices"
	"strings"

	"github.com/discochess/replay/internal/notation"
)

// Position is an immutable mapping of occupied squares to pieces. The
// zero value is an empty board. Positions are never mutated in place;
// Apply returns a fresh copy, so values can be shared freely across
// goroutines.
type Position struct {
	pieces map[Square]Piece
}

// NewPosition returns a position holding the given pieces. The input map
// is copied and entries holding NoPiece are dropped.
func NewPosition(pieces map[Square]Piece) Position {
	m := make(map[Square]Piece, len(pieces))
	for sq, p := range pieces {
		if p != NoPiece {
			m[sq] = p
		}
	}
	return Position{pieces: m}
}

// PieceAt returns the piece on sq, or NoPiece when the square is empty.
func (pos Position) PieceAt(sq Square) Piece {
	return pos.pieces[sq]
}

// Count returns the number of occupied squares.
func (pos Position) Count() int {
	return len(pos.pieces)
}

// Squares returns the occupied squares in ascending order, so iteration
// over a position is deterministic.
func (pos Position) Squares() []Square {
	out := make([]Square, 0, len(pos.pieces))
	for sq := range pos.pieces {
		out = append(out, sq)
	}
	slices.Sort(out)
	return out
}

// Apply returns the position after making the move: the piece leaves
// From, anything on To is removed, and the piece lands on To. A castling
// secondary move applies the same way. The receiver is unchanged.
func (pos Position) Apply(d MoveDetail) Position {
	m := make(map[Square]Piece, len(pos.pieces)+1)
	for sq, p := range pos.pieces {
		m[sq] = p
	}
	applyMove(m, d.Move)
	if d.Secondary != nil {
		applyMove(m, *d.Secondary)
	}
	return Position{pieces: m}
}

func applyMove(m map[Square]Piece, mv Move) {
	delete(m, mv.From)
	m[mv.To] = mv.Piece
}

// DecodeBoard parses the board section of a record into a Position. Both
// the standard and the French piece alphabets are accepted; the alphabet
// is detected from the section as a whole before any letter is decoded.
//
// The section must hold exactly 8 ranks separated by '/', listed from
// rank 8 down to rank 1, with the digits 1-8 encoding runs of empty
// squares. A rank whose pieces and digit runs do not cover exactly 8
// files, or any unrecognized character, is malformed.
func DecodeBoard(section string) (Position, error) {
	section = notation.Normalize(section)

	ranks := strings.Split(section, "/")
	if len(ranks) != 8 {
		return Position{}, ErrMalformedBoard
	}

	pieces := make(map[Square]Piece)
	for i, letters := range ranks {
		r := Rank(7 - i)
		f := FileA
		for j := 0; j < len(letters); j++ {
			c := letters[j]
			if c >= '1' && c <= '8' {
				f += File(c - '0')
				continue
			}
			p := PieceFromLetter(c)
			if p == NoPiece || f > FileH {
				return Position{}, ErrMalformedBoard
			}
			pieces[NewSquare(f, r)] = p
			f++
		}
		if f != FileH+1 {
			return Position{}, ErrMalformedBoard
		}
	}

	return Position{pieces: pieces}, nil
}

// EncodeBoard renders the position as a board section in the standard
// alphabet, ranks 8 down to 1, empty squares as digit runs. Decoding the
// result reproduces the position.
func (pos Position) EncodeBoard() string {
	var b strings.Builder
	for r := Rank8; r >= Rank1; r-- {
		if r < Rank8 {
			b.WriteByte('/')
		}
		empty := 0
		for f := FileA; f <= FileH; f++ {
			p := pos.PieceAt(NewSquare(f, r))
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteByte(byte('0' + empty))
				empty = 0
			}
			b.WriteByte(p.Letter())
		}
		if empty > 0 {
			b.WriteByte(byte('0' + empty))
		}
	}
	return b.String()
}

// String returns the board section form of the position.
func (pos Position) String() string {
	return pos.EncodeBoard()
}
