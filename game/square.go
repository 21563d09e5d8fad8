package game

import "fmt"

// File is a board column, 0 (file a) through 7 (file h).
type File int8

// Rank is a board row, 0 (rank 1) through 7 (rank 8).
type Rank int8

// Board files.
const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// Board ranks.
const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// Square is a board square, rank-major: A1 is 0 and H8 is 63.
type Square int8

// NoSquare marks the absence of a square, used for optional fields such
// as the en-passant target.
const NoSquare Square = -1

// Board squares.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// NewSquare returns the square at the given file and rank.
func NewSquare(f File, r Rank) Square {
	return Square(int8(r)*8 + int8(f))
}

// ParseSquare parses a two-character square name such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, fmt.Errorf("game: invalid square %q", s)
	}
	return NewSquare(File(s[0]-'a'), Rank(s[1]-'1')), nil
}

// File returns the square's file.
func (s Square) File() File { return File(s % 8) }

// Rank returns the square's rank.
func (s Square) Rank() Rank { return Rank(s / 8) }

// String returns the square in algebraic form, for example "e4".
// Squares off the board, including NoSquare, render as "-".
func (s Square) String() string {
	if s < A1 || s > H8 {
		return "-"
	}
	return string([]byte{byte('a' + s.File()), byte('1' + s.Rank())})
}
