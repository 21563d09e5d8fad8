package game

import (
	"strings"

	"github.com/discochess/replay/internal/notation"
)

// Resolve determines the concrete move a single token denotes on pos for
// the side to move. Tokens may use the standard or the French piece
// alphabet and may carry trailing check, mate or annotation glyphs.
//
// Candidates are examined in ascending square order, so resolution is
// deterministic even for under-specified tokens that several pieces
// could satisfy; the lowest matching square wins. Returns
// ErrUnresolvedMove when no piece of the right type can make the move.
func Resolve(pos Position, token string, turn Color) (MoveDetail, error) {
	if d, ok := castlingMove(token, turn); ok {
		return d, nil
	}

	t := notation.NormalizeToken(token)
	t = strings.TrimRight(t, "+#!?")

	pieceType := Pawn
	rest := t
	if t != "" {
		switch t[0] {
		case 'K', 'Q', 'R', 'B', 'N':
			pieceType = PieceFromLetter(t[0]).Type()
			rest = t[1:]
		}
	}

	// The remainder is [disambiguation]['x']<target>. Without a capture
	// marker, anything before the final two characters disambiguates.
	var disambig string
	if i := strings.IndexByte(rest, 'x'); i >= 0 {
		disambig = rest[:i]
		rest = rest[i+1:]
	} else if len(rest) > 2 {
		disambig = rest[:len(rest)-2]
		rest = rest[len(rest)-2:]
	}

	to, err := ParseSquare(rest)
	if err != nil {
		return MoveDetail{}, ErrUnresolvedMove
	}

	piece := PieceOf(turn, pieceType)
	for _, from := range pos.Squares() {
		if pos.PieceAt(from) != piece {
			continue
		}
		if disambig != "" && !strings.Contains(from.String(), disambig) {
			continue
		}
		if legalMove(from, to, piece, pos) {
			return MoveDetail{Move: Move{From: from, To: to, Piece: piece}}, nil
		}
	}

	return MoveDetail{}, ErrUnresolvedMove
}

// castlingMove matches the exact castling tokens and returns the fixed
// king move with the rook relocation as its secondary. Nothing verifies
// that the king and rook are in place or that the path is clear.
func castlingMove(token string, turn Color) (MoveDetail, bool) {
	var kingFrom, kingTo, rookFrom, rookTo Square
	switch {
	case token == "O-O" && turn == White:
		kingFrom, kingTo, rookFrom, rookTo = E1, G1, H1, F1
	case token == "O-O-O" && turn == White:
		kingFrom, kingTo, rookFrom, rookTo = E1, C1, A1, D1
	case token == "O-O" && turn == Black:
		kingFrom, kingTo, rookFrom, rookTo = E8, G8, H8, F8
	case token == "O-O-O" && turn == Black:
		kingFrom, kingTo, rookFrom, rookTo = E8, C8, A8, D8
	default:
		return MoveDetail{}, false
	}

	rook := Move{From: rookFrom, To: rookTo, Piece: PieceOf(turn, Rook)}
	return MoveDetail{
		Move:      Move{From: kingFrom, To: kingTo, Piece: PieceOf(turn, King)},
		Secondary: &rook,
	}, true
}

// legalMove reports whether piece standing on from may move to to. It
// covers movement geometry, blocking pieces on sliding paths and the
// pawn push and capture rules. Check safety, en passant and promotion
// are outside its contract.
func legalMove(from, to Square, piece Piece, pos Position) bool {
	if target := pos.PieceAt(to); target != NoPiece && target.Color() == piece.Color() {
		return false
	}

	df := int8(to.File() - from.File())
	dr := int8(to.Rank() - from.Rank())
	adf, adr := abs(df), abs(dr)

	switch piece.Type() {
	case Pawn:
		return legalPawnMove(from, to, piece.Color(), pos, df, dr)
	case Rook:
		return (df == 0 || dr == 0) && !pieceBetween(from, to, pos)
	case Knight:
		return (adf == 2 && adr == 1) || (adf == 1 && adr == 2)
	case Bishop:
		return adf == adr && !pieceBetween(from, to, pos)
	case Queen:
		return (df == 0 || dr == 0 || adf == adr) && !pieceBetween(from, to, pos)
	case King:
		return adf <= 1 && adr <= 1
	}
	return false
}

// legalPawnMove checks the pawn rules: a single push onto an empty
// square, a double push from the pawn's starting rank over an empty
// square, or a diagonal step onto an occupied square. Same-color targets
// were already rejected, so an occupied diagonal target is a capture.
func legalPawnMove(from, to Square, color Color, pos Position, df, dr int8) bool {
	dir, start := int8(1), Rank2
	if color == Black {
		dir, start = -1, Rank7
	}

	switch {
	case df == 0 && dr == dir:
		return pos.PieceAt(to) == NoPiece
	case df == 0 && dr == 2*dir && from.Rank() == start:
		mid := NewSquare(from.File(), from.Rank()+Rank(dir))
		return pos.PieceAt(to) == NoPiece && pos.PieceAt(mid) == NoPiece
	case (df == 1 || df == -1) && dr == dir:
		return pos.PieceAt(to) != NoPiece
	}
	return false
}

// pieceBetween reports whether any square strictly between from and to
// is occupied. It walks in unit steps along the file and rank deltas, so
// it is meaningful only for the straight and diagonal lines that rooks,
// bishops and queens travel.
func pieceBetween(from, to Square, pos Position) bool {
	df := sign(int8(to.File() - from.File()))
	dr := sign(int8(to.Rank() - from.Rank()))

	f := int8(from.File()) + df
	r := int8(from.Rank()) + dr
	for f != int8(to.File()) || r != int8(to.Rank()) {
		if pos.PieceAt(NewSquare(File(f), Rank(r))) != NoPiece {
			return true
		}
		f += df
		r += dr
	}
	return false
}

func sign(d int8) int8 {
	switch {
	case d > 0:
		return 1
	case d < 0:
		return -1
	}
	return 0
}

func abs(d int8) int8 {
	if d < 0 {
		return -d
	}
	return d
}
