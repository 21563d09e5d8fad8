package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/discochess/replay/internal/movetext"
)

// CastlingRights records which castling options the record header grants.
// Rights are parsed once from the header and never updated as moves
// apply; a consumer that needs live rights must track them itself.
type CastlingRights struct {
	WhiteKingSide  bool
	WhiteQueenSide bool
	BlackKingSide  bool
	BlackQueenSide bool
}

// String renders the rights in header form, "KQkq" style, or "-" when
// neither side may castle.
func (c CastlingRights) String() string {
	var b []byte
	if c.WhiteKingSide {
		b = append(b, 'K')
	}
	if c.WhiteQueenSide {
		b = append(b, 'Q')
	}
	if c.BlackKingSide {
		b = append(b, 'k')
	}
	if c.BlackQueenSide {
		b = append(b, 'q')
	}
	if len(b) == 0 {
		return "-"
	}
	return string(b)
}

// parseCastling reads the header's castling field. Unknown letters are
// ignored, so "-" and malformed fields both yield no rights.
func parseCastling(field string) CastlingRights {
	var c CastlingRights
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case 'K':
			c.WhiteKingSide = true
		case 'Q':
			c.WhiteQueenSide = true
		case 'k':
			c.BlackKingSide = true
		case 'q':
			c.BlackQueenSide = true
		}
	}
	return c
}

// GameRecord is the parsed form of one game description: the starting
// position, the header metadata, and the raw move tokens in ply order.
type GameRecord struct {
	Position       Position
	ActiveColor    Color
	Castling       CastlingRights
	EnPassant      Square // NoSquare when the header gives "-"
	HalfMoveClock  int
	FullMoveNumber int
	Moves          []string
}

// ParseRecord parses a full game record: a board section, the active
// color, castling rights and an en-passant square, optionally followed
// by the half-move clock, the full-move number and a move list.
//
// The first four fields are mandatory. The clock and move number default
// to 0 and 1; a fifth field that is not a non-negative integer is taken
// as the start of the move list instead. An unparseable en-passant field
// is treated as absent rather than rejected.
func ParseRecord(s string) (*GameRecord, error) {
	fields := strings.Fields(s)
	if len(fields) < 4 {
		return nil, ErrMalformedRecord
	}

	pos, err := DecodeBoard(fields[0])
	if err != nil {
		return nil, fmt.Errorf("decoding board: %w", err)
	}

	var turn Color
	switch fields[1] {
	case "w":
		turn = White
	case "b":
		turn = Black
	default:
		return nil, ErrMalformedRecord
	}

	rec := &GameRecord{
		Position:       pos,
		ActiveColor:    turn,
		Castling:       parseCastling(fields[2]),
		EnPassant:      NoSquare,
		FullMoveNumber: 1,
	}
	if sq, err := ParseSquare(fields[3]); err == nil {
		rec.EnPassant = sq
	}

	rest := fields[4:]
	if n, ok := takeNumber(rest); ok {
		rec.HalfMoveClock = n
		rest = rest[1:]
		if n, ok := takeNumber(rest); ok {
			rec.FullMoveNumber = n
			rest = rest[1:]
		}
	}
	rec.Moves = movetext.Tokenize(strings.Join(rest, " "))

	return rec, nil
}

// takeNumber reads a leading non-negative integer field.
func takeNumber(fields []string) (int, bool) {
	if len(fields) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
