package game

import (
	"errors"
	"testing"
)

const (
	startBoard       = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"
	frenchStartBoard = "tcfdrfct/pppppppp/8/8/8/8/PPPPPPPP/TCFDRFCT"
	emptyBoard       = "8/8/8/8/8/8/8/8"
)

// mustDecode decodes a board section or fails the test.
func mustDecode(t *testing.T, section string) Position {
	t.Helper()
	pos, err := DecodeBoard(section)
	if err != nil {
		t.Fatalf("DecodeBoard(%q) error = %v", section, err)
	}
	return pos
}

func TestDecodeBoard(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		count   int
		pieces  map[Square]Piece
		wantErr bool
	}{
		{
			name:  "starting position",
			input: startBoard,
			count: 32,
			pieces: map[Square]Piece{
				E1: WhiteKing,
				D1: WhiteQueen,
				A8: BlackRook,
				G8: BlackKnight,
				E2: WhitePawn,
				H7: BlackPawn,
			},
		},
		{
			name:  "empty board",
			input: emptyBoard,
			count: 0,
		},
		{
			name:  "position after e4",
			input: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR",
			count: 32,
			pieces: map[Square]Piece{
				E4: WhitePawn,
				E2: NoPiece,
			},
		},
		{
			name:  "lone kings",
			input: "4k3/8/8/8/8/8/8/4K3",
			count: 2,
			pieces: map[Square]Piece{
				E8: BlackKing,
				E1: WhiteKing,
			},
		},
		{
			name:    "too few ranks",
			input:   "8/8/8/8/8/8/8",
			wantErr: true,
		},
		{
			name:    "too many ranks",
			input:   "8/8/8/8/8/8/8/8/8",
			wantErr: true,
		},
		{
			name:    "rank short of files",
			input:   "rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",
			wantErr: true,
		},
		{
			name:    "rank over eight files",
			input:   "rnbqkbnr/ppppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",
			wantErr: true,
		},
		{
			name:    "digits overflow a rank",
			input:   "rnbqkbnr/pppppppp/44p/8/8/8/PPPPPPPP/RNBQKBNR",
			wantErr: true,
		},
		{
			name:    "unrecognized character",
			input:   "rnbqkbnr/pppppppp/8/8/4x3/8/PPPPPPPP/RNBQKBNR",
			wantErr: true,
		},
		{
			name:    "zero digit",
			input:   "rnbqkbnr/pppppppp/8/8/08/8/PPPPPPPP/RNBQKBNR",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeBoard(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("DecodeBoard(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedBoard) {
					t.Errorf("DecodeBoard(%q) error = %v, want ErrMalformedBoard", tt.input, err)
				}
				return
			}
			if got.Count() != tt.count {
				t.Errorf("Count() = %d, want %d", got.Count(), tt.count)
			}
			for sq, want := range tt.pieces {
				if p := got.PieceAt(sq); p != want {
					t.Errorf("PieceAt(%v) = %v, want %v", sq, p, want)
				}
			}
		})
	}
}

func TestDecodeBoardFrenchEquivalence(t *testing.T) {
	french := mustDecode(t, frenchStartBoard)
	standard := mustDecode(t, startBoard)

	if french.Count() != standard.Count() {
		t.Fatalf("french Count() = %d, standard %d", french.Count(), standard.Count())
	}
	if got, want := french.EncodeBoard(), standard.EncodeBoard(); got != want {
		t.Errorf("french board encodes to %q, want %q", got, want)
	}
}

func TestEncodeBoard(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "starting position", input: startBoard},
		{name: "empty board", input: emptyBoard},
		{name: "after e4", input: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR"},
		{name: "scattered endgame", input: "6k1/5p2/8/3Q4/8/1P6/5PPP/6K1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustDecode(t, tt.input)
			if got := pos.EncodeBoard(); got != tt.input {
				t.Errorf("EncodeBoard() = %q, want %q", got, tt.input)
			}
		})
	}
}

func TestNewPositionCopies(t *testing.T) {
	in := map[Square]Piece{E1: WhiteKing, E8: BlackKing, D4: NoPiece}
	pos := NewPosition(in)

	if pos.Count() != 2 {
		t.Errorf("Count() = %d, want 2 (NoPiece entries dropped)", pos.Count())
	}

	// Mutating the source map must not leak into the position.
	in[A1] = WhiteRook
	if pos.PieceAt(A1) != NoPiece {
		t.Errorf("PieceAt(A1) = %v after mutating input, want NoPiece", pos.PieceAt(A1))
	}
}

func TestPositionSquaresSorted(t *testing.T) {
	pos := mustDecode(t, startBoard)
	squares := pos.Squares()

	if len(squares) != 32 {
		t.Fatalf("len(Squares()) = %d, want 32", len(squares))
	}
	for i := 1; i < len(squares); i++ {
		if squares[i-1] >= squares[i] {
			t.Fatalf("Squares() not ascending at %d: %v then %v", i, squares[i-1], squares[i])
		}
	}
}

func TestPositionApply(t *testing.T) {
	t.Run("pawn push", func(t *testing.T) {
		pos := mustDecode(t, startBoard)
		next := pos.Apply(MoveDetail{Move: Move{From: E2, To: E4, Piece: WhitePawn}})

		if next.PieceAt(E2) != NoPiece {
			t.Errorf("PieceAt(E2) = %v, want NoPiece", next.PieceAt(E2))
		}
		if next.PieceAt(E4) != WhitePawn {
			t.Errorf("PieceAt(E4) = %v, want WhitePawn", next.PieceAt(E4))
		}
		if next.Count() != 32 {
			t.Errorf("Count() = %d, want 32", next.Count())
		}
		// The original position is untouched.
		if pos.PieceAt(E2) != WhitePawn {
			t.Errorf("original PieceAt(E2) = %v, want WhitePawn", pos.PieceAt(E2))
		}
	})

	t.Run("capture removes the target", func(t *testing.T) {
		pos := mustDecode(t, "4k3/8/8/3p4/8/8/8/3RK3")
		next := pos.Apply(MoveDetail{Move: Move{From: D1, To: D5, Piece: WhiteRook}})

		if next.PieceAt(D5) != WhiteRook {
			t.Errorf("PieceAt(D5) = %v, want WhiteRook", next.PieceAt(D5))
		}
		if next.Count() != pos.Count()-1 {
			t.Errorf("Count() = %d, want %d", next.Count(), pos.Count()-1)
		}
	})

	t.Run("castling applies the secondary move", func(t *testing.T) {
		pos := mustDecode(t, "4k3/8/8/8/8/8/8/4K2R")
		rook := Move{From: H1, To: F1, Piece: WhiteRook}
		next := pos.Apply(MoveDetail{
			Move:      Move{From: E1, To: G1, Piece: WhiteKing},
			Secondary: &rook,
		})

		if got := next.EncodeBoard(); got != "4k3/8/8/8/8/8/8/5RK1" {
			t.Errorf("EncodeBoard() = %q, want %q", got, "4k3/8/8/8/8/8/8/5RK1")
		}
	})
}

func BenchmarkDecodeBoard(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = DecodeBoard(startBoard)
	}
}

func BenchmarkPositionApply(b *testing.B) {
	pos, _ := DecodeBoard(startBoard)
	d := MoveDetail{Move: Move{From: E2, To: E4, Piece: WhitePawn}}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pos.Apply(d)
	}
}
