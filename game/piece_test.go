package game

import (
	"testing"
)

func TestPieceFromLetter(t *testing.T) {
	tests := []struct {
		name   string
		letter byte
		want   Piece
	}{
		{name: "white king", letter: 'K', want: WhiteKing},
		{name: "white pawn", letter: 'P', want: WhitePawn},
		{name: "black queen", letter: 'q', want: BlackQueen},
		{name: "black knight", letter: 'n', want: BlackKnight},
		{name: "digit is no piece", letter: '4', want: NoPiece},
		{name: "slash is no piece", letter: '/', want: NoPiece},
		{name: "unknown letter", letter: 'x', want: NoPiece},
		{name: "high byte", letter: 0xE9, want: NoPiece},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PieceFromLetter(tt.letter); got != tt.want {
				t.Errorf("PieceFromLetter(%q) = %v, want %v", tt.letter, got, tt.want)
			}
		})
	}
}

func TestPieceColorAndType(t *testing.T) {
	for c := White; c <= Black; c++ {
		for pt := King; pt <= Pawn; pt++ {
			p := PieceOf(c, pt)
			if p == NoPiece {
				t.Fatalf("PieceOf(%v, %d) = NoPiece", c, pt)
			}
			if p.Color() != c {
				t.Errorf("PieceOf(%v, %d).Color() = %v", c, pt, p.Color())
			}
			if p.Type() != pt {
				t.Errorf("PieceOf(%v, %d).Type() = %d", c, pt, p.Type())
			}
			if back := PieceFromLetter(p.Letter()); back != p {
				t.Errorf("PieceFromLetter(%q) = %v, want %v", p.Letter(), back, p)
			}
		}
	}
}

func TestPieceOfNoType(t *testing.T) {
	if got := PieceOf(White, NoPieceType); got != NoPiece {
		t.Errorf("PieceOf(White, NoPieceType) = %v, want NoPiece", got)
	}
}

func TestColorOther(t *testing.T) {
	if White.Other() != Black || Black.Other() != White {
		t.Errorf("Other() = %v/%v, want Black/White", White.Other(), Black.Other())
	}
}

func TestColorString(t *testing.T) {
	if White.String() != "w" || Black.String() != "b" {
		t.Errorf("String() = %q/%q, want w/b", White.String(), Black.String())
	}
}
