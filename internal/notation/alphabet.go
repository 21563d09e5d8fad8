// Package notation converts between the French and standard chess piece
// alphabets.
//
// French notation writes R (roi) for the king, D (dame) for the queen,
// T (tour) for the rook, F (fou) for the bishop and C (cavalier) for the
// knight. D, T, F and C never appear in the standard alphabet, so any of
// them identifies a French text. R and P exist in both alphabets and carry
// no signal on their own.
package notation

import "strings"

// frenchLetters are the letters exclusive to the French alphabet.
const frenchLetters = "DdTtFfCc"

// toStandard maps French piece letters to their standard equivalents.
// Every other byte maps to itself.
var toStandard = func() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = byte(i)
	}
	t['R'], t['r'] = 'K', 'k'
	t['D'], t['d'] = 'Q', 'q'
	t['T'], t['t'] = 'R', 'r'
	t['F'], t['f'] = 'B', 'b'
	t['C'], t['c'] = 'N', 'n'
	return t
}()

// IsFrench reports whether text uses the French piece alphabet. Detection
// keys on D, T, F and C in either case; R and P are shared between the two
// alphabets and do not affect the result.
func IsFrench(text string) bool {
	return strings.ContainsAny(text, frenchLetters)
}

// Normalize converts a French-alphabet text to the standard alphabet.
// The whole text is classified first: if no French-exclusive letter is
// present the input is returned unchanged. Classification must precede
// substitution because the French king letter R shares its glyph with the
// standard rook letter.
func Normalize(text string) string {
	if !IsFrench(text) {
		return text
	}
	b := []byte(text)
	for i := range b {
		b[i] = toStandard[b[i]]
	}
	return string(b)
}

// NormalizeToken converts a move token's leading piece letter from French
// to standard. Only an uppercase leading D, T, F or C converts: a lowercase
// first letter is a pawn's file, not a piece, and a leading R cannot be
// told apart from a standard rook in isolation, so both stay as written.
func NormalizeToken(token string) string {
	if token == "" {
		return token
	}
	switch token[0] {
	case 'D', 'T', 'F', 'C':
		return string(toStandard[token[0]]) + token[1:]
	}
	return token
}
