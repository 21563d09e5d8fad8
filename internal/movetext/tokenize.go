// Package movetext splits a movetext section into individual move tokens.
//
// Tokenizing is purely lexical: move-number markers are stripped and the
// remainder splits on whitespace. Nothing is validated here; a garbage
// token flows through and is only rejected later during resolution.
package movetext

import (
	"regexp"
	"strings"
)

// moveNumber matches move-number markers such as "1." or "24.".
var moveNumber = regexp.MustCompile(`[0-9]+\.`)

// Tokenize splits a movetext section into move tokens in ply order.
// Move-number markers are removed, whitespace collapses, and empty
// tokens are dropped.
func Tokenize(section string) []string {
	return strings.Fields(moveNumber.ReplaceAllString(section, ""))
}
