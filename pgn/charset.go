package pgn

import (
	"bytes"
	"errors"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// DecodeText converts raw PGN bytes to a UTF-8 string. Valid UTF-8
// passes through after stripping a byte-order mark; anything else is
// decoded as Windows-1252, the encoding legacy French PGN archives
// ship in.
func DecodeText(data []byte) (string, error) {
	if bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) {
		data = data[3:]
	}
	if utf8.Valid(data) {
		return string(data), nil
	}
	reader := transform.NewReader(bytes.NewReader(data), charmap.Windows1252.NewDecoder())
	decoded, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(decoded) {
		return "", errors.New("pgn: text is neither UTF-8 nor Windows-1252")
	}
	return string(decoded), nil
}
