package textutil

import (
	"fmt"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// utf16le transcodes without emitting or consuming a byte order mark.
var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

var terminator = []byte{0x00, 0x00}

// DecodeConsole converts UTF-16LE code units (terminator excluded) to text,
// replacing console placeholders with their display glyphs.
func DecodeConsole(raw []byte) (string, error) {
	if len(raw)%2 != 0 {
		return "", fmt.Errorf("decode console text: odd byte count %d", len(raw))
	}
	t := transform.Chain(utf16le.NewDecoder(), runes.Map(ToGlyph))
	out, _, err := transform.Bytes(t, raw)
	if err != nil {
		return "", fmt.Errorf("decode console text: %w", err)
	}
	return string(out), nil
}

// EncodeConsole maps display glyphs to console placeholders and returns the
// UTF-16LE encoding followed by a two-byte NUL terminator.
func EncodeConsole(text string) ([]byte, error) {
	return encode(transform.Chain(runes.Map(ToConsole), utf16le.NewEncoder()), text)
}

// EncodeUTF16 returns text as UTF-16LE plus terminator with no glyph
// substitution.
func EncodeUTF16(text string) ([]byte, error) {
	return encode(utf16le.NewEncoder(), text)
}

func encode(t transform.Transformer, text string) ([]byte, error) {
	out, _, err := transform.String(t, text)
	if err != nil {
		return nil, fmt.Errorf("encode console text: %w", err)
	}
	buf := make([]byte, 0, len(out)+len(terminator))
	buf = append(buf, out...)
	return append(buf, terminator...), nil
}
