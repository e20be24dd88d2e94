package textutil

// GlyphPair maps a console placeholder code point to the glyph the console
// font draws for it.
type GlyphPair struct {
	Code  rune
	Glyph rune
}

// glyphTable is the console font's high-range substitution. Placeholders are
// the single-byte values 0x80-0xFE widened to UTF-16.
var glyphTable = [...]GlyphPair{
	{0x80, 'À'},
	{0x81, 'Á'},
	{0x82, 'Â'},
	{0x83, 'Ä'},
	{0x84, 'Æ'},
	{0x85, 'Ç'},
	{0x86, 'È'},
	{0x87, 'É'},
	{0x88, 'Ê'},
	{0x89, 'Ë'},
	{0x8A, 'Ì'},
	{0x8B, 'Í'},
	{0x8C, 'Î'},
	{0x8D, 'Ï'},
	{0x8E, 'Ò'},
	{0x8F, 'Ó'},
	{0x90, 'Ô'},
	{0x91, 'Ö'},
	{0x92, 'Ù'},
	{0x93, 'Ú'},
	{0x94, 'Û'},
	{0x95, 'Ü'},
	{0x96, 'ß'},
	{0x97, 'à'},
	{0x98, 'á'},
	{0x99, 'â'},
	{0x9A, 'ä'},
	{0x9B, 'æ'},
	{0x9C, 'ç'},
	{0x9D, 'è'},
	{0x9E, 'é'},
	{0x9F, 'ê'},
	{0xA0, 'ë'},
	{0xA1, 'ì'},
	{0xA2, 'í'},
	{0xA3, 'î'},
	{0xA4, 'ï'},
	{0xA5, 'ò'},
	{0xA6, 'ó'},
	{0xA7, 'ô'},
	{0xA8, 'ö'},
	{0xA9, 'ù'},
	{0xAA, 'ú'},
	{0xAB, 'û'},
	{0xAC, 'ü'},
	{0xAD, 'Ñ'},
	{0xAE, 'ñ'},
	{0xAF, '¿'},
	{0xB0, '¡'},
	{0xF3, '°'},
	{0xF4, '▲'}, // U+25B2
	{0xF5, '⬤'}, // U+2B24
	{0xF6, '✕'}, // U+2715
	{0xF7, '■'}, // U+25A0
	{0xF9, '★'}, // U+2605
	{0xFA, '®'},
	{0xFB, '©'},
	{0xFE, '™'},
}

var (
	codeToGlyph = make(map[rune]rune, len(glyphTable))
	glyphToCode = make(map[rune]rune, len(glyphTable))
)

func init() {
	for _, pair := range glyphTable {
		codeToGlyph[pair.Code] = pair.Glyph
		glyphToCode[pair.Glyph] = pair.Code
	}
}

// GlyphTable returns a copy of the substitution table in placeholder order.
func GlyphTable() []GlyphPair {
	out := make([]GlyphPair, len(glyphTable))
	copy(out, glyphTable[:])
	return out
}

// ToGlyph maps a console placeholder to its display glyph. Other runes pass
// through unchanged.
func ToGlyph(r rune) rune {
	if g, ok := codeToGlyph[r]; ok {
		return g
	}
	return r
}

// ToConsole maps a display glyph back to its console placeholder. Other runes
// pass through unchanged.
func ToConsole(r rune) rune {
	if c, ok := glyphToCode[r]; ok {
		return c
	}
	return r
}
