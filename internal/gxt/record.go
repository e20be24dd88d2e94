package gxt

// Record is one named text entry.
type Record struct {
	Name     string
	Duration uint32
	String   string
	// Verbatim skips console glyph substitution when encoding. Decode never
	// sets it.
	Verbatim bool
}

// Entry is a decoded key-table entry together with the size of the string
// data it addresses.
type Entry struct {
	Offset   uint32 `json:"offset"`
	Name     string `json:"name"`
	Duration uint32 `json:"duration"`
	// Size is the encoded string length in bytes, terminator included.
	Size int `json:"size"`
}

// Layout describes the chunk framing of a decoded container.
type Layout struct {
	Platform Platform `json:"platform"`
	TKEYSize uint32   `json:"tkey_size"`
	TDATSize uint32   `json:"tdat_size"`
	Entries  []Entry  `json:"entries"`
	Records  []Record `json:"-"`
}
