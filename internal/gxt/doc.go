// Package gxt reads and writes the GXT game-text container used by the PSP,
// PS2, and PC builds of the game.
//
// A GXT file is two framed chunks. TKEY holds fixed-size key entries
// (data offset, NUL-padded name, duration) and TDAT holds the concatenated
// NUL-terminated UTF-16LE strings those offsets point into. The only
// structural difference between platforms is the width of the name field,
// which Platform carries.
//
// Encode and Decode work on fully buffered byte slices. Neither retains state
// between calls, and Decode never returns partial results: any framing or
// offset problem aborts with a *FormatError.
package gxt
