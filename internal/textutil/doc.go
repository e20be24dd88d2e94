// Package textutil converts between the console's UTF-16 text encoding and
// display text.
//
// The console font draws a handful of code points in the 0x80-0xFE range as
// accented Latin letters, inverted punctuation, and button symbols. GlyphTable
// lists that substitution; DecodeConsole and EncodeConsole apply it on top of
// UTF-16LE transcoding, and EncodeUTF16 skips it for strings stored verbatim.
package textutil
