package gxt

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"gxttool/internal/textutil"
)

const (
	tagTKEY = "TKEY"
	tagTDAT = "TDAT"

	chunkHeaderSize = 8
)

// Encode serializes records in order into a GXT byte stream for the given
// platform. It fails with *EncodingError before producing any output if a
// name does not fit the platform's name field.
func Encode(records []Record, platform Platform) ([]byte, error) {
	width := platform.NameWidth()
	table := make([]byte, 0, len(records)*platform.EntrySize())
	var data []byte

	for _, rec := range records {
		if err := checkName(rec.Name, width); err != nil {
			return nil, err
		}
		encoded, err := encodeString(rec)
		if err != nil {
			return nil, &EncodingError{Name: rec.Name, Reason: err.Error()}
		}
		if uint64(len(data))+uint64(len(encoded)) > math.MaxUint32 {
			return nil, &EncodingError{Name: rec.Name, Reason: "TDAT chunk exceeds 4 GiB"}
		}

		table = binary.LittleEndian.AppendUint32(table, uint32(len(data)))
		table = appendName(table, rec.Name, width)
		table = binary.LittleEndian.AppendUint32(table, rec.Duration)
		data = append(data, encoded...)
	}
	if uint64(len(table)) > math.MaxUint32 {
		return nil, &EncodingError{Reason: "TKEY chunk exceeds 4 GiB"}
	}

	out := make([]byte, 0, 2*chunkHeaderSize+len(table)+len(data))
	out = appendChunk(out, tagTKEY, table)
	out = appendChunk(out, tagTDAT, data)
	return out, nil
}

func encodeString(rec Record) ([]byte, error) {
	if rec.Verbatim {
		return textutil.EncodeUTF16(rec.String)
	}
	return textutil.EncodeConsole(rec.String)
}

func checkName(name string, width int) error {
	if len(name) > width {
		return &EncodingError{Name: name, Reason: fmt.Sprintf("name is %d bytes, field holds %d", len(name), width)}
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c == 0 || c > 0x7F {
			return &EncodingError{Name: name, Reason: fmt.Sprintf("name byte %d (0x%02X) is not a non-NUL ASCII character", i, c)}
		}
	}
	return nil
}

func appendName(dst []byte, name string, width int) []byte {
	dst = append(dst, name...)
	for i := len(name); i < width; i++ {
		dst = append(dst, 0)
	}
	return dst
}

func appendChunk(dst []byte, tag string, body []byte) []byte {
	dst = append(dst, tag...)
	dst = binary.LittleEndian.AppendUint32(dst, uint32(len(body)))
	return append(dst, body...)
}

// Decode parses a GXT byte stream and returns its records in key-table order.
// Any framing or offset problem is reported as *FormatError.
func Decode(data []byte, platform Platform) ([]Record, error) {
	layout, err := Inspect(data, platform)
	if err != nil {
		return nil, err
	}
	return layout.Records, nil
}

// Inspect parses a GXT byte stream like Decode and additionally reports the
// chunk sizes and per-entry offsets.
func Inspect(data []byte, platform Platform) (*Layout, error) {
	r := &reader{buf: data}

	if err := r.expectTag(tagTKEY, ReasonMissingTKEY); err != nil {
		return nil, err
	}
	tkeySize, err := r.uint32()
	if err != nil {
		return nil, err
	}
	tableStart := r.pos
	table, err := r.next(int(tkeySize))
	if err != nil {
		return nil, err
	}
	entrySize := platform.EntrySize()
	if len(table)%entrySize != 0 {
		return nil, formatErr(ReasonMalformedTable, tableStart)
	}

	entries := make([]Entry, 0, len(table)/entrySize)
	width := platform.NameWidth()
	for off := 0; off < len(table); off += entrySize {
		raw := table[off : off+entrySize]
		name, ok := decodeName(raw[4 : 4+width])
		if !ok {
			return nil, formatErr(ReasonInvalidName, tableStart+off+4)
		}
		entries = append(entries, Entry{
			Offset:   binary.LittleEndian.Uint32(raw[0:4]),
			Name:     name,
			Duration: binary.LittleEndian.Uint32(raw[4+width:]),
		})
	}

	if err := r.expectTag(tagTDAT, ReasonMissingTDAT); err != nil {
		return nil, err
	}
	tdatSize, err := r.uint32()
	if err != nil {
		return nil, err
	}
	// String reads rely on terminators, not on the declared TDAT size.
	dataBase := r.pos

	records := make([]Record, len(entries))
	for i := range entries {
		start := uint64(dataBase) + uint64(entries[i].Offset)
		raw, err := readTerminated(data, start)
		if err != nil {
			return nil, err
		}
		text, err := textutil.DecodeConsole(raw)
		if err != nil {
			return nil, formatErr(ReasonInvalidOffset, int(start))
		}
		entries[i].Size = len(raw) + 2
		records[i] = Record{
			Name:     entries[i].Name,
			Duration: entries[i].Duration,
			String:   text,
		}
	}

	return &Layout{
		Platform: platform,
		TKEYSize: tkeySize,
		TDATSize: tdatSize,
		Entries:  entries,
		Records:  records,
	}, nil
}

// decodeName strips NUL padding from both ends. The remaining bytes must pass
// the same checks Encode applies, so every decoded name can be re-encoded.
func decodeName(raw []byte) (string, bool) {
	raw = bytes.Trim(raw, "\x00")
	for _, c := range raw {
		if c == 0 || c > 0x7F {
			return "", false
		}
	}
	return string(raw), true
}

// readTerminated returns the 16-bit code units starting at start up to, but
// excluding, the first 0x0000 unit.
func readTerminated(data []byte, start uint64) ([]byte, error) {
	if start > uint64(len(data)) {
		return nil, formatErr(ReasonInvalidOffset, len(data))
	}
	pos := int(start)
	for i := pos; i+1 < len(data); i += 2 {
		if data[i] == 0 && data[i+1] == 0 {
			return data[pos:i], nil
		}
	}
	return nil, formatErr(ReasonInvalidOffset, pos)
}

type reader struct {
	buf []byte
	pos int
}

func (r *reader) next(n int) ([]byte, error) {
	if n < 0 || n > len(r.buf)-r.pos {
		return nil, formatErr(ReasonTruncated, r.pos)
	}
	out := r.buf[r.pos : r.pos+n]
	r.pos += n
	return out, nil
}

func (r *reader) expectTag(tag, reason string) error {
	if len(r.buf)-r.pos < len(tag) || string(r.buf[r.pos:r.pos+len(tag)]) != tag {
		return formatErr(reason, r.pos)
	}
	r.pos += len(tag)
	return nil
}

func (r *reader) uint32() (uint32, error) {
	b, err := r.next(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}
