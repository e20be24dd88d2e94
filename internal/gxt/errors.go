package gxt

import "fmt"

// Reasons reported by FormatError.
const (
	ReasonMissingTKEY    = "missing TKEY signature"
	ReasonMissingTDAT    = "missing TDAT signature"
	ReasonTruncated      = "truncated stream"
	ReasonMalformedTable = "malformed key table"
	ReasonInvalidOffset  = "invalid data offset"
	ReasonInvalidName    = "invalid record name"
)

// FormatError reports a byte stream that is not a well-formed GXT container.
type FormatError struct {
	Reason string
	// Offset is the stream position where the problem was detected.
	Offset int
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("not a valid GXT file: %s (at byte %d)", e.Reason, e.Offset)
}

func formatErr(reason string, offset int) error {
	return &FormatError{Reason: reason, Offset: offset}
}

// EncodingError reports a record that cannot be represented on the wire.
type EncodingError struct {
	Name   string
	Reason string
}

func (e *EncodingError) Error() string {
	if e.Name == "" {
		return "encode GXT: " + e.Reason
	}
	return fmt.Sprintf("encode GXT: record %q: %s", e.Name, e.Reason)
}
