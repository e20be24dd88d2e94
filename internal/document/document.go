// Package document converts GXT records to and from the editable TOML form.
//
// A document has an optional top-level string field "title" followed by one
// table per record, keyed by record name, holding "duration" and "string".
// Record order in the document is the record order in the container, so
// Unmarshal walks the TOML syntax tree rather than relying on map order.
package document

import (
	"bytes"
	"fmt"
	"math"

	"github.com/pelletier/go-toml/v2"
	"github.com/pelletier/go-toml/v2/unstable"

	"gxttool/internal/gxt"
)

// TitleKey is the synthesized top-level field that carries no record data.
const TitleKey = "title"

// Error reports a document that cannot be turned into records.
type Error struct {
	Key    string
	Reason string
}

func (e *Error) Error() string {
	if e.Key == "" {
		return "document: " + e.Reason
	}
	return fmt.Sprintf("document: [%s]: %s", e.Key, e.Reason)
}

type section struct {
	Duration uint32 `toml:"duration"`
	String   string `toml:"string"`
	Console  bool   `toml:"console,omitempty"`
}

type header struct {
	Title string `toml:"title"`
}

// Marshal renders records as a TOML document. The title line is omitted when
// title is empty or a record already uses the title key.
func Marshal(title string, records []gxt.Record) ([]byte, error) {
	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		if _, dup := seen[rec.Name]; dup {
			return nil, &Error{Key: rec.Name, Reason: "duplicate record name"}
		}
		seen[rec.Name] = struct{}{}
	}

	var buf bytes.Buffer
	if _, clash := seen[TitleKey]; title != "" && !clash {
		if err := encode(&buf, header{Title: title}); err != nil {
			return nil, err
		}
	}
	for _, rec := range records {
		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		body := map[string]section{
			rec.Name: {Duration: rec.Duration, String: rec.String, Console: rec.Verbatim},
		}
		if err := encode(&buf, body); err != nil {
			return nil, fmt.Errorf("document: [%s]: %w", rec.Name, err)
		}
	}
	return buf.Bytes(), nil
}

func encode(buf *bytes.Buffer, v any) error {
	enc := toml.NewEncoder(buf)
	enc.SetIndentTables(false)
	return enc.Encode(v)
}

// Unmarshal parses a TOML document into records in document order and
// returns the title field, if present, separately.
func Unmarshal(data []byte) (string, []gxt.Record, error) {
	order, err := recordOrder(data)
	if err != nil {
		return "", nil, err
	}

	var values map[string]any
	if err := toml.Unmarshal(data, &values); err != nil {
		return "", nil, fmt.Errorf("document: %w", err)
	}

	var title string
	if raw, ok := values[TitleKey].(string); ok {
		title = raw
	}

	records := make([]gxt.Record, 0, len(order))
	for _, name := range order {
		raw := values[name]
		if name == TitleKey {
			if _, isString := raw.(string); isString {
				continue
			}
		}
		rec, err := toRecord(name, raw)
		if err != nil {
			return "", nil, err
		}
		records = append(records, rec)
	}
	return title, records, nil
}

// recordOrder lists top-level keys in the order they first appear, whether
// they are declared as [tables], dotted table headers, or inline key/values.
func recordOrder(data []byte) ([]string, error) {
	var p unstable.Parser
	p.Reset(data)

	var order []string
	seen := make(map[string]struct{})
	inTable := false
	for p.NextExpression() {
		expr := p.Expression()
		switch expr.Kind {
		case unstable.Table, unstable.ArrayTable:
			inTable = true
		case unstable.KeyValue:
			if inTable {
				continue
			}
		default:
			continue
		}
		it := expr.Key()
		if !it.Next() {
			continue
		}
		name := string(it.Node().Data)
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		order = append(order, name)
	}
	if err := p.Error(); err != nil {
		return nil, fmt.Errorf("document: %w", err)
	}
	return order, nil
}

func toRecord(name string, raw any) (gxt.Record, error) {
	fields, ok := raw.(map[string]any)
	if !ok {
		return gxt.Record{}, &Error{Key: name, Reason: fmt.Sprintf("expected a table, got %T", raw)}
	}

	rec := gxt.Record{Name: name}

	duration, ok := fields["duration"]
	if !ok {
		return gxt.Record{}, &Error{Key: name, Reason: "missing duration"}
	}
	n, ok := duration.(int64)
	if !ok {
		return gxt.Record{}, &Error{Key: name, Reason: fmt.Sprintf("duration must be an integer, got %T", duration)}
	}
	if n < 0 || n > math.MaxUint32 {
		return gxt.Record{}, &Error{Key: name, Reason: fmt.Sprintf("duration %d outside 0..%d", n, uint32(math.MaxUint32))}
	}
	rec.Duration = uint32(n)

	text, ok := fields["string"]
	if !ok {
		return gxt.Record{}, &Error{Key: name, Reason: "missing string"}
	}
	if rec.String, ok = text.(string); !ok {
		return gxt.Record{}, &Error{Key: name, Reason: fmt.Sprintf("string must be text, got %T", text)}
	}

	if console, ok := fields["console"]; ok {
		if rec.Verbatim, ok = console.(bool); !ok {
			return gxt.Record{}, &Error{Key: name, Reason: fmt.Sprintf("console must be a boolean, got %T", console)}
		}
	}
	return rec, nil
}
