package document_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"gxttool/internal/document"
	"gxttool/internal/gxt"
)

func TestMarshalUnmarshalPreservesOrder(t *testing.T) {
	records := []gxt.Record{
		{Name: "ZULU", Duration: 3, String: "last letter first"},
		{Name: "ALPHA", Duration: 1, String: "Line one\nLine two"},
		{Name: "MIKE", Duration: 4294967295, String: `quotes "and" 'apostrophes'`},
		{Name: "BRAVO", Duration: 0, String: ""},
		{Name: "HUD_01", Duration: 2, String: "¡Pulsa ✕!"},
	}

	data, err := document.Marshal("Decompiled GAME.gxt", records)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.HasPrefix(string(data), "title = ") {
		t.Fatalf("expected title first, got:\n%s", data)
	}

	title, got, err := document.Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v\n%s", err, data)
	}
	if title != "Decompiled GAME.gxt" {
		t.Fatalf("title = %q", title)
	}
	if !reflect.DeepEqual(got, records) {
		t.Fatalf("records mismatch:\n got %+v\nwant %+v", got, records)
	}
}

func TestMarshalConsoleFlag(t *testing.T) {
	data, err := document.Marshal("", []gxt.Record{
		{Name: "RAW", Duration: 1, String: "x", Verbatim: true},
		{Name: "MAPPED", Duration: 1, String: "y"},
	})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if strings.Count(string(data), "console") != 1 {
		t.Fatalf("expected console only on the verbatim record:\n%s", data)
	}
	_, got, err := document.Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !got[0].Verbatim || got[1].Verbatim {
		t.Fatalf("unexpected verbatim flags: %+v", got)
	}
}

func TestMarshalRecordNamedTitle(t *testing.T) {
	records := []gxt.Record{{Name: "title", Duration: 9, String: "a record"}}
	data, err := document.Marshal("Decompiled X.gxt", records)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if strings.Contains(string(data), "Decompiled") {
		t.Fatalf("synthesized title must be dropped on clash:\n%s", data)
	}
	title, got, err := document.Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if title != "" {
		t.Fatalf("title = %q, want empty", title)
	}
	if !reflect.DeepEqual(got, records) {
		t.Fatalf("got %+v want %+v", got, records)
	}
}

func TestMarshalRejectsDuplicateNames(t *testing.T) {
	_, err := document.Marshal("", []gxt.Record{{Name: "A"}, {Name: "A"}})
	var docErr *document.Error
	if !errors.As(err, &docErr) || docErr.Key != "A" {
		t.Fatalf("expected duplicate name error, got %v", err)
	}
}

func TestUnmarshalHandWrittenDocument(t *testing.T) {
	input := `
title = "My translation"

FIRST = { duration = 10, string = "inline" }

[SECOND]
string = "¿Qué?"
duration = 20

[THIRD]
duration = 30
string = """
multi
line"""
console = true
`
	title, got, err := document.Unmarshal([]byte(input))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if title != "My translation" {
		t.Fatalf("title = %q", title)
	}
	want := []gxt.Record{
		{Name: "FIRST", Duration: 10, String: "inline"},
		{Name: "SECOND", Duration: 20, String: "¿Qué?"},
		{Name: "THIRD", Duration: 30, String: "multi\nline", Verbatim: true},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestUnmarshalErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		key   string
	}{
		{"missing duration", "[A]\nstring = \"x\"\n", "A"},
		{"missing string", "[A]\nduration = 1\n", "A"},
		{"negative duration", "[A]\nduration = -1\nstring = \"x\"\n", "A"},
		{"duration too large", "[A]\nduration = 4294967296\nstring = \"x\"\n", "A"},
		{"duration wrong type", "[A]\nduration = \"1\"\nstring = \"x\"\n", "A"},
		{"string wrong type", "[A]\nduration = 1\nstring = 5\n", "A"},
		{"console wrong type", "[A]\nduration = 1\nstring = \"x\"\nconsole = \"yes\"\n", "A"},
		{"scalar record", "B = 5\n", "B"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := document.Unmarshal([]byte(tt.input))
			var docErr *document.Error
			if !errors.As(err, &docErr) {
				t.Fatalf("expected document.Error, got %v", err)
			}
			if docErr.Key != tt.key {
				t.Fatalf("key = %q, want %q", docErr.Key, tt.key)
			}
		})
	}
}

func TestUnmarshalSyntaxError(t *testing.T) {
	if _, _, err := document.Unmarshal([]byte("[A\nduration = 1")); err == nil {
		t.Fatal("expected syntax error")
	}
}

func TestUnmarshalEmptyDocument(t *testing.T) {
	title, got, err := document.Unmarshal([]byte("title = \"only a title\"\n"))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if title != "only a title" || len(got) != 0 {
		t.Fatalf("unexpected result: %q %+v", title, got)
	}
}
