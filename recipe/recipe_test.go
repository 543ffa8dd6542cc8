package recipe

import (
	"errors"
	"strings"
	"testing"

	"pkt.systems/mdb"
)

func TestDecodeYAMLBuildsDocument(t *testing.T) {
	src := strings.Join([]string{
		"name: notes",
		"elements:",
		"  - kind: heading",
		"    text: Title",
		"    level: 2",
		"  - kind: paragraph",
		"    text: Body",
		"  - kind: link",
		"    url: https://example.com",
		"    text: Example",
		"    title: Home",
		"  - kind: image",
		"    url: https://example.com/a.png",
		"    alt: A",
		"  - kind: ordered_list",
		"    items: [one, two]",
		"  - kind: code",
		"    text: go test",
		"  - kind: emoji",
		"    value: \"🚀\"",
	}, "\n")
	r, err := Decode(strings.NewReader(src))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if r.Name != "notes" {
		t.Fatalf("name: want %q got %q", "notes", r.Name)
	}
	doc, err := r.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	want := strings.Join([]string{
		"## Title",
		"Body",
		`[Example](https://example.com "Home")`,
		"![A](https://example.com/a.png)",
		"1. one",
		"2. two",
		"`go test`",
		"🚀",
	}, "\n")
	if got := doc.Render(); got != want {
		t.Fatalf("render mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestDecodeJSON(t *testing.T) {
	src := `{"elements": [{"kind": "bold", "text": "B"}, {"kind": "horizontal_rule"}, {"kind": "italic", "text": "I"}]}`
	r, err := Decode(strings.NewReader(src))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	doc, err := r.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got, want := doc.Render(), "**B**\n\n---\n\n*I*"; got != want {
		t.Fatalf("want %q got %q", want, got)
	}
}

func TestDecodeEmptyInput(t *testing.T) {
	r, err := Decode(strings.NewReader(""))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(r.Elements) != 0 {
		t.Fatalf("expected no elements, got %d", len(r.Elements))
	}
}

func TestDecodeRejectsUnknownField(t *testing.T) {
	src := "elements:\n  - kind: paragraph\n    txt: typo\n"
	if _, err := Decode(strings.NewReader(src)); err == nil {
		t.Fatalf("expected error for unknown field")
	}
}

func TestDecodeRejectsBinary(t *testing.T) {
	_, err := Parse([]byte{'a', 0x00})
	if !errors.Is(err, ErrBinaryInput) {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
}

func TestApplyReportsUnknownKindWithoutAppending(t *testing.T) {
	r := &Recipe{Elements: []Entry{
		{Kind: "paragraph", Text: "ok"},
		{Kind: "table"},
	}}
	b := mdb.New()
	err := r.Apply(b)
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
	var entryErr *EntryError
	if !errors.As(err, &entryErr) {
		t.Fatalf("expected *EntryError, got %T", err)
	}
	if entryErr.Index != 1 || entryErr.Kind != "table" {
		t.Fatalf("unexpected entry error: %+v", entryErr)
	}
	if b.Count() != 0 {
		t.Fatalf("expected nothing appended, got %d elements", b.Count())
	}
}

func TestEntryElementDefaults(t *testing.T) {
	empty := ""
	cases := []struct {
		entry Entry
		want  string
	}{
		{Entry{Kind: "heading", Text: "H"}, "# H"},
		{Entry{Kind: "heading", Text: "H", Level: 9}, "###### H"},
		{Entry{Kind: "code", Code: "x"}, "`x`"},
		{Entry{Kind: "emoji", Text: ":)"}, ":)"},
		{Entry{Kind: "code_block", Code: "x"}, "```\nx\n```"},
		{Entry{Kind: "blockquote", Text: "a\nb"}, "> a\n> b"},
		{Entry{Kind: "unordered_list", Items: []string{"a", "b"}}, "- a\n- b"},
		{Entry{Kind: "link", URL: "u", Text: "t", Title: &empty}, `[t](u "")`},
		{Entry{Kind: "image", URL: "u", Alt: "a", Title: &empty}, `![a](u "")`},
	}
	for _, tc := range cases {
		el, err := tc.entry.Element()
		if err != nil {
			t.Fatalf("%s: %v", tc.entry.Kind, err)
		}
		if got := el.Render(); got != tc.want {
			t.Fatalf("%s: want %q got %q", tc.entry.Kind, tc.want, got)
		}
	}
}

func TestEntryRejectsFieldsOfOtherKinds(t *testing.T) {
	cases := []struct {
		entry Entry
		field string
	}{
		{Entry{Kind: "paragraph", Text: "p", Items: []string{"x"}}, "items"},
		{Entry{Kind: "horizontal_rule", Text: "x"}, "text"},
		{Entry{Kind: "heading", Text: "h", Language: "go"}, "language"},
		{Entry{Kind: "image", URL: "u", Text: "t"}, "text"},
	}
	for _, tc := range cases {
		_, err := tc.entry.Element()
		if !errors.Is(err, ErrFieldNotApplicable) {
			t.Fatalf("%s: expected ErrFieldNotApplicable, got %v", tc.entry.Kind, err)
		}
		if !strings.Contains(err.Error(), tc.field) {
			t.Fatalf("%s: error %q does not name %q", tc.entry.Kind, err, tc.field)
		}
	}
}

func TestApplyReportsInapplicableField(t *testing.T) {
	r, err := Parse([]byte("elements:\n  - kind: paragraph\n    text: p\n    items: [a]\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var entryErr *EntryError
	if err := r.Apply(mdb.New()); !errors.As(err, &entryErr) || entryErr.Index != 0 {
		t.Fatalf("expected *EntryError for entry 0, got %v", err)
	}
}

func TestDecodeRejectsOversizedInput(t *testing.T) {
	_, err := Decode(strings.NewReader(strings.Repeat("#", MaxSize+1)))
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
	if _, err := Parse(make([]byte, MaxSize+1)); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge from Parse, got %v", err)
	}
}
