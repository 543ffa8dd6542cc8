package mdb

import (
	"bytes"
	"testing"
)

func TestDocumentMutation(t *testing.T) {
	a, b, c := NewParagraph("a"), NewParagraph("b"), NewParagraph("c")
	doc := NewDocument(a, b, c)
	if doc.Count() != 3 {
		t.Fatalf("count: want 3 got %d", doc.Count())
	}

	if !doc.RemoveAt(1) {
		t.Fatalf("RemoveAt(1) reported failure")
	}
	if doc.Count() != 2 {
		t.Fatalf("count after remove: want 2 got %d", doc.Count())
	}
	if got, ok := doc.Get(1); !ok || got != c {
		t.Fatalf("Get(1) after remove: want %v got %v (ok=%v)", c, got, ok)
	}

	x := NewBold("x")
	if !doc.Replace(0, x) {
		t.Fatalf("Replace(0) reported failure")
	}
	if got, _ := doc.Get(0); got != x {
		t.Fatalf("Get(0) after replace: want %v got %v", x, got)
	}
	if doc.Count() != 2 {
		t.Fatalf("count after replace: want 2 got %d", doc.Count())
	}
	if got, want := doc.Render(), "**x**\nc"; got != want {
		t.Fatalf("render: want %q got %q", want, got)
	}
}

func TestDocumentOutOfRangeIsNoOp(t *testing.T) {
	doc := NewDocument(NewParagraph("a"), NewParagraph("b"))
	before := doc.Render()
	for _, i := range []int{-1, 2, 99} {
		if _, ok := doc.Get(i); ok {
			t.Fatalf("Get(%d) should report absence", i)
		}
		if doc.Replace(i, NewParagraph("z")) {
			t.Fatalf("Replace(%d) should report failure", i)
		}
		if doc.RemoveAt(i) {
			t.Fatalf("RemoveAt(%d) should report failure", i)
		}
		if doc.Has(i) {
			t.Fatalf("Has(%d) should be false", i)
		}
	}
	if doc.Count() != 2 || doc.Render() != before {
		t.Fatalf("document changed: %q", doc.Render())
	}
}

func TestDocumentIgnoresNil(t *testing.T) {
	doc := NewDocument(nil, NewParagraph("a"))
	doc.Append(nil)
	if doc.Replace(0, nil) {
		t.Fatalf("Replace with nil should fail")
	}
	if doc.Count() != 1 {
		t.Fatalf("count: want 1 got %d", doc.Count())
	}
}

func TestDocumentClear(t *testing.T) {
	doc := NewDocument(NewHeading("Title", 1), NewParagraph("Content"))
	doc.Clear()
	if doc.Count() != 0 {
		t.Fatalf("count after clear: %d", doc.Count())
	}
	if doc.Render() != "" {
		t.Fatalf("render after clear: %q", doc.Render())
	}
	doc.Append(NewParagraph("again"))
	if doc.Render() != "again" {
		t.Fatalf("render after reuse: %q", doc.Render())
	}
}

func TestDocumentRenderJoin(t *testing.T) {
	cases := []struct {
		name  string
		elems []Element
		want  string
	}{
		{"empty", nil, ""},
		{"single", []Element{NewParagraph("only")}, "only"},
		{"heading and body", []Element{NewHeading("Title", 1), NewParagraph("Body")}, "# Title\nBody"},
		{"rule keeps its newlines", []Element{NewParagraph("a"), NewHorizontalRule(), NewParagraph("b")}, "a\n\n---\n\nb"},
		{"consecutive rules", []Element{NewHorizontalRule(), NewHorizontalRule()}, "\n---\n\n\n---\n"},
		{"code block", []Element{NewParagraph("a"), NewCodeBlock("x", "go"), NewParagraph("b")}, "a\n```go\nx\n```\nb"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NewDocument(tc.elems...).Render(); got != tc.want {
				t.Fatalf("want %q got %q", tc.want, got)
			}
		})
	}
}

func TestDocumentElementsIsACopy(t *testing.T) {
	doc := NewDocument(NewParagraph("a"))
	elems := doc.Elements()
	elems[0] = NewParagraph("b")
	if doc.Render() != "a" {
		t.Fatalf("Elements leaked internal storage")
	}
}

func TestDocumentWriteTo(t *testing.T) {
	doc := NewDocument(NewHeading("T", 2), NewUnorderedList("x"))
	var out bytes.Buffer
	n, err := doc.WriteTo(&out)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if out.String() != "## T\n- x" || n != int64(out.Len()) {
		t.Fatalf("unexpected output %q (n=%d)", out.String(), n)
	}
}
