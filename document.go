package mdb

import (
	"io"
	"strings"
)

// Document is an ordered, index-addressable sequence of Elements.
//
// Order is output order. Indices are 0-based and shift down by one after a
// RemoveAt. A Document is not safe for concurrent use.
type Document struct {
	elements []Element
}

// NewDocument returns a Document seeded with elems in order.
func NewDocument(elems ...Element) *Document {
	d := &Document{}
	for _, e := range elems {
		d.Append(e)
	}
	return d
}

// Append adds e to the end of the document. A nil element is ignored.
func (d *Document) Append(e Element) {
	if e == nil {
		return
	}
	d.elements = append(d.elements, e)
}

// Has reports whether i addresses an element.
func (d *Document) Has(i int) bool {
	return i >= 0 && i < len(d.elements)
}

// Get returns the element at i, or false when i is out of range.
func (d *Document) Get(i int) (Element, bool) {
	if !d.Has(i) {
		return nil, false
	}
	return d.elements[i], true
}

// Replace overwrites the element at i. It returns false and leaves the
// document unchanged when i is out of range or e is nil.
func (d *Document) Replace(i int, e Element) bool {
	if e == nil || !d.Has(i) {
		return false
	}
	d.elements[i] = e
	return true
}

// RemoveAt removes the element at i, shifting later elements down by one.
// It returns false and leaves the document unchanged when i is out of range.
func (d *Document) RemoveAt(i int) bool {
	if !d.Has(i) {
		return false
	}
	copy(d.elements[i:], d.elements[i+1:])
	last := len(d.elements) - 1
	d.elements[last] = nil
	d.elements = d.elements[:last]
	return true
}

// Clear removes every element.
func (d *Document) Clear() {
	clear(d.elements)
	d.elements = d.elements[:0]
}

// Count returns the number of elements.
func (d *Document) Count() int {
	return len(d.elements)
}

// Elements returns a copy of the element sequence.
func (d *Document) Elements() []Element {
	out := make([]Element, len(d.elements))
	copy(out, d.elements)
	return out
}

// Render joins every element's Markdown with a single newline. Elements that
// carry their own surrounding newlines, such as HorizontalRule, are not
// compensated for. An empty document renders to "".
func (d *Document) Render() string {
	if len(d.elements) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(d.sizeHint())
	d.appendTo(&b)
	return b.String()
}

// String is Render.
func (d *Document) String() string { return d.Render() }

func (d *Document) appendTo(b *strings.Builder) {
	for i, e := range d.elements {
		if i > 0 {
			b.WriteByte('\n')
		}
		e.appendTo(b)
	}
}

// WriteTo writes the rendered document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.Render())
	return int64(n), err
}

const elementOverhead = 16

func (d *Document) sizeHint() int {
	n := 0
	for _, e := range d.elements {
		n += elementOverhead + contentSize(e)
	}
	return n
}

func contentSize(e Element) int {
	switch v := e.(type) {
	case Heading:
		return len(v.text)
	case Paragraph:
		return len(v.text)
	case CodeBlock:
		return len(v.code) + len(v.language)
	case InlineCode:
		return len(v.code)
	case Bold:
		return len(v.text)
	case Italic:
		return len(v.text)
	case Blockquote:
		return len(v.text) + 2*strings.Count(v.text, "\n")
	case Link:
		return len(v.url) + len(v.text) + len(v.title)
	case Image:
		return len(v.url) + len(v.alt) + len(v.title)
	case OrderedList:
		return itemsSize(v.items, 4)
	case UnorderedList:
		return itemsSize(v.items, 3)
	case Emoji:
		return len(v.value)
	default:
		return 0
	}
}

func itemsSize(items []string, perItem int) int {
	n := 0
	for _, item := range items {
		n += len(item) + perItem
	}
	return n
}
