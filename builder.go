package mdb

import "io"

// Builder is a chainable façade over a Document. Every mutator appends or
// edits the underlying Document and returns the same Builder.
//
// Out-of-range Replace and RemoveAt calls are silent no-ops; use
// Document for the boolean result.
type Builder struct {
	doc *Document
}

// New returns a Builder over an empty Document.
func New() *Builder {
	return &Builder{doc: NewDocument()}
}

// From returns a Builder that edits doc in place. A nil doc starts empty.
func From(doc *Document) *Builder {
	if doc == nil {
		doc = NewDocument()
	}
	return &Builder{doc: doc}
}

// Document returns the underlying Document.
func (b *Builder) Document() *Document { return b.doc }

// Add appends any Element.
func (b *Builder) Add(e Element) *Builder {
	b.doc.Append(e)
	return b
}

// Heading appends a heading; level is clamped into 1..6.
func (b *Builder) Heading(text string, level int) *Builder {
	return b.Add(NewHeading(text, level))
}

// Paragraph appends a paragraph rendered verbatim.
func (b *Builder) Paragraph(text string) *Builder {
	return b.Add(NewParagraph(text))
}

// HorizontalRule appends a thematic break.
func (b *Builder) HorizontalRule() *Builder {
	return b.Add(NewHorizontalRule())
}

// CodeBlock appends a fenced block; language may be empty.
func (b *Builder) CodeBlock(code, language string) *Builder {
	return b.Add(NewCodeBlock(code, language))
}

// Link appends an inline link without a title.
func (b *Builder) Link(url, text string) *Builder {
	return b.Add(NewLink(url, text))
}

// LinkWithTitle appends an inline link with a title, even an empty one.
func (b *Builder) LinkWithTitle(url, text, title string) *Builder {
	return b.Add(NewTitledLink(url, text, title))
}

// OrderedList appends a list numbered from 1.
func (b *Builder) OrderedList(items ...string) *Builder {
	return b.Add(NewOrderedList(items...))
}

// UnorderedList appends a bulleted list.
func (b *Builder) UnorderedList(items ...string) *Builder {
	return b.Add(NewUnorderedList(items...))
}

// Bold appends strongly emphasized text.
func (b *Builder) Bold(text string) *Builder {
	return b.Add(NewBold(text))
}

// Italic appends emphasized text.
func (b *Builder) Italic(text string) *Builder {
	return b.Add(NewItalic(text))
}

// Blockquote appends a quote; every line of text gets a "> " prefix.
func (b *Builder) Blockquote(text string) *Builder {
	return b.Add(NewBlockquote(text))
}

// Image appends an image without a title.
func (b *Builder) Image(url, alt string) *Builder {
	return b.Add(NewImage(url, alt))
}

// ImageWithTitle appends an image with a title.
func (b *Builder) ImageWithTitle(url, alt, title string) *Builder {
	return b.Add(NewTitledImage(url, alt, title))
}

// Code appends an inline code span.
func (b *Builder) Code(text string) *Builder {
	return b.Add(NewInlineCode(text))
}

// Emoji appends value verbatim.
func (b *Builder) Emoji(value string) *Builder {
	return b.Add(NewEmoji(value))
}

// Get returns the element at i, or false when i is out of range.
func (b *Builder) Get(i int) (Element, bool) { return b.doc.Get(i) }

// Replace overwrites the element at i when i is in range.
func (b *Builder) Replace(i int, e Element) *Builder {
	b.doc.Replace(i, e)
	return b
}

// RemoveAt removes the element at i when i is in range.
func (b *Builder) RemoveAt(i int) *Builder {
	b.doc.RemoveAt(i)
	return b
}

// Clear removes every element.
func (b *Builder) Clear() *Builder {
	b.doc.Clear()
	return b
}

// Count returns the number of elements.
func (b *Builder) Count() int { return b.doc.Count() }

// Render returns the Markdown for the whole document.
func (b *Builder) Render() string { return b.doc.Render() }

// String is Render.
func (b *Builder) String() string { return b.doc.Render() }

// WriteTo writes the rendered document to w.
func (b *Builder) WriteTo(w io.Writer) (int64, error) { return b.doc.WriteTo(w) }

// WriteFile persists the document as dir/name.md. See WriteFile.
func (b *Builder) WriteFile(dir, name string, opts ...WriteOption) (string, error) {
	return WriteFile(b.doc, dir, name, opts...)
}
