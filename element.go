package mdb

import (
	"strconv"
	"strings"
)

// Element is one immutable unit of Markdown content.
//
// The set of implementations is closed; every Element is created through one
// of the New* constructors in this package.
type Element interface {
	// Kind reports which variant the element is.
	Kind() Kind
	// Render returns the element's Markdown. It never fails.
	Render() string
	appendTo(b *strings.Builder)
}

const (
	minHeadingLevel = 1
	maxHeadingLevel = 6
)

func render(e Element) string {
	var b strings.Builder
	e.appendTo(&b)
	return b.String()
}

// Heading is an ATX heading.
type Heading struct {
	text  string
	level int
}

// NewHeading returns a heading. Levels outside 1..6 are clamped.
func NewHeading(text string, level int) Heading {
	return Heading{text: text, level: clampLevel(level)}
}

func clampLevel(level int) int {
	if level < minHeadingLevel {
		return minHeadingLevel
	}
	if level > maxHeadingLevel {
		return maxHeadingLevel
	}
	return level
}

// Text returns the heading text without its # prefix.
func (h Heading) Text() string { return h.text }

// Level returns the clamped level, 1 through 6.
func (h Heading) Level() int { return h.level }

func (h Heading) Kind() Kind     { return KindHeading }
func (h Heading) Render() string { return render(h) }
func (h Heading) String() string { return h.Render() }

func (h Heading) appendTo(b *strings.Builder) {
	for i := 0; i < h.level; i++ {
		b.WriteByte('#')
	}
	b.WriteByte(' ')
	b.WriteString(h.text)
}

// Paragraph is a block of text rendered verbatim.
type Paragraph struct {
	text string
}

// NewParagraph returns a paragraph.
func NewParagraph(text string) Paragraph { return Paragraph{text: text} }

// Text returns the paragraph text.
func (p Paragraph) Text() string { return p.text }

func (p Paragraph) Kind() Kind                  { return KindParagraph }
func (p Paragraph) Render() string              { return p.text }
func (p Paragraph) String() string              { return p.text }
func (p Paragraph) appendTo(b *strings.Builder) { b.WriteString(p.text) }

// HorizontalRule is a thematic break surrounded by its own newlines.
type HorizontalRule struct{}

const horizontalRule = "\n---\n"

// NewHorizontalRule returns a horizontal rule.
func NewHorizontalRule() HorizontalRule { return HorizontalRule{} }

func (HorizontalRule) Kind() Kind                  { return KindHorizontalRule }
func (HorizontalRule) Render() string              { return horizontalRule }
func (HorizontalRule) String() string              { return horizontalRule }
func (HorizontalRule) appendTo(b *strings.Builder) { b.WriteString(horizontalRule) }

// CodeBlock is a fenced code block with an optional info string.
type CodeBlock struct {
	code     string
	language string
}

const fence = "```"

// NewCodeBlock returns a fenced code block. language may be empty.
func NewCodeBlock(code, language string) CodeBlock {
	return CodeBlock{code: code, language: language}
}

// Code returns the block body without fences.
func (c CodeBlock) Code() string { return c.code }

// Language returns the info string, possibly empty.
func (c CodeBlock) Language() string { return c.language }

func (c CodeBlock) Kind() Kind     { return KindCodeBlock }
func (c CodeBlock) Render() string { return render(c) }
func (c CodeBlock) String() string { return c.Render() }

func (c CodeBlock) appendTo(b *strings.Builder) {
	b.WriteString(fence)
	b.WriteString(c.language)
	b.WriteByte('\n')
	b.WriteString(c.code)
	b.WriteByte('\n')
	b.WriteString(fence)
}

// InlineCode is a code span.
type InlineCode struct {
	code string
}

// NewInlineCode returns a code span.
func NewInlineCode(code string) InlineCode { return InlineCode{code: code} }

// Code returns the span content without backticks.
func (c InlineCode) Code() string { return c.code }

func (c InlineCode) Kind() Kind     { return KindInlineCode }
func (c InlineCode) Render() string { return render(c) }
func (c InlineCode) String() string { return c.Render() }

func (c InlineCode) appendTo(b *strings.Builder) { wrapText(b, "`", c.code) }

// Bold is strong emphasis.
type Bold struct {
	text string
}

// NewBold returns strongly emphasized text.
func NewBold(text string) Bold { return Bold{text: text} }

// Text returns the emphasized text.
func (s Bold) Text() string { return s.text }

func (s Bold) Kind() Kind                  { return KindBold }
func (s Bold) Render() string              { return render(s) }
func (s Bold) String() string              { return s.Render() }
func (s Bold) appendTo(b *strings.Builder) { wrapText(b, "**", s.text) }

// Italic is emphasis.
type Italic struct {
	text string
}

// NewItalic returns emphasized text.
func NewItalic(text string) Italic { return Italic{text: text} }

// Text returns the emphasized text.
func (s Italic) Text() string { return s.text }

func (s Italic) Kind() Kind                  { return KindItalic }
func (s Italic) Render() string              { return render(s) }
func (s Italic) String() string              { return s.Render() }
func (s Italic) appendTo(b *strings.Builder) { wrapText(b, "*", s.text) }

func wrapText(b *strings.Builder, delim, text string) {
	b.WriteString(delim)
	b.WriteString(text)
	b.WriteString(delim)
}

// Blockquote quotes every line of its text.
type Blockquote struct {
	text string
}

const quotePrefix = "> "

// NewBlockquote returns a block quote. text may span several lines.
func NewBlockquote(text string) Blockquote { return Blockquote{text: text} }

// Text returns the quoted text without "> " prefixes.
func (q Blockquote) Text() string { return q.text }

func (q Blockquote) Kind() Kind     { return KindBlockquote }
func (q Blockquote) Render() string { return render(q) }
func (q Blockquote) String() string { return q.Render() }

func (q Blockquote) appendTo(b *strings.Builder) {
	rest := q.text
	for {
		b.WriteString(quotePrefix)
		i := strings.IndexByte(rest, '\n')
		if i < 0 {
			b.WriteString(rest)
			return
		}
		b.WriteString(rest[:i+1])
		rest = rest[i+1:]
	}
}

// Link is an inline link with an optional title.
type Link struct {
	url      string
	text     string
	title    string
	hasTitle bool
}

// NewLink returns a link without a title.
func NewLink(url, text string) Link { return Link{url: url, text: text} }

// NewTitledLink returns a link with a title. An empty title still renders.
func NewTitledLink(url, text, title string) Link {
	return Link{url: url, text: text, title: title, hasTitle: true}
}

// URL returns the link destination.
func (l Link) URL() string { return l.url }

// Text returns the link text.
func (l Link) Text() string { return l.text }

// Title returns the title and whether one was set.
func (l Link) Title() (string, bool) { return l.title, l.hasTitle }

func (l Link) Kind() Kind     { return KindLink }
func (l Link) Render() string { return render(l) }
func (l Link) String() string { return l.Render() }

func (l Link) appendTo(b *strings.Builder) {
	b.WriteByte('[')
	b.WriteString(l.text)
	b.WriteString("](")
	appendDestination(b, l.url, l.title, l.hasTitle)
}

// Image is an inline image with alt text and an optional title.
type Image struct {
	url      string
	alt      string
	title    string
	hasTitle bool
}

// NewImage returns an image without a title.
func NewImage(url, alt string) Image { return Image{url: url, alt: alt} }

// NewTitledImage returns an image with a title.
func NewTitledImage(url, alt, title string) Image {
	return Image{url: url, alt: alt, title: title, hasTitle: true}
}

// URL returns the image source.
func (i Image) URL() string { return i.url }

// AltText returns the alternative text.
func (i Image) AltText() string { return i.alt }

// Title returns the title and whether one was set.
func (i Image) Title() (string, bool) { return i.title, i.hasTitle }

func (i Image) Kind() Kind     { return KindImage }
func (i Image) Render() string { return render(i) }
func (i Image) String() string { return i.Render() }

func (i Image) appendTo(b *strings.Builder) {
	b.WriteString("![")
	b.WriteString(i.alt)
	b.WriteString("](")
	appendDestination(b, i.url, i.title, i.hasTitle)
}

func appendDestination(b *strings.Builder, url, title string, hasTitle bool) {
	b.WriteString(url)
	if hasTitle {
		b.WriteString(` "`)
		b.WriteString(title)
		b.WriteByte('"')
	}
	b.WriteByte(')')
}

// OrderedList numbers its items from 1.
type OrderedList struct {
	items []string
}

// NewOrderedList returns a numbered list. The items slice is copied.
func NewOrderedList(items ...string) OrderedList {
	return OrderedList{items: cloneItems(items)}
}

// Items returns a copy of the list items.
func (l OrderedList) Items() []string { return cloneItems(l.items) }

func (l OrderedList) Kind() Kind     { return KindOrderedList }
func (l OrderedList) Render() string { return render(l) }
func (l OrderedList) String() string { return l.Render() }

func (l OrderedList) appendTo(b *strings.Builder) {
	var num [20]byte
	for i, item := range l.items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.Write(strconv.AppendInt(num[:0], int64(i+1), 10))
		b.WriteString(". ")
		b.WriteString(item)
	}
}

// UnorderedList is a bulleted list.
type UnorderedList struct {
	items []string
}

const bulletMarker = "- "

// NewUnorderedList returns a bulleted list. The items slice is copied.
func NewUnorderedList(items ...string) UnorderedList {
	return UnorderedList{items: cloneItems(items)}
}

// Items returns a copy of the list items.
func (l UnorderedList) Items() []string { return cloneItems(l.items) }

func (l UnorderedList) Kind() Kind     { return KindUnorderedList }
func (l UnorderedList) Render() string { return render(l) }
func (l UnorderedList) String() string { return l.Render() }

func (l UnorderedList) appendTo(b *strings.Builder) {
	for i, item := range l.items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(bulletMarker)
		b.WriteString(item)
	}
}

func cloneItems(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	out := make([]string, len(items))
	copy(out, items)
	return out
}

// Emoji is a literal value, typically a single emoji, rendered verbatim.
type Emoji struct {
	value string
}

// NewEmoji returns a literal.
func NewEmoji(value string) Emoji { return Emoji{value: value} }

// Value returns the literal.
func (e Emoji) Value() string { return e.value }

func (e Emoji) Kind() Kind                  { return KindEmoji }
func (e Emoji) Render() string              { return e.value }
func (e Emoji) String() string              { return e.value }
func (e Emoji) appendTo(b *strings.Builder) { b.WriteString(e.value) }
