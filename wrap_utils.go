package mdb

import (
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

// wrapLine word-wraps text at limit printable columns. A limit <= 0 disables
// wrapping.
func wrapLine(text string, limit int) string {
	if limit <= 0 || ansi.PrintableRuneWidth(text) <= limit {
		return text
	}
	return wordwrap.String(text, limit)
}

// fitWidth is the space left for text after a prefix of prefixWidth columns.
func fitWidth(width, prefixWidth int) int {
	if width <= 0 {
		return 0
	}
	if limit := width - prefixWidth; limit > 1 {
		return limit
	}
	return 1
}

// hangingIndent writes marker followed by text wrapped to fit width, with
// continuation lines indented to the marker's width.
func hangingIndent(b *strings.Builder, marker, text string, width int, markerStyle, textStyle Style) {
	markerWidth := ansi.PrintableRuneWidth(marker)
	wrapped := wrapLine(text, fitWidth(width, markerWidth))
	first, rest, more := strings.Cut(wrapped, "\n")
	markerStyle.paint(b, marker)
	textStyle.paint(b, first)
	if !more {
		return
	}
	pad := strings.Repeat(" ", markerWidth)
	for _, line := range strings.Split(indent.String(rest, uint(markerWidth)), "\n") {
		b.WriteByte('\n')
		if content, ok := strings.CutPrefix(line, pad); ok {
			b.WriteString(pad)
			textStyle.paint(b, content)
			continue
		}
		textStyle.paint(b, line)
	}
}

// prefixLines writes every line of text wrapped to fit width after prefix.
func prefixLines(b *strings.Builder, prefix, text string, width int, s Style) {
	limit := fitWidth(width, ansi.PrintableRuneWidth(prefix))
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, part := range strings.Split(wrapLine(line, limit), "\n") {
			if j > 0 {
				b.WriteByte('\n')
			}
			s.paint(b, prefix+part)
		}
	}
}
