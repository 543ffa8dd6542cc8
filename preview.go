package mdb

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// PreviewRequest configures Preview.
type PreviewRequest struct {
	Document *Document
	Writer   io.Writer
	Width    int
	Options  []PreviewOption
}

// Preview writes a terminal-friendly view of the document to Writer.
//
// Prose is word-wrapped at Width columns, lists keep a hanging indent and
// block quotes keep their "> " prefix on every wrapped line. Code blocks and
// horizontal rules are written untouched. The output ends with a newline.
// Width <= 0 disables wrapping. Styles come from the theme set with
// WithTheme; the default theme adds no escape sequences. Preview never
// changes what Render returns.
func Preview(req PreviewRequest) error {
	if req.Document == nil {
		return fmt.Errorf("preview: document is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("preview: writer is nil")
	}
	cfg := newPreviewConfig(req.Options)
	var b strings.Builder
	b.Grow(req.Document.sizeHint() + 1)
	for i, e := range req.Document.elements {
		if i > 0 {
			b.WriteByte('\n')
		}
		previewElement(&b, e, req.Width, cfg)
	}
	b.WriteByte('\n')
	if _, err := io.WriteString(req.Writer, b.String()); err != nil {
		return fmt.Errorf("preview: write: %w", err)
	}
	return nil
}

func previewElement(b *strings.Builder, e Element, width int, cfg previewConfig) {
	st := cfg.styles
	switch v := e.(type) {
	case CodeBlock:
		v.appendTo(b)
	case HorizontalRule:
		st.ThematicBreak.paint(b, horizontalRule)
	case Heading:
		st.Heading[clampLevel(v.level)-1].paint(b, wrapLine(v.Render(), width))
	case Blockquote:
		prefixLines(b, quotePrefix, v.text, width, st.Quote)
	case OrderedList:
		for i, item := range v.items {
			if i > 0 {
				b.WriteByte('\n')
			}
			hangingIndent(b, strconv.Itoa(i+1)+". ", item, width, st.ListMarker, st.Text)
		}
	case UnorderedList:
		for i, item := range v.items {
			if i > 0 {
				b.WriteByte('\n')
			}
			hangingIndent(b, bulletMarker, item, width, st.ListMarker, st.Text)
		}
	case Link:
		if cfg.osc8 {
			writeHyperlink(b, v.url, v.text, st.LinkText)
			return
		}
		st.LinkText.paint(b, wrapLine(v.Render(), width))
	case Image:
		st.Image.paint(b, wrapLine(v.Render(), width))
	case Bold:
		st.Strong.paint(b, wrapLine(v.Render(), width))
	case Italic:
		st.Emphasis.paint(b, wrapLine(v.Render(), width))
	case InlineCode:
		st.CodeInline.paint(b, wrapLine(v.Render(), width))
	default:
		st.Text.paint(b, wrapLine(e.Render(), width))
	}
}
