package mdb

// Kind is the stable type tag of an Element.
type Kind string

const (
	// KindHeading tags Heading elements.
	KindHeading Kind = "heading"
	// KindParagraph tags Paragraph elements.
	KindParagraph Kind = "paragraph"
	// KindHorizontalRule tags HorizontalRule elements.
	KindHorizontalRule Kind = "horizontal_rule"
	// KindCodeBlock tags fenced CodeBlock elements.
	KindCodeBlock Kind = "code_block"
	// KindInlineCode tags InlineCode elements.
	KindInlineCode Kind = "code"
	// KindBold tags Bold elements.
	KindBold Kind = "bold"
	// KindItalic tags Italic elements.
	KindItalic Kind = "italic"
	// KindBlockquote tags Blockquote elements.
	KindBlockquote Kind = "blockquote"
	// KindLink tags Link elements.
	KindLink Kind = "link"
	// KindImage tags Image elements.
	KindImage Kind = "image"
	// KindOrderedList tags OrderedList elements.
	KindOrderedList Kind = "ordered_list"
	// KindUnorderedList tags UnorderedList elements.
	KindUnorderedList Kind = "unordered_list"
	// KindEmoji tags Emoji elements.
	KindEmoji Kind = "emoji"
)

var allKinds = [...]Kind{
	KindHeading,
	KindParagraph,
	KindHorizontalRule,
	KindCodeBlock,
	KindInlineCode,
	KindBold,
	KindItalic,
	KindBlockquote,
	KindLink,
	KindImage,
	KindOrderedList,
	KindUnorderedList,
	KindEmoji,
}

// Kinds returns every element kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(allKinds))
	copy(out, allKinds[:])
	return out
}

// ParseKind returns the Kind for a tag such as "ordered_list".
func ParseKind(tag string) (Kind, bool) {
	for _, k := range allKinds {
		if string(k) == tag {
			return k, true
		}
	}
	return "", false
}

// String returns the kind tag.
func (k Kind) String() string { return string(k) }
