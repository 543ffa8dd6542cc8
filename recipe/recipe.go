// Package recipe describes Markdown documents declaratively.
//
// A recipe is a YAML (or JSON) document holding an ordered list of element
// entries. Decoding validates the input, then Apply turns every entry into
// the matching mdb element and appends it to a Builder:
//
//	r, err := recipe.Decode(file)
//	if err != nil {
//		return err
//	}
//	b := mdb.New()
//	if err := r.Apply(b); err != nil {
//		return err
//	}
//	fmt.Print(b.String())
package recipe

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"

	"pkt.systems/mdb"
)

// MaxSize is the largest recipe, in bytes, that Decode, Parse and Fetch
// accept.
const MaxSize = 4 << 20

var (
	// ErrUnknownKind reports an entry whose kind is not an mdb element kind.
	ErrUnknownKind = errors.New("unknown element kind")
	// ErrFieldNotApplicable reports a field set on an entry whose kind does
	// not use it.
	ErrFieldNotApplicable = errors.New("field does not apply to kind")
	// ErrTooLarge reports input larger than MaxSize.
	ErrTooLarge = errors.New("recipe exceeds maximum size")
)

// Recipe is a declarative document.
type Recipe struct {
	// Name is the default output file name, without extension.
	Name     string  `yaml:"name,omitempty"`
	Elements []Entry `yaml:"elements"`
}

// Entry describes one element. Which fields are read depends on Kind.
type Entry struct {
	Kind     string   `yaml:"kind"`
	Text     string   `yaml:"text,omitempty"`
	Level    int      `yaml:"level,omitempty"`
	Code     string   `yaml:"code,omitempty"`
	Language string   `yaml:"language,omitempty"`
	URL      string   `yaml:"url,omitempty"`
	Alt      string   `yaml:"alt,omitempty"`
	Title    *string  `yaml:"title,omitempty"`
	Items    []string `yaml:"items,omitempty"`
	Value    string   `yaml:"value,omitempty"`
}

// EntryError locates a failing entry within a recipe.
type EntryError struct {
	Index int
	Kind  string
	Err   error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("recipe: element %d (%q): %v", e.Index, e.Kind, e.Err)
}

func (e *EntryError) Unwrap() error { return e.Err }

// Decode reads, validates and decodes a recipe of at most MaxSize bytes.
// Fields no entry can carry are rejected here; fields another kind uses are
// rejected when the entry is turned into an element. Empty input yields an
// empty recipe.
func Decode(r io.Reader) (*Recipe, error) {
	if r == nil {
		return nil, fmt.Errorf("recipe: reader is nil")
	}
	src, err := io.ReadAll(io.LimitReader(r, MaxSize+1))
	if err != nil {
		return nil, fmt.Errorf("recipe: read: %w", err)
	}
	return Parse(src)
}

// Parse validates and decodes a recipe held in memory.
func Parse(src []byte) (*Recipe, error) {
	if len(src) > MaxSize {
		return nil, fmt.Errorf("recipe: %w", ErrTooLarge)
	}
	if err := Validate(src); err != nil {
		return nil, fmt.Errorf("recipe: %w", err)
	}
	var r Recipe
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)
	if err := dec.Decode(&r); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("recipe: decode: %w", err)
	}
	return &r, nil
}

// entryFields lists the fields each kind reads. kind itself is always allowed.
var entryFields = map[mdb.Kind][]string{
	mdb.KindHeading:        {"text", "level"},
	mdb.KindParagraph:      {"text"},
	mdb.KindHorizontalRule: nil,
	mdb.KindCodeBlock:      {"code", "language"},
	mdb.KindInlineCode:     {"code", "text"},
	mdb.KindBold:           {"text"},
	mdb.KindItalic:         {"text"},
	mdb.KindBlockquote:     {"text"},
	mdb.KindLink:           {"url", "text", "title"},
	mdb.KindImage:          {"url", "alt", "title"},
	mdb.KindOrderedList:    {"items"},
	mdb.KindUnorderedList:  {"items"},
	mdb.KindEmoji:          {"value", "text"},
}

// setFields returns the yaml names of the fields e carries.
func (e Entry) setFields() []string {
	var fields []string
	add := func(set bool, name string) {
		if set {
			fields = append(fields, name)
		}
	}
	add(e.Text != "", "text")
	add(e.Level != 0, "level")
	add(e.Code != "", "code")
	add(e.Language != "", "language")
	add(e.URL != "", "url")
	add(e.Alt != "", "alt")
	add(e.Title != nil, "title")
	add(len(e.Items) > 0, "items")
	add(e.Value != "", "value")
	return fields
}

func checkFields(kind mdb.Kind, e Entry) error {
	allowed := entryFields[kind]
	for _, field := range e.setFields() {
		if !slices.Contains(allowed, field) {
			return fmt.Errorf("%w: %s", ErrFieldNotApplicable, field)
		}
	}
	return nil
}

// Element returns the mdb element the entry describes. Setting a field the
// kind does not read is an error.
func (e Entry) Element() (mdb.Element, error) {
	kind, ok := mdb.ParseKind(e.Kind)
	if !ok {
		return nil, ErrUnknownKind
	}
	if err := checkFields(kind, e); err != nil {
		return nil, err
	}
	switch kind {
	case mdb.KindHeading:
		level := e.Level
		if level == 0 {
			level = 1
		}
		return mdb.NewHeading(e.Text, level), nil
	case mdb.KindParagraph:
		return mdb.NewParagraph(e.Text), nil
	case mdb.KindHorizontalRule:
		return mdb.NewHorizontalRule(), nil
	case mdb.KindCodeBlock:
		return mdb.NewCodeBlock(e.Code, e.Language), nil
	case mdb.KindInlineCode:
		return mdb.NewInlineCode(firstNonEmpty(e.Code, e.Text)), nil
	case mdb.KindBold:
		return mdb.NewBold(e.Text), nil
	case mdb.KindItalic:
		return mdb.NewItalic(e.Text), nil
	case mdb.KindBlockquote:
		return mdb.NewBlockquote(e.Text), nil
	case mdb.KindLink:
		if e.Title != nil {
			return mdb.NewTitledLink(e.URL, e.Text, *e.Title), nil
		}
		return mdb.NewLink(e.URL, e.Text), nil
	case mdb.KindImage:
		if e.Title != nil {
			return mdb.NewTitledImage(e.URL, e.Alt, *e.Title), nil
		}
		return mdb.NewImage(e.URL, e.Alt), nil
	case mdb.KindOrderedList:
		return mdb.NewOrderedList(e.Items...), nil
	case mdb.KindUnorderedList:
		return mdb.NewUnorderedList(e.Items...), nil
	case mdb.KindEmoji:
		return mdb.NewEmoji(firstNonEmpty(e.Value, e.Text)), nil
	}
	return nil, ErrUnknownKind
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Apply appends every entry to b in order. Nothing is appended when any
// entry fails.
func (r *Recipe) Apply(b *mdb.Builder) error {
	if b == nil {
		return fmt.Errorf("recipe: builder is nil")
	}
	elems := make([]mdb.Element, 0, len(r.Elements))
	for i, entry := range r.Elements {
		el, err := entry.Element()
		if err != nil {
			return &EntryError{Index: i, Kind: entry.Kind, Err: err}
		}
		elems = append(elems, el)
	}
	for _, el := range elems {
		b.Add(el)
	}
	return nil
}

// Build returns a new Document holding the recipe's elements.
func (r *Recipe) Build() (*mdb.Document, error) {
	b := mdb.New()
	if err := r.Apply(b); err != nil {
		return nil, err
	}
	return b.Document(), nil
}
