package mdb

import (
	"sort"
	"strconv"
	"strings"
)

const (
	sgrReset     = "\x1b[0m"
	sgrBold      = "\x1b[1m"
	sgrFaint     = "\x1b[2m"
	sgrItalic    = "\x1b[3m"
	sgrUnderline = "\x1b[4m"
)

// Style is an ANSI prefix written before styled text. The zero Style writes
// text unchanged.
type Style struct {
	Prefix string
}

// paint writes text with s applied line by line, so no style is left open
// across a newline or over an indent.
func (s Style) paint(b *strings.Builder, text string) {
	if s.Prefix == "" {
		b.WriteString(text)
		return
	}
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			b.WriteByte('\n')
		}
		if line == "" {
			continue
		}
		b.WriteString(s.Prefix)
		b.WriteString(line)
		b.WriteString(sgrReset)
	}
}

// Styles maps element kinds to the styles Preview applies. Code blocks are
// never styled.
type Styles struct {
	Text          Style
	Heading       [6]Style
	Strong        Style
	Emphasis      Style
	CodeInline    Style
	Quote         Style
	ListMarker    Style
	LinkText      Style
	Image         Style
	ThematicBreak Style
}

// Theme names a set of Styles.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

func style(prefixes ...string) Style {
	return Style{Prefix: strings.Join(prefixes, "")}
}

func fg256(n int) string {
	return "\x1b[38;5;" + strconv.Itoa(n) + "m"
}

func fgRGB(r, g, b uint8) string {
	return "\x1b[38;2;" + strconv.Itoa(int(r)) + ";" + strconv.Itoa(int(g)) + ";" + strconv.Itoa(int(b)) + "m"
}

const plainThemeName = "plain"

var builtinThemes = map[string]Theme{
	plainThemeName: theme{name: plainThemeName},
	"mono": theme{name: "mono", styles: Styles{
		Heading:       [6]Style{style(sgrBold, sgrUnderline), style(sgrBold), style(sgrBold), style(sgrBold), style(sgrBold), style(sgrBold)},
		Strong:        style(sgrBold),
		Emphasis:      style(sgrItalic),
		CodeInline:    style(sgrFaint),
		Quote:         style(sgrFaint),
		ListMarker:    style(sgrBold),
		LinkText:      style(sgrUnderline),
		Image:         style(sgrUnderline),
		ThematicBreak: style(sgrFaint),
	}},
	"ansi": theme{name: "ansi", styles: Styles{
		Heading: [6]Style{
			style(sgrBold, fg256(205)), style(sgrBold, fg256(141)), style(sgrBold, fg256(75)),
			style(fg256(81)), style(fg256(114)), style(fg256(180)),
		},
		Strong:        style(sgrBold, fg256(223)),
		Emphasis:      style(sgrItalic, fg256(152)),
		CodeInline:    style(fg256(214)),
		Quote:         style(sgrItalic, fg256(245)),
		ListMarker:    style(fg256(204)),
		LinkText:      style(sgrUnderline, fg256(39)),
		Image:         style(fg256(109)),
		ThematicBreak: style(fg256(240)),
	}},
	"solarized-dark": theme{name: "solarized-dark", styles: Styles{
		Text: style(fgRGB(0x83, 0x94, 0x96)),
		Heading: [6]Style{
			style(sgrBold, fgRGB(0xcb, 0x4b, 0x16)), style(sgrBold, fgRGB(0xb5, 0x89, 0x00)), style(sgrBold, fgRGB(0x85, 0x99, 0x00)),
			style(fgRGB(0x2a, 0xa1, 0x98)), style(fgRGB(0x26, 0x8b, 0xd2)), style(fgRGB(0x6c, 0x71, 0xc4)),
		},
		Strong:        style(sgrBold, fgRGB(0x93, 0xa1, 0xa1)),
		Emphasis:      style(sgrItalic, fgRGB(0x93, 0xa1, 0xa1)),
		CodeInline:    style(fgRGB(0xd3, 0x36, 0x82)),
		Quote:         style(sgrItalic, fgRGB(0x58, 0x6e, 0x75)),
		ListMarker:    style(fgRGB(0xdc, 0x32, 0x2f)),
		LinkText:      style(sgrUnderline, fgRGB(0x26, 0x8b, 0xd2)),
		Image:         style(fgRGB(0x2a, 0xa1, 0x98)),
		ThematicBreak: style(fgRGB(0x58, 0x6e, 0x75)),
	}},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name. An empty name selects the
// default theme.
func ThemeByName(name string) (Theme, bool) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return DefaultTheme(), true
	}
	t, ok := builtinThemes[normalized]
	return t, ok
}

// DefaultTheme returns the unstyled theme Preview uses when none is set.
func DefaultTheme() Theme {
	return builtinThemes[plainThemeName]
}
