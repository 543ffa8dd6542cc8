package mdb

import (
	"os"
	"strconv"
	"strings"
)

const (
	osc8Open  = "\x1b]8;;"
	osc8ST    = "\x1b\\"
	osc8Reset = osc8Open + osc8ST
)

// osc8Probes each recognise one family of terminals known to render OSC 8
// hyperlinks.
var osc8Probes = []func(getenv func(string) string) bool{
	func(getenv func(string) string) bool {
		return getenv("DOMTERM") != "" || getenv("WT_SESSION") != ""
	},
	func(getenv func(string) string) bool {
		switch getenv("TERM_PROGRAM") {
		case "iTerm.app", "WezTerm", "vscode":
			return true
		}
		return false
	},
	func(getenv func(string) string) bool {
		return strings.Contains(strings.ToLower(getenv("TERM")), "kitty")
	},
	func(getenv func(string) string) bool {
		n, err := strconv.Atoi(getenv("VTE_VERSION"))
		return err == nil && n >= 5000
	},
}

// DetectOSC8Support reports whether the terminal described by the
// environment likely renders OSC 8 hyperlinks. A boolean OSC8 value such as
// 0 or 1 overrides detection.
func DetectOSC8Support() bool {
	return detectOSC8(os.Getenv)
}

func detectOSC8(getenv func(string) string) bool {
	if forced, err := strconv.ParseBool(getenv("OSC8")); err == nil {
		return forced
	}
	for _, probe := range osc8Probes {
		if probe(getenv) {
			return true
		}
	}
	return false
}

// writeHyperlink writes text as an OSC 8 link to url. Only the visible text
// is styled.
func writeHyperlink(b *strings.Builder, url, text string, s Style) {
	b.WriteString(osc8Open)
	b.WriteString(url)
	b.WriteString(osc8ST)
	s.paint(b, text)
	b.WriteString(osc8Reset)
}
