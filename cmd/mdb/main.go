package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/mdb"
	"pkt.systems/mdb/recipe"
	"pkt.systems/version"
)

const (
	defaultName  = "document"
	defaultWidth = 80
)

func init() {
	version.SetDefaultModule("pkt.systems/mdb")
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	output      string
	name        string
	preview     bool
	raw         bool
	width       int
	osc8        string
	theme       string
	showVersion bool
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	flags := pflag.NewFlagSet("mdb", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&opts.output, "output", "o", "", "Directory to write NAME.md into instead of stdout")
	flags.StringVarP(&opts.name, "name", "n", "", "Output file name without extension (default: recipe name or \"document\")")
	flags.BoolVarP(&opts.preview, "preview", "p", false, "Preview wrapped output even when stdout is not a terminal")
	flags.BoolVar(&opts.raw, "raw", false, "Write raw Markdown even when stdout is a terminal")
	flags.IntVarP(&opts.width, "width", "w", 0, "Preview width (0 uses terminal width if available)")
	flags.StringVarP(&opts.osc8, "osc8", "8", "auto", "OSC8 hyperlinks in preview: auto|on|off")
	flags.StringVarP(&opts.theme, "theme", "t", "plain", "Preview theme ("+strings.Join(mdb.AvailableThemes(), "|")+")")
	flags.BoolVar(&opts.showVersion, "version", false, "Print version and exit")
	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: mdb [flags] [recipes...]\n")
		fmt.Fprintln(stderr, "\nRecipes are YAML or JSON files, file:// or http(s):// URLs.")
		fmt.Fprintln(stderr, "If no recipe is given, one is read from stdin.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	if opts.showVersion {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return 0
	}
	if opts.preview && opts.raw {
		fmt.Fprintln(stderr, "choose either --preview or --raw")
		return 2
	}
	osc8, err := resolveOSC8(opts.osc8)
	if err != nil {
		fmt.Fprintf(stderr, "invalid --osc8 %q: %v\n", opts.osc8, err)
		return 2
	}
	theme, ok := mdb.ThemeByName(opts.theme)
	if !ok {
		fmt.Fprintf(stderr, "unknown --theme %q (available: %s)\n", opts.theme, strings.Join(mdb.AvailableThemes(), ", "))
		return 2
	}
	if countStdin(flags.Args()) > 1 {
		fmt.Fprintln(stderr, "stdin (-) can be given only once")
		return 2
	}

	b := mdb.New()
	recipeName, err := loadRecipes(ctx, flags.Args(), stdin, b)
	if err != nil {
		fmt.Fprintf(stderr, "load recipe: %v\n", err)
		return 1
	}

	if opts.output != "" {
		name := opts.name
		if strings.TrimSpace(name) == "" {
			if recipeName != "" && !isLocalName(recipeName) {
				fmt.Fprintf(stderr, "recipe name %q is not a plain file name; use --name\n", recipeName)
				return 1
			}
			name = firstNonEmpty(recipeName, defaultName)
		}
		path, err := b.WriteFile(normalizePath(opts.output), name)
		if err != nil {
			fmt.Fprintf(stderr, "write: %v\n", err)
			return 1
		}
		fmt.Fprintf(stderr, "wrote %s to %s\n", humanize.Bytes(uint64(len(b.Render()))), path)
		return 0
	}

	if opts.preview || (!opts.raw && isTerminal(stdout)) {
		if err := mdb.Preview(mdb.PreviewRequest{
			Document: b.Document(),
			Writer:   stdout,
			Width:    resolveWidth(opts.width, stdout),
			Options:  []mdb.PreviewOption{mdb.WithOSC8(osc8), mdb.WithTheme(theme)},
		}); err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return 1
		}
		return 0
	}

	if _, err := b.WriteTo(stdout); err != nil {
		fmt.Fprintf(stderr, "write: %v\n", err)
		return 1
	}
	return 0
}

// loadRecipes applies every recipe to b in argument order and returns the
// first non-empty recipe name.
func loadRecipes(ctx context.Context, args []string, stdin io.Reader, b *mdb.Builder) (string, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	var name string
	for _, raw := range args {
		r, err := loadRecipe(ctx, raw, stdin)
		if err != nil {
			return "", err
		}
		if err := r.Apply(b); err != nil {
			return "", fmt.Errorf("%s: %w", raw, err)
		}
		if name == "" {
			name = r.Name
		}
	}
	return name, nil
}

func loadRecipe(ctx context.Context, raw string, stdin io.Reader) (*recipe.Recipe, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("empty input argument")
	}
	if raw == "-" {
		return recipe.Decode(stdin)
	}
	u, err := url.Parse(raw)
	if err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return recipe.Fetch(ctx, recipe.FetchRequest{URL: raw})
		case "file":
			path := u.Path
			if path == "" {
				path = u.Host
			}
			if unescaped, err := url.PathUnescape(path); err == nil {
				path = unescaped
			}
			return decodeFile(path)
		}
	}
	return decodeFile(raw)
}

func decodeFile(path string) (*recipe.Recipe, error) {
	f, err := os.Open(normalizePath(path))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	r, err := recipe.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

func countStdin(args []string) int {
	n := 0
	for _, arg := range args {
		if strings.TrimSpace(arg) == "-" {
			n++
		}
	}
	return n
}

// isLocalName reports whether a recipe-supplied name stays inside the output
// directory once the extension is added.
func isLocalName(name string) bool {
	return filepath.IsLocal(name) && !strings.ContainsAny(name, `/\`)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func resolveWidth(width int, w io.Writer) int {
	if width > 0 {
		return width
	}
	return terminalWidth(w, defaultWidth)
}

func terminalWidth(w io.Writer, fallback int) int {
	if f, ok := w.(*os.File); ok {
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			if width, _, err := term.GetSize(fd); err == nil && width > 0 {
				return width
			}
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if width, err := strconv.Atoi(value); err == nil && width > 0 {
			return width
		}
	}
	return fallback
}

func resolveOSC8(mode string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return mdb.DetectOSC8Support(), nil
	case "on", "true", "1", "yes":
		return true, nil
	case "off", "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("expected auto|on|off")
	}
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
