package mdb

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Extension is appended to every file name passed to WriteFile.
const Extension = ".md"

const (
	defaultDirMode  fs.FileMode = 0o755
	defaultFileMode fs.FileMode = 0o644
)

// WriteOption configures WriteFile.
type WriteOption func(*writeConfig)

type writeConfig struct {
	dirMode  fs.FileMode
	fileMode fs.FileMode
}

// WithDirMode sets the permissions used for directories WriteFile creates.
func WithDirMode(mode fs.FileMode) WriteOption {
	return func(cfg *writeConfig) {
		cfg.dirMode = mode
	}
}

// WithFileMode sets the permissions of a newly created Markdown file.
func WithFileMode(mode fs.FileMode) WriteOption {
	return func(cfg *writeConfig) {
		cfg.fileMode = mode
	}
}

// WriteFile renders doc and writes it to dir/name.md, creating dir and any
// missing parents first. An existing file is truncated and overwritten.
// It returns the written path. Filesystem errors are returned as-is.
func WriteFile(doc *Document, dir, name string, opts ...WriteOption) (string, error) {
	if doc == nil {
		return "", fmt.Errorf("write file: document is nil")
	}
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("write file: name is empty")
	}
	cfg := writeConfig{dirMode: defaultDirMode, fileMode: defaultFileMode}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	dir = trimDir(dir)
	if dir != "." {
		if err := os.MkdirAll(dir, cfg.dirMode); err != nil {
			return "", err
		}
	}
	path := filepath.Join(dir, name+Extension)
	if err := os.WriteFile(path, []byte(doc.Render()), cfg.fileMode); err != nil {
		return "", err
	}
	return path, nil
}

func trimDir(dir string) string {
	trimmed := strings.TrimRight(dir, `/`+string(filepath.Separator))
	if trimmed == "" {
		if dir != "" {
			return string(filepath.Separator)
		}
		return "."
	}
	return trimmed
}
