package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pkt.systems/mdb/recipe"
)

func main() {
	root := "testdata"
	if len(os.Args) > 1 {
		root = os.Args[1]
	}
	var paths []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		switch filepath.Ext(path) {
		case ".yaml", ".yml", ".json":
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		fatalf("walk %s: %v", root, err)
	}
	if len(paths) == 0 {
		fatalf("no recipes found under %s", root)
	}
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			fatalf("read %s: %v", path, err)
		}
		r, err := recipe.Parse(src)
		if err != nil {
			fatalf("%s: %v", path, err)
		}
		doc, err := r.Build()
		if err != nil {
			fatalf("%s: %v", path, err)
		}
		out := strings.TrimSuffix(path, filepath.Ext(path)) + ".golden"
		if err := os.WriteFile(out, []byte(doc.Render()), 0o644); err != nil {
			fatalf("write %s: %v", out, err)
		}
		fmt.Fprintf(os.Stdout, "wrote %s\n", out)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
