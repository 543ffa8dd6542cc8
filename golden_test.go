package mdb_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pkt.systems/mdb/recipe"
)

func TestGoldenRecipes(t *testing.T) {
	var recipes []string
	for _, pattern := range []string{"testdata/*.yaml", "testdata/*.json"} {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			t.Fatalf("glob %s: %v", pattern, err)
		}
		recipes = append(recipes, matches...)
	}
	if len(recipes) == 0 {
		t.Fatalf("no recipes found under testdata")
	}
	for _, path := range recipes {
		t.Run(filepath.Base(path), func(t *testing.T) {
			f, err := os.Open(path)
			if err != nil {
				t.Fatalf("open: %v", err)
			}
			defer f.Close()
			r, err := recipe.Decode(f)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			doc, err := r.Build()
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			goldenPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".golden"
			want, err := os.ReadFile(goldenPath)
			if err != nil {
				t.Fatalf("read golden: %v", err)
			}
			if got := doc.Render(); got != string(want) {
				t.Fatalf("golden mismatch for %s\n---want---\n%s\n---got---\n%s", path, want, got)
			}
		})
	}
}
