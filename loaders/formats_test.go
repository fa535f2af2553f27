package loaders

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestJSONStrategyObjectRoot(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "webpack.config.json", `{"entry": "src/index.js", "bail": true}`)

	content, err := (&JSONStrategy{}).Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	obj, ok := content.(map[string]any)
	if !ok {
		t.Fatalf("content is %T, want map", content)
	}
	if obj["entry"] != "src/index.js" {
		t.Errorf("entry = %v, want src/index.js", obj["entry"])
	}
	if obj["bail"] != true {
		t.Errorf("bail = %v, want true", obj["bail"])
	}
}

func TestJSONStrategyArrayRoot(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "webpack.config.json",
		`[{"name": "web"}, {"name": "node"}]`)

	content, err := (&JSONStrategy{}).Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	arr, ok := content.([]any)
	if !ok {
		t.Fatalf("content is %T, want []any", content)
	}
	if len(arr) != 2 {
		t.Fatalf("len = %d, want 2", len(arr))
	}
}

func TestJSONStrategyStripsComments(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "webpack.config.jsonc", `{
	// entry point
	"entry": "src/index.js", /* inline */
	"mode": "production",
}`)

	content, err := (&JSONStrategy{}).Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	obj := content.(map[string]any)
	if obj["mode"] != "production" {
		t.Errorf("mode = %v, want production", obj["mode"])
	}
}

func TestJSONStrategyInvalidDocument(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "webpack.config.json", `{"entry": `)

	if _, err := (&JSONStrategy{}).Load(context.Background(), path); err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
}

func TestYAMLStrategy(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		filename string
		content  string
		check    func(t *testing.T, content any)
	}{
		{
			name:     "object root",
			filename: "webpack.config.yaml",
			content:  "entry: src/index.js\nwatch: true\n",
			check: func(t *testing.T, content any) {
				obj, ok := content.(map[string]any)
				if !ok {
					t.Fatalf("content is %T, want map", content)
				}
				if obj["entry"] != "src/index.js" {
					t.Errorf("entry = %v", obj["entry"])
				}
			},
		},
		{
			name:     "sequence root",
			filename: "webpack.config.yml",
			content:  "- name: web\n- name: node\n",
			check: func(t *testing.T, content any) {
				arr, ok := content.([]any)
				if !ok {
					t.Fatalf("content is %T, want []any", content)
				}
				if len(arr) != 2 {
					t.Errorf("len = %d, want 2", len(arr))
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, tt.filename, tt.content)
			content, err := (&YAMLStrategy{}).Load(context.Background(), path)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			tt.check(t, content)
		})
	}
}

func TestTOMLStrategy(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "webpack.config.toml", "entry = \"src/index.js\"\n\n[output]\npath = \"dist\"\n")

	content, err := (&TOMLStrategy{}).Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	obj, ok := content.(map[string]any)
	if !ok {
		t.Fatalf("content is %T, want map", content)
	}
	out, ok := obj["output"].(map[string]any)
	if !ok {
		t.Fatalf("output is %T, want map", obj["output"])
	}
	if out["path"] != "dist" {
		t.Errorf("output.path = %v, want dist", out["path"])
	}
}

func TestStrategiesMissingFile(t *testing.T) {
	ctx := context.Background()
	missing := filepath.Join(t.TempDir(), "nope.json")

	strategies := map[string]Strategy{
		"json": &JSONStrategy{},
		"yaml": &YAMLStrategy{},
		"toml": &TOMLStrategy{},
		"lua":  &LuaStrategy{},
	}

	for name, s := range strategies {
		t.Run(name, func(t *testing.T) {
			if _, err := s.Load(ctx, missing); err == nil {
				t.Fatal("expected an error for a missing file")
			}
		})
	}
}
