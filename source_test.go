package dataspec_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	dataspec "github.com/reoring/dataspec"
)

func TestLoadText_YAML(t *testing.T) {
	v, err := dataspec.LoadText("a:\n  b: [1, 2]\n")
	if err != nil {
		t.Fatalf("load err: %v", err)
	}
	want := map[string]any{"a": map[string]any{"b": []any{1, 2}}}
	if !reflect.DeepEqual(v, want) {
		t.Fatalf("expected %v, got %v", want, v)
	}
}

func TestLoadText_JSONFallback(t *testing.T) {
	// A YAML-hostile JSON document: yaml.v3 rejects duplicate mapping keys,
	// JSON decoding keeps the last one.
	v, err := dataspec.LoadText(`{"a": 1, "a": 2}`)
	if err != nil {
		t.Fatalf("load err: %v", err)
	}
	m, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("expected mapping, got %T", v)
	}
	if m["a"] != float64(2) {
		t.Fatalf("expected JSON fallback value 2, got %v", m["a"])
	}
}

func TestLoadFile_ExtensionDetection(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "data.yaml")
	if err := os.WriteFile(yamlPath, []byte("k: v\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	v, err := dataspec.LoadFile(yamlPath, dataspec.FormatAuto)
	if err != nil {
		t.Fatalf("load yaml: %v", err)
	}
	if !reflect.DeepEqual(v, map[string]any{"k": "v"}) {
		t.Fatalf("unexpected yaml value: %v", v)
	}

	jsonPath := filepath.Join(dir, "data.json")
	if err := os.WriteFile(jsonPath, []byte(`{"k":"v"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	v, err = dataspec.LoadFile(jsonPath, dataspec.FormatAuto)
	if err != nil {
		t.Fatalf("load json: %v", err)
	}
	if !reflect.DeepEqual(v, map[string]any{"k": "v"}) {
		t.Fatalf("unexpected json value: %v", v)
	}
}

func TestLoadFile_UnknownExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.txt")
	if err := os.WriteFile(path, []byte("k: v\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := dataspec.LoadFile(path, dataspec.FormatAuto); err == nil {
		t.Fatalf("expected format-detection error")
	}
	// An explicit hint overrides the extension.
	v, err := dataspec.LoadFile(path, dataspec.FormatYAML)
	if err != nil {
		t.Fatalf("load with hint: %v", err)
	}
	if !reflect.DeepEqual(v, map[string]any{"k": "v"}) {
		t.Fatalf("unexpected value: %v", v)
	}
}
