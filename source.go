package dataspec

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Format selects the text representation of a document.
type Format string

const (
	FormatAuto Format = ""
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// LoadText parses s as YAML, falling back to JSON when YAML decoding fails.
// JSON documents are valid YAML, so the fallback only fires for inputs the
// YAML decoder rejects outright.
func LoadText(s string) (any, error) {
	var v any
	if err := yaml.Unmarshal([]byte(s), &v); err == nil {
		return normalizeYAML(v), nil
	}
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, err
	}
	return v, nil
}

// LoadFile loads a YAML or JSON file as a generic tree. The format comes from
// the explicit hint when given, else from the file extension; an unrecognized
// extension without a hint is an error.
func LoadFile(path string, format Format) (any, error) {
	f := Format(strings.ToLower(string(format)))
	if f == FormatAuto {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			f = FormatYAML
		case ".json":
			f = FormatJSON
		default:
			return nil, fmt.Errorf("dataspec: cannot infer file format from extension: %s", path)
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch f {
	case FormatYAML:
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return normalizeYAML(v), nil
	case FormatJSON:
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, fmt.Errorf("dataspec: unknown format: %q", f)
	}
}

// normalizeYAML converts YAML-decoded values (which may contain map[any]any)
// into JSON-like map[string]any recursively. Non-string keys are dropped.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = normalizeYAML(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = normalizeYAML(vv)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = normalizeYAML(t[i])
		}
		return arr
	default:
		return v
	}
}
