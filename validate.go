package dataspec

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	engine "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/reoring/dataspec/i18n"
)

// snippetLimit caps the pretty-printed rendering of the offending sub-value
// inside a Diagnostic.
const snippetLimit = 400

// Diagnostic reshapes a single engine violation into a human-readable form.
// It reports the deepest violation cause, the dot/bracket path to the
// offending node, and a length-capped rendering of the offending sub-value.
type Diagnostic struct {
	Message string // engine rule message
	Path    string // dot/bracket path, "(root)" when the violation is at the top
	Snippet string // pretty-printed offending sub-value
}

func (d *Diagnostic) Error() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "%s: %s\n", i18n.T(CodeValidationFailed, nil), d.Message)
	fmt.Fprintf(b, "Location: %s\n", d.Path)
	fmt.Fprintf(b, "Data snippet: %s", d.Snippet)
	return b.String()
}

// Validate checks data against schema, which may be either a schema DSL
// document or an already compiled JSON Schema document (detected via
// IsJSONSchema). It returns nil on success, a *Diagnostic on violation and a
// *SchemaError when the DSL itself is malformed.
func Validate(data, schema any) error {
	sch, err := compileEngineSchema(schema)
	if err != nil {
		return err
	}
	if err := sch.Validate(data); err != nil {
		var ve *engine.ValidationError
		if errors.As(err, &ve) {
			return diagnose(ve, data)
		}
		return err
	}
	return nil
}

// Report is the non-raising counterpart of Validate. It returns "" when data
// conforms, the rendered diagnostic text on violation, and an error only when
// the schema side fails (malformed DSL, unresolvable $ref).
func Report(data, schema any) (string, error) {
	err := Validate(data, schema)
	if err == nil {
		return "", nil
	}
	var d *Diagnostic
	if errors.As(err, &d) {
		return d.Error(), nil
	}
	return "", err
}

// compileEngineSchema conditionally compiles the DSL and hands the resulting
// document to the validation engine. Dangling $ref targets surface here as
// engine compile errors.
func compileEngineSchema(schema any) (*engine.Schema, error) {
	doc := schema
	if !IsJSONSchema(schema) {
		compiled, err := Compile(schema)
		if err != nil {
			return nil, err
		}
		doc = compiled
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	c := engine.NewCompiler()
	c.Draft = engine.Draft7
	if err := c.AddResource("schema.json", bytes.NewReader(raw)); err != nil {
		return nil, err
	}
	return c.Compile("schema.json")
}

// diagnose walks the violation tree to its deepest first cause and formats
// the path and offending sub-value.
func diagnose(ve *engine.ValidationError, data any) *Diagnostic {
	leaf := ve
	for len(leaf.Causes) > 0 {
		leaf = leaf.Causes[0]
	}
	keys := pointerSegments(leaf.InstanceLocation)
	return &Diagnostic{
		Message: leaf.Message,
		Path:    renderPath(keys),
		Snippet: renderSnippet(instanceAt(data, keys)),
	}
}

// pointerSegments splits a JSON Pointer into unescaped reference tokens.
func pointerSegments(ptr string) []string {
	if ptr == "" || ptr == "/" {
		return nil
	}
	parts := strings.Split(strings.TrimPrefix(ptr, "/"), "/")
	for i, p := range parts {
		p = strings.ReplaceAll(p, "~1", "/")
		parts[i] = strings.ReplaceAll(p, "~0", "~")
	}
	return parts
}

// renderPath renders pointer tokens in dot/bracket form, e.g. projects[0].name.
func renderPath(keys []string) string {
	if len(keys) == 0 {
		return "(root)"
	}
	b := &strings.Builder{}
	for _, k := range keys {
		if _, err := strconv.Atoi(k); err == nil {
			fmt.Fprintf(b, "[%s]", k)
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(k)
	}
	return b.String()
}

// instanceAt resolves pointer tokens against the data tree, best-effort: when
// a token does not resolve, the value walked so far is returned.
func instanceAt(data any, keys []string) any {
	current := data
	for _, k := range keys {
		switch node := current.(type) {
		case map[string]any:
			v, ok := node[k]
			if !ok {
				return current
			}
			current = v
		case []any:
			i, err := strconv.Atoi(k)
			if err != nil || i < 0 || i >= len(node) {
				return current
			}
			current = node[i]
		default:
			return current
		}
	}
	return current
}

// renderSnippet pretty-prints v, capped at snippetLimit with an explicit
// truncation marker.
func renderSnippet(v any) string {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		raw = []byte(fmt.Sprintf("%v", v))
	}
	s := string(raw)
	if len(s) > snippetLimit {
		s = s[:snippetLimit] + "... (truncated)"
	}
	return s
}
