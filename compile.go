package dataspec

import (
	"sort"
	"strings"

	js "github.com/reoring/dataspec/jsonschema"
)

// RootKey is the reserved schema DSL entry holding the document's top-level
// properties. The root has no name of its own and is never referenced by $ref.
const RootKey = "<<root>>"

// digitKeyPattern restricts object keys to decimal-digit strings. It is how
// integer-keyed maps are expressed in a format whose object keys are always
// strings.
const digitKeyPattern = "^[0-9]+$"

// IsJSONSchema reports whether v already looks like a compiled JSON Schema
// document, using a shallow key heuristic. A DSL document defining a named
// type literally called "properties" would be misclassified; callers that
// know the form should call Compile explicitly instead.
func IsJSONSchema(v any) bool {
	m, ok := v.(map[string]any)
	if !ok {
		return false
	}
	if _, ok := m["$schema"]; ok {
		return true
	}
	for _, k := range []string{"type", "properties", "items", "required", "definitions", "$defs"} {
		if _, ok := m[k]; ok {
			return true
		}
	}
	return false
}

// Compile translates a schema DSL document into a JSON Schema tree. Named
// types populate a flat definitions table so that recursive and mutually
// recursive types compile without unfolding; the "<<root>>" entry becomes the
// document's top-level properties. Every object level closes over its
// declared properties with additionalProperties: false, and every property
// not marked optional lands in required.
//
// Compile fails with *SchemaError on the first violation and never coerces.
// Dangling $ref targets are not checked here; the validation engine reports
// them when the compiled document is loaded.
func Compile(doc any) (*js.Schema, error) {
	m, ok := doc.(map[string]any)
	if !ok {
		return nil, schemaErrorf("", "schema document must be a mapping")
	}
	rootRaw, ok := m[RootKey]
	if !ok {
		return nil, schemaErrorf("", "schema document must have a %q entry", RootKey)
	}
	rootProps, ok := rootRaw.(map[string]any)
	if !ok {
		return nil, schemaErrorf("", "%q must be a mapping of properties", RootKey)
	}

	out := &js.Schema{
		Type:                 "object",
		Definitions:          make(map[string]*js.Schema, len(m)-1),
		AdditionalProperties: false,
	}
	for name, raw := range m {
		if name == RootKey {
			continue
		}
		typ, ok := raw.(map[string]any)
		if !ok {
			return nil, schemaErrorf(name, "named type must be a mapping with properties")
		}
		props, ok := typ["properties"].(map[string]any)
		if !ok || len(props) == 0 {
			return nil, schemaErrorf(name, "named type must have properties")
		}
		def, err := compileObject(props, name)
		if err != nil {
			return nil, err
		}
		out.Definitions[name] = def
	}

	root, err := compileObject(rootProps, RootKey)
	if err != nil {
		return nil, err
	}
	out.Properties = root.Properties
	out.Required = root.Required
	return out, nil
}

// compileObject translates one properties mapping into a closed object
// schema, accumulating every property not marked optional into required.
func compileObject(props map[string]any, typeName string) (*js.Schema, error) {
	out := &js.Schema{
		Type:                 "object",
		Properties:           make(map[string]*js.Schema, len(props)),
		AdditionalProperties: false,
	}
	required := make([]string, 0, len(props))
	for prop, raw := range props {
		spec, optional, ok := splitOptional(raw)
		if !ok {
			return nil, schemaErrorf(typeName+"."+prop, "property definition must be a mapping")
		}
		if !optional {
			required = append(required, prop)
		}
		compiled, err := compileField(spec, typeName+"."+prop)
		if err != nil {
			return nil, err
		}
		out.Properties[prop] = compiled
	}
	if len(required) > 0 {
		// Source mapping order is not preserved by the loader; sort for
		// deterministic output.
		sort.Strings(required)
		out.Required = required
	}
	return out, nil
}

// splitOptional strips the optional flag off a property definition, leaving
// the remaining type payload untouched.
func splitOptional(raw any) (spec map[string]any, optional, ok bool) {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, false, false
	}
	flag, _ := m["optional"].(bool)
	if _, present := m["optional"]; !present {
		return m, flag, true
	}
	spec = make(map[string]any, len(m)-1)
	for k, v := range m {
		if k != "optional" {
			spec[k] = v
		}
	}
	return spec, flag, true
}

// compileField recursively translates one type payload. context names the
// enclosing property for error reporting.
func compileField(m map[string]any, context string) (*js.Schema, error) {
	t, _ := m["type"].(string)
	switch t {
	case "map":
		keys, keysOK := m["keys"].(map[string]any)
		values, valuesOK := m["values"].(map[string]any)
		if !keysOK || !valuesOK {
			return nil, schemaErrorf(context, "type: map must have keys and values")
		}
		keyType, _ := keys["type"].(string)
		if keyType != "string" && keyType != "integer" {
			return nil, schemaErrorf(context, "map keys must be string or integer")
		}
		valueSchema, err := compileField(values, context+" (map values)")
		if err != nil {
			return nil, err
		}
		if keyType == "integer" {
			return &js.Schema{
				Type:                 "object",
				PatternProperties:    map[string]*js.Schema{digitKeyPattern: valueSchema},
				AdditionalProperties: false,
			}, nil
		}
		return &js.Schema{Type: "object", AdditionalProperties: valueSchema}, nil

	case "array":
		items, ok := m["items"].(map[string]any)
		if !ok || len(items) == 0 {
			return nil, schemaErrorf(context, "type: array must have items")
		}
		itemSchema, err := compileField(items, context+" (array items)")
		if err != nil {
			return nil, err
		}
		return &js.Schema{Type: "array", Items: itemSchema}, nil

	case "string", "integer", "number", "boolean":
		out := &js.Schema{Type: t}
		if desc, ok := m["description"].(string); ok {
			out.Description = desc
		}
		return out, nil

	case "object":
		// Object shapes must be named types; only the definitions table may
		// hold them.
		return nil, schemaErrorf(context, "generic 'object' as property is forbidden (use named types or map)")
	}

	if _, ok := m["properties"]; ok {
		return nil, schemaErrorf(context, "inline object definitions are not allowed (use $ref to named types)")
	}
	if ref, ok := m["$ref"].(string); ok {
		return &js.Schema{Ref: refToJSON(ref)}, nil
	}
	if t == "null" {
		return nil, schemaErrorf(context, "null type is not supported")
	}
	return nil, schemaErrorf(context, "unsupported or missing type")
}

// refToJSON rewrites the DSL's "#/Name" reference convention to the standard
// "#/definitions/Name" pointer form. A pure string substitution, which the
// flat definitions table makes sufficient.
func refToJSON(ref string) string {
	return strings.Replace(ref, "#/", "#/definitions/", 1)
}
