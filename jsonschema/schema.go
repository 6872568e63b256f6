package jsonschema

// Schema is a minimal JSON Schema representation covering the subset the
// compiler emits. Keep this struct small and extend incrementally.
type Schema struct {
	// Core
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
	Ref         string `json:"$ref,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`
	PatternProperties    map[string]*Schema `json:"patternProperties,omitempty"`

	// Array
	Items *Schema `json:"items,omitempty"`

	// Named types referenced via $ref live in a flat table at the document root.
	Definitions map[string]*Schema `json:"definitions,omitempty"`
}
