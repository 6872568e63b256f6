// Package dataspec validates generic hierarchical data (YAML/JSON trees)
// against a compact schema DSL and extracts values from such trees with the
// DataPath expression language.
//
// The schema DSL is a mapping from type name to type definition plus one
// reserved "<<root>>" entry. Compile translates it into a standard JSON
// Schema document with a flat definitions table; Validate delegates the
// structural check to a conformant JSON Schema engine and reshapes the first
// violation into a human-readable diagnostic. The datapath subpackage is
// independent of the schema side and operates on the same generic tree shape.
package dataspec
