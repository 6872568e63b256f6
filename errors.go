package dataspec

import "fmt"

// Error codes reported by the compiler and the validation facade.
const (
	CodeSchemaError      = "schema_error"
	CodeValidationFailed = "validation_failed"
)

// SchemaError reports a malformed schema DSL document. Context names the
// property under translation when known, for example "Project.epics (array items)".
type SchemaError struct {
	Message string
	Context string
}

func (e *SchemaError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("schema error: %s: %s", e.Message, e.Context)
	}
	return "schema error: " + e.Message
}

func schemaErrorf(context, format string, a ...any) *SchemaError {
	return &SchemaError{Message: fmt.Sprintf(format, a...), Context: context}
}
