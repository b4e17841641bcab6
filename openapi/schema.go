package openapi

import (
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
)

// fieldErrorDoc and globalErrorDoc mirror the objects errdoc writes.
type fieldErrorDoc struct {
	Field          string `json:"field"`
	ObjectName     string `json:"objectName"`
	Code           string `json:"code"`
	DefaultMessage string `json:"defaultMessage"`
	RejectedValue  string `json:"rejectedValue,omitempty"`
}

type globalErrorDoc struct {
	ObjectName     string `json:"objectName"`
	Code           string `json:"code"`
	DefaultMessage string `json:"defaultMessage"`
}

// NewSchemaRefForValue generates an OpenAPI schema for the given value.
func NewSchemaRefForValue(value any) (*openapi3.SchemaRef, error) {
	return openapi3gen.NewSchemaRefForValue(value, nil)
}

// ErrorDocumentSchema returns the schema of an errdoc error document: an
// array whose items are either field error or global error objects.
func ErrorDocumentSchema() *openapi3.SchemaRef {
	field := closedObject(fieldErrorDoc{}, "Validation failure of a single field.",
		"field", "objectName", "code", "defaultMessage")
	global := closedObject(globalErrorDoc{}, "Validation failure of the object as a whole.",
		"objectName", "code", "defaultMessage")

	items := openapi3.NewOneOfSchema(field, global)
	doc := openapi3.NewArraySchema().WithItems(items)
	doc.Description = "Field errors in input order, followed by global errors in input order."
	return doc.NewRef()
}

// closedObject generates the schema for v, marks required keys and rejects
// unknown keys so field and global objects never both match.
func closedObject(v any, desc string, required ...string) *openapi3.Schema {
	ref, err := NewSchemaRefForValue(v)
	if err != nil {
		// Both document types are plain string structs.
		panic(err)
	}
	s := ref.Value
	s.Description = desc
	s.Required = required
	s.AdditionalProperties = openapi3.AdditionalProperties{Has: openapi3.BoolPtr(false)}
	return s
}
