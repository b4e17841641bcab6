// Package errdoc renders validation failures as a JSON error document for
// HTTP responses.
//
// An [ErrorSet] holds field errors and global (whole-object) errors. The
// builder writes them as one JSON array, field errors first:
//
//	body, err := errdoc.Serialize(errdoc.ErrorSet{
//	    Fields: []errdoc.FieldError{{
//	        Field: "name", ObjectName: "event", Code: "NotBlank",
//	        DefaultMessage: "must not be blank",
//	    }},
//	})
//
// Error sets usually come from a validation library. [FromValidation] reads
// ozzo-validation errors and [FromValidator] reads go-playground/validator
// errors. [WriteHTTP] sends the document as a response body.
//
// Sub-packages:
//   - openapi – OpenAPI schema for the error document and endpoint helpers
//   - errgin – gin responder
package errdoc
