package openapi

import (
	"errors"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
)

const mediaJSON = "application/json"

// ValidationStatus is the status code under which Validated endpoints
// document their error response.
const ValidationStatus = "400"

// Response describes an HTTP response with a description and body types for schema generation.
// ErrorDocument adds the error document schema to the body types.
type Response struct {
	Desc          string
	Bodies        []any
	ErrorDocument bool
}

// Endpoint describes a single API operation for the convenience helpers
// [Get], [Post], [Put], [Patch], and [Delete].
type Endpoint struct {
	Summary     string
	Description string
	Request     any                 // single request body type (convenience)
	Requests    []any               // multiple request body types (oneOf)
	Response    any                 // single 200 response type (convenience)
	Responses   map[string]Response // full response map (overrides Response if both set)
	Validated   bool                // adds a 400 response carrying the error document
}

// jsonContent wraps refs in an application/json content map. Several refs
// become a oneOf.
func jsonContent(refs openapi3.SchemaRefs) openapi3.Content {
	schema := &openapi3.SchemaRef{Value: &openapi3.Schema{OneOf: refs}}
	if len(refs) == 1 {
		schema = refs[0]
	}
	return openapi3.Content{mediaJSON: &openapi3.MediaType{Schema: schema}}
}

func schemaRefs(vs []any) (openapi3.SchemaRefs, error) {
	refs := make(openapi3.SchemaRefs, 0, len(vs))
	for _, v := range vs {
		ref, err := NewSchemaRefForValue(v)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// NewRequest generates an OpenAPI request body schema from the given value types.
func NewRequest(vs ...any) (*openapi3.RequestBodyRef, error) {
	if len(vs) == 0 {
		return nil, errors.New("no values given")
	}
	refs, err := schemaRefs(vs)
	if err != nil {
		return nil, err
	}
	return &openapi3.RequestBodyRef{
		Value: &openapi3.RequestBody{Content: jsonContent(refs)},
	}, nil
}

// must panics on err. Endpoint bodies are static types, so a generation
// failure is a programming error.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// NewResponse creates an OpenAPI responses object.
// Map key is status code (e.g. "200", "4xx").
func NewResponse(vs map[string]Response) (*openapi3.Responses, error) {
	if len(vs) == 0 {
		return nil, errors.New("no values given")
	}

	opts := make([]openapi3.NewResponsesOption, 0, len(vs))
	for statusCode, r := range vs {
		refs, err := schemaRefs(r.Bodies)
		if err != nil {
			return nil, err
		}
		if r.ErrorDocument {
			refs = append(refs, ErrorDocumentSchema())
		}

		desc := r.Desc
		opts = append(opts, openapi3.WithName(statusCode, &openapi3.Response{
			Description: &desc,
			Content:     jsonContent(refs),
		}))
	}
	return openapi3.NewResponses(opts...), nil
}

// DocBase returns a basic OpenAPI 3.0.3 document structure.
func DocBase(serviceName, description, version string) *openapi3.T {
	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       serviceName,
			Description: description,
			Version:     version,
		},
		Paths: &openapi3.Paths{},
	}
}

// AddPath sets op for method on the path item at path, creating the item
// if needed. method must be an HTTP method name such as http.MethodPost.
func AddPath(path, method string, s *openapi3.T, op *openapi3.Operation) {
	p := s.Paths.Value(path)
	if p == nil {
		p = &openapi3.PathItem{}
		s.Paths.Set(path, p)
	}
	p.SetOperation(method, op)
}

// addEndpoint builds an [openapi3.Operation] from ep and registers it at path+method.
func addEndpoint(doc *openapi3.T, path, method, operationID string, ep Endpoint) {
	op := &openapi3.Operation{
		OperationID: operationID,
		Summary:     ep.Summary,
		Description: ep.Description,
	}

	switch {
	case len(ep.Requests) > 0:
		op.RequestBody = must(NewRequest(ep.Requests...))
	case ep.Request != nil:
		op.RequestBody = must(NewRequest(ep.Request))
	}

	if responses := endpointResponses(ep); len(responses) > 0 {
		op.Responses = must(NewResponse(responses))
	} else {
		op.Responses = openapi3.NewResponses()
	}

	AddPath(path, method, doc, op)
}

// endpointResponses resolves the response map of ep: Responses wins over
// Response, and Validated adds the error document under [ValidationStatus]
// unless a response is already declared there.
func endpointResponses(ep Endpoint) map[string]Response {
	responses := make(map[string]Response, len(ep.Responses)+2)
	for code, r := range ep.Responses {
		responses[code] = r
	}
	if ep.Responses == nil && ep.Response != nil {
		responses["200"] = Response{Desc: "OK", Bodies: []any{ep.Response}}
	}
	if _, ok := responses[ValidationStatus]; ep.Validated && !ok {
		responses[ValidationStatus] = Response{Desc: "Validation failed", ErrorDocument: true}
	}
	return responses
}

// Get registers a GET endpoint on doc.
func Get(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodGet, operationID, ep)
}

// Post registers a POST endpoint on doc.
func Post(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPost, operationID, ep)
}

// Put registers a PUT endpoint on doc.
func Put(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPut, operationID, ep)
}

// Patch registers a PATCH endpoint on doc.
func Patch(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPatch, operationID, ep)
}

// Delete registers a DELETE endpoint on doc.
func Delete(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodDelete, operationID, ep)
}
