// Package openapi describes the errdoc error document in OpenAPI 3 and
// provides helpers for registering endpoints that return it.
//
// Use [DocBase] to create a base document and register endpoints with [Get],
// [Post], [Put], [Patch], or [Delete]. Endpoints marked Validated get a 400
// response whose body is [ErrorDocumentSchema]:
//
//	doc := openapi.DocBase("my-api", "My API", "1.0")
//	openapi.Post(doc, "/orders", "createOrder", openapi.Endpoint{
//	    Request:   Order{},
//	    Response:  Order{},
//	    Validated: true,
//	})
package openapi
