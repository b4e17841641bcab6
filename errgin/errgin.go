package errgin

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/Gobd/errdoc"
	"github.com/gin-gonic/gin"
)

const contentType = "application/json"

// CodeMalformed is the global error code for request bodies that could not
// be decoded.
const CodeMalformed = "malformed"

var fallbackBody = []byte(`{"status":500,"error":"Internal Server Error"}`)

// Abort writes set as the response body with the given status and aborts the
// handler chain.
func Abort(c *gin.Context, status int, set errdoc.ErrorSet) {
	body, err := errdoc.Serialize(set)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to serialize error document", "err", err)
		c.Data(http.StatusInternalServerError, contentType, fallbackBody)
		c.Abort()
		return
	}
	logResponse(c, status, set)
	c.Data(status, contentType, body)
	c.Abort()
}

// AbortWithValidation converts err with [errdoc.Collect] and aborts with the
// resulting document. JSON decode failures from binding become a single
// global error with code [CodeMalformed]. Any other error that is not a
// validation failure is attached to the context and answered with 500.
func AbortWithValidation(c *gin.Context, status int, objectName string, source any, err error) {
	if decodeFailure(err) {
		Abort(c, status, errdoc.ErrorSet{Globals: []errdoc.GlobalError{{
			ObjectName:     objectName,
			Code:           CodeMalformed,
			DefaultMessage: err.Error(),
		}}})
		return
	}

	set, cerr := errdoc.Collect(objectName, source, err)
	if cerr != nil {
		slog.ErrorContext(c.Request.Context(), "unexpected validation error", "err", cerr)
		_ = c.AbortWithError(http.StatusInternalServerError, cerr)
		return
	}
	Abort(c, status, set)
}

// decodeFailure reports whether err came from decoding the request body
// rather than from validating it.
func decodeFailure(err error) bool {
	var (
		syntax  *json.SyntaxError
		typeErr *json.UnmarshalTypeError
	)
	return errors.As(err, &syntax) ||
		errors.As(err, &typeErr) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, io.EOF)
}

func logResponse(c *gin.Context, status int, set errdoc.ErrorSet) {
	route := c.FullPath()
	if route == "" {
		route = c.Request.URL.Path
	}
	slog.WarnContext(c.Request.Context(), "request rejected",
		"status", status,
		"route", route,
		"field_errors", len(set.Fields),
		"global_errors", len(set.Globals),
	)
}
