package errdoc

import (
	"fmt"
	"net/http"
)

// WriteHTTP sends set as a JSON response with the given status. The document
// is built before anything is written, so a failure leaves w untouched.
//
//	if err := v.Struct(req); err != nil {
//	    set, err := errdoc.FromValidator("order", err)
//	    ...
//	    _ = errdoc.WriteHTTP(w, http.StatusBadRequest, set)
//	}
func WriteHTTP(w http.ResponseWriter, status int, set ErrorSet, opts ...Option) error {
	body, err := New(opts...).Serialize(set)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("writing error document: %w", err)
	}
	return nil
}
