package errdoc

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FromValidator converts an error returned by go-playground/validator into an
// ErrorSet. Each [validator.FieldError] becomes a field error whose Field is
// its namespace without the leading struct name and whose Code is the failed
// tag. An empty objectName is derived from the struct name.
//
// Errors other than [validator.ValidationErrors], such as
// [*validator.InvalidValidationError], are returned unchanged.
func FromValidator(objectName string, err error) (ErrorSet, error) {
	var set ErrorSet
	if err == nil {
		return set, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ErrorSet{}, err
	}

	for _, fe := range verrs {
		root, field, ok := strings.Cut(fe.Namespace(), ".")
		if !ok {
			root, field = "", fe.Field()
		}
		name := objectName
		if name == "" {
			name = lowerFirst(root)
		}
		set.Fields = append(set.Fields, FieldError{
			Field:          field,
			ObjectName:     name,
			Code:           fe.Tag(),
			DefaultMessage: fe.Error(),
			RejectedValue:  Rejected(fe.Value()),
		})
	}
	return set, nil
}

// Collect dispatches err to [FromValidator] or [FromValidation] depending on
// which library produced it. source is only used for ozzo-validation errors,
// since go-playground errors carry their own values.
func Collect(objectName string, source any, err error) (ErrorSet, error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return FromValidator(objectName, err)
	}
	var set ErrorSet
	if errors.As(err, &set) {
		return set, nil
	}
	return FromValidation(objectName, source, err)
}

// lowerFirst lowercases the first byte of s.
// Used to turn Go type names (e.g. "Event") into object names ("event").
func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
