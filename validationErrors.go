package errdoc

import (
	"errors"
	"maps"
	"reflect"
	"slices"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidationErrors is the map of field names to errors produced by
// ozzo-validation. It is an alias for [validation.Errors].
type ValidationErrors = validation.Errors

// codeInvalid is used for leaf errors that carry no code of their own.
const codeInvalid = "invalid"

// FromValidation converts an error returned by ozzo-validation into an
// ErrorSet.
//
// Nested [validation.Errors] are flattened into field errors whose paths are
// joined with "." (e.g. "items.0.name"), visiting keys in sorted order. A
// top-level [validation.Error] that is not a map becomes a global error.
// Wrapped errors are unwrapped with errors.As.
// Internal errors, and errors that did not come from validation, are returned
// unchanged with an empty set.
//
// When source is non-nil each field path is looked up in it to fill
// RejectedValue.
func FromValidation(objectName string, source any, err error) (ErrorSet, error) {
	var set ErrorSet
	if err == nil {
		return set, nil
	}

	var (
		internal validation.InternalError
		errs     validation.Errors
		verr     validation.Error
	)
	switch {
	case errors.As(err, &internal):
		return ErrorSet{}, err
	case errors.As(err, &errs):
		if ierr := flattenErrors(objectName, "", errs, &set); ierr != nil {
			return ErrorSet{}, ierr
		}
	case errors.As(err, &verr):
		set.Globals = append(set.Globals, GlobalError{
			ObjectName:     objectName,
			Code:           verr.Code(),
			DefaultMessage: verr.Error(),
		})
	default:
		return ErrorSet{}, err
	}

	if source != nil {
		root := reflect.ValueOf(source)
		for i := range set.Fields {
			if v, ok := lookupPath(root, strings.Split(set.Fields[i].Field, ".")); ok && v.CanInterface() {
				set.Fields[i].RejectedValue = Rejected(v.Interface())
			}
		}
	}
	return set, nil
}

// flattenErrors appends the leaves of errs to set.Fields. It returns the
// first internal error it meets.
func flattenErrors(objectName, prefix string, errs validation.Errors, set *ErrorSet) error {
	for _, key := range slices.Sorted(maps.Keys(errs)) {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		switch e := errs[key].(type) {
		case nil:
			continue
		case validation.InternalError:
			return e
		case validation.Errors:
			if err := flattenErrors(objectName, path, e, set); err != nil {
				return err
			}
		case validation.Error:
			set.Fields = append(set.Fields, FieldError{
				Field:          path,
				ObjectName:     objectName,
				Code:           e.Code(),
				DefaultMessage: e.Error(),
			})
		default:
			set.Fields = append(set.Fields, FieldError{
				Field:          path,
				ObjectName:     objectName,
				Code:           codeInvalid,
				DefaultMessage: e.Error(),
			})
		}
	}
	return nil
}
