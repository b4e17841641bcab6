package errdoc

import (
	"fmt"
	"reflect"

	"github.com/asaskevich/govalidator"
)

// Rejected returns the string form of v for [FieldError.RejectedValue].
// Nil values, including typed nil pointers, maps, slices and interfaces,
// return nil so the key is left out of the document. Pointers are
// dereferenced unless the pointer itself implements fmt.Stringer.
func Rejected(v any) *string {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil
	}
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		if rv.IsNil() {
			return nil
		}
	}
	if _, ok := v.(fmt.Stringer); ok {
		s := govalidator.ToString(v)
		return &s
	}
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if !rv.CanInterface() {
		return nil
	}
	s := govalidator.ToString(rv.Interface())
	return &s
}
