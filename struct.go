package errdoc

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// lookupPath follows an error key path through structs, slices, arrays and
// maps. It reports false if any segment cannot be resolved or a nil pointer
// is met on the way.
func lookupPath(v reflect.Value, path []string) (reflect.Value, bool) {
	for _, seg := range path {
		v = indirect(v)
		if !v.IsValid() {
			return reflect.Value{}, false
		}

		switch v.Kind() {
		case reflect.Struct:
			f, ok := fieldByKey(v, seg)
			if !ok {
				return reflect.Value{}, false
			}
			v = f
		case reflect.Slice, reflect.Array:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= v.Len() {
				return reflect.Value{}, false
			}
			v = v.Index(i)
		case reflect.Map:
			found := false
			for _, k := range v.MapKeys() {
				if fmt.Sprintf("%v", k.Interface()) == seg {
					v = v.MapIndex(k)
					found = true
					break
				}
			}
			if !found {
				return reflect.Value{}, false
			}
		default:
			return reflect.Value{}, false
		}
	}
	return v, true
}

// indirect dereferences pointers and interfaces. It returns the zero Value
// when it meets nil.
func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

// fieldByKey finds the exported field whose error key is key. Fields of
// embedded structs are searched as if they were declared on v, matching the
// flat keys validation produces for embedded rule sets.
func fieldByKey(v reflect.Value, key string) (reflect.Value, bool) {
	for i := range v.NumField() {
		sf := v.Type().Field(i)
		if sf.Anonymous {
			inner := indirect(v.Field(i))
			if inner.Kind() == reflect.Struct {
				if f, ok := fieldByKey(inner, key); ok {
					return f, true
				}
			}
			continue
		}
		if !sf.IsExported() {
			continue
		}
		if fieldKey(sf) == key {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

// fieldKey returns the json tag name if present, otherwise the Go field name.
func fieldKey(sf reflect.StructField) string {
	tag := strings.Split(sf.Tag.Get("json"), ",")[0]
	if tag != "" && tag != "-" {
		return tag
	}
	return sf.Name
}
