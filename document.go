package errdoc

import "strings"

type (
	// FieldError is a validation failure attributable to one named input field.
	FieldError struct {
		Field          string
		ObjectName     string
		Code           string
		DefaultMessage string
		// RejectedValue is the stringified input that failed validation.
		// Nil means the input carried no value; see [Rejected].
		RejectedValue *string
	}

	// GlobalError is a validation failure of the object as a whole, such as a
	// cross-field constraint.
	GlobalError struct {
		ObjectName     string
		Code           string
		DefaultMessage string
	}

	// ErrorSet is the input of the document builder: field errors followed by
	// global errors, each in the order the validation layer produced them.
	// Either slice may be empty.
	//
	// ErrorSet implements error so a validation layer can return it directly;
	// callers recover it with errors.As.
	ErrorSet struct {
		Fields  []FieldError
		Globals []GlobalError
	}
)

// Len returns the number of elements the document will contain.
func (s ErrorSet) Len() int {
	return len(s.Fields) + len(s.Globals)
}

// Empty reports whether the set holds no errors.
func (s ErrorSet) Empty() bool {
	return s.Len() == 0
}

func (s ErrorSet) Error() string {
	if s.Empty() {
		return ""
	}
	parts := make([]string, 0, s.Len())
	for _, f := range s.Fields {
		parts = append(parts, f.Field+": "+f.DefaultMessage)
	}
	for _, g := range s.Globals {
		parts = append(parts, g.ObjectName+": "+g.DefaultMessage)
	}
	return strings.Join(parts, "; ") + "."
}

// MarshalJSON renders the set with [Serialize], so an ErrorSet can be embedded
// as a field of a larger response body. When called through json.Marshal or
// an Encoder with HTML escaping on, encoding/json re-escapes <, > and & in
// the output; use [Serialize] or [Encode] to keep messages verbatim.
func (s ErrorSet) MarshalJSON() ([]byte, error) {
	return Serialize(s)
}
