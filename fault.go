package errdoc

import (
	"errors"
	"fmt"
)

// ErrWriteFault matches every [*WriteFault] with errors.Is.
var ErrWriteFault = errors.New("error document write failed")

// ElementKind identifies which part of the document a write belonged to.
type ElementKind int

const (
	// KindArray is the opening or closing bracket of the document.
	KindArray ElementKind = iota
	KindField
	KindGlobal
)

func (k ElementKind) String() string {
	switch k {
	case KindField:
		return "field"
	case KindGlobal:
		return "global"
	default:
		return "array"
	}
}

// WriteFault reports that the output sink rejected a write.
type WriteFault struct {
	// Index is the position of the element in the document, or -1 for a bracket.
	Index int
	Kind  ElementKind
	Err   error
}

func (f *WriteFault) Error() string {
	if f.Kind == KindArray {
		return fmt.Sprintf("%s: array bracket: %v", ErrWriteFault, f.Err)
	}
	return fmt.Sprintf("%s: %s error at index %d: %v", ErrWriteFault, f.Kind, f.Index, f.Err)
}

func (f *WriteFault) Unwrap() error {
	return f.Err
}

func (f *WriteFault) Is(target error) bool {
	return target == ErrWriteFault
}
