package errdoc

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
)

type (
	// Option configures a [Builder].
	Option func(*Builder)

	// Builder writes an [ErrorSet] as a JSON array. It holds no per-call state
	// and is safe for concurrent use.
	Builder struct {
		logger          *slog.Logger
		continueOnFault bool
	}
)

// WithLogger sets the logger used for skipped-element diagnostics. The
// default is slog.Default() at the time of the write.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// ContinueOnFault makes the builder log a failed element write and carry on
// with the next element instead of returning a [*WriteFault]. The resulting
// document silently lacks the failed elements, so only use it where a
// partial document is preferable to none. Only a write that failed before
// any byte reached w is skipped: a short write has already left a broken
// element in the sink, so it is returned like faults on the array brackets.
func ContinueOnFault() Option {
	return func(b *Builder) {
		b.continueOnFault = true
	}
}

// New returns a Builder configured with opts.
func New(opts ...Option) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

var defaultBuilder = New()

// Serialize renders set with the default builder.
func Serialize(set ErrorSet) ([]byte, error) {
	return defaultBuilder.Serialize(set)
}

// Encode writes set to w with the default builder.
func Encode(w io.Writer, set ErrorSet) error {
	return defaultBuilder.Encode(w, set)
}

// Serialize renders set as a compact JSON array. The document is nil when an
// error is returned.
func (b *Builder) Serialize(set ErrorSet) ([]byte, error) {
	var buf bytes.Buffer
	if err := b.Encode(&buf, set); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// fieldElement and globalElement fix the key order of the document objects.
type fieldElement struct {
	Field          string  `json:"field"`
	ObjectName     string  `json:"objectName"`
	Code           string  `json:"code"`
	DefaultMessage string  `json:"defaultMessage"`
	RejectedValue  *string `json:"rejectedValue,omitempty"`
}

type globalElement struct {
	ObjectName     string `json:"objectName"`
	Code           string `json:"code"`
	DefaultMessage string `json:"defaultMessage"`
}

// Encode writes set to w: every field error in order, then every global
// error in order. Each element is written with a single Write call.
func (b *Builder) Encode(w io.Writer, set ErrorSet) error {
	if _, err := io.WriteString(w, "["); err != nil {
		return &WriteFault{Index: -1, Kind: KindArray, Err: err}
	}

	e := elementWriter{Builder: b, w: w}
	for _, f := range set.Fields {
		if err := e.write(KindField, fieldElement(f)); err != nil {
			return err
		}
	}
	for _, g := range set.Globals {
		if err := e.write(KindGlobal, globalElement(g)); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, "]"); err != nil {
		return &WriteFault{Index: -1, Kind: KindArray, Err: err}
	}
	return nil
}

type elementWriter struct {
	*Builder
	w       io.Writer
	index   int
	written int
}

func (e *elementWriter) write(kind ElementKind, v any) error {
	index := e.index
	e.index++

	var buf bytes.Buffer
	if e.written > 0 {
		buf.WriteByte(',')
	}
	var n int
	err := marshalElement(&buf, v)
	if err == nil {
		n, err = e.w.Write(buf.Bytes())
	}
	if err != nil {
		fault := &WriteFault{Index: index, Kind: kind, Err: err}
		if !e.continueOnFault || n > 0 {
			return fault
		}
		logger := e.logger
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("skipped error document element", "index", index, "kind", kind.String(), "err", err)
		return nil
	}
	e.written++
	return nil
}

// marshalElement appends the compact JSON of v to buf without HTML escaping,
// so messages such as "a < b" survive verbatim.
func marshalElement(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1) // Encode terminates with a newline.
	return nil
}
