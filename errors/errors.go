package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseBuild  Phase = "build"  // form/part construction
	PhaseEncode Phase = "encode" // form to sink encoding
	PhaseSink   Phase = "sink"   // host sink operations
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidMime      Kind = "invalid_mime"
	KindNestedMultipart  Kind = "nested_multipart"
	KindSinkCreation     Kind = "sink_creation"
	KindAppendFailed     Kind = "append_failed"
	KindInvalidInput     Kind = "invalid_input"
	KindNotFound         Kind = "not_found"
	KindSinkSealed       Kind = "sink_sealed"
	KindInvalidBlob      Kind = "invalid_blob"
	KindUnsupportedValue Kind = "unsupported_value"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Field  string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Field != "" {
		b.WriteString(" at field ")
		b.WriteString(fmt.Sprintf("%q", e.Field))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Field sets the offending form field name
func (b *Builder) Field(name string) *Builder {
	b.err.Field = name
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// InvalidMime creates an error for an unparsable media type string.
// Raised eagerly at part construction, never deferred to encode time.
func InvalidMime(raw string) *Error {
	return &Error{
		Phase:  PhaseBuild,
		Kind:   KindInvalidMime,
		Detail: fmt.Sprintf("cannot parse media type %q", raw),
		Value:  raw,
	}
}

// NestedMultipart creates an invariant violation error for a part whose
// payload is itself a multipart form. Unreachable through the public
// constructors; reaching it is a programmer error.
func NestedMultipart(field string) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindNestedMultipart,
		Field:  field,
		Detail: "a part's payload cannot itself be a multipart form",
	}
}

// SinkCreation creates an error for a sink factory failure before any
// field was processed.
func SinkCreation(cause error) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindSinkCreation,
		Detail: "create sink",
		Cause:  cause,
	}
}

// AppendFailed wraps a sink operation failure with the offending field name.
func AppendFailed(field string, cause error) *Error {
	return &Error{
		Phase: PhaseEncode,
		Kind:  KindAppendFailed,
		Field: field,
		Cause: cause,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// SinkSealed creates an error for appending to a sink whose body has
// already been materialized.
func SinkSealed() *Error {
	return &Error{
		Phase:  PhaseSink,
		Kind:   KindSinkSealed,
		Detail: "sink body already materialized",
	}
}

// InvalidBlob creates an error for a blob handle the sink does not recognize.
func InvalidBlob(detail string) *Error {
	return &Error{
		Phase:  PhaseSink,
		Kind:   KindInvalidBlob,
		Detail: detail,
	}
}

// UnsupportedValue creates an error for a stream source the encoder
// cannot classify.
func UnsupportedValue(field, goType string) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindUnsupportedValue,
		Field:  field,
		Detail: fmt.Sprintf("stream source type %s is neither io.Reader nor a native sink object", goType),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
