package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool { return stderrors.As(err, target) }

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseParse    Phase = "parse"    // flat-file scanning
	PhaseWrite    Phase = "write"    // flat-file serialization
	PhaseConvert  Phase = "convert"  // native to host materialization
	PhaseExtract  Phase = "extract"  // host back to native
	PhaseValidate Phase = "validate" // data validation
	PhaseAccess   Phase = "access"   // computed host-object accessors
	PhaseLoad     Phase = "load"     // bulk loading
	PhaseDump     Phase = "dump"     // bulk dumping
	PhaseIO       Phase = "io"       // underlying stream operations
)

// Kind categorizes the error
type Kind string

const (
	KindTypeMismatch    Kind = "type_mismatch"
	KindSyntax          Kind = "syntax"
	KindInvalidData     Kind = "invalid_data"
	KindInvalidDate     Kind = "invalid_date"
	KindInvalidVariant  Kind = "invalid_variant"
	KindUnsupported     Kind = "unsupported"
	KindNotFound        Kind = "not_found"
	KindEmptyCollection Kind = "empty_collection"
	KindIO              Kind = "io"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Got    string
	Want   string
	Detail string
	Path   []string
	Line   int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, " (line %d)", e.Line)
	}

	if e.Got != "" || e.Want != "" {
		b.WriteString(": ")
		switch {
		case e.Got != "" && e.Want != "":
			b.WriteString("got ")
			b.WriteString(e.Got)
			b.WriteString(", want ")
			b.WriteString(e.Want)
		case e.Got != "":
			b.WriteString("got ")
			b.WriteString(e.Got)
		default:
			b.WriteString("want ")
			b.WriteString(e.Want)
		}
	}

	if e.Detail != "" {
		if e.Got != "" || e.Want != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
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

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Got sets the type or shape that was actually received
func (b *Builder) Got(t string) *Builder {
	b.err.Got = t
	return b
}

// Want sets the type or shape that was expected
func (b *Builder) Want(t string) *Builder {
	b.err.Want = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Line sets the input line the error was detected on
func (b *Builder) Line(n int) *Builder {
	b.err.Line = n
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

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, path []string, got, want string) *Error {
	return &Error{
		Phase: phase,
		Kind:  KindTypeMismatch,
		Path:  path,
		Got:   got,
		Want:  want,
	}
}

// Syntax creates a flat-file syntax error
func Syntax(line int, detail string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindSyntax,
		Line:   line,
		Detail: detail,
	}
}

// InvalidVariant creates an error for an unrecognized location shape
func InvalidVariant(phase Phase, path []string, got string) *Error {
	return &Error{
		Phase: phase,
		Kind:  KindInvalidVariant,
		Path:  path,
		Got:   got,
		Want:  "a Location variant",
	}
}

// InvalidDate creates a calendar validation error
func InvalidDate(year, month, day int) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindInvalidDate,
		Detail: fmt.Sprintf("invalid date %04d-%02d-%02d", year, month, day),
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// EmptyCollection creates an error for operations undefined on empty lists
func EmptyCollection(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindEmptyCollection,
		Detail: what,
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

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// IO wraps a stream or file failure, preserving the cause chain so that
// callers can still reach *os.PathError and the OS error code through
// errors.As.
func IO(phase Phase, cause error) *Error {
	return &Error{
		Phase: phase,
		Kind:  KindIO,
		Cause: cause,
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
