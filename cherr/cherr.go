// Package cherr defines the error taxonomy shared by chartcore's
// composite operations. Its current producers are ChartData
// validation and GeoJSON feature projection.
//
// Pure numeric functions (scale mapping, interpolation, tick
// generation) never return an error; degenerate inputs produce
// well-defined fallbacks instead. Only composite operations that can
// receive structurally inconsistent input return a *Error.
package cherr

import (
	"errors"
	"fmt"
)

// Kind classifies why a composite operation rejected its input.
type Kind int

const (
	// InvalidDomain means a scale's domain violates the scale
	// family's preconditions (e.g. a log scale with domain
	// crossing or touching zero).
	InvalidDomain Kind = iota
	// InvalidRange means a scale or axis range is empty or
	// ill-ordered where orientation matters.
	InvalidRange
	// OutOfBounds means a value fell outside an interval at an
	// interface that demands rejection rather than clamping.
	OutOfBounds
	// InvalidData means structurally inconsistent input, such as
	// a ChartData whose dataset lengths disagree with its labels.
	InvalidData
	// ParseError means ill-formed GeoJSON, a timestamp, or other
	// structured text input.
	ParseError
	// ConfigError means mutually inconsistent configuration, such
	// as a padding fraction greater than 1.
	ConfigError
)

func (k Kind) String() string {
	switch k {
	case InvalidDomain:
		return "invalid domain"
	case InvalidRange:
		return "invalid range"
	case OutOfBounds:
		return "out of bounds"
	case InvalidData:
		return "invalid data"
	case ParseError:
		return "parse error"
	case ConfigError:
		return "config error"
	default:
		return "unknown"
	}
}

// Error is the concrete error type returned by composite operations.
// It satisfies errors.Is against the sentinel for its Kind via its Is
// method, and errors.As for callers that want the Kind and Cause.
type Error struct {
	Kind   Kind
	Msg    string
	Cause  error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("chartcore: %s: %s: %v", e.Kind, e.Msg, e.Cause)
	}
	return fmt.Sprintf("chartcore: %s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is the sentinel for e's Kind, so callers
// can write errors.Is(err, cherr.ErrInvalidDomain) directly against the
// exported Kind sentinels below.
func (e *Error) Is(target error) bool {
	k, ok := target.(sentinel)
	return ok && k.Kind == e.Kind
}

type sentinel struct{ Kind Kind }

func (s sentinel) Error() string { return s.Kind.String() }

// New constructs an *Error of the given kind with a formatted
// message.
func New(k Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...)}
}

// Wrap constructs an *Error of the given kind that wraps cause.
func Wrap(k Kind, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...), Cause: cause}
}

// Sentinels usable with errors.Is(err, cherr.ErrInvalidDomain) without
// needing to unpack a *Error first.
var (
	ErrInvalidDomain = sentinel{InvalidDomain}
	ErrInvalidRange  = sentinel{InvalidRange}
	ErrOutOfBounds   = sentinel{OutOfBounds}
	ErrInvalidData   = sentinel{InvalidData}
	ErrParseError    = sentinel{ParseError}
	ErrConfigError   = sentinel{ConfigError}
)

// As is a convenience wrapper around errors.As for *Error.
func As(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}
