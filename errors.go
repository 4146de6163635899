package rastersdf

import (
	"errors"
)

// Kind classifies failures of a generation run. Every kind is terminal.
type Kind uint8

const (
	_ Kind = iota
	// KindInput is returned when the input is missing, unreadable or not an image.
	KindInput
	// KindArgument is returned when parameters are invalid. Reported before processing.
	KindArgument
	// KindProcessing is returned when a pipeline stage produces an empty grid.
	KindProcessing
	// KindOutput is returned when the destination cannot be written or encoding fails.
	KindOutput
)

func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input error"
	case KindArgument:
		return "argument error"
	case KindProcessing:
		return "processing error"
	case KindOutput:
		return "output error"
	}
	return "unknown error"
}

// Sentinel errors to test an [Error]'s kind with errors.Is.
var (
	ErrInput      = &Error{Kind: KindInput}
	ErrArgument   = &Error{Kind: KindArgument}
	ErrProcessing = &Error{Kind: KindProcessing}
	ErrOutput     = &Error{Kind: KindOutput}
)

// Error is the error type returned by the package's pipeline functions.
type Error struct {
	Kind Kind
	// Op names the stage or action that failed, such as "decode" or "trim".
	Op string
	// Path is the file involved, if any.
	Path string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Op != "" {
		msg += ": " + e.Op
	}
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind with no further detail,
// which makes the package sentinels match any error of their kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind && t.Op == "" && t.Path == "" && t.Err == nil
}

func inputErr(op, path string, err error) error {
	return &Error{Kind: KindInput, Op: op, Path: path, Err: err}
}

func argErr(op string, err error) error {
	return &Error{Kind: KindArgument, Op: op, Err: err}
}

func procErr(op string, err error) error {
	return &Error{Kind: KindProcessing, Op: op, Err: err}
}

func outputErr(op, path string, err error) error {
	return &Error{Kind: KindOutput, Op: op, Path: path, Err: err}
}

// KindOf returns the kind of the first [Error] in err's chain, or zero.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
