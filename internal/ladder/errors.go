package ladder

import (
	"errors"
	"fmt"
)

// Kind classifies ladder failures.
type Kind int

const (
	// KindInvalidInput covers non-positive nodes or stems and malformed exponent lists.
	KindInvalidInput Kind = iota + 1
	// KindOverflow means a value left the range of the fixed-width helpers.
	KindOverflow
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid input"
	case KindOverflow:
		return "overflow"
	default:
		return "unknown"
	}
}

// Sentinel errors for use with errors.Is.
var (
	ErrInvalidInput = &Error{Kind: KindInvalidInput}
	ErrOverflow     = &Error{Kind: KindOverflow}
)

// Error is returned by every operation in this package.
// Branchless and ends-at-R classifications are Outcomes, not errors.
type Error struct {
	Kind  Kind
	Op    string // operation that failed, e.g. "decode"
	Value string // offending value, if any
	Msg   string
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Msg != "" {
		msg = e.Msg
	}
	switch {
	case e.Op != "" && e.Value != "":
		return fmt.Sprintf("%s %s: %s", e.Op, e.Value, msg)
	case e.Op != "":
		return fmt.Sprintf("%s: %s", e.Op, msg)
	default:
		return msg
	}
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

func invalidInput(op string, value any, format string, args ...any) error {
	return &Error{Kind: KindInvalidInput, Op: op, Value: fmt.Sprint(value), Msg: fmt.Sprintf(format, args...)}
}

func overflow(op string, value any, format string, args ...any) error {
	return &Error{Kind: KindOverflow, Op: op, Value: fmt.Sprint(value), Msg: fmt.Sprintf(format, args...)}
}

// KindOf returns the Kind of err, or 0 if err is not a ladder error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
