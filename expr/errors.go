package expr

import (
	"errors"
	"fmt"
)

var (
	ErrSyntax     = errors.New("expr: syntax error")
	ErrUnresolved = errors.New("expr: unresolved reference")
	ErrNotNumeric = errors.New("expr: value is not numeric")
)

type SyntaxError struct {
	Text   string
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("expr: %s at offset %d in %q", e.Msg, e.Offset, e.Text)
}

func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// ResolveError reports the first segment of Path that could not be found.
type ResolveError struct {
	Path    string
	Segment string
	Reason  string
}

func (e *ResolveError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "no such attribute"
	}
	return fmt.Sprintf("expr: cannot resolve %q at %q: %s", e.Path, e.Segment, reason)
}

func (e *ResolveError) Is(target error) bool {
	return target == ErrUnresolved
}

type EvalError struct {
	Path  string
	Value any
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("expr: {%s} holds %T, want a number", e.Path, e.Value)
}

func (e *EvalError) Is(target error) bool {
	return target == ErrNotNumeric
}
