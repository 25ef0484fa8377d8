package binding

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrArgument     = errors.New("binding: invalid argument")
	ErrInconsistent = errors.New("binding: propagation aborted, graph needs resynchronization")
)

const (
	reasonArity        = "Expected an object, attribute and binding function as arguments"
	reasonAttribute    = "Expected the name of an attribute as the second argument"
	reasonFunction     = "Expected a binding function as the third argument"
	reasonDependencies = "Expected a list of pairs of object and attribute names as dependencies"
	reasonObject       = "Expected a comparable object implementing GetAttribute and StoreAttribute"
	reasonTriples      = "Expected a list of object, attribute name and value triples"
)

type ArgumentError struct {
	Reason string
}

func (e *ArgumentError) Error() string {
	return e.Reason
}

func (e *ArgumentError) Is(target error) bool {
	return target == ErrArgument
}

func argumentErrorf(format string, args ...any) *ArgumentError {
	return &ArgumentError{Reason: fmt.Sprintf(format, args...)}
}

// PropagationError reports a binding that failed mid-batch. Slots listed in
// Stale were never recomputed and hold values from before the batch.
type PropagationError struct {
	Target  Ref
	Binding *Binding
	Stale   []Ref
	Err     error
}

func (e *PropagationError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "binding: recomputing %q failed: %v", e.Target.Attribute, e.Err)
	if len(e.Stale) > 0 {
		fmt.Fprintf(&sb, " (%d slots left stale)", len(e.Stale))
	}
	return sb.String()
}

func (e *PropagationError) Unwrap() error {
	return e.Err
}

func (e *PropagationError) Is(target error) bool {
	return target == ErrInconsistent
}
