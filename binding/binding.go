package binding

// Func derives a value from dependency values given in declared order. It
// must be free of side effects; the engine may call it at any point of a
// batch.
type Func func(args ...any) (any, error)

type Binding struct {
	id     int
	target *Slot
	deps   []*Slot
	fn     Func
}

func (b *Binding) ID() int               { return b.id }
func (b *Binding) Target() *Slot         { return b.target }
func (b *Binding) Dependencies() []*Slot { return b.deps }

// Evaluate reads the dependencies' current values and applies the binding
// function. The result is not written anywhere.
func (b *Binding) Evaluate() (any, error) {
	args := make([]any, len(b.deps))
	for i, dep := range b.deps {
		args[i] = dep.Value()
	}
	return b.fn(args...)
}

func asFunc(v any) (Func, bool) {
	switch fn := v.(type) {
	case Func:
		return fn, fn != nil
	case func(...any) (any, error):
		return fn, fn != nil
	case func(...any) any:
		if fn == nil {
			return nil, false
		}
		return func(args ...any) (any, error) {
			return fn(args...), nil
		}, true
	default:
		return nil, false
	}
}

// arg pulls the typed value of dependency i, treating nil as T's zero value.
func arg[T any](args []any, i int) (T, error) {
	var zero T
	if args[i] == nil {
		return zero, nil
	}
	v, ok := args[i].(T)
	if !ok {
		return zero, argumentErrorf("dependency %d: expected %T, got %T", i, zero, args[i])
	}
	return v, nil
}
