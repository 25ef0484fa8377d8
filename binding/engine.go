package binding

import (
	"io"
	"log/slog"
)

type Option func(*Engine)

func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

type Engine struct {
	registry *Registry
	bindings []*Binding
	logger   *slog.Logger
}

func New(opts ...Option) *Engine {
	e := &Engine{
		registry: NewRegistry(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Registry() *Registry {
	return e.registry
}

// Bindings returns every binding in construction order.
func (e *Engine) Bindings() []*Binding {
	return e.bindings
}

// Bind is the loosely typed constructor:
//
//	e.Bind(target, "attr", fn, dep0, "a", dep1, "b")
//
// fn may be a Func, a func(...any) (any, error) or a func(...any) any.
func (e *Engine) Bind(args ...any) (*Binding, error) {
	if len(args) < 3 {
		return nil, &ArgumentError{Reason: reasonArity}
	}
	attribute, ok := args[1].(string)
	if !ok {
		return nil, &ArgumentError{Reason: reasonAttribute}
	}
	fn, ok := asFunc(args[2])
	if !ok {
		return nil, &ArgumentError{Reason: reasonFunction}
	}
	target, ok := args[0].(Object)
	if !ok {
		return nil, &ArgumentError{Reason: reasonObject}
	}

	rest := args[3:]
	if len(rest)%2 != 0 {
		return nil, &ArgumentError{Reason: reasonDependencies}
	}
	deps := make([]Ref, 0, len(rest)/2)
	for i := 0; i < len(rest); i += 2 {
		obj, isObject := rest[i].(Object)
		name, isName := rest[i+1].(string)
		if !isObject || !isName {
			return nil, &ArgumentError{Reason: reasonDependencies}
		}
		deps = append(deps, Ref{Object: obj, Attribute: name})
	}

	return e.Construct(Ref{Object: target, Attribute: attribute}, fn, deps...)
}

// Construct registers a binding deriving target from deps. Several bindings
// may target the same slot; a batch uses whichever it discovers first.
func (e *Engine) Construct(target Ref, fn Func, deps ...Ref) (*Binding, error) {
	if fn == nil {
		return nil, &ArgumentError{Reason: reasonFunction}
	}
	if target.Attribute == "" {
		return nil, &ArgumentError{Reason: reasonAttribute}
	}
	if !trackable(target.Object) {
		return nil, &ArgumentError{Reason: reasonObject}
	}
	for _, dep := range deps {
		if !trackable(dep.Object) || dep.Attribute == "" {
			return nil, &ArgumentError{Reason: reasonDependencies}
		}
	}

	targetSlot, err := e.registry.FindOrCreate(target.Object, target.Attribute)
	if err != nil {
		return nil, err
	}
	b := &Binding{
		id:     len(e.bindings),
		target: targetSlot,
		deps:   make([]*Slot, 0, len(deps)),
		fn:     fn,
	}
	for _, dep := range deps {
		depSlot, err := e.registry.FindOrCreate(dep.Object, dep.Attribute)
		if err != nil {
			return nil, err
		}
		b.deps = append(b.deps, depSlot)
	}

	targetSlot.producers = append(targetSlot.producers, b)
	for _, depSlot := range b.deps {
		if !containsBinding(depSlot.requiredBy, b) {
			depSlot.requiredBy = append(depSlot.requiredBy, b)
		}
	}
	e.bindings = append(e.bindings, b)

	e.logger.Debug("binding constructed",
		"binding", b.id,
		"target", targetSlot.attribute,
		"dependencies", len(b.deps),
	)
	return b, nil
}

func containsBinding(bindings []*Binding, b *Binding) bool {
	for _, candidate := range bindings {
		if candidate == b {
			return true
		}
	}
	return false
}

// GetAttribute is a plain read; it never triggers computation.
func (e *Engine) GetAttribute(obj Object, attribute string) any {
	return obj.GetAttribute(attribute)
}

func (e *Engine) SetAttribute(obj Object, attribute string, value any) error {
	return e.SetAttributes(Write{Object: obj, Attribute: attribute, Value: value})
}

// SetAttributesFlat takes (object, attribute, value) triples.
func (e *Engine) SetAttributesFlat(triples ...any) error {
	if len(triples)%3 != 0 {
		return &ArgumentError{Reason: reasonTriples}
	}
	writes := make([]Write, 0, len(triples)/3)
	for i := 0; i < len(triples); i += 3 {
		obj, isObject := triples[i].(Object)
		name, isName := triples[i+1].(string)
		if !isObject || !isName {
			return &ArgumentError{Reason: reasonTriples}
		}
		writes = append(writes, Write{Object: obj, Attribute: name, Value: triples[i+2]})
	}
	return e.SetAttributes(writes...)
}

// SetAttributes applies writes as one atomic external mutation and then
// recomputes every dependent slot. See propagate.go.
func (e *Engine) SetAttributes(writes ...Write) error {
	for _, w := range writes {
		if w.Object == nil {
			return &ArgumentError{Reason: reasonTriples}
		}
	}

	p := newPass(e)
	p.apply(writes)
	var err error
	if len(p.roots) > 0 {
		p.discover()
		e.logger.Debug("propagating batch",
			"writes", len(writes),
			"tracked", len(p.roots),
			"scheduled", len(p.order),
		)
		err = p.run()
		if err != nil {
			e.logger.Debug("propagation aborted", "error", err)
		}
	}
	p.notify()
	return err
}
