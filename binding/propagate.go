package binding

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/delaneyj/rebound/emitter"
)

type change struct {
	object    Object
	attribute string
	oldValue  any
	newValue  any
}

// pass is one batch of external writes and the recomputation it triggers.
//
// Discovery walks requiredBy edges breadth first, visiting bindings in
// construction order, so the binding chosen for a slot is the one closest to
// the written slots (ties go to the older binding). Recomputation follows
// discovery order. Both orders only depend on the graph and the batch, which
// makes cyclic graphs settle the same way every time.
type pass struct {
	engine  *Engine
	written mapset.Set[*Slot]
	roots   []*Slot
	order   []*Slot
	chosen  map[*Slot]*Binding
	pending mapset.Set[*Slot]
	stack   []*Slot
	changes []change
}

func newPass(e *Engine) *pass {
	return &pass{
		engine:  e,
		written: mapset.NewThreadUnsafeSet[*Slot](),
		chosen:  map[*Slot]*Binding{},
		pending: mapset.NewThreadUnsafeSet[*Slot](),
	}
}

// apply performs every direct write before anything is recomputed. Untracked
// attributes are plain assignments.
func (p *pass) apply(writes []Write) {
	for _, w := range writes {
		oldValue := w.Object.GetAttribute(w.Attribute)
		w.Object.StoreAttribute(w.Attribute, w.Value)
		p.changes = append(p.changes, change{
			object:    w.Object,
			attribute: w.Attribute,
			oldValue:  oldValue,
			newValue:  w.Value,
		})

		if s, ok := p.engine.registry.Find(w.Object, w.Attribute); ok && p.written.Add(s) {
			p.roots = append(p.roots, s)
		}
	}
}

func (p *pass) discover() {
	considered := mapset.NewThreadUnsafeSet[*Binding]()
	var queue []*Binding
	enqueue := func(bindings []*Binding) {
		for _, b := range bindings {
			if considered.Add(b) {
				queue = append(queue, b)
			}
		}
	}

	for _, root := range p.roots {
		enqueue(root.requiredBy)
	}
	for len(queue) > 0 {
		b := queue[0]
		queue = queue[1:]

		target := b.target
		// external writes win over derived values for this batch
		if p.written.Contains(target) {
			continue
		}
		if _, scheduled := p.chosen[target]; scheduled {
			continue
		}
		p.chosen[target] = b
		p.order = append(p.order, target)
		p.pending.Add(target)
		enqueue(target.requiredBy)
	}
}

func (p *pass) run() error {
	for _, s := range p.order {
		if !p.pending.Contains(s) {
			continue
		}
		if err := p.recompute(s); err != nil {
			return err
		}
	}
	return nil
}

// recompute brings s up to date after any pending dependency. s leaves the
// pending set before the recursion so a cycle ends at the first member seen
// twice; that member keeps the value it had when the cycle was entered.
func (p *pass) recompute(s *Slot) error {
	b := p.chosen[s]
	p.pending.Remove(s)
	p.stack = append(p.stack, s)

	for _, dep := range b.deps {
		if p.pending.Contains(dep) {
			if err := p.recompute(dep); err != nil {
				return err
			}
		}
	}

	value, err := b.Evaluate()
	if err != nil {
		return &PropagationError{
			Target:  s.Ref(),
			Binding: b,
			Stale:   p.stale(),
			Err:     err,
		}
	}
	p.stack = p.stack[:len(p.stack)-1]

	oldValue := s.Value()
	s.object.StoreAttribute(s.attribute, value)
	p.changes = append(p.changes, change{
		object:    s.object,
		attribute: s.attribute,
		oldValue:  oldValue,
		newValue:  value,
	})
	return nil
}

// stale lists the failed slot, the slots waiting on it, then everything
// still pending.
func (p *pass) stale() []Ref {
	stale := make([]Ref, 0, len(p.stack)+p.pending.Cardinality())
	for i := len(p.stack) - 1; i >= 0; i-- {
		stale = append(stale, p.stack[i].Ref())
	}
	for _, s := range p.order {
		if p.pending.Contains(s) {
			stale = append(stale, s.Ref())
		}
	}
	return stale
}

// notify announces direct writes in batch order, then recomputed slots in
// the order they were recomputed.
func (p *pass) notify() {
	if len(p.changes) == 0 {
		return
	}
	chain := emitter.NewChain()
	for _, c := range p.changes {
		if n, ok := c.object.(Notifier); ok {
			n.NotifyAttribute(chain, c.attribute, c.oldValue, c.newValue)
		}
	}
}
