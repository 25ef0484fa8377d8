// Package emitter is a synchronous, multi-subscriber notification bus.
//
// Callbacks run in subscription order on the caller's goroutine. Every
// emission carries a Chain describing the callbacks active on the current
// branch of the cascade; a callback already active in the chain is skipped,
// which stops naive infinite recursion through shared notification graphs.
// The same callback may still run again when reached through a different
// branch.
//
// Nothing here is safe for concurrent use.
package emitter

import (
	mapset "github.com/deckarep/golang-set/v2"
)

type Callback func(chain *Chain, args ...any)

type listener struct {
	cb Callback
}

// Chain records the listeners active on one branch of a cascade.
type Chain struct {
	active mapset.Set[*listener]
}

func NewChain() *Chain {
	return &Chain{active: mapset.NewThreadUnsafeSet[*listener]()}
}

// Depth is the number of callbacks currently running along this chain.
func (c *Chain) Depth() int {
	return c.active.Cardinality()
}

func (c *Chain) call(l *listener, args []any) {
	c.active.Add(l)
	defer c.active.Remove(l)
	l.cb(c, args...)
}

// Emitter is usable as a zero value.
type Emitter struct {
	callbacks map[string][]*listener
}

// On subscribes cb to event and returns a function removing the subscription.
func (e *Emitter) On(event string, cb Callback) (off func()) {
	if cb == nil {
		panic("emitter: nil callback")
	}
	if e.callbacks == nil {
		e.callbacks = map[string][]*listener{}
	}
	l := &listener{cb: cb}
	e.callbacks[event] = append(e.callbacks[event], l)
	return func() {
		e.remove(event, l)
	}
}

func (e *Emitter) remove(event string, l *listener) {
	current := e.callbacks[event]
	for i, candidate := range current {
		if candidate != l {
			continue
		}
		// emissions in flight keep iterating the old slice
		revised := make([]*listener, 0, len(current)-1)
		revised = append(revised, current[:i]...)
		revised = append(revised, current[i+1:]...)
		if len(revised) == 0 {
			delete(e.callbacks, event)
		} else {
			e.callbacks[event] = revised
		}
		return
	}
}

// Listeners reports how many callbacks are subscribed to event.
func (e *Emitter) Listeners(event string) int {
	return len(e.callbacks[event])
}

// Emit starts a new chain.
func (e *Emitter) Emit(event string, args ...any) {
	e.EmitChain(nil, event, args...)
}

// EmitChain continues chain, or starts a new one when chain is nil.
func (e *Emitter) EmitChain(chain *Chain, event string, args ...any) {
	if chain == nil {
		chain = NewChain()
	}
	for _, l := range e.callbacks[event] {
		if chain.active.Contains(l) {
			continue
		}
		chain.call(l, args)
	}
}

// UpdateEvent names the event fired when attribute changes. Its payload is
// (oldValue, newValue).
func UpdateEvent(attribute string) string {
	return "attribute:" + attribute + ":update"
}
