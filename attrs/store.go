package attrs

import (
	"sort"

	"github.com/delaneyj/rebound/emitter"
)

type UpdateFunc func(chain *emitter.Chain, oldValue, newValue any)

// Store is an observable attribute map. Writes through SetAttribute fire
// emitter.UpdateEvent(name); raw StoreAttribute writes stay silent and are
// announced later through NotifyAttribute, which is how the binding engine
// drives it.
type Store struct {
	emitter.Emitter
	values map[string]any
}

func New(attributes map[string]any) *Store {
	s := &Store{values: make(map[string]any, len(attributes))}
	for name, value := range attributes {
		s.values[name] = value
	}
	return s
}

func (s *Store) GetAttribute(name string) any {
	return s.values[name]
}

func (s *Store) HasAttribute(name string) bool {
	_, ok := s.values[name]
	return ok
}

func (s *Store) StoreAttribute(name string, value any) {
	if s.values == nil {
		s.values = map[string]any{}
	}
	s.values[name] = value
}

func (s *Store) SetAttribute(name string, value any) {
	s.SetAttributeChain(nil, name, value)
}

// SetAttributeChain writes value and notifies listeners as part of chain.
func (s *Store) SetAttributeChain(chain *emitter.Chain, name string, value any) {
	oldValue := s.values[name]
	s.StoreAttribute(name, value)
	s.NotifyAttribute(chain, name, oldValue, value)
}

func (s *Store) NotifyAttribute(chain *emitter.Chain, name string, oldValue, newValue any) {
	s.EmitChain(chain, emitter.UpdateEvent(name), oldValue, newValue)
}

func (s *Store) OnUpdate(name string, fn UpdateFunc) (off func()) {
	return s.On(emitter.UpdateEvent(name), func(chain *emitter.Chain, args ...any) {
		var oldValue, newValue any
		if len(args) > 0 {
			oldValue = args[0]
		}
		if len(args) > 1 {
			newValue = args[1]
		}
		fn(chain, oldValue, newValue)
	})
}

// Names returns the attribute names in lexical order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.values))
	for name := range s.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
