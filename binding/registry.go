package binding

import (
	"encoding/binary"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

type ObjectID uint64

type SlotID int

// Slot is a tracked (object, attribute) pair.
type Slot struct {
	id         SlotID
	owner      ObjectID
	object     Object
	attribute  string
	producers  []*Binding
	requiredBy []*Binding
}

func (s *Slot) ID() SlotID             { return s.id }
func (s *Slot) Owner() ObjectID        { return s.owner }
func (s *Slot) Object() Object         { return s.object }
func (s *Slot) Attribute() string      { return s.attribute }
func (s *Slot) Producers() []*Binding  { return s.producers }
func (s *Slot) RequiredBy() []*Binding { return s.requiredBy }

func (s *Slot) Ref() Ref {
	return Ref{Object: s.object, Attribute: s.attribute}
}

func (s *Slot) Value() any {
	return s.object.GetAttribute(s.attribute)
}

// Registry deduplicates slots. Each object gets a stable ObjectID the first
// time one of its attributes is registered; slots live in an arena indexed by
// SlotID and are found through a hash of (ObjectID, attribute). Nothing is
// ever removed.
type Registry struct {
	objects map[Object]ObjectID
	slots   []*Slot
	index   map[uint64][]SlotID
}

func NewRegistry() *Registry {
	return &Registry{
		objects: map[Object]ObjectID{},
		index:   map[uint64][]SlotID{},
	}
}

func trackable(obj Object) bool {
	if obj == nil {
		return false
	}
	return reflect.ValueOf(obj).Comparable()
}

// ID returns the identity assigned to obj, if any.
func (r *Registry) ID(obj Object) (ObjectID, bool) {
	if !trackable(obj) {
		return 0, false
	}
	id, ok := r.objects[obj]
	return id, ok
}

func (r *Registry) register(obj Object) (ObjectID, error) {
	if !trackable(obj) {
		return 0, &ArgumentError{Reason: reasonObject}
	}
	if id, ok := r.objects[obj]; ok {
		return id, nil
	}
	id := ObjectID(len(r.objects) + 1)
	r.objects[obj] = id
	return id, nil
}

func slotHash(owner ObjectID, attribute string) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(owner))
	d := xxhash.New()
	d.Write(buf[:])
	d.WriteString(attribute)
	return d.Sum64()
}

func (r *Registry) lookup(owner ObjectID, attribute string) (*Slot, uint64) {
	h := slotHash(owner, attribute)
	for _, id := range r.index[h] {
		s := r.slots[id]
		if s.owner == owner && s.attribute == attribute {
			return s, h
		}
	}
	return nil, h
}

// Find never creates a slot; it answers whether the attribute is tracked.
func (r *Registry) Find(obj Object, attribute string) (*Slot, bool) {
	owner, ok := r.ID(obj)
	if !ok {
		return nil, false
	}
	s, _ := r.lookup(owner, attribute)
	return s, s != nil
}

func (r *Registry) FindOrCreate(obj Object, attribute string) (*Slot, error) {
	owner, err := r.register(obj)
	if err != nil {
		return nil, err
	}
	s, h := r.lookup(owner, attribute)
	if s != nil {
		return s, nil
	}
	s = &Slot{
		id:        SlotID(len(r.slots)),
		owner:     owner,
		object:    obj,
		attribute: attribute,
	}
	r.slots = append(r.slots, s)
	r.index[h] = append(r.index[h], s.id)
	return s, nil
}

func (r *Registry) Slot(id SlotID) *Slot {
	if id < 0 || int(id) >= len(r.slots) {
		return nil
	}
	return r.slots[id]
}

// Slots returns every slot in creation order.
func (r *Registry) Slots() []*Slot {
	return r.slots
}

func (r *Registry) Len() int {
	return len(r.slots)
}
