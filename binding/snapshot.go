package binding

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

type SlotValue struct {
	Slot  SlotID
	Owner ObjectID
	Ref   Ref
	Value any
}

// Snapshot reads every tracked slot in creation order.
func (e *Engine) Snapshot() []SlotValue {
	values := make([]SlotValue, 0, e.registry.Len())
	for _, s := range e.registry.Slots() {
		values = append(values, SlotValue{
			Slot:  s.id,
			Owner: s.owner,
			Ref:   s.Ref(),
			Value: s.Value(),
		})
	}
	return values
}

// Fingerprint hashes the current value of every tracked slot. Two engines,
// or one engine at two moments, with equal fingerprints hold the same values.
func (e *Engine) Fingerprint() uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, v := range e.Snapshot() {
		binary.LittleEndian.PutUint64(buf[:], uint64(v.Owner))
		d.Write(buf[:])
		d.WriteString(v.Ref.Attribute)
		fmt.Fprintf(d, "=%#v;", v.Value)
	}
	return d.Sum64()
}
