package binding

import (
	"github.com/delaneyj/rebound/emitter"
)

// Object is anything whose named attributes can be tracked. StoreAttribute
// is a raw write: it must not notify or re-enter the engine.
type Object interface {
	GetAttribute(name string) any
	StoreAttribute(name string, value any)
}

// Notifier is implemented by objects that want to announce changes made by
// a batch. Notifications for one batch share a single chain.
type Notifier interface {
	NotifyAttribute(chain *emitter.Chain, name string, oldValue, newValue any)
}

type Ref struct {
	Object    Object
	Attribute string
}

func (r Ref) Value() any {
	return r.Object.GetAttribute(r.Attribute)
}

type Write struct {
	Object    Object
	Attribute string
	Value     any
}
