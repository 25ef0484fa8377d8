package expr

import "strings"

type Getter interface {
	GetAttribute(name string) any
}

type attributeHaver interface {
	HasAttribute(name string) bool
}

func hasAttribute(obj Getter, name string) bool {
	if h, ok := obj.(attributeHaver); ok {
		return h.HasAttribute(name)
	}
	return obj.GetAttribute(name) != nil
}

type Ref struct {
	Object    Getter
	Attribute string
}

// Resolver maps a dotted path to the attribute it names.
type Resolver interface {
	Resolve(path string) (Ref, error)
}

type ResolverFunc func(path string) (Ref, error)

func (f ResolverFunc) Resolve(path string) (Ref, error) {
	return f(path)
}

// Namespace is a root object for dotted paths. Every segment but the last
// must name an attribute holding a Getter; the last names the attribute
// itself. "x" resolves to the namespace's own attribute x.
type Namespace map[string]any

func (ns Namespace) GetAttribute(name string) any {
	return ns[name]
}

func (ns Namespace) HasAttribute(name string) bool {
	_, ok := ns[name]
	return ok
}

func (ns Namespace) Resolve(path string) (Ref, error) {
	if !validPath(path) {
		return Ref{}, &ResolveError{Path: path, Segment: path, Reason: "invalid path"}
	}
	segments := strings.Split(path, ".")
	var obj Getter = ns
	for _, segment := range segments[:len(segments)-1] {
		if !hasAttribute(obj, segment) {
			return Ref{}, &ResolveError{Path: path, Segment: segment}
		}
		next, ok := obj.GetAttribute(segment).(Getter)
		if !ok {
			return Ref{}, &ResolveError{Path: path, Segment: segment, Reason: "not an object"}
		}
		obj = next
	}

	attribute := segments[len(segments)-1]
	if !hasAttribute(obj, attribute) {
		return Ref{}, &ResolveError{Path: path, Segment: attribute}
	}
	return Ref{Object: obj, Attribute: attribute}, nil
}
