package binding

import (
	"fmt"
	"io"
)

type GraphNode struct {
	ID      SlotID
	Label   string
	Derived bool
}

type GraphEdge struct {
	From    SlotID
	To      SlotID
	Binding int
}

type Graph struct {
	Nodes []GraphNode
	Edges []GraphEdge
}

func (s *Slot) label() string {
	return fmt.Sprintf("o%d.%s", s.owner, s.attribute)
}

// Graph describes slots as nodes and every dependency of every binding as an
// edge from the dependency to the binding's target.
func (e *Engine) Graph() Graph {
	g := Graph{Nodes: make([]GraphNode, 0, e.registry.Len())}
	for _, s := range e.registry.Slots() {
		g.Nodes = append(g.Nodes, GraphNode{
			ID:      s.id,
			Label:   s.label(),
			Derived: len(s.producers) > 0,
		})
	}
	for _, b := range e.bindings {
		for _, dep := range b.deps {
			g.Edges = append(g.Edges, GraphEdge{
				From:    dep.id,
				To:      b.target.id,
				Binding: b.id,
			})
		}
	}
	return g
}

// WriteDOT renders the binding graph for Graphviz.
func (e *Engine) WriteDOT(w io.Writer) {
	WriteGraphDOT(w, e.Graph())
}
