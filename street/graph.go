package street

import (
	"github.com/paulmach/orb"

	. "github.com/mjacb/go-transitnet/util"
)

//*******************************************
// street graph
//*******************************************

// Graph is a mutable street network. Vertices are keyed by label; edges hold
// direct endpoint references that are rewritten when vertices are merged.
//
// The graph is built and simplified single-threaded. After Freeze it may be
// shared read-only between any number of routers.
type Graph struct {
	vertices Dict[string, *Vertex]
	ordered  List[*Vertex]

	indexed Array[*Vertex]
	frozen  bool
}

func NewGraph() *Graph {
	return &Graph{
		vertices: NewDict[string, *Vertex](1000),
		ordered:  NewList[*Vertex](1000),
	}
}

type Vertex struct {
	Label string
	Loc   orb.Point

	// dense index assigned by Freeze, -1 before
	Index int32

	incoming List[*Edge]
	outgoing List[*Edge]
	removed  bool
}

func (self *Graph) AddVertex(label string, loc orb.Point) *Vertex {
	if self.vertices.ContainsKey(label) {
		panic("vertex already exists: " + label)
	}
	vertex := &Vertex{
		Label:    label,
		Loc:      loc,
		Index:    -1,
		incoming: NewList[*Edge](2),
		outgoing: NewList[*Edge](2),
	}
	self.vertices[label] = vertex
	self.ordered.Add(vertex)
	return vertex
}

func (self *Graph) GetVertex(label string) (*Vertex, bool) {
	vertex, ok := self.vertices[label]
	return vertex, ok
}

func (self *Graph) VertexCount() int {
	return self.vertices.Length()
}

// ForVertices visits live vertices in insertion order.
func (self *Graph) ForVertices(callback func(*Vertex)) {
	for _, vertex := range self.ordered {
		if vertex.removed {
			continue
		}
		callback(vertex)
	}
}

func (self *Graph) AddEdge(from *Vertex, to *Vertex, kind EdgeKind, name string, length int32) *Edge {
	edge := &Edge{
		From:   from,
		To:     to,
		Kind:   kind,
		Name:   name,
		Length: length,
	}
	from.outgoing.Add(edge)
	to.incoming.Add(edge)
	return edge
}

func (self *Vertex) Incoming() List[*Edge] {
	return self.incoming
}
func (self *Vertex) Outgoing() List[*Edge] {
	return self.outgoing
}
func (self *Vertex) DegreeIn() int {
	return self.incoming.Length()
}
func (self *Vertex) DegreeOut() int {
	return self.outgoing.Length()
}

//*******************************************
// dense indexing
//*******************************************

// Freeze assigns dense indices to the surviving vertices in insertion order.
// Must be called after graph simplification and before routing; further
// structural edits invalidate the index.
func (self *Graph) Freeze() {
	indexed := NewList[*Vertex](self.vertices.Length())
	for _, vertex := range self.ordered {
		if vertex.removed {
			continue
		}
		vertex.Index = int32(indexed.Length())
		indexed.Add(vertex)
	}
	self.indexed = Array[*Vertex](indexed)
	self.frozen = true
}

func (self *Graph) IsFrozen() bool {
	return self.frozen
}

// IndexedVertexCount returns the number of dense-indexed vertices.
func (self *Graph) IndexedVertexCount() int {
	return self.indexed.Length()
}

func (self *Graph) GetIndexedVertex(index int32) *Vertex {
	return self.indexed[index]
}
