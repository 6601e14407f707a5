package street

import (
	"testing"

	"github.com/paulmach/orb"
)

func _NewTestGraph(labels ...string) (*Graph, map[string]*Vertex) {
	graph := NewGraph()
	vertices := map[string]*Vertex{}
	for i, label := range labels {
		vertices[label] = graph.AddVertex(label, orb.Point{float64(i), 0})
	}
	return graph, vertices
}

func _HasEdgeTo(v *Vertex, to *Vertex) bool {
	for _, edge := range v.Outgoing() {
		if edge.To == to {
			return true
		}
	}
	return false
}

func TestMergeEdgeConservation(t *testing.T) {
	graph, v := _NewTestGraph("A", "B", "C")
	graph.AddEdge(v["A"], v["B"], STREET_EDGE, "", 10)
	graph.AddEdge(v["A"], v["C"], STREET_EDGE, "", 10)
	graph.AddEdge(v["B"], v["C"], STREET_EDGE, "", 10)
	graph.AddEdge(v["B"], v["A"], STREET_EDGE, "", 10)

	dropped := Merge(graph, v["A"], v["B"])

	// A->B and B->A collapse to nothing
	if dropped != 2 {
		t.Errorf("dropped = %d; want 2", dropped)
	}
	// B->C was redirected; A->C survives; duplicates are kept
	count := 0
	for _, edge := range v["A"].Outgoing() {
		if edge.To != v["C"] {
			t.Errorf("unexpected edge target %s", edge.To.Label)
		}
		if edge.From != v["A"] {
			t.Errorf("edge source not rewritten, still %s", edge.From.Label)
		}
		count += 1
	}
	if count != 2 {
		t.Errorf("A has %d outgoing edges; want 2 (parallel edges are kept)", count)
	}
	if v["A"].DegreeIn() != 0 {
		t.Errorf("A.DegreeIn = %d; want 0", v["A"].DegreeIn())
	}
}

func TestMergeRemovesVertex(t *testing.T) {
	graph, v := _NewTestGraph("A", "B", "C")
	graph.AddEdge(v["B"], v["C"], STREET_EDGE, "", 10)
	graph.AddEdge(v["C"], v["B"], STREET_EDGE, "", 10)

	Merge(graph, v["A"], v["B"])

	if _, ok := graph.GetVertex("B"); ok {
		t.Errorf("B is still in the vertex table")
	}
	if graph.VertexCount() != 2 {
		t.Errorf("VertexCount = %d; want 2", graph.VertexCount())
	}
	graph.ForVertices(func(vertex *Vertex) {
		for _, edge := range vertex.Outgoing() {
			if edge.From == v["B"] || edge.To == v["B"] {
				t.Errorf("edge of %s still references B", vertex.Label)
			}
		}
		for _, edge := range vertex.Incoming() {
			if edge.From == v["B"] || edge.To == v["B"] {
				t.Errorf("edge of %s still references B", vertex.Label)
			}
		}
	})
	if !_HasEdgeTo(v["A"], v["C"]) {
		t.Errorf("B->C was not redirected onto A")
	}
	if !_HasEdgeTo(v["C"], v["A"]) {
		t.Errorf("C->B was not redirected onto A")
	}
}

func TestMergeAbsorbedVertexPanics(t *testing.T) {
	graph, v := _NewTestGraph("A", "B", "C")
	Merge(graph, v["A"], v["B"])

	defer func() {
		if recover() == nil {
			t.Errorf("merging an absorbed vertex should panic")
		}
	}()
	Merge(graph, v["C"], v["B"])
}

func TestConsolidateVertices(t *testing.T) {
	graph := NewGraph()
	a := graph.AddVertex("A", orb.Point{1.0, 1.0})
	b := graph.AddVertex("B", orb.Point{1.0, 1.0})
	c := graph.AddVertex("C", orb.Point{2.0, 2.0})
	graph.AddEdge(b, c, STREET_EDGE, "", 5)
	graph.AddEdge(a, b, STREET_EDGE, "", 0)

	merged, dropped := ConsolidateVertices(graph, 0.00001)

	if merged != 1 {
		t.Errorf("merged = %d; want 1", merged)
	}
	if dropped != 1 {
		t.Errorf("dropped = %d; want 1 (A->B became a self-loop)", dropped)
	}
	if graph.VertexCount() != 2 {
		t.Errorf("VertexCount = %d; want 2", graph.VertexCount())
	}
	if !_HasEdgeTo(a, c) {
		t.Errorf("B->C was not redirected onto A")
	}
}

func TestDisplayName(t *testing.T) {
	graph, v := _NewTestGraph("corner", "x", "y")
	graph.AddEdge(v["corner"], v["x"], STREET_EDGE, "Main St", 10)
	turn := graph.AddEdge(v["corner"], v["y"], TURN_EDGE, "", 0)
	turn.Angle = 90
	graph.AddEdge(v["x"], v["y"], STREET_EDGE, "Oak Ave", 10)

	if name := v["corner"].DisplayName(); name != "Main St & Oak Ave" {
		t.Errorf("DisplayName = %q; want %q", name, "Main St & Oak Ave")
	}
	// no street pair incident, fall back to the label
	if name := v["x"].DisplayName(); name != "x" {
		t.Errorf("DisplayName = %q; want label fallback %q", name, "x")
	}
}
