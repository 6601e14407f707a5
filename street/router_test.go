package street

import (
	"testing"

	"github.com/paulmach/orb"
)

func _TreeToMap(tree []int32) map[int32]int32 {
	dists := map[int32]int32{}
	for i := 0; i < len(tree); i += 2 {
		dists[tree[i]] = tree[i+1]
	}
	return dists
}

func TestRouterDistances(t *testing.T) {
	graph, v := _NewTestGraph("A", "B", "C", "D")
	graph.AddEdge(v["A"], v["B"], STREET_EDGE, "", 100)
	graph.AddEdge(v["B"], v["C"], STREET_EDGE, "", 100)
	graph.AddEdge(v["A"], v["C"], STREET_EDGE, "", 300)
	graph.AddEdge(v["C"], v["D"], STREET_EDGE, "", 100)
	graph.Freeze()

	router := NewRouter(graph)
	tree, err := router.Route(v["A"].Index, 1000)
	if err != nil {
		t.Fatalf("Route failed: %v", err)
	}
	dists := _TreeToMap(tree)
	want := map[string]int32{"A": 0, "B": 100, "C": 200, "D": 300}
	for label, dist := range want {
		if dists[v[label].Index] != dist {
			t.Errorf("dist(%s) = %d; want %d", label, dists[v[label].Index], dist)
		}
	}
	if len(dists) != 4 {
		t.Errorf("tree has %d vertices; want 4", len(dists))
	}
}

func TestRouterDistanceLimit(t *testing.T) {
	graph, v := _NewTestGraph("A", "B", "C")
	graph.AddEdge(v["A"], v["B"], STREET_EDGE, "", 100)
	graph.AddEdge(v["B"], v["C"], STREET_EDGE, "", 100)
	graph.Freeze()

	router := NewRouter(graph)
	tree, err := router.Route(v["A"].Index, 150)
	if err != nil {
		t.Fatalf("Route failed: %v", err)
	}
	dists := _TreeToMap(tree)
	if _, ok := dists[v["C"].Index]; ok {
		t.Errorf("C is beyond the distance limit but was settled")
	}
	if dists[v["B"].Index] != 100 {
		t.Errorf("dist(B) = %d; want 100", dists[v["B"].Index])
	}
}

func TestRouterReuseAfterMerge(t *testing.T) {
	graph := NewGraph()
	a := graph.AddVertex("A", orb.Point{0, 0})
	b := graph.AddVertex("B", orb.Point{0, 0})
	c := graph.AddVertex("C", orb.Point{1, 1})
	graph.AddEdge(b, c, STREET_EDGE, "", 50)
	Merge(graph, a, b)
	graph.Freeze()

	// merged-away vertices get no dense index
	if graph.IndexedVertexCount() != 2 {
		t.Fatalf("IndexedVertexCount = %d; want 2", graph.IndexedVertexCount())
	}
	router := NewRouter(graph)
	tree, err := router.Route(a.Index, 1000)
	if err != nil {
		t.Fatalf("Route failed: %v", err)
	}
	dists := _TreeToMap(tree)
	if dists[c.Index] != 50 {
		t.Errorf("dist(C) = %d; want 50 through the redirected edge", dists[c.Index])
	}
}

func TestRouterBadOrigin(t *testing.T) {
	graph, _ := _NewTestGraph("A")
	graph.Freeze()
	router := NewRouter(graph)
	if _, err := router.Route(99, 1000); err == nil {
		t.Errorf("expected error for out-of-range origin")
	}
}
