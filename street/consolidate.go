package street

import (
	"fmt"
	"math"

	. "github.com/mjacb/go-transitnet/util"
	"golang.org/x/exp/slog"
)

//*******************************************
// duplicate-vertex consolidation
//*******************************************

// ConsolidateVertices merges vertices whose coordinates coincide within the
// given precision (in coordinate units). The first vertex of every group in
// insertion order survives. Returns the number of merged-away vertices and
// the number of edges dropped as would-be self-loops.
func ConsolidateVertices(graph *Graph, precision float64) (int, int) {
	groups := NewDict[[2]int64, *Vertex](graph.VertexCount())
	merge_into := NewList[Tuple[*Vertex, *Vertex]](10)
	graph.ForVertices(func(vertex *Vertex) {
		key := [2]int64{
			int64(math.Round(vertex.Loc[0] / precision)),
			int64(math.Round(vertex.Loc[1] / precision)),
		}
		if first, ok := groups[key]; ok {
			merge_into.Add(MakeTuple(first, vertex))
		} else {
			groups[key] = vertex
		}
	})

	dropped := 0
	for _, pair := range merge_into {
		dropped += Merge(graph, pair.A, pair.B)
	}
	if merge_into.Length() > 0 {
		slog.Debug(fmt.Sprintf("Consolidated %d duplicate vertices, dropped %d self-loop edges", merge_into.Length(), dropped))
	}
	return merge_into.Length(), dropped
}
