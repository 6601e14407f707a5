package transit

import (
	"fmt"

	"golang.org/x/exp/slog"

	"github.com/mjacb/go-transitnet/street"
	. "github.com/mjacb/go-transitnet/util"
)

//*******************************************
// stop-to-street linking
//*******************************************

// LinkStopsToStreets assigns each stop its closest street vertex within
// max_dist (in coordinate units). Stops with no vertex in range keep the
// unlinked sentinel. Returns the number of linked stops. The graph must be
// frozen. Rebuild the transient indexes afterwards.
func LinkStopsToStreets(layer *TransitLayer, graph *street.Graph, max_dist float64) int {
	tree := NewKDTree[int32](2)
	for i := 0; i < graph.IndexedVertexCount(); i++ {
		vertex := graph.GetIndexedVertex(int32(i))
		tree.Insert(vertex.Loc[:], int32(i))
	}

	linked := 0
	for s := 0; s < layer.StopCount(); s++ {
		loc := layer.StopLocation(int32(s))
		closest, ok := tree.GetClosest(loc[:], max_dist)
		if !ok {
			continue
		}
		layer.SetStreetVertexForStop(int32(s), closest)
		linked += 1
	}
	slog.Info(fmt.Sprintf("Linked %d of %d stops to the street network", linked, layer.StopCount()))
	return linked
}
