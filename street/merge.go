package street

import (
	. "github.com/mjacb/go-transitnet/util"
)

//*******************************************
// vertex consolidation
//*******************************************

// Merge removes absorb from the graph and redirects its edges onto keep.
// Edges between keep and absorb would become self-loops and are dropped
// instead of redirected; the returned count is the number of dropped edges.
// Parallel edges are kept, no deduplication is performed.
//
// Both vertices must be live members of the graph; merging an unknown or
// already-absorbed vertex is a caller error. References to absorb must not
// be used after the merge.
func Merge(graph *Graph, keep *Vertex, absorb *Vertex) int {
	if v, ok := graph.vertices[keep.Label]; !ok || v != keep {
		panic("merge target is not a live vertex: " + keep.Label)
	}
	if v, ok := graph.vertices[absorb.Label]; !ok || v != absorb {
		panic("merge source is not a live vertex: " + absorb.Label)
	}
	if keep == absorb {
		panic("cannot merge a vertex into itself: " + keep.Label)
	}

	dropped := 0

	// drop edges between the two vertices from keep's lists
	incoming := NewList[*Edge](keep.incoming.Length())
	for _, edge := range keep.incoming {
		if edge.From == absorb {
			dropped += 1
			continue
		}
		incoming.Add(edge)
	}
	keep.incoming = incoming
	outgoing := NewList[*Edge](keep.outgoing.Length())
	for _, edge := range keep.outgoing {
		if edge.To == absorb {
			dropped += 1
			continue
		}
		outgoing.Add(edge)
	}
	keep.outgoing = outgoing

	// redirect the remaining edges of absorb; edges to/from keep are the
	// same edge objects already dropped above
	for _, edge := range absorb.incoming {
		if edge.From == keep {
			continue
		}
		edge.To = keep
		keep.incoming.Add(edge)
	}
	for _, edge := range absorb.outgoing {
		if edge.To == keep {
			continue
		}
		edge.From = keep
		keep.outgoing.Add(edge)
	}

	absorb.incoming = nil
	absorb.outgoing = nil
	absorb.removed = true
	graph.vertices.Delete(absorb.Label)

	return dropped
}
