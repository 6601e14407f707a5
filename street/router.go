package street

import (
	"fmt"
	"math"

	. "github.com/mjacb/go-transitnet/util"
)

//*******************************************
// bounded-range router
//*******************************************

// Router computes distance-limited shortest-path trees over a frozen graph.
// A router keeps per-call scratch state and must not be shared between
// goroutines; create one router per worker.
type Router struct {
	graph *Graph
	dist  Array[int32]
}

type _PQItem struct {
	item int32
	dist int32
}

func NewRouter(graph *Graph) *Router {
	if !graph.IsFrozen() {
		panic("graph must be frozen before routing")
	}
	return &Router{
		graph: graph,
		dist:  NewArray[int32](graph.IndexedVertexCount()),
	}
}

// Route runs a forward Dijkstra from the origin vertex, bounded by max_dist,
// and returns the settled tree packed as alternating (vertex index, distance)
// pairs in settle order.
func (self *Router) Route(origin int32, max_dist int32) (Array[int32], error) {
	if origin < 0 || int(origin) >= self.graph.IndexedVertexCount() {
		return nil, fmt.Errorf("origin vertex %d is not in the graph", origin)
	}
	for i := range self.dist {
		self.dist[i] = math.MaxInt32
	}

	heap := NewPriorityQueue[_PQItem, int32](100)
	self.dist[origin] = 0
	heap.Enqueue(_PQItem{origin, 0}, 0)

	tree := NewList[int32](100)
	for {
		curr_item, ok := heap.Dequeue()
		if !ok {
			break
		}
		curr_id := curr_item.item
		curr_dist := curr_item.dist
		// stale entry, node was settled with a smaller distance already
		if self.dist[curr_id] < curr_dist {
			continue
		}
		tree.Add(curr_id)
		tree.Add(curr_dist)
		for _, edge := range self.graph.GetIndexedVertex(curr_id).outgoing {
			other_id := edge.To.Index
			new_length := curr_dist + edge.Length
			if new_length > max_dist {
				continue
			}
			if self.dist[other_id] > new_length {
				self.dist[other_id] = new_length
				heap.Enqueue(_PQItem{other_id, new_length}, new_length)
			}
		}
	}
	return Array[int32](tree), nil
}
