package transit

import (
	"fmt"
	"sync"

	"golang.org/x/exp/slog"

	. "github.com/mjacb/go-transitnet/util"
)

//*******************************************
// stop distance trees
//*******************************************

// default distance ceiling for stop trees
const DEFAULT_STOP_TREE_RANGE int32 = 2000

// StopRouter is the shortest-path engine contract: a bounded one-to-many
// search from a street vertex, returning the settled tree packed as
// alternating (vertex, distance) pairs. Implementations keep per-call state;
// use one instance per worker.
type StopRouter interface {
	Route(origin int32, max_dist int32) (Array[int32], error)
}

// BuildStopTrees computes a distance tree from every linked stop into the
// street network. Unlinked stops and failed searches get an empty tree, so
// the result always has one entry per stop in stop-index order.
func (self *TransitLayer) BuildStopTrees(router StopRouter, max_dist int32) {
	slog.Info("Creating travel distance trees from each transit stop")
	self.stop_trees = NewArray[Array[int32]](self.StopCount())
	for s := 0; s < self.StopCount(); s++ {
		self.stop_trees[s] = self._BuildStopTree(router, int32(s), max_dist)
	}
	slog.Info("Done creating travel distance trees")
}

// BuildStopTreesParallel spreads tree construction over the given number of
// workers. Every worker gets its own router from the factory and writes only
// its own output slots, so no locking is needed.
func (self *TransitLayer) BuildStopTreesParallel(create_router func() StopRouter, max_dist int32, workers int) {
	if workers <= 1 {
		self.BuildStopTrees(create_router(), max_dist)
		return
	}
	slog.Info(fmt.Sprintf("Creating travel distance trees with %d workers", workers))
	self.stop_trees = NewArray[Array[int32]](self.StopCount())
	wg := sync.WaitGroup{}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			router := create_router()
			for s := worker; s < self.StopCount(); s += workers {
				self.stop_trees[s] = self._BuildStopTree(router, int32(s), max_dist)
			}
		}(w)
	}
	wg.Wait()
	slog.Info("Done creating travel distance trees")
}

func (self *TransitLayer) _BuildStopTree(router StopRouter, stop int32, max_dist int32) Array[int32] {
	origin := self.street_vertex_for_stop[stop]
	if origin == UNLINKED {
		slog.Warn(fmt.Sprintf("Stop %d (%s) is not connected to the street network", stop, self.stop_ids[stop]))
		return NewArray[int32](0)
	}
	tree, err := router.Route(origin, max_dist)
	if err != nil {
		// isolated to this stop, construction continues
		slog.Warn(fmt.Sprintf("Routing from stop %d failed: %v", stop, err))
		return NewArray[int32](0)
	}
	return tree
}
