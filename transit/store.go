package transit

import (
	"github.com/paulmach/orb"

	. "github.com/mjacb/go-transitnet/util"
)

//*******************************************
// store and load
//*******************************************

// Store writes the stop table, the stop-to-street mapping and the packed stop
// trees next to path. Patterns and services are cheap to rebuild from the
// feed and are not persisted; derived indexes are rebuilt on load.
func (self *TransitLayer) Store(path string) error {
	writer := NewBufferWriter()
	Write(writer, int32(self.StopCount()))
	for s := 0; s < self.StopCount(); s++ {
		WriteString(writer, self.stop_ids[s])
		Write(writer, self.stop_locs[s])
	}
	if err := WriteBufferToFile(writer, path+"-stops"); err != nil {
		return err
	}
	if err := WriteArrayToFile(self.street_vertex_for_stop, path+"-stop_vertices"); err != nil {
		return err
	}
	writer = NewBufferWriter()
	Write(writer, int32(self.stop_trees.Length()))
	for _, tree := range self.stop_trees {
		WriteArray(writer, tree)
	}
	return WriteBufferToFile(writer, path+"-stop_trees")
}

// LoadStoredLayer restores the stored tables and rebuilds the transient
// indexes. The pattern and service tables stay empty; reload the feed to
// fill them.
func LoadStoredLayer(path string) (*TransitLayer, error) {
	layer := NewTransitLayer()

	reader, err := ReadBufferFromFile(path + "-stops")
	if err != nil {
		return nil, err
	}
	stop_count := int(Read[int32](reader))
	layer.stop_ids = NewArray[string](stop_count)
	layer.stop_locs = NewArray[orb.Point](stop_count)
	for s := 0; s < stop_count; s++ {
		layer.stop_ids[s] = ReadString(reader)
		layer.stop_locs[s] = Read[orb.Point](reader)
		layer.index_for_stop_id[layer.stop_ids[s]] = int32(s)
	}

	layer.street_vertex_for_stop, err = ReadArrayFromFile[int32](path + "-stop_vertices")
	if err != nil {
		return nil, err
	}

	reader, err = ReadBufferFromFile(path + "-stop_trees")
	if err != nil {
		return nil, err
	}
	tree_count := int(Read[int32](reader))
	layer.stop_trees = NewArray[Array[int32]](tree_count)
	for s := 0; s < tree_count; s++ {
		layer.stop_trees[s] = ReadArray[int32](reader)
	}

	layer.RebuildTransientIndexes()
	return layer, nil
}
