package transit

import (
	"path/filepath"
	"testing"
)

func TestStoreAndLoad(t *testing.T) {
	f := _NewTestFeed("A", "B", "C")
	_AddTrip(f, "t1", "", 0, 100, "A", "B")
	layer := _Load(t, f)
	layer.SetStreetVertexForStop(0, 4)
	layer.SetStreetVertexForStop(2, 6)
	layer.RebuildTransientIndexes()
	layer.BuildStopTrees(&_FakeRouter{fail_origin: -1}, 2000)

	path := filepath.Join(t.TempDir(), "network")
	if err := layer.Store(path); err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	loaded, err := LoadStoredLayer(path)
	if err != nil {
		t.Fatalf("LoadStoredLayer failed: %v", err)
	}

	if loaded.StopCount() != 3 || loaded.StopID(1) != "B" {
		t.Errorf("stop table not restored")
	}
	if loaded.StreetVertexForStop(0) != 4 || loaded.StreetVertexForStop(1) != UNLINKED {
		t.Errorf("stop-vertex mapping not restored")
	}
	// transient indexes are rebuilt on load
	if stop, ok := loaded.StopForStreetVertex(6); !ok || stop != 2 {
		t.Errorf("inverse vertex map not rebuilt")
	}
	tree := loaded.StopTree(0)
	if tree.Length() != 4 || tree[0] != 4 {
		t.Errorf("stop tree not restored: %v", tree)
	}
	if loaded.StopTree(1).Length() != 0 {
		t.Errorf("unlinked stop tree should stay empty")
	}
}
