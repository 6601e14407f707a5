package util

import (
	"testing"
)

func TestPriorityQueue(t *testing.T) {
	heap := NewPriorityQueue[string, int32](4)
	heap.Enqueue("c", 30)
	heap.Enqueue("a", 10)
	heap.Enqueue("d", 40)
	heap.Enqueue("b", 20)

	for _, want := range []string{"a", "b", "c", "d"} {
		item, ok := heap.Dequeue()
		if !ok || item != want {
			t.Errorf("Dequeue = %v, %v; want %v", item, ok, want)
		}
	}
	if _, ok := heap.Dequeue(); ok {
		t.Errorf("empty queue should not dequeue")
	}
}

func TestBitset(t *testing.T) {
	bits := NewBitset(100)
	bits.Set(0)
	bits.Set(64)
	bits.Set(99)
	if !bits.Get(0) || !bits.Get(64) || !bits.Get(99) {
		t.Errorf("set bits not readable")
	}
	if bits.Get(1) || bits.Get(63) {
		t.Errorf("unset bits read as set")
	}
	if bits.Count() != 3 {
		t.Errorf("Count = %d; want 3", bits.Count())
	}
	bits.Unset(64)
	if bits.Get(64) || bits.Count() != 2 {
		t.Errorf("Unset did not clear the bit")
	}
}

func TestKDTreeClosest(t *testing.T) {
	tree := NewKDTree[int32](2)
	tree.Insert([]float64{0, 0}, 1)
	tree.Insert([]float64{1, 1}, 2)
	tree.Insert([]float64{5, 5}, 3)

	if value, ok := tree.GetClosest([]float64{0.9, 1.1}, 1.0); !ok || value != 2 {
		t.Errorf("GetClosest = %v, %v; want 2", value, ok)
	}
	if _, ok := tree.GetClosest([]float64{10, 10}, 1.0); ok {
		t.Errorf("no point within range, lookup should fail")
	}
}

func TestBufferRoundtrip(t *testing.T) {
	writer := NewBufferWriter()
	Write(writer, int32(7))
	WriteString(writer, "hello")
	WriteArray(writer, Array[int32]{1, 2, 3})

	reader := NewBufferReader(writer.Bytes())
	if v := Read[int32](reader); v != 7 {
		t.Errorf("Read = %d; want 7", v)
	}
	if s := ReadString(reader); s != "hello" {
		t.Errorf("ReadString = %q; want hello", s)
	}
	arr := ReadArray[int32](reader)
	if arr.Length() != 3 || arr[2] != 3 {
		t.Errorf("ReadArray = %v; want [1 2 3]", arr)
	}
}
