package util

//*******************************************
// bitset
//*******************************************

// Fixed-size bitset, used to mask dense integer codes.
type Bitset struct {
	words Array[uint64]
	size  int
}

func NewBitset(size int) Bitset {
	return Bitset{
		words: NewArray[uint64]((size + 63) / 64),
		size:  size,
	}
}

func (self Bitset) Size() int {
	return self.size
}
func (self Bitset) Set(index int) {
	self.words[index/64] |= 1 << (index % 64)
}
func (self Bitset) Unset(index int) {
	self.words[index/64] &^= 1 << (index % 64)
}
func (self Bitset) Get(index int) bool {
	return self.words[index/64]&(1<<(index%64)) != 0
}
func (self Bitset) Count() int {
	count := 0
	for _, word := range self.words {
		for word != 0 {
			word &= word - 1
			count += 1
		}
	}
	return count
}
