// Package runeset provides a sparse bitmap of runes.
//
// The Unicode space is split into 256-rune blocks. Blocks are allocated on
// demand and dropped again when their last rune is removed, so memory follows
// the number of distinct blocks in use, not the size of the code space.
// Each block keeps a population count, which lets scanners skip a block
// that is completely full without testing its runes one by one.
package runeset

// BlockSize is the number of runes covered by one block.
const BlockSize = 256

// block holds 256 runes, one bit each (4 × 64 bits = 32 bytes).
type block struct {
	bits [BlockSize / 64]uint64
	n    int
}

// Set is a set of runes.
//
// The zero value is not usable; create sets with New.
// Set is not safe for concurrent use.
type Set struct {
	blocks map[uint32]*block // keyed by rune >> 8
	n      int
}

// New creates an empty set.
func New() *Set {
	return &Set{blocks: make(map[uint32]*block)}
}

// split returns the block key and the in-block position of r.
func split(r rune) (blockIdx, runeIdx uint32) {
	return uint32(r) >> 8, uint32(r) & 0xFF
}

// Has reports whether r is in the set.
func (s *Set) Has(r rune) bool {
	if r < 0 {
		return false
	}
	blockIdx, runeIdx := split(r)
	b, ok := s.blocks[blockIdx]
	if !ok {
		return false
	}
	return b.bits[runeIdx/64]&(1<<(runeIdx%64)) != 0
}

// Add inserts r. It reports whether r was newly added.
// Negative runes are ignored.
func (s *Set) Add(r rune) bool {
	if r < 0 {
		return false
	}
	blockIdx, runeIdx := split(r)

	b, ok := s.blocks[blockIdx]
	if !ok {
		b = &block{}
		s.blocks[blockIdx] = b
	}

	mask := uint64(1) << (runeIdx % 64)
	word := &b.bits[runeIdx/64]
	if *word&mask != 0 {
		return false
	}
	*word |= mask
	b.n++
	s.n++
	return true
}

// Remove deletes r. It reports whether r was present.
func (s *Set) Remove(r rune) bool {
	if r < 0 {
		return false
	}
	blockIdx, runeIdx := split(r)

	b, ok := s.blocks[blockIdx]
	if !ok {
		return false
	}

	mask := uint64(1) << (runeIdx % 64)
	word := &b.bits[runeIdx/64]
	if *word&mask == 0 {
		return false
	}
	*word &^= mask
	b.n--
	s.n--
	if b.n == 0 {
		delete(s.blocks, blockIdx)
	}
	return true
}

// Len returns the number of runes in the set.
func (s *Set) Len() int {
	return s.n
}

// BlockFull reports whether every rune of the block containing r is in the
// set.
func (s *Set) BlockFull(r rune) bool {
	if r < 0 {
		return false
	}
	blockIdx, _ := split(r)
	b, ok := s.blocks[blockIdx]
	return ok && b.n == BlockSize
}

// BlockEnd returns the last rune of the block containing r.
func BlockEnd(r rune) rune {
	return r | (BlockSize - 1)
}

// Count returns the number of runes of the set in [lo, hi].
func (s *Set) Count(lo, hi rune) int {
	if lo < 0 {
		lo = 0
	}
	n := 0
	for r := lo; r <= hi; {
		end := min(BlockEnd(r), hi)
		blockIdx, _ := split(r)
		if b, ok := s.blocks[blockIdx]; ok {
			if r&(BlockSize-1) == 0 && end == BlockEnd(r) {
				n += b.n
			} else {
				for x := r; x <= end; x++ {
					_, runeIdx := split(x)
					if b.bits[runeIdx/64]&(1<<(runeIdx%64)) != 0 {
						n++
					}
				}
			}
		}
		r = end + 1
	}
	return n
}

// Clear removes all runes from the set.
func (s *Set) Clear() {
	s.blocks = make(map[uint32]*block)
	s.n = 0
}
