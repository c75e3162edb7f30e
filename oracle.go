package glyphcode

import (
	"fmt"

	"github.com/gogpu/glyphcode/internal/runeset"
)

// IsAvailable reports whether c is legal and not owned by any glyph.
func (r *Registry) IsAvailable(c Codepoint) bool {
	return IsLegal(c) && r.owners[c] == nil
}

// FindFirstAvailable returns the lowest available codepoint in [lo, hi], or
// NotFound. Blocks of 256 codes that are fully owned are skipped without
// testing each code.
func (r *Registry) FindFirstAvailable(lo, hi Codepoint) Codepoint {
	lo = max(lo, MinCodepoint)
	hi = min(hi, MaxCodepoint)
	for c := lo; c <= hi; c++ {
		if r.used.BlockFull(rune(c)) {
			c = Codepoint(runeset.BlockEnd(rune(c)))
			continue
		}
		if r.IsAvailable(c) {
			return c
		}
	}
	return NotFound
}

// FindPrivateUseArea returns the lowest available codepoint in
// [PrivateUseMin, PrivateUseMax]. The range is the allocator of last resort,
// so running out of it returns ErrAllocationSpaceExhausted.
func (r *Registry) FindPrivateUseArea() (Codepoint, error) {
	c := r.FindFirstAvailable(PrivateUseMin, PrivateUseMax)
	if c == NotFound {
		return NotFound, fmt.Errorf("%w (%v-%v, %d owned)",
			ErrAllocationSpaceExhausted, PrivateUseMin, PrivateUseMax,
			r.used.Count(rune(PrivateUseMin), rune(PrivateUseMax)))
	}
	return c, nil
}

// FreePrivateUse returns how many codepoints of the Private Use Area working
// range are still available.
func (r *Registry) FreePrivateUse() int {
	total := int(PrivateUseMax-PrivateUseMin) + 1
	return total - r.used.Count(rune(PrivateUseMin), rune(PrivateUseMax))
}
