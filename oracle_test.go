package glyphcode

import (
	"errors"
	"slices"
	"testing"
)

// fillRange makes a fresh glyph own every legal code in [lo, hi].
func fillRange(reg *Registry, lo, hi Codepoint) {
	for c := lo; c <= hi; c++ {
		if IsLegal(c) {
			reg.claim(c, NewGlyph("filler", c))
		}
	}
}

func TestRegistryIsAvailable(t *testing.T) {
	reg := NewRegistry()
	g := NewGlyph("a", 'a')
	reg.claim('a', g)

	tests := []struct {
		c    Codepoint
		want bool
	}{
		{'a', false},
		{'b', true},
		{0x0, false},
		{0xD800, false},
		{0xFFFE, false},
		{-5, false},
		{MaxCodepoint + 1, false},
		{PrivateUseMin, true},
	}
	for _, tt := range tests {
		if got := reg.IsAvailable(tt.c); got != tt.want {
			t.Errorf("IsAvailable(%v) = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestRegistryFindFirstAvailable(t *testing.T) {
	reg := NewRegistry()
	reg.claim(0x21, NewGlyph("a", 0x21))
	reg.claim(0x22, NewGlyph("b", 0x22))

	tests := []struct {
		name   string
		lo, hi Codepoint
		want   Codepoint
	}{
		{"skips owned", 0x21, 0x7E, 0x23},
		{"lowest wins", 0x30, 0x40, 0x30},
		{"single owned", 0x21, 0x21, NotFound},
		{"only restricted", 0x0, 0x8, NotFound},
		{"skips restricted", 0x0, 0x20, 0x9},
		{"skips surrogates", 0xD800, 0xE000, 0xE000},
		{"inverted", 0x40, 0x30, NotFound},
		{"clamped below", -100, 0x9, 0x9},
		{"clamped above", 0x10FFFE, 0x7FFFFFFF, NotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reg.FindFirstAvailable(tt.lo, tt.hi); got != tt.want {
				t.Errorf("FindFirstAvailable(%v, %v) = %v, want %v", tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestRegistryFindFirstAvailableSkipsFullBlocks(t *testing.T) {
	reg := NewRegistry()
	fillRange(reg, 0xE800, 0xE9FF)
	reg.claim(0xEA00, NewGlyph("x", 0xEA00))

	if got := reg.FindFirstAvailable(0xE800, 0xF8FF); got != 0xEA01 {
		t.Errorf("FindFirstAvailable() = %v, want U+EA01", got)
	}
	if got := reg.FindFirstAvailable(0xE850, 0xE9FF); got != NotFound {
		t.Errorf("FindFirstAvailable() in a full range = %v, want NotFound", got)
	}
}

func TestRegistryFindPrivateUseArea(t *testing.T) {
	reg := NewRegistry()

	c, err := reg.FindPrivateUseArea()
	if err != nil {
		t.Fatalf("FindPrivateUseArea() error = %v", err)
	}
	if c != PrivateUseMin {
		t.Errorf("FindPrivateUseArea() = %v, want %v", c, PrivateUseMin)
	}

	// Codes below the working range never count.
	fillRange(reg, 0xE000, 0xE7FF)
	reg.claim(PrivateUseMin, NewGlyph("first", PrivateUseMin))
	if c, _ := reg.FindPrivateUseArea(); c != PrivateUseMin+1 {
		t.Errorf("FindPrivateUseArea() = %v, want %v", c, PrivateUseMin+1)
	}
}

func TestRegistryFindPrivateUseAreaExhausted(t *testing.T) {
	reg := NewRegistry()
	fillRange(reg, PrivateUseMin, PrivateUseMax)

	if n := reg.FreePrivateUse(); n != 0 {
		t.Errorf("FreePrivateUse() = %d, want 0", n)
	}

	c, err := reg.FindPrivateUseArea()
	if !errors.Is(err, ErrAllocationSpaceExhausted) {
		t.Fatalf("FindPrivateUseArea() error = %v, want ErrAllocationSpaceExhausted", err)
	}
	if c != NotFound {
		t.Errorf("FindPrivateUseArea() = %v, want NotFound", c)
	}

	// Freeing one code makes exactly that code available again.
	reg.release(0xF123)
	if c, err := reg.FindPrivateUseArea(); err != nil || c != 0xF123 {
		t.Errorf("FindPrivateUseArea() = %v, %v, want U+F123, nil", c, err)
	}
}

func TestRegistryFreePrivateUse(t *testing.T) {
	reg := NewRegistry()
	total := int(PrivateUseMax-PrivateUseMin) + 1
	if got := reg.FreePrivateUse(); got != total {
		t.Errorf("FreePrivateUse() = %d, want %d", got, total)
	}
	reg.claim(PrivateUseMin, NewGlyph("a", 0))
	reg.claim('A', NewGlyph("b", 'A'))
	if got := reg.FreePrivateUse(); got != total-1 {
		t.Errorf("FreePrivateUse() = %d, want %d", got, total-1)
	}
}

func TestRegistryClaimRelease(t *testing.T) {
	reg := NewRegistry()
	a := NewGlyph("a", 'a')
	b := NewGlyph("b", 'b')

	reg.claim('a', a)
	reg.claim('b', b)
	if reg.Owner('a') != a || reg.Owner('b') != b {
		t.Fatal("Owner() does not return claimed glyphs")
	}
	if reg.Len() != 2 {
		t.Errorf("Len() = %d, want 2", reg.Len())
	}

	if reg.releaseIfOwner('a', b) {
		t.Error("releaseIfOwner() by a non-owner = true, want false")
	}
	if reg.releaseIfOwner('z', nil) {
		t.Error("releaseIfOwner() of an empty slot = true, want false")
	}
	if !reg.releaseIfOwner('a', a) {
		t.Error("releaseIfOwner() by the owner = false, want true")
	}
	if reg.Owner('a') != nil {
		t.Error("Owner('a') after release is not nil")
	}
	reg.release('q')
	if reg.Len() != 1 {
		t.Errorf("Len() = %d, want 1", reg.Len())
	}
}

func TestRegistryCodesAndAll(t *testing.T) {
	reg := NewRegistry()
	for _, c := range []Codepoint{0xE805, 'z', 0x1F600, 'A'} {
		reg.claim(c, NewGlyph(c.String(), c))
	}

	want := []Codepoint{'A', 'z', 0xE805, 0x1F600}
	if got := reg.Codes(); !slices.Equal(got, want) {
		t.Errorf("Codes() = %v, want %v", got, want)
	}

	var seen []Codepoint
	for c, g := range reg.All() {
		if g.Code() != c {
			t.Errorf("All() yielded %v for %v", g, c)
		}
		seen = append(seen, c)
		if len(seen) == 2 {
			break
		}
	}
	if !slices.Equal(seen, want[:2]) {
		t.Errorf("All() with early break = %v, want %v", seen, want[:2])
	}

	reg.Reset()
	if reg.Len() != 0 || reg.Owner('A') != nil {
		t.Error("Reset() left entries behind")
	}
	if reg.FreePrivateUse() != int(PrivateUseMax-PrivateUseMin)+1 {
		t.Error("Reset() left the occupancy index populated")
	}
}

func TestRegistryIllegalCodesNotIndexed(t *testing.T) {
	tr := NewTracker(WithEncoding(NewSetting(EncodingUnicode)))
	a := NewGlyph("a", 'a')
	b := NewGlyph("b", 'b')
	mustObserve(t, tr, a, b)
	mustSelect(t, a, b)

	// Manual edits may set illegal codes; they are owned but not indexed.
	a.SetCode(-7)
	b.SetCode(-7)
	if a.Code() != 'b' || b.Code() != -7 {
		t.Errorf("after swap a=%v b=%v, want a=U+0062 b=Codepoint(-7)", a, b)
	}
	a.SetCode(0xFFFF)

	reg := tr.Registry()
	if reg.Len() != 2 {
		t.Errorf("Len() = %d, want 2", reg.Len())
	}
	if got := reg.used.Len(); got != 0 {
		t.Errorf("used.Len() = %d, want 0", got)
	}
	if got, want := reg.Codes(), []Codepoint{-7, 0xFFFF}; !slices.Equal(got, want) {
		t.Errorf("Codes() = %v, want %v", got, want)
	}
	if reg.IsAvailable(-7) || reg.IsAvailable(0xFFFF) {
		t.Error("IsAvailable() = true for an illegal code")
	}
	mustCheck(t, tr)

	a.SetCode('a')
	b.SetCode('b')
	if reg.Len() != 2 || reg.used.Len() != 2 {
		t.Errorf("Len() = %d, used.Len() = %d, want 2 and 2", reg.Len(), reg.used.Len())
	}
	mustCheck(t, tr)
}
