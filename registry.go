package glyphcode

import (
	"iter"
	"slices"

	"github.com/gogpu/glyphcode/internal/runeset"
)

// Registry records which glyph owns which codepoint. A codepoint has at most
// one owner, and an owner's current code always equals the codepoint it is
// registered under.
//
// A Registry is created once per editing session and is mutated only by the
// Tracker that uses it. Reset empties it when the working set is cleared.
//
// Registry is not safe for concurrent use.
type Registry struct {
	owners map[Codepoint]*Glyph

	// used indexes the legal owned codes for the availability scans.
	// Illegal codes set by hand are owned but never searched, so they
	// are kept out of it.
	used *runeset.Set
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		owners: make(map[Codepoint]*Glyph),
		used:   runeset.New(),
	}
}

// Owner returns the glyph owning c, or nil.
func (r *Registry) Owner(c Codepoint) *Glyph {
	return r.owners[c]
}

// Len returns the number of owned codepoints.
func (r *Registry) Len() int {
	return len(r.owners)
}

// Codes returns the owned codepoints in ascending order.
func (r *Registry) Codes() []Codepoint {
	codes := make([]Codepoint, 0, len(r.owners))
	for c := range r.owners {
		codes = append(codes, c)
	}
	slices.Sort(codes)
	return codes
}

// All iterates over owned codepoints and their owners in ascending code
// order. The registry must not be mutated during iteration.
func (r *Registry) All() iter.Seq2[Codepoint, *Glyph] {
	return func(yield func(Codepoint, *Glyph) bool) {
		for _, c := range r.Codes() {
			if !yield(c, r.owners[c]) {
				return
			}
		}
	}
}

// Reset removes every entry.
func (r *Registry) Reset() {
	clear(r.owners)
	r.used.Clear()
}

// claim records g as the owner of c, replacing any previous owner.
// Callers release the previous owner first.
func (r *Registry) claim(c Codepoint, g *Glyph) {
	r.owners[c] = g
	if IsLegal(c) {
		r.used.Add(rune(c))
	}
}

// release clears the entry for c.
func (r *Registry) release(c Codepoint) {
	if _, ok := r.owners[c]; !ok {
		return
	}
	delete(r.owners, c)
	r.used.Remove(rune(c))
}

// releaseIfOwner clears the entry for c only when g owns it.
// It reports whether an entry was cleared.
func (r *Registry) releaseIfOwner(c Codepoint, g *Glyph) bool {
	if r.owners[c] != g || g == nil {
		return false
	}
	r.release(c)
	return true
}
