package glyphcode

import "fmt"

// Glyph is a member of the working set. Its code and selected fields are
// observable: once a Tracker observes the glyph, every change made through
// SetCode or SetSelected runs the tracker's reconciliation before returning.
//
// Before it is observed, a glyph is a plain value holder; setting fields
// has no registry effect. Use that to restore saved state before calling
// Tracker.Observe.
type Glyph struct {
	name     string
	original Codepoint
	code     Codepoint
	selected bool

	tracker *Tracker
}

// NewGlyph creates an unselected glyph whose original and current code are
// both original.
func NewGlyph(name string, original Codepoint) *Glyph {
	return &Glyph{
		name:     name,
		original: original,
		code:     original,
	}
}

// Name returns the glyph name.
func (g *Glyph) Name() string { return g.name }

// OriginalCode returns the code the glyph had before any reassignment.
// The unicode encoding prefers it.
func (g *Glyph) OriginalCode() Codepoint { return g.original }

// Code returns the current code.
func (g *Glyph) Code() Codepoint { return g.code }

// Selected reports whether the glyph is in the active selection.
func (g *Glyph) Selected() bool { return g.selected }

// Observed reports whether a tracker observes g.
func (g *Glyph) Observed() bool { return g.tracker != nil }

// SetCode changes the glyph's code.
//
// For an observed glyph this is a two-phase mutation: the registry slot of
// the old code is released, the new value is written, and then, if the glyph
// is selected, the new code is claimed. When another glyph owns the new code
// the two glyphs swap: the other glyph receives this glyph's old code.
// Setting the current value again does nothing.
func (g *Glyph) SetCode(c Codepoint) {
	if g.tracker == nil {
		g.code = c
		return
	}
	g.tracker.setCode(g, c)
}

// SetSelected selects or deselects the glyph.
//
// Selecting an observed glyph allocates a code under the tracker's current
// encoding. If allocation fails the glyph stays unselected and the error is
// returned. Deselecting releases the glyph's registry slot but keeps its
// code, so a later selection may restore it.
func (g *Glyph) SetSelected(selected bool) error {
	if !selected {
		g.Deselect()
		return nil
	}
	if g.selected {
		return nil
	}
	g.selected = true
	if g.tracker == nil {
		return nil
	}
	if err := g.tracker.selected(g); err != nil {
		g.selected = false
		return err
	}
	return nil
}

// Select is shorthand for SetSelected(true).
func (g *Glyph) Select() error { return g.SetSelected(true) }

// Deselect unselects the glyph and releases its registry slot. It never
// fails.
func (g *Glyph) Deselect() {
	if !g.selected {
		return
	}
	g.selected = false
	if g.tracker != nil {
		g.tracker.deselected(g)
	}
}

// String returns "name(U+XXXX)".
func (g *Glyph) String() string {
	if g == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s(%v)", g.name, g.code)
}
