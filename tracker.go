package glyphcode

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrNotSelected is returned by Tracker.Allocate for an unselected glyph.
var ErrNotSelected = errors.New("glyphcode: glyph is not selected")

// Tracker keeps a Registry in step with the glyphs it observes.
//
// It reacts to three glyph events:
//   - code about to change: release the old code's slot if the glyph owns it
//   - code changed on a selected glyph: claim the new code, swapping with
//     the glyph that held it
//   - selection toggled: allocate a code under the current encoding, or
//     release the slot while keeping the code as a hint
//
// Tracker is not safe for concurrent use.
type Tracker struct {
	reg      *Registry
	encoding EncodingSource
	logger   *slog.Logger

	glyphs []*Glyph
}

// NewTracker creates a tracker with an empty working set.
func NewTracker(opts ...Option) *Tracker {
	o := defaultTrackerOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.registry == nil {
		o.registry = NewRegistry()
	}
	return &Tracker{
		reg:      o.registry,
		encoding: o.encoding,
		logger:   o.logger,
	}
}

// Registry returns the tracker's registry.
func (t *Tracker) Registry() *Registry { return t.reg }

// Encoding returns the currently active encoding.
func (t *Tracker) Encoding() Encoding { return t.encoding.Encoding() }

// Glyphs returns the observed glyphs in observation order.
func (t *Tracker) Glyphs() []*Glyph {
	out := make([]*Glyph, len(t.glyphs))
	copy(out, t.glyphs)
	return out
}

func (t *Tracker) log() *slog.Logger {
	if t.logger != nil {
		return t.logger
	}
	return Logger()
}

// Observe starts tracking g. It is the only way to add a glyph to the
// working set.
//
// A glyph observed while already selected claims its current code when that
// code is legal and free; otherwise it is reallocated under the current
// encoding. If that allocation fails, g is not observed and the error is
// returned.
func (t *Tracker) Observe(g *Glyph) error {
	if g.tracker != nil {
		return fmt.Errorf("observe %s: %w", g.name, ErrAlreadyObserved)
	}
	g.tracker = t
	t.glyphs = append(t.glyphs, g)

	if !g.selected {
		return nil
	}
	if t.reg.IsAvailable(g.code) {
		t.reg.claim(g.code, g)
		t.log().Debug("glyphcode: claimed", "glyph", g.name, "code", g.code)
		return nil
	}

	t.log().Warn("glyphcode: selected glyph code unavailable, reallocating",
		"glyph", g.name, "code", g.code, "owner", t.reg.Owner(g.code))
	if _, err := t.allocate(g); err != nil {
		t.glyphs = t.glyphs[:len(t.glyphs)-1]
		g.tracker = nil
		return fmt.Errorf("observe %s: %w", g.name, err)
	}
	return nil
}

// Allocate chooses a code for the selected glyph g under the current
// encoding and assigns it. The glyph's own slot counts as free, so under
// EncodingASCII a glyph already holding a printable ASCII code keeps it.
// On error nothing changes.
func (t *Tracker) Allocate(g *Glyph) (Codepoint, error) {
	if g.tracker != t {
		return NotFound, fmt.Errorf("allocate %s: %w", g.name, ErrNotObserved)
	}
	if !g.selected {
		return NotFound, fmt.Errorf("allocate %s: %w", g.name, ErrNotSelected)
	}
	return t.allocate(g)
}

func (t *Tracker) allocate(g *Glyph) (Codepoint, error) {
	enc := t.encoding.Encoding()

	held := t.reg.releaseIfOwner(g.code, g)
	c, err := Pick(t.reg, enc, g)
	if err != nil {
		if held {
			t.reg.claim(g.code, g)
		}
		return NotFound, err
	}

	t.setCode(g, c)
	// The code may not have changed, in which case no change was observed
	// and nothing claimed it.
	t.reg.claim(c, g)

	t.log().Debug("glyphcode: allocated", "glyph", g.name, "code", c, "encoding", enc)
	return c, nil
}

// Reencode reallocates every selected glyph under the current encoding, in
// observation order. All selected glyphs release their slots first, so the
// result matches selecting them one by one into an empty registry.
//
// An unrecognised encoding is reported before anything changes. If the
// Private Use Area runs out part way, the glyph that failed and every glyph
// after it are deselected, and the error is returned.
func (t *Tracker) Reencode() error {
	enc := t.encoding.Encoding()
	if !enc.Valid() {
		return &UnknownEncodingError{Value: enc}
	}

	var selected []*Glyph
	for _, g := range t.glyphs {
		if g.selected {
			t.reg.releaseIfOwner(g.code, g)
			selected = append(selected, g)
		}
	}

	for i, g := range selected {
		if _, err := t.allocate(g); err != nil {
			for _, rest := range selected[i:] {
				rest.selected = false
			}
			return fmt.Errorf("reencode %s: %w", g.name, err)
		}
	}

	t.log().Info("glyphcode: reencoded", "encoding", enc, "glyphs", len(selected))
	return nil
}

// Reset empties the registry and stops observing every glyph. Glyph fields
// keep their values.
func (t *Tracker) Reset() {
	for _, g := range t.glyphs {
		g.tracker = nil
	}
	n := len(t.glyphs)
	t.glyphs = nil
	t.reg.Reset()
	t.log().Info("glyphcode: reset", "glyphs", n)
}

// Check verifies that the registry agrees with the observed glyphs: every
// entry's owner is observed by t, is selected and holds that code, and every
// selected observed glyph owns the slot of its code.
func (t *Tracker) Check() error {
	for c, g := range t.reg.All() {
		switch {
		case g.tracker != t:
			return &InvariantError{Code: c, Owner: g, Reason: "owner is not observed by this tracker"}
		case !g.selected:
			return &InvariantError{Code: c, Owner: g, Reason: "owner is not selected"}
		case g.code != c:
			return &InvariantError{Code: c, Owner: g, Reason: fmt.Sprintf("owner holds %v", g.code)}
		}
	}
	for _, g := range t.glyphs {
		if !g.selected {
			continue
		}
		if owner := t.reg.Owner(g.code); owner != g {
			return &InvariantError{Code: g.code, Owner: owner, Reason: fmt.Sprintf("selected glyph %v does not own its code", g)}
		}
	}
	return nil
}

// setCode is the two-phase code mutation behind Glyph.SetCode.
func (t *Tracker) setCode(g *Glyph, c Codepoint) {
	t.setCodeVisited(g, c, make(map[*Glyph]struct{}, 2))
}

// setCodeVisited mutates g.code, recursing into at most one other glyph per
// level when a swap is needed. visited holds the glyphs already being
// mutated further up the chain; they are never re-entered, so the recursion
// ends after at most len(t.glyphs) levels.
func (t *Tracker) setCodeVisited(g *Glyph, c Codepoint, visited map[*Glyph]struct{}) {
	if g.code == c {
		return
	}
	visited[g] = struct{}{}

	previous := t.beforeCodeChange(g)
	g.code = c
	t.afterCodeChange(g, previous, visited)
}

// beforeCodeChange releases the slot of g's current code if g owns it and
// returns that code.
func (t *Tracker) beforeCodeChange(g *Glyph) Codepoint {
	if t.reg.releaseIfOwner(g.code, g) {
		t.log().Debug("glyphcode: released", "glyph", g.name, "code", g.code)
	}
	return g.code
}

// afterCodeChange claims g's new code for a selected g. A glyph already
// holding the code is moved to previous first.
func (t *Tracker) afterCodeChange(g *Glyph, previous Codepoint, visited map[*Glyph]struct{}) {
	if !g.selected {
		return
	}
	c := g.code
	if other := t.reg.Owner(c); other != nil && other != g {
		if _, busy := visited[other]; busy {
			// Only reachable when the registry was already inconsistent on
			// entry. Dropping the entry ends the chain instead of re-entering.
			t.reg.release(c)
		} else {
			t.log().Debug("glyphcode: swap", "glyph", g.name, "other", other.name, "code", c, "previous", previous)
			t.setCodeVisited(other, previous, visited)
		}
	}
	t.reg.claim(c, g)
	t.log().Debug("glyphcode: claimed", "glyph", g.name, "code", c)
}

// selected runs after g became selected.
func (t *Tracker) selected(g *Glyph) error {
	_, err := t.allocate(g)
	return err
}

// deselected runs after g became unselected. The code is kept.
func (t *Tracker) deselected(g *Glyph) {
	if t.reg.releaseIfOwner(g.code, g) {
		t.log().Debug("glyphcode: released", "glyph", g.name, "code", g.code)
	}
}
