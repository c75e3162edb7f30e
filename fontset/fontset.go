package fontset

import (
	"fmt"
	"os"

	"github.com/gogpu/glyphcode"
)

// Set is a working set of glyphs read from one font.
type Set struct {
	family string
	parser string
	glyphs []*glyphcode.Glyph
	byName map[string]*glyphcode.Glyph
}

// Load parses font data (TTF or OTF) and creates one unselected glyph per
// mapped glyph index. When several codes map to the same glyph, the lowest
// one becomes its original code.
func Load(data []byte, opts ...Option) (*Set, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultLoadConfig()
	for _, opt := range opts {
		opt(&config)
	}

	parser, err := getParser(config.parserName)
	if err != nil {
		return nil, err
	}
	parsed, err := parser.Parse(data)
	if err != nil {
		return nil, err
	}

	s := &Set{
		family: parsed.Family(),
		parser: config.parserName,
		byName: make(map[string]*glyphcode.Glyph),
	}

	mappings := parsed.Mappings(config.lo, config.hi)
	sortMappings(mappings)
	seen := make(map[uint32]bool, len(mappings))
	for _, m := range mappings {
		if seen[m.GlyphID] {
			continue
		}
		seen[m.GlyphID] = true

		name := uniqueName(s.byName, glyphName(m))
		g := glyphcode.NewGlyph(name, m.Code)
		s.glyphs = append(s.glyphs, g)
		s.byName[name] = g
	}

	glyphcode.Logger().Debug("fontset: loaded",
		"family", s.family, "parser", s.parser,
		"mappings", len(mappings), "glyphs", len(s.glyphs))
	return s, nil
}

// LoadFile loads a Set from a font file path.
func LoadFile(path string, opts ...Option) (*Set, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fontset: failed to read font file: %w", err)
	}
	return Load(data, opts...)
}

// glyphName returns the font's name for the glyph, or the "uniXXXX" /
// "uXXXXX" name of its code.
func glyphName(m Mapping) string {
	if m.Name != "" && m.Name != ".notdef" {
		return m.Name
	}
	if m.Code <= 0xFFFF {
		return fmt.Sprintf("uni%04X", int32(m.Code))
	}
	return fmt.Sprintf("u%05X", int32(m.Code))
}

// uniqueName appends ".1", ".2", ... to name until it is not in used.
func uniqueName(used map[string]*glyphcode.Glyph, name string) string {
	if _, ok := used[name]; !ok {
		return name
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s.%d", name, i)
		if _, ok := used[candidate]; !ok {
			return candidate
		}
	}
}

// Family returns the font family name.
func (s *Set) Family() string { return s.family }

// Parser returns the name of the parser that read the font.
func (s *Set) Parser() string { return s.parser }

// Len returns the number of glyphs.
func (s *Set) Len() int { return len(s.glyphs) }

// Glyphs returns the glyphs ordered by original code.
func (s *Set) Glyphs() []*glyphcode.Glyph {
	out := make([]*glyphcode.Glyph, len(s.glyphs))
	copy(out, s.glyphs)
	return out
}

// Lookup returns the glyph called name, or nil.
func (s *Set) Lookup(name string) *glyphcode.Glyph {
	return s.byName[name]
}

// ObserveAll hands every glyph to tr. It stops at the first error.
func (s *Set) ObserveAll(tr *glyphcode.Tracker) error {
	for _, g := range s.glyphs {
		if err := tr.Observe(g); err != nil {
			return err
		}
	}
	return nil
}

// SelectAll selects every glyph in order. It stops at the first error.
func (s *Set) SelectAll() error {
	for _, g := range s.glyphs {
		if err := g.Select(); err != nil {
			return fmt.Errorf("fontset: select %s: %w", g.Name(), err)
		}
	}
	return nil
}
