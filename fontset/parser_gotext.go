package fontset

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"

	"github.com/gogpu/glyphcode"
)

// gotextParser implements Parser using github.com/go-text/typesetting.
// Unlike sfnt it iterates the character map directly, which is much faster
// for fonts with few mapped codes.
type gotextParser struct{}

// Parse implements Parser.Parse.
func (gotextParser) Parse(data []byte) (ParsedFont, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("fontset: failed to parse font: %w", err)
	}
	return &gotextParsedFont{font: face.Font}, nil
}

// gotextParsedFont implements ParsedFont using font.Font, which is
// read-only once parsed.
type gotextParsedFont struct {
	font *font.Font
}

// Family implements ParsedFont.Family.
func (f *gotextParsedFont) Family() string {
	return f.font.Describe().Family
}

// Mappings implements ParsedFont.Mappings.
func (f *gotextParsedFont) Mappings(lo, hi glyphcode.Codepoint) []Mapping {
	var out []Mapping
	it := f.font.Cmap.Iter()
	for it.Next() {
		r, gid := it.Char()
		c := glyphcode.Codepoint(r)
		if gid == 0 || c < lo || c > hi || !glyphcode.IsLegal(c) {
			continue
		}
		out = append(out, Mapping{Code: c, GlyphID: uint32(gid), Name: f.font.GlyphName(gid)})
	}
	return out
}
