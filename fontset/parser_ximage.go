package fontset

import (
	"fmt"

	"golang.org/x/image/font/sfnt"

	"github.com/gogpu/glyphcode"
)

// ximageParser implements Parser using golang.org/x/image/font/sfnt.
type ximageParser struct{}

// Parse implements Parser.Parse.
func (ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fontset: failed to parse font: %w", err)
	}
	return &ximageParsedFont{font: f}, nil
}

// ximageParsedFont implements ParsedFont using sfnt.Font.
type ximageParsedFont struct {
	font *sfnt.Font
}

// Family implements ParsedFont.Family.
func (f *ximageParsedFont) Family() string {
	if name, err := f.font.Name(nil, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}

// Mappings implements ParsedFont.Mappings.
//
// sfnt exposes lookups but no cmap iteration, so every legal code in the
// range is looked up.
func (f *ximageParsedFont) Mappings(lo, hi glyphcode.Codepoint) []Mapping {
	var (
		buf sfnt.Buffer
		out []Mapping
	)
	lo = max(lo, glyphcode.MinCodepoint)
	hi = min(hi, glyphcode.MaxCodepoint)
	for c := lo; c <= hi; c++ {
		if !glyphcode.IsLegal(c) {
			continue
		}
		idx, err := f.font.GlyphIndex(&buf, rune(c))
		if err != nil || idx == 0 {
			continue
		}
		name, err := f.font.GlyphName(&buf, idx)
		if err != nil {
			name = ""
		}
		out = append(out, Mapping{Code: c, GlyphID: uint32(idx), Name: name})
	}
	return out
}
