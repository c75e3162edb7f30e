package fontset

import (
	"fmt"
	"slices"
	"sync"

	"github.com/gogpu/glyphcode"
)

// Parser is an interface for font parsing backends.
type Parser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont represents a parsed font file.
type ParsedFont interface {
	// Family returns the font family name, or "" if not available.
	Family() string

	// Mappings returns the character map entries whose code lies in
	// [lo, hi], in any order. Entries mapping to glyph 0 (.notdef) and
	// illegal codes are left out.
	Mappings(lo, hi glyphcode.Codepoint) []Mapping
}

// Mapping is one character map entry.
type Mapping struct {
	Code    glyphcode.Codepoint
	GlyphID uint32

	// Name is the glyph name stored in the font, or "".
	Name string
}

var (
	parsersMu sync.RWMutex

	// parserRegistry holds registered font parsers.
	parserRegistry = map[string]Parser{
		"ximage": ximageParser{},
		"gotext": gotextParser{},
	}
)

// defaultParserName is the name of the default parser.
const defaultParserName = "ximage"

// RegisterParser registers a font parser under name, replacing any parser
// already registered under it.
func RegisterParser(name string, parser Parser) {
	parsersMu.Lock()
	defer parsersMu.Unlock()
	parserRegistry[name] = parser
}

// Parsers returns the registered parser names in sorted order.
func Parsers() []string {
	parsersMu.RLock()
	defer parsersMu.RUnlock()
	names := make([]string, 0, len(parserRegistry))
	for name := range parserRegistry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// getParser returns the parser registered under name.
func getParser(name string) (Parser, error) {
	parsersMu.RLock()
	defer parsersMu.RUnlock()
	p, ok := parserRegistry[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownParser, name)
	}
	return p, nil
}

// sortMappings orders mappings by code, keeping parser order among equal
// codes.
func sortMappings(m []Mapping) {
	slices.SortStableFunc(m, func(a, b Mapping) int {
		return int(a.Code - b.Code)
	})
}
