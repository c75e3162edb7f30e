// Package fontset builds a glyphcode working set from a font file.
//
// Each glyph reachable through the font's character map becomes one
// unselected [glyphcode.Glyph] whose original code is the lowest legal
// codepoint mapped to it. Glyph names come from the font when it has them,
// otherwise they follow the "uniXXXX" / "uXXXXX" convention.
//
// # Example usage
//
//	set, err := fontset.LoadFile("icons.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tr := glyphcode.NewTracker(glyphcode.WithEncoding(setting))
//	if err := set.ObserveAll(tr); err != nil {
//	    log.Fatal(err)
//	}
//
// # Pluggable Parser Backend
//
// Font parsing is abstracted through the Parser interface. Two backends are
// registered:
//
//   - "ximage" (default): golang.org/x/image/font/sfnt
//   - "gotext": github.com/go-text/typesetting/font
//
// Custom parsers can be registered with RegisterParser and chosen with
// WithParser.
package fontset
