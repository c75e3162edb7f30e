// Package glyphcode allocates Unicode codepoints to the glyphs of an icon
// font working set.
//
// # Overview
//
// Every selected glyph must own a unique, legal codepoint. glyphcode keeps a
// Registry of which glyph owns which codepoint and reacts to glyph changes:
// selecting a glyph allocates a code for it, deselecting releases the code,
// and manually setting a code that another glyph holds swaps the two.
//
// # Quick Start
//
//	import "github.com/gogpu/glyphcode"
//
//	setting := glyphcode.NewSetting(glyphcode.EncodingUnicode)
//	tr := glyphcode.NewTracker(glyphcode.WithEncoding(setting))
//
//	heart := glyphcode.NewGlyph("heart", 0x2665)
//	if err := tr.Observe(heart); err != nil {
//	    log.Fatal(err)
//	}
//	if err := heart.Select(); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(heart.Code()) // U+2665
//
// # Validity
//
// A codepoint is legal when it lies in [0, 0x10FFFF], outside the surrogate
// block, and outside a fixed set of codes that XML 1.1 forbids (C0/C1
// controls and noncharacters). See [IsLegal].
//
// # Encodings
//
// The active [Encoding] is read from an [EncodingSource] on every allocation:
//
//   - [EncodingPUA]: always take the first free code in the Private Use Area
//     working range [PrivateUseMin, PrivateUseMax].
//   - [EncodingASCII]: keep the current code when it is printable ASCII and
//     free, else take the first free printable ASCII code, else fall back to
//     the Private Use Area.
//   - [EncodingUnicode]: take the glyph's original code when it is free,
//     else fall back to the Private Use Area.
//
// # Errors
//
// Running out of Private Use Area codes returns [ErrAllocationSpaceExhausted];
// an unrecognised encoding returns an [*UnknownEncodingError] matching
// [ErrUnknownEncoding]. Both indicate a capacity or configuration defect.
//
// # Concurrency
//
// Tracker, Registry and Glyph are not safe for concurrent use. The package
// logger ([SetLogger], [Logger]) is.
package glyphcode
