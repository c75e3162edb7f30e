package glyphcode

import "strings"

// Encoding selects how codepoints are chosen for newly selected glyphs.
type Encoding string

// Recognised encodings.
const (
	// EncodingPUA always allocates from the Private Use Area working range.
	EncodingPUA Encoding = "pua"

	// EncodingASCII prefers printable ASCII and falls back to the Private
	// Use Area.
	EncodingASCII Encoding = "ascii"

	// EncodingUnicode prefers the glyph's original codepoint and falls back
	// to the Private Use Area.
	EncodingUnicode Encoding = "unicode"
)

// Encodings lists the recognised encodings.
func Encodings() []Encoding {
	return []Encoding{EncodingPUA, EncodingASCII, EncodingUnicode}
}

// Valid reports whether e is a recognised encoding.
func (e Encoding) Valid() bool {
	switch e {
	case EncodingPUA, EncodingASCII, EncodingUnicode:
		return true
	}
	return false
}

// String implements fmt.Stringer.
func (e Encoding) String() string { return string(e) }

// ParseEncoding converts user input such as "PUA" or " unicode " into an
// Encoding.
func ParseEncoding(s string) (Encoding, error) {
	e := Encoding(strings.ToLower(strings.TrimSpace(s)))
	if !e.Valid() {
		return "", &UnknownEncodingError{Value: Encoding(s)}
	}
	return e, nil
}

// EncodingSource provides the active encoding. Trackers query it on every
// allocation and never cache the result.
type EncodingSource interface {
	Encoding() Encoding
}

// EncodingFunc adapts a function to EncodingSource.
type EncodingFunc func() Encoding

// Encoding implements EncodingSource.
func (f EncodingFunc) Encoding() Encoding { return f() }

// Setting is a mutable encoding holder, the usual EncodingSource for an
// application whose user switches encodings at runtime.
//
// Setting is not safe for concurrent use.
type Setting struct {
	value Encoding
}

// NewSetting creates a Setting holding e.
func NewSetting(e Encoding) *Setting {
	return &Setting{value: e}
}

// Encoding implements EncodingSource.
func (s *Setting) Encoding() Encoding { return s.value }

// Set replaces the held encoding. Values are not validated here; an
// unrecognised encoding surfaces as an error on the next allocation.
func (s *Setting) Set(e Encoding) { s.value = e }
