package glyphcode

import (
	"fmt"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
	"golang.org/x/text/unicode/runenames"
)

// Codepoint is a Unicode code point value. It is a plain integer: values
// outside [MinCodepoint, MaxCodepoint] are representable and simply illegal.
type Codepoint rune

// Codepoint ranges.
const (
	MinCodepoint Codepoint = 0x0
	MaxCodepoint Codepoint = 0x10FFFF

	SurrogateMin Codepoint = 0xD800
	SurrogateMax Codepoint = 0xDFFF

	// PrivateUseMin and PrivateUseMax bound the Private Use Area working
	// range used as the fallback pool. The lower bound is 0xE800, not the
	// standard 0xE000.
	PrivateUseMin Codepoint = 0xE800
	PrivateUseMax Codepoint = 0xF8FF

	ASCIIPrintableMin Codepoint = 0x21
	ASCIIPrintableMax Codepoint = 0x7E
)

// NotFound is returned by searches that find no available codepoint.
const NotFound Codepoint = -1

// restricted holds the codepoints XML 1.1 does not allow in documents
// (http://www.w3.org/TR/xml11/#charsets): C0 and C1 controls other than
// tab, newline, carriage return and NEL, plus the noncharacters.
var restricted = newRestrictedTable()

func newRestrictedTable() *unicode.RangeTable {
	codes := make([]rune, 0, 128)
	for r := rune(0x0); r <= 0x1F; r++ {
		if r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		codes = append(codes, r)
	}
	for r := rune(0x7F); r <= 0x9F; r++ {
		if r == 0x85 {
			continue
		}
		codes = append(codes, r)
	}
	for r := rune(0xFDD0); r <= 0xFDDF; r++ {
		codes = append(codes, r)
	}
	// U+nFFFE and U+nFFFF in every plane.
	for plane := rune(0); plane <= 0x10; plane++ {
		codes = append(codes, plane<<16|0xFFFE, plane<<16|0xFFFF)
	}
	return rangetable.New(codes...)
}

// IsRestricted reports whether c is in the fixed restricted set.
func IsRestricted(c Codepoint) bool {
	if c < MinCodepoint || c > MaxCodepoint {
		return false
	}
	return unicode.Is(restricted, rune(c))
}

// RestrictedCodepoints returns the restricted set in ascending order.
func RestrictedCodepoints() []Codepoint {
	var out []Codepoint
	rangetable.Visit(restricted, func(r rune) {
		out = append(out, Codepoint(r))
	})
	return out
}

// IsLegal reports whether c may ever be allocated: it lies in
// [MinCodepoint, MaxCodepoint], outside the surrogate block, and is not
// restricted.
func IsLegal(c Codepoint) bool {
	if c < MinCodepoint || c > MaxCodepoint {
		return false
	}
	if c >= SurrogateMin && c <= SurrogateMax {
		return false
	}
	return !unicode.Is(restricted, rune(c))
}

// IsLegal is shorthand for IsLegal(c).
func (c Codepoint) IsLegal() bool { return IsLegal(c) }

// IsPrivateUse reports whether c lies in the Private Use Area working range.
func (c Codepoint) IsPrivateUse() bool {
	return c >= PrivateUseMin && c <= PrivateUseMax
}

// IsASCIIPrintable reports whether c lies in [ASCIIPrintableMin, ASCIIPrintableMax].
func (c Codepoint) IsASCIIPrintable() bool {
	return c >= ASCIIPrintableMin && c <= ASCIIPrintableMax
}

// String formats c as U+XXXX. NotFound and other out-of-range values are
// printed as Codepoint(n).
func (c Codepoint) String() string {
	if c < MinCodepoint || c > MaxCodepoint {
		return fmt.Sprintf("Codepoint(%d)", int32(c))
	}
	return fmt.Sprintf("U+%04X", int32(c))
}

// Name returns the Unicode character name of c, such as
// "LATIN CAPITAL LETTER A" or "<Private Use>". It returns "" for illegal and
// unassigned codepoints.
func (c Codepoint) Name() string {
	if !IsLegal(c) {
		return ""
	}
	return runenames.Name(rune(c))
}
