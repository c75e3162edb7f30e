package glyphcode

import (
	"errors"
	"fmt"
)

// Sentinel errors for the glyphcode package.
var (
	// ErrAllocationSpaceExhausted is returned when no legal, available
	// codepoint is left in the Private Use Area working range. It signals a
	// capacity bug and is never retried.
	ErrAllocationSpaceExhausted = errors.New("glyphcode: free codepoints in the private use area are exhausted")

	// ErrUnknownEncoding is matched by every *UnknownEncodingError.
	ErrUnknownEncoding = errors.New("glyphcode: unknown encoding")

	// ErrNotObserved is returned when a tracker operation is given a glyph
	// it does not observe.
	ErrNotObserved = errors.New("glyphcode: glyph is not observed by this tracker")

	// ErrAlreadyObserved is returned by Observe for a glyph that already
	// has a tracker.
	ErrAlreadyObserved = errors.New("glyphcode: glyph is already observed")
)

// UnknownEncodingError is returned when the active encoding setting is not
// one of EncodingPUA, EncodingASCII or EncodingUnicode.
type UnknownEncodingError struct {
	Value Encoding
}

func (e *UnknownEncodingError) Error() string {
	return fmt.Sprintf("glyphcode: unknown encoding %q", string(e.Value))
}

// Unwrap lets errors.Is match ErrUnknownEncoding.
func (e *UnknownEncodingError) Unwrap() error {
	return ErrUnknownEncoding
}

// InvariantError is returned by Tracker.Check when the registry and the
// glyphs disagree about who owns Code.
type InvariantError struct {
	Code   Codepoint
	Owner  *Glyph
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("glyphcode: registry invariant broken at %v (owner %v): %s", e.Code, e.Owner, e.Reason)
}
