package fontset

import "errors"

// Sentinel errors for the fontset package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("fontset: empty font data")

	// ErrUnknownParser is returned when WithParser names an unregistered
	// parser.
	ErrUnknownParser = errors.New("fontset: unknown parser")
)
