package glyphcode

// Pick chooses a codepoint for g under enc without changing anything.
// The result is legal and available in reg.
//
//   - EncodingPUA: the first available Private Use Area code.
//   - EncodingASCII: g's current code when it is printable ASCII and
//     available, else the first available printable ASCII code, else the
//     first available Private Use Area code.
//   - EncodingUnicode: g's original code when it is available, else the
//     first available Private Use Area code.
//
// Any other encoding returns an *UnknownEncodingError. Running out of
// Private Use Area codes returns ErrAllocationSpaceExhausted.
func Pick(reg *Registry, enc Encoding, g *Glyph) (Codepoint, error) {
	switch enc {
	case EncodingPUA:
		return reg.FindPrivateUseArea()

	case EncodingASCII:
		if c := g.code; c.IsASCIIPrintable() && reg.IsAvailable(c) {
			return c, nil
		}
		if c := reg.FindFirstAvailable(ASCIIPrintableMin, ASCIIPrintableMax); c != NotFound {
			return c, nil
		}
		return reg.FindPrivateUseArea()

	case EncodingUnicode:
		if reg.IsAvailable(g.original) {
			return g.original, nil
		}
		return reg.FindPrivateUseArea()

	default:
		return NotFound, &UnknownEncodingError{Value: enc}
	}
}
