package fontset

import "github.com/gogpu/glyphcode"

// Option configures Load.
type Option func(*loadConfig)

// loadConfig holds configuration for Load.
type loadConfig struct {
	parserName string
	lo, hi     glyphcode.Codepoint
}

// defaultLoadConfig returns the default load configuration.
func defaultLoadConfig() loadConfig {
	return loadConfig{
		parserName: defaultParserName,
		lo:         glyphcode.MinCodepoint,
		hi:         glyphcode.MaxCodepoint,
	}
}

// WithParser specifies the font parser backend.
// The default is "ximage", which uses golang.org/x/image/font/sfnt.
func WithParser(name string) Option {
	return func(c *loadConfig) {
		c.parserName = name
	}
}

// WithCodeRange limits the working set to glyphs mapped from codes in
// [lo, hi].
func WithCodeRange(lo, hi glyphcode.Codepoint) Option {
	return func(c *loadConfig) {
		c.lo, c.hi = lo, hi
	}
}
