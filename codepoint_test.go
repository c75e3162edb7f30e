package glyphcode

import "testing"

func TestIsLegal(t *testing.T) {
	tests := []struct {
		name string
		c    Codepoint
		want bool
	}{
		{"negative", -1, false},
		{"not found sentinel", NotFound, false},
		{"null", 0x0, false},
		{"tab", 0x9, true},
		{"newline", 0xA, true},
		{"vertical tab", 0xB, false},
		{"carriage return", 0xD, true},
		{"unit separator", 0x1F, false},
		{"space", 0x20, true},
		{"exclamation", 0x21, true},
		{"tilde", 0x7E, true},
		{"delete", 0x7F, false},
		{"c1 0x84", 0x84, false},
		{"next line", 0x85, true},
		{"c1 0x9F", 0x9F, false},
		{"nbsp", 0xA0, true},
		{"before surrogates", 0xD7FF, true},
		{"high surrogate", 0xD800, false},
		{"low surrogate", 0xDC00, false},
		{"last surrogate", 0xDFFF, false},
		{"after surrogates", 0xE000, true},
		{"pua working min", PrivateUseMin, true},
		{"pua working max", PrivateUseMax, true},
		{"noncharacter FDD0", 0xFDD0, false},
		{"noncharacter FDDF", 0xFDDF, false},
		{"FDE0", 0xFDE0, true},
		{"FFFD", 0xFFFD, true},
		{"FFFE", 0xFFFE, false},
		{"FFFF", 0xFFFF, false},
		{"10000", 0x10000, true},
		{"1FFFE", 0x1FFFE, false},
		{"EFFFF", 0xEFFFF, false},
		{"10FFFD", 0x10FFFD, true},
		{"10FFFE", 0x10FFFE, false},
		{"max", MaxCodepoint, false},
		{"above max", MaxCodepoint + 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsLegal(tt.c); got != tt.want {
				t.Errorf("IsLegal(%v) = %v, want %v", tt.c, got, tt.want)
			}
			if got := tt.c.IsLegal(); got != tt.want {
				t.Errorf("%v.IsLegal() = %v, want %v", tt.c, got, tt.want)
			}
		})
	}
}

func TestIsLegalMatchesDefinition(t *testing.T) {
	for c := Codepoint(-16); c <= MaxCodepoint+16; c++ {
		want := c >= 0 && c <= MaxCodepoint &&
			(c < SurrogateMin || c > SurrogateMax) &&
			!IsRestricted(c)
		if got := IsLegal(c); got != want {
			t.Fatalf("IsLegal(%v) = %v, want %v", c, got, want)
		}
	}
}

func TestRestrictedCodepoints(t *testing.T) {
	codes := RestrictedCodepoints()

	// 29 C0 controls, 32 C1 controls, 16 Arabic noncharacters and the two
	// trailing noncharacters of each of the 17 planes.
	if want := 29 + 32 + 16 + 17*2; len(codes) != want {
		t.Errorf("len(RestrictedCodepoints()) = %d, want %d", len(codes), want)
	}
	for i := 1; i < len(codes); i++ {
		if codes[i-1] >= codes[i] {
			t.Fatalf("RestrictedCodepoints() not ascending at %d: %v >= %v", i, codes[i-1], codes[i])
		}
	}
	for _, c := range codes {
		if !IsRestricted(c) {
			t.Errorf("IsRestricted(%v) = false for a listed code", c)
		}
		if IsLegal(c) {
			t.Errorf("IsLegal(%v) = true for a restricted code", c)
		}
	}
	for _, c := range []Codepoint{-1, 0x9, 'A', 0xD800, PrivateUseMin, MaxCodepoint + 1} {
		if IsRestricted(c) {
			t.Errorf("IsRestricted(%v) = true, want false", c)
		}
	}
}

func TestCodepointRanges(t *testing.T) {
	tests := []struct {
		c            Codepoint
		privateUse   bool
		asciiPrintab bool
	}{
		{0x20, false, false},
		{0x21, false, true},
		{0x7E, false, true},
		{0x7F, false, false},
		{0xE000, false, false},
		{0xE7FF, false, false},
		{0xE800, true, false},
		{0xF8FF, true, false},
		{0xF900, false, false},
	}
	for _, tt := range tests {
		if got := tt.c.IsPrivateUse(); got != tt.privateUse {
			t.Errorf("%v.IsPrivateUse() = %v, want %v", tt.c, got, tt.privateUse)
		}
		if got := tt.c.IsASCIIPrintable(); got != tt.asciiPrintab {
			t.Errorf("%v.IsASCIIPrintable() = %v, want %v", tt.c, got, tt.asciiPrintab)
		}
	}
}

func TestCodepointString(t *testing.T) {
	tests := []struct {
		c    Codepoint
		want string
	}{
		{'A', "U+0041"},
		{0xE800, "U+E800"},
		{0x1F600, "U+1F600"},
		{MaxCodepoint, "U+10FFFF"},
		{NotFound, "Codepoint(-1)"},
		{MaxCodepoint + 1, "Codepoint(1114112)"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("Codepoint(%d).String() = %q, want %q", int32(tt.c), got, tt.want)
		}
	}
}

func TestCodepointName(t *testing.T) {
	tests := []struct {
		c    Codepoint
		want string
	}{
		{'A', "LATIN CAPITAL LETTER A"},
		{0x2665, "BLACK HEART SUIT"},
		{0xE800, "<Private Use>"},
		{0x0, ""},
		{0xD800, ""},
		{NotFound, ""},
	}
	for _, tt := range tests {
		if got := tt.c.Name(); got != tt.want {
			t.Errorf("%v.Name() = %q, want %q", tt.c, got, tt.want)
		}
	}
}
