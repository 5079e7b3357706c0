package theme

import "testing"

func TestHexColor(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b uint8
	}{
		{in: "#e0b43a", r: 0xe0, g: 0xb4, b: 0x3a},
		{in: " 3AA88C ", r: 0x3a, g: 0xa8, b: 0x8c},
		{in: "", r: AccentStain.R, g: AccentStain.G, b: AccentStain.B},
		{in: "#zzzzzz", r: AccentStain.R, g: AccentStain.G, b: AccentStain.B},
	}
	for _, tc := range tests {
		c := HexColor(tc.in)
		if c.R != tc.r || c.G != tc.g || c.B != tc.b || c.A != 255 {
			t.Fatalf("HexColor(%q)=%v", tc.in, c)
		}
	}
}

func TestMixClampsAndBlends(t *testing.T) {
	a := BG
	b := TextPrimary
	if got := mix(a, b, -1); got != a {
		t.Fatalf("mix below 0 should return a, got %v", got)
	}
	if got := mix(a, b, 2); got != b {
		t.Fatalf("mix above 1 should return b, got %v", got)
	}
}
