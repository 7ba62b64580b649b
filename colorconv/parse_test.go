package colorconv

import (
	"errors"
	"testing"
)

func TestExpandHex(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"#abc", "#aabbcc"},
		{"#ABC", "#aabbcc"},
		{"#abcd", "#aabbccdd"},
		{"#ffbcca", "#ffbcca"},
		{"#FFBCCA80", "#ffbcca80"},
	}

	for _, tt := range tests {
		got, err := ExpandHex(tt.in)
		if err != nil {
			t.Fatalf("ExpandHex(%q) failed: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ExpandHex(%q): got %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestExpandHex_RejectsFragments(t *testing.T) {
	for _, in := range []string{"ab", "#ab", "abc", "#abcde"} {
		if _, err := ExpandHex(in); !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("ExpandHex(%q): got %v, want ErrInvalidFormat", in, err)
		}
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		r, g, b, a uint8
	}{
		{"hex6", "#ffbcca", 255, 188, 202, 255},
		{"hex8", "#0fffff55", 15, 255, 255, 85},
		{"hex3", "#abc", 0xaa, 0xbb, 0xcc, 255},
		{"hex4", "#abc8", 0xaa, 0xbb, 0xcc, 0x88},
		{"upper case", "#FFBCCA", 255, 188, 202, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a, err := ParseHex(tt.in)
			if err != nil {
				t.Fatalf("ParseHex(%q) failed: %v", tt.in, err)
			}
			if r != tt.r || g != tt.g || b != tt.b || a != tt.a {
				t.Errorf("ParseHex(%q): got (%d,%d,%d,%d), want (%d,%d,%d,%d)",
					tt.in, r, g, b, a, tt.r, tt.g, tt.b, tt.a)
			}
		})
	}
}

func TestParseRGB(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		r, g, b uint8
	}{
		{"integers", "rgb(255,188,202)", 255, 188, 202},
		{"spaces", "rgb(255, 188, 202)", 255, 188, 202},
		{"upper case", "RGB(1,2,3)", 1, 2, 3},
		{"percentages", "rgb(100%,73.725%,79.216%)", 255, 188, 202},
		{"whole percentages", "rgb(0%,20%,100%)", 0, 51, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a, err := ParseRGB(tt.in)
			if err != nil {
				t.Fatalf("ParseRGB(%q) failed: %v", tt.in, err)
			}
			if r != tt.r || g != tt.g || b != tt.b || a != 255 {
				t.Errorf("ParseRGB(%q): got (%d,%d,%d,%d), want (%d,%d,%d,255)",
					tt.in, r, g, b, a, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestParseRGBA(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		r, g, b, a uint8
	}{
		{"opaque", "rgba(255,188,202,1.0)", 255, 188, 202, 255},
		{"integer alpha", "rgba(255,188,202,1)", 255, 188, 202, 255},
		{"transparent", "rgba(1,2,3,0)", 1, 2, 3, 0},
		{"half rounds up", "rgba(0,0,0,0.5)", 0, 0, 0, 128},
		{"three decimals", "rgba(171,247,136,0.502)", 171, 247, 136, 128},
		{"percentages", "rgba(100%,0%,0%,0.25)", 255, 0, 0, 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a, err := ParseRGBA(tt.in)
			if err != nil {
				t.Fatalf("ParseRGBA(%q) failed: %v", tt.in, err)
			}
			if r != tt.r || g != tt.g || b != tt.b || a != tt.a {
				t.Errorf("ParseRGBA(%q): got (%d,%d,%d,%d), want (%d,%d,%d,%d)",
					tt.in, r, g, b, a, tt.r, tt.g, tt.b, tt.a)
			}
		})
	}
}

func TestParseXRGBA(t *testing.T) {
	r, g, b, a, err := ParseXRGBA("ff/bc/ca/80")
	if err != nil {
		t.Fatalf("ParseXRGBA failed: %v", err)
	}
	if r != 255 || g != 188 || b != 202 || a != 128 {
		t.Errorf("ParseXRGBA: got (%d,%d,%d,%d), want (255,188,202,128)", r, g, b, a)
	}
}

func TestParsers_InvalidFormat(t *testing.T) {
	tests := []struct {
		name    string
		parse   func(string) (uint8, uint8, uint8, uint8, error)
		in      string
		grammar Grammar
	}{
		{"hex illegal character", ParseHex, "#00xx00", GrammarHex},
		{"hex wrong length", ParseHex, "#00000", GrammarHex},
		{"hex missing hash", ParseHex, "ffbcca", GrammarHex},
		{"rgb mixed units", ParseRGB, "rgb(255,50%,10)", GrammarRGB},
		{"rgb out of range", ParseRGB, "rgb(300,0,0)", GrammarRGB},
		{"rgb wrong count", ParseRGB, "rgb(1,2)", GrammarRGB},
		{"rgb wrapper", ParseRGB, "rgb 1,2,3", GrammarRGB},
		{"rgba alpha too big", ParseRGBA, "rgba(0,0,0,1.5)", GrammarRGBA},
		{"rgba mixed units", ParseRGBA, "rgba(0,10%,0,0.5)", GrammarRGBA},
		{"rgba missing alpha", ParseRGBA, "rgba(0,0,0)", GrammarRGBA},
		{"xrgba three groups", ParseXRGBA, "ff/bc/ca", GrammarXRGBA},
		{"xrgba bad digit", ParseXRGBA, "ff/bc/ca/fg", GrammarXRGBA},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, _, err := tt.parse(tt.in)
			if err == nil {
				t.Fatalf("expected error for %q", tt.in)
			}
			if !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("errors.Is(err, ErrInvalidFormat) = false for %v", err)
			}
			var fe *InvalidFormatError
			if !errors.As(err, &fe) {
				t.Fatalf("expected *InvalidFormatError, got %T", err)
			}
			if fe.Input != tt.in {
				t.Errorf("Input: got %q, want %q", fe.Input, tt.in)
			}
			if fe.Grammar != tt.grammar {
				t.Errorf("Grammar: got %v, want %v", fe.Grammar, tt.grammar)
			}
		})
	}
}

func TestInvalidFormatError_Message(t *testing.T) {
	err := &InvalidFormatError{Input: "#00xx00", Grammar: GrammarHex}
	want := `invalid hex color format: "#00xx00"`
	if err.Error() != want {
		t.Errorf("Error(): got %s, want %s", err.Error(), want)
	}
}
