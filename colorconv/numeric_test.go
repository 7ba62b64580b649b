package colorconv

import (
	"math"
	"testing"
)

func TestU8ToPercentage(t *testing.T) {
	tests := []struct {
		in   uint8
		want float64
	}{
		{0, 0},
		{51, 20},
		{128, 50.196},
		{188, 73.725},
		{245, 96.078},
		{255, 100},
	}

	for _, tt := range tests {
		if got := U8ToPercentage(tt.in); got != tt.want {
			t.Errorf("U8ToPercentage(%d): got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestU8ToPercentageRounded(t *testing.T) {
	tests := []struct {
		in   uint8
		want uint8
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{128, 50},
		{188, 74},
		{245, 96},
		{255, 100},
	}

	for _, tt := range tests {
		if got := U8ToPercentageRounded(tt.in); got != tt.want {
			t.Errorf("U8ToPercentageRounded(%d): got %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestU8ToFraction(t *testing.T) {
	tests := []struct {
		in   uint8
		want float64
	}{
		{0, 0},
		{85, 0.333},
		{128, 0.502},
		{255, 1},
	}

	for _, tt := range tests {
		if got := U8ToFraction(tt.in); got != tt.want {
			t.Errorf("U8ToFraction(%d): got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPercentageToU8(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want uint8
	}{
		{"zero", 0, 0},
		{"twenty", 20, 51},
		{"half", 50, 128},
		{"full", 100, 255},
		{"three decimals", 73.725, 188},
		{"negative clamps", -10, 0},
		{"over 100 clamps", 250, 255},
		{"NaN clamps", math.NaN(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PercentageToU8(tt.in); got != tt.want {
				t.Errorf("PercentageToU8(%v): got %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestPercentageRoundTrip(t *testing.T) {
	for i := 0; i <= 255; i++ {
		b := uint8(i)
		if got := PercentageToU8(U8ToPercentage(b)); got != b {
			t.Errorf("PercentageToU8(U8ToPercentage(%d)) = %d", b, got)
		}
	}
}

func TestFractionToU8_Truncates(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want uint8
	}{
		{"zero", 0, 0},
		{"one", 1, 255},
		{"just under half", 0.498, 126},
		{"half", 0.5, 127},
		{"negative clamps", -0.2, 0},
		{"over one clamps", 1.5, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FractionToU8(tt.in); got != tt.want {
				t.Errorf("FractionToU8(%v): got %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestFractionToU8Rounded(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want uint8
	}{
		{"zero", 0, 0},
		{"one", 1, 255},
		{"just under half", 0.498, 127},
		{"half", 0.5, 128},
		{"three decimals", 0.502, 128},
		{"negative clamps", -0.2, 0},
		{"over one clamps", 1.5, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FractionToU8Rounded(tt.in); got != tt.want {
				t.Errorf("FractionToU8Rounded(%v): got %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestFractionRoundTrip(t *testing.T) {
	for i := 0; i <= 255; i++ {
		b := uint8(i)
		if got := FractionToU8Rounded(U8ToFraction(b)); got != b {
			t.Errorf("FractionToU8Rounded(U8ToFraction(%d)) = %d", b, got)
		}
	}
}
