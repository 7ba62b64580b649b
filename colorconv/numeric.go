package colorconv

import "math"

// U8ToPercentage converts an 8-bit channel value to a percentage of 255.
//
// The result is rounded to three decimal digits and clamped to [0, 100]:
//
//	U8ToPercentage(188) // 73.725
//	U8ToPercentage(255) // 100
func U8ToPercentage(b uint8) float64 {
	p := float64(b) * 100 / 255
	return clamp(roundTo3(p), 0, 100)
}

// U8ToPercentageRounded converts an 8-bit channel value to a whole percentage
// of 255, rounded half away from zero and clamped to [0, 100].
func U8ToPercentageRounded(b uint8) uint8 {
	p := math.Round(float64(b) * 100 / 255)
	return uint8(clamp(p, 0, 100))
}

// U8ToFraction converts an 8-bit channel value to a fraction in [0.0, 1.0],
// rounded to three decimal digits.
func U8ToFraction(b uint8) float64 {
	f := float64(b) / 255
	return clamp(roundTo3(f), 0, 1)
}

// PercentageToU8 converts a percentage to an 8-bit channel value.
//
// Input outside [0, 100] is clamped rather than rejected. The scaled value is
// first rounded to three decimal digits and then to the nearest integer, so
// every value produced by U8ToPercentage maps back to its original byte.
func PercentageToU8(p float64) uint8 {
	p = clamp(p, 0, 100)
	v := math.Round(roundTo3(p * 255 / 100))
	return uint8(clamp(v, 0, 255))
}

// FractionToU8 converts a fraction to an 8-bit channel value by truncation.
//
// Input outside [0.0, 1.0] is clamped. Truncation means 0.498 maps to 126,
// not 127; use FractionToU8Rounded when the fraction came from U8ToFraction.
func FractionToU8(f float64) uint8 {
	f = clamp(f, 0, 1)
	return uint8(clamp(math.Trunc(f*255), 0, 255))
}

// FractionToU8Rounded converts a fraction to an 8-bit channel value, rounding
// to the nearest integer. This is the conversion used for rgba() alpha.
func FractionToU8Rounded(f float64) uint8 {
	f = clamp(f, 0, 1)
	return uint8(clamp(math.Round(f*255), 0, 255))
}

func roundTo3(x float64) float64 {
	return math.Round(x*1000) / 1000
}

// clamp restricts x to [lo, hi]. NaN clamps to lo.
func clamp(x, lo, hi float64) float64 {
	if math.IsNaN(x) || x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
