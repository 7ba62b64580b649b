package colorconv

import (
	"encoding/hex"
	"strings"
)

// ExpandHex rewrites a shorthand hex color to its full form by doubling each
// digit: "#abc" becomes "#aabbcc" and "#abcd" becomes "#aabbccdd". Full forms
// are returned lowercased. Anything else is an InvalidFormatError.
func ExpandHex(s string) (string, error) {
	kind := CheckHex(s)
	if kind == HexInvalid {
		return "", invalid(s, GrammarHex)
	}
	digits := strings.ToLower(s[1:])
	if !kind.Shorthand() {
		return "#" + digits, nil
	}

	var sb strings.Builder
	sb.Grow(1 + 2*len(digits))
	sb.WriteByte('#')
	for i := 0; i < len(digits); i++ {
		sb.WriteByte(digits[i])
		sb.WriteByte(digits[i])
	}
	return sb.String(), nil
}

// ParseHex extracts the channels of a hex color of any supported length.
// Alpha is 255 when the form does not encode it.
func ParseHex(s string) (r, g, b, a uint8, err error) {
	full, err := ExpandHex(s)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	raw, err := hex.DecodeString(full[1:])
	if err != nil {
		return 0, 0, 0, 0, invalid(s, GrammarHex)
	}
	a = 255
	if len(raw) == 4 {
		a = raw[3]
	}
	return raw[0], raw[1], raw[2], a, nil
}

// ParseRGB extracts the channels of an rgb() color. Percentage channels are
// converted with PercentageToU8. Alpha is always 255.
func ParseRGB(s string) (r, g, b, a uint8, err error) {
	m := rgbPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, 0, 0, invalid(s, GrammarRGB)
	}
	r, g, b, ok := parseChannels(m[1:4])
	if !ok {
		return 0, 0, 0, 0, invalid(s, GrammarRGB)
	}
	return r, g, b, 255, nil
}

// ParseRGBA extracts the channels of an rgba() color. The alpha fraction is
// converted with FractionToU8Rounded.
func ParseRGBA(s string) (r, g, b, a uint8, err error) {
	m := rgbaPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, 0, 0, invalid(s, GrammarRGBA)
	}
	r, g, b, ok := parseChannels(m[1:4])
	if !ok {
		return 0, 0, 0, 0, invalid(s, GrammarRGBA)
	}
	a, ok = parseAlpha(m[4])
	if !ok {
		return 0, 0, 0, 0, invalid(s, GrammarRGBA)
	}
	return r, g, b, a, nil
}

// ParseXRGBA extracts the channels of a slash-hex color, positionally red,
// green, blue, alpha.
func ParseXRGBA(s string) (r, g, b, a uint8, err error) {
	if !IsXRGBA(s) {
		return 0, 0, 0, 0, invalid(s, GrammarXRGBA)
	}
	raw, err := hex.DecodeString(strings.ReplaceAll(s, "/", ""))
	if err != nil {
		return 0, 0, 0, 0, invalid(s, GrammarXRGBA)
	}
	return raw[0], raw[1], raw[2], raw[3], nil
}
