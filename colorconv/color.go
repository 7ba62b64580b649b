package colorconv

import (
	"cmp"
	"fmt"
)

// Color is an 8-bit-per-channel RGBA color value.
//
// Each channel ranges from 0 to 255. For alpha:
//   - 0 = fully transparent
//   - 255 = fully opaque
//
// Color is a plain value: two colors with equal channels are interchangeable,
// == compares all four channels and Color can be used as a map key. The zero
// value is transparent black; Default returns opaque black.
type Color struct {
	R uint8 // Red component (0-255)
	G uint8 // Green component (0-255)
	B uint8 // Blue component (0-255)
	A uint8 // Alpha/opacity component (0-255)
}

// Black is opaque black, the default color.
var Black = Color{A: 255}

// Default returns opaque black (0,0,0,255).
func Default() Color {
	return Black
}

// New creates a color from explicit channel values.
func New(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// NewRGB creates an opaque color.
func NewRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// FromHex parses a hex color of any supported length ("#rgb", "#rgba",
// "#rrggbb", "#rrggbbaa"). The result is always opaque: an alpha encoded in
// the input is discarded. Use FromHex8 to keep it.
func FromHex(s string) (Color, error) {
	r, g, b, _, err := ParseHex(s)
	if err != nil {
		return Color{}, err
	}
	return NewRGB(r, g, b), nil
}

// FromHex8 parses a hex color keeping its alpha. Forms without alpha yield an
// opaque color.
//
//	c, _ := colorconv.FromHex8("#0fffff55") // {15 255 255 85}
func FromHex8(s string) (Color, error) {
	r, g, b, a, err := ParseHex(s)
	if err != nil {
		return Color{}, err
	}
	return New(r, g, b, a), nil
}

// FromRGB parses an rgb() color such as "rgb(255,188,202)" or
// "rgb(100%,73.725%,79.216%)".
func FromRGB(s string) (Color, error) {
	r, g, b, a, err := ParseRGB(s)
	if err != nil {
		return Color{}, err
	}
	return New(r, g, b, a), nil
}

// FromRGBA parses an rgba() color such as "rgba(171,247,136,0.502)".
func FromRGBA(s string) (Color, error) {
	r, g, b, a, err := ParseRGBA(s)
	if err != nil {
		return Color{}, err
	}
	return New(r, g, b, a), nil
}

// FromXRGBA parses a slash-hex color such as "ff/bc/ca/ff".
func FromXRGBA(s string) (Color, error) {
	r, g, b, a, err := ParseXRGBA(s)
	if err != nil {
		return Color{}, err
	}
	return New(r, g, b, a), nil
}

// Parse detects the grammar of s with Classify and parses it. Hex input keeps
// its alpha.
func Parse(s string) (Color, error) {
	switch Classify(s) {
	case GrammarHex:
		return FromHex8(s)
	case GrammarRGB:
		return FromRGB(s)
	case GrammarRGBA:
		return FromRGBA(s)
	case GrammarXRGBA:
		return FromXRGBA(s)
	default:
		return Color{}, invalid(s, GrammarUnsupported)
	}
}

// MustParse is like Parse but panics on error. It is meant for package-level
// color literals.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Tuple returns the four channels.
func (c Color) Tuple() (r, g, b, a uint8) {
	return c.R, c.G, c.B, c.A
}

// Compare orders colors lexicographically by red, green, blue, then alpha.
func (c Color) Compare(other Color) int {
	if n := cmp.Compare(c.R, other.R); n != 0 {
		return n
	}
	if n := cmp.Compare(c.G, other.G); n != 0 {
		return n
	}
	if n := cmp.Compare(c.B, other.B); n != 0 {
		return n
	}
	return cmp.Compare(c.A, other.A)
}

// Red returns the red channel.
func (c Color) Red() uint8 { return c.R }

// Green returns the green channel.
func (c Color) Green() uint8 { return c.G }

// Blue returns the blue channel.
func (c Color) Blue() uint8 { return c.B }

// Alpha returns the alpha channel.
func (c Color) Alpha() uint8 { return c.A }

// RedHex returns the red channel as a two-digit lowercase hex pair.
func (c Color) RedHex() string { return hexPair(c.R) }

// GreenHex returns the green channel as a two-digit lowercase hex pair.
func (c Color) GreenHex() string { return hexPair(c.G) }

// BlueHex returns the blue channel as a two-digit lowercase hex pair.
func (c Color) BlueHex() string { return hexPair(c.B) }

// AlphaHex returns the alpha channel as a two-digit lowercase hex pair.
func (c Color) AlphaHex() string { return hexPair(c.A) }

// RedPercentage returns the red channel as a percentage of 255, rounded to three decimals.
func (c Color) RedPercentage() float64 { return U8ToPercentage(c.R) }

// GreenPercentage returns the green channel as a percentage of 255, rounded to three decimals.
func (c Color) GreenPercentage() float64 { return U8ToPercentage(c.G) }

// BluePercentage returns the blue channel as a percentage of 255, rounded to three decimals.
func (c Color) BluePercentage() float64 { return U8ToPercentage(c.B) }

// AlphaPercentage returns the alpha channel as a percentage of 255, rounded to three decimals.
func (c Color) AlphaPercentage() float64 { return U8ToPercentage(c.A) }

// RedPercentageRounded returns the red channel as a whole percentage of 255.
func (c Color) RedPercentageRounded() uint8 { return U8ToPercentageRounded(c.R) }

// GreenPercentageRounded returns the green channel as a whole percentage of 255.
func (c Color) GreenPercentageRounded() uint8 { return U8ToPercentageRounded(c.G) }

// BluePercentageRounded returns the blue channel as a whole percentage of 255.
func (c Color) BluePercentageRounded() uint8 { return U8ToPercentageRounded(c.B) }

// AlphaPercentageRounded returns the alpha channel as a whole percentage of 255.
func (c Color) AlphaPercentageRounded() uint8 { return U8ToPercentageRounded(c.A) }

// RedFraction returns the red channel as a fraction of 255, rounded to three decimals.
func (c Color) RedFraction() float64 { return U8ToFraction(c.R) }

// GreenFraction returns the green channel as a fraction of 255, rounded to three decimals.
func (c Color) GreenFraction() float64 { return U8ToFraction(c.G) }

// BlueFraction returns the blue channel as a fraction of 255, rounded to three decimals.
func (c Color) BlueFraction() float64 { return U8ToFraction(c.B) }

// AlphaFraction returns the alpha channel as a fraction of 255, rounded to three decimals.
func (c Color) AlphaFraction() float64 { return U8ToFraction(c.A) }

// SetRed replaces the red channel, keeping the other three.
func (c *Color) SetRed(v uint8) { *c = New(v, c.G, c.B, c.A) }

// SetGreen replaces the green channel, keeping the other three.
func (c *Color) SetGreen(v uint8) { *c = New(c.R, v, c.B, c.A) }

// SetBlue replaces the blue channel, keeping the other three.
func (c *Color) SetBlue(v uint8) { *c = New(c.R, c.G, v, c.A) }

// SetAlpha replaces the alpha channel, keeping the other three.
func (c *Color) SetAlpha(v uint8) { *c = New(c.R, c.G, c.B, v) }

// Hex renders "#rrggbb".
func (c Color) Hex() string { return FormatHex(c.R, c.G, c.B) }

// HexStripped renders "rrggbb".
func (c Color) HexStripped() string { return FormatHexStripped(c.R, c.G, c.B) }

// Hex8 renders "#rrggbbaa".
func (c Color) Hex8() string { return FormatHex8(c.R, c.G, c.B, c.A) }

// Hex8Stripped renders "rrggbbaa".
func (c Color) Hex8Stripped() string { return FormatHex8Stripped(c.R, c.G, c.B, c.A) }

// RGB renders "rgb(r,g,b)".
func (c Color) RGB() string { return FormatRGB(c.R, c.G, c.B) }

// RGBStripped renders "r,g,b".
func (c Color) RGBStripped() string { return FormatRGBStripped(c.R, c.G, c.B) }

// RGBPercentage renders "rgb(p%,p%,p%)" with up to three decimals.
func (c Color) RGBPercentage() string { return FormatRGBPercentage(c.R, c.G, c.B) }

// RGBPercentageRounded renders "rgb(p%,p%,p%)" with whole percentages.
func (c Color) RGBPercentageRounded() string { return FormatRGBPercentageRounded(c.R, c.G, c.B) }

// RGBA renders "rgba(r,g,b,a)".
func (c Color) RGBA() string { return FormatRGBA(c.R, c.G, c.B, c.A) }

// RGBAStripped renders "r,g,b,a".
func (c Color) RGBAStripped() string { return FormatRGBAStripped(c.R, c.G, c.B, c.A) }

// RGBAPercentage renders "rgba(p%,p%,p%,a)".
func (c Color) RGBAPercentage() string { return FormatRGBAPercentage(c.R, c.G, c.B, c.A) }

// RGBAPercentageRounded renders "rgba(p%,p%,p%,a)" with whole percentages.
func (c Color) RGBAPercentageRounded() string {
	return FormatRGBAPercentageRounded(c.R, c.G, c.B, c.A)
}

// XRGBA renders "rr/gg/bb/aa".
func (c Color) XRGBA() string { return c.SlashHex().String() }

// SlashHex returns the slash-hex working form of c.
func (c Color) SlashHex() SlashHex { return NewSlashHex(c.R, c.G, c.B, c.A) }

// Format renders c in the named format.
func (c Color) Format(f Format) string { return FormatAs(f, c.R, c.G, c.B, c.A) }

// String implements fmt.Stringer using the hex8 form.
func (c Color) String() string { return c.Hex8() }

// GoString shows the channels, for %#v.
func (c Color) GoString() string {
	return fmt.Sprintf("colorconv.New(%d, %d, %d, %d)", c.R, c.G, c.B, c.A)
}

// MarshalText encodes c as "#rrggbbaa".
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex8()), nil
}

// UnmarshalText accepts any grammar understood by Parse.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func hexPair(v uint8) string {
	return fmt.Sprintf("%02x", v)
}
