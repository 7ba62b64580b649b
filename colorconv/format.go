package colorconv

import (
	"fmt"
	"strconv"
	"strings"
)

// Format names one of the textual forms a color can be rendered to.
type Format int

const (
	Hex Format = iota
	HexStripped
	Hex8
	Hex8Stripped
	RGB
	RGBStripped
	RGBPercentage
	RGBPercentageRounded
	RGBA
	RGBAStripped
	RGBAPercentage
	RGBAPercentageRounded
	XRGBA
)

var formatNames = [...]string{
	Hex:                   "hex",
	HexStripped:           "hex_stripped",
	Hex8:                  "hex8",
	Hex8Stripped:          "hex8_stripped",
	RGB:                   "rgb",
	RGBStripped:           "rgb_stripped",
	RGBPercentage:         "rgb_percentage",
	RGBPercentageRounded:  "rgb_percentage_rounded",
	RGBA:                  "rgba",
	RGBAStripped:          "rgba_stripped",
	RGBAPercentage:        "rgba_percentage",
	RGBAPercentageRounded: "rgba_percentage_rounded",
	XRGBA:                 "xrgba",
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// Formats returns every render format in declaration order.
func Formats() []Format {
	out := make([]Format, len(formatNames))
	for i := range formatNames {
		out[i] = Format(i)
	}
	return out
}

// FormatNames returns the names accepted by ParseFormat.
func FormatNames() []string {
	return append([]string(nil), formatNames[:]...)
}

// ParseFormat looks up a render format by name, ignoring case and treating
// '-' like '_'.
func ParseFormat(name string) (Format, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for i, n := range formatNames {
		if n == key {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("unknown color format %q", name)
}

// FormatAs renders the channels in the given format. Unknown formats render
// as hex8.
func FormatAs(f Format, r, g, b, a uint8) string {
	switch f {
	case Hex:
		return FormatHex(r, g, b)
	case HexStripped:
		return FormatHexStripped(r, g, b)
	case Hex8Stripped:
		return FormatHex8Stripped(r, g, b, a)
	case RGB:
		return FormatRGB(r, g, b)
	case RGBStripped:
		return FormatRGBStripped(r, g, b)
	case RGBPercentage:
		return FormatRGBPercentage(r, g, b)
	case RGBPercentageRounded:
		return FormatRGBPercentageRounded(r, g, b)
	case RGBA:
		return FormatRGBA(r, g, b, a)
	case RGBAStripped:
		return FormatRGBAStripped(r, g, b, a)
	case RGBAPercentage:
		return FormatRGBAPercentage(r, g, b, a)
	case RGBAPercentageRounded:
		return FormatRGBAPercentageRounded(r, g, b, a)
	case XRGBA:
		return FormatXRGBA(r, g, b, a)
	default:
		return FormatHex8(r, g, b, a)
	}
}

// FormatHex renders "#rrggbb". Alpha is not part of this form.
func FormatHex(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// FormatHexStripped renders "rrggbb".
func FormatHexStripped(r, g, b uint8) string {
	return fmt.Sprintf("%02x%02x%02x", r, g, b)
}

// FormatHex8 renders "#rrggbbaa".
func FormatHex8(r, g, b, a uint8) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

// FormatHex8Stripped renders "rrggbbaa".
func FormatHex8Stripped(r, g, b, a uint8) string {
	return fmt.Sprintf("%02x%02x%02x%02x", r, g, b, a)
}

// FormatRGB renders "rgb(r,g,b)" with decimal channels.
func FormatRGB(r, g, b uint8) string {
	return "rgb(" + FormatRGBStripped(r, g, b) + ")"
}

// FormatRGBStripped renders "r,g,b".
func FormatRGBStripped(r, g, b uint8) string {
	return fmt.Sprintf("%d,%d,%d", r, g, b)
}

// FormatRGBPercentage renders "rgb(p%,p%,p%)" using U8ToPercentage.
func FormatRGBPercentage(r, g, b uint8) string {
	return fmt.Sprintf("rgb(%s%%,%s%%,%s%%)",
		formatFloat(U8ToPercentage(r)), formatFloat(U8ToPercentage(g)), formatFloat(U8ToPercentage(b)))
}

// FormatRGBPercentageRounded renders "rgb(p%,p%,p%)" with whole percentages.
func FormatRGBPercentageRounded(r, g, b uint8) string {
	return fmt.Sprintf("rgb(%d%%,%d%%,%d%%)",
		U8ToPercentageRounded(r), U8ToPercentageRounded(g), U8ToPercentageRounded(b))
}

// FormatRGBA renders "rgba(r,g,b,a)" with alpha as a fraction.
func FormatRGBA(r, g, b, a uint8) string {
	return "rgba(" + FormatRGBAStripped(r, g, b, a) + ")"
}

// FormatRGBAStripped renders "r,g,b,a".
func FormatRGBAStripped(r, g, b, a uint8) string {
	return fmt.Sprintf("%d,%d,%d,%s", r, g, b, formatFloat(U8ToFraction(a)))
}

// FormatRGBAPercentage renders "rgba(p%,p%,p%,a)".
func FormatRGBAPercentage(r, g, b, a uint8) string {
	return fmt.Sprintf("rgba(%s%%,%s%%,%s%%,%s)",
		formatFloat(U8ToPercentage(r)), formatFloat(U8ToPercentage(g)), formatFloat(U8ToPercentage(b)),
		formatFloat(U8ToFraction(a)))
}

// FormatRGBAPercentageRounded renders "rgba(p%,p%,p%,a)" with whole percentages.
func FormatRGBAPercentageRounded(r, g, b, a uint8) string {
	return fmt.Sprintf("rgba(%d%%,%d%%,%d%%,%s)",
		U8ToPercentageRounded(r), U8ToPercentageRounded(g), U8ToPercentageRounded(b),
		formatFloat(U8ToFraction(a)))
}

// FormatXRGBA renders "rr/gg/bb/aa".
func FormatXRGBA(r, g, b, a uint8) string {
	return fmt.Sprintf("%02x/%02x/%02x/%02x", r, g, b, a)
}

// formatFloat uses the shortest representation, so 100.0 prints as "100".
func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
