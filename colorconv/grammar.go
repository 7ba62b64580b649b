package colorconv

import (
	"regexp"
	"strconv"
	"strings"
)

// Grammar identifies one of the supported textual color syntaxes.
type Grammar int

const (
	GrammarUnsupported Grammar = iota
	GrammarHex                 // #rgb, #rgba, #rrggbb, #rrggbbaa
	GrammarRGB                 // rgb(r,g,b) with integer or percentage channels
	GrammarRGBA                // rgba(r,g,b,a) with a fractional alpha
	GrammarXRGBA               // rr/gg/bb/aa
)

func (g Grammar) String() string {
	switch g {
	case GrammarHex:
		return "hex"
	case GrammarRGB:
		return "rgb"
	case GrammarRGBA:
		return "rgba"
	case GrammarXRGBA:
		return "xrgba"
	default:
		return "unsupported"
	}
}

// HexKind tells which hex sub-length a string matched.
type HexKind int

const (
	HexInvalid    HexKind = iota
	HexShort              // #rgb
	HexShortAlpha         // #rgba
	HexFull               // #rrggbb
	HexFullAlpha          // #rrggbbaa
)

func (k HexKind) String() string {
	switch k {
	case HexShort:
		return "hex3"
	case HexShortAlpha:
		return "hex4"
	case HexFull:
		return "hex6"
	case HexFullAlpha:
		return "hex8"
	default:
		return "invalid"
	}
}

// HasAlpha reports whether the hex form encodes an alpha channel.
func (k HexKind) HasAlpha() bool {
	return k == HexShortAlpha || k == HexFullAlpha
}

// Shorthand reports whether each digit of the form stands for a doubled pair.
func (k HexKind) Shorthand() bool {
	return k == HexShort || k == HexShortAlpha
}

const (
	channelToken = `(\d{1,3}(?:\.\d+)?%|\d{1,3})`
	alphaToken   = `(\d*\.\d+|\d+)`
)

// The grammar table. Compiled once at package initialization and never
// mutated afterwards, so it is safe for concurrent use.
var (
	hexPattern   = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{4}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})$`)
	xrgbaPattern = regexp.MustCompile(`^([0-9A-Fa-f]{2})/([0-9A-Fa-f]{2})/([0-9A-Fa-f]{2})/([0-9A-Fa-f]{2})$`)
	rgbPattern   = regexp.MustCompile(`(?i)^rgb\(\s*` + channelToken + `\s*,\s*` + channelToken + `\s*,\s*` + channelToken + `\s*\)$`)
	rgbaPattern  = regexp.MustCompile(`(?i)^rgba\(\s*` + channelToken + `\s*,\s*` + channelToken + `\s*,\s*` + channelToken + `\s*,\s*` + alphaToken + `\s*\)$`)
)

// CheckHex reports which hex form s matches, or HexInvalid.
//
// Only '#'-prefixed strings of 3, 4, 6 or 8 hex digits are recognized. A bare
// two-digit channel pair is not a hex color.
func CheckHex(s string) HexKind {
	if !hexPattern.MatchString(s) {
		return HexInvalid
	}
	switch len(s) - 1 {
	case 3:
		return HexShort
	case 4:
		return HexShortAlpha
	case 6:
		return HexFull
	default:
		return HexFullAlpha
	}
}

// IsHex reports whether s is a hex color in any of its four lengths.
func IsHex(s string) bool {
	return CheckHex(s) != HexInvalid
}

// IsXRGBA reports whether s is four two-digit hex groups joined by '/'.
func IsXRGBA(s string) bool {
	return xrgbaPattern.MatchString(s)
}

// IsRGB reports whether s is a well-formed rgb() color. Channels must be all
// integers in 0-255 or all percentages in 0-100.
func IsRGB(s string) bool {
	m := rgbPattern.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	_, _, _, ok := parseChannels(m[1:4])
	return ok
}

// IsRGBA reports whether s is a well-formed rgba() color. The color channels
// follow the rgb() rules and alpha must be a fraction in [0.0, 1.0].
func IsRGBA(s string) bool {
	m := rgbaPattern.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	if _, _, _, ok := parseChannels(m[1:4]); !ok {
		return false
	}
	_, ok := parseAlpha(m[4])
	return ok
}

// Classify returns the grammar s matches. Grammars are tried in the order
// hex, rgb, rgba, xrgba.
func Classify(s string) Grammar {
	switch {
	case IsHex(s):
		return GrammarHex
	case IsRGB(s):
		return GrammarRGB
	case IsRGBA(s):
		return GrammarRGBA
	case IsXRGBA(s):
		return GrammarXRGBA
	default:
		return GrammarUnsupported
	}
}

// parseChannels converts three rgb()/rgba() channel tokens into bytes. It
// fails on mixed units and on values out of range.
func parseChannels(tokens []string) (r, g, b uint8, ok bool) {
	if len(tokens) != 3 {
		return 0, 0, 0, false
	}
	percents := 0
	for _, tok := range tokens {
		if strings.HasSuffix(tok, "%") {
			percents++
		}
	}
	if percents != 0 && percents != len(tokens) {
		return 0, 0, 0, false
	}

	var out [3]uint8
	for i, tok := range tokens {
		if percents > 0 {
			p, err := strconv.ParseFloat(strings.TrimSuffix(tok, "%"), 64)
			if err != nil || p < 0 || p > 100 {
				return 0, 0, 0, false
			}
			out[i] = PercentageToU8(p)
			continue
		}
		v, err := strconv.ParseUint(tok, 10, 8)
		if err != nil {
			return 0, 0, 0, false
		}
		out[i] = uint8(v)
	}
	return out[0], out[1], out[2], true
}

// parseAlpha converts an rgba() alpha token into a byte, rounding.
func parseAlpha(tok string) (uint8, bool) {
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil || f < 0 || f > 1 {
		return 0, false
	}
	return FractionToU8Rounded(f), true
}
