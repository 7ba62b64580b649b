package colorconv

import "strings"

// SlashHex is the "rr/gg/bb/aa" working form of the xrgba family: four
// lowercase two-digit hex groups joined by '/'. It converts losslessly to and
// from Color.
type SlashHex string

// NewSlashHex renders the channels as a SlashHex.
func NewSlashHex(r, g, b, a uint8) SlashHex {
	return SlashHex(FormatXRGBA(r, g, b, a))
}

// ParseSlashHex validates s and returns it normalized to lowercase.
func ParseSlashHex(s string) (SlashHex, error) {
	if !IsXRGBA(s) {
		return "", invalid(s, GrammarXRGBA)
	}
	return SlashHex(strings.ToLower(s)), nil
}

func (x SlashHex) String() string {
	return string(x)
}

// Color converts x to a Color.
func (x SlashHex) Color() (Color, error) {
	return FromXRGBA(string(x))
}

// Hex returns the "#rrggbb" form, dropping alpha.
func (x SlashHex) Hex() (string, error) {
	c, err := x.Color()
	if err != nil {
		return "", err
	}
	return c.Hex(), nil
}
