package server

import "github.com/ironsheep/color-tools-mcp/colorconv"

// Channels holds the four 8-bit components of a color.
type Channels struct {
	Red   uint8 `json:"red"`
	Green uint8 `json:"green"`
	Blue  uint8 `json:"blue"`
	Alpha uint8 `json:"alpha"`
}

// Percentages holds each channel as a percentage of 255, three decimals.
type Percentages struct {
	Red   float64 `json:"red"`
	Green float64 `json:"green"`
	Blue  float64 `json:"blue"`
	Alpha float64 `json:"alpha"`
}

// Description contains a color value in every representation.
//
// This is the result of color_parse, color_from_channels and palette_get:
//   - Channels: 8-bit components
//   - Percentages: components as percentages of 255
//   - AlphaFraction: alpha as a 0.0-1.0 fraction, as used by rgba()
//   - Formats: every render format keyed by its name (hex, rgba, xrgba, ...)
type Description struct {
	Input         string            `json:"input,omitempty"`   // Original input, if the color was parsed
	Grammar       string            `json:"grammar,omitempty"` // Grammar the input matched
	Channels      Channels          `json:"channels"`
	Percentages   Percentages       `json:"percentages"`
	AlphaFraction float64           `json:"alpha_fraction"`
	Formats       map[string]string `json:"formats"`
}

// describe renders c in every format.
func describe(c colorconv.Color) *Description {
	formats := make(map[string]string, len(colorconv.Formats()))
	for _, f := range colorconv.Formats() {
		formats[f.String()] = c.Format(f)
	}

	return &Description{
		Channels: Channels{Red: c.Red(), Green: c.Green(), Blue: c.Blue(), Alpha: c.Alpha()},
		Percentages: Percentages{
			Red:   c.RedPercentage(),
			Green: c.GreenPercentage(),
			Blue:  c.BluePercentage(),
			Alpha: c.AlphaPercentage(),
		},
		AlphaFraction: c.AlphaFraction(),
		Formats:       formats,
	}
}
