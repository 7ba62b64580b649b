package colorconv

import (
	"image/color"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// NRGBA returns c as a non-premultiplied standard library color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromImageColor converts any image/color value. Premultiplied colors are
// un-premultiplied first, so the channels match what a hex form would carry.
func FromImageColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return New(n.R, n.G, n.B, n.A)
}

// Colorful returns the color channels as a go-colorful value. go-colorful has
// no alpha channel, so alpha is dropped.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// FromColorful converts a go-colorful value to an opaque Color. Channels
// outside [0, 1] are clamped.
func FromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return NewRGB(r, g, b)
}

// Lipgloss returns c as a terminal style color. Terminals have no alpha, so
// the "#rrggbb" form is used.
func (c Color) Lipgloss() lipgloss.Color {
	return lipgloss.Color(c.Hex())
}
