// Package swatch renders a color as a solid PNG preview image.
package swatch

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/ironsheep/color-tools-mcp/colorconv"
	"github.com/spf13/afero"
)

// MaxSide bounds either dimension of a swatch.
const MaxSide = 4096

// Result contains an encoded swatch.
type Result struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Color       string `json:"color"` // "#rrggbbaa" of the fill
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
	Path        string `json:"path,omitempty"` // Set when the PNG was also written to disk
}

// Render returns PNG bytes of a width x height image filled with c. The fill
// keeps c's alpha, so translucent colors produce translucent pixels.
func Render(c colorconv.Color, width, height int) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid swatch size %dx%d: dimensions must be positive", width, height)
	}
	if width > MaxSide || height > MaxSide {
		return nil, fmt.Errorf("invalid swatch size %dx%d: maximum is %d", width, height, MaxSide)
	}

	img := imaging.New(width, height, c.NRGBA())

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode swatch: %w", err)
	}
	return buf.Bytes(), nil
}

// Encode renders the swatch and returns it base64 encoded.
func Encode(c colorconv.Color, width, height int) (*Result, error) {
	data, err := Render(c, width, height)
	if err != nil {
		return nil, err
	}
	return &Result{
		Width:       width,
		Height:      height,
		Color:       c.Hex8(),
		ImageBase64: base64.StdEncoding.EncodeToString(data),
		MimeType:    "image/png",
	}, nil
}

// WriteFile renders the swatch, writes it to path on fs and returns the same
// result Encode would, with Path set. Missing parent directories are created.
func WriteFile(fs afero.Fs, path string, c colorconv.Color, width, height int) (*Result, error) {
	data, err := Render(c, width, height)
	if err != nil {
		return nil, err
	}
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create swatch directory: %w", err)
	}
	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write swatch: %w", err)
	}
	return &Result{
		Width:       width,
		Height:      height,
		Color:       c.Hex8(),
		ImageBase64: base64.StdEncoding.EncodeToString(data),
		MimeType:    "image/png",
		Path:        path,
	}, nil
}
