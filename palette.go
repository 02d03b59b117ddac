package houtveilig

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Palette holds the colors used for every region of the icon.
// The background is a vertical gradient from GradientTop to GradientBottom.
type Palette struct {
	Foliage        color.NRGBA
	Warning        color.NRGBA
	Exclamation    color.NRGBA
	GradientTop    color.NRGBA
	GradientBottom color.NRGBA
}

// DefaultPalette returns the HoutVeilig brand colors.
func DefaultPalette() Palette {
	return Palette{
		Foliage:        color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Warning:        color.NRGBA{R: 0xff, G: 0x8f, B: 0x00, A: 0xff},
		Exclamation:    color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		GradientTop:    color.NRGBA{R: 0x1b, G: 0x5e, B: 0x20, A: 0xff},
		GradientBottom: color.NRGBA{R: 0x4c, G: 0xaf, B: 0x50, A: 0xff},
	}
}

// Color returns the opaque color of a region at row y of a size*size canvas.
func (p Palette) Color(r Region, y, size int) color.NRGBA {
	var c color.NRGBA
	switch r {
	case Exclamation:
		c = p.Exclamation
	case Warning:
		c = p.Warning
	case TreeFoliage:
		c = p.Foliage
	default:
		c = p.Gradient(y, size)
	}
	c.A = 0xff
	return c
}

// Gradient interpolates each channel linearly between the gradient endpoints
// by t = y/size. The fraction is truncated, as t never reaches 1.
func (p Palette) Gradient(y, size int) color.NRGBA {
	t := float64(y) / float64(size)
	lerp := func(from, to uint8) uint8 {
		return uint8(float64(from) + float64(int(to)-int(from))*t)
	}
	return color.NRGBA{
		R: lerp(p.GradientTop.R, p.GradientBottom.R),
		G: lerp(p.GradientTop.G, p.GradientBottom.G),
		B: lerp(p.GradientTop.B, p.GradientBottom.B),
		A: 0xff,
	}
}

// ParseHexColor parses a "#rrggbb" or "rrggbb" string into an opaque color.
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("%w: color %q should have the form #rrggbb", ErrInvalidConfig, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: color %q: %v", ErrInvalidConfig, s, err)
	}
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}

// HexColor formats an opaque color as "#rrggbb".
func HexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
