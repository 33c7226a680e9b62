// Package colour provides colour extraction and palette generation functionality.
package colour

import (
	"image/color"
	"math"
)

// Point is a colour in RGB space with float64 channels in the range [0, 255].
// Points are value types; nothing in this package mutates a caller's Point.
type Point struct {
	R, G, B float64
}

// PointFromColor converts a color.Color to a Point.
func PointFromColor(c color.Color) Point {
	r, g, b, _ := c.RGBA()
	// RGBA returns values in the range [0, 65535], convert to [0, 255].
	return Point{
		R: float64(r >> 8),
		G: float64(g >> 8),
		B: float64(b >> 8),
	}
}

// RGB returns the point as an 8-bit RGB value, rounding each channel and
// clamping to [0, 255].
func (p Point) RGB() RGB {
	return RGB{
		R: clampChannel(p.R),
		G: clampChannel(p.G),
		B: clampChannel(p.B),
	}
}

// Color returns the point as a fully opaque color.Color.
func (p Point) Color() color.Color {
	rgb := p.RGB()
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

func clampChannel(v float64) uint8 {
	r := math.Round(v)
	if r < 0 {
		return 0
	}
	if r > 255 {
		return 255
	}
	return uint8(r)
}

func (p Point) maxChannel() float64 {
	return math.Max(p.R, math.Max(p.G, p.B))
}

func (p Point) minChannel() float64 {
	return math.Min(p.R, math.Min(p.G, p.B))
}
