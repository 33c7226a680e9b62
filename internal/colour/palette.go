// Package colour provides colour extraction and palette generation functionality.
package colour

import (
	"encoding/json"
	"fmt"
)

// Palette represents an ordered collection of colours.
type Palette struct {
	Points []Point
}

// NewPalette creates a new Palette with the given points.
func NewPalette(points []Point) *Palette {
	return &Palette{Points: points}
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int {
	return len(p.Points)
}

// Get returns the colour at the specified index.
// Returns an error if the index is out of bounds.
func (p *Palette) Get(index int) (Point, error) {
	if index < 0 || index >= len(p.Points) {
		return Point{}, fmt.Errorf("index out of bounds: %d (palette has %d colours)", index, len(p.Points))
	}
	return p.Points[index], nil
}

// Sorted returns a new palette ordered by the given metric.
func (p *Palette) Sorted(metric func(Point) float64, ascending bool) *Palette {
	return NewPalette(SortedByMetric(p.Points, metric, ascending))
}

// RGB represents a colour in 8-bit RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// Point returns the RGB colour as a Point.
func (rgb RGB) Point() Point {
	return Point{R: float64(rgb.R), G: float64(rgb.G), B: float64(rgb.B)}
}

// ToHex converts the palette colours to hex strings.
// Returns a slice of hex colour codes (e.g., ["#1a2b3c", "#4d5e6f"]).
func (p *Palette) ToHex() []string {
	hexColours := make([]string, len(p.Points))
	for i, pt := range p.Points {
		hexColours[i] = pt.RGB().Hex()
	}
	return hexColours
}

// ToRGBSlice converts the palette colours to RGB structs.
func (p *Palette) ToRGBSlice() []RGB {
	rgbColours := make([]RGB, len(p.Points))
	for i, pt := range p.Points {
		rgbColours[i] = pt.RGB()
	}
	return rgbColours
}

// ColourJSON represents a colour in JSON output format.
type ColourJSON struct {
	Hex string `json:"hex"`
	RGB RGB    `json:"rgb"`
}

// PaletteJSON represents the palette in JSON format.
type PaletteJSON struct {
	Count   int          `json:"count"`
	Colours []ColourJSON `json:"colours"`
}

// ToJSON converts the palette to JSON format.
func (p *Palette) ToJSON() ([]byte, error) {
	colours := make([]ColourJSON, len(p.Points))
	for i, pt := range p.Points {
		rgb := pt.RGB()
		colours[i] = ColourJSON{
			Hex: rgb.Hex(),
			RGB: rgb,
		}
	}

	return json.MarshalIndent(PaletteJSON{
		Count:   len(p.Points),
		Colours: colours,
	}, "", "  ")
}

// String returns a human-readable string representation of the palette.
func (p *Palette) String() string {
	if len(p.Points) == 0 {
		return "Empty palette"
	}

	result := fmt.Sprintf("Palette with %d colours:\n", len(p.Points))
	for i, pt := range p.Points {
		rgb := pt.RGB()
		result += fmt.Sprintf("  %2d: %s (%s)\n", i+1, rgb.Hex(), rgb.String())
	}
	return result
}

// All returns an iterator over all colours in the palette.
func (p *Palette) All() func(func(int, Point) bool) {
	return func(yield func(int, Point) bool) {
		for i, pt := range p.Points {
			if !yield(i, pt) {
				return
			}
		}
	}
}
