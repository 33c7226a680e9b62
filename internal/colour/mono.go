// Package colour provides colour extraction and palette generation functionality.
package colour

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultMonochromaticSteps is the number of gradient steps generated on
// each side of the base colour when none is specified.
const DefaultMonochromaticSteps = 3

// HSVConverter converts a hue in degrees and saturation and value
// percentages to an RGB point. Implementations must be pure.
type HSVConverter func(hue, saturation, value float64) Point

// HSVToPoint is the default HSVConverter, backed by go-colorful.
func HSVToPoint(hue, saturation, value float64) Point {
	c := colorful.Hsv(hue, clamp01(saturation/100), clamp01(value/100))
	r, g, b := c.RGB255()
	return Point{R: float64(r), G: float64(g), B: float64(b)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Monochromatic derives a dark-to-light gradient of colours sharing the hue
// of p, with steps variants on each side of the original.
func Monochromatic(p Point, steps int) []Point {
	return MonochromaticWith(p, steps, HSVToPoint)
}

// MonochromaticWith is Monochromatic with an explicit HSV to RGB converter.
//
// The gradient is built in HSV space from the base colour's hue, saturation
// and value. With n = steps+1 the result holds 2n+1 colours: n steps walking
// in towards the base colour, the base colour itself at index n, then n
// steps walking out the far side of the hue family. Per-step deltas are
// rounded once up front, so the runs stay on an even integer grid. Negative
// steps are treated as 0.
func MonochromaticWith(p Point, steps int, convert HSVConverter) []Point {
	if steps < 0 {
		steps = 0
	}

	h := Hue(p)
	s := Saturation(p)
	v := Value(p)

	n := steps + 1
	nf := float64(n)
	darkSat := math.Round(s / nf)
	darkVal := math.Round((100 - v) / nf)
	lightSat := math.Round((100 - s) / nf)
	lightVal := math.Round(v / nf)

	gradient := make([]Point, 0, 2*n+1)

	// Dark side: saturation rising from 0, value descending from 100.
	for i := 0; i < n; i++ {
		fi := float64(i)
		gradient = append(gradient, convert(h, fi*darkSat, 100-fi*darkVal))
	}

	gradient = append(gradient, convert(h, s, v))

	// Light side: walked with a descending index so the sequence continues
	// away from the base colour.
	for i := n - 1; i >= 0; i-- {
		fi := float64(i)
		gradient = append(gradient, convert(h, 100-fi*lightSat, fi*lightVal))
	}

	return gradient
}
