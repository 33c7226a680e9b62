// Package colour provides colour extraction and palette generation functionality.
package colour

import (
	"fmt"
	"math"
)

// Distance calculates the Euclidean distance between two points in RGB space.
func Distance(a, b Point) float64 {
	dr := a.R - b.R
	dg := a.G - b.G
	db := a.B - b.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(p Point) float64 {
	r := gammaCorrect(p.R / 255.0)
	g := gammaCorrect(p.G / 255.0)
	b := gammaCorrect(p.B / 255.0)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaCorrect applies gamma correction to a colour component in [0, 1].
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// Brightness calculates the Euclidean magnitude of a colour from black.
// A simpler brightness proxy than Luminance, without perceptual weighting.
func Brightness(p Point) float64 {
	return Distance(p, Point{})
}

// Hue calculates the HSV hue of a colour in degrees, rounded to the nearest
// integer degree in [0, 360). Achromatic colours (all channels equal) have
// hue 0.
func Hue(p Point) float64 {
	maxVal := p.maxChannel()
	minVal := p.minChannel()
	if maxVal == minVal {
		return 0
	}

	delta := maxVal - minVal
	var h float64
	switch maxVal {
	case p.R:
		h = (p.G - p.B) / delta
	case p.G:
		h = (p.B-p.R)/delta + 2
	case p.B:
		h = (p.R-p.G)/delta + 4
	}

	h *= 60
	if h < 0 {
		h += 360
	}
	return math.Round(h)
}

// Saturation calculates the HSV saturation of a colour as a percentage in
// [0, 100]. Pure black has an undefined saturation mathematically (the
// denominator is zero); this implementation defines it as 0.
func Saturation(p Point) float64 {
	maxVal := p.maxChannel()
	if maxVal == 0 {
		return 0
	}
	return (maxVal - p.minChannel()) / maxVal * 100
}

// Value calculates the HSV value of a colour as a percentage in [0, 100].
func Value(p Point) float64 {
	return p.maxChannel() / 255.0 * 100
}

// Metric identifies a scalar colour measure used for sorting palettes.
type Metric string

const (
	// MetricLuminance sorts by WCAG relative luminance.
	MetricLuminance Metric = "luminance"

	// MetricBrightness sorts by Euclidean magnitude from black.
	MetricBrightness Metric = "brightness"

	// MetricHue sorts by HSV hue in degrees.
	MetricHue Metric = "hue"

	// MetricSaturation sorts by HSV saturation.
	MetricSaturation Metric = "saturation"

	// MetricValue sorts by HSV value.
	MetricValue Metric = "value"
)

// ValidMetrics returns a list of valid metric names.
func ValidMetrics() []Metric {
	return []Metric{
		MetricLuminance,
		MetricBrightness,
		MetricHue,
		MetricSaturation,
		MetricValue,
	}
}

// IsValidMetric checks if the given metric name is valid.
func IsValidMetric(m Metric) bool {
	for _, valid := range ValidMetrics() {
		if m == valid {
			return true
		}
	}
	return false
}

// MetricFunc resolves a metric name to its measuring function.
// Returns an error if the metric is not recognised.
func MetricFunc(m Metric) (func(Point) float64, error) {
	switch m {
	case MetricLuminance:
		return Luminance, nil
	case MetricBrightness:
		return Brightness, nil
	case MetricHue:
		return Hue, nil
	case MetricSaturation:
		return Saturation, nil
	case MetricValue:
		return Value, nil
	default:
		return nil, fmt.Errorf("unknown metric: %s (valid metrics: %v)", m, ValidMetrics())
	}
}
