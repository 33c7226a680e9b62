package image

import (
	"image"
	"math"

	"github.com/disintegration/imaging"

	"github.com/colourlab/paletta/internal/colour"
)

const (
	// defaultMaxSamples bounds the number of pixels handed to the clusterer.
	defaultMaxSamples = 5000

	// downscaleBound is the edge length above which an image is resized
	// before sampling. Resampling blends neighbouring pixels, which also
	// smooths out single-pixel noise before clustering.
	downscaleBound = 512
)

// Sampler extracts a bounded collection of colour points from an image.
type Sampler struct {
	maxSamples int
}

// NewSampler creates a Sampler with the default sample budget.
func NewSampler() *Sampler {
	return &Sampler{maxSamples: defaultMaxSamples}
}

// NewSamplerWithBudget creates a Sampler keeping at most maxSamples points.
func NewSamplerWithBudget(maxSamples int) *Sampler {
	if maxSamples < 1 {
		maxSamples = defaultMaxSamples
	}
	return &Sampler{maxSamples: maxSamples}
}

// Sample converts an image into colour points. Large images are downscaled
// first, then grid-sampled so the result stays within the sample budget.
func (s *Sampler) Sample(img image.Image) []colour.Point {
	if img == nil {
		return nil
	}

	bounds := img.Bounds()
	if bounds.Dx() > downscaleBound || bounds.Dy() > downscaleBound {
		img = imaging.Fit(img, downscaleBound, downscaleBound, imaging.Lanczos)
		bounds = img.Bounds()
	}

	totalPixels := bounds.Dx() * bounds.Dy()
	if totalPixels <= s.maxSamples {
		points := make([]colour.Point, 0, totalPixels)
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				points = append(points, colour.PointFromColor(img.At(x, y)))
			}
		}
		return points
	}

	// Grid sampling: pick a step that lands close to the sample budget.
	step := int(math.Sqrt(float64(totalPixels) / float64(s.maxSamples)))
	if step < 1 {
		step = 1
	}

	points := make([]colour.Point, 0, s.maxSamples)
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			points = append(points, colour.PointFromColor(img.At(x, y)))
			if len(points) >= s.maxSamples {
				return points
			}
		}
	}

	return points
}
