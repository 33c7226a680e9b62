package image

import (
	"image"
	"image/color"
	"testing"

	"github.com/colourlab/paletta/internal/colour"
)

// solidImage builds a width x height image filled with a single colour.
func solidImage(width, height int, c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestSampleSmallImageTakesEveryPixel(t *testing.T) {
	img := solidImage(10, 10, color.RGBA{R: 200, G: 100, B: 50, A: 255})

	points := NewSampler().Sample(img)

	if len(points) != 100 {
		t.Fatalf("Sample() returned %d points, want 100", len(points))
	}
	want := colour.Point{R: 200, G: 100, B: 50}
	for i, p := range points {
		if p != want {
			t.Fatalf("point %d = %v, want %v", i, p, want)
		}
	}
}

func TestSampleRespectsBudget(t *testing.T) {
	img := solidImage(200, 200, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	points := NewSamplerWithBudget(100).Sample(img)

	if len(points) == 0 {
		t.Fatal("Sample() returned no points")
	}
	if len(points) > 100 {
		t.Errorf("Sample() returned %d points, budget is 100", len(points))
	}
}

func TestSampleDownscalesLargeImages(t *testing.T) {
	// Larger than the downscale bound on one edge; sampling must still work
	// and stay within the default budget.
	img := solidImage(1024, 64, color.RGBA{R: 255, A: 255})

	points := NewSampler().Sample(img)

	if len(points) == 0 {
		t.Fatal("Sample() returned no points")
	}
	if len(points) > defaultMaxSamples {
		t.Errorf("Sample() returned %d points, budget is %d", len(points), defaultMaxSamples)
	}
}

func TestSampleNilImage(t *testing.T) {
	if points := NewSampler().Sample(nil); points != nil {
		t.Errorf("Sample(nil) = %v, want nil", points)
	}
}

func TestNewSamplerWithBudgetFallsBackOnInvalid(t *testing.T) {
	s := NewSamplerWithBudget(0)
	if s.maxSamples != defaultMaxSamples {
		t.Errorf("maxSamples = %d, want default %d", s.maxSamples, defaultMaxSamples)
	}
}
