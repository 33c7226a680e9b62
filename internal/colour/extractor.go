// Package colour provides colour extraction and palette generation functionality.
package colour

import (
	"context"
	"fmt"
)

// Extractor defines the interface for colour extraction algorithms.
type Extractor interface {
	// Extract extracts a colour palette from a collection of sample points.
	// The count parameter specifies the number of colours to extract.
	Extract(ctx context.Context, points []Point, count int) (*Palette, error)
}

// Algorithm represents the colour extraction algorithm type.
type Algorithm string

const (
	// AlgorithmKMeans uses k-means clustering for colour extraction.
	AlgorithmKMeans Algorithm = "kmeans"

	// AlgorithmDominant extracts the most frequent quantised colours.
	AlgorithmDominant Algorithm = "dominant"
)

// ValidAlgorithms returns a list of valid algorithm names.
func ValidAlgorithms() []Algorithm {
	return []Algorithm{
		AlgorithmKMeans,
		AlgorithmDominant,
	}
}

// IsValidAlgorithm checks if the given algorithm name is valid.
func IsValidAlgorithm(alg Algorithm) bool {
	for _, valid := range ValidAlgorithms() {
		if alg == valid {
			return true
		}
	}
	return false
}

// NewExtractor creates a new Extractor based on the specified algorithm.
// Returns an error if the algorithm is not recognised.
func NewExtractor(alg Algorithm, maxIterations int) (Extractor, error) {
	switch alg {
	case AlgorithmKMeans:
		return &KMeansExtractor{maxIterations: maxIterations}, nil
	case AlgorithmDominant:
		return &DominantExtractor{}, nil
	default:
		return nil, fmt.Errorf("unknown algorithm: %s (valid algorithms: %v)", alg, ValidAlgorithms())
	}
}

// ExtractorConfig holds configuration for colour extraction.
type ExtractorConfig struct {
	Algorithm     Algorithm
	ColourCount   int
	MaxIterations int
}

// DefaultExtractorConfig returns the default extractor configuration.
func DefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		Algorithm:     AlgorithmKMeans,
		ColourCount:   DefaultClusterCount,
		MaxIterations: DefaultMaxIterations,
	}
}

// Validate validates the extractor configuration.
func (c ExtractorConfig) Validate() error {
	if !IsValidAlgorithm(c.Algorithm) {
		return fmt.Errorf("invalid algorithm: %s", c.Algorithm)
	}
	if c.ColourCount < 1 {
		return fmt.Errorf("colour count must be at least 1, got %d", c.ColourCount)
	}
	if c.ColourCount > 256 {
		return fmt.Errorf("colour count too large: %d (maximum: 256)", c.ColourCount)
	}
	if c.MaxIterations < 1 {
		return fmt.Errorf("iteration budget must be at least 1, got %d", c.MaxIterations)
	}
	return nil
}

// KMeansExtractor implements colour extraction using k-means clustering.
type KMeansExtractor struct {
	maxIterations int
}

// Extract extracts count representative colours from the sample points.
// When count meets or exceeds the number of distinct colours in the input,
// the distinct colours are returned directly without clustering.
func (e *KMeansExtractor) Extract(ctx context.Context, points []Point, count int) (*Palette, error) {
	if count < 1 {
		return nil, fmt.Errorf("colour count must be at least 1, got %d", count)
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("no sample points provided")
	}

	unique := distinctPoints(points)
	if count >= len(unique) {
		return NewPalette(unique), nil
	}

	clusterer := NewKMeansClusterer(count, e.maxIterations)
	centres, err := clusterer.Cluster(ctx, points)
	if err != nil {
		return nil, err
	}

	return NewPalette(centres), nil
}

// distinctPoints returns the distinct colours of the input in first-seen order.
func distinctPoints(points []Point) []Point {
	seen := make(map[RGB]bool, len(points))
	unique := make([]Point, 0, len(points))
	for _, p := range points {
		rgb := p.RGB()
		if !seen[rgb] {
			unique = append(unique, p)
			seen[rgb] = true
		}
	}
	return unique
}
