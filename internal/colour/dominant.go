// Package colour provides colour extraction and palette generation functionality.
package colour

import (
	"context"
	"fmt"
	"sort"
)

// quantiseStep groups colours within 16 units per channel into one bucket,
// so minor shade variations count towards the same dominant colour.
const quantiseStep = 16

// DominantExtractor implements colour extraction by counting the most
// frequent quantised colours in the sample.
type DominantExtractor struct{}

// Extract returns up to count colours ordered by how often they occur in the
// sample, most frequent first. Fewer colours may be returned when the sample
// holds fewer distinct buckets than requested.
func (e *DominantExtractor) Extract(ctx context.Context, points []Point, count int) (*Palette, error) {
	if count < 1 {
		return nil, fmt.Errorf("colour count must be at least 1, got %d", count)
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("no sample points provided")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	counts := make(map[RGB]int)
	order := make(map[RGB]int)
	for i, p := range points {
		bucket := quantise(p)
		if _, ok := counts[bucket]; !ok {
			order[bucket] = i
		}
		counts[bucket]++
	}

	buckets := make([]RGB, 0, len(counts))
	for bucket := range counts {
		buckets = append(buckets, bucket)
	}

	// Most frequent first; first-seen order breaks ties so results are
	// reproducible for a given sample.
	sort.Slice(buckets, func(i, j int) bool {
		if counts[buckets[i]] != counts[buckets[j]] {
			return counts[buckets[i]] > counts[buckets[j]]
		}
		return order[buckets[i]] < order[buckets[j]]
	})

	if len(buckets) > count {
		buckets = buckets[:count]
	}

	dominant := make([]Point, len(buckets))
	for i, bucket := range buckets {
		dominant[i] = bucket.Point()
	}

	return NewPalette(dominant), nil
}

// quantise maps a point onto the bucket grid.
func quantise(p Point) RGB {
	rgb := p.RGB()
	return RGB{
		R: rgb.R / quantiseStep * quantiseStep,
		G: rgb.G / quantiseStep * quantiseStep,
		B: rgb.B / quantiseStep * quantiseStep,
	}
}
