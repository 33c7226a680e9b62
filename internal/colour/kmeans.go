// Package colour provides colour extraction and palette generation functionality.
package colour

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"slices"
	"time"
)

const (
	// DefaultClusterCount is the number of clusters used when none is specified.
	DefaultClusterCount = 6

	// DefaultMaxIterations is the default k-means iteration budget.
	DefaultMaxIterations = 100

	// convergenceThreshold is the maximum per-centre movement, in Euclidean
	// RGB distance, for a pass to count as converged.
	convergenceThreshold = 1.0
)

// KMeansClusterer partitions colour points into k clusters and reports the
// representative centre of each cluster.
type KMeansClusterer struct {
	k             int
	maxIterations int
	rng           *rand.Rand
}

// NewKMeansClusterer creates a clusterer for k clusters with the given
// iteration budget. Non-positive arguments fall back to the defaults.
func NewKMeansClusterer(k, maxIterations int) *KMeansClusterer {
	if k < 1 {
		k = DefaultClusterCount
	}
	if maxIterations < 1 {
		maxIterations = DefaultMaxIterations
	}
	return &KMeansClusterer{
		k:             k,
		maxIterations: maxIterations,
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithRand replaces the pseudo-random source used for centre initialisation
// and empty-cluster reseeding. Tests inject a seeded source here to make
// clustering deterministic.
func (c *KMeansClusterer) WithRand(r *rand.Rand) *KMeansClusterer {
	c.rng = r
	return c
}

// Cluster runs k-means over the input points and returns the k cluster
// centres, each channel rounded to the nearest integer. The input slice is
// never mutated.
//
// Centres are seeded by sampling k points without replacement. Each pass
// assigns every point to its nearest centre (ties resolve to the lowest
// centre index) and replaces each centre with the rounded mean of its
// cluster; a cluster that empties is reseeded from a random input point
// rather than treated as an error. The loop stops once no centre moved more
// than one unit since the previous pass, or after maxIterations+1 passes.
func (c *KMeansClusterer) Cluster(ctx context.Context, points []Point) ([]Point, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("point collection cannot be empty")
	}
	if len(points) < c.k {
		return nil, fmt.Errorf("need at least %d points for %d clusters, got %d", c.k, c.k, len(points))
	}

	centres := c.initialCentres(points)

	var previous []Point
	for iterations := 0; !converged(previous, centres); iterations++ {
		if iterations > c.maxIterations {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		previous = slices.Clone(centres)
		clusters := assign(points, centres)
		centres = c.recalculateCentres(clusters, points)
	}

	return centres, nil
}

// initialCentres picks k starting centres by shuffling a copy of the input
// and taking the first k. Duplicate input points may yield duplicate centres.
func (c *KMeansClusterer) initialCentres(points []Point) []Point {
	shuffled := slices.Clone(points)
	c.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:c.k:c.k]
}

// assign partitions points into one cluster per centre. Every point lands in
// exactly one cluster: the first centre achieving the minimum distance wins.
func assign(points, centres []Point) [][]Point {
	clusters := make([][]Point, len(centres))
	for _, p := range points {
		nearest := 0
		minDist := Distance(p, centres[0])
		for i := 1; i < len(centres); i++ {
			if d := Distance(p, centres[i]); d < minDist {
				minDist = d
				nearest = i
			}
		}
		clusters[nearest] = append(clusters[nearest], p)
	}
	return clusters
}

// recalculateCentres computes the new centre of each cluster as the
// component-wise rounded mean of its members. An empty cluster gets a fresh
// uniformly random point from the full input collection.
func (c *KMeansClusterer) recalculateCentres(clusters [][]Point, points []Point) []Point {
	centres := make([]Point, len(clusters))
	for i, cluster := range clusters {
		if len(cluster) == 0 {
			centres[i] = points[c.rng.Intn(len(points))]
			continue
		}

		var sum Point
		for _, p := range cluster {
			sum.R += p.R
			sum.G += p.G
			sum.B += p.B
		}
		n := float64(len(cluster))
		centres[i] = Point{
			R: math.Round(sum.R / n),
			G: math.Round(sum.G / n),
			B: math.Round(sum.B / n),
		}
	}
	return centres
}

// converged reports whether every centre moved at most convergenceThreshold
// since the previous pass, compared pairwise by index. A nil snapshot
// (before the first pass) never counts as converged.
func converged(previous, centres []Point) bool {
	if len(previous) != len(centres) {
		return false
	}
	for i := range centres {
		if Distance(previous[i], centres[i]) > convergenceThreshold {
			return false
		}
	}
	return true
}
