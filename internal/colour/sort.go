// Package colour provides colour extraction and palette generation functionality.
package colour

import "sort"

// SortedByMetric returns a new slice containing the input points stably
// sorted by metric value, ascending when ascending is true and descending
// otherwise. The input slice is left untouched.
func SortedByMetric(points []Point, metric func(Point) float64, ascending bool) []Point {
	sorted := make([]Point, len(points))
	copy(sorted, points)
	SortByMetric(sorted, metric, ascending)
	return sorted
}

// SortByMetric stably sorts points in place by metric value. Points with
// equal metric values keep their relative order.
func SortByMetric(points []Point, metric func(Point) float64, ascending bool) {
	sort.SliceStable(points, func(i, j int) bool {
		if ascending {
			return metric(points[i]) < metric(points[j])
		}
		return metric(points[i]) > metric(points[j])
	})
}
