// Package colour provides colour extraction and palette generation functionality.
package colour

import "testing"

func sortTestPoints() []Point {
	return []Point{
		{R: 255, G: 255, B: 255},
		{R: 10, G: 10, B: 10},
		{R: 255},
		{G: 255},
		{R: 128, G: 128, B: 128},
	}
}

func TestSortedByMetricAscending(t *testing.T) {
	for _, m := range ValidMetrics() {
		t.Run(string(m), func(t *testing.T) {
			metric, err := MetricFunc(m)
			if err != nil {
				t.Fatalf("MetricFunc(%s) error = %v", m, err)
			}

			sorted := SortedByMetric(sortTestPoints(), metric, true)

			for i := 1; i < len(sorted); i++ {
				if metric(sorted[i-1]) > metric(sorted[i]) {
					t.Errorf("ascending sort by %s: element %d (%v) > element %d (%v)",
						m, i-1, metric(sorted[i-1]), i, metric(sorted[i]))
				}
			}
		})
	}
}

func TestSortedByMetricDescending(t *testing.T) {
	for _, m := range ValidMetrics() {
		t.Run(string(m), func(t *testing.T) {
			metric, err := MetricFunc(m)
			if err != nil {
				t.Fatalf("MetricFunc(%s) error = %v", m, err)
			}

			sorted := SortedByMetric(sortTestPoints(), metric, false)

			for i := 1; i < len(sorted); i++ {
				if metric(sorted[i-1]) < metric(sorted[i]) {
					t.Errorf("descending sort by %s: element %d (%v) < element %d (%v)",
						m, i-1, metric(sorted[i-1]), i, metric(sorted[i]))
				}
			}
		})
	}
}

func TestSortedByMetricLeavesInputUntouched(t *testing.T) {
	points := sortTestPoints()
	original := make([]Point, len(points))
	copy(original, points)

	SortedByMetric(points, Luminance, true)

	for i := range points {
		if points[i] != original[i] {
			t.Fatalf("input point %d changed from %v to %v", i, original[i], points[i])
		}
	}
}

func TestSortByMetricStable(t *testing.T) {
	// All three share hue 0; a stable sort must keep their input order.
	points := []Point{
		{R: 200, G: 50, B: 50},
		{R: 10, G: 10, B: 10},
		{R: 255, G: 100, B: 100},
	}
	original := make([]Point, len(points))
	copy(original, points)

	SortByMetric(points, Hue, true)

	for i := range points {
		if points[i] != original[i] {
			t.Errorf("stable sort reordered equal elements: index %d is %v, want %v", i, points[i], original[i])
		}
	}
}

func TestSortByMetricInPlace(t *testing.T) {
	points := []Point{
		{R: 255, G: 255, B: 255},
		{},
	}

	SortByMetric(points, Brightness, true)

	if points[0] != (Point{}) {
		t.Errorf("in-place ascending sort: first element = %v, want black", points[0])
	}
}
