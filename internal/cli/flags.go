// Package cli provides the command-line interface for Paletta.
package cli

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/colourlab/paletta/internal/colour"
)

// metricValue is a pflag.Value holding a validated colour metric name.
// An empty value means no metric was requested.
type metricValue colour.Metric

var _ pflag.Value = (*metricValue)(nil)

func (m *metricValue) String() string {
	return string(*m)
}

func (m *metricValue) Set(s string) error {
	if s == "" {
		*m = ""
		return nil
	}
	if !colour.IsValidMetric(colour.Metric(s)) {
		return fmt.Errorf("unknown metric %q (valid metrics: %v)", s, colour.ValidMetrics())
	}
	*m = metricValue(s)
	return nil
}

func (m *metricValue) Type() string {
	return "metric"
}

// Metric returns the selected metric, or "" when unset.
func (m *metricValue) Metric() colour.Metric {
	return colour.Metric(*m)
}
