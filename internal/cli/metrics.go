// Package cli provides the command-line interface for Paletta.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/colourlab/paletta/internal/colour"
)

// metricsCmd lists the metrics available for palette sorting.
var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "List available sorting metrics",
	Long:  `List the colour metrics that can be passed to the --sort flag of extract.`,
	Run: func(cmd *cobra.Command, args []string) {
		descriptions := map[colour.Metric]string{
			colour.MetricLuminance:  "WCAG relative luminance (perceptual, 0-1)",
			colour.MetricBrightness: "Euclidean magnitude from black (0-441)",
			colour.MetricHue:        "HSV hue in degrees (0-360)",
			colour.MetricSaturation: "HSV saturation in percent (0-100)",
			colour.MetricValue:      "HSV value in percent (0-100)",
		}
		for _, m := range colour.ValidMetrics() {
			fmt.Printf("%-12s %s\n", m, descriptions[m])
		}
	},
}
