// Package cli provides the command-line interface for Paletta.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/colourlab/paletta/internal/colour"
	"github.com/colourlab/paletta/internal/image"
)

var (
	// Extract command flags
	extractColours     int
	extractAlgorithm   string
	extractIterations  int
	extractSort        metricValue
	extractDescending  bool
	extractFormat      string
	extractOutput      string
	extractShowPreview bool
)

// extractCmd represents the extract command.
var extractCmd = &cobra.Command{
	Use:   "extract <image>",
	Short: "Extract a colour palette from an image",
	Long: `Extract a colour palette from an image using k-means clustering or
dominant-colour counting.

The image argument may be a local file, a directory (a random image is
picked), or an HTTP(S) URL.

Supported image formats: JPEG, PNG, GIF, WebP, BMP, TIFF

Examples:
  # Extract 6 colours (default) from an image
  paletta extract wallpaper.jpg

  # Extract 8 colours sorted dark to light
  paletta extract --colours 8 --sort luminance wallpaper.png

  # Sort by hue, most saturated end first, with terminal previews
  paletta extract -s hue --descending --preview wallpaper.jpg

  # Extract colours from a URL and output as JSON
  paletta extract --format json https://example.com/wallpaper.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().IntVarP(&extractColours, "colours", "c", colour.DefaultClusterCount, "number of colours to extract (1-256)")
	extractCmd.Flags().StringVarP(&extractAlgorithm, "algorithm", "a", string(colour.AlgorithmKMeans), "extraction algorithm (kmeans, dominant)")
	extractCmd.Flags().IntVar(&extractIterations, "iterations", colour.DefaultMaxIterations, "k-means iteration budget")
	extractCmd.Flags().VarP(&extractSort, "sort", "s", "sort palette by metric (luminance, brightness, hue, saturation, value)")
	extractCmd.Flags().BoolVar(&extractDescending, "descending", false, "sort in descending metric order")
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", "hex", "output format (hex, rgb, json)")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "output file (default: stdout)")
	extractCmd.Flags().BoolVar(&extractShowPreview, "preview", false, "show colour previews in terminal")
}

// runExtract executes the extract command.
func runExtract(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	config := colour.ExtractorConfig{
		Algorithm:     colour.Algorithm(extractAlgorithm),
		ColourCount:   extractColours,
		MaxIterations: extractIterations,
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := image.ValidateImagePath(args[0]); err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}

	imagePath, err := image.ResolveImagePath(args[0])
	if err != nil {
		return fmt.Errorf("failed to resolve image path: %w", err)
	}
	logger.Debug("loading image", "path", imagePath)

	loader := image.NewSmartLoader()
	img, err := loader.Load(ctx, imagePath)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	bounds := img.Bounds()
	logger.Debug("image loaded", "width", bounds.Dx(), "height", bounds.Dy())

	points := image.NewSampler().Sample(img)
	if len(points) == 0 {
		return fmt.Errorf("no pixels found in image")
	}
	logger.Debug("pixels sampled", "points", len(points))

	extractor, err := colour.NewExtractor(config.Algorithm, config.MaxIterations)
	if err != nil {
		return fmt.Errorf("failed to create extractor: %w", err)
	}

	palette, err := extractor.Extract(ctx, points, config.ColourCount)
	if err != nil {
		return fmt.Errorf("failed to extract colours: %w", err)
	}
	logger.Debug("palette extracted", "algorithm", config.Algorithm, "colours", palette.Len())

	if m := extractSort.Metric(); m != "" {
		metric, err := colour.MetricFunc(m)
		if err != nil {
			return err
		}
		palette = palette.Sorted(metric, !extractDescending)
		logger.Debug("palette sorted", "metric", m, "descending", extractDescending)
	}

	output, err := formatPalette(palette, extractFormat, extractShowPreview)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	return writeOutput(output, extractOutput)
}
