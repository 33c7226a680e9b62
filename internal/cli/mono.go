// Package cli provides the command-line interface for Paletta.
package cli

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/colourlab/paletta/internal/colour"
)

var (
	// Mono command flags
	monoSteps       int
	monoFormat      string
	monoOutput      string
	monoShowPreview bool
)

// monoCmd represents the mono command.
var monoCmd = &cobra.Command{
	Use:   "mono <hex-colour>",
	Short: "Derive a monochromatic gradient from a base colour",
	Long: `Derive a gradient of colours sharing the hue of a base colour.

The gradient runs from one end of the hue family through the base colour to
the other, with --steps variants on each side of the original. The base
colour is given as a hex code, with or without the leading #.

Examples:
  # Seven-step gradient around a teal (3 steps each side plus the base)
  paletta mono '#2a9d8f'

  # A tighter gradient with previews
  paletta mono --steps 1 --preview 2a9d8f

  # JSON output written to a file
  paletta mono --format json --output gradient.json '#e76f51'`,
	Args: cobra.ExactArgs(1),
	RunE: runMono,
}

func init() {
	monoCmd.Flags().IntVar(&monoSteps, "steps", colour.DefaultMonochromaticSteps, "gradient steps on each side of the base colour")
	monoCmd.Flags().StringVarP(&monoFormat, "format", "f", "hex", "output format (hex, rgb, json)")
	monoCmd.Flags().StringVarP(&monoOutput, "output", "o", "", "output file (default: stdout)")
	monoCmd.Flags().BoolVar(&monoShowPreview, "preview", false, "show colour previews in terminal")
}

// runMono executes the mono command.
func runMono(cmd *cobra.Command, args []string) error {
	if monoSteps < 0 {
		return fmt.Errorf("steps cannot be negative, got %d", monoSteps)
	}

	base, err := parseHexColour(args[0])
	if err != nil {
		return err
	}
	logger.Debug("expanding base colour", "colour", base.RGB().Hex(), "steps", monoSteps)

	gradient := colour.Monochromatic(base, monoSteps)

	output, err := formatPalette(colour.NewPalette(gradient), monoFormat, monoShowPreview)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	return writeOutput(output, monoOutput)
}

// parseHexColour parses a hex colour code, tolerating a missing # prefix.
func parseHexColour(s string) (colour.Point, error) {
	if len(s) > 0 && s[0] != '#' {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colour.Point{}, fmt.Errorf("invalid colour %q: expected a hex code like #1a2b3c", s)
	}
	r, g, b := c.RGB255()
	return colour.Point{R: float64(r), G: float64(g), B: float64(b)}, nil
}
