// Package cli provides the command-line interface for Paletta.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/colourlab/paletta/internal/colour"
)

// formatPalette formats the palette according to the specified format.
func formatPalette(palette *colour.Palette, format string, showPreview bool) (string, error) {
	switch format {
	case "hex":
		return formatHex(palette, showPreview), nil
	case "rgb":
		return formatRGB(palette, showPreview), nil
	case "json":
		jsonBytes, err := palette.ToJSON()
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(jsonBytes) + "\n", nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: hex, rgb, json)", format)
	}
}

// formatHex formats the palette as hex colour codes, one per line.
func formatHex(palette *colour.Palette, showPreview bool) string {
	var b strings.Builder
	for _, rgb := range palette.ToRGBSlice() {
		if showPreview {
			b.WriteString(colour.FormatColourWithPreview(rgb, 8))
		} else {
			b.WriteString(rgb.Hex())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// formatRGB formats the palette as rgb(r, g, b) values, one per line.
func formatRGB(palette *colour.Palette, showPreview bool) string {
	var b strings.Builder
	for _, rgb := range palette.ToRGBSlice() {
		if showPreview {
			b.WriteString(colour.ColourPreview(rgb, 8))
			b.WriteString("  ")
		}
		b.WriteString(rgb.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// writeOutput writes formatted output to a file, or stdout when path is empty.
func writeOutput(output, path string) error {
	if path == "" {
		fmt.Print(output)
		return nil
	}

	if err := os.WriteFile(path, []byte(output), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	logger.Debug("output written", "path", path)
	return nil
}
