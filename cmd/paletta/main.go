// Paletta - a colour palette extraction toolkit
//
// Paletta distils representative colour palettes from images, orders them by
// perceptual metrics, and derives monochromatic gradients from a base colour.
package main

import (
	"os"

	"github.com/colourlab/paletta/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
