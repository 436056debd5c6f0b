// Framelight - accent colour extraction for slideshows
//
// Framelight derives a representative accent colour from photos and video
// frames so a slideshow UI can theme itself to match the current asset.
package main

import (
	"os"

	"github.com/framelight/framelight/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
