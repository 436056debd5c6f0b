// Package cli provides the command-line interface for framelight.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/framelight/framelight/internal/version"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "framelight",
	Short: "Accent colour extraction for photo and video slideshows",
	Long: `Framelight derives a representative accent colour from photos and video
frames so slideshow UIs can theme backgrounds, text and overlays to match
the content that is currently on screen.

It samples a downscaled copy of the source, filters letterbox bars and
transparent pixels, and picks the most suitable colour under WCAG-aware
scoring, together with a matching text colour and a complementary accent.`,
	Version:      version.Short(),
	SilenceUsage: true,
}

// NewRootCmd returns the fully wired root command.
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(accentCmd)
}

// newLogger builds the application logger. Debug level under --verbose,
// otherwise logging is off.
func newLogger(cmd *cobra.Command) hclog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")

	level := hclog.Off
	if verbose {
		level = hclog.Debug
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "framelight",
		Level:  level,
		Output: os.Stderr,
	})
}

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
