package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/framelight/framelight/internal/accent"
	"github.com/framelight/framelight/internal/colour"
	"github.com/framelight/framelight/internal/image"
)

var (
	// Accent command flags.
	accentFormat        string
	accentOutput        string
	accentShowPreview   bool
	accentSampleSize    int
	accentFallback      string
	accentLowerThird    bool
	accentSplitView     bool
	accentIgnoreBlack   bool
	accentContrastBoost bool
	accentMinLuminance  float64
	accentMaxLuminance  float64
	accentFallbackOnly  bool
)

// accentCmd represents the accent command.
var accentCmd = &cobra.Command{
	Use:   "accent <image>",
	Short: "Extract the accent colour from an image",
	Long: `Extract the dominant accent colour from an image, together with a
WCAG-compliant text colour and a complementary theming accent.

Supported image formats: JPEG, PNG, GIF, WebP

Examples:
  # Extract the accent colour of an image
  framelight accent photo.jpg

  # Extract with a colour preview in the terminal
  framelight accent --preview photo.png

  # Output accent, text and complementary colours as JSON
  framelight accent --format json photo.jpg

  # Analyse the whole frame instead of the lower third
  framelight accent --lower-third=false panorama.jpg

  # Use a theme colour whenever extraction cannot produce a result
  framelight accent --fallback '#336699' https://example.com/photo.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: runAccent,
}

func init() {
	accentCmd.Flags().StringVarP(&accentFormat, "format", "f", "hex", "output format (hex, rgb, json)")
	accentCmd.Flags().StringVarP(&accentOutput, "output", "o", "", "output file (default: stdout)")
	accentCmd.Flags().BoolVar(&accentShowPreview, "preview", false, "show colour previews in terminal")

	defaults := accent.DefaultOptions()
	accentCmd.Flags().IntVar(&accentSampleSize, "sample-size", defaults.SampleSize, "side length of the square sampling canvas")
	accentCmd.Flags().StringVar(&accentFallback, "fallback", "", "fallback colour (#rrggbb) used on any failure path")
	accentCmd.Flags().BoolVar(&accentLowerThird, "lower-third", defaults.SampleLowerThird, "restrict sampling to the bottom third of the frame")
	accentCmd.Flags().BoolVar(&accentSplitView, "split-view", defaults.HandleSplitView, "analyse left/right halves of very wide sources independently")
	accentCmd.Flags().BoolVar(&accentIgnoreBlack, "ignore-black", defaults.IgnoreBlackBackground, "discard near-black samples (letterbox bars, borders)")
	accentCmd.Flags().BoolVar(&accentContrastBoost, "contrast-boost", defaults.EnableContrastBoost, "lift the lightness of overly dark winners")
	accentCmd.Flags().Float64Var(&accentMinLuminance, "min-luminance", defaults.MinLuminance, "strict-pass lower luminance bound")
	accentCmd.Flags().Float64Var(&accentMaxLuminance, "max-luminance", defaults.MaxLuminance, "strict-pass upper luminance bound")
	accentCmd.Flags().BoolVar(&accentFallbackOnly, "fallback-only", false, "bypass analysis and return the fallback colour")
}

// accentOptions assembles engine options from the command flags.
func accentOptions() accent.Options {
	opts := accent.DefaultOptions()
	opts.SampleSize = accentSampleSize
	opts.FallbackColour = accentFallback
	opts.SampleLowerThird = accentLowerThird
	opts.HandleSplitView = accentSplitView
	opts.IgnoreBlackBackground = accentIgnoreBlack
	opts.EnableContrastBoost = accentContrastBoost
	opts.MinLuminance = accentMinLuminance
	opts.MaxLuminance = accentMaxLuminance
	opts.UseFallbackOnly = accentFallbackOnly
	return opts
}

// accentJSON is the JSON output shape of the accent command.
type accentJSON struct {
	Accent        accent.Colour `json:"accent"`
	Text          string        `json:"text"`
	Complementary string        `json:"complementary"`
}

// runAccent executes the accent command.
func runAccent(cmd *cobra.Command, args []string) error {
	imagePath := args[0]

	if err := image.ValidateImagePath(imagePath); err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}

	opts := accentOptions()
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	log := newLogger(cmd)
	extractor := accent.New(log)
	src := image.NewSource(imagePath, opts.SampleSize)

	result, err := extractor.FromImage(cmd.Context(), src, opts)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	text := colour.TextColour(result.RGB)
	comp := colour.Complementary(result.RGB)

	output, err := formatAccent(result, text, comp, accentFormat)
	if err != nil {
		return err
	}

	if accentOutput != "" {
		if err := os.WriteFile(accentOutput, []byte(output), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		return nil
	}

	fmt.Print(output)

	if accentShowPreview && term.IsTerminal(int(os.Stdout.Fd())) {
		printPreview(result, text, comp)
	}
	return nil
}

// formatAccent renders the extraction result in the requested format.
func formatAccent(result accent.Colour, text, comp colour.RGB, format string) (string, error) {
	switch strings.ToLower(format) {
	case "hex":
		return result.Hex + "\n", nil
	case "rgb":
		return result.RGB.String() + "\n", nil
	case "json":
		data, err := json.MarshalIndent(accentJSON{
			Accent:        result,
			Text:          text.Hex(),
			Complementary: comp.Hex(),
		}, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode JSON: %w", err)
		}
		return string(data) + "\n", nil
	default:
		return "", fmt.Errorf("unknown format: %s (valid formats: hex, rgb, json)", format)
	}
}

// printPreview renders colour swatches for terminals with truecolor support.
func printPreview(result accent.Colour, text, comp colour.RGB) {
	width := 16
	fmt.Printf("accent        %s %s\n", colour.PreviewWithText(result.RGB, result.Hex, width), result.RGB)
	fmt.Printf("text          %s %s\n", colour.PreviewWithText(text, text.Hex(), width), text)
	fmt.Printf("complementary %s %s\n", colour.PreviewWithText(comp, comp.Hex(), width), comp)
}
