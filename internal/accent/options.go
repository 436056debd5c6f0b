package accent

import "fmt"

// Options configures a single extraction call. All fields are independently
// toggleable; DefaultOptions returns the documented defaults. Options are
// passed by value per call and the engine holds no state across calls.
type Options struct {
	// SampleSize is the side length of the square sampling canvas that
	// sources are downscaled onto before analysis.
	SampleSize int

	// FallbackColour is a hex colour ("#rrggbb") used on any failure path.
	// When empty, a hardcoded neutral grey is used instead, except for a
	// failed image load where the error propagates to the caller.
	FallbackColour string

	// SampleLowerThird restricts analysis to the bottom 33% of the frame,
	// biasing towards foreground subjects and away from sky.
	SampleLowerThird bool

	// AnalyzePortraitVideo centre-crops portrait video frames (aspect ratio
	// below 1.0) to drop letterbox bars at the edges.
	AnalyzePortraitVideo bool

	// HandleSplitView analyses the left and right halves independently for
	// very wide sources (aspect ratio above 2.5) and keeps the better half.
	HandleSplitView bool

	// IgnoreBlackBackground discards near-black samples (all channels below
	// 30), filtering letterbox bars and dark borders.
	IgnoreBlackBackground bool

	// EnableContrastBoost lifts the lightness of an overly dark winner so
	// the resulting theme stays legible.
	EnableContrastBoost bool

	// MinLuminance and MaxLuminance bound the strict selection pass.
	MinLuminance float64
	MaxLuminance float64

	// UseFallbackOnly bypasses analysis entirely and returns the configured
	// fallback colour. Used for diagnostics and for zero-cost theming
	// before the first asset loads.
	UseFallbackOnly bool
}

// DefaultOptions returns the default extraction options.
func DefaultOptions() Options {
	return Options{
		SampleSize:            50,
		SampleLowerThird:      true,
		AnalyzePortraitVideo:  true,
		HandleSplitView:       true,
		IgnoreBlackBackground: true,
		EnableContrastBoost:   true,
		MinLuminance:          0.2,
		MaxLuminance:          0.85,
	}
}

// Validate validates the extraction options.
func (o Options) Validate() error {
	if o.SampleSize < 1 {
		return fmt.Errorf("sample size must be at least 1, got %d", o.SampleSize)
	}
	if o.MinLuminance < 0 || o.MinLuminance > 1 {
		return fmt.Errorf("min luminance out of range [0, 1]: %g", o.MinLuminance)
	}
	if o.MaxLuminance < 0 || o.MaxLuminance > 1 {
		return fmt.Errorf("max luminance out of range [0, 1]: %g", o.MaxLuminance)
	}
	if o.MinLuminance > o.MaxLuminance {
		return fmt.Errorf("min luminance %g exceeds max luminance %g", o.MinLuminance, o.MaxLuminance)
	}
	return nil
}
