package accent

import "errors"

// Sentinel errors for the extraction failure taxonomy. All of them are
// recovered inside the extractor and converted to the fallback colour; the
// only error that reaches a caller is a failed image load with no fallback
// colour configured.
var (
	// ErrSourceNotReady reports a video frame requested before the source
	// reached a minimal decode state.
	ErrSourceNotReady = errors.New("pixel source not ready")

	// ErrLoadFailure reports an image source that failed to load or decode.
	ErrLoadFailure = errors.New("image source failed to load")

	// ErrEmptyRegion reports a sampled region with zero qualifying samples
	// after filtering.
	ErrEmptyRegion = errors.New("no qualifying samples in region")

	// ErrInvalidFallback reports a configured fallback string that is not a
	// valid 6-hex-digit colour.
	ErrInvalidFallback = errors.New("invalid fallback colour")
)
