// Package accent implements the dominant-colour extraction engine. Given a
// pixel buffer sourced from an image or a video frame it produces a single
// representative colour that the surrounding UI can theme itself with,
// robust to letterboxed portrait video, split-view panoramas, near-black
// frames and failed loads.
package accent

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/framelight/framelight/internal/colour"
)

// neutralGrey is the hardcoded last-resort colour when no usable fallback is
// configured.
var neutralGrey = colour.RGB{R: 107, G: 114, B: 128}

// Colour is the extraction result: a hex string (lowercase, "#rrggbb"), the
// RGB triple it encodes, and its WCAG relative luminance. The luminance is
// always recomputed from the RGB value, never copied from an intermediate
// candidate.
type Colour struct {
	Hex       string     `json:"hex"`
	RGB       colour.RGB `json:"rgb"`
	Luminance float64    `json:"luminance"`
}

// newColour builds a Colour from an RGB value, recomputing luminance so the
// result is always internally consistent.
func newColour(rgb colour.RGB) Colour {
	return Colour{
		Hex:       rgb.Hex(),
		RGB:       rgb,
		Luminance: colour.Luminance(rgb),
	}
}

// Extractor composes region sampling, frequency analysis and candidate
// selection into the two public entry points. It holds no cross-call state;
// concurrent extractions are fully independent.
type Extractor struct {
	log hclog.Logger
}

// New creates an Extractor. A nil logger disables logging.
func New(log hclog.Logger) *Extractor {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Extractor{log: log}
}

// FromImage extracts the dominant colour of an externally loading image.
// Resolve is the only point the call can block on; a load failure is
// converted to the configured fallback colour. The single case that returns
// an error is a failed load with no fallback colour configured at all.
func (e *Extractor) FromImage(ctx context.Context, src ImageSource, opts Options) (Colour, error) {
	if opts.UseFallbackOnly {
		return e.fallback(opts), nil
	}

	px, err := src.Resolve(ctx)
	if err != nil {
		e.log.Debug("image source failed to resolve", "error", err)
		if opts.FallbackColour == "" {
			return Colour{}, fmt.Errorf("%w: %v", ErrLoadFailure, err)
		}
		return e.fallback(opts), nil
	}

	c, err := e.analyse(px, false, opts)
	if err != nil {
		e.log.Debug("image analysis failed, using fallback", "error", err)
		return e.fallback(opts), nil
	}
	return c, nil
}

// FromFrame extracts the dominant colour of an already decoded video frame.
// It never blocks and never fails outward: an unready source, an empty
// region or a zero-dimension frame all yield the fallback colour.
func (e *Extractor) FromFrame(src FrameSource, opts Options) Colour {
	if opts.UseFallbackOnly {
		return e.fallback(opts)
	}

	if src == nil || !src.Ready() {
		e.log.Debug("video frame not ready, using fallback")
		return e.fallback(opts)
	}

	c, err := e.analyse(src, true, opts)
	if err != nil {
		e.log.Debug("frame analysis failed, using fallback", "error", err)
		return e.fallback(opts)
	}
	return c
}

// analyse runs the sampling pipeline over one pixel source.
func (e *Extractor) analyse(src PixelSource, video bool, opts Options) (Colour, error) {
	if err := opts.Validate(); err != nil {
		return Colour{}, err
	}
	if src.Width() <= 0 || src.Height() <= 0 || len(src.Pix()) == 0 {
		return Colour{}, fmt.Errorf("%w: empty source", ErrEmptyRegion)
	}

	regions := regionsFor(src, video, opts)

	var winner *candidate
	if len(regions) == 2 {
		// Split view: analyse both halves independently and keep the
		// better one.
		var left, right *candidate
		if c, ok := selectOptimal(buildFrequency(src, regions[0], opts.IgnoreBlackBackground), opts); ok {
			left = c
		}
		if c, ok := selectOptimal(buildFrequency(src, regions[1], opts.IgnoreBlackBackground), opts); ok {
			right = c
		}
		winner = betterRegion(left, right)
	} else {
		if c, ok := selectOptimal(buildFrequency(src, regions[0], opts.IgnoreBlackBackground), opts); ok {
			winner = c
		}
	}

	if winner == nil {
		return Colour{}, ErrEmptyRegion
	}

	rgb := winner.colour
	if opts.EnableContrastBoost && winner.luminance < 0.3 {
		rgb = boostContrast(rgb)
	}

	result := newColour(rgb)
	e.log.Debug("extracted accent colour",
		"hex", result.Hex,
		"luminance", result.Luminance,
		"regions", len(regions),
		"video", video)
	return result, nil
}

// fallback resolves the configured fallback colour, degrading to the neutral
// grey when the configuration is missing or unparseable.
func (e *Extractor) fallback(opts Options) Colour {
	if opts.FallbackColour == "" {
		return newColour(neutralGrey)
	}

	rgb, err := colour.ParseHex(opts.FallbackColour)
	if err != nil {
		e.log.Warn("configured fallback colour is invalid, using neutral grey",
			"fallback", opts.FallbackColour,
			"error", fmt.Errorf("%w: %v", ErrInvalidFallback, err))
		return newColour(neutralGrey)
	}
	return newColour(rgb)
}
