package accent

import (
	"context"
	"image"

	"golang.org/x/image/draw"
)

// PixelSource is an immutable 2D grid of RGBA samples. It abstracts over a
// decoded image, a video frame snapshot, or a raw buffer, and is only read
// for the duration of one extraction call.
type PixelSource interface {
	// Width returns the width of the sampled buffer in pixels.
	Width() int

	// Height returns the height of the sampled buffer in pixels.
	Height() int

	// AspectRatio returns the width/height ratio of the original source,
	// which may differ from the sampled buffer's own ratio after scaling.
	AspectRatio() float64

	// Pix returns the raw samples in RGBA order, 4 bytes per pixel,
	// row-major. The returned slice must not be mutated.
	Pix() []uint8
}

// FrameSource is a PixelSource with a readiness signal. Video frames are
// analysed synchronously, so the caller must have a decoded frame available;
// Ready reports whether that minimal decode state has been reached.
type FrameSource interface {
	PixelSource

	// Ready reports whether a decoded frame is available for sampling.
	Ready() bool
}

// ImageSource resolves to pixel data once an externally loading image has
// decoded. Resolve is the single suspension point on the image path: it
// blocks until the image decodes or the load fails, with no partial results.
type ImageSource interface {
	Resolve(ctx context.Context) (PixelSource, error)
}

// Buffer is a PixelSource backed by a raw RGBA byte slice.
type Buffer struct {
	width  int
	height int
	aspect float64
	pix    []uint8
}

// NewBuffer creates a Buffer over raw RGBA bytes. The aspect ratio is
// derived from the buffer dimensions.
func NewBuffer(width, height int, pix []uint8) *Buffer {
	aspect := 0.0
	if height > 0 {
		aspect = float64(width) / float64(height)
	}
	return NewBufferWithAspect(width, height, aspect, pix)
}

// NewBufferWithAspect creates a Buffer whose reported aspect ratio is that
// of the original source rather than the buffer itself. Used when the buffer
// holds a downscaled sampling canvas.
func NewBufferWithAspect(width, height int, aspect float64, pix []uint8) *Buffer {
	return &Buffer{
		width:  width,
		height: height,
		aspect: aspect,
		pix:    pix,
	}
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int { return b.height }

// AspectRatio returns the original source's width/height ratio.
func (b *Buffer) AspectRatio() float64 { return b.aspect }

// Pix returns the raw RGBA samples.
func (b *Buffer) Pix() []uint8 { return b.pix }

// FromImage downscales a decoded image onto a square sampling canvas of the
// given side length and returns it as a Buffer. The original aspect ratio is
// preserved on the Buffer so region heuristics can still see it. Sources
// already at or below the canvas size are copied without scaling.
func FromImage(img image.Image, sampleSize int) *Buffer {
	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW == 0 || srcH == 0 {
		return NewBuffer(0, 0, nil)
	}

	aspect := float64(srcW) / float64(srcH)

	if srcW <= sampleSize && srcH <= sampleSize {
		canvas := image.NewRGBA(image.Rect(0, 0, srcW, srcH))
		draw.Copy(canvas, image.Point{}, img, bounds, draw.Src, nil)
		return NewBufferWithAspect(srcW, srcH, aspect, canvas.Pix)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, sampleSize, sampleSize))
	draw.ApproxBiLinear.Scale(canvas, canvas.Bounds(), img, bounds, draw.Src, nil)
	return NewBufferWithAspect(sampleSize, sampleSize, aspect, canvas.Pix)
}
