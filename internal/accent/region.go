package accent

// Region is a rectangular sub-area of a pixel source, in sampled-buffer
// coordinates. The sampler only produces region descriptors; the frequency
// analyser does the reading.
type Region struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Aspect ratio thresholds for the region heuristics.
const (
	portraitAspectMax  = 1.0
	splitViewAspectMin = 2.5
)

// regionsFor selects which sub-rectangles of the source to analyse. The
// heuristics are evaluated in precedence order:
//
//  1. portrait video centre crop (drops edge letterbox bars),
//  2. split-view left/right halves, each restricted to its lower third,
//  3. lower third of the frame,
//  4. full frame.
//
// A split-view selection returns two regions; every other selection returns
// one.
func regionsFor(src PixelSource, video bool, opts Options) []Region {
	w, h := src.Width(), src.Height()
	aspect := src.AspectRatio()

	if opts.AnalyzePortraitVideo && video && aspect < portraitAspectMax {
		return []Region{centreCrop(w, h)}
	}

	if opts.HandleSplitView && aspect > splitViewAspectMin {
		left := lowerThird(Region{X: 0, Y: 0, Width: w / 2, Height: h})
		right := lowerThird(Region{X: w / 2, Y: 0, Width: w - w/2, Height: h})
		return []Region{left, right}
	}

	if opts.SampleLowerThird {
		return []Region{lowerThird(Region{X: 0, Y: 0, Width: w, Height: h})}
	}

	return []Region{{X: 0, Y: 0, Width: w, Height: h}}
}

// centreCrop returns a centred region covering 60% of the width and 80% of
// the height, enough to drop portrait-video letterbox bars.
func centreCrop(w, h int) Region {
	cw := w * 60 / 100
	ch := h * 80 / 100
	return Region{
		X:      (w - cw) / 2,
		Y:      (h - ch) / 2,
		Width:  cw,
		Height: ch,
	}
}

// lowerThird restricts a region to its vertical band from 67% down to 100%
// of its height.
func lowerThird(r Region) Region {
	offset := r.Height * 67 / 100
	return Region{
		X:      r.X,
		Y:      r.Y + offset,
		Width:  r.Width,
		Height: r.Height - offset,
	}
}
