package accent

import "github.com/framelight/framelight/internal/colour"

// Sampling and quantization constants. The stride is part of the engine's
// determinism contract: identical buffers and options must produce identical
// frequency tables, so it never varies with buffer size.
const (
	// sampleStride processes every 4th pixel of a region.
	sampleStride = 4

	// alphaOpaqueMin is the minimum alpha for a sample to count; anything
	// below is treated as transparent.
	alphaOpaqueMin = 128

	// blackThreshold marks a sample near-black when all three channels are
	// below it. Letterbox bars and dark borders fall under this.
	blackThreshold = 30

	// bucketWidth is the quantization bucket size per channel. A width of
	// 24 merges near-duplicate colours and bounds the table to at most
	// ceil(256/24)^3 = 1331 buckets.
	bucketWidth = 24
)

// candidate is one quantized-colour bucket in a frequency table. Luminance
// and saturation are computed once per bucket, not per sample.
type candidate struct {
	colour     colour.RGB
	count      uint32
	luminance  float64
	saturation float64
}

// buildFrequency scans a region of the source at a fixed stride and counts
// quantized colours. Samples that are mostly transparent are always
// discarded; near-black samples are discarded when ignoreBlack is set. The
// returned table maps packed quantized RGB keys to candidates; iteration
// order carries no meaning.
func buildFrequency(src PixelSource, reg Region, ignoreBlack bool) map[uint32]*candidate {
	pix := src.Pix()
	stride := src.Width() * 4
	table := make(map[uint32]*candidate)

	sample := 0
	for y := reg.Y; y < reg.Y+reg.Height; y++ {
		row := y * stride
		for x := reg.X; x < reg.X+reg.Width; x++ {
			idx := sample
			sample++
			if idx%sampleStride != 0 {
				continue
			}

			off := row + x*4
			if off+3 >= len(pix) {
				continue
			}

			r, g, b, a := pix[off], pix[off+1], pix[off+2], pix[off+3]
			if a < alphaOpaqueMin {
				continue
			}
			if ignoreBlack && r < blackThreshold && g < blackThreshold && b < blackThreshold {
				continue
			}

			qr := quantize(r)
			qg := quantize(g)
			qb := quantize(b)
			key := uint32(qr)<<16 | uint32(qg)<<8 | uint32(qb)

			if c, ok := table[key]; ok {
				c.count++
				continue
			}

			rgb := colour.RGB{R: qr, G: qg, B: qb}
			table[key] = &candidate{
				colour:     rgb,
				count:      1,
				luminance:  colour.Luminance(rgb),
				saturation: colour.Saturation(rgb),
			}
		}
	}

	return table
}

// quantize floors a channel to its bucket boundary.
func quantize(v uint8) uint8 {
	return v / bucketWidth * bucketWidth
}
