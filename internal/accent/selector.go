package accent

import (
	"math"

	"github.com/framelight/framelight/internal/colour"
)

// selectOptimal picks the best candidate from a frequency table under
// progressively relaxed constraints:
//
//  1. strict pass bounded by the configured luminance range, scored by a
//     composite of frequency, saturation and mid-luminance proximity,
//  2. relaxed pass with fixed bounds [0.1, 0.9],
//  3. most-frequent candidate regardless of luminance or saturation.
//
// The relaxed bounds are deliberately not derived from the options; only the
// strict pass is configurable. Returns false when the table is empty.
func selectOptimal(table map[uint32]*candidate, opts Options) (*candidate, bool) {
	if len(table) == 0 {
		return nil, false
	}

	if best := bestScored(table, opts.MinLuminance, opts.MaxLuminance); best != nil {
		return best, true
	}

	if best := bestScored(table, 0.1, 0.9); best != nil {
		return best, true
	}

	return mostFrequent(table), true
}

// bestScored returns the highest-scoring candidate within the luminance
// bounds, or nil when no candidate qualifies. Ties are broken by count and
// then by packed colour key so the result never depends on map iteration
// order.
func bestScored(table map[uint32]*candidate, minLum, maxLum float64) *candidate {
	var best *candidate
	bestScore := -1.0

	for _, c := range table {
		if c.luminance < minLum || c.luminance > maxLum {
			continue
		}
		score := compositeScore(c)
		if best == nil || score > bestScore || (score == bestScore && preferred(c, best)) {
			best = c
			bestScore = score
		}
	}

	return best
}

// compositeScore blends how often a colour appears, how saturated it is, and
// how close it sits to mid luminance. Colours brighter than 0.25 luminance
// get a 1.2x bonus so dim but frequent buckets don't dominate.
func compositeScore(c *candidate) float64 {
	frequency := math.Min(float64(c.count)/10.0, 1.0)
	saturation := math.Min(c.saturation*1.5, 1.0)
	midLum := 1.0 - math.Abs(c.luminance-0.5)

	score := 0.4*frequency + 0.3*saturation + 0.3*midLum
	if c.luminance > 0.25 {
		score *= 1.2
	}
	return score
}

// mostFrequent returns the candidate with the highest count, with the same
// deterministic tie-break as bestScored.
func mostFrequent(table map[uint32]*candidate) *candidate {
	var best *candidate
	for _, c := range table {
		if best == nil || c.count > best.count || (c.count == best.count && preferred(c, best)) {
			best = c
		}
	}
	return best
}

// preferred orders candidates with equal primary rank: higher count first,
// then lower packed key.
func preferred(a, b *candidate) bool {
	if a.count != b.count {
		return a.count > b.count
	}
	return packKey(a.colour) < packKey(b.colour)
}

func packKey(c colour.RGB) uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// regionScore ranks the winning candidate of one split-view half: saturation
// matters more than mid-luminance proximity.
func regionScore(c *candidate) float64 {
	return 0.6*c.saturation + 0.4*(1.0-math.Abs(c.luminance-0.5))
}

// betterRegion picks between the best candidates of two split-view halves.
// A half that produced no candidate loses by default.
func betterRegion(a, b *candidate) *candidate {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case regionScore(b) > regionScore(a):
		return b
	default:
		return a
	}
}

// boostContrast lifts an overly dark colour via HSL: lightness is raised to
// at least 0.4, never lowered.
func boostContrast(c colour.RGB) colour.RGB {
	h, s, l := colour.RGBToHSL(c)
	if l >= 0.4 {
		return c
	}
	return colour.HSLToRGB(h, s, 0.4)
}
