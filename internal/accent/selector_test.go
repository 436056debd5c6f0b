package accent

import (
	"math"
	"testing"

	"github.com/framelight/framelight/internal/colour"
)

// makeTable builds a frequency table from explicit candidates.
func makeTable(cands ...*candidate) map[uint32]*candidate {
	table := make(map[uint32]*candidate, len(cands))
	for _, c := range cands {
		table[packKey(c.colour)] = c
	}
	return table
}

func newCandidate(rgb colour.RGB, count uint32) *candidate {
	return &candidate{
		colour:     rgb,
		count:      count,
		luminance:  colour.Luminance(rgb),
		saturation: colour.Saturation(rgb),
	}
}

func TestSelectOptimalEmptyTable(t *testing.T) {
	if _, ok := selectOptimal(nil, DefaultOptions()); ok {
		t.Error("selectOptimal on an empty table should report no candidate")
	}
}

func TestSelectOptimalStrictPass(t *testing.T) {
	// A vibrant mid-luminance colour must beat a more frequent dull one.
	vibrant := newCandidate(colour.RGB{R: 216, G: 96, B: 48}, 8)
	dull := newCandidate(colour.RGB{R: 144, G: 144, B: 144}, 10)

	got, ok := selectOptimal(makeTable(vibrant, dull), DefaultOptions())
	if !ok {
		t.Fatal("selectOptimal found no candidate")
	}
	if got != vibrant {
		t.Errorf("selected %v, want vibrant %v", got.colour, vibrant.colour)
	}
}

func TestSelectOptimalBrightnessBonus(t *testing.T) {
	bright := newCandidate(colour.RGB{R: 168, G: 168, B: 96}, 5)
	if bright.luminance <= 0.25 {
		t.Fatalf("test colour luminance %v, want > 0.25", bright.luminance)
	}

	base := 0.4*math.Min(float64(bright.count)/10.0, 1.0) +
		0.3*math.Min(bright.saturation*1.5, 1.0) +
		0.3*(1.0-math.Abs(bright.luminance-0.5))

	if got := compositeScore(bright); math.Abs(got-base*1.2) > 1e-12 {
		t.Errorf("compositeScore = %v, want %v with 1.2 bonus", got, base*1.2)
	}
}

func TestSelectOptimalRelaxedPass(t *testing.T) {
	// Luminance 0.12-ish: outside the strict [0.2, 0.85] bounds but inside
	// the relaxed [0.1, 0.9] bounds.
	dark := newCandidate(colour.RGB{R: 96, G: 96, B: 120}, 6)
	if dark.luminance >= 0.2 || dark.luminance <= 0.1 {
		t.Fatalf("test colour luminance %v, want within (0.1, 0.2)", dark.luminance)
	}

	got, ok := selectOptimal(makeTable(dark), DefaultOptions())
	if !ok {
		t.Fatal("selectOptimal found no candidate")
	}
	if got != dark {
		t.Errorf("relaxed pass did not select the only candidate")
	}
}

func TestSelectOptimalFrequencyFallback(t *testing.T) {
	// Both candidates are outside even the relaxed bounds; the more
	// frequent one must win.
	nearBlack := newCandidate(colour.RGB{R: 24, G: 24, B: 24}, 40)
	nearWhite := newCandidate(colour.RGB{R: 248, G: 248, B: 248}, 12)

	got, ok := selectOptimal(makeTable(nearBlack, nearWhite), DefaultOptions())
	if !ok {
		t.Fatal("selectOptimal found no candidate")
	}
	if got != nearBlack {
		t.Errorf("frequency fallback selected %v, want %v", got.colour, nearBlack.colour)
	}
}

func TestSelectOptimalDeterministicTieBreak(t *testing.T) {
	// Two identical-score candidates: the tie must resolve by key, not by
	// map iteration order.
	a := newCandidate(colour.RGB{R: 24, G: 24, B: 24}, 7)
	b := newCandidate(colour.RGB{R: 0, G: 0, B: 0}, 7)

	for i := 0; i < 20; i++ {
		got, ok := selectOptimal(makeTable(a, b), DefaultOptions())
		if !ok {
			t.Fatal("selectOptimal found no candidate")
		}
		if got != b {
			t.Fatalf("tie-break picked %v, want lower key %v", got.colour, b.colour)
		}
	}
}

func TestRegionScorePrefersSaturation(t *testing.T) {
	vibrantBlue := newCandidate(colour.RGB{R: 24, G: 72, B: 216}, 10)
	mutedGrey := newCandidate(colour.RGB{R: 120, G: 120, B: 120}, 10)

	if regionScore(vibrantBlue) <= regionScore(mutedGrey) {
		t.Errorf("regionScore(blue) = %v should exceed regionScore(grey) = %v",
			regionScore(vibrantBlue), regionScore(mutedGrey))
	}
}

func TestBetterRegion(t *testing.T) {
	blue := newCandidate(colour.RGB{R: 24, G: 72, B: 216}, 10)
	grey := newCandidate(colour.RGB{R: 120, G: 120, B: 120}, 10)

	tests := []struct {
		name string
		a, b *candidate
		want *candidate
	}{
		{name: "higher score wins", a: grey, b: blue, want: blue},
		{name: "order independent", a: blue, b: grey, want: blue},
		{name: "nil left loses by default", a: nil, b: grey, want: grey},
		{name: "nil right loses by default", a: blue, b: nil, want: blue},
		{name: "both nil", a: nil, b: nil, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := betterRegion(tt.a, tt.b); got != tt.want {
				t.Errorf("betterRegion = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBoostContrast(t *testing.T) {
	t.Run("dark colour is lifted to 0.4 lightness", func(t *testing.T) {
		boosted := boostContrast(colour.RGB{R: 48, G: 24, B: 24})
		_, _, l := colour.RGBToHSL(boosted)
		if math.Abs(l-0.4) > 0.01 {
			t.Errorf("boosted lightness = %v, want 0.4", l)
		}
	})

	t.Run("hue is preserved", func(t *testing.T) {
		in := colour.RGB{R: 72, G: 24, B: 24}
		h, _, _ := colour.RGBToHSL(in)
		bh, _, _ := colour.RGBToHSL(boostContrast(in))
		if colour.HueDistance(h, bh) > 2 {
			t.Errorf("hue moved from %v to %v", h, bh)
		}
	})

	t.Run("lightness is never lowered", func(t *testing.T) {
		in := colour.RGB{R: 200, G: 180, B: 160}
		if got := boostContrast(in); got != in {
			t.Errorf("light colour changed from %v to %v", in, got)
		}
	})
}
