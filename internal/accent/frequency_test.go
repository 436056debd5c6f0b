package accent

import (
	"reflect"
	"testing"

	"github.com/framelight/framelight/internal/colour"
)

// fillBuffer builds an RGBA buffer with a per-pixel colour function.
func fillBuffer(w, h int, at func(x, y int) [4]uint8) *Buffer {
	pix := make([]uint8, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px := at(x, y)
			off := (y*w + x) * 4
			copy(pix[off:off+4], px[:])
		}
	}
	return NewBuffer(w, h, pix)
}

func solidBuffer(w, h int, r, g, b, a uint8) *Buffer {
	return fillBuffer(w, h, func(x, y int) [4]uint8 {
		return [4]uint8{r, g, b, a}
	})
}

func fullRegion(src PixelSource) Region {
	return Region{X: 0, Y: 0, Width: src.Width(), Height: src.Height()}
}

func TestQuantize(t *testing.T) {
	tests := []struct {
		in   uint8
		want uint8
	}{
		{0, 0},
		{23, 0},
		{24, 24},
		{47, 24},
		{128, 120},
		{255, 240},
	}

	for _, tt := range tests {
		if got := quantize(tt.in); got != tt.want {
			t.Errorf("quantize(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestBuildFrequencySolidColour(t *testing.T) {
	src := solidBuffer(20, 20, 200, 100, 50, 255)
	table := buildFrequency(src, fullRegion(src), true)

	if len(table) != 1 {
		t.Fatalf("table has %d buckets, want 1", len(table))
	}

	for _, c := range table {
		want := colour.RGB{R: 192, G: 96, B: 48}
		if c.colour != want {
			t.Errorf("bucket colour = %v, want %v", c.colour, want)
		}
		// 400 pixels at stride 4 gives 100 samples.
		if c.count != 100 {
			t.Errorf("bucket count = %d, want 100", c.count)
		}
		if c.luminance != colour.Luminance(want) {
			t.Errorf("bucket luminance %v does not match recomputed %v", c.luminance, colour.Luminance(want))
		}
		if c.saturation != colour.Saturation(want) {
			t.Errorf("bucket saturation %v does not match recomputed %v", c.saturation, colour.Saturation(want))
		}
	}
}

func TestBuildFrequencyDiscardsTransparent(t *testing.T) {
	src := solidBuffer(10, 10, 200, 100, 50, 127)
	table := buildFrequency(src, fullRegion(src), false)

	if len(table) != 0 {
		t.Errorf("transparent samples produced %d buckets, want 0", len(table))
	}
}

func TestBuildFrequencyIgnoresNearBlack(t *testing.T) {
	src := solidBuffer(10, 10, 29, 29, 29, 255)

	if table := buildFrequency(src, fullRegion(src), true); len(table) != 0 {
		t.Errorf("near-black samples produced %d buckets with filtering on, want 0", len(table))
	}

	if table := buildFrequency(src, fullRegion(src), false); len(table) != 1 {
		t.Errorf("near-black samples produced %d buckets with filtering off, want 1", len(table))
	}
}

func TestBuildFrequencyNearBlackNeedsAllChannelsLow(t *testing.T) {
	// One channel at the threshold keeps the sample.
	src := solidBuffer(10, 10, 29, 30, 29, 255)
	table := buildFrequency(src, fullRegion(src), true)

	if len(table) != 1 {
		t.Errorf("sample with one channel >= 30 produced %d buckets, want 1", len(table))
	}
}

func TestBuildFrequencyRespectsRegion(t *testing.T) {
	// Left half red, right half blue; a left-half region must only see red.
	src := fillBuffer(20, 20, func(x, y int) [4]uint8 {
		if x < 10 {
			return [4]uint8{220, 30, 30, 255}
		}
		return [4]uint8{30, 30, 220, 255}
	})

	table := buildFrequency(src, Region{X: 0, Y: 0, Width: 10, Height: 20}, true)

	if len(table) != 1 {
		t.Fatalf("table has %d buckets, want 1", len(table))
	}
	for _, c := range table {
		if c.colour.R < c.colour.B {
			t.Errorf("left-half region picked up blue: %v", c.colour)
		}
	}
}

func TestBuildFrequencyDeterministic(t *testing.T) {
	src := fillBuffer(23, 17, func(x, y int) [4]uint8 {
		return [4]uint8{uint8(x * 11), uint8(y * 13), uint8((x + y) * 7), 255}
	})

	first := buildFrequency(src, fullRegion(src), true)
	second := buildFrequency(src, fullRegion(src), true)

	if len(first) != len(second) {
		t.Fatalf("repeated scans produced %d vs %d buckets", len(first), len(second))
	}
	for key, c := range first {
		other, ok := second[key]
		if !ok {
			t.Fatalf("bucket %06x missing from second scan", key)
		}
		if !reflect.DeepEqual(*c, *other) {
			t.Errorf("bucket %06x differs between scans: %+v vs %+v", key, *c, *other)
		}
	}
}
