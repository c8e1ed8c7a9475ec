package skyflock

import (
	"math"
	"testing"
)

func TestGlowFalloff(t *testing.T) {
	tests := []struct {
		dist, want float64
	}{
		{0, 1},
		{0.5, 0.5},
		{1, 0},
		{1.5, 0},
	}
	for _, tt := range tests {
		if got := glowFalloff(tt.dist); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("glowFalloff(%v) = %v, want %v", tt.dist, got, tt.want)
		}
	}

	prev := 1.0
	for d := 0.0; d < 1; d += 0.05 {
		v := glowFalloff(d)
		if v > prev {
			t.Fatalf("falloff increases at %v", d)
		}
		prev = v
	}
}

func TestGlowPixels(t *testing.T) {
	const r = 8.0
	size := 16
	pix := glowPixels(r, size)
	if len(pix) != size*size*4 {
		t.Fatalf("len = %d", len(pix))
	}

	center := ((size/2)*size + size/2) * 4
	if pix[center+3] < 200 {
		t.Errorf("center alpha = %d, want near opaque", pix[center+3])
	}
	if pix[3] != 0 {
		t.Errorf("corner alpha = %d, want 0", pix[3])
	}
	for i := 0; i < len(pix); i += 4 {
		if pix[i] != pix[i+3] {
			t.Fatalf("pixel %d not premultiplied white: %v", i/4, pix[i:i+4])
		}
	}
}
