package skyflock

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		x, lo, hi float64
		want      float64
	}{
		{"inside", 3, 0, 10, 3},
		{"below", -4, 0, 10, 0},
		{"above", 12, 0, 10, 10},
		{"on low edge", 0, 0, 10, 0},
		{"on high edge", 10, 0, 10, 10},
		{"negative range", 0.9, -0.45, 0.45, 0.45},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.x, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.x, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestClampIdempotent(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 1000; i++ {
		x := RandRange(rng, -100, 100)
		lo := RandRange(rng, -50, 0)
		hi := RandRange(rng, 0, 50)
		once := Clamp(x, lo, hi)
		if twice := Clamp(once, lo, hi); twice != once {
			t.Fatalf("Clamp not idempotent for %v in [%v, %v]: %v then %v", x, lo, hi, once, twice)
		}
	}
}

func TestDist(t *testing.T) {
	if got := Dist(Vec2{0, 0}, Vec2{3, 4}); math.Abs(got-5) > 1e-12 {
		t.Errorf("Dist = %v, want 5", got)
	}
	if got := Dist(Vec2{7, -2}, Vec2{7, -2}); got != 0 {
		t.Errorf("Dist of equal points = %v, want 0", got)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 5, 40, false},
		{"outside right", 115, 40, false},
		{"outside top", 50, 15, false},
		{"outside bottom", 50, 75, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Rect.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRectInsetAndClampPoint(t *testing.T) {
	r := Rect{0, 0, CanvasWidth, CanvasHeight}.Inset(PlayfieldMargin)
	if r.MinX() != 40 || r.MaxX() != 920 || r.MinY() != 40 || r.MaxY() != 520 {
		t.Fatalf("inset playfield = %+v", r)
	}
	if got := r.ClampPoint(Vec2{-5, 600}); got != (Vec2{40, 520}) {
		t.Errorf("ClampPoint = %v, want {40 520}", got)
	}
}

func TestRangeRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	r := Range{Min: 10, Max: 20}
	for i := 0; i < 200; i++ {
		if v := r.Random(rng); v < 10 || v >= 20 {
			t.Fatalf("Range.Random = %v, want [10, 20)", v)
		}
	}
	if v := (Range{Min: 5, Max: 5}).Random(rng); v != 5 {
		t.Errorf("degenerate Range.Random = %v, want 5", v)
	}
}

func TestColorToRGBAPremultiplies(t *testing.T) {
	c := Color{R: 1, G: 0.5, B: 0, A: 0.5}.toRGBA()
	if c.A != 127 || c.R != 127 || c.G != 63 || c.B != 0 {
		t.Errorf("toRGBA = %+v", c)
	}
	if got := RGB(0xff, 0, 0x80); got.A != 1 || got.R != 1 || got.G != 0 {
		t.Errorf("RGB = %+v", got)
	}
}
