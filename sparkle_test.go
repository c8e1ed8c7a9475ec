package skyflock

import "testing"

func testBurst() burstConfig {
	return burstConfig{
		Count:      5,
		Lifetime:   Range{1, 1},
		Speed:      Range{100, 100},
		StartSize:  4,
		EndSize:    0,
		StartAlpha: 1,
		Drag:       1,
	}
}

func TestSparkleBurst(t *testing.T) {
	p := newSparklePool(testBurst(), 12, 1)
	p.Burst(Vec2{100, 100}, ColorWhite)
	if p.Alive() != 5 {
		t.Fatalf("alive = %d, want 5", p.Alive())
	}
	for _, s := range p.Snapshot() {
		if s.Pos != (Vec2{100, 100}) || s.Size != 4 || s.Alpha != 1 {
			t.Errorf("fresh sparkle = %+v", s)
		}
	}
}

func TestSparklePoolCapacity(t *testing.T) {
	p := newSparklePool(testBurst(), 12, 1)
	for i := 0; i < 5; i++ {
		p.Burst(Vec2{}, ColorWhite)
	}
	if p.Alive() != 12 {
		t.Errorf("alive = %d, want capped at 12", p.Alive())
	}
	if d := newSparklePool(testBurst(), 0, 1); len(d.particles) != 128 {
		t.Errorf("default capacity = %d, want 128", len(d.particles))
	}
}

func TestSparkleUpdate(t *testing.T) {
	p := newSparklePool(testBurst(), 12, 1)
	p.Burst(Vec2{0, 0}, ColorWhite)

	p.Update(0.5)
	for _, s := range p.Snapshot() {
		if d := Dist(s.Pos, Vec2{}); d < 49.9 || d > 50.1 {
			t.Errorf("distance after 0.5s = %v, want 50", d)
		}
		if s.Size != 2 || s.Alpha != 0.5 {
			t.Errorf("halfway size/alpha = %v/%v", s.Size, s.Alpha)
		}
	}

	p.Update(0.6)
	if p.Alive() != 0 {
		t.Errorf("alive after lifetime = %d, want 0", p.Alive())
	}
}

func TestSparkleReset(t *testing.T) {
	p := newSparklePool(testBurst(), 12, 1)
	p.Burst(Vec2{}, ColorWhite)
	p.Reset()
	if p.Alive() != 0 || len(p.Snapshot()) != 0 {
		t.Error("sparkles survived Reset")
	}
}
