package skyflock

import (
	"math"
	"testing"
)

func TestSpriteTransform(t *testing.T) {
	tests := []struct {
		name       string
		pos        Vec2
		rot, scale float64
		in, want   Vec2
	}{
		{"identity", Vec2{}, 0, 1, Vec2{3, 4}, Vec2{3, 4}},
		{"translate", Vec2{10, 20}, 0, 1, Vec2{1, 1}, Vec2{11, 21}},
		{"scale", Vec2{}, 0, 2, Vec2{1, -1}, Vec2{2, -2}},
		{"rotate quarter", Vec2{}, math.Pi / 2, 1, Vec2{1, 0}, Vec2{0, 1}},
		{"scale rotate translate", Vec2{5, 5}, math.Pi, 3, Vec2{1, 0}, Vec2{2, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := spriteTransform(tt.pos, tt.rot, tt.scale)
			x, y := transformPoint(m, tt.in.X, tt.in.Y)
			if math.Abs(x-tt.want.X) > 1e-9 || math.Abs(y-tt.want.Y) > 1e-9 {
				t.Errorf("got (%v, %v), want %v", x, y, tt.want)
			}
		})
	}
}
