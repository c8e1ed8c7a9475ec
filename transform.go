package skyflock

import "math"

// spriteTransform builds the affine matrix placing a shape drawn around the
// origin at pos, rotated by rotation and uniformly scaled. Returns
// [a, b, c, d, tx, ty].
//
// Composition order:
//
//	Scale -> Rotate -> Translate(X, Y)
func spriteTransform(pos Vec2, rotation, scale float64) [6]float64 {
	sin, cos := math.Sincos(rotation)
	return [6]float64{
		cos * scale, sin * scale,
		-sin * scale, cos * scale,
		pos.X, pos.Y,
	}
}

// transformPoint applies m to (x, y).
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
