package skyflock

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// glowTextureRadius is the radius of the shared glow texture. Glows of any
// size are drawn by scaling it.
const glowTextureRadius = 64.0

// generateGlow creates a feathered white circle image with the given radius.
// Uses smoothstep falloff and premultiplied alpha.
func generateGlow(radius float64) *ebiten.Image {
	size := int(math.Ceil(radius * 2))
	if size < 1 {
		size = 1
	}
	img := ebiten.NewImage(size, size)
	img.WritePixels(glowPixels(radius, size))
	return img
}

// glowPixels computes the premultiplied RGBA pixels of a size×size glow.
func glowPixels(radius float64, size int) []byte {
	pix := make([]byte, size*size*4)
	cx, cy := radius, radius
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			a := uint8(glowFalloff(math.Sqrt(dx*dx+dy*dy)/radius) * 255)
			off := (y*size + x) * 4
			pix[off+0] = a
			pix[off+1] = a
			pix[off+2] = a
			pix[off+3] = a
		}
	}
	return pix
}

// glowFalloff maps a normalised distance from the centre to alpha:
// 1 at the centre, 0 at and beyond the edge.
func glowFalloff(dist float64) float64 {
	if dist >= 1 {
		return 0
	}
	t := 1 - dist
	return t * t * (3 - 2*t)
}
