package skyflock

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// mesh is an untextured triangle list in local space, drawn with the shared
// white pixel and tinted per draw.
type mesh struct {
	verts []ebiten.Vertex
	inds  []uint16
}

// transformVertices applies an affine transform and color tint to src vertices,
// writing the result into dst. dst must be at least len(src) in length.
//
// Matrix layout: [0]=a, [1]=b, [2]=c, [3]=d, [4]=tx, [5]=ty
// newX = a*x + c*y + tx, newY = b*x + d*y + ty
//
// Color components are multiplied (vertex color * tint) and premultiplied by
// the tint's alpha.
func transformVertices(src, dst []ebiten.Vertex, transform [6]float64, tint Color) {
	a, b, c, d, tx, ty := transform[0], transform[1], transform[2], transform[3], transform[4], transform[5]
	cr := float32(tint.R)
	cg := float32(tint.G)
	cb := float32(tint.B)
	ca := float32(tint.A)

	for i := range src {
		s := &src[i]
		ox := float64(s.DstX)
		oy := float64(s.DstY)
		dst[i] = ebiten.Vertex{
			DstX:   float32(a*ox + c*oy + tx),
			DstY:   float32(b*ox + d*oy + ty),
			SrcX:   s.SrcX,
			SrcY:   s.SrcY,
			ColorR: s.ColorR * cr * ca,
			ColorG: s.ColorG * cg * ca,
			ColorB: s.ColorB * cb * ca,
			ColorA: s.ColorA * ca,
		}
	}
}

// computeMeshAABB scans DstX/DstY of the given vertices and returns
// the axis-aligned bounding box.
func computeMeshAABB(verts []ebiten.Vertex) Rect {
	if len(verts) == 0 {
		return Rect{}
	}
	minX := float64(verts[0].DstX)
	minY := float64(verts[0].DstY)
	maxX := minX
	maxY := minY
	for i := 1; i < len(verts); i++ {
		x := float64(verts[i].DstX)
		y := float64(verts[i].DstY)
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// buildPolygonFan generates vertices and indices for a fan-triangulated
// convex polygon. N vertices, 3*(N-2) indices.
func buildPolygonFan(points []Vec2) mesh {
	n := len(points)
	if n < 3 {
		return mesh{}
	}

	verts := make([]ebiten.Vertex, n)
	inds := make([]uint16, (n-2)*3)

	for i, p := range points {
		verts[i] = ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   0.5, // centre of the white pixel
			SrcY:   0.5,
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		}
	}

	// Vertex 0 is the hub.
	for i := 0; i < n-2; i++ {
		inds[i*3+0] = 0
		inds[i*3+1] = uint16(i + 1)
		inds[i*3+2] = uint16(i + 2)
	}
	return mesh{verts: verts, inds: inds}
}

// ellipsePoints returns segments points on the ellipse centred at c.
func ellipsePoints(c Vec2, rx, ry float64, segments int) []Vec2 {
	pts := make([]Vec2, segments)
	for i := range pts {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(segments))
		pts[i] = Vec2{c.X + cos*rx, c.Y + sin*ry}
	}
	return pts
}

// Agent geometry in local space, facing right, before tilt and score scale.
const (
	bodyRadiusX  = 26.0
	bodyRadiusY  = 16.0
	headRadius   = 11.0
	riderRadius  = 5.0
	trailLength  = 46.0
	trailHeight  = 20.0
	trailOffsetX = -30.0
	ringRadius   = 44.0
	shapeSegs    = 24
)

var (
	headOffset  = Vec2{22, -8}
	riderOffset = Vec2{-2, -14}
)

// shapeLibrary holds the local-space meshes shared by every agent.
type shapeLibrary struct {
	body, head, rider, wingUp, wingDown mesh
}

func newShapeLibrary() *shapeLibrary {
	return &shapeLibrary{
		body:  buildPolygonFan(ellipsePoints(Vec2{}, bodyRadiusX, bodyRadiusY, shapeSegs)),
		head:  buildPolygonFan(ellipsePoints(headOffset, headRadius, headRadius, shapeSegs)),
		rider: buildPolygonFan(ellipsePoints(riderOffset, riderRadius, riderRadius, 12)),
		wingUp: buildPolygonFan([]Vec2{
			{-10, -4}, {2, -34}, {14, -30}, {12, -6},
		}),
		wingDown: buildPolygonFan([]Vec2{
			{-10, 4}, {12, 6}, {14, 28}, {2, 30},
		}),
	}
}

// --- White pixel singleton ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
// Used by untextured meshes.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}
