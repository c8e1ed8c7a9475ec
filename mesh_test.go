package skyflock

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestBuildPolygonFan(t *testing.T) {
	m := buildPolygonFan([]Vec2{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {-5, 5}})
	if len(m.verts) != 5 {
		t.Fatalf("verts = %d, want 5", len(m.verts))
	}
	want := []uint16{0, 1, 2, 0, 2, 3, 0, 3, 4}
	if len(m.inds) != len(want) {
		t.Fatalf("inds = %v, want %v", m.inds, want)
	}
	for i := range want {
		if m.inds[i] != want[i] {
			t.Errorf("inds[%d] = %d, want %d", i, m.inds[i], want[i])
		}
	}
	if m.verts[0].SrcX != 0.5 || m.verts[0].ColorA != 1 {
		t.Errorf("vertex 0 = %+v", m.verts[0])
	}
}

func TestBuildPolygonFanDegenerate(t *testing.T) {
	for _, pts := range [][]Vec2{nil, {{0, 0}}, {{0, 0}, {1, 1}}} {
		if m := buildPolygonFan(pts); len(m.verts) != 0 || len(m.inds) != 0 {
			t.Errorf("%d points gave %d verts", len(pts), len(m.verts))
		}
	}
}

func TestEllipsePoints(t *testing.T) {
	pts := ellipsePoints(Vec2{5, -3}, 4, 2, 8)
	if len(pts) != 8 {
		t.Fatalf("points = %d", len(pts))
	}
	for i, p := range pts {
		dx, dy := (p.X-5)/4, (p.Y+3)/2
		if r := dx*dx + dy*dy; math.Abs(r-1) > 1e-9 {
			t.Errorf("point %d %v not on ellipse (%v)", i, p, r)
		}
	}
}

func TestShapeLibraryBounds(t *testing.T) {
	s := newShapeLibrary()
	b := computeMeshAABB(s.body.verts)
	if math.Abs(b.Width-2*bodyRadiusX) > 1e-3 || math.Abs(b.Height-2*bodyRadiusY) > 1e-3 {
		t.Errorf("body bounds = %+v", b)
	}
	for name, m := range map[string]mesh{
		"head": s.head, "rider": s.rider, "wingUp": s.wingUp, "wingDown": s.wingDown,
	} {
		if len(m.verts) < 3 || len(m.inds) != 3*(len(m.verts)-2) {
			t.Errorf("%s: %d verts, %d inds", name, len(m.verts), len(m.inds))
		}
	}
}

func TestComputeMeshAABBEmpty(t *testing.T) {
	if b := computeMeshAABB(nil); b != (Rect{}) {
		t.Errorf("empty AABB = %+v", b)
	}
}

func TestTransformVertices(t *testing.T) {
	src := []ebiten.Vertex{
		{DstX: 1, DstY: 0, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1},
	}
	dst := make([]ebiten.Vertex, 1)
	xf := spriteTransform(Vec2{100, 50}, math.Pi/2, 2)
	transformVertices(src, dst, xf, Color{1, 0.5, 0, 0.5})

	if math.Abs(float64(dst[0].DstX)-100) > 1e-4 || math.Abs(float64(dst[0].DstY)-52) > 1e-4 {
		t.Errorf("dst = (%v, %v), want (100, 52)", dst[0].DstX, dst[0].DstY)
	}
	if dst[0].ColorR != 0.5 || dst[0].ColorG != 0.25 || dst[0].ColorB != 0 || dst[0].ColorA != 0.5 {
		t.Errorf("color = %v %v %v %v", dst[0].ColorR, dst[0].ColorG, dst[0].ColorB, dst[0].ColorA)
	}
}
