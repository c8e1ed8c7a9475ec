package skyflock

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Layer orders draw commands back to front. Commands of a frame are emitted
// in non-decreasing layer order.
type Layer uint8

const (
	LayerSky     Layer = iota // background gradient
	LayerHorizon              // animated light bands
	LayerClouds               // drifting cloud puffs
	LayerAgents               // flyers and the selection ring
	LayerOrbs                 // active orbs and pickup sparkles
	LayerHUD                  // hint line and score panels
)

// CommandType identifies the kind of draw command.
type CommandType uint8

const (
	CommandGradient CommandType = iota // vertical gradient over Rect
	CommandRect                        // filled Rect
	CommandFrame                       // stroked Rect
	CommandGlow                        // glow texture scaled to radii Size around Pos
	CommandMesh                        // shape mesh under Transform
	CommandRing                        // stroked circle of Radius around Pos
	CommandText                        // Text at Pos
)

// AgentPart names the piece of an agent a command draws.
type AgentPart uint8

const (
	PartNone AgentPart = iota
	PartTrail
	PartBody
	PartHead
	PartWingUp
	PartWingDown
	PartRider
	PartRing
)

// DrawCommand is a single draw instruction emitted by compileFrame.
type DrawCommand struct {
	Layer Layer
	Type  CommandType
	Part  AgentPart
	Agent int // -1 when the command is not tied to an agent
	Orb   int // -1 when the command is not tied to an orb

	Pos       Vec2
	Size      Vec2 // glow radii
	Rotation  float64
	Scale     float64 // agent body scale
	Radius    float64
	Stroke    float64
	Rect      Rect
	Transform [6]float64
	Color     Color
	Color2    Color // gradient bottom
	Blend     BlendMode
	Text      string

	shape *mesh
}

// View carries the presentation-only inputs of a frame. Everything in it is
// owned by the frame driver; the renderer never writes simulation state.
type View struct {
	Controlled int
	ElapsedMs  float64

	// PanelFlash is a 0..1 highlight per score panel, raised on pickups.
	PanelFlash [AgentCount]float64
	// RingScale multiplies the selection ring radius. Zero means 1.
	RingScale float64
	// Sparkles are the live pickup burst particles, drawn over the orbs.
	Sparkles []Sparkle
}

var (
	skyTop      = RGB(0x6f, 0xb8, 0xf0)
	skyBottom   = RGB(0xff, 0xdc, 0xb8)
	bandColor   = Color{1, 0.97, 0.9, 1}
	cloudColor  = Color{1, 1, 1, 1}
	orbHalo     = RGB(0xff, 0xe8, 0x7a)
	orbCore     = Color{1, 1, 0.92, 1}
	panelColor  = Color{0.06, 0.09, 0.18, 0.45}
	hudText     = Color{1, 1, 1, 0.95}
	ringColor   = Color{1, 1, 1, 0.9}
	flashColor  = Color{1, 1, 1, 1}
	trailAlpha  = 0.55
	scoreGrowth = 0.02
	maxGrowth   = 0.3
)

const (
	horizonY     = CanvasHeight * 0.62
	bandCount    = 3
	orbHaloSize  = 22.0
	orbCoreSize  = 7.0
	panelWidth   = 200.0
	panelHeight  = 44.0
	panelGap     = 16.0
	panelBottom  = 16.0
	hintX, hintY = 16.0, 12.0
)

// AgentScale returns the body scale for a score: grows with score, capped.
func AgentScale(score int) float64 {
	return 1 + math.Min(float64(score)*scoreGrowth, maxGrowth)
}

// PanelRect returns the HUD score panel rectangle of agent i.
func PanelRect(i int) Rect {
	return Rect{
		X:      panelGap + float64(i)*(panelWidth+panelGap),
		Y:      CanvasHeight - panelBottom - panelHeight,
		Width:  panelWidth,
		Height: panelHeight,
	}
}

// compileFrame appends the draw commands of one frame to cmds, strictly back
// to front. It reads w and never modifies it.
func compileFrame(w *World, v View, shapes *shapeLibrary, cmds []DrawCommand) []DrawCommand {
	canvas := Rect{0, 0, CanvasWidth, CanvasHeight}
	ctrl := clampAgentIndex(v.Controlled)

	cmds = append(cmds, DrawCommand{
		Layer: LayerSky, Type: CommandGradient, Agent: -1, Orb: -1,
		Rect: canvas, Color: skyTop, Color2: skyBottom,
	})

	for i := 0; i < bandCount; i++ {
		fi := float64(i)
		y := horizonY + fi*34 + math.Sin(v.ElapsedMs*0.0005+fi*1.7)*8
		cmds = append(cmds, DrawCommand{
			Layer: LayerHorizon, Type: CommandRect, Agent: -1, Orb: -1,
			Rect:  Rect{0, y, CanvasWidth, 18 + fi*6},
			Color: bandColor.WithAlpha(0.08 + 0.03*fi),
			Blend: BlendScreen,
		})
	}

	for i := range w.Clouds {
		c := &w.Clouds[i]
		cmds = append(cmds, DrawCommand{
			Layer: LayerClouds, Type: CommandGlow, Agent: -1, Orb: -1,
			Pos:   c.Pos,
			Size:  Vec2{c.Size * 1.4, c.Size * 0.8},
			Color: cloudColor.WithAlpha(c.Opacity),
		})
	}

	for i := range w.Agents {
		cmds = appendAgent(cmds, &w.Agents[i], i == ctrl, v.RingScale, shapes)
	}

	for i := range w.Orbs {
		o := &w.Orbs[i]
		if !o.Active() {
			continue
		}
		cmds = append(cmds,
			DrawCommand{
				Layer: LayerOrbs, Type: CommandGlow, Agent: -1, Orb: i,
				Pos:   o.Pos,
				Size:  Vec2{orbHaloSize * o.Pulse, orbHaloSize * o.Pulse},
				Color: orbHalo.WithAlpha(0.85),
				Blend: BlendAdd,
			},
			DrawCommand{
				Layer: LayerOrbs, Type: CommandGlow, Agent: -1, Orb: i,
				Pos:   o.Pos,
				Size:  Vec2{orbCoreSize, orbCoreSize},
				Color: orbCore,
				Blend: BlendAdd,
			},
		)
	}

	for _, sp := range v.Sparkles {
		cmds = append(cmds, DrawCommand{
			Layer: LayerOrbs, Type: CommandGlow, Agent: -1, Orb: -1,
			Pos:   sp.Pos,
			Size:  Vec2{sp.Size, sp.Size},
			Color: sp.Color.WithAlpha(sp.Alpha),
			Blend: BlendAdd,
		})
	}

	return appendHUD(cmds, w, ctrl, v.PanelFlash)
}

func appendAgent(cmds []DrawCommand, a *Agent, controlled bool, ringScale float64, shapes *shapeLibrary) []DrawCommand {
	scale := AgentScale(a.Score)
	xf := spriteTransform(a.Pos, a.Tilt, scale)
	tx, ty := transformPoint(xf, trailOffsetX, 0)

	cmds = append(cmds, DrawCommand{
		Layer: LayerAgents, Type: CommandGlow, Part: PartTrail, Agent: a.ID, Orb: -1,
		Pos:      Vec2{tx, ty},
		Size:     Vec2{trailLength * scale, trailHeight * scale},
		Rotation: a.Tilt,
		Color:    a.TrailColor.WithAlpha(trailAlpha),
	})

	parts := [...]struct {
		part  AgentPart
		shape *mesh
		color Color
	}{
		{PartBody, &shapes.body, a.BodyColor},
		{PartHead, &shapes.head, a.BodyColor},
		{PartWingUp, &shapes.wingUp, a.AccentColor},
		{PartWingDown, &shapes.wingDown, a.AccentColor},
		{PartRider, &shapes.rider, a.AccentColor},
	}
	for _, p := range parts {
		cmds = append(cmds, DrawCommand{
			Layer: LayerAgents, Type: CommandMesh, Part: p.part, Agent: a.ID, Orb: -1,
			Pos:       a.Pos,
			Rotation:  a.Tilt,
			Scale:     scale,
			Transform: xf,
			Color:     p.color,
			shape:     p.shape,
		})
	}

	if controlled {
		if ringScale == 0 {
			ringScale = 1
		}
		cmds = append(cmds, DrawCommand{
			Layer: LayerAgents, Type: CommandRing, Part: PartRing, Agent: a.ID, Orb: -1,
			Pos:    a.Pos,
			Radius: ringRadius * scale * ringScale,
			Stroke: 3,
			Color:  ringColor,
		})
	}
	return cmds
}

func appendHUD(cmds []DrawCommand, w *World, ctrl int, flash [AgentCount]float64) []DrawCommand {
	cmds = append(cmds, DrawCommand{
		Layer: LayerHUD, Type: CommandText, Agent: -1, Orb: -1,
		Pos: Vec2{hintX, hintY}, Text: controlsHint, Color: hudText,
	})

	for i := range w.Agents {
		a := &w.Agents[i]
		r := PanelRect(i)
		bg := panelColor
		if i == ctrl {
			bg = a.BodyColor.WithAlpha(0.55)
		}
		cmds = append(cmds, DrawCommand{
			Layer: LayerHUD, Type: CommandRect, Agent: i, Orb: -1,
			Rect: r, Color: bg,
		})
		if f := clamp01(flash[i]); f > 0 {
			cmds = append(cmds, DrawCommand{
				Layer: LayerHUD, Type: CommandRect, Agent: i, Orb: -1,
				Rect: r, Color: flashColor.WithAlpha(f * 0.5), Blend: BlendAdd,
			})
		}
		if i == ctrl {
			cmds = append(cmds, DrawCommand{
				Layer: LayerHUD, Type: CommandFrame, Agent: i, Orb: -1,
				Rect: r, Stroke: 2, Color: ringColor,
			})
		}
		cmds = append(cmds,
			DrawCommand{
				Layer: LayerHUD, Type: CommandText, Agent: i, Orb: -1,
				Pos: Vec2{r.X + 10, r.Y + 8}, Text: panelTitle(a), Color: hudText,
			},
			DrawCommand{
				Layer: LayerHUD, Type: CommandText, Agent: i, Orb: -1,
				Pos: Vec2{r.X + 10, r.Y + 24}, Text: panelScore(a), Color: hudText,
			},
		)
	}
	return cmds
}

// Renderer paints a World onto an ebiten image. It owns GPU resources and
// scratch buffers only.
type Renderer struct {
	shapes  *shapeLibrary
	glow    *ebiten.Image
	face    text.Face
	cmds    []DrawCommand
	scratch []ebiten.Vertex
}

// NewRenderer creates the shared textures, meshes and HUD font.
func NewRenderer() *Renderer {
	return &Renderer{
		shapes: newShapeLibrary(),
		glow:   generateGlow(glowTextureRadius),
		face:   newHUDFace(),
		cmds:   make([]DrawCommand, 0, 128),
	}
}

// Draw compiles and submits one frame. The whole surface is redrawn.
// Returns the number of commands submitted.
func (r *Renderer) Draw(screen *ebiten.Image, w *World, v View) int {
	r.cmds = compileFrame(w, v, r.shapes, r.cmds[:0])
	r.submit(screen, r.cmds)
	return len(r.cmds)
}

func (r *Renderer) submit(screen *ebiten.Image, cmds []DrawCommand) {
	for i := range cmds {
		c := &cmds[i]
		switch c.Type {
		case CommandGradient:
			r.drawGradient(screen, c)
		case CommandRect:
			vector.DrawFilledRect(screen,
				float32(c.Rect.X), float32(c.Rect.Y), float32(c.Rect.Width), float32(c.Rect.Height),
				c.Color.toRGBA(), false)
		case CommandFrame:
			vector.StrokeRect(screen,
				float32(c.Rect.X), float32(c.Rect.Y), float32(c.Rect.Width), float32(c.Rect.Height),
				float32(c.Stroke), c.Color.toRGBA(), true)
		case CommandRing:
			vector.StrokeCircle(screen, float32(c.Pos.X), float32(c.Pos.Y), float32(c.Radius),
				float32(c.Stroke), c.Color.toRGBA(), true)
		case CommandGlow:
			r.drawGlow(screen, c)
		case CommandMesh:
			r.drawMesh(screen, c)
		case CommandText:
			drawHUDText(screen, r.face, c)
		}
	}
}

func (r *Renderer) drawGradient(screen *ebiten.Image, c *DrawCommand) {
	x0, y0 := float32(c.Rect.MinX()), float32(c.Rect.MinY())
	x1, y1 := float32(c.Rect.MaxX()), float32(c.Rect.MaxY())
	top, bottom := c.Color, c.Color2
	verts := []ebiten.Vertex{
		{DstX: x0, DstY: y0, SrcX: 0.5, SrcY: 0.5, ColorR: float32(top.R), ColorG: float32(top.G), ColorB: float32(top.B), ColorA: 1},
		{DstX: x1, DstY: y0, SrcX: 0.5, SrcY: 0.5, ColorR: float32(top.R), ColorG: float32(top.G), ColorB: float32(top.B), ColorA: 1},
		{DstX: x1, DstY: y1, SrcX: 0.5, SrcY: 0.5, ColorR: float32(bottom.R), ColorG: float32(bottom.G), ColorB: float32(bottom.B), ColorA: 1},
		{DstX: x0, DstY: y1, SrcX: 0.5, SrcY: 0.5, ColorR: float32(bottom.R), ColorG: float32(bottom.G), ColorB: float32(bottom.B), ColorA: 1},
	}
	screen.DrawTriangles(verts, []uint16{0, 1, 2, 0, 2, 3}, ensureWhitePixel(), &ebiten.DrawTrianglesOptions{})
}

func (r *Renderer) drawGlow(screen *ebiten.Image, c *DrawCommand) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-glowTextureRadius, -glowTextureRadius)
	op.GeoM.Scale(c.Size.X/glowTextureRadius, c.Size.Y/glowTextureRadius)
	op.GeoM.Rotate(c.Rotation)
	op.GeoM.Translate(c.Pos.X, c.Pos.Y)
	a := c.Color.A
	op.ColorScale.Scale(float32(c.Color.R*a), float32(c.Color.G*a), float32(c.Color.B*a), float32(a))
	op.Blend = c.Blend.EbitenBlend()
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(r.glow, op)
}

func (r *Renderer) drawMesh(screen *ebiten.Image, c *DrawCommand) {
	if c.shape == nil || len(c.shape.verts) == 0 {
		return
	}
	need := len(c.shape.verts)
	if cap(r.scratch) < need {
		r.scratch = make([]ebiten.Vertex, need)
	}
	dst := r.scratch[:need]
	transformVertices(c.shape.verts, dst, c.Transform, c.Color)
	screen.DrawTriangles(dst, c.shape.inds, ensureWhitePixel(), &ebiten.DrawTrianglesOptions{
		Blend:     c.Blend.EbitenBlend(),
		AntiAlias: true,
	})
}
