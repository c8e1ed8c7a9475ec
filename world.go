package skyflock

import (
	"math/rand/v2"
)

// Agent is one of the four selectable flying characters. Display fields are
// assigned from the palette at world creation and never change.
type Agent struct {
	ID          int
	Name        string
	BodyColor   Color
	TrailColor  Color
	AccentColor Color

	Pos Vec2
	Vel Vec2

	// Tilt eases toward TargetTilt each tick. Both stay within ±TiltMax.
	Tilt       float64
	TargetTilt float64

	Score int
}

// OrbState tells whether an orb is on the playfield or waiting for the next
// respawn sweep.
type OrbState uint8

const (
	OrbActive    OrbState = iota // flying, can be picked up
	OrbCollected                 // picked up, hidden until the next sweep
)

func (s OrbState) String() string {
	switch s {
	case OrbActive:
		return "active"
	case OrbCollected:
		return "collected"
	default:
		return "unknown"
	}
}

// Orb is a pulsing collectible. Only Active orbs move, pulse, render and can
// be collected.
type Orb struct {
	State OrbState
	Pos   Vec2
	Vel   Vec2

	Pulse    float64 // glow scale in [PulseMin, PulseMax]
	PulseDir float64 // +1 or -1
}

// Active reports whether the orb is on the playfield.
func (o *Orb) Active() bool { return o.State == OrbActive }

// collect marks the orb as picked up and stops it.
func (o *Orb) collect() {
	o.State = OrbCollected
	o.Vel = Vec2{}
}

// Cloud is a cosmetic background puff drifting right and wrapping around.
type Cloud struct {
	Pos     Vec2
	Size    float64 // radius
	Speed   float64 // horizontal drift per reference frame
	Opacity float64
}

// character is one palette entry.
type character struct {
	name                string
	body, trail, accent Color
}

var palette = [AgentCount]character{
	{"Pip", RGB(0xff, 0xc8, 0x57), RGB(0xff, 0xe6, 0xa8), RGB(0xe0, 0x6c, 0x2f)},
	{"Juniper", RGB(0x6e, 0xe0, 0xa6), RGB(0xbf, 0xf5, 0xd9), RGB(0x1f, 0x8a, 0x5b)},
	{"Bramble", RGB(0xe0, 0x6e, 0xb8), RGB(0xf5, 0xbf, 0xe2), RGB(0x8a, 0x1f, 0x63)},
	{"Cobalt", RGB(0x6e, 0x9c, 0xe0), RGB(0xbf, 0xd6, 0xf5), RGB(0x1f, 0x45, 0x8a)},
}

// World owns every agent, orb and cloud. Collections are fixed-size arrays
// indexed by stable small integers and are never reallocated.
type World struct {
	Agents [AgentCount]Agent
	Orbs   [OrbCount]Orb
	Clouds [CloudCount]Cloud

	// Bounds is the playfield inner rectangle agents are confined to.
	Bounds Rect

	respawnTimer float64
	rng          *rand.Rand
}

// NewWorld creates a world seeded with seed. Equal seeds produce identical
// worlds and, given identical ticks, identical simulations.
func NewWorld(seed uint64) *World {
	w := &World{
		Bounds: Rect{0, 0, CanvasWidth, CanvasHeight}.Inset(PlayfieldMargin),
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}

	spacing := w.Bounds.Width / AgentCount
	for i := range w.Agents {
		p := palette[i]
		w.Agents[i] = Agent{
			ID:          i,
			Name:        p.name,
			BodyColor:   p.body,
			TrailColor:  p.trail,
			AccentColor: p.accent,
			Pos: Vec2{
				X: w.Bounds.X + spacing*(float64(i)+0.5),
				Y: CanvasHeight / 2,
			},
			Vel: Vec2{RandRange(w.rng, -1, 1), RandRange(w.rng, -1, 1)},
		}
	}

	for i := range w.Orbs {
		w.spawnOrb(&w.Orbs[i])
		w.Orbs[i].Pulse = RandRange(w.rng, PulseMin, PulseMax)
		if w.rng.IntN(2) == 0 {
			w.Orbs[i].PulseDir = -1
		}
	}

	for i := range w.Clouds {
		w.Clouds[i] = Cloud{
			Pos: Vec2{
				X: RandRange(w.rng, 0, CanvasWidth),
				Y: RandRange(w.rng, 20, CanvasHeight/2),
			},
			Size:    RandRange(w.rng, CloudMinSize, CloudMaxSize),
			Speed:   RandRange(w.rng, CloudMinSpeed, CloudMaxSpeed),
			Opacity: RandRange(w.rng, CloudMinOpacity, CloudMaxOpacity),
		}
	}
	return w
}

// OrbSpawnArea is the rectangle new orb positions are drawn from.
func OrbSpawnArea() Rect {
	return Rect{0, 0, CanvasWidth, CanvasHeight}.Inset(OrbSpawnMargin)
}

// spawnOrb places o at a fresh random position with a fresh drift and
// activates it. Pulse state carries over.
func (w *World) spawnOrb(o *Orb) {
	area := OrbSpawnArea()
	o.State = OrbActive
	o.Pos = Vec2{
		X: RandRange(w.rng, area.MinX(), area.MaxX()),
		Y: RandRange(w.rng, area.MinY(), area.MaxY()),
	}
	o.Vel = Vec2{
		X: RandRange(w.rng, -OrbMaxDrift, OrbMaxDrift),
		Y: RandRange(w.rng, -OrbMaxDrift, OrbMaxDrift),
	}
	if o.PulseDir == 0 {
		o.PulseDir = 1
	}
	if o.Pulse == 0 {
		o.Pulse = PulseMin
	}
}

// RespawnTimer returns the milliseconds accumulated since the last sweep.
func (w *World) RespawnTimer() float64 {
	return w.respawnTimer
}

// ActiveOrbs returns the number of orbs currently on the playfield.
func (w *World) ActiveOrbs() int {
	n := 0
	for i := range w.Orbs {
		if w.Orbs[i].Active() {
			n++
		}
	}
	return n
}

// CollectedOrbs returns the number of orbs waiting for the next sweep.
func (w *World) CollectedOrbs() int {
	return OrbCount - w.ActiveOrbs()
}

// Scores returns a snapshot of every agent's score, indexed by agent id.
func (w *World) Scores() [AgentCount]int {
	var s [AgentCount]int
	for i := range w.Agents {
		s[i] = w.Agents[i].Score
	}
	return s
}
