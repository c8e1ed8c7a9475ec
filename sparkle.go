package skyflock

import (
	"math"
	"math/rand/v2"
)

// Sparkle is one live particle of a pickup burst.
type Sparkle struct {
	Pos   Vec2
	Size  float64
	Alpha float64
	Color Color
}

// sparkle holds per-particle simulation state. Managed by sparklePool.
type sparkle struct {
	pos     Vec2
	vel     Vec2
	life    float64 // remaining lifetime in seconds
	maxLife float64
	color   Color
}

// burstConfig controls how a pickup burst is spawned and fades.
type burstConfig struct {
	Count      int
	Lifetime   Range // seconds
	Speed      Range // pixels per second
	StartSize  float64
	EndSize    float64
	StartAlpha float64
	Drag       float64 // velocity kept per second, 0..1
}

var pickupBurst = burstConfig{
	Count:      14,
	Lifetime:   Range{Min: 0.35, Max: 0.7},
	Speed:      Range{Min: 60, Max: 180},
	StartSize:  6,
	EndSize:    1.5,
	StartAlpha: 0.9,
	Drag:       0.08,
}

// sparklePool is a fixed-capacity particle pool for pickup bursts. Sparkles
// are presentation only: they never touch the World and are advanced by the
// frame driver with the tick delta.
type sparklePool struct {
	cfg       burstConfig
	particles []sparkle
	alive     int
	rng       *rand.Rand
	out       []Sparkle
}

func newSparklePool(cfg burstConfig, capacity int, seed uint64) *sparklePool {
	if capacity <= 0 {
		capacity = 128
	}
	return &sparklePool{
		cfg:       cfg,
		particles: make([]sparkle, capacity),
		rng:       rand.New(rand.NewPCG(seed, ^seed)),
	}
}

// Burst spawns up to cfg.Count sparkles at pos. Sparkles beyond the pool
// capacity are silently dropped.
func (p *sparklePool) Burst(pos Vec2, c Color) {
	for n := 0; n < p.cfg.Count && p.alive < len(p.particles); n++ {
		angle := RandRange(p.rng, 0, 2*math.Pi)
		speed := p.cfg.Speed.Random(p.rng)
		sin, cos := math.Sincos(angle)
		life := p.cfg.Lifetime.Random(p.rng)
		if life <= 0 {
			life = 0.5
		}
		p.particles[p.alive] = sparkle{
			pos:     pos,
			vel:     Vec2{cos * speed, sin * speed},
			life:    life,
			maxLife: life,
			color:   c,
		}
		p.alive++
	}
}

// Update advances every sparkle by dt seconds, swap-removing dead ones.
func (p *sparklePool) Update(dt float64) {
	drag := math.Pow(p.cfg.Drag, dt)
	i := 0
	for i < p.alive {
		s := &p.particles[i]
		s.life -= dt
		if s.life <= 0 {
			p.alive--
			p.particles[i] = p.particles[p.alive]
			continue
		}
		s.pos = s.pos.Add(s.vel.Scale(dt))
		s.vel = s.vel.Scale(drag)
		i++
	}
}

// Alive returns the number of live sparkles.
func (p *sparklePool) Alive() int { return p.alive }

// Reset kills every sparkle.
func (p *sparklePool) Reset() { p.alive = 0 }

// Snapshot returns the live sparkles for drawing. The slice is reused by the
// next call.
func (p *sparklePool) Snapshot() []Sparkle {
	p.out = p.out[:0]
	for i := 0; i < p.alive; i++ {
		s := &p.particles[i]
		t := 1 - s.life/s.maxLife
		p.out = append(p.out, Sparkle{
			Pos:   s.pos,
			Size:  Lerp(p.cfg.StartSize, p.cfg.EndSize, t),
			Alpha: Lerp(p.cfg.StartAlpha, 0, t),
			Color: s.color,
		})
	}
	return p.out
}
