package skyflock

import "math"

// KeyState answers whether a key, by lower-case name, is currently held.
type KeyState interface {
	Held(key string) bool
}

// Tick is the input to one simulation step.
type Tick struct {
	DeltaMs    float64  // wall-clock milliseconds since the previous tick
	ElapsedMs  float64  // total milliseconds since the driver started
	Keys       KeyState // may be nil: nothing held
	Controlled int      // index of the agent receiving keyboard input
}

// Pickup records one agent collecting one orb.
type Pickup struct {
	Agent int
	Orb   int
}

// StepResult reports what happened during a step. The world is the only
// state Step mutates; the result is informational.
type StepResult struct {
	Pickups   []Pickup
	Swept     bool // the respawn timer elapsed this tick
	Respawned int  // orbs reactivated by the sweep
}

// Step advances w by one tick.
//
// Order within a tick: forces (steering for the controlled agent, flocking
// for the rest), agent integration and wall bounces, orb drift and pulse,
// cloud drift, pickups, respawn sweep.
func Step(w *World, t Tick) StepResult {
	var res StepResult
	frame := t.DeltaMs / ReferenceFrameMs
	ctrl := clampAgentIndex(t.Controlled)

	horizontal := axis(t.Keys, KeyArrowRight, KeyArrowLeft)
	vertical := axis(t.Keys, KeyArrowDown, KeyArrowUp)
	boost := 1.0
	if held(t.Keys, KeySpace) || held(t.Keys, KeyShift) {
		boost = BoostMultiplier
	}

	leader := w.Agents[ctrl].Pos
	for i := range w.Agents {
		a := &w.Agents[i]
		if i == ctrl {
			steer(a, horizontal, vertical, boost)
		} else {
			flock(a, leader, t.ElapsedMs)
		}
	}
	for i := range w.Agents {
		integrateAgent(&w.Agents[i], frame, w.Bounds)
	}

	moveOrbs(w, frame)
	driftClouds(w, frame)
	res.Pickups = collectOrbs(w)

	w.respawnTimer += t.DeltaMs
	if w.respawnTimer > RespawnIntervalMs {
		for i := range w.Orbs {
			if !w.Orbs[i].Active() {
				w.spawnOrb(&w.Orbs[i])
				res.Respawned++
			}
		}
		w.respawnTimer = 0
		res.Swept = true
	}
	return res
}

func clampAgentIndex(i int) int {
	if i < 0 {
		return 0
	}
	if i >= AgentCount {
		return AgentCount - 1
	}
	return i
}

func held(keys KeyState, key string) bool {
	return keys != nil && keys.Held(key)
}

// axis returns +1, -1 or 0 from a pair of opposing keys.
func axis(keys KeyState, pos, neg string) float64 {
	var v float64
	if held(keys, pos) {
		v++
	}
	if held(keys, neg) {
		v--
	}
	return v
}

func steer(a *Agent, horizontal, vertical, boost float64) {
	accel := BaseAccel * boost
	a.Vel.X += horizontal * accel
	a.Vel.Y += vertical * accel

	if horizontal != 0 || vertical != 0 {
		a.TargetTilt = Clamp(a.TargetTilt+horizontal*TiltStep, -TiltMax, TiltMax)
	} else {
		a.TargetTilt *= TiltDecay
	}
}

// flock pulls a toward the leader and adds a per-agent sinusoidal wander.
func flock(a *Agent, leader Vec2, elapsedMs float64) {
	a.Vel.X += (leader.X - a.Pos.X) * FlockPull
	a.Vel.Y += (leader.Y - a.Pos.Y) * FlockPull

	wander := math.Sin(elapsedMs*WanderFreq + float64(a.ID)*WanderPhase)
	a.Vel.X += wander * WanderAmplitude
	a.TargetTilt = Clamp(wander*WanderTiltGain, -TiltMax, TiltMax)
}

func integrateAgent(a *Agent, frame float64, bounds Rect) {
	a.Vel.X = Clamp(a.Vel.X, -MaxSpeed, MaxSpeed)
	a.Vel.Y = Clamp(a.Vel.Y, -MaxSpeed, MaxSpeed)

	a.Pos = a.Pos.Add(a.Vel.Scale(frame))
	a.Vel = a.Vel.Scale(Friction)

	if a.Pos.X < bounds.MinX() || a.Pos.X > bounds.MaxX() {
		a.Vel.X *= WallBounce
		a.Pos.X = Clamp(a.Pos.X, bounds.MinX(), bounds.MaxX())
	}
	if a.Pos.Y < bounds.MinY() || a.Pos.Y > bounds.MaxY() {
		a.Vel.Y *= WallBounce
		a.Pos.Y = Clamp(a.Pos.Y, bounds.MinY(), bounds.MaxY())
	}

	a.Tilt += (a.TargetTilt - a.Tilt) * TiltEase
}

func moveOrbs(w *World, frame float64) {
	edge := Rect{0, 0, CanvasWidth, CanvasHeight}.Inset(OrbEdgeMargin)
	for i := range w.Orbs {
		o := &w.Orbs[i]
		if !o.Active() {
			continue
		}
		o.Pos = o.Pos.Add(o.Vel.Scale(frame))

		o.Pulse += o.PulseDir * PulseStep
		if o.Pulse > PulseMax || o.Pulse < PulseMin {
			o.PulseDir = -o.PulseDir
		}

		// Reflect only while heading further out so an orb past the edge
		// cannot flip back and forth.
		if (o.Pos.X < edge.MinX() && o.Vel.X < 0) || (o.Pos.X > edge.MaxX() && o.Vel.X > 0) {
			o.Vel.X = -o.Vel.X
		}
		if (o.Pos.Y < edge.MinY() && o.Vel.Y < 0) || (o.Pos.Y > edge.MaxY() && o.Vel.Y > 0) {
			o.Vel.Y = -o.Vel.Y
		}
	}
}

func driftClouds(w *World, frame float64) {
	for i := range w.Clouds {
		c := &w.Clouds[i]
		c.Pos.X += c.Speed * frame
		if c.Pos.X-c.Size > CanvasWidth {
			c.Pos.X = -c.Size
		}
	}
}

// collectOrbs checks every (agent, orb) pair in index order. An orb is marked
// collected as soon as one agent reaches it, so no later agent can score it
// in the same tick.
func collectOrbs(w *World) []Pickup {
	var pickups []Pickup
	for ai := range w.Agents {
		a := &w.Agents[ai]
		for oi := range w.Orbs {
			o := &w.Orbs[oi]
			if !o.Active() {
				continue
			}
			if Dist(a.Pos, o.Pos) < PickupRadius {
				a.Score++
				o.collect()
				pickups = append(pickups, Pickup{Agent: ai, Orb: oi})
			}
		}
	}
	return pickups
}
