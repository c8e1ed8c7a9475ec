package skyflock

// Canvas and pools
const (
	CanvasWidth     = 960.0
	CanvasHeight    = 560.0
	PlayfieldMargin = 40.0 // inset from the canvas edge that agents may not cross

	AgentCount = 4
	OrbCount   = 6
	CloudCount = 12
)

// Steering
const (
	BaseAccel        = 0.35
	BoostMultiplier  = 1.4
	MaxSpeed         = 7.4
	Friction         = 0.985 // multiplicative velocity decay per tick
	WallBounce       = -0.7  // velocity factor on boundary contact
	ReferenceFrameMs = 16.0

	TiltMax   = 0.45
	TiltStep  = 0.06 // targetTilt increment per tick while steering
	TiltDecay = 0.88 // targetTilt decay per tick while idle
	TiltEase  = 0.18 // fraction of the remaining tilt closed per tick
)

// Flocking for agents that are not controlled. Values are empirical; keep
// them exact.
const (
	FlockPull       = 0.0006
	WanderAmplitude = 0.03
	WanderPhase     = 1.3   // phase offset per agent id
	WanderFreq      = 0.001 // radians per elapsed millisecond
	WanderTiltGain  = 0.3
)

// Orbs
const (
	PickupRadius      = 42.0
	RespawnIntervalMs = 12000.0
	OrbSpawnMargin    = 60.0
	OrbMaxDrift       = 0.6
	OrbEdgeMargin     = 20.0

	PulseMin  = 0.5
	PulseMax  = 1.2
	PulseStep = 0.01
)

// Clouds
const (
	CloudMinSize    = 40.0
	CloudMaxSize    = 110.0
	CloudMinSpeed   = 0.15
	CloudMaxSpeed   = 0.5
	CloudMinOpacity = 0.25
	CloudMaxOpacity = 0.6
)

// MaxFrameDeltaMs caps the delta fed to a single tick after a stall
// (minimised window, debugger pause).
const MaxFrameDeltaMs = 250.0
