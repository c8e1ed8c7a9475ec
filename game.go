package skyflock

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrSurfaceUnavailable aborts a run whose drawing surface is missing.
var ErrSurfaceUnavailable = errors.New("drawing surface unavailable")

type driverState uint8

const (
	stateStopped driverState = iota
	stateRunning
)

func (s driverState) String() string {
	if s == stateRunning {
		return "running"
	}
	return "stopped"
}

// Game is the frame driver. It implements ebiten.Game: every Update samples
// input once, advances the world by the wall-clock delta since the previous
// Update, and every Draw repaints the whole surface.
//
// Game owns the world, the input tracker and the presentation tweens. Nothing
// else mutates them.
type Game struct {
	cfg      Config
	log      *zap.Logger
	world    *World
	input    *InputTracker
	renderer *Renderer

	state     driverState
	now       func() time.Time
	last      time.Time
	elapsedMs float64
	frames    uint64
	err       error
	focused   bool

	controlled  int
	view        View
	panelTweens [AgentCount]*TweenGroup
	ringTween   *TweenGroup
	sparkles    *sparklePool

	events      []KeyEvent
	injectQueue []KeyEvent
	testRunner  *TestRunner

	screenshotQueue []string
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	stats debugStats
}

// NewGame creates a stopped driver over a fresh world. A zero cfg.Seed picks
// a seed from the clock. logger may be nil.
func NewGame(cfg Config, logger *zap.Logger) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	g := &Game{
		cfg:           cfg,
		log:           logger,
		world:         NewWorld(seed),
		input:         NewInputTracker(),
		now:           time.Now,
		controlled:    clampAgentIndex(cfg.StartAgent),
		sparkles:      newSparklePool(pickupBurst, 128, seed),
		focused:       true,
		ScreenshotDir: cfg.ScreenshotDir,
	}
	g.view.RingScale = 1
	g.log.Info("world created", zap.Uint64("seed", seed))
	return g
}

// SetClock replaces the wall clock. Must be called before Start.
func (g *Game) SetClock(now func() time.Time) {
	g.now = now
}

// World returns the simulated world. Callers must treat it as read-only.
func (g *Game) World() *World { return g.world }

// Controlled returns the index of the agent receiving keyboard input.
func (g *Game) Controlled() int { return g.controlled }

// Running reports whether the driver is ticking.
func (g *Game) Running() bool { return g.state == stateRunning }

// ElapsedMs returns the simulated time since Start.
func (g *Game) ElapsedMs() float64 { return g.elapsedMs }

// Frames returns the number of ticks run since Start.
func (g *Game) Frames() uint64 { return g.frames }

// Err returns the error that aborted the run, if any.
func (g *Game) Err() error { return g.err }

// Start records the baseline timestamp and enters the running state.
func (g *Game) Start() error {
	if g.err != nil {
		return g.err
	}
	if g.state == stateRunning {
		return errors.New("driver already running")
	}
	g.last = g.now()
	g.elapsedMs = 0
	g.frames = 0
	g.state = stateRunning
	g.log.Info("driver started", zap.Int("controlled", g.controlled))
	return nil
}

// Stop leaves the running state. The next Update returns ebiten.Termination,
// which ends the run loop, so no tick happens after Stop. Stop is idempotent
// and every teardown (window close, script quit, Run returning) goes through
// it.
func (g *Game) Stop() {
	if g.state != stateRunning {
		return
	}
	g.state = stateStopped
	g.log.Info("driver stopped",
		zap.Uint64("frames", g.frames),
		zap.Float64("elapsed_ms", g.elapsedMs),
		zap.Ints("scores", scoresSlice(g.world)))
}

func (g *Game) fail(err error) {
	if g.err == nil {
		g.err = err
		g.log.Error("run aborted", zap.Error(err))
	}
	g.Stop()
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	if g.state != stateRunning {
		return ebiten.Termination
	}
	if ebiten.IsWindowBeingClosed() {
		g.Stop()
		return ebiten.Termination
	}

	focused := ebiten.IsFocused()
	if !focused && g.focused {
		g.input.Reset()
	}
	g.focused = focused

	g.events = pollKeyEvents(g.events[:0])
	g.tick(g.now(), g.events)

	if g.state != stateRunning {
		return ebiten.Termination
	}
	return nil
}

// tick runs one frame of input, simulation and presentation updates.
func (g *Game) tick(now time.Time, events []KeyEvent) {
	if g.testRunner != nil {
		g.testRunner.step(g)
	}
	if g.state != stateRunning {
		return
	}

	g.processInjectedInput()
	for _, ev := range events {
		g.input.Handle(ev)
	}
	for _, idx := range g.input.DrainSelects() {
		g.selectAgent(idx)
	}

	delta := float64(now.Sub(g.last)) / float64(time.Millisecond)
	g.last = now
	if delta < 0 {
		delta = 0
	}
	if delta > MaxFrameDeltaMs {
		delta = MaxFrameDeltaMs
	}
	g.elapsedMs += delta

	var t0 time.Time
	if g.cfg.Debug {
		t0 = time.Now()
	}
	res := Step(g.world, Tick{
		DeltaMs:    delta,
		ElapsedMs:  g.elapsedMs,
		Keys:       g.input,
		Controlled: g.controlled,
	})
	if g.cfg.Debug {
		g.stats.stepTime += time.Since(t0)
	}

	g.report(res)
	g.advanceTweens(float32(delta / 1000))
	g.frames++
}

func (g *Game) selectAgent(idx int) {
	idx = clampAgentIndex(idx)
	if idx == g.controlled {
		return
	}
	g.log.Info("agent switched",
		zap.Int("from", g.controlled),
		zap.Int("to", idx),
		zap.String("name", g.world.Agents[idx].Name))
	g.controlled = idx
	g.ringTween = popRing(&g.view.RingScale)
}

func (g *Game) report(res StepResult) {
	for _, p := range res.Pickups {
		a := &g.world.Agents[p.Agent]
		g.log.Debug("orb collected",
			zap.String("agent", a.Name),
			zap.Int("orb", p.Orb),
			zap.Int("score", a.Score))
		g.panelTweens[p.Agent] = flashPanel(&g.view.PanelFlash[p.Agent])
		g.sparkles.Burst(g.world.Orbs[p.Orb].Pos, a.TrailColor)
	}
	if res.Swept && res.Respawned > 0 {
		g.log.Info("orbs respawned", zap.Int("count", res.Respawned))
	}
}

func (g *Game) advanceTweens(dt float32) {
	g.sparkles.Update(float64(dt))
	for i, tw := range g.panelTweens {
		if tw == nil {
			continue
		}
		tw.Update(dt)
		if tw.Done {
			g.panelTweens[i] = nil
		}
	}
	if g.ringTween != nil {
		g.ringTween.Update(dt)
		if g.ringTween.Done {
			g.ringTween = nil
		}
	}
}

// Draw implements ebiten.Game. It reads the world and never changes it.
func (g *Game) Draw(screen *ebiten.Image) {
	if err := checkSurface(screen); err != nil {
		g.fail(err)
		return
	}
	if g.renderer == nil {
		g.renderer = NewRenderer()
	}

	var t0 time.Time
	if g.cfg.Debug {
		t0 = time.Now()
	}

	g.view.Controlled = g.controlled
	g.view.ElapsedMs = g.elapsedMs
	g.view.Sparkles = g.sparkles.Snapshot()
	n := g.renderer.Draw(screen, g.world, g.view)

	if g.cfg.ShowFPS {
		drawFPS(screen)
	}
	g.flushScreenshots(screen)

	if g.cfg.Debug {
		g.stats.drawTime += time.Since(t0)
		g.stats.commandCount += n
		g.stats.frames++
		if g.stats.frames >= statsInterval {
			g.debugLog()
		}
	}
}

// Layout implements ebiten.Game. The logical canvas size is fixed.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(CanvasWidth), int(CanvasHeight)
}

func checkSurface(screen *ebiten.Image) error {
	if screen == nil {
		return ErrSurfaceUnavailable
	}
	if b := screen.Bounds(); b.Dx() <= 0 || b.Dy() <= 0 {
		return errors.Wrapf(ErrSurfaceUnavailable, "surface is %dx%d", b.Dx(), b.Dy())
	}
	return nil
}

func scoresSlice(w *World) []int {
	s := w.Scores()
	return s[:]
}
