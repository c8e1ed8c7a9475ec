package skyflock

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(ms float64) {
	c.t = c.t.Add(time.Duration(ms * float64(time.Millisecond)))
}

func newTestGame(t *testing.T, cfg Config, logger *zap.Logger) (*Game, *fakeClock) {
	t.Helper()
	if logger == nil {
		logger = zaptest.NewLogger(t)
	}
	clk := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	g := NewGame(cfg, logger)
	g.SetClock(clk.Now)
	require.NoError(t, g.Start())
	return g, clk
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Seed = 42
	return cfg
}

func runFrame(g *Game, clk *fakeClock, ms float64) {
	clk.Advance(ms)
	g.tick(clk.Now(), nil)
}

func TestGameStartStop(t *testing.T) {
	g := NewGame(testConfig(), zaptest.NewLogger(t))
	assert.False(t, g.Running())

	require.NoError(t, g.Start())
	assert.True(t, g.Running())
	assert.Error(t, g.Start(), "second Start must fail")

	g.Stop()
	assert.False(t, g.Running())
	g.Stop()
	assert.False(t, g.Running())

	assert.Equal(t, ebiten.Termination, g.Update())
}

func TestGameNoTickAfterStop(t *testing.T) {
	g, clk := newTestGame(t, testConfig(), nil)
	runFrame(g, clk, 16)
	g.Stop()

	agents := g.World().Agents
	assert.Equal(t, ebiten.Termination, g.Update())
	runFrame(g, clk, 16)

	assert.Equal(t, uint64(1), g.Frames())
	assert.Equal(t, agents, g.World().Agents)
}

func TestGameTickDelta(t *testing.T) {
	g, clk := newTestGame(t, testConfig(), nil)

	runFrame(g, clk, 16)
	assert.Equal(t, uint64(1), g.Frames())
	assert.InDelta(t, 16, g.ElapsedMs(), 1e-9)

	// A stall is capped.
	runFrame(g, clk, 5000)
	assert.InDelta(t, 16+MaxFrameDeltaMs, g.ElapsedMs(), 1e-9)

	// A clock going backwards counts as zero.
	clk.Advance(-100)
	g.tick(clk.Now(), nil)
	assert.InDelta(t, 16+MaxFrameDeltaMs, g.ElapsedMs(), 1e-9)
	assert.Equal(t, uint64(3), g.Frames())
}

func TestGameStartAgent(t *testing.T) {
	cfg := testConfig()
	cfg.StartAgent = 3
	g, _ := newTestGame(t, cfg, nil)
	assert.Equal(t, 3, g.Controlled())

	cfg.StartAgent = 9
	g, _ = newTestGame(t, cfg, nil)
	assert.Equal(t, AgentCount-1, g.Controlled())
}

func TestGameSelectSwitchesSteering(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	g, clk := newTestGame(t, testConfig(), zap.New(core))

	g.InjectKeyPress(KeyArrowRight)
	runFrame(g, clk, 16)
	require.Equal(t, 0, g.Controlled())
	require.True(t, g.input.Held(KeyArrowRight))

	g.InjectKeyPress("3")
	before := g.World().Agents[2].Vel
	runFrame(g, clk, 16)

	require.Equal(t, 2, g.Controlled())
	want := Clamp(before.X+BaseAccel, -MaxSpeed, MaxSpeed) * Friction
	assert.InDelta(t, want, g.World().Agents[2].Vel.X, 1e-9)
	assert.Greater(t, g.view.RingScale, 1.0)
	assert.Equal(t, 1, logs.FilterMessage("agent switched").Len())
}

func TestGameSelectCurrentAgentIsNoop(t *testing.T) {
	g, clk := newTestGame(t, testConfig(), nil)
	g.InjectKeyPress("1")
	runFrame(g, clk, 16)
	assert.Equal(t, 0, g.Controlled())
	assert.Nil(t, g.ringTween)
}

func TestGameHeldSelectDoesNotRepeat(t *testing.T) {
	g, clk := newTestGame(t, testConfig(), nil)
	g.InjectKeyPress("2")
	runFrame(g, clk, 16)
	require.Equal(t, 1, g.Controlled())

	g.InjectKeyPress("1")
	runFrame(g, clk, 16)
	require.Equal(t, 0, g.Controlled())

	// "2" is still held; a repeat press must not switch back.
	g.InjectKeyPress("2")
	runFrame(g, clk, 16)
	assert.Equal(t, 0, g.Controlled())
}

func TestGamePickupFeedback(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	g, clk := newTestGame(t, testConfig(), zap.New(core))

	w := g.World()
	for i := range w.Orbs {
		w.Orbs[i].collect()
	}
	w.Agents[0].Pos = Vec2{480, 280}
	w.Agents[0].Vel = Vec2{}
	w.Orbs[0] = Orb{State: OrbActive, Pos: Vec2{480, 280}, Pulse: 1, PulseDir: 1}

	runFrame(g, clk, 16)

	assert.Equal(t, 1, w.Agents[0].Score)
	assert.Greater(t, g.view.PanelFlash[0], 0.9)
	assert.Zero(t, g.view.PanelFlash[1])
	assert.Equal(t, pickupBurst.Count, g.sparkles.Alive())
	assert.Equal(t, 1, logs.FilterMessage("orb collected").Len())
}

func TestGameTweensExpire(t *testing.T) {
	g, clk := newTestGame(t, testConfig(), nil)
	g.panelTweens[2] = flashPanel(&g.view.PanelFlash[2])
	for i := 0; i < 60; i++ {
		runFrame(g, clk, 16)
	}
	assert.Nil(t, g.panelTweens[2])
	assert.Zero(t, g.view.PanelFlash[2])
}

func TestGameDrawWithoutSurfaceFails(t *testing.T) {
	g, _ := newTestGame(t, testConfig(), nil)

	g.Draw(nil)

	assert.Equal(t, ErrSurfaceUnavailable, g.Err())
	assert.False(t, g.Running())
	assert.Equal(t, ErrSurfaceUnavailable, g.Update())
	assert.Equal(t, ErrSurfaceUnavailable, g.Start())
}

func TestGameLayout(t *testing.T) {
	g := NewGame(testConfig(), nil)
	w, h := g.Layout(1920, 1080)
	assert.Equal(t, 960, w)
	assert.Equal(t, 560, h)
}

func TestGameScriptQuit(t *testing.T) {
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "tap", "key": "3"},
		{"action": "quit"}
	]}`))
	require.NoError(t, err)

	g, clk := newTestGame(t, testConfig(), nil)
	g.SetTestRunner(runner)

	for i := 0; i < 10 && g.Running(); i++ {
		runFrame(g, clk, 16)
	}

	assert.False(t, g.Running())
	assert.True(t, runner.Done())
	assert.Equal(t, 2, g.Controlled())
	assert.Equal(t, uint64(2), g.Frames())
	assert.False(t, g.input.Held("3"))
	assert.Equal(t, ebiten.Termination, g.Update())
}

func TestDebugLogResetsStats(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	g := NewGame(testConfig(), zap.New(core))
	g.stats = debugStats{stepTime: time.Millisecond, drawTime: 2 * time.Millisecond, commandCount: 200, frames: 2}

	g.debugLog()

	entries := logs.FilterMessage("frame stats").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(100), entries[0].ContextMap()["commands_avg"])
	assert.Equal(t, debugStats{}, g.stats)

	g.debugLog()
	assert.Equal(t, 1, logs.FilterMessage("frame stats").Len())
}
