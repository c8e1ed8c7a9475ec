package skyflock

import (
	"time"

	"go.uber.org/zap"
)

// statsInterval is the number of drawn frames averaged per stats line.
const statsInterval = 120

// debugStats accumulates per-frame timing and draw metrics.
// Only populated when Config.Debug is true.
type debugStats struct {
	stepTime     time.Duration
	drawTime     time.Duration
	commandCount int
	frames       int
}

// debugLog logs the averages of the accumulated stats and resets them.
func (g *Game) debugLog() {
	s := g.stats
	if s.frames == 0 {
		return
	}
	n := time.Duration(s.frames)
	g.log.Debug("frame stats",
		zap.Int("frames", s.frames),
		zap.Duration("step_avg", s.stepTime/n),
		zap.Duration("draw_avg", s.drawTime/n),
		zap.Int("commands_avg", s.commandCount/s.frames),
		zap.Int("active_orbs", g.world.ActiveOrbs()),
		zap.Float64("respawn_timer_ms", g.world.RespawnTimer()))
	g.stats = debugStats{}
}
