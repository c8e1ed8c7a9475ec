package skyflock

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields simultaneously. Call Update(dt)
// each frame; the group writes the current values through its field pointers
// and sets Done once every tween has finished.
//
// Tweens only drive presentation values (HUD flashes, ring pop). Simulation
// state is never tweened.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the fields.
func (g *TweenGroup) Update(dt float32) {
	if g == nil || g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenValue creates a TweenGroup that animates *field from its current value
// to the target over duration seconds using the easing function.
func TweenValue(field *float64, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return TweenFromTo(field, *field, to, duration, fn)
}

// TweenFromTo sets *field to from and animates it to the target.
func TweenFromTo(field *float64, from, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	*field = from
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(from), float32(to), duration, fn)
	g.fields[0] = field
	return g
}

// Presentation tween timings, in seconds.
const (
	panelFlashDuration = 0.6
	ringPopDuration    = 0.35
	ringPopFrom        = 1.6
)

// flashPanel starts a fading highlight on a score panel.
func flashPanel(field *float64) *TweenGroup {
	return TweenFromTo(field, 1, 0, panelFlashDuration, ease.OutQuad)
}

// popRing shrinks the selection ring from oversized back to its rest size.
func popRing(field *float64) *TweenGroup {
	return TweenFromTo(field, ringPopFrom, 1, ringPopDuration, ease.OutBack)
}
