package skyflock

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Key names understood by the tracker. Names are lower-case.
const (
	KeyArrowLeft  = "arrowleft"
	KeyArrowRight = "arrowright"
	KeyArrowUp    = "arrowup"
	KeyArrowDown  = "arrowdown"
	KeySpace      = "space"
	KeyShift      = "shift"
)

// KeyEvent is a single press or release of a named key.
type KeyEvent struct {
	Key     string
	Pressed bool
}

// InputTracker folds key press/release events into a held-key set and turns
// digit presses "1".."4" into agent selections.
//
// The tracker is owned by the frame driver. The rest of the program only sees
// it through KeyState and the drained selection queue.
type InputTracker struct {
	held    map[string]bool
	selects []int
}

// NewInputTracker returns a tracker with nothing held.
func NewInputTracker() *InputTracker {
	return &InputTracker{held: make(map[string]bool)}
}

// Handle applies ev and reports whether the host should suppress the key's
// default action (page scrolling for the arrow keys).
func (t *InputTracker) Handle(ev KeyEvent) bool {
	key := strings.ToLower(ev.Key)
	if ev.Pressed {
		if idx, ok := selectIndex(key); ok && !t.held[key] {
			t.selects = append(t.selects, idx)
		}
	}
	t.held[key] = ev.Pressed
	return isArrow(key)
}

// Held reports whether key is currently held. Lookup is case-insensitive.
func (t *InputTracker) Held(key string) bool {
	return t.held[strings.ToLower(key)]
}

// DrainSelects returns queued agent selections in press order and clears the
// queue. The returned slice is only valid until the next Handle call.
func (t *InputTracker) DrainSelects() []int {
	out := t.selects
	t.selects = t.selects[:0]
	return out
}

// Reset releases every key and drops pending selections. Used when the
// window loses focus so keys released elsewhere do not stay stuck.
func (t *InputTracker) Reset() {
	clear(t.held)
	t.selects = t.selects[:0]
}

func selectIndex(key string) (int, bool) {
	if len(key) == 1 && key[0] >= '1' && key[0] < '1'+AgentCount {
		return int(key[0] - '1'), true
	}
	return 0, false
}

func isArrow(key string) bool {
	switch key {
	case KeyArrowLeft, KeyArrowRight, KeyArrowUp, KeyArrowDown:
		return true
	}
	return false
}

// keyBindings maps the hardware keys the game listens to onto tracker names.
// ebiten.KeyShift is the virtual key covering both shift keys.
var keyBindings = []struct {
	key  ebiten.Key
	name string
}{
	{ebiten.KeyArrowLeft, KeyArrowLeft},
	{ebiten.KeyArrowRight, KeyArrowRight},
	{ebiten.KeyArrowUp, KeyArrowUp},
	{ebiten.KeyArrowDown, KeyArrowDown},
	{ebiten.KeySpace, KeySpace},
	{ebiten.KeyShift, KeyShift},
	{ebiten.KeyDigit1, "1"},
	{ebiten.KeyDigit2, "2"},
	{ebiten.KeyDigit3, "3"},
	{ebiten.KeyDigit4, "4"},
}

// pollKeyEvents converts this frame's hardware key transitions into events.
// Must be called from ebiten's Update.
func pollKeyEvents(buf []KeyEvent) []KeyEvent {
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			buf = append(buf, KeyEvent{Key: b.name, Pressed: true})
		}
		if inpututil.IsKeyJustReleased(b.key) {
			buf = append(buf, KeyEvent{Key: b.name, Pressed: false})
		}
	}
	return buf
}
