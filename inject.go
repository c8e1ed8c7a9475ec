package skyflock

// InjectKeyPress queues a synthetic press of the named key. Injected events
// are consumed one per frame, before hardware input, and go through the same
// InputTracker path as real keys.
func (g *Game) InjectKeyPress(key string) {
	g.injectQueue = append(g.injectQueue, KeyEvent{Key: key, Pressed: true})
}

// InjectKeyRelease queues a synthetic release of the named key.
func (g *Game) InjectKeyRelease(key string) {
	g.injectQueue = append(g.injectQueue, KeyEvent{Key: key, Pressed: false})
}

// InjectKeyTap queues a press followed by a release. The key is held for
// exactly one tick. Consumes two frames.
func (g *Game) InjectKeyTap(key string) {
	g.InjectKeyPress(key)
	g.InjectKeyRelease(key)
}

// processInjectedInput pops one event from the inject queue and feeds it to
// the tracker. Returns true if an event was consumed.
func (g *Game) processInjectedInput() bool {
	if len(g.injectQueue) == 0 {
		return false
	}
	evt := g.injectQueue[0]
	copy(g.injectQueue, g.injectQueue[1:])
	g.injectQueue = g.injectQueue[:len(g.injectQueue)-1]

	g.input.Handle(evt)
	return true
}
