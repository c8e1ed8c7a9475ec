// Package skyflock is a real-time arcade simulation for [Ebitengine].
//
// Four flying characters cross a scrolling sky. One of them is steered with
// the keyboard; the others flock loosely behind it. Pulsing orbs score a
// point for whichever flyer reaches them first and come back in batches.
//
// # Quick start
//
// The simplest way to play is [Run], which opens a window and drives the
// frame loop:
//
//	cfg := skyflock.DefaultConfig()
//	if err := skyflock.Run(cfg, logger); err != nil {
//		log.Fatal(err)
//	}
//
// # Simulation
//
// [World] owns four [Agent]s, six [Orb]s and twelve [Cloud]s in fixed arrays.
// [Step] advances it by one tick from the elapsed milliseconds, the held keys
// and the controlled agent index. Step is deterministic for a given seed
// and tick sequence, which is what the tests rely on.
//
// # Input
//
// [InputTracker] folds key events into a held set queried by lower-case name
// ("arrowleft", "space", "shift", ...) and queues "1".."4" presses as agent
// selections.
//
// # Rendering
//
// The [Renderer] compiles a frame into a back-to-front list of
// [DrawCommand]s (sky, horizon bands, clouds, agents, orbs, HUD) and submits
// it to the 960x560 surface. Score flashes, the selection ring pop and pickup
// sparkles are driven by the frame driver and passed in through [View].
//
// # Frame driver
//
// [Game] implements ebiten.Game with a running/stopped state. [Game.Stop]
// makes the next Update return ebiten.Termination, which ends the loop.
//
// Controls: arrow keys fly, space or shift boosts, 1-4 switch the flyer.
//
// [Ebitengine]: https://ebitengine.org
package skyflock
