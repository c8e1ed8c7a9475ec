package skyflock

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Run opens a window sized to the canvas times cfg.Scale and runs the game
// loop until the window is closed, a script quits, or the surface fails.
func Run(cfg Config, logger *zap.Logger) error {
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	g := NewGame(cfg, logger)
	if cfg.ScriptPath != "" {
		data, err := os.ReadFile(cfg.ScriptPath)
		if err != nil {
			return errors.Wrap(err, "read script")
		}
		runner, err := LoadTestScript(data)
		if err != nil {
			return err
		}
		g.SetTestRunner(runner)
		logger.Info("script loaded", zap.String("path", cfg.ScriptPath))
	}

	ebiten.SetWindowSize(int(CanvasWidth*cfg.Scale), int(CanvasHeight*cfg.Scale))
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.TPS)

	if err := g.Start(); err != nil {
		return err
	}
	defer g.Stop()

	if err := ebiten.RunGame(g); err != nil {
		return errors.Wrap(err, "run game")
	}
	return nil
}
