// Skyflock opens the arcade window. Settings come from defaults, an optional
// .env file, SKYFLOCK_* environment variables and flags, in that order.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
	"go.uber.org/zap"

	"github.com/phanxgames/skyflock"
)

func main() {
	app := makeapp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func makeapp() *cli.App {
	app := cli.NewApp()
	app.Name = "skyflock"
	app.Usage = "Steer a flock of flyers and collect orbs"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "env", Value: ".env", Usage: "Settings file loaded before the environment"},
		cli.Uint64Flag{Name: "seed", Usage: "World seed; 0 picks one from the clock"},
		cli.Float64Flag{Name: "scale", Usage: "Window size multiplier"},
		cli.IntFlag{Name: "tps", Usage: "Ticks per second; -1 ticks once per display frame"},
		cli.IntFlag{Name: "agent", Usage: "Initially controlled flyer, 0-3"},
		cli.StringFlag{Name: "script", Usage: "JSON input script to play back"},
		cli.StringFlag{Name: "screenshots", Usage: "Directory for scripted screenshots"},
		cli.BoolFlag{Name: "fps", Usage: "Show the FPS overlay"},
		cli.BoolFlag{Name: "debug", Usage: "Enable debug logging and frame stats"},
	}
	app.Action = runAction
	return app
}

func runAction(c *cli.Context) error {
	cfg, err := skyflock.LoadConfig(c.String("env"))
	if err != nil {
		return err
	}
	applyFlags(c, &cfg)

	logger, err := skyflock.NewLogger(cfg.Debug)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if err := skyflock.Run(cfg, logger); err != nil {
		logger.Error("skyflock exited", zap.Error(err))
		return err
	}
	return nil
}

// applyFlags overrides cfg with every flag set on the command line.
func applyFlags(c *cli.Context, cfg *skyflock.Config) {
	if c.IsSet("seed") {
		cfg.Seed = c.Uint64("seed")
	}
	if c.IsSet("scale") {
		cfg.Scale = c.Float64("scale")
	}
	if c.IsSet("tps") {
		cfg.TPS = c.Int("tps")
	}
	if c.IsSet("agent") {
		cfg.StartAgent = c.Int("agent")
	}
	if c.IsSet("script") {
		cfg.ScriptPath = c.String("script")
	}
	if c.IsSet("screenshots") {
		cfg.ScreenshotDir = c.String("screenshots")
	}
	if c.IsSet("fps") {
		cfg.ShowFPS = c.Bool("fps")
	}
	if c.IsSet("debug") {
		cfg.Debug = c.Bool("debug")
	}
}
