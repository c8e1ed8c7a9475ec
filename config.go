package skyflock

import (
	"os"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Config holds the run settings. Precedence, lowest first: DefaultConfig,
// the .env file, SKYFLOCK_* environment variables, command-line flags.
type Config struct {
	Title         string
	Scale         float64 // window size multiplier over the 960x560 canvas
	Seed          uint64  // 0 picks a seed from the clock
	TPS           int     // ticks per second; ebiten.SyncWithFPS ticks once per display frame
	Debug         bool
	ShowFPS       bool
	ScreenshotDir string
	ScriptPath    string // optional JSON input script
	StartAgent    int    // initially controlled agent, 0..3
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Title:         "Skyflock",
		Scale:         1,
		TPS:           ebiten.SyncWithFPS,
		ScreenshotDir: "screenshots",
	}
}

// Environment variable names read by LoadConfig.
const (
	EnvTitle         = "SKYFLOCK_TITLE"
	EnvScale         = "SKYFLOCK_SCALE"
	EnvSeed          = "SKYFLOCK_SEED"
	EnvTPS           = "SKYFLOCK_TPS"
	EnvDebug         = "SKYFLOCK_DEBUG"
	EnvShowFPS       = "SKYFLOCK_SHOW_FPS"
	EnvScreenshotDir = "SKYFLOCK_SCREENSHOT_DIR"
	EnvScript        = "SKYFLOCK_SCRIPT"
	EnvStartAgent    = "SKYFLOCK_START_AGENT"
)

// LoadConfig starts from DefaultConfig, loads envFile into the process
// environment when it exists, then applies SKYFLOCK_* variables. An empty
// envFile skips the file. Variables already set in the environment win over
// the file.
func LoadConfig(envFile string) (Config, error) {
	cfg := DefaultConfig()
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(errors.Cause(err)) {
			return cfg, errors.Wrapf(err, "load %s", envFile)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvTitle); ok && v != "" {
		c.Title = v
	}
	if v, ok := lookup(EnvScreenshotDir); ok && v != "" {
		c.ScreenshotDir = v
	}
	if v, ok := lookup(EnvScript); ok {
		c.ScriptPath = v
	}

	var err error
	if v, ok := lookup(EnvScale); ok {
		if c.Scale, err = strconv.ParseFloat(v, 64); err != nil {
			return errors.Wrapf(err, "parse %s", EnvScale)
		}
	}
	if v, ok := lookup(EnvSeed); ok {
		if c.Seed, err = strconv.ParseUint(v, 10, 64); err != nil {
			return errors.Wrapf(err, "parse %s", EnvSeed)
		}
	}
	if v, ok := lookup(EnvTPS); ok {
		if c.TPS, err = strconv.Atoi(v); err != nil {
			return errors.Wrapf(err, "parse %s", EnvTPS)
		}
	}
	if v, ok := lookup(EnvStartAgent); ok {
		if c.StartAgent, err = strconv.Atoi(v); err != nil {
			return errors.Wrapf(err, "parse %s", EnvStartAgent)
		}
	}
	if v, ok := lookup(EnvDebug); ok {
		if c.Debug, err = strconv.ParseBool(v); err != nil {
			return errors.Wrapf(err, "parse %s", EnvDebug)
		}
	}
	if v, ok := lookup(EnvShowFPS); ok {
		if c.ShowFPS, err = strconv.ParseBool(v); err != nil {
			return errors.Wrapf(err, "parse %s", EnvShowFPS)
		}
	}
	return nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Scale <= 0 {
		return errors.Errorf("scale must be positive, got %v", c.Scale)
	}
	if c.StartAgent < 0 || c.StartAgent >= AgentCount {
		return errors.Errorf("start agent must be in 0..%d, got %d", AgentCount-1, c.StartAgent)
	}
	if c.TPS == 0 || c.TPS < ebiten.SyncWithFPS {
		return errors.Errorf("tps must be positive or %d (sync with display), got %d", ebiten.SyncWithFPS, c.TPS)
	}
	return nil
}
