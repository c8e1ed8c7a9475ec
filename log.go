package skyflock

import (
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the console logger used by a run. Debug enables debug
// level output (pickups, frame stats); otherwise info and above are logged.
// Every entry carries the run's session id.
func NewLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.DisableStacktrace = !debug
	if !debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}
	return logger.Named("skyflock").With(zap.String("session", NewSessionID())), nil
}

// NewSessionID returns a random identifier for one run.
func NewSessionID() string {
	return uuid.Must(uuid.NewV4()).String()
}
