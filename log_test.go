package skyflock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewSessionID(t *testing.T) {
	a, b := NewSessionID(), NewSessionID()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}

func TestNewLoggerLevels(t *testing.T) {
	quiet, err := NewLogger(false)
	require.NoError(t, err)
	assert.False(t, quiet.Core().Enabled(zap.DebugLevel))
	assert.True(t, quiet.Core().Enabled(zap.InfoLevel))

	verbose, err := NewLogger(true)
	require.NoError(t, err)
	assert.True(t, verbose.Core().Enabled(zap.DebugLevel))
}
