package logger

import (
	"testing"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZapLogger_SetLevel(t *testing.T) {
	l, err := NewZapLogger(Options{Level: core.LogLevelWarn})
	require.NoError(t, err)
	assert.Equal(t, core.LogLevelWarn, l.GetLevel())

	levels := []core.LogLevel{core.LogLevelDebug, core.LogLevelInfo, core.LogLevelWarn, core.LogLevelError}
	for _, level := range levels {
		t.Run(level.String(), func(t *testing.T) {
			l.SetLevel(level)
			assert.Equal(t, level, l.GetLevel())
		})
	}
}

func TestZapLogger_LogsWithNilFields(t *testing.T) {
	l, err := NewZapLogger(Options{Production: true, Level: core.LogLevelDebug})
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		l.Debug("debug", nil)
		l.Info("info", map[string]any{"entity_id": "entity-1"})
		l.Warn("warn", map[string]any{"count": 3})
		l.Error("error", map[string]any{"error": "boom"})
	})
}

func TestNoopLogger(t *testing.T) {
	l := NewNoopLogger()
	assert.Equal(t, core.LogLevelInfo, l.GetLevel())
	l.SetLevel(core.LogLevelError)
	assert.Equal(t, core.LogLevelError, l.GetLevel())
	assert.NoError(t, l.Flush())
}
