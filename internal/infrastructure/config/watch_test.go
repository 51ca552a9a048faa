package config

import (
	"testing"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/core"
	coremocks "github.com/amirhossein-jamali/txn-categorizer/mocks/port/core"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/mock"
)

func TestApplyLogLevel(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		current     core.LogLevel
		op          fsnotify.Op
		expectApply bool
		expected    core.LogLevel
	}{
		{name: "write changes level", level: "debug", current: core.LogLevelInfo, op: fsnotify.Write, expectApply: true, expected: core.LogLevelDebug},
		{name: "create changes level", level: "error", current: core.LogLevelInfo, op: fsnotify.Create, expectApply: true, expected: core.LogLevelError},
		{name: "same level is ignored", level: "info", current: core.LogLevelInfo, op: fsnotify.Write},
		{name: "chmod is ignored", level: "debug", current: core.LogLevelInfo, op: fsnotify.Chmod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			v.Set("logger.level", tt.level)

			logger := coremocks.NewMockLogger(t)
			logger.EXPECT().GetLevel().Return(tt.current).Maybe()
			logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
			if tt.expectApply {
				logger.EXPECT().SetLevel(tt.expected).Once()
			}

			applyLogLevel(v, logger, fsnotify.Event{Name: "configs/development.yaml", Op: tt.op})

			if !tt.expectApply {
				logger.AssertNotCalled(t, "SetLevel", mock.Anything)
			}
		})
	}
}
