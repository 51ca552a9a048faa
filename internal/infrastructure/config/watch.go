package config

import (
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/core"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// WatchLogLevel re-applies logger.level whenever the config file is written
func WatchLogLevel(v *viper.Viper, logger core.Logger) {
	v.OnConfigChange(func(e fsnotify.Event) {
		applyLogLevel(v, logger, e)
	})
	v.WatchConfig()
}

func applyLogLevel(v *viper.Viper, logger core.Logger, e fsnotify.Event) {
	if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
		return
	}

	level := core.ParseLogLevel(v.GetString("logger.level"))
	if level == logger.GetLevel() {
		return
	}

	logger.SetLevel(level)
	logger.Info("Log level changed", map[string]any{
		"file":  e.Name,
		"level": level.String(),
	})
}
