package config

import (
	"github.com/touch-timeout/wakebridge/internal/wake"
	"github.com/touch-timeout/wakebridge/util/conf"
)

type Config struct {
	// LogLevel is the log level for the application
	LogLevel string `conf:"log_level"`

	// LogFormat is the log format for the application
	LogFormat string `conf:"log_format"`

	// Wake is the signal delivery configuration
	Wake wake.Config `conf:"wake"`
}

var DefaultConfig = conf.MergeDefaults("wake", wake.DefaultConfig)
