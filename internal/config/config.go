// Package config sets up the emulator from its program options
package config

import (
	"github.com/mnafees/chopper/v2/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger returns the logger for the given options. Instruction tracing
// logs at debug level, so it implies debug output even when quiet is set.
func CreateLogger(opts options.Program) *log.Logger {
	cfg := log.DefaultConfig()
	switch {
	case opts.Debug || opts.Trace:
		cfg.Level = log.DebugLevel
	case opts.Quiet:
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
