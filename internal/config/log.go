package config

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// NewLogger builds a timestamped logger writing to w. The level comes from
// LOG_LEVEL and defaults to info when unset or unknown.
func NewLogger(w io.Writer, prefix string) *log.Logger {
	level, err := log.ParseLevel(GetEnv(EnvLogLevel, "info"))
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          prefix,
		Level:           level,
	})
}
