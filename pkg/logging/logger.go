// Package logging builds the hclog loggers used across the tool.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
)

// NewLogger creates an hclog logger with the project's standard settings.
// A nil output defaults to stderr. Setting STEG_JSON_LOG=1 switches to
// machine-readable JSON lines; otherwise each line gets the 🕵️ prefix.
func NewLogger(name string, level string, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}

	jsonFormat := os.Getenv("STEG_JSON_LOG") == "1"
	if !jsonFormat {
		output = NewPrefixWriter("🕵️ ", output)
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: jsonFormat,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z",
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	})
}

// GetLogLevel returns the log level configured via STEG_LOG_LEVEL, or
// "warn" when unset.
func GetLogLevel() string {
	if level := os.Getenv("STEG_LOG_LEVEL"); level != "" {
		return level
	}
	return "warn"
}
