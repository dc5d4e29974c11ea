package slogobs

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// LogLevelFromEnv returns the log level configured via environment variables.
// It checks BOTMUX_LOG_LEVEL first, then falls back to LOG_LEVEL.
// Supported values: TRACE, DEBUG, INFO, WARN, WARNING, ERROR. Default: INFO.
func LogLevelFromEnv() slog.Level {
	level := os.Getenv("BOTMUX_LOG_LEVEL")
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	if level == "" {
		return slog.LevelInfo
	}

	return ParseLogLevel(level)
}

// ParseLogLevel parses a log level string into slog.Level (case-insensitive).
// Returns INFO for unknown values and prints a warning to stderr.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "TRACE":
		return LevelTrace
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		fmt.Fprintf(os.Stderr, "Warning: Unknown log level '%s', using INFO\n", level)
		return slog.LevelInfo
	}
}
