package logutil

import (
	"os"

	"github.com/rs/zerolog"
)

func ParseZerologLevel(level string) zerolog.Level {
	switch level {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "panic":
		return zerolog.PanicLevel
	default:
		return zerolog.InfoLevel
	}
}

// LevelFromEnv reads the named environment variable and parses it as a
// zerolog level, defaulting to info when unset or unrecognized.
func LevelFromEnv(key string) zerolog.Level {
	return ParseZerologLevel(os.Getenv(key))
}
