package observability

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, pretty
	Out    io.Writer
}

// DefaultLogConfig returns the CLI defaults: warnings and above, human readable, on stderr
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:  "warn",
		Format: "pretty",
		Out:    os.Stderr,
	}
}

// SetupLogger configures the global logger and returns it
func SetupLogger(config LogConfig) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(config.Level)
	if err != nil {
		return zerolog.Nop(), err
	}
	zerolog.SetGlobalLevel(level)

	out := config.Out
	if out == nil {
		out = os.Stderr
	}
	if config.Format == "pretty" {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}
	}

	log.Logger = zerolog.New(out).With().Timestamp().Logger()
	return log.Logger, nil
}

// GetLogger returns a logger tagged with a component name
func GetLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}
