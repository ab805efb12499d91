package cmd

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/rrenner/lfmkit/pkg/lastfm"
)

// setupLogger builds the command logger. Debug level when --verbose,
// otherwise warnings and up only so normal output stays clean.
func setupLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// apiLogger adapts a zerolog.Logger to the SDK's Logger interface.
type apiLogger struct {
	logger zerolog.Logger
}

var _ lastfm.Logger = (*apiLogger)(nil)

func (l *apiLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug().Msgf(format, args...)
}
