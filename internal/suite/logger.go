package suite

import (
	"github.com/jfmyers9/tunecheck/pkg/spotify"
	"github.com/rs/zerolog"
)

type requestLogger struct {
	logger zerolog.Logger
}

// NewRequestLogger adapts a zerolog logger to the spotify.Logger interface.
// Request diagnostics are logged at debug level.
func NewRequestLogger(logger zerolog.Logger) spotify.Logger {
	return &requestLogger{logger: logger.With().Str("component", "spotify").Logger()}
}

func (l *requestLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug().Msgf(format, args...)
}
