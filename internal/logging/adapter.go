package logging

import "github.com/rs/zerolog"

// Adapter exposes a zerolog.Logger through printf-style level sinks.
type Adapter struct {
	logger zerolog.Logger
}

func NewAdapter(logger zerolog.Logger) Adapter {
	return Adapter{logger: logger}
}

func (a Adapter) Tracef(format string, args ...any) {
	a.logger.Trace().Msgf(format, args...)
}

func (a Adapter) Debugf(format string, args ...any) {
	a.logger.Debug().Msgf(format, args...)
}

func (a Adapter) Errorf(format string, args ...any) {
	a.logger.Error().Msgf(format, args...)
}
