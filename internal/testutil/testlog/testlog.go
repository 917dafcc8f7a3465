package testlog

import (
	"testing"

	"github.com/danmuck/hdlcbody/internal/logging"
	"github.com/rs/zerolog"
)

// Start configures test logging and returns a logger bound to t's output.
func Start(t *testing.T) zerolog.Logger {
	t.Helper()
	logging.ConfigureTests()
	logger := zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.TraceLevel).
		With().Str("test", t.Name()).Logger()
	logger.Info().Msg("test start")
	return logger
}
