package testlog

import (
	"testing"

	"github.com/rs/zerolog"

	"tm-sim/internal/logging"
)

// Start configures the test log profile and returns a logger tagged with the
// test name.
func Start(t *testing.T) zerolog.Logger {
	t.Helper()
	l := logging.ConfigureTests().With().Str("test", t.Name()).Logger()
	l.Info().Msg("start")
	return l
}
